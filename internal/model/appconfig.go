package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default analysis settings applied to new sites
	DefaultFloorHeight float64 `json:"default_floor_height"`

	// Application preferences
	RecentSites []string `json:"recent_sites"`
}

// DefaultAppConfig returns an AppConfig populated with the values from
// DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultFloorHeight: defaults.FloorHeight,
		RecentSites:        []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into an
// AnalysisSettings struct. Used when creating a new site so it inherits the
// user's saved defaults.
func (c AppConfig) ApplyToSettings(s *AnalysisSettings) {
	if c.DefaultFloorHeight > 0 {
		s.FloorHeight = c.DefaultFloorHeight
	}
}

// AddRecentSite prepends path to the recent list, dropping duplicates and
// keeping at most 10 entries.
func (c *AppConfig) AddRecentSite(path string) {
	recent := []string{path}
	for _, p := range c.RecentSites {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	c.RecentSites = recent
}
