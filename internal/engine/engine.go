package engine

import "github.com/jmoralesv/sombra/internal/model"

// Analyzer runs the full shadow analysis for one site.
type Analyzer struct {
	Settings model.AnalysisSettings
}

func New(settings model.AnalysisSettings) *Analyzer {
	return &Analyzer{Settings: settings}
}

// Result holds the reduced shadow list together with counts describing the
// raw pipeline stages, for reporting.
type Result struct {
	Shadows    []model.Shadow `json:"shadows"`
	WallCount  int            `json:"wall_count"`
	RawShadows int            `json:"raw_shadows"`
}

// Analyze extrudes the site's buildings and overhangs, projects every wall
// into shadows as seen from the site observer, and reduces the list to a
// minimal coverage-equivalent subset. The input site is not modified.
func (a *Analyzer) Analyze(site model.Site) Result {
	quads := ExtrudeBuildings(site.Buildings, a.Settings.FloorHeight)
	quads = append(quads, ExtrudeOverhangs(site.Overhangs)...)

	var raw []model.Shadow
	for _, q := range quads {
		raw = append(raw, ComputeShadow(site.Observer, q)...)
	}

	return Result{
		Shadows:    Reduce(raw),
		WallCount:  len(quads),
		RawShadows: len(raw),
	}
}
