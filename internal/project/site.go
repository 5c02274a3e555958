// Package project handles persistence of sites, application configuration
// and whole-data backups as JSON files on disk.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jmoralesv/sombra/internal/model"
)

// DefaultSitePath returns the default file path for the site file.
// This is located at ~/.sombra/site.json.
func DefaultSitePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".sombra", "site.json"), nil
}

// SaveSite writes the site to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveSite(path string, site model.Site) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(site, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSite reads a site from the specified JSON file.
// If the file does not exist, it returns the default site with no error.
func LoadSite(path string) (model.Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultSite(), nil
		}
		return model.Site{}, err
	}
	var site model.Site
	if err := json.Unmarshal(data, &site); err != nil {
		return model.Site{}, err
	}
	if site.Settings.FloorHeight <= 0 {
		site.Settings = model.DefaultSettings()
	}
	return site, nil
}

// LoadOrCreateSite loads the site from the default path.
// If the file does not exist, it creates one with default values.
func LoadOrCreateSite() (model.Site, string, error) {
	path, err := DefaultSitePath()
	if err != nil {
		return model.DefaultSite(), "", err
	}
	site, err := LoadSite(path)
	if err != nil {
		return site, path, err
	}
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		if saveErr := SaveSite(path, site); saveErr != nil {
			return site, path, saveErr
		}
	}
	return site, path, nil
}
