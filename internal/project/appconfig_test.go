package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoralesv/sombra/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultFloorHeight = 2.8
	cfg.RecentSites = []string{"/tmp/site1.json", "/tmp/site2.json"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultFloorHeight != 2.8 {
		t.Errorf("expected DefaultFloorHeight=2.8, got %f", loaded.DefaultFloorHeight)
	}
	if len(loaded.RecentSites) != 2 {
		t.Errorf("expected 2 recent sites, got %d", len(loaded.RecentSites))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.DefaultFloorHeight != defaults.DefaultFloorHeight {
		t.Errorf("expected default floor height %f, got %f",
			defaults.DefaultFloorHeight, cfg.DefaultFloorHeight)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadAppConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestLoadAppConfigNilRecentSites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	data := []byte(`{"default_floor_height":3.0,"recent_sites":null}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.RecentSites == nil {
		t.Error("RecentSites should not be nil after loading")
	}
}
