package config

import (
	"os"
	"path/filepath"
	"testing"

	"charger-sizing/core/types"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Parameters != types.DefaultParameters() {
		t.Errorf("parameters = %+v", cfg.Parameters)
	}
	if cfg.Output.DefaultFormat != "cli" || !cfg.Output.ShowNotes {
		t.Errorf("output defaults = %+v", cfg.Output)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.Parameters.DiversityFactor = 0.8
	cfg.Output.DefaultFormat = "json"
	cfg.Server.Addr = ":9090"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Parameters.DiversityFactor != 0.8 {
		t.Errorf("diversity = %g", got.Parameters.DiversityFactor)
	}
	if got.Output.DefaultFormat != "json" || got.Server.Addr != ":9090" {
		t.Errorf("loaded config = %+v", got)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"output": {"default_format": "markdown", "show_notes": false}}`), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Output.DefaultFormat != "markdown" {
		t.Errorf("format = %q", got.Output.DefaultFormat)
	}
	if got.Parameters != types.DefaultParameters() {
		t.Errorf("untouched parameters changed: %+v", got.Parameters)
	}
}
