package input

import (
	"os"
	"path/filepath"
	"testing"

	"charger-sizing/core/types"
	"charger-sizing/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "site.yaml", `
name: Basement carpark
parameters:
  diversity_factor: 0.8
  dc_voltage: 750
chargers:
  - type: AC
    capacity_kw: 7
    quantity: 4
  - type: DC
    capacity_kw: 150
    quantity: 2
`)

	site, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if site.Name != "Basement carpark" {
		t.Errorf("name = %q", site.Name)
	}
	if len(site.Chargers) != 2 || site.Chargers[1].Type != types.ChargerDC {
		t.Errorf("chargers = %+v", site.Chargers)
	}

	params := site.Parameters.Apply(types.DefaultParameters())
	if params.DiversityFactor != 0.8 || params.DCVoltageV != 750 {
		t.Errorf("overrides not applied: %+v", params)
	}
	// Untouched fields keep their defaults.
	if params.SafetyFactor != 1.25 || params.ACVoltageV != 400 {
		t.Errorf("defaults disturbed: %+v", params)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "site.json", `{
  "chargers": [
    {"type": "AC", "capacity_kw": 22, "quantity": 1}
  ]
}`)

	site, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(site.Chargers) != 1 || site.Chargers[0].CapacityKW != 22 {
		t.Errorf("chargers = %+v", site.Chargers)
	}
}

func TestLoadRejectsInvalidSites(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty charger list", "chargers: []\n"},
		{"unknown type", "chargers:\n  - type: EV\n    capacity_kw: 7\n    quantity: 1\n"},
		{"off-menu capacity", "chargers:\n  - type: AC\n    capacity_kw: 11\n    quantity: 1\n"},
		{"zero quantity", "chargers:\n  - type: DC\n    capacity_kw: 50\n    quantity: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "site.yaml", tt.content)
			if _, err := Load(path); !errors.Is(err, errors.TypeInput) {
				t.Errorf("expected INPUT_ERROR, got %v", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); !errors.Is(err, errors.TypeInput) {
		t.Errorf("expected INPUT_ERROR, got %v", err)
	}
}

func TestApplyNilOverrides(t *testing.T) {
	var o *ParameterOverrides
	got := o.Apply(types.DefaultParameters())
	if got != types.DefaultParameters() {
		t.Errorf("nil overrides changed defaults: %+v", got)
	}
}
