// Package input loads and validates site descriptions: the list of
// chargers to install plus optional calculation parameter overrides.
// Menu and bounds checks live here at the boundary; the engine itself
// handles any positive capacity with the same formulas.
package input

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"charger-sizing/core/types"
	"charger-sizing/internal/errors"
)

// Site describes one installation.
type Site struct {
	// Name is an optional installation label.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Parameters overrides applied on top of the configured defaults.
	Parameters *ParameterOverrides `json:"parameters,omitempty" yaml:"parameters,omitempty"`

	// Chargers is the ordered charger list. Duplicates are allowed and
	// treated as distinct entries.
	Chargers []types.ChargerSpec `json:"chargers" yaml:"chargers"`
}

// ParameterOverrides carries partial parameter settings; nil fields
// keep the default.
type ParameterOverrides struct {
	SafetyFactor    *float64 `json:"safety_factor,omitempty" yaml:"safety_factor,omitempty"`
	DiversityFactor *float64 `json:"diversity_factor,omitempty" yaml:"diversity_factor,omitempty"`
	DCEfficiency    *float64 `json:"dc_efficiency,omitempty" yaml:"dc_efficiency,omitempty"`
	PowerFactor     *float64 `json:"power_factor,omitempty" yaml:"power_factor,omitempty"`
	ACVoltageV      *float64 `json:"ac_voltage,omitempty" yaml:"ac_voltage,omitempty"`
	DCVoltageV      *float64 `json:"dc_voltage,omitempty" yaml:"dc_voltage,omitempty"`
}

// Apply returns defaults with the non-nil overrides applied.
func (o *ParameterOverrides) Apply(defaults types.Parameters) types.Parameters {
	p := defaults
	if o == nil {
		return p
	}
	if o.SafetyFactor != nil {
		p.SafetyFactor = *o.SafetyFactor
	}
	if o.DiversityFactor != nil {
		p.DiversityFactor = *o.DiversityFactor
	}
	if o.DCEfficiency != nil {
		p.DCEfficiency = *o.DCEfficiency
	}
	if o.PowerFactor != nil {
		p.PowerFactor = *o.PowerFactor
	}
	if o.ACVoltageV != nil {
		p.ACVoltageV = *o.ACVoltageV
	}
	if o.DCVoltageV != nil {
		p.DCVoltageV = *o.DCVoltageV
	}
	return p
}

// Load reads a site file. JSON and YAML are supported, chosen by file
// extension with YAML as the default.
func Load(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "reading site file", err)
	}

	var site Site
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &site)
	default:
		err = yaml.Unmarshal(data, &site)
	}
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "parsing site file", err)
	}

	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks the charger list against the market menus.
func (s *Site) Validate() error {
	if len(s.Chargers) == 0 {
		return errors.Input("site has no chargers")
	}
	for i, c := range s.Chargers {
		if err := ValidateSpec(c); err != nil {
			return errors.Wrap(errors.TypeInput, fmt.Sprintf("charger %d", i+1), err)
		}
	}
	return nil
}

// ValidateSpec checks one charger entry against the market menus.
func ValidateSpec(c types.ChargerSpec) error {
	if !c.Type.IsValid() {
		return fmt.Errorf("unknown charger type %q (want AC or DC)", c.Type)
	}
	if !types.MenuCapacity(c.Type, c.CapacityKW) {
		return fmt.Errorf("capacity %g kW not offered for %s chargers (menu: %v)",
			c.CapacityKW, c.Type, types.CapacitiesFor(c.Type))
	}
	if c.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", c.Quantity)
	}
	return nil
}
