package types

import "fmt"

// Parameters holds the user-adjustable calculation inputs. They are
// read-only to the engine: every sizing call receives a value copy.
type Parameters struct {
	// SafetyFactor is the continuous-load derating multiplier
	// (AS/NZS 3000 recommends 125%).
	SafetyFactor float64 `json:"safety_factor" yaml:"safety_factor"`

	// DiversityFactor is applied to the summed derated AC current
	// (AS/NZS 3000 Clause 2.2).
	DiversityFactor float64 `json:"diversity_factor" yaml:"diversity_factor"`

	// DCEfficiency is the AC-to-DC conversion efficiency of a DC
	// charger's rectifier front end.
	DCEfficiency float64 `json:"dc_efficiency" yaml:"dc_efficiency"`

	// PowerFactor is the power factor of the AC-DC conversion.
	PowerFactor float64 `json:"power_factor" yaml:"power_factor"`

	// ACVoltageV is the nominal three-phase AC system voltage.
	ACVoltageV float64 `json:"ac_voltage" yaml:"ac_voltage"`

	// DCVoltageV is the nominal DC charger output voltage.
	DCVoltageV float64 `json:"dc_voltage" yaml:"dc_voltage"`
}

// DefaultParameters returns the domain-recommended defaults.
func DefaultParameters() Parameters {
	return Parameters{
		SafetyFactor:    1.25,
		DiversityFactor: 0.9,
		DCEfficiency:    0.95,
		PowerFactor:     0.95,
		ACVoltageV:      400,
		DCVoltageV:      500,
	}
}

// Validate checks each parameter against its engineering bounds.
func (p Parameters) Validate() error {
	checks := []struct {
		name     string
		value    float64
		min, max float64
	}{
		{"safety_factor", p.SafetyFactor, 1.0, 2.0},
		{"diversity_factor", p.DiversityFactor, 0.1, 1.0},
		{"dc_efficiency", p.DCEfficiency, 0.8, 1.0},
		{"power_factor", p.PowerFactor, 0.8, 1.0},
		{"ac_voltage", p.ACVoltageV, 100, 500},
		{"dc_voltage", p.DCVoltageV, 100, 1000},
	}
	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return fmt.Errorf("%s %g outside allowed range %g-%g", c.name, c.value, c.min, c.max)
		}
	}
	return nil
}
