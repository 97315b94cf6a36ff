// Package sizing is the deterministic derivation engine: it maps
// charger electrical parameters through the standards tables to a
// per-circuit design, and aggregates circuits into a main switchboard
// selection. Every function here is pure: output depends only on the
// arguments and the fixed tables, and inputs are never mutated or
// retained.
package sizing

import (
	"math"

	"charger-sizing/core/standards"
	"charger-sizing/core/types"
	"charger-sizing/internal/errors"
)

const (
	// singlePhaseMaxKW is the AC capacity at or below which a charger
	// is wired single-phase.
	singlePhaseMaxKW = 7

	// singlePhaseVoltageV is the nominal single-phase supply voltage.
	singlePhaseVoltageV = 230

	// singlePhaseDeviceV is the rated voltage of single-phase
	// protective devices.
	singlePhaseDeviceV = 240

	standardAC = "AS/NZS 60898"
	standardDC = "AS/NZS 60947.2"
)

// SizeCircuit derives the full electrical design for one charger
// circuit: supply configuration, load current, derated current, the
// smallest adequate standard breaker, and the smallest cable rated for
// that breaker.
//
// Failures are typed errors (TypeBreakerRating, TypeCableAmpacity);
// a failed selection is never replaced by the table maximum.
func SizeCircuit(chargerType types.ChargerType, capacityKW float64, params types.Parameters) (*types.CircuitDesign, error) {
	if !chargerType.IsValid() {
		return nil, errors.Input("unknown charger type %q", chargerType)
	}
	if capacityKW <= 0 {
		return nil, errors.Input("capacity must be positive, got %g kW", capacityKW)
	}
	if err := params.Validate(); err != nil {
		return nil, errors.Wrap(errors.TypeInput, "invalid parameters", err)
	}

	var (
		voltage  float64
		phase    types.Phase
		cores    types.CoreConfig
		current  float64
		acInput  float64
	)

	switch {
	case chargerType == types.ChargerAC && capacityKW <= singlePhaseMaxKW:
		// Single-phase: active + neutral.
		voltage = singlePhaseVoltageV
		phase = types.PhaseSingle
		cores = types.Core2C
		current = capacityKW * 1000 / voltage
		acInput = current

	case chargerType == types.ChargerAC:
		// Three-phase: 3 phases + neutral.
		voltage = params.ACVoltageV
		phase = types.PhaseThree
		cores = types.Core4C
		current = capacityKW * 1000 / (voltage * math.Sqrt(3))
		acInput = current

	default:
		// DC: positive + negative pair on the output side. The
		// rectifier front end draws three-phase AC; that input current
		// is what the upstream board sees.
		voltage = params.DCVoltageV
		phase = types.PhaseDC
		cores = types.Core2C
		current = capacityKW * 1000 / voltage

		acPowerKW := capacityKW / (params.DCEfficiency * params.PowerFactor)
		acInput = acPowerKW * 1000 / (params.ACVoltageV * math.Sqrt(3))
	}

	// Continuous-load margin (AS/NZS 3000 Clause 2.5.7.2).
	deratedA := current * params.SafetyFactor
	deratedACInputA := acInput * params.SafetyFactor

	breakerA, ok := standards.NextBreaker(deratedA)
	if !ok {
		return nil, errors.BreakerRatingExceeded(deratedA)
	}

	// The cable must carry what the breaker will let through before
	// tripping, so selection keys off the breaker rating rather than
	// the raw derated current. TODO: confirm with a licensed electrical
	// engineer whether derated-current-based selection is acceptable
	// for the DC output pair.
	cable, ok := standards.SelectCable(cores, float64(breakerA))
	if !ok {
		return nil, errors.CableAmpacityExceeded(cores.String(), float64(breakerA))
	}

	return &types.CircuitDesign{
		ChargerType:     chargerType,
		PowerKW:         capacityKW,
		VoltageV:        voltage,
		Phase:           phase,
		FullLoadA:       current,
		DeratedA:        deratedA,
		ACInputA:        acInput,
		DeratedACInputA: deratedACInputA,
		Breaker:         breakerSpec(phase, breakerA, voltage),
		Cable: types.CableSelection{
			Cores:     cores,
			SizeMM2:   cable.SizeMM2,
			AmpacityA: cable.AmpacityA,
		},
	}, nil
}

// breakerSpec resolves the structured device annotation for the
// selected rating.
func breakerSpec(phase types.Phase, ratingA int, voltageV float64) types.BreakerSpec {
	switch phase {
	case types.PhaseSingle:
		return types.BreakerSpec{
			Standard:      standardAC,
			Curve:         "C",
			RatingA:       ratingA,
			RatedVoltageV: singlePhaseDeviceV,
			Poles:         1,
			System:        types.SystemAC,
		}
	case types.PhaseThree:
		return types.BreakerSpec{
			Standard:      standardAC,
			Curve:         "C",
			RatingA:       ratingA,
			RatedVoltageV: int(voltageV),
			Poles:         3,
			System:        types.SystemAC,
		}
	default:
		return types.BreakerSpec{
			Standard:      standardDC,
			RatingA:       ratingA,
			RatedVoltageV: int(voltageV),
			System:        types.SystemDC,
		}
	}
}
