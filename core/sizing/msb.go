package sizing

import (
	"math"

	"charger-sizing/core/standards"
	"charger-sizing/core/types"
	"charger-sizing/internal/errors"
)

// AggregateDistribution combines the given circuits into a main
// switchboard selection. It sums derated AC input currents across
// quantities, applies the diversity factor, and selects the main
// breaker and the smallest adequate catalog board. Aggregation is
// all-or-nothing: any failure invalidates the whole distribution
// design.
//
// An empty circuit set returns a TypeNoLoad error rather than a
// zero-valued design, so callers cannot mistake "nothing connected"
// for a real selection.
func AggregateDistribution(loads []types.CircuitLoad, params types.Parameters) (*types.DistributionDesign, error) {
	if err := params.Validate(); err != nil {
		return nil, errors.Wrap(errors.TypeInput, "invalid parameters", err)
	}
	if len(loads) == 0 {
		return nil, errors.NoLoad()
	}

	var totalDeratedACA, totalKW float64
	for _, load := range loads {
		if load.Design == nil || load.Quantity < 1 {
			return nil, errors.Input("each aggregation entry needs a sized circuit and a quantity of at least 1")
		}
		totalDeratedACA += load.Design.DeratedACInputA * float64(load.Quantity)
		totalKW += load.Design.PowerKW * float64(load.Quantity)
	}

	// Not every circuit draws peak current at once (AS/NZS 3000
	// Clause 2.2).
	diversifiedA := totalDeratedACA * params.DiversityFactor

	mainBreakerA, ok := standards.NextBreaker(diversifiedA)
	if !ok {
		return nil, errors.BreakerRatingExceeded(diversifiedA)
	}

	board, ok := standards.SelectBoard(diversifiedA)
	if !ok {
		return nil, errors.BoardCapacityExceeded(diversifiedA)
	}

	// Copper busbar at 1A/mm^2, specified in 100A increments. Kept
	// separate from the catalog rating: the conductor requirement and
	// the enclosure's nominal switchgear rating may differ.
	busbarA := int(math.Ceil(diversifiedA/100)) * 100

	return &types.DistributionDesign{
		TotalConnectedKW:  totalKW,
		TotalDeratedACA:   totalDeratedACA,
		DiversityFactor:   params.DiversityFactor,
		DiversifiedA:      diversifiedA,
		MainBreakerA:      mainBreakerA,
		BoardRatingA:      board.RatedA,
		BoardDimensionsMM: board.DimensionsMM,
		BusbarA:           busbarA,
	}, nil
}
