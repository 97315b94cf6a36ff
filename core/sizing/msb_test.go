package sizing

import (
	"testing"

	"charger-sizing/core/types"
	"charger-sizing/internal/errors"
)

// sized is a test helper that fails the test on sizing errors.
func sized(t *testing.T, chargerType types.ChargerType, kw float64, params types.Parameters) *types.CircuitDesign {
	t.Helper()
	d, err := SizeCircuit(chargerType, kw, params)
	if err != nil {
		t.Fatalf("%s %g kW: %v", chargerType, kw, err)
	}
	return d
}

func TestAggregateDistribution(t *testing.T) {
	// One 7 kW and one 22 kW AC charger: 38.04 + 39.69 = 77.73A total
	// derated, 69.96A diversified, 80A main breaker, 100A board.
	params := types.DefaultParameters()
	loads := []types.CircuitLoad{
		{Design: sized(t, types.ChargerAC, 7, params), Quantity: 1},
		{Design: sized(t, types.ChargerAC, 22, params), Quantity: 1},
	}

	d, err := AggregateDistribution(loads, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !within(d.TotalConnectedKW, 29, 0.001) {
		t.Errorf("total connected = %g kW, want 29", d.TotalConnectedKW)
	}
	if !within(d.TotalDeratedACA, 77.73, 0.01) {
		t.Errorf("total derated AC = %g, want 77.73", d.TotalDeratedACA)
	}
	if !within(d.DiversifiedA, 69.96, 0.01) {
		t.Errorf("diversified = %g, want 69.96", d.DiversifiedA)
	}
	if d.MainBreakerA != 80 {
		t.Errorf("main breaker = %dA, want 80A", d.MainBreakerA)
	}
	if d.BoardRatingA != 100 || d.BoardDimensionsMM != "300x200x150" {
		t.Errorf("board = %dA %s, want 100A 300x200x150", d.BoardRatingA, d.BoardDimensionsMM)
	}
	if d.BusbarA != 100 {
		t.Errorf("busbar = %dA, want 100A", d.BusbarA)
	}
}

func TestAggregateQuantityMultiplies(t *testing.T) {
	params := types.DefaultParameters()
	single := []types.CircuitLoad{
		{Design: sized(t, types.ChargerAC, 22, params), Quantity: 1},
	}
	triple := []types.CircuitLoad{
		{Design: sized(t, types.ChargerAC, 22, params), Quantity: 3},
	}

	one, err := AggregateDistribution(single, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	three, err := AggregateDistribution(triple, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !within(three.TotalDeratedACA, 3*one.TotalDeratedACA, 1e-9) {
		t.Errorf("quantity 3 total %g, want 3x %g", three.TotalDeratedACA, one.TotalDeratedACA)
	}
	if !within(three.TotalConnectedKW, 66, 0.001) {
		t.Errorf("total connected = %g kW, want 66", three.TotalConnectedKW)
	}
}

func TestAggregateDiversityNeverIncreases(t *testing.T) {
	params := types.DefaultParameters()
	loads := []types.CircuitLoad{
		{Design: sized(t, types.ChargerDC, 100, params), Quantity: 4},
		{Design: sized(t, types.ChargerAC, 22, params), Quantity: 2},
	}

	for _, df := range []float64{0.5, 0.8, 0.9, 1.0} {
		p := params
		p.DiversityFactor = df
		d, err := AggregateDistribution(loads, p)
		if err != nil {
			t.Fatalf("diversity %g: %v", df, err)
		}
		if d.DiversifiedA > d.TotalDeratedACA {
			t.Errorf("diversity %g: diversified %g exceeds total %g", df, d.DiversifiedA, d.TotalDeratedACA)
		}
		if d.MainBreakerA < int(d.DiversifiedA) {
			t.Errorf("diversity %g: main breaker %dA below diversified %g", df, d.MainBreakerA, d.DiversifiedA)
		}
	}
}

func TestAggregateEmptyIsExplicitNoLoad(t *testing.T) {
	_, err := AggregateDistribution(nil, types.DefaultParameters())
	if !errors.Is(err, errors.TypeNoLoad) {
		t.Errorf("expected NO_LOAD, got %v", err)
	}
}

func TestAggregateBreakerLadderExceeded(t *testing.T) {
	// Twelve 150 kW DC units: about 2800A diversified, beyond the
	// 2000A main breaker ladder. Must fail, never clamp.
	params := types.DefaultParameters()
	loads := []types.CircuitLoad{
		{Design: sized(t, types.ChargerDC, 150, params), Quantity: 12},
	}
	_, err := AggregateDistribution(loads, params)
	if !errors.Is(err, errors.TypeBreakerRating) {
		t.Errorf("expected BREAKER_RATING_EXCEEDED, got %v", err)
	}
}

func TestAggregateInvalidEntries(t *testing.T) {
	params := types.DefaultParameters()
	d := sized(t, types.ChargerAC, 7, params)

	if _, err := AggregateDistribution([]types.CircuitLoad{{Design: nil, Quantity: 1}}, params); !errors.Is(err, errors.TypeInput) {
		t.Errorf("nil design: expected INPUT_ERROR, got %v", err)
	}
	if _, err := AggregateDistribution([]types.CircuitLoad{{Design: d, Quantity: 0}}, params); !errors.Is(err, errors.TypeInput) {
		t.Errorf("zero quantity: expected INPUT_ERROR, got %v", err)
	}
}

func TestAggregateBusbarRounding(t *testing.T) {
	// Busbar rating rounds the diversified current up to the next
	// 100A increment, independent of the board selection.
	params := types.DefaultParameters()
	loads := []types.CircuitLoad{
		{Design: sized(t, types.ChargerDC, 100, params), Quantity: 3},
	}
	// 199.9A derated AC each, 599.8A total, 539.8A diversified.
	d, err := AggregateDistribution(loads, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.BusbarA != 600 {
		t.Errorf("busbar = %dA, want 600A", d.BusbarA)
	}
	if d.MainBreakerA != 630 {
		t.Errorf("main breaker = %dA, want 630A", d.MainBreakerA)
	}
	if d.BoardRatingA != 600 {
		t.Errorf("board = %dA, want 600A", d.BoardRatingA)
	}
}
