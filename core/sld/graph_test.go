package sld

import (
	"testing"

	"charger-sizing/core/sizing"
	"charger-sizing/core/types"
)

func buildLoads(t *testing.T, params types.Parameters, specs ...types.ChargerSpec) []types.CircuitLoad {
	t.Helper()
	var loads []types.CircuitLoad
	for _, spec := range specs {
		d, err := sizing.SizeCircuit(spec.Type, spec.CapacityKW, params)
		if err != nil {
			t.Fatalf("%s %g kW: %v", spec.Type, spec.CapacityKW, err)
		}
		loads = append(loads, types.CircuitLoad{Design: d, Quantity: spec.Quantity})
	}
	return loads
}

func TestAssembleTopology(t *testing.T) {
	params := types.DefaultParameters()
	loads := buildLoads(t, params,
		types.ChargerSpec{Type: types.ChargerAC, CapacityKW: 7, Quantity: 1},
		types.ChargerSpec{Type: types.ChargerDC, CapacityKW: 100, Quantity: 1},
	)
	dist, err := sizing.AggregateDistribution(loads, params)
	if err != nil {
		t.Fatalf("aggregation: %v", err)
	}

	g := Assemble(loads, dist, params)

	if len(g.Branches) != len(loads) {
		t.Fatalf("branches = %d, want %d", len(g.Branches), len(loads))
	}

	// Every annotation must match the design it came from; the
	// diagram never rederives.
	for i, br := range g.Branches {
		d := loads[i].Design
		if br.Breaker != d.Breaker {
			t.Errorf("branch %d: breaker %+v differs from design %+v", i, br.Breaker, d.Breaker)
		}
		if br.Cable.SizeMM2 != d.Cable.SizeMM2 || br.Cable.AmpacityA != d.Cable.AmpacityA || br.Cable.Cores != d.Cable.Cores {
			t.Errorf("branch %d: cable %+v differs from design %+v", i, br.Cable, d.Cable)
		}
		if br.PowerKW != d.PowerKW || br.ChargerType != d.ChargerType || br.VoltageV != d.VoltageV {
			t.Errorf("branch %d: charger identity differs from design", i)
		}
	}

	if g.Board.IncomerA != dist.MainBreakerA {
		t.Errorf("board incomer = %dA, want main breaker %dA", g.Board.IncomerA, dist.MainBreakerA)
	}
	if g.Board.BusbarA != dist.BusbarA {
		t.Errorf("board busbar = %dA, want %dA", g.Board.BusbarA, dist.BusbarA)
	}
}

func TestTransformerSizing(t *testing.T) {
	tests := []struct {
		name        string
		totalKW     float64
		powerFactor float64
		wantKVA     int
	}{
		{"small site hits the 500 kVA floor", 29, 0.95, 500},
		{"mid site rounds up to 100 kVA", 700, 0.95, 800},
		{"just under a step", 940, 0.95, 1000},
		{"large site", 2000, 0.95, 2200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transformerKVA(tt.totalKW, tt.powerFactor); got != tt.wantKVA {
				t.Errorf("transformerKVA(%g, %g) = %d, want %d", tt.totalKW, tt.powerFactor, got, tt.wantKVA)
			}
		})
	}
}

func TestDeviceClass(t *testing.T) {
	if got := deviceClass(100); got != "MCB" {
		t.Errorf("100A class = %s, want MCB", got)
	}
	if got := deviceClass(125); got != "MCCB" {
		t.Errorf("125A class = %s, want MCCB", got)
	}
}

func TestIncomerCableLadder(t *testing.T) {
	tests := []struct {
		diversifiedA float64
		wantMM2      float64
	}{
		{69.96, 120},
		{250, 120},
		{251, 185},
		{400, 185},
		{599, 300},
		{700, 400},
		{1200, 500},
	}
	for _, tt := range tests {
		run := incomerCable(tt.diversifiedA)
		if run.SizeMM2 != tt.wantMM2 {
			t.Errorf("incomerCable(%g) = %gmm², want %gmm²", tt.diversifiedA, run.SizeMM2, tt.wantMM2)
		}
		if run.Cores != types.Core4C || run.AmpacityA == 0 {
			t.Errorf("incomerCable(%g) = %+v, want annotated 4C run", tt.diversifiedA, run)
		}
	}
}

func TestTransformerNameplate(t *testing.T) {
	params := types.DefaultParameters()
	loads := buildLoads(t, params,
		types.ChargerSpec{Type: types.ChargerAC, CapacityKW: 22, Quantity: 2},
	)
	dist, err := sizing.AggregateDistribution(loads, params)
	if err != nil {
		t.Fatalf("aggregation: %v", err)
	}

	g := Assemble(loads, dist, params)
	if g.Transformer.RatingKVA != 500 {
		t.Errorf("transformer = %d kVA, want 500 minimum", g.Transformer.RatingKVA)
	}
	if g.Transformer.VectorGroup != "Dyn11" || g.Transformer.ImpedancePct != 6 {
		t.Errorf("unexpected nameplate: %+v", g.Transformer)
	}
}
