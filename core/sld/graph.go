// Package sld assembles a single-line-diagram topology from computed
// designs: transformer -> distribution board -> per-circuit breaker ->
// charger. This is a presentation artifact; nothing the sizing layer
// already determined is rederived here, every annotation is copied from
// the design records.
package sld

import (
	"math"

	"charger-sizing/core/standards"
	"charger-sizing/core/types"
)

// minTransformerKVA is the floor for EV installations.
const minTransformerKVA = 500

// Transformer is the upstream supply node.
type Transformer struct {
	// RatingKVA is the nameplate rating, rounded up to the next
	// 100 kVA with a 500 kVA floor.
	RatingKVA int `json:"rating_kva"`

	// Fixed nameplate details (AS/NZS 60076 distribution class).
	VoltageRatio string `json:"voltage_ratio"`
	ImpedancePct float64 `json:"impedance_pct"`
	VectorGroup  string  `json:"vector_group"`
}

// Board is the EV distribution board node.
type Board struct {
	IncomerA int `json:"incomer_a"`
	BusbarA  int `json:"busbar_a"`
}

// CableRun annotates an edge with its conductor.
type CableRun struct {
	Cores     types.CoreConfig `json:"cores"`
	SizeMM2   float64          `json:"size_mm2"`
	AmpacityA float64          `json:"ampacity_a"`
}

// Branch is one circuit leg: board -> breaker -> charger.
type Branch struct {
	// Index is the 0-based position of the circuit in the input order.
	Index int `json:"index"`

	// DeviceClass is MCB up to 100A, MCCB above.
	DeviceClass string `json:"device_class"`

	// Breaker echoes the circuit's protective-device selection.
	Breaker types.BreakerSpec `json:"breaker"`

	// Charger identity, copied from the design.
	ChargerType types.ChargerType `json:"charger_type"`
	PowerKW     float64           `json:"power_kw"`
	VoltageV    float64           `json:"voltage_v"`

	// Cable is the branch conductor, copied from the design.
	Cable CableRun `json:"cable"`
}

// Graph is the assembled topology.
type Graph struct {
	Transformer Transformer `json:"transformer"`
	Board       Board       `json:"board"`

	// Feeder is the transformer -> board edge.
	Feeder CableRun `json:"feeder"`

	// Branches are the per-circuit legs, one per aggregation entry in
	// input order. Quantity is not expanded: each entry is drawn once,
	// as on the source diagrams.
	Branches []Branch `json:"branches"`
}

// Assemble builds the topology graph for already-sized circuits and
// their distribution design.
func Assemble(loads []types.CircuitLoad, dist *types.DistributionDesign, params types.Parameters) *Graph {
	g := &Graph{
		Transformer: Transformer{
			RatingKVA:    transformerKVA(dist.TotalConnectedKW, params.PowerFactor),
			VoltageRatio: "11kV/415V ±5%",
			ImpedancePct: 6,
			VectorGroup:  "Dyn11",
		},
		Board: Board{
			IncomerA: dist.MainBreakerA,
			BusbarA:  dist.BusbarA,
		},
		Feeder: incomerCable(dist.DiversifiedA),
	}

	for i, load := range loads {
		d := load.Design
		g.Branches = append(g.Branches, Branch{
			Index:       i,
			DeviceClass: deviceClass(d.Breaker.RatingA),
			Breaker:     d.Breaker,
			ChargerType: d.ChargerType,
			PowerKW:     d.PowerKW,
			VoltageV:    d.VoltageV,
			Cable: CableRun{
				Cores:     d.Cable.Cores,
				SizeMM2:   d.Cable.SizeMM2,
				AmpacityA: d.Cable.AmpacityA,
			},
		})
	}

	return g
}

// transformerKVA sizes the supply transformer from the connected load.
func transformerKVA(totalKW, powerFactor float64) int {
	kva := int(math.Ceil(totalKW/powerFactor/100)) * 100
	if kva < minTransformerKVA {
		return minTransformerKVA
	}
	return kva
}

// deviceClass names the protective-device construction for a rating.
func deviceClass(ratingA int) string {
	if ratingA > 100 {
		return "MCCB"
	}
	return "MCB"
}

// incomerCable selects the transformer-to-board feeder conductor from
// the diversified current, on a coarse submain ladder.
func incomerCable(diversifiedA float64) CableRun {
	var sizeMM2 float64
	switch {
	case diversifiedA <= 250:
		sizeMM2 = 120
	case diversifiedA <= 400:
		sizeMM2 = 185
	case diversifiedA <= 600:
		sizeMM2 = 300
	case diversifiedA <= 800:
		sizeMM2 = 400
	default:
		sizeMM2 = 500
	}
	ampacity, _ := standards.Ampacity(types.Core4C, sizeMM2)
	return CableRun{Cores: types.Core4C, SizeMM2: sizeMM2, AmpacityA: ampacity}
}
