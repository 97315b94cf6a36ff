// Package engine orchestrates a full recomputation pass: size every
// charger entry, aggregate the survivors into a distribution design,
// and optionally assemble the diagram topology. The engine holds no
// state between runs; parameter changes invalidate everything, so each
// pass recomputes from scratch instead of patching.
package engine

import (
	"go.uber.org/zap"

	"charger-sizing/core/sizing"
	"charger-sizing/core/sld"
	"charger-sizing/core/types"
	"charger-sizing/internal/logging"
)

// CircuitResult is the outcome of sizing one charger entry. Err is nil
// exactly when Design is set.
type CircuitResult struct {
	Spec   types.ChargerSpec    `json:"spec"`
	Design *types.CircuitDesign `json:"design,omitempty"`
	Err    error                `json:"-"`
}

// Result is the outcome of one recomputation pass.
type Result struct {
	// Circuits has one entry per input spec, in input order.
	Circuits []CircuitResult `json:"circuits"`

	// Loads are the successfully sized circuits with quantities,
	// in input order.
	Loads []types.CircuitLoad `json:"-"`

	// Distribution is the switchboard design, nil if aggregation was
	// skipped or failed.
	Distribution *types.DistributionDesign `json:"distribution,omitempty"`

	// DistErr is the aggregation failure, nil when Distribution is set
	// or aggregation was skipped.
	DistErr error `json:"-"`

	// AggregationSkipped is true when one or more circuits failed
	// sizing. A partial board design would be misleading, so none is
	// attempted; the independent circuit results still stand.
	AggregationSkipped bool `json:"aggregation_skipped,omitempty"`

	// Graph is the diagram topology, assembled only on request and
	// only over a complete distribution design.
	Graph *sld.Graph `json:"graph,omitempty"`
}

// Options controls a run.
type Options struct {
	// WithDiagram assembles the single-line-diagram topology.
	WithDiagram bool
}

// Run executes one full pass over a snapshot of charger entries.
func Run(specs []types.ChargerSpec, params types.Parameters, opts Options) *Result {
	res := &Result{}

	for _, spec := range specs {
		design, err := sizing.SizeCircuit(spec.Type, spec.CapacityKW, params)
		res.Circuits = append(res.Circuits, CircuitResult{Spec: spec, Design: design, Err: err})
		if err != nil {
			logging.Warn("circuit sizing failed",
				zap.String("type", spec.Type.String()),
				zap.Float64("capacity_kw", spec.CapacityKW),
				zap.Error(err))
			res.AggregationSkipped = true
			continue
		}
		res.Loads = append(res.Loads, types.CircuitLoad{Design: design, Quantity: spec.Quantity})
	}

	if res.AggregationSkipped {
		return res
	}

	dist, err := sizing.AggregateDistribution(res.Loads, params)
	if err != nil {
		res.DistErr = err
		return res
	}
	res.Distribution = dist

	if opts.WithDiagram {
		res.Graph = sld.Assemble(res.Loads, dist, params)
	}

	return res
}
