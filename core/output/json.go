package output

import (
	"encoding/json"
	"io"
	"time"

	"charger-sizing/core/sld"
	"charger-sizing/core/types"
	"charger-sizing/internal/errors"
)

// jsonFormatter renders machine-readable JSON. Errors are serialized
// as structured failure objects; currents stay at full precision so
// downstream tooling can make its own display decisions.
type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format { return FormatJSON }

// jsonFailure is the wire form of a typed error.
type jsonFailure struct {
	Type        string   `json:"type"`
	Message     string   `json:"message"`
	Mitigations []string `json:"mitigations,omitempty"`
}

type jsonCircuit struct {
	Spec        types.ChargerSpec    `json:"spec"`
	Design      *types.CircuitDesign `json:"design,omitempty"`
	BreakerSpec string               `json:"breaker_spec,omitempty"`
	CableType   string               `json:"cable_type,omitempty"`
	Failure     *jsonFailure         `json:"failure,omitempty"`
}

type jsonReport struct {
	Site               string                    `json:"site,omitempty"`
	GeneratedAt        time.Time                 `json:"generated_at"`
	Version            string                    `json:"version"`
	Parameters         types.Parameters          `json:"parameters"`
	Circuits           []jsonCircuit             `json:"circuits"`
	Distribution       *types.DistributionDesign `json:"distribution,omitempty"`
	BoardLabel         string                    `json:"board_label,omitempty"`
	DistributionError  *jsonFailure              `json:"distribution_failure,omitempty"`
	AggregationSkipped bool                      `json:"aggregation_skipped,omitempty"`
	Diagram            *sld.Graph                `json:"diagram,omitempty"`
}

func failureOf(err error) *jsonFailure {
	if err == nil {
		return nil
	}
	f := &jsonFailure{Type: string(errors.TypeOf(err)), Mitigations: Mitigations(err)}
	if e, ok := err.(*errors.Error); ok {
		f.Message = e.Message
	} else {
		f.Message = err.Error()
	}
	return f
}

func (f *jsonFormatter) Render(w io.Writer, r *Report) error {
	out := jsonReport{
		Site:               r.Site,
		GeneratedAt:        r.GeneratedAt,
		Version:            r.Version,
		Parameters:         r.Parameters,
		Distribution:       r.Result.Distribution,
		DistributionError:  failureOf(r.Result.DistErr),
		AggregationSkipped: r.Result.AggregationSkipped,
		Diagram:            r.Result.Graph,
	}
	if r.Result.Distribution != nil {
		out.BoardLabel = BoardLabel(r.Result.Distribution)
	}

	for _, cr := range r.Result.Circuits {
		jc := jsonCircuit{Spec: cr.Spec, Design: cr.Design, Failure: failureOf(cr.Err)}
		if cr.Design != nil {
			jc.BreakerSpec = BreakerSpecString(cr.Design.Breaker)
			jc.CableType = CableTypeString(cr.Design.Cable)
		}
		out.Circuits = append(out.Circuits, jc)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
