package api

import (
	"charger-sizing/core/input"
	"charger-sizing/core/output"
	"charger-sizing/core/types"
	"charger-sizing/internal/errors"
)

// SizeRequest is the body of POST /size: a one-shot, stateless sizing
// pass over the supplied chargers.
type SizeRequest struct {
	// Site is an optional installation label.
	Site string `json:"site,omitempty"`

	// Parameters overrides applied over the server defaults.
	Parameters *input.ParameterOverrides `json:"parameters,omitempty"`

	// Chargers is the ordered charger list.
	Chargers []types.ChargerSpec `json:"chargers"`

	// IncludeDiagram assembles and returns the SLD topology.
	IncludeDiagram bool `json:"include_diagram,omitempty"`
}

// AddChargerRequest is the body of POST /chargers.
type AddChargerRequest struct {
	Type       types.ChargerType `json:"type"`
	CapacityKW float64           `json:"capacity_kw"`
	Quantity   int               `json:"quantity"`
}

// Spec converts the request to a domain spec, defaulting quantity to 1.
func (r AddChargerRequest) Spec() types.ChargerSpec {
	q := r.Quantity
	if q == 0 {
		q = 1
	}
	return types.ChargerSpec{Type: r.Type, CapacityKW: r.CapacityKW, Quantity: q}
}

// ErrorBody is the error envelope returned on failures.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a single failure.
type ErrorDetail struct {
	Type        string   `json:"type"`
	Message     string   `json:"message"`
	Mitigations []string `json:"mitigations,omitempty"`
}

// errorBody builds the envelope for a (typically typed) error.
func errorBody(err error) ErrorBody {
	return ErrorBody{Error: ErrorDetail{
		Type:        string(errors.TypeOf(err)),
		Message:     err.Error(),
		Mitigations: output.Mitigations(err),
	}}
}
