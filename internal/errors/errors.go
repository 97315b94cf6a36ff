// Package errors provides typed domain errors.
//
// Sizing failures are ordinary return values: the engine reports which
// standards table was exhausted and callers decide how to present that.
// Nothing in this package panics and nothing substitutes a clamped value
// for a failed selection.
package errors

import "fmt"

// Type identifies the category of error.
type Type string

const (
	// TypeInput indicates an input validation error.
	TypeInput Type = "INPUT_ERROR"

	// TypeConfig indicates a configuration error.
	TypeConfig Type = "CONFIG_ERROR"

	// TypeBreakerRating indicates the required current exceeds the
	// largest standard protective-device rating.
	TypeBreakerRating Type = "BREAKER_RATING_EXCEEDED"

	// TypeCableAmpacity indicates no cable cross-section in the
	// applicable table meets the required ampacity.
	TypeCableAmpacity Type = "CABLE_AMPACITY_EXCEEDED"

	// TypeBoardCapacity indicates the diversified current exceeds the
	// largest switchboard catalog entry.
	TypeBoardCapacity Type = "BOARD_CAPACITY_EXCEEDED"

	// TypeNoLoad indicates an aggregation over zero circuits.
	TypeNoLoad Type = "NO_LOAD"

	// TypeInternal indicates an internal error.
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error is a categorized domain error.
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// WithContext attaches a key/value pair for structured reporting.
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates an error of the given category.
func New(t Type, message string) *Error {
	return &Error{Type: t, Message: message}
}

// Newf creates a formatted error of the given category.
func Newf(t Type, format string, args ...interface{}) *Error {
	return &Error{Type: t, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a new error.
func Wrap(t Type, message string, cause error) *Error {
	return &Error{Type: t, Message: message, Cause: cause}
}

// Is reports whether err is a domain error of category t.
func Is(err error, t Type) bool {
	e, ok := err.(*Error)
	return ok && e.Type == t
}

// TypeOf returns the category of err, or TypeInternal for foreign errors.
func TypeOf(err error) Type {
	if e, ok := err.(*Error); ok {
		return e.Type
	}
	return TypeInternal
}

// Input creates an input validation error.
func Input(format string, args ...interface{}) *Error {
	return Newf(TypeInput, format, args...)
}

// BreakerRatingExceeded reports a derated current beyond the breaker ladder.
func BreakerRatingExceeded(requiredA float64) *Error {
	return Newf(TypeBreakerRating, "derated current %.1fA exceeds the largest standard breaker rating", requiredA).
		WithContext("required_a", requiredA)
}

// CableAmpacityExceeded reports a breaker rating no tabulated cable can carry.
func CableAmpacityExceeded(cores string, requiredA float64) *Error {
	return Newf(TypeCableAmpacity, "no %s cable cross-section carries %.1fA", cores, requiredA).
		WithContext("cores", cores).
		WithContext("required_a", requiredA)
}

// BoardCapacityExceeded reports a diversified current beyond the switchboard catalog.
func BoardCapacityExceeded(diversifiedA float64) *Error {
	return Newf(TypeBoardCapacity, "diversified current %.1fA exceeds the largest standard switchboard", diversifiedA).
		WithContext("diversified_a", diversifiedA)
}

// NoLoad reports an aggregation with no connected circuits.
func NoLoad() *Error {
	return New(TypeNoLoad, "no circuits connected")
}
