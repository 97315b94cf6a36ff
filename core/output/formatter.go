// Package output turns computed designs into human and machine
// readable form. All display strings, rounding, and advisory text live
// here; the engine only ever produces structured values.
package output

import (
	"fmt"
	"io"
	"time"

	"charger-sizing/core/engine"
	"charger-sizing/core/types"
	"charger-sizing/internal/errors"
)

// Format represents output format type.
type Format string

const (
	// FormatCLI is a human-readable terminal report.
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON.
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report.
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format.
type Formatter interface {
	// Format returns the format type.
	Format() Format

	// Render produces output for the given report.
	Render(w io.Writer, r *Report) error
}

// Report wraps one engine pass with its execution context.
type Report struct {
	// Site is the installation name, empty when none was given.
	Site string `json:"site,omitempty"`

	// GeneratedAt is when the pass ran.
	GeneratedAt time.Time `json:"generated_at"`

	// Version is the tool version.
	Version string `json:"version"`

	// Parameters are the calculation parameters actually used.
	Parameters types.Parameters `json:"parameters"`

	// Result is the engine output.
	Result *engine.Result `json:"result"`
}

// Options controls presentation details.
type Options struct {
	// NoColor disables ANSI colors in the CLI format.
	NoColor bool

	// ShowNotes includes the technical-notes block.
	ShowNotes bool
}

// New returns a formatter for the requested format.
func New(format Format, opts Options) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &cliFormatter{opts: opts}, nil
	case FormatJSON:
		return &jsonFormatter{}, nil
	case FormatMarkdown:
		return &markdownFormatter{opts: opts}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// Mitigations returns advisory follow-ups for an aggregation failure.
// These are suggestions for the reader, not automated remediation.
func Mitigations(err error) []string {
	switch errors.TypeOf(err) {
	case errors.TypeBreakerRating, errors.TypeBoardCapacity:
		return []string{
			"Use a higher voltage supply system",
			"Split the load across multiple switchboards",
			"Consult a specialist for a custom switchboard solution",
		}
	default:
		return nil
	}
}
