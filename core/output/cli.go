package output

import (
	"fmt"
	"io"

	"charger-sizing/core/types"
)

// ANSI colors for terminal output.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// cliFormatter renders a human-readable terminal report.
type cliFormatter struct {
	opts Options
}

func (f *cliFormatter) Format() Format { return FormatCLI }

func (f *cliFormatter) color(c, text string) string {
	if f.opts.NoColor {
		return text
	}
	return c + text + reset
}

func (f *cliFormatter) header(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, f.color(bold+cyan, "━━━ "+title+" ━━━"))
	fmt.Fprintln(w)
}

func (f *cliFormatter) Render(w io.Writer, r *Report) error {
	title := "EV Charger Sizing"
	if r.Site != "" {
		title += " — " + r.Site
	}
	f.header(w, title)

	for i, cr := range r.Result.Circuits {
		label := fmt.Sprintf("Circuit %d: %s %g kW × %d",
			i+1, cr.Spec.Type, cr.Spec.CapacityKW, cr.Spec.Quantity)
		fmt.Fprintln(w, f.color(bold, "▸ "+label))

		if cr.Err != nil {
			fmt.Fprintln(w, "  "+f.color(red, "✗ "+cr.Err.Error()))
			continue
		}

		d := cr.Design
		fmt.Fprintf(w, "  %-26s %gV %s\n", "Supply", d.VoltageV, d.Phase)
		fmt.Fprintf(w, "  %-26s %sA (derated %sA)\n", "Full load current", Amps(d.FullLoadA), Amps(d.DeratedA))
		if d.ChargerType == types.ChargerDC {
			fmt.Fprintf(w, "  %-26s %sA (derated %sA)\n", "AC input current", Amps(d.ACInputA), Amps(d.DeratedACInputA))
		}
		fmt.Fprintf(w, "  %-26s %dA — %s\n", "Protective device", d.Breaker.RatingA, BreakerSpecString(d.Breaker))
		fmt.Fprintf(w, "  %-26s %s\n", "Cable", CableString(d.Cable))
		fmt.Fprintln(w)
	}

	f.renderDistribution(w, r)

	if f.opts.ShowNotes {
		f.renderNotes(w, r)
	}
	return nil
}

func (f *cliFormatter) renderDistribution(w io.Writer, r *Report) {
	f.header(w, "Main Switchboard (MSB)")

	res := r.Result
	switch {
	case res.AggregationSkipped:
		fmt.Fprintln(w, f.color(yellow, "⚠ Aggregation skipped: one or more circuits failed sizing."))
	case res.DistErr != nil:
		fmt.Fprintln(w, f.color(red, "✗ "+res.DistErr.Error()))
		for _, m := range Mitigations(res.DistErr) {
			fmt.Fprintln(w, "  - "+m)
		}
	case res.Distribution != nil:
		d := res.Distribution
		fmt.Fprintf(w, "  %-26s %s kW\n", "Total connected load", Kilowatts(d.TotalConnectedKW))
		fmt.Fprintf(w, "  %-26s %s A\n", "Total derated AC current", Amps(d.TotalDeratedACA))
		fmt.Fprintf(w, "  %-26s %s A (diversity %g)\n", "Diversified current", Amps(d.DiversifiedA), d.DiversityFactor)
		fmt.Fprintf(w, "  %-26s %d A\n", "Main breaker", d.MainBreakerA)
		fmt.Fprintf(w, "  %-26s %s\n", "Recommended board", BoardLabel(d))
		fmt.Fprintf(w, "  %-26s %d A\n", "Busbar rating", d.BusbarA)
		fmt.Fprintf(w, "  %-26s %s mm\n", "Enclosure (WxDxH)", d.BoardDimensionsMM)
		fmt.Fprintln(w, f.color(green, "\n✓ Design complete"))
	}
}

func (f *cliFormatter) renderNotes(w io.Writer, r *Report) {
	p := r.Parameters
	f.header(w, "Technical Notes (AS/NZS)")
	fmt.Fprintf(w, "  - Safety factor %gx for continuous loads (AS/NZS 3000 Clause 2.5.7.2)\n", p.SafetyFactor)
	fmt.Fprintf(w, "  - Diversity factor %g applied (AS/NZS 3000 Clause 2.2)\n", p.DiversityFactor)
	fmt.Fprintf(w, "  - DC charger AC input at %g%% efficiency, %g power factor\n", p.DCEfficiency*100, p.PowerFactor)
	fmt.Fprintf(w, "  - AC system %gV three-phase, DC chargers at %gV\n", p.ACVoltageV, p.DCVoltageV)
	fmt.Fprintf(w, "  - Cable capacities per AS/NZS 3008:2017, switchboards per AS/NZS 3439\n")
}
