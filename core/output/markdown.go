package output

import (
	"fmt"
	"io"
)

// markdownFormatter renders a markdown report suitable for pasting
// into design documents or review comments.
type markdownFormatter struct {
	opts Options
}

func (f *markdownFormatter) Format() Format { return FormatMarkdown }

func (f *markdownFormatter) Render(w io.Writer, r *Report) error {
	title := "EV Charger Sizing"
	if r.Site != "" {
		title += " — " + r.Site
	}
	fmt.Fprintf(w, "# %s\n\n", title)

	fmt.Fprintln(w, "## Circuit Schedule")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| # | Type | Capacity (kW) | Qty | Breaker (A) | Cable (mm²) | Status |")
	fmt.Fprintln(w, "|---|------|---------------|-----|-------------|-------------|--------|")
	for i, cr := range r.Result.Circuits {
		if cr.Err != nil {
			fmt.Fprintf(w, "| %d | %s | %g | %d | — | — | %s |\n",
				i+1, cr.Spec.Type, cr.Spec.CapacityKW, cr.Spec.Quantity, cr.Err.Error())
			continue
		}
		d := cr.Design
		fmt.Fprintf(w, "| %d | %s | %g | %d | %d | %s | OK |\n",
			i+1, cr.Spec.Type, cr.Spec.CapacityKW, cr.Spec.Quantity,
			d.Breaker.RatingA, MM2(d.Cable.SizeMM2))
	}
	fmt.Fprintln(w)

	res := r.Result
	fmt.Fprintln(w, "## Main Switchboard")
	fmt.Fprintln(w)
	switch {
	case res.AggregationSkipped:
		fmt.Fprintln(w, "Aggregation skipped: one or more circuits failed sizing.")
	case res.DistErr != nil:
		fmt.Fprintf(w, "**Failed:** %s\n\n", res.DistErr.Error())
		for _, m := range Mitigations(res.DistErr) {
			fmt.Fprintf(w, "- %s\n", m)
		}
	case res.Distribution != nil:
		d := res.Distribution
		fmt.Fprintln(w, "| Metric | Value |")
		fmt.Fprintln(w, "|--------|-------|")
		fmt.Fprintf(w, "| Total connected load | %s kW |\n", Kilowatts(d.TotalConnectedKW))
		fmt.Fprintf(w, "| Total derated AC current | %s A |\n", Amps(d.TotalDeratedACA))
		fmt.Fprintf(w, "| Diversity factor | %g |\n", d.DiversityFactor)
		fmt.Fprintf(w, "| Diversified current | %s A |\n", Amps(d.DiversifiedA))
		fmt.Fprintf(w, "| Main breaker | %d A |\n", d.MainBreakerA)
		fmt.Fprintf(w, "| Recommended board | %s |\n", BoardLabel(d))
		fmt.Fprintf(w, "| Busbar rating | %d A |\n", d.BusbarA)
		fmt.Fprintf(w, "| Enclosure (WxDxH) | %s mm |\n", d.BoardDimensionsMM)
	}
	fmt.Fprintln(w)

	if f.opts.ShowNotes {
		p := r.Parameters
		fmt.Fprintln(w, "## Technical Notes")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "- Safety factor %gx for continuous loads (AS/NZS 3000 Clause 2.5.7.2)\n", p.SafetyFactor)
		fmt.Fprintf(w, "- Diversity factor %g applied (AS/NZS 3000 Clause 2.2)\n", p.DiversityFactor)
		fmt.Fprintf(w, "- DC charger AC input at %g%% efficiency, %g power factor\n", p.DCEfficiency*100, p.PowerFactor)
		fmt.Fprintf(w, "- AC system %gV three-phase, DC chargers at %gV\n", p.ACVoltageV, p.DCVoltageV)
	}
	return nil
}
