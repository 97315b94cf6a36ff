package output

import (
	"fmt"
	"io"

	"charger-sizing/core/sld"
	"charger-sizing/core/types"
)

// RenderDOT writes a Graphviz rendition of the single-line diagram.
// Node content comes straight off the assembled graph; this function
// only decides layout and styling.
func RenderDOT(w io.Writer, g *sld.Graph) error {
	fmt.Fprintln(w, "digraph ev_charger_sld {")
	fmt.Fprintln(w, `  rankdir=LR;`)
	fmt.Fprintln(w, `  fontname="Arial"; fontsize=10;`)
	fmt.Fprintln(w, `  labelloc=t; label="EV CHARGER SINGLE LINE DIAGRAM\n(AS/NZS 3000 COMPLIANT)";`)
	fmt.Fprintln(w)

	t := g.Transformer
	fmt.Fprintf(w, "  TR [shape=plaintext, label=<%s>];\n", htmlTable("DISTRIBUTION TRANSFORMER", [][2]string{
		{"Rating", fmt.Sprintf("%dkVA", t.RatingKVA)},
		{"Voltage", t.VoltageRatio},
		{"Impedance", fmt.Sprintf("%g%% (AS/NZS 60076)", t.ImpedancePct)},
		{"Vector Group", t.VectorGroup},
	}))

	b := g.Board
	fmt.Fprintf(w, "  EVDB [shape=plaintext, label=<%s>];\n", htmlTable("EV DISTRIBUTION BOARD", [][2]string{
		{"Incomer", fmt.Sprintf("%dA, 65kA SCCR", b.IncomerA)},
		{"Busbar", fmt.Sprintf("%dA, Cu, 1A/mm²", b.BusbarA)},
		{"Protection", "Type B RCD (AS/NZS 3000:2018 7.9.2)"},
		{"Standard", "AS/NZS 3439.1 (Form 4B)"},
	}))

	fmt.Fprintf(w, "  TR -> EVDB [fontsize=8, label=\"415V %sx%smm²\\nPVC/SWA/PVC (AS/NZS 5000.1)\\nCurrent Capacity: %sA\"];\n",
		g.Feeder.Cores, MM2(g.Feeder.SizeMM2), Amps(g.Feeder.AmpacityA))
	fmt.Fprintln(w)

	for _, br := range g.Branches {
		cbID := fmt.Sprintf("CB_%d", br.Index)
		chID := fmt.Sprintf("CH_%d", br.Index)

		fmt.Fprintf(w, "  %s [shape=none, width=0.75, label=<%s>];\n", cbID, htmlRows(
			br.DeviceClass,
			fmt.Sprintf("%dA, 10kA", br.Breaker.RatingA),
			br.Breaker.Standard,
		))

		fill := "#c8e6c9"
		if br.ChargerType == types.ChargerDC {
			fill = "#bbdefb"
		}
		fmt.Fprintf(w, "  %s [shape=box, style=\"rounded,filled\", fillcolor=%q, label=<%s>];\n", chID, fill, htmlRows(
			fmt.Sprintf("EV CHARGER %d", br.Index+1),
			fmt.Sprintf("%gkW %s", br.PowerKW, br.ChargerType),
			fmt.Sprintf("%gV", br.VoltageV),
			"AS/NZS 3000:2018 7.9",
		))

		fmt.Fprintf(w, "  EVDB -> %s [style=solid, arrowhead=none];\n", cbID)
		fmt.Fprintf(w, "  %s -> %s [fontsize=8, label=\"%smm² %s PVC/XLPE Cu\\nCurrent Capacity: %sA\\nAS/NZS 3008.1.2\"];\n",
			cbID, chID, MM2(br.Cable.SizeMM2), br.Cable.Cores, Amps(br.Cable.AmpacityA))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "  LEGEND [shape=plaintext, label=<%s>];\n", htmlTable("LEGEND &amp; STANDARDS", [][2]string{
		{"AC Charger", `<FONT COLOR="#c8e6c9">■</FONT>`},
		{"DC Charger", `<FONT COLOR="#bbdefb">■</FONT>`},
		{"Design", "AS/NZS 3000:2018 Wiring Rules"},
		{"EV Charging", "Clause 7.9"},
	}))

	fmt.Fprintln(w, "}")
	return nil
}

// htmlTable builds a two-column HTML-like label with a header row.
func htmlTable(title string, rows [][2]string) string {
	s := `<TABLE BORDER="1" CELLBORDER="0" CELLSPACING="0" CELLPADDING="4">`
	s += fmt.Sprintf(`<TR><TD COLSPAN="2" BGCOLOR="#f0f0f0"><B>%s</B></TD></TR>`, title)
	for _, r := range rows {
		s += fmt.Sprintf(`<TR><TD>%s</TD><TD>%s</TD></TR>`, r[0], r[1])
	}
	return s + `</TABLE>`
}

// htmlRows builds a single-column HTML-like label.
func htmlRows(lines ...string) string {
	s := `<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0">`
	for _, l := range lines {
		s += fmt.Sprintf(`<TR><TD>%s</TD></TR>`, l)
	}
	return s + `</TABLE>`
}
