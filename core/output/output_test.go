package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"charger-sizing/core/engine"
	"charger-sizing/core/types"
	"charger-sizing/internal/errors"
)

func TestAmpsOneDecimal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{38.04347826086957, "38.0"},
		{39.69, "39.7"},
		{250, "250.0"},
		{69.963, "70.0"},
	}
	for _, tt := range tests {
		if got := Amps(tt.in); got != tt.want {
			t.Errorf("Amps(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMM2NoTrailingZeros(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2.5, "2.5"},
		{10, "10"},
		{120, "120"},
	}
	for _, tt := range tests {
		if got := MM2(tt.in); got != tt.want {
			t.Errorf("MM2(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBreakerSpecString(t *testing.T) {
	ac := types.BreakerSpec{
		Standard: "AS/NZS 60898", Curve: "C", RatingA: 40,
		RatedVoltageV: 240, Poles: 1, System: types.SystemAC,
	}
	if got := BreakerSpecString(ac); got != "AS/NZS 60898, C-curve, 40A, 240V AC, 1P" {
		t.Errorf("AC spec = %q", got)
	}

	dc := types.BreakerSpec{
		Standard: "AS/NZS 60947.2", RatingA: 250,
		RatedVoltageV: 500, System: types.SystemDC,
	}
	if got := BreakerSpecString(dc); got != "AS/NZS 60947.2, 250A, 500V DC" {
		t.Errorf("DC spec = %q", got)
	}
}

func TestCableString(t *testing.T) {
	c := types.CableSelection{Cores: types.Core2C, SizeMM2: 10, AmpacityA: 46}
	if got := CableString(c); got != "10 mm² 2C PVC/XLPE Cu (46.0A)" {
		t.Errorf("CableString = %q", got)
	}
}

func sampleReport(t *testing.T, withDiagram bool) *Report {
	t.Helper()
	specs := []types.ChargerSpec{
		{Type: types.ChargerAC, CapacityKW: 7, Quantity: 1},
		{Type: types.ChargerDC, CapacityKW: 100, Quantity: 2},
	}
	params := types.DefaultParameters()
	res := engine.Run(specs, params, engine.Options{WithDiagram: withDiagram})
	for i, cr := range res.Circuits {
		if cr.Err != nil {
			t.Fatalf("circuit %d: %v", i, cr.Err)
		}
	}
	return &Report{
		Site:        "Test site",
		GeneratedAt: time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC),
		Version:     "0.1.0",
		Parameters:  params,
		Result:      res,
	}
}

func TestCLIRender(t *testing.T) {
	f, err := New(FormatCLI, Options{NoColor: true, ShowNotes: true})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf, sampleReport(t, false)); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Test site",
		"AS/NZS 60898, C-curve, 40A, 240V AC, 1P",
		"AS/NZS 60947.2, 250A, 500V DC",
		"Main Switchboard",
		"Technical Notes",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("CLI output missing %q", want)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("NoColor output contains ANSI escapes")
	}
}

func TestJSONRenderRoundTrips(t *testing.T) {
	f, err := New(FormatJSON, Options{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf, sampleReport(t, false)); err != nil {
		t.Fatalf("render: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc["site"] != "Test site" {
		t.Errorf("site = %v", doc["site"])
	}
	if _, ok := doc["circuits"]; !ok {
		t.Error("JSON output missing circuits")
	}
	if _, ok := doc["distribution"]; !ok {
		t.Error("JSON output missing distribution")
	}
}

func TestMarkdownRender(t *testing.T) {
	f, err := New(FormatMarkdown, Options{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf, sampleReport(t, false)); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "|") {
		t.Error("markdown output has no tables")
	}
	if !strings.Contains(out, "40A") || !strings.Contains(out, "250A") {
		t.Errorf("markdown output missing breaker ratings:\n%s", out)
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := New("xml", Options{}); err == nil {
		t.Error("expected an error for unknown format")
	}
}

func TestRenderDOT(t *testing.T) {
	r := sampleReport(t, true)
	if r.Result.Graph == nil {
		t.Fatal("report has no diagram")
	}

	var buf bytes.Buffer
	if err := RenderDOT(&buf, r.Result.Graph); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"digraph ev_charger_sld",
		"TR [", "EVDB [", "CB_0", "CH_0", "CB_1", "CH_1", "LEGEND",
		"TR -> EVDB",
		"500kVA",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT output missing %q", want)
		}
	}
	if strings.Count(out, "{") != strings.Count(out, "}") {
		t.Error("unbalanced braces in DOT output")
	}
}

func TestMitigations(t *testing.T) {
	if got := Mitigations(errors.BreakerRatingExceeded(2500)); len(got) != 3 {
		t.Errorf("breaker failure mitigations = %d, want 3", len(got))
	}
	if got := Mitigations(errors.NoLoad()); got != nil {
		t.Errorf("no-load mitigations = %v, want none", got)
	}
	if got := Mitigations(nil); got != nil {
		t.Errorf("nil error mitigations = %v, want none", got)
	}
}
