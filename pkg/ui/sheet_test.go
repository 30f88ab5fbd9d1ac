package ui

import (
	"strings"
	"testing"

	"jigcalc/pkg/geometry"
)

func fv(v float64) *float64 { return &v }

func sheetParams() geometry.FrameParameters {
	return geometry.FrameParameters{
		HTA:      fv(72),
		STA:      fv(73.5),
		Stack:    fv(560),
		Reach:    fv(385),
		HTLength: fv(145),
		CSLength: fv(420),
		BBDrop:   fv(70),
	}
}

func TestPlainSheetCompleteSnapshot(t *testing.T) {
	out := geometry.Evaluate(geometry.ModeStackReach, sheetParams())
	sheet := PlainSheet(geometry.ModeStackReach, out)

	for _, want := range []string{
		"Fixture setup (Stack / Reach)",
		"ST-HT Angle",
		"539.21",
		"268.62",
		"[ok]",
	} {
		if !strings.Contains(sheet, want) {
			t.Errorf("sheet missing %q:\n%s", want, sheet)
		}
	}
	if strings.Contains(sheet, "—") {
		t.Errorf("complete snapshot should have no placeholder cells:\n%s", sheet)
	}
}

func TestPlainSheetIncompleteCells(t *testing.T) {
	p := sheetParams()
	p.Reach = nil
	out := geometry.Evaluate(geometry.ModeStackReach, p)
	sheet := PlainSheet(geometry.ModeStackReach, out)

	if !strings.Contains(sheet, "—") {
		t.Errorf("missing reach should leave placeholder cells:\n%s", sheet)
	}
	if !strings.Contains(sheet, "[incomplete]") {
		t.Errorf("missing reach should mark cells incomplete:\n%s", sheet)
	}
	// Dropout outputs do not depend on reach.
	if !strings.Contains(sheet, "372.23") {
		t.Errorf("DAX should survive a missing reach:\n%s", sheet)
	}
}

func TestPlainSheetCarriesAdvisoryMessage(t *testing.T) {
	p := sheetParams()
	p.Stack = fv(650)
	p.Reach = fv(390)
	p.HTLength = fv(160)
	out := geometry.Evaluate(geometry.ModeStackReach, p)
	sheet := PlainSheet(geometry.ModeStackReach, out)

	if out.HTY.Status != geometry.StatusConditional {
		t.Fatalf("HTY status = %s, want %s", out.HTY.Status, geometry.StatusConditional)
	}
	if !strings.Contains(sheet, out.HTY.Message) {
		t.Errorf("sheet should carry the advisory message %q:\n%s", out.HTY.Message, sheet)
	}
}

func TestRenderSheetContainsAllRows(t *testing.T) {
	out := geometry.Evaluate(geometry.ModeStackReach, sheetParams())
	sheet := RenderSheet(geometry.ModeStackReach, out)

	for _, label := range []string{"ST-HT Angle", "HTX", "HTY", "DAX", "DAY"} {
		if !strings.Contains(sheet, label) {
			t.Errorf("styled sheet missing row %q", label)
		}
	}
}
