package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"jigcalc/pkg/geometry"
)

// sheetRow is one line of the setup sheet.
type sheetRow struct {
	label string
	cell  geometry.Output
}

func sheetRows(out geometry.FixtureOutputs) []sheetRow {
	return []sheetRow{
		{"ST-HT Angle", out.STHTAngle},
		{"HTX", out.HTX},
		{"HTY", out.HTY},
		{"DAX", out.DAX},
		{"DAY", out.DAY},
	}
}

func formatValue(cell geometry.Output) string {
	if !cell.Status.Computed() {
		return "—"
	}
	return fmt.Sprintf("%.2f", cell.Value)
}

// RenderSheet renders the styled setup sheet shown in the output panel.
func RenderSheet(mode geometry.Mode, out geometry.FixtureOutputs) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Fixture Setup"))
	b.WriteString("\n")
	b.WriteString(HintStyle.Render(mode.Label()))
	b.WriteString("\n\n")

	for _, row := range sheetRows(out) {
		label := LabelStyle.Render(runewidth.FillRight(row.label, 13))
		value := ValueStyle.Render(runewidth.FillLeft(formatValue(row.cell), 9))
		b.WriteString(label + value + "  " + RenderStatusBadge(row.cell.Status))
		b.WriteString("\n")
		if row.cell.Message != "" && row.cell.Status != geometry.StatusOK {
			b.WriteString(HintStyle.Render("  " + row.cell.Message))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// PlainSheet renders the setup sheet as unstyled text, for clipboard copies
// and non-terminal output.
func PlainSheet(mode geometry.Mode, out geometry.FixtureOutputs) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Fixture setup (%s)\n", mode.Label())
	for _, row := range sheetRows(out) {
		fmt.Fprintf(&b, "%s %s  [%s]",
			runewidth.FillRight(row.label, 13),
			runewidth.FillLeft(formatValue(row.cell), 9),
			row.cell.Status)
		if row.cell.Message != "" && row.cell.Status != geometry.StatusOK {
			fmt.Fprintf(&b, " %s", row.cell.Message)
		}
		b.WriteString("\n")
	}
	return b.String()
}
