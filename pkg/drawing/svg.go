// Package drawing renders a fixture setup sheet as SVG: the main rail, the
// head tube located at (HTX, HTY), and the rear dropout at (DAX, DAY), with
// the computed values as dimension labels.
package drawing

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"jigcalc/pkg/geometry"
)

const (
	margin = 60  // px border around the drawing
	scale  = 0.6 // px per mm
)

// Styles for the drawing elements.
const (
	railStyle    = "stroke:#44475a;stroke-width:4"
	tubeStyle    = "stroke:#bd93f9;stroke-width:8;stroke-linecap:round"
	axleStyle    = "fill:none;stroke:#8be9fd;stroke-width:3"
	datumStyle   = "fill:#ff79c6"
	guideStyle   = "stroke:#6272a4;stroke-width:1;stroke-dasharray:6,4"
	labelStyle   = "fill:#f8f8f2;font-size:14px;font-family:monospace"
	captionStyle = "fill:#6272a4;font-size:12px;font-family:monospace"
)

// WriteSVG renders the setup sheet for one evaluation. Every output must
// carry a computed value; incomplete or errored evaluations have no geometry
// to draw. htLength is the head tube length used to draw the tube itself
// (zero draws the fixture's minimum).
func WriteSVG(w io.Writer, mode geometry.Mode, out geometry.FixtureOutputs, htLength float64) error {
	if !out.AllComputed() {
		return fmt.Errorf("cannot draw: not all outputs are computed")
	}
	if htLength <= 0 {
		htLength = geometry.MinHeadTubeLength
	}

	htx := out.HTX.Value
	hty := out.HTY.Value
	dax := out.DAX.Value
	day := out.DAY.Value

	// Fixture plane: x along the rail with the BB post at the origin, head
	// tube toward +x, rear dropout toward -x, y perpendicular to the rail.
	maxY := hty + htLength
	if day > maxY {
		maxY = day
	}
	width := int((dax+htx)*scale) + 2*margin
	height := int(maxY*scale) + 2*margin

	// px/py map fixture coordinates into the SVG viewport (y flipped).
	originX := float64(margin) + dax*scale
	px := func(x float64) int { return int(originX + x*scale) }
	py := func(y float64) int { return height - margin - int(y*scale) }

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title("Fixture setup")
	canvas.Rect(0, 0, width, height, "fill:#282a36")

	// Main rail.
	canvas.Line(px(-dax)-margin/2, py(0), px(htx)+margin/2, py(0), railStyle)

	// BB post datum.
	canvas.Circle(px(0), py(0), 6, datumStyle)
	canvas.Text(px(0)+10, py(0)-10, "BB", labelStyle)

	// Head tube, perpendicular to the rail.
	canvas.Line(px(htx), py(hty), px(htx), py(hty+htLength), tubeStyle)
	canvas.Line(px(htx), py(0), px(htx), py(hty), guideStyle)
	canvas.Text(px(htx)+10, py(hty+htLength/2),
		fmt.Sprintf("HTX %.2f  HTY %.2f", htx, hty), labelStyle)

	// Rear dropout axle.
	canvas.Circle(px(-dax), py(day), 8, axleStyle)
	canvas.Line(px(-dax), py(0), px(-dax), py(day), guideStyle)
	canvas.Text(px(-dax)+12, py(day)-10,
		fmt.Sprintf("DAX %.2f  DAY %.2f", dax, day), labelStyle)

	// Caption with the joint angle and mode.
	canvas.Text(margin, height-margin/3,
		fmt.Sprintf("ST-HT %.2f deg  ·  %s", out.STHTAngle.Value, mode.Label()), captionStyle)

	canvas.End()
	return nil
}
