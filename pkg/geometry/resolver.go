package geometry

import (
	"fmt"
	"math"
)

// resolvedGeometry is the canonical stack/reach pair recovered from an
// ETT-based parameterization, plus the HTY correction needed to express the
// result at the head-tube-top reference again.
type resolvedGeometry struct {
	stack float64
	reach float64
	// htyShift is added to the computed HTY. Nonzero only in junction mode,
	// where stack/reach are referenced httoffset below the head tube top.
	htyShift float64
}

// ResolveStackReach recovers the effective (stack, reach) pair for a mode
// that does not supply it directly. Stack/reach mode passes its inputs
// through verbatim; front-center mode has no stack/reach intermediate and is
// rejected here.
func ResolveStackReach(mode Mode, p FrameParameters) (stack, reach float64, err error) {
	g, err := resolve(mode, p)
	if err != nil {
		return 0, 0, err
	}
	return g.stack, g.reach, nil
}

func resolve(mode Mode, p FrameParameters) (resolvedGeometry, error) {
	switch mode {
	case ModeStackReach:
		return resolvedGeometry{stack: *p.Stack, reach: *p.Reach}, nil
	case ModeETTTaiwanese:
		return resolveETT(p, *p.ETTTaiwanese, 0)
	case ModeETTJunction:
		return resolveETT(p, *p.ETTTopTube, *p.HTTOffset)
	}
	return resolvedGeometry{}, fmt.Errorf("mode %q has no stack/reach form", mode)
}

// resolveETT derives stack from the steering-axis column and recovers reach
// from the effective top tube. A nonzero junctionOffset shortens the head
// tube in the stack formula (the junction sits below the head tube top) and
// is added back onto HTY afterwards.
func resolveETT(p FrameParameters, ett, junctionOffset float64) (resolvedGeometry, error) {
	corrected, err := CorrectedForkLength(*p.ForkLength, *p.ForkOffset, p.IsAxleToCrown)
	if err != nil {
		return resolvedGeometry{}, err
	}
	h := degToRad(*p.HTA)
	stack := (*p.HTLength-junctionOffset+corrected+*p.LHSH)*math.Sin(h) -
		*p.ForkOffset*math.Cos(h) + *p.BBDrop
	reach := ett - stack*math.Tan(degToRad(90-*p.STA))
	return resolvedGeometry{stack: stack, reach: reach, htyShift: junctionOffset}, nil
}
