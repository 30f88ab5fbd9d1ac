package geometry

import (
	"errors"
	"fmt"
	"math"
)

// Domain errors. Upstream validation (CheckParameters) rejects inputs that
// would trigger these; the calculator still fails fast rather than feeding
// NaN into rounding and range checks.
var (
	// ErrNegativeRadicand indicates a square root of a negative number,
	// e.g. an axle-to-crown fork length shorter than its offset.
	ErrNegativeRadicand = errors.New("geometry: negative radicand")
	// ErrArcsineDomain indicates an asin argument outside [-1, 1],
	// e.g. a BB drop larger than the chainstay length.
	ErrArcsineDomain = errors.New("geometry: arcsine argument outside [-1, 1]")
)

// degToRad converts degrees to radians. All public functions take degrees;
// the trig runs in radians internally.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Round2 rounds a value to two decimal places for presentation. Raw values
// stay in play for any further derivation except the head-tube-top check,
// which by reference behavior adds raw head tube length to the rounded HTY.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CorrectedForkLength projects an axle-to-crown fork measurement onto the
// steering axis. When axleToCrown is false the length is already along the
// axis and passes through unchanged.
func CorrectedForkLength(forkLength, forkOffset float64, axleToCrown bool) (float64, error) {
	if !axleToCrown {
		return forkLength, nil
	}
	radicand := forkLength*forkLength - forkOffset*forkOffset
	if radicand < 0 {
		return 0, fmt.Errorf("fork offset %.2f exceeds axle-to-crown length %.2f: %w",
			forkOffset, forkLength, ErrNegativeRadicand)
	}
	return math.Sqrt(radicand), nil
}

// STHTAngle is the single adjustable angle of the fixture joint.
func STHTAngle(sta, hta float64) float64 {
	return sta - hta
}

// HTX is the horizontal fixture coordinate of the head tube, derived from
// the BB-to-head-tube-top vector:
//
//	htx = sqrt(stack² + reach²) · sin(180° − hta − atan(stack/reach))
func HTX(hta, stack, reach float64) float64 {
	r := math.Hypot(stack, reach)
	theta := math.Pi - degToRad(hta) - math.Atan(stack/reach)
	return r * math.Sin(theta)
}

// HTY is the vertical fixture coordinate of the head tube:
//
//	hty = sqrt(stack² + reach²) · cos(180° − hta − atan(stack/reach)) − htlength
func HTY(hta, htLength, stack, reach float64) float64 {
	r := math.Hypot(stack, reach)
	theta := math.Pi - degToRad(hta) - math.Atan(stack/reach)
	return r*math.Cos(theta) - htLength
}

// FrontCenterHTX is the direct closed form for HTX in front-center mode; no
// stack/reach intermediate is produced.
func FrontCenterHTX(hta, frontCenter, bbDrop, forkOffset float64) (float64, error) {
	radicand := frontCenter*frontCenter - bbDrop*bbDrop
	if radicand < 0 {
		return 0, fmt.Errorf("bb drop %.2f exceeds front center %.2f: %w",
			bbDrop, frontCenter, ErrNegativeRadicand)
	}
	h := degToRad(hta)
	return math.Sin(h)*math.Sqrt(radicand) + bbDrop*math.Cos(h) - forkOffset, nil
}

// FrontCenterHTY is the direct closed form for HTY in front-center mode.
// correctedFork must already be projected onto the steering axis.
func FrontCenterHTY(hta, frontCenter, bbDrop, correctedFork, lowerHeadset float64) (float64, error) {
	radicand := frontCenter*frontCenter - bbDrop*bbDrop
	if radicand < 0 {
		return 0, fmt.Errorf("bb drop %.2f exceeds front center %.2f: %w",
			bbDrop, frontCenter, ErrNegativeRadicand)
	}
	h := degToRad(hta)
	return correctedFork + lowerHeadset - (math.Sqrt(radicand)*math.Cos(h) - bbDrop*math.Sin(h)), nil
}

// DAX is the horizontal fixture coordinate of the rear dropout axle:
//
//	dax = cslength · cos(90° − hta + asin(bbdrop/cslength))
func DAX(hta, csLength, bbDrop float64) (float64, error) {
	a, err := dropoutAngle(hta, csLength, bbDrop)
	if err != nil {
		return 0, err
	}
	return csLength * math.Cos(a), nil
}

// DAY is the vertical fixture coordinate of the rear dropout axle:
//
//	day = cslength · sin(90° − hta + asin(bbdrop/cslength))
func DAY(hta, csLength, bbDrop float64) (float64, error) {
	a, err := dropoutAngle(hta, csLength, bbDrop)
	if err != nil {
		return 0, err
	}
	return csLength * math.Sin(a), nil
}

// dropoutAngle is the chainstay angle shared by DAX and DAY; the two outputs
// are orthogonal projections of the same chainstay vector, so
// dax² + day² == cslength² for all valid inputs.
func dropoutAngle(hta, csLength, bbDrop float64) (float64, error) {
	ratio := bbDrop / csLength
	if ratio < -1 || ratio > 1 {
		return 0, fmt.Errorf("bb drop %.2f exceeds chainstay length %.2f: %w",
			bbDrop, csLength, ErrArcsineDomain)
	}
	return math.Pi/2 - degToRad(hta) + math.Asin(ratio), nil
}
