package geometry

// Range is an inclusive bound pair for one fixture output.
type Range struct {
	Min float64
	Max float64
}

// Contains reports inclusive membership.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Physical ranges of the fixture, in the units of the frame dimensions.
// These describe the hardware and are not user-configurable.
var (
	STHTAngleRange = Range{Min: -10, Max: 10}
	HTXRange       = Range{Min: 80, Max: 700}
	HTYRange       = Range{Min: 0, Max: 400}
	DAXRange       = Range{Min: 50, Max: 600}
	DAYRange       = Range{Min: 0, Max: 250}
)

const (
	// MinHeadTubeLength is the minimum head tube length assumed for the
	// largest supported head tube diameter.
	MinHeadTubeLength = 60.0
	// HeadTubeConeRange is the difference in usable Y between the narrowest
	// and widest supported head tube diameters at a fixed length.
	HeadTubeConeRange = 20.0
)

// Derived head-tube-top limits. A head tube top above MaxHTYTopSmallest may
// foul the fixture depending on diameter; above MaxHTYTopLargest it fouls
// regardless.
var (
	MaxHTYTopLargest  = HTYRange.Max + MinHeadTubeLength     // 460
	MaxHTYTopSmallest = MaxHTYTopLargest - HeadTubeConeRange // 440
)

// Advisory messages surfaced with non-ok verdicts.
const (
	MsgOutOfRange         = "Out of range"
	MsgHeadTubeTopOver    = "Head tube top exceeds the fixture's upper limit"
	MsgHeadTubeTopMayOver = "Head tube top may exceed the fixture's upper limit depending on head tube diameter"
)

// ClassifyValue checks a rounded output value against its range and returns
// the finished output cell.
func ClassifyValue(rounded float64, r Range) Output {
	if !r.Contains(rounded) {
		return Output{Value: rounded, Status: StatusOutOfRange, Message: MsgOutOfRange}
	}
	return Output{Value: rounded, Status: StatusOK}
}

// ClassifyHTY applies the two-stage HTY check: primary bounds first, then
// the head-tube-top advisory. The top height adds the raw head tube length
// to the already-rounded HTY, matching reference behavior. htLength may be
// nil in front-center mode, where the closed forms never read it; the
// advisory stage is skipped then.
func ClassifyHTY(rounded float64, htLength *float64) Output {
	if !HTYRange.Contains(rounded) {
		return Output{Value: rounded, Status: StatusOutOfRange, Message: MsgOutOfRange}
	}
	if htLength == nil {
		return Output{Value: rounded, Status: StatusOK}
	}
	top := rounded + *htLength
	switch {
	case top > MaxHTYTopLargest:
		return Output{Value: rounded, Status: StatusConditional, Message: MsgHeadTubeTopOver}
	case top > MaxHTYTopSmallest:
		return Output{Value: rounded, Status: StatusConditional, Message: MsgHeadTubeTopMayOver}
	}
	return Output{Value: rounded, Status: StatusOK}
}
