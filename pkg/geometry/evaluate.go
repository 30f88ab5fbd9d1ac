package geometry

// Status classifies one output cell of an evaluation.
type Status string

const (
	// StatusIncomplete means a required input for the active mode is absent.
	// Not an error: the output simply cannot be computed yet.
	StatusIncomplete Status = "incomplete"
	// StatusOK means the value was computed and the fixture can realize it.
	StatusOK Status = "ok"
	// StatusOutOfRange means the value was computed but falls outside the
	// fixture's physical range.
	StatusOutOfRange Status = "out_of_range"
	// StatusConditional means the value is in range but the head tube top
	// may exceed the fixture's limit depending on head tube diameter.
	StatusConditional Status = "conditional"
	// StatusError means a formula input fell outside its mathematical
	// domain. Upstream validation should have rejected the inputs.
	StatusError Status = "error"
)

// IsValid returns true if the status is a recognized value.
func (s Status) IsValid() bool {
	switch s {
	case StatusIncomplete, StatusOK, StatusOutOfRange, StatusConditional, StatusError:
		return true
	}
	return false
}

// Computed returns true if the cell carries a usable numeric value.
func (s Status) Computed() bool {
	return s == StatusOK || s == StatusOutOfRange || s == StatusConditional
}

// Output is one computed fixture coordinate with its verdict. Value is
// rounded to two decimal places and meaningful only when Status.Computed().
type Output struct {
	Value   float64 `json:"value"`
	Status  Status  `json:"status"`
	Message string  `json:"message,omitempty"`
}

// FixtureOutputs is the full result of one evaluation. The five cells are
// independent: one cell's incompleteness or error never blocks the others.
type FixtureOutputs struct {
	STHTAngle Output `json:"sta_hta"`
	HTX       Output `json:"htx"`
	HTY       Output `json:"hty"`
	DAX       Output `json:"dax"`
	DAY       Output `json:"day"`
}

// AllComputed returns true if every cell carries a numeric value.
func (o FixtureOutputs) AllComputed() bool {
	return o.STHTAngle.Status.Computed() &&
		o.HTX.Status.Computed() &&
		o.HTY.Status.Computed() &&
		o.DAX.Status.Computed() &&
		o.DAY.Status.Computed()
}

// Evaluate computes the five fixture setup outputs for one input snapshot.
// It is a pure function: no state survives between calls, and recomputing
// on every input change is idempotent.
func Evaluate(mode Mode, p FrameParameters) FixtureOutputs {
	return FixtureOutputs{
		STHTAngle: evalSTHTAngle(p),
		HTX:       evalHTX(mode, p),
		HTY:       evalHTY(mode, p),
		DAX:       evalDropout(p, DAX, DAXRange),
		DAY:       evalDropout(p, DAY, DAYRange),
	}
}

func incomplete() Output {
	return Output{Status: StatusIncomplete}
}

func computeError(err error) Output {
	return Output{Status: StatusError, Message: err.Error()}
}

func evalSTHTAngle(p FrameParameters) Output {
	if !p.Has(FieldSTA, FieldHTA) {
		return incomplete()
	}
	return ClassifyValue(Round2(STHTAngle(*p.STA, *p.HTA)), STHTAngleRange)
}

func evalDropout(p FrameParameters, f func(hta, csLength, bbDrop float64) (float64, error), r Range) Output {
	if !p.Has(FieldHTA, FieldCSLength, FieldBBDrop) {
		return incomplete()
	}
	v, err := f(*p.HTA, *p.CSLength, *p.BBDrop)
	if err != nil {
		return computeError(err)
	}
	return ClassifyValue(Round2(v), r)
}

// htxRequired and htyRequired list the per-mode inputs each formula reads.
// Front-center HTX never touches the fork length; front-center HTY never
// touches the head tube length.
func htxRequired(mode Mode) []Field {
	switch mode {
	case ModeStackReach:
		return []Field{FieldHTA, FieldStack, FieldReach}
	case ModeFrontCenter:
		return []Field{FieldHTA, FieldFrontCenter, FieldBBDrop, FieldForkOffset}
	case ModeETTTaiwanese:
		return []Field{FieldHTA, FieldSTA, FieldHTLength, FieldETTTaiwanese,
			FieldForkLength, FieldForkOffset, FieldLHSH, FieldBBDrop}
	case ModeETTJunction:
		return []Field{FieldHTA, FieldSTA, FieldHTLength, FieldETTTopTube, FieldHTTOffset,
			FieldForkLength, FieldForkOffset, FieldLHSH, FieldBBDrop}
	}
	return nil
}

func htyRequired(mode Mode) []Field {
	switch mode {
	case ModeStackReach:
		return []Field{FieldHTA, FieldStack, FieldReach, FieldHTLength}
	case ModeFrontCenter:
		return []Field{FieldHTA, FieldFrontCenter, FieldBBDrop,
			FieldForkLength, FieldForkOffset, FieldLHSH}
	default:
		return htxRequired(mode)
	}
}

func evalHTX(mode Mode, p FrameParameters) Output {
	req := htxRequired(mode)
	if req == nil || !p.Has(req...) {
		return incomplete()
	}
	if mode == ModeFrontCenter {
		v, err := FrontCenterHTX(*p.HTA, *p.FrontCenter, *p.BBDrop, *p.ForkOffset)
		if err != nil {
			return computeError(err)
		}
		return ClassifyValue(Round2(v), HTXRange)
	}
	g, err := resolve(mode, p)
	if err != nil {
		return computeError(err)
	}
	return ClassifyValue(Round2(HTX(*p.HTA, g.stack, g.reach)), HTXRange)
}

func evalHTY(mode Mode, p FrameParameters) Output {
	req := htyRequired(mode)
	if req == nil || !p.Has(req...) {
		return incomplete()
	}
	if mode == ModeFrontCenter {
		corrected, err := CorrectedForkLength(*p.ForkLength, *p.ForkOffset, p.IsAxleToCrown)
		if err != nil {
			return computeError(err)
		}
		v, err := FrontCenterHTY(*p.HTA, *p.FrontCenter, *p.BBDrop, corrected, *p.LHSH)
		if err != nil {
			return computeError(err)
		}
		return ClassifyHTY(Round2(v), p.HTLength)
	}
	g, err := resolve(mode, p)
	if err != nil {
		return computeError(err)
	}
	v := HTY(*p.HTA, *p.HTLength, g.stack, g.reach) + g.htyShift
	return ClassifyHTY(Round2(v), p.HTLength)
}
