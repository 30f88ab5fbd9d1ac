// Package geometry converts standard bicycle frame geometry into the setup
// coordinates of a frame-building fixture whose head tube is fixed
// perpendicular to the main rail. It is kept free of UI dependencies so the
// computation core stays pure and testable.
package geometry

// Field identifies a single raw input dimension. The names match the field
// identifiers used on printed geometry charts.
type Field string

const (
	FieldHTA          Field = "hta"          // head tube angle, degrees
	FieldSTA          Field = "sta"          // seat tube angle above the bend, degrees
	FieldHTLength     Field = "htlength"     // head tube length
	FieldStack        Field = "stack"        // BB center to head tube top, vertical
	FieldReach        Field = "reach"        // BB center to head tube top, horizontal
	FieldFrontCenter  Field = "frontcenter"  // BB center to front axle, straight line
	FieldETTTaiwanese Field = "etttaiwanese" // effective top tube at head tube top
	FieldETTTopTube   Field = "etttt"        // effective top tube at the HT-TT junction
	FieldHTTOffset    Field = "httoffset"    // junction drop below the head tube top
	FieldForkLength   Field = "forklength"   // fork length, axis or axle-to-crown
	FieldForkOffset   Field = "forkoffset"   // fork offset (rake), signed
	FieldLHSH         Field = "lhsh"         // lower headset stack height
	FieldCSLength     Field = "cslength"     // chainstay length
	FieldBBDrop       Field = "bbdrop"       // bottom bracket drop, signed
)

// Label returns a human-readable name for the field.
func (f Field) Label() string {
	switch f {
	case FieldHTA:
		return "Head Tube Angle"
	case FieldSTA:
		return "Seat Tube Angle"
	case FieldHTLength:
		return "Head Tube Length"
	case FieldStack:
		return "Stack"
	case FieldReach:
		return "Reach"
	case FieldFrontCenter:
		return "Front Center"
	case FieldETTTaiwanese:
		return "Eff. Top Tube (HT Top)"
	case FieldETTTopTube:
		return "Eff. Top Tube (HT-TT)"
	case FieldHTTOffset:
		return "HT-TT Junction Offset"
	case FieldForkLength:
		return "Fork Length"
	case FieldForkOffset:
		return "Fork Offset"
	case FieldLHSH:
		return "Lower Headset Height"
	case FieldCSLength:
		return "Chainstay Length"
	case FieldBBDrop:
		return "BB Drop"
	}
	return string(f)
}

// Mode selects which raw fields drive the geometry resolution. Exactly one
// mode is active per evaluation; fields outside the active mode's set are
// ignored even when populated.
type Mode string

const (
	// ModeStackReach uses stack and reach verbatim.
	ModeStackReach Mode = "stack_reach"
	// ModeFrontCenter derives HTX/HTY directly from front center and BB drop.
	ModeFrontCenter Mode = "front_center"
	// ModeETTTaiwanese recovers stack/reach from the effective top tube
	// measured at the head tube top.
	ModeETTTaiwanese Mode = "ett_taiwanese"
	// ModeETTJunction recovers stack/reach from the effective top tube
	// measured at the HT-TT junction, httoffset below the head tube top.
	ModeETTJunction Mode = "ett_ht_tt"
)

// Modes lists all primary dimension modes in display order.
func Modes() []Mode {
	return []Mode{ModeStackReach, ModeFrontCenter, ModeETTTaiwanese, ModeETTJunction}
}

// IsValid returns true if the mode is a recognized value.
func (m Mode) IsValid() bool {
	switch m {
	case ModeStackReach, ModeFrontCenter, ModeETTTaiwanese, ModeETTJunction:
		return true
	}
	return false
}

// Label returns a human-readable name for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeStackReach:
		return "Stack / Reach"
	case ModeFrontCenter:
		return "Front Center"
	case ModeETTTaiwanese:
		return "ETT (Taiwanese)"
	case ModeETTJunction:
		return "ETT at HT-TT Junction"
	}
	return string(m)
}

// Fields returns the raw fields that are semantically meaningful for the
// mode, in form display order. Head tube length appears in front-center mode
// only for the head-tube-top advisory check; the HTX/HTY closed forms there
// do not read it.
func (m Mode) Fields() []Field {
	switch m {
	case ModeStackReach:
		return []Field{
			FieldHTA, FieldSTA, FieldStack, FieldReach, FieldHTLength,
			FieldCSLength, FieldBBDrop,
		}
	case ModeFrontCenter:
		return []Field{
			FieldHTA, FieldSTA, FieldFrontCenter, FieldForkLength,
			FieldForkOffset, FieldLHSH, FieldHTLength, FieldCSLength, FieldBBDrop,
		}
	case ModeETTTaiwanese:
		return []Field{
			FieldHTA, FieldSTA, FieldHTLength, FieldETTTaiwanese,
			FieldForkLength, FieldForkOffset, FieldLHSH, FieldCSLength, FieldBBDrop,
		}
	case ModeETTJunction:
		return []Field{
			FieldHTA, FieldSTA, FieldHTLength, FieldETTTopTube, FieldHTTOffset,
			FieldForkLength, FieldForkOffset, FieldLHSH, FieldCSLength, FieldBBDrop,
		}
	}
	return nil
}

// UsesFork returns true if the mode reads fork length and the axle-to-crown
// flag.
func (m Mode) UsesFork() bool {
	return m != ModeStackReach
}

// FrameParameters is one snapshot of raw inputs. A nil field is absent; the
// evaluator treats absence as "cannot compute yet", never as zero.
type FrameParameters struct {
	HTA           *float64 `json:"hta,omitempty" yaml:"hta,omitempty"`
	STA           *float64 `json:"sta,omitempty" yaml:"sta,omitempty"`
	HTLength      *float64 `json:"htlength,omitempty" yaml:"htlength,omitempty"`
	Stack         *float64 `json:"stack,omitempty" yaml:"stack,omitempty"`
	Reach         *float64 `json:"reach,omitempty" yaml:"reach,omitempty"`
	FrontCenter   *float64 `json:"frontcenter,omitempty" yaml:"frontcenter,omitempty"`
	ETTTaiwanese  *float64 `json:"etttaiwanese,omitempty" yaml:"etttaiwanese,omitempty"`
	ETTTopTube    *float64 `json:"etttt,omitempty" yaml:"etttt,omitempty"`
	HTTOffset     *float64 `json:"httoffset,omitempty" yaml:"httoffset,omitempty"`
	ForkLength    *float64 `json:"forklength,omitempty" yaml:"forklength,omitempty"`
	ForkOffset    *float64 `json:"forkoffset,omitempty" yaml:"forkoffset,omitempty"`
	LHSH          *float64 `json:"lhsh,omitempty" yaml:"lhsh,omitempty"`
	CSLength      *float64 `json:"cslength,omitempty" yaml:"cslength,omitempty"`
	BBDrop        *float64 `json:"bbdrop,omitempty" yaml:"bbdrop,omitempty"`
	IsAxleToCrown bool     `json:"isAxleToCrown,omitempty" yaml:"axle_to_crown,omitempty"`
}

// Value returns the stored value for a field, or nil when absent.
func (p *FrameParameters) Value(f Field) *float64 {
	switch f {
	case FieldHTA:
		return p.HTA
	case FieldSTA:
		return p.STA
	case FieldHTLength:
		return p.HTLength
	case FieldStack:
		return p.Stack
	case FieldReach:
		return p.Reach
	case FieldFrontCenter:
		return p.FrontCenter
	case FieldETTTaiwanese:
		return p.ETTTaiwanese
	case FieldETTTopTube:
		return p.ETTTopTube
	case FieldHTTOffset:
		return p.HTTOffset
	case FieldForkLength:
		return p.ForkLength
	case FieldForkOffset:
		return p.ForkOffset
	case FieldLHSH:
		return p.LHSH
	case FieldCSLength:
		return p.CSLength
	case FieldBBDrop:
		return p.BBDrop
	}
	return nil
}

// Set stores a value for a field.
func (p *FrameParameters) Set(f Field, v float64) {
	switch f {
	case FieldHTA:
		p.HTA = &v
	case FieldSTA:
		p.STA = &v
	case FieldHTLength:
		p.HTLength = &v
	case FieldStack:
		p.Stack = &v
	case FieldReach:
		p.Reach = &v
	case FieldFrontCenter:
		p.FrontCenter = &v
	case FieldETTTaiwanese:
		p.ETTTaiwanese = &v
	case FieldETTTopTube:
		p.ETTTopTube = &v
	case FieldHTTOffset:
		p.HTTOffset = &v
	case FieldForkLength:
		p.ForkLength = &v
	case FieldForkOffset:
		p.ForkOffset = &v
	case FieldLHSH:
		p.LHSH = &v
	case FieldCSLength:
		p.CSLength = &v
	case FieldBBDrop:
		p.BBDrop = &v
	}
}

// Clear removes a field's value.
func (p *FrameParameters) Clear(f Field) {
	switch f {
	case FieldHTA:
		p.HTA = nil
	case FieldSTA:
		p.STA = nil
	case FieldHTLength:
		p.HTLength = nil
	case FieldStack:
		p.Stack = nil
	case FieldReach:
		p.Reach = nil
	case FieldFrontCenter:
		p.FrontCenter = nil
	case FieldETTTaiwanese:
		p.ETTTaiwanese = nil
	case FieldETTTopTube:
		p.ETTTopTube = nil
	case FieldHTTOffset:
		p.HTTOffset = nil
	case FieldForkLength:
		p.ForkLength = nil
	case FieldForkOffset:
		p.ForkOffset = nil
	case FieldLHSH:
		p.LHSH = nil
	case FieldCSLength:
		p.CSLength = nil
	case FieldBBDrop:
		p.BBDrop = nil
	}
}

// Has reports whether every listed field is present.
func (p *FrameParameters) Has(fields ...Field) bool {
	for _, f := range fields {
		if p.Value(f) == nil {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the parameter snapshot.
func (p FrameParameters) Clone() FrameParameters {
	clone := p
	cp := func(v *float64) *float64 {
		if v == nil {
			return nil
		}
		c := *v
		return &c
	}
	clone.HTA = cp(p.HTA)
	clone.STA = cp(p.STA)
	clone.HTLength = cp(p.HTLength)
	clone.Stack = cp(p.Stack)
	clone.Reach = cp(p.Reach)
	clone.FrontCenter = cp(p.FrontCenter)
	clone.ETTTaiwanese = cp(p.ETTTaiwanese)
	clone.ETTTopTube = cp(p.ETTTopTube)
	clone.HTTOffset = cp(p.HTTOffset)
	clone.ForkLength = cp(p.ForkLength)
	clone.ForkOffset = cp(p.ForkOffset)
	clone.LHSH = cp(p.LHSH)
	clone.CSLength = cp(p.CSLength)
	clone.BBDrop = cp(p.BBDrop)
	return clone
}
