package geometry

import (
	"fmt"
	"math"
)

// FieldIssue is one validation failure attributed to a single field.
type FieldIssue struct {
	Field  Field  `json:"field"`
	Reason string `json:"reason"`
}

// ValidationResult is the tagged outcome of a precondition pass. An empty
// issue list means the snapshot satisfies every cross-field constraint the
// calculator assumes.
type ValidationResult struct {
	Issues []FieldIssue `json:"issues,omitempty"`
}

// Valid reports whether no issues were found.
func (r ValidationResult) Valid() bool {
	return len(r.Issues) == 0
}

// ForField returns the issues attributed to one field.
func (r ValidationResult) ForField(f Field) []FieldIssue {
	var out []FieldIssue
	for _, issue := range r.Issues {
		if issue.Field == f {
			out = append(out, issue)
		}
	}
	return out
}

func (r *ValidationResult) add(f Field, format string, args ...interface{}) {
	r.Issues = append(r.Issues, FieldIssue{Field: f, Reason: fmt.Sprintf(format, args...)})
}

// CheckParameters runs the precondition checks the calculator relies on:
// angle ranges, positivity, and the cross-field magnitude constraints that
// keep every trig argument inside its mathematical domain. Absent fields are
// skipped; absence is handled downstream as an incomplete status, not a
// validation failure. Fields outside the active mode's set are ignored.
func CheckParameters(mode Mode, p FrameParameters) ValidationResult {
	var r ValidationResult

	active := make(map[Field]bool, len(mode.Fields()))
	for _, f := range mode.Fields() {
		active[f] = true
	}
	has := func(f Field) bool { return active[f] && p.Value(f) != nil }

	for _, f := range []Field{FieldHTA, FieldSTA} {
		if has(f) {
			if v := *p.Value(f); v <= 0 || v >= 180 {
				r.add(f, "%s must be between 0 and 180 degrees exclusive, got %.2f", f.Label(), v)
			}
		}
	}

	positive := []Field{
		FieldStack, FieldReach, FieldFrontCenter, FieldETTTaiwanese,
		FieldETTTopTube, FieldHTTOffset, FieldForkLength, FieldCSLength,
	}
	for _, f := range positive {
		if has(f) {
			if v := *p.Value(f); v <= 0 {
				r.add(f, "%s must be positive, got %.2f", f.Label(), v)
			}
		}
	}

	if has(FieldLHSH) && *p.LHSH < 0 {
		r.add(FieldLHSH, "%s must not be negative, got %.2f", FieldLHSH.Label(), *p.LHSH)
	}

	if has(FieldHTLength) && *p.HTLength < MinHeadTubeLength {
		r.add(FieldHTLength, "%s must be at least %.0f, got %.2f",
			FieldHTLength.Label(), MinHeadTubeLength, *p.HTLength)
	}

	if has(FieldBBDrop) && has(FieldCSLength) && math.Abs(*p.BBDrop) > *p.CSLength {
		r.add(FieldBBDrop, "BB drop magnitude %.2f exceeds chainstay length %.2f",
			math.Abs(*p.BBDrop), *p.CSLength)
	}
	if mode == ModeFrontCenter && has(FieldBBDrop) && has(FieldFrontCenter) &&
		math.Abs(*p.BBDrop) > *p.FrontCenter {
		r.add(FieldBBDrop, "BB drop magnitude %.2f exceeds front center %.2f",
			math.Abs(*p.BBDrop), *p.FrontCenter)
	}

	if mode.UsesFork() && p.IsAxleToCrown && has(FieldForkOffset) && has(FieldForkLength) &&
		math.Abs(*p.ForkOffset) > *p.ForkLength {
		r.add(FieldForkOffset, "fork offset magnitude %.2f exceeds axle-to-crown length %.2f",
			math.Abs(*p.ForkOffset), *p.ForkLength)
	}

	return r
}
