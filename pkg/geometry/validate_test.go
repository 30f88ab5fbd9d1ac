package geometry

import "testing"

func TestCheckParametersCleanSnapshot(t *testing.T) {
	r := CheckParameters(ModeStackReach, roadParams())
	if !r.Valid() {
		t.Errorf("expected valid snapshot, got issues: %+v", r.Issues)
	}
}

func TestCheckParametersAngleBounds(t *testing.T) {
	tests := []struct {
		name  string
		hta   float64
		valid bool
	}{
		{"typical angle", 72, true},
		{"zero is excluded", 0, false},
		{"180 is excluded", 180, false},
		{"negative angle", -5, false},
		{"just inside", 0.01, true},
	}
	for _, tt := range tests {
		p := FrameParameters{HTA: fp(tt.hta)}
		r := CheckParameters(ModeStackReach, p)
		if r.Valid() != tt.valid {
			t.Errorf("%s: valid = %v, want %v (issues %+v)", tt.name, r.Valid(), tt.valid, r.Issues)
		}
	}
}

func TestCheckParametersBBDropMagnitude(t *testing.T) {
	p := FrameParameters{HTA: fp(72), CSLength: fp(420), BBDrop: fp(-450)}
	r := CheckParameters(ModeStackReach, p)
	if r.Valid() {
		t.Fatal("expected |bbdrop| > cslength to be rejected")
	}
	if len(r.ForField(FieldBBDrop)) == 0 {
		t.Error("issue should be attributed to bbdrop")
	}

	// Front-center mode additionally bounds bbdrop by the front center.
	p = FrameParameters{HTA: fp(72), FrontCenter: fp(60), BBDrop: fp(65), CSLength: fp(420)}
	r = CheckParameters(ModeFrontCenter, p)
	if r.Valid() {
		t.Error("expected |bbdrop| > frontcenter to be rejected in front-center mode")
	}
	// The same snapshot is fine in stack/reach mode, where frontcenter is
	// outside the active field set.
	r = CheckParameters(ModeStackReach, p)
	if !r.Valid() {
		t.Errorf("frontcenter constraint leaked into stack/reach mode: %+v", r.Issues)
	}
}

func TestCheckParametersForkOffsetMagnitude(t *testing.T) {
	p := FrameParameters{
		HTA:           fp(72),
		ForkLength:    fp(40),
		ForkOffset:    fp(45),
		IsAxleToCrown: true,
	}
	r := CheckParameters(ModeETTTaiwanese, p)
	if r.Valid() {
		t.Fatal("expected |forkoffset| > forklength to be rejected for axle-to-crown forks")
	}

	// Along-axis fork lengths never produce a negative radicand.
	p.IsAxleToCrown = false
	r = CheckParameters(ModeETTTaiwanese, p)
	if !r.Valid() {
		t.Errorf("offset constraint should only apply to axle-to-crown forks: %+v", r.Issues)
	}
}

func TestCheckParametersHeadTubeMinimum(t *testing.T) {
	p := FrameParameters{HTA: fp(72), HTLength: fp(45)}
	r := CheckParameters(ModeStackReach, p)
	if r.Valid() {
		t.Error("head tube shorter than the fixture minimum should be rejected")
	}

	p.HTLength = fp(60)
	if r := CheckParameters(ModeStackReach, p); !r.Valid() {
		t.Errorf("minimum head tube length is inclusive: %+v", r.Issues)
	}
}

func TestCheckParametersNegativeLengths(t *testing.T) {
	p := FrameParameters{HTA: fp(72), Stack: fp(-10), Reach: fp(385), LHSH: fp(-1)}
	r := CheckParameters(ModeStackReach, p)
	if len(r.ForField(FieldStack)) == 0 {
		t.Error("negative stack should be rejected")
	}
	// lhsh is outside stack/reach mode's field set and must be ignored there.
	if len(r.ForField(FieldLHSH)) != 0 {
		t.Error("lhsh issue leaked into stack/reach mode")
	}

	r = CheckParameters(ModeFrontCenter, FrameParameters{HTA: fp(72), LHSH: fp(-1)})
	if len(r.ForField(FieldLHSH)) == 0 {
		t.Error("negative lhsh should be rejected in front-center mode")
	}
}

func TestCheckParametersAbsentFieldsPass(t *testing.T) {
	// Absence is an incomplete-input condition, not a validation failure.
	r := CheckParameters(ModeETTJunction, FrameParameters{})
	if !r.Valid() {
		t.Errorf("empty snapshot should validate clean, got %+v", r.Issues)
	}
}
