package geometry

import "testing"

func TestClassifyValueBoundaryInclusive(t *testing.T) {
	tests := []struct {
		value float64
		want  Status
	}{
		{80, StatusOK},
		{700, StatusOK},
		{79.99, StatusOutOfRange},
		{700.01, StatusOutOfRange},
		{390, StatusOK},
	}

	for _, tt := range tests {
		out := ClassifyValue(tt.value, HTXRange)
		if out.Status != tt.want {
			t.Errorf("ClassifyValue(%v, HTXRange) = %s, want %s", tt.value, out.Status, tt.want)
		}
		if tt.want == StatusOutOfRange && out.Message != MsgOutOfRange {
			t.Errorf("ClassifyValue(%v) message = %q, want %q", tt.value, out.Message, MsgOutOfRange)
		}
	}
}

func TestClassifyValueNegativeRanges(t *testing.T) {
	if out := ClassifyValue(-10, STHTAngleRange); out.Status != StatusOK {
		t.Errorf("ST-HT angle of -10 should be ok, got %s", out.Status)
	}
	if out := ClassifyValue(-10.01, STHTAngleRange); out.Status != StatusOutOfRange {
		t.Errorf("ST-HT angle of -10.01 should be out of range, got %s", out.Status)
	}
}

func TestClassifyHTYTwoStage(t *testing.T) {
	tests := []struct {
		name     string
		hty      float64
		htLength float64
		want     Status
		message  string
	}{
		{"top exactly at smallest-diameter limit", 380, 60, StatusOK, ""},
		{"top between limits", 390, 60, StatusConditional, MsgHeadTubeTopMayOver},
		{"top beyond largest-diameter limit", 400, 65, StatusConditional, MsgHeadTubeTopOver},
		{"primary bound wins over top check", 400.01, 60, StatusOutOfRange, MsgOutOfRange},
		{"negative hty out of range", -0.01, 60, StatusOutOfRange, MsgOutOfRange},
		{"low head tube never conditional", 100, 140, StatusOK, ""},
	}

	for _, tt := range tests {
		out := ClassifyHTY(tt.hty, &tt.htLength)
		if out.Status != tt.want {
			t.Errorf("%s: status = %s, want %s", tt.name, out.Status, tt.want)
		}
		if out.Message != tt.message {
			t.Errorf("%s: message = %q, want %q", tt.name, out.Message, tt.message)
		}
	}
}

func TestClassifyHTYWithoutHeadTubeLength(t *testing.T) {
	// Front-center mode computes HTY without a head tube length; only the
	// primary bounds apply then.
	if out := ClassifyHTY(395, nil); out.Status != StatusOK {
		t.Errorf("status = %s, want ok", out.Status)
	}
	if out := ClassifyHTY(401, nil); out.Status != StatusOutOfRange {
		t.Errorf("status = %s, want out_of_range", out.Status)
	}
}

func TestDerivedHeadTubeTopLimits(t *testing.T) {
	if MaxHTYTopLargest != 460 {
		t.Errorf("MaxHTYTopLargest = %v, want 460", MaxHTYTopLargest)
	}
	if MaxHTYTopSmallest != 440 {
		t.Errorf("MaxHTYTopSmallest = %v, want 440", MaxHTYTopSmallest)
	}
}
