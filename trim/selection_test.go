package trim

import "testing"

func TestNewSelectionDefaults(t *testing.T) {
	s := NewSelection(120)
	if s.ClipStart != 0 || s.ClipEnd != 30 {
		t.Fatalf("unexpected defaults: start=%v end=%v", s.ClipStart, s.ClipEnd)
	}

	// shorter than the default clip length
	s = NewSelection(12.5)
	if s.ClipEnd != 12.5 {
		t.Fatalf("expected end clamped to video duration, got %v", s.ClipEnd)
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{0.04, 0},
		{0.05, 0.1},
		{83.4567, 83.5},
		{119.99, 120},
	}
	for _, tt := range tests {
		if got := Snap(tt.in); got != tt.want {
			t.Errorf("Snap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDragClampNeverCrossesOppositeHandle(t *testing.T) {
	// for any t, setting start then end to the same time must keep the
	// range open: the second edit clamps to start+MinClipDuration
	for _, tc := range []float64{0, 0.1, 15, 29.9, 60, 120} {
		s := NewSelection(120)
		s.SetClipStart(tc, SourceDrag)
		s.SetClipEnd(tc, SourceDrag)
		if s.ClipEnd <= s.ClipStart {
			t.Fatalf("t=%v: end %v <= start %v", tc, s.ClipEnd, s.ClipStart)
		}
		if got := s.ClipDuration(); got < MinClipDuration-timeEps {
			t.Fatalf("t=%v: duration %v below minimum", tc, got)
		}
	}
}

func TestDragBeyondDurationClamps(t *testing.T) {
	// videoDuration=120, initial 0..30, drag the end handle way past the
	// right edge: it sticks at the video duration
	s := NewSelection(120)
	s.SetClipEnd(200, SourceDrag)
	if s.ClipEnd != 120 {
		t.Fatalf("expected end clamped to 120, got %v", s.ClipEnd)
	}
}

func TestFieldEditRejectedOutOfRange(t *testing.T) {
	s := NewSelection(120)

	if s.SetClipStart(-1, SourceField) {
		t.Fatal("negative start accepted")
	}
	if s.SetClipStart(29.95, SourceField) {
		t.Fatal("start past end-MinClipDuration accepted")
	}
	if s.SetClipEnd(120.5, SourceField) {
		t.Fatal("end past video duration accepted")
	}
	if s.ClipStart != 0 || s.ClipEnd != 30 {
		t.Fatalf("rejected edits mutated state: %+v", s)
	}

	// typed values are stored free-form, not snapped
	if !s.SetClipStart(1.25, SourceField) {
		t.Fatal("in-range start rejected")
	}
	if s.ClipStart != 1.25 {
		t.Fatalf("typed value was altered: %v", s.ClipStart)
	}
}

func TestFieldEditAtExactLimit(t *testing.T) {
	// end-MinClipDuration suffers float noise (0.3-0.1 != 0.2 exactly);
	// a typed value right at the limit must still be accepted
	s := Selection{VideoDuration: 10, ClipStart: 0, ClipEnd: 0.3}
	if !s.SetClipStart(0.2, SourceField) {
		t.Fatal("start at exact limit rejected")
	}
}

func TestSetClipDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		want     bool
		wantEnd  float64
	}{
		{"normal", 45, true, 45},
		{"zero rejected", 0, false, 30},
		{"at minimum rejected", MinClipDuration, false, 30},
		{"just above minimum", 0.2, true, 0.2},
		{"at maximum", 120, true, 120},
		{"past video end rejected", 130, false, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection(120)
			if got := s.SetClipDuration(tt.duration); got != tt.want {
				t.Fatalf("SetClipDuration(%v) = %v, want %v", tt.duration, got, tt.want)
			}
			if s.ClipEnd != tt.wantEnd {
				t.Fatalf("end = %v, want %v", s.ClipEnd, tt.wantEnd)
			}
		})
	}
}

func TestSetClipDurationRejectsOverMax(t *testing.T) {
	s := NewSelection(600)
	if s.SetClipDuration(180.5) {
		t.Fatal("duration above MaxClipDuration accepted")
	}
	if !s.SetClipDuration(180) {
		t.Fatal("duration at MaxClipDuration rejected")
	}
}

func TestIdempotentNoOpEdit(t *testing.T) {
	s := NewSelection(120)
	s.SetClipStart(10, SourceDrag)
	before := s
	beforeV := s.Validate()

	s.SetClipStart(s.ClipStart, SourceDrag)
	if s != before {
		t.Fatalf("no-op edit changed selection: %+v -> %+v", before, s)
	}
	if s.Validate() != beforeV {
		t.Fatal("no-op edit changed validation flags")
	}
}

func TestMaxDurationFlagsButDoesNotBlock(t *testing.T) {
	// videoDuration=300, 10..200 is a 190s clip: editable but not
	// submittable
	s := NewSelection(300)
	if !s.SetClipStart(10, SourceDrag) {
		t.Fatal("start edit blocked")
	}
	if !s.SetClipEnd(200, SourceDrag) {
		t.Fatal("end edit blocked")
	}
	v := s.Validate()
	if v.MaxDuration {
		t.Fatal("MaxDuration flag should be false for a 190s clip")
	}
	if v.OK() {
		t.Fatal("selection should not be submittable")
	}
	if !v.ValidRange || !v.ValidStart || !v.ValidEnd || !v.MinDuration {
		t.Fatalf("unrelated flags flipped: %+v", v)
	}

	// still draggable afterwards
	if !s.SetClipEnd(100, SourceDrag) {
		t.Fatal("further edits blocked while invalid")
	}
	if !s.Validate().OK() {
		t.Fatal("selection should be submittable again")
	}
}

func TestValidationAtMinimumDuration(t *testing.T) {
	s := NewSelection(10)
	s.SetClipStart(5, SourceDrag)
	s.SetClipEnd(5, SourceDrag) // clamps to 5.1
	v := s.Validate()
	if !v.MinDuration || !v.OK() {
		t.Fatalf("minimum-length clip should validate: %+v", v)
	}
}
