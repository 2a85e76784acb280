package trim

import "testing"

var testRect = Rect{Left: 0, Width: 100}

func TestTimeAt(t *testing.T) {
	c := NewController(120)
	tests := []struct {
		x    float64
		want float64
	}{
		{0, 0},
		{50, 60},
		{100, 120},
		{-10, 0},   // left of the widget
		{9999, 120}, // right of the widget
	}
	for _, tt := range tests {
		got := c.TimeAt(Pointer{Kind: PointerMouse, ClientX: tt.x}, testRect)
		if got != tt.want {
			t.Errorf("TimeAt(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}

	// degenerate rect must not divide by zero
	if got := c.TimeAt(Pointer{ClientX: 10}, Rect{}); got != 0 {
		t.Errorf("TimeAt on empty rect = %v, want 0", got)
	}
}

func TestClickTargetNearestHandle(t *testing.T) {
	c := NewController(300)
	c.sel.ClipStart = 0
	c.sel.ClipEnd = 100

	if got := c.ClickTarget(10); got != HandleStart {
		t.Errorf("ClickTarget(10) = %v, want HandleStart", got)
	}
	if got := c.ClickTarget(90); got != HandleEnd {
		t.Errorf("ClickTarget(90) = %v, want HandleEnd", got)
	}
	// equidistant: pinned to the end handle
	if got := c.ClickTarget(50); got != HandleEnd {
		t.Errorf("ClickTarget(50) = %v, want HandleEnd (tie-break)", got)
	}
}

func TestDragStateMachine(t *testing.T) {
	c := NewController(120)
	if c.Drag() != DragIdle {
		t.Fatal("controller should start idle")
	}

	c.GrabHandle(HandleStart)
	if c.Drag() != DraggingStart {
		t.Fatalf("after grab: %v", c.Drag())
	}

	c.PointerMove(Pointer{Kind: PointerTouch, ClientX: 10}, testRect)
	if got := c.Selection().ClipStart; got != 12 {
		t.Fatalf("dragged start = %v, want 12", got)
	}

	c.PointerUp()
	if c.Drag() != DragIdle {
		t.Fatal("pointer-up should return to idle")
	}

	// moves while idle are ignored
	before := c.Selection()
	c.PointerMove(Pointer{ClientX: 90}, testRect)
	if c.Selection() != before {
		t.Fatal("idle pointer-move mutated the selection")
	}
}

func TestPointerLeaveEndsDrag(t *testing.T) {
	c := NewController(120)
	c.GrabHandle(HandleEnd)
	c.PointerLeave()
	if c.Drag() != DragIdle {
		t.Fatal("pointer-leave should act as an implicit release")
	}
	// the handle stays where it was dropped
	if c.Selection().ClipEnd != 30 {
		t.Fatalf("end moved on leave: %v", c.Selection().ClipEnd)
	}
}

func TestPointerDownMovesNearestHandle(t *testing.T) {
	c := NewController(120) // 0..30 over 120s on a 100-cell rect
	c.PointerDown(Pointer{Kind: PointerMouse, ClientX: 10}, testRect)
	// t=12 is nearer the start handle (12 vs 18)
	if c.Drag() != DraggingStart {
		t.Fatalf("expected DraggingStart, got %v", c.Drag())
	}
	if got := c.Selection().ClipStart; got != 12 {
		t.Fatalf("start = %v, want 12", got)
	}
	c.PointerUp()

	c.PointerDown(Pointer{Kind: PointerMouse, ClientX: 80}, testRect)
	if c.Drag() != DraggingEnd {
		t.Fatalf("expected DraggingEnd, got %v", c.Drag())
	}
	if got := c.Selection().ClipEnd; got != 96 {
		t.Fatalf("end = %v, want 96", got)
	}
}

func TestDragCannotCrossOppositeHandle(t *testing.T) {
	c := NewController(120)
	c.GrabHandle(HandleEnd)
	// drag the end handle all the way to the left edge
	c.PointerMove(Pointer{ClientX: 0}, testRect)
	sel := c.Selection()
	if sel.ClipEnd <= sel.ClipStart {
		t.Fatalf("end crossed start: %+v", sel)
	}
}

func TestTypedEdits(t *testing.T) {
	c := NewController(120)

	if !c.EnterStart("0:05.5") {
		t.Fatal("valid start rejected")
	}
	if got := c.Selection().ClipStart; got != 5.5 {
		t.Fatalf("start = %v, want 5.5", got)
	}

	// malformed text is ignored, previous value stays authoritative
	before := c.Selection()
	if c.EnterEnd("nonsense") {
		t.Fatal("malformed end accepted")
	}
	if c.Selection() != before {
		t.Fatal("rejected edit mutated state")
	}

	// typing a zero duration is invalid and keeps the display at the
	// previous canonical value
	if c.EnterDuration("0:00.0") {
		t.Fatal("zero duration accepted")
	}
	if got := c.DurationText(); got != "0:24.5" {
		t.Fatalf("duration display = %q, want %q", got, "0:24.5")
	}
}

func TestDisplayStringsDeriveFromSelection(t *testing.T) {
	c := NewController(120)
	if c.StartText() != "0:00.0" || c.EndText() != "0:30.0" || c.DurationText() != "0:30.0" {
		t.Fatalf("unexpected initial display: %q %q %q",
			c.StartText(), c.EndText(), c.DurationText())
	}
	c.EnterDuration("12.5")
	if c.EndText() != "0:12.5" || c.DurationText() != "0:12.5" {
		t.Fatalf("display out of sync: end=%q dur=%q", c.EndText(), c.DurationText())
	}
}
