package trim

import "math"

// DragState is the controller's interaction state. Validation problems
// never produce a state of their own, they are flags layered on top.
type DragState int

const (
	DragIdle DragState = iota
	DraggingStart
	DraggingEnd
)

// Handle names one of the two clip boundaries.
type Handle int

const (
	HandleStart Handle = iota
	HandleEnd
)

// PointerKind distinguishes the input device. Mouse and touch events are
// normalized into the same Pointer at the input boundary so the controller
// only ever sees a horizontal coordinate.
type PointerKind int

const (
	PointerMouse PointerKind = iota
	PointerTouch
)

type Pointer struct {
	Kind    PointerKind
	ClientX float64
}

// Rect is the timeline widget's horizontal extent in the same coordinate
// space as Pointer.ClientX.
type Rect struct {
	Left  float64
	Width float64
}

// Controller owns a Selection and the drag state machine over it.
// It never blocks and never errors; rejected edits leave the selection as
// it was and the caller re-renders from the canonical state.
type Controller struct {
	sel  Selection
	drag DragState
}

// NewController creates a controller for a video whose metadata has
// resolved to videoDuration seconds.
func NewController(videoDuration float64) *Controller {
	return &Controller{sel: NewSelection(videoDuration)}
}

func (c *Controller) Selection() Selection   { return c.sel }
func (c *Controller) Validation() Validation { return c.sel.Validate() }
func (c *Controller) Drag() DragState        { return c.drag }

// TimeAt maps a pointer's horizontal coordinate within the timeline to a
// snapped time in [0, VideoDuration].
func (c *Controller) TimeAt(p Pointer, r Rect) float64 {
	if r.Width <= 0 {
		return 0
	}
	t := Snap((p.ClientX - r.Left) / r.Width * c.sel.VideoDuration)
	if t < 0 {
		t = 0
	}
	if t > c.sel.VideoDuration {
		t = c.sel.VideoDuration
	}
	return t
}

// ClickTarget decides which handle a bare timeline click should move, by
// nearest distance. An equidistant click moves the end handle.
func (c *Controller) ClickTarget(t float64) Handle {
	if math.Abs(t-c.sel.ClipStart) < math.Abs(t-c.sel.ClipEnd) {
		return HandleStart
	}
	return HandleEnd
}

// GrabHandle begins a drag on the given handle (pointer-down over it).
func (c *Controller) GrabHandle(h Handle) {
	if h == HandleStart {
		c.drag = DraggingStart
	} else {
		c.drag = DraggingEnd
	}
}

// PointerDown handles a press on the bare timeline: the nearest handle
// jumps to the pointer and the drag continues from there.
func (c *Controller) PointerDown(p Pointer, r Rect) {
	t := c.TimeAt(p, r)
	h := c.ClickTarget(t)
	c.GrabHandle(h)
	c.moveActive(t)
}

// PointerMove updates the dragged handle; it is a no-op while idle.
func (c *Controller) PointerMove(p Pointer, r Rect) {
	if c.drag == DragIdle {
		return
	}
	c.moveActive(c.TimeAt(p, r))
}

// PointerUp ends the drag.
func (c *Controller) PointerUp() {
	c.drag = DragIdle
}

// PointerLeave ends the drag as an implicit release. Deliberate
// simplification: leaving the timeline drops the handle where it is.
func (c *Controller) PointerLeave() {
	c.drag = DragIdle
}

func (c *Controller) moveActive(t float64) {
	switch c.drag {
	case DraggingStart:
		c.sel.SetClipStart(t, SourceDrag)
	case DraggingEnd:
		c.sel.SetClipEnd(t, SourceDrag)
	}
}

// MoveStart applies a drag-semantics start edit outside of a pointer
// drag; keyboard nudges use this. Snapped and clamped, never rejected.
func (c *Controller) MoveStart(t float64) {
	c.sel.SetClipStart(t, SourceDrag)
}

// MoveEnd is the drag-semantics counterpart for the end boundary.
func (c *Controller) MoveEnd(t float64) {
	c.sel.SetClipEnd(t, SourceDrag)
}

// SetDuration applies a programmatic duration edit.
func (c *Controller) SetDuration(d float64) bool {
	return c.sel.SetClipDuration(d)
}

// EnterStart applies a typed start time. Text that does not parse, or
// parses out of range, is rejected and the previous value stays
// authoritative; the input box re-renders from StartText.
func (c *Controller) EnterStart(text string) bool {
	t, ok := ParseTimeString(text)
	if !ok {
		return false
	}
	return c.sel.SetClipStart(t, SourceField)
}

// EnterEnd applies a typed end time.
func (c *Controller) EnterEnd(text string) bool {
	t, ok := ParseTimeString(text)
	if !ok {
		return false
	}
	return c.sel.SetClipEnd(t, SourceField)
}

// EnterDuration applies a typed clip duration, moving ClipEnd.
func (c *Controller) EnterDuration(text string) bool {
	t, ok := ParseTimeString(text)
	if !ok {
		return false
	}
	return c.sel.SetClipDuration(t)
}

// Display strings for the three bound inputs, always derived from the
// canonical selection.
func (c *Controller) StartText() string    { return FormatTime(c.sel.ClipStart) }
func (c *Controller) EndText() string      { return FormatTime(c.sel.ClipEnd) }
func (c *Controller) DurationText() string { return FormatTime(c.sel.ClipDuration()) }
