// Package trim keeps the user's clip range consistent while it is edited
// from several surfaces at once: timeline drag handles, start/end text
// fields, and a derived duration field. The Selection is the single source
// of truth; every view re-renders from it after an accepted edit.
package trim

import "math"

const (
	// MinClipDuration is the shortest clip we will cut, in seconds.
	MinClipDuration = 0.1
	// MaxClipDuration is the longest clip we will cut, in seconds.
	// Exceeding it does not block editing, it only blocks submission.
	MaxClipDuration = 180.0
	// SnapPrecision is the quantization step for drag-derived times.
	SnapPrecision = 0.1
	// DefaultClipLength seeds ClipEnd when metadata first resolves.
	DefaultClipLength = 30.0
)

// timeEps absorbs float64 noise when comparing times that were produced
// by snapping or subtraction (0.3-0.2 != 0.1 exactly).
const timeEps = 1e-9

// Source says where an edit came from. Drags snap and clamp silently;
// typed values are free-form but rejected outright when out of range.
type Source int

const (
	SourceDrag Source = iota
	SourceField
)

// Snap quantizes t to SnapPrecision.
func Snap(t float64) float64 {
	return math.Round(t*10) / 10
}

// Selection is the clip range over a fixed-duration source video.
// VideoDuration is set once metadata resolves and is read-only after that.
type Selection struct {
	VideoDuration float64
	ClipStart     float64
	ClipEnd       float64
}

// NewSelection returns the default range for a freshly-loaded video:
// start at zero, end at DefaultClipLength or the whole video if shorter.
func NewSelection(videoDuration float64) Selection {
	end := DefaultClipLength
	if videoDuration < end {
		end = videoDuration
	}
	return Selection{VideoDuration: videoDuration, ClipEnd: end}
}

func (s Selection) ClipDuration() float64 {
	return s.ClipEnd - s.ClipStart
}

// SetClipStart applies a new start time. Drag edits are snapped and then
// clamped into [0, ClipEnd-MinClipDuration]; the handle simply cannot be
// dragged past the limit. Field edits outside that range are rejected and
// the stored value is untouched. Reports whether the value changed-or-held
// (drag) or was accepted (field).
func (s *Selection) SetClipStart(candidate float64, src Source) bool {
	hi := s.ClipEnd - MinClipDuration
	if src == SourceDrag {
		t := Snap(candidate)
		if t > hi {
			t = hi
		}
		if t < 0 {
			t = 0
		}
		s.ClipStart = t
		return true
	}
	if candidate < 0 || candidate > hi+timeEps {
		return false
	}
	s.ClipStart = candidate
	return true
}

// SetClipEnd is symmetric to SetClipStart, clamped to
// [ClipStart+MinClipDuration, VideoDuration].
func (s *Selection) SetClipEnd(candidate float64, src Source) bool {
	lo := s.ClipStart + MinClipDuration
	if src == SourceDrag {
		t := Snap(candidate)
		if t < lo {
			t = lo
		}
		if t > s.VideoDuration {
			t = s.VideoDuration
		}
		s.ClipEnd = t
		return true
	}
	if candidate < lo-timeEps || candidate > s.VideoDuration+timeEps {
		return false
	}
	s.ClipEnd = candidate
	return true
}

// SetClipDuration recomputes ClipEnd from a desired duration. The edit is
// ignored unless the duration is in (MinClipDuration, MaxClipDuration] and
// the resulting end stays within the video.
func (s *Selection) SetClipDuration(candidate float64) bool {
	if candidate <= MinClipDuration || candidate > MaxClipDuration+timeEps {
		return false
	}
	end := s.ClipStart + candidate
	if end > s.VideoDuration+timeEps {
		return false
	}
	s.ClipEnd = end
	return true
}

// Validation is a pure function of the Selection, recomputed after every
// mutation. Only OK gates submission; none of the flags block editing.
type Validation struct {
	ValidRange  bool // ClipEnd > ClipStart
	MinDuration bool // ClipDuration >= MinClipDuration
	MaxDuration bool // ClipDuration <= MaxClipDuration
	ValidStart  bool // 0 <= ClipStart <= VideoDuration
	ValidEnd    bool // 0 <= ClipEnd <= VideoDuration
}

func (s Selection) Validate() Validation {
	d := s.ClipDuration()
	return Validation{
		ValidRange:  s.ClipEnd > s.ClipStart,
		MinDuration: d >= MinClipDuration-timeEps,
		MaxDuration: d <= MaxClipDuration+timeEps,
		ValidStart:  s.ClipStart >= 0 && s.ClipStart <= s.VideoDuration,
		ValidEnd:    s.ClipEnd >= 0 && s.ClipEnd <= s.VideoDuration,
	}
}

// OK reports whether the selection may be submitted. MinDuration is left
// out: the setters already clamp it, so it cannot be false here.
func (v Validation) OK() bool {
	return v.ValidRange && v.MaxDuration && v.ValidStart && v.ValidEnd
}
