package main

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mememaker-site/trim"
)

type screenState int

const (
	stateURLInput screenState = iota
	stateFetchingMeta
	stateTrim
	stateSubmitting
	stateWatching
	stateDone
	stateFailed
)

// trimField is which of the three bound inputs has keyboard focus.
type trimField int

const (
	fieldNone trimField = iota
	fieldStart
	fieldEnd
	fieldDuration
)

// Timeline geometry. Update and View must agree on these for mouse
// mapping to work: the bar is drawn on timelineRow starting at column
// timelineMargin.
const (
	timelineRow    = 4
	timelineMargin = 4
	timelineMaxW   = 60
)

type metaMsg struct {
	meta videoMeta
	err  error
}

type submitMsg struct {
	job clipJob
	err error
}

type jobMsg struct {
	job clipJob
	err error
}

type tickMsg time.Time
type pollMsg time.Time

type model struct {
	state  screenState
	client *apiClient

	urlInput string
	errMsg   string

	videoURL   string
	videoTitle string
	ctrl       *trim.Controller

	focus      trimField
	fieldInput string // text being typed into the focused field

	job clipJob

	spinnerIdx  int
	spinnerTick int
	width       int
	height      int
	quitting    bool
}

func newModel(client *apiClient) model {
	return model{
		state:  stateURLInput,
		client: client,
		width:  80,
		height: 24,
	}
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func pollCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

func fetchMetaCmd(client *apiClient, url string) tea.Cmd {
	return func() tea.Msg {
		meta, err := client.FetchMetadata(url)
		return metaMsg{meta: meta, err: err}
	}
}

func submitCmd(client *apiClient, req clipRequest) tea.Cmd {
	return func() tea.Msg {
		job, err := client.SubmitClip(req)
		return submitMsg{job: job, err: err}
	}
}

func getJobCmd(client *apiClient, id uint) tea.Cmd {
	return func() tea.Msg {
		job, err := client.GetJob(id)
		return jobMsg{job: job, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.state == stateFetchingMeta || m.state == stateSubmitting || m.state == stateWatching {
			m.spinnerTick++
			m.spinnerIdx = m.spinnerTick % len(spinnerFrames)
		}
		return m, tickCmd()

	case metaMsg:
		if m.state != stateFetchingMeta {
			return m, nil
		}
		if msg.err != nil {
			m.state = stateURLInput
			m.errMsg = msg.err.Error()
			return m, nil
		}
		if msg.meta.DurationSecs <= 0 {
			m.state = stateURLInput
			m.errMsg = "video has no usable duration"
			return m, nil
		}
		m.videoTitle = msg.meta.Title
		m.ctrl = trim.NewController(msg.meta.DurationSecs)
		m.focus = fieldNone
		m.fieldInput = ""
		m.errMsg = ""
		m.state = stateTrim
		return m, nil

	case submitMsg:
		if m.state != stateSubmitting {
			return m, nil
		}
		if msg.err != nil {
			m.state = stateTrim
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.job = msg.job
		m.errMsg = ""
		m.state = stateWatching
		return m, pollCmd()

	case pollMsg:
		if m.state != stateWatching {
			return m, nil
		}
		return m, getJobCmd(m.client, m.job.ID)

	case jobMsg:
		if m.state != stateWatching {
			return m, nil
		}
		if msg.err != nil {
			// transient poll error, keep watching
			return m, pollCmd()
		}
		m.job = msg.job
		switch m.job.Status {
		case "completed":
			m.state = stateDone
			return m, nil
		case "failed":
			m.state = stateFailed
			return m, nil
		}
		return m, pollCmd()

	case tea.MouseMsg:
		if m.state == stateTrim {
			return m.updateTrimMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case stateURLInput:
		return m.updateURLKey(msg)
	case stateTrim:
		return m.updateTrimKey(msg)
	case stateDone, stateFailed:
		switch msg.String() {
		case "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "n":
			fresh := newModel(m.client)
			fresh.width, fresh.height = m.width, m.height
			return fresh, nil
		case "r":
			if m.state == stateFailed {
				// resubmit the same range
				m.state = stateSubmitting
				return m, submitCmd(m.client, clipRequest{
					URL:          m.job.URL,
					Title:        m.job.Title,
					DurationSecs: m.job.DurationSecs,
					Start:        m.job.Start,
					End:          m.job.End,
				})
			}
		}
	}
	return m, nil
}

func (m model) updateURLKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		url := strings.TrimSpace(m.urlInput)
		if url == "" {
			return m, nil
		}
		m.videoURL = url
		m.errMsg = ""
		m.state = stateFetchingMeta
		return m, fetchMetaCmd(m.client, url)
	case "backspace":
		if m.urlInput != "" {
			runes := []rune(m.urlInput)
			m.urlInput = string(runes[:len(runes)-1])
		}
	case "esc":
		m.quitting = true
		return m, tea.Quit
	default:
		if msg.Type == tea.KeyRunes {
			m.urlInput += string(msg.Runes)
		}
	}
	return m, nil
}

func (m model) updateTrimKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.focus = nextField(m.focus, 1)
		m.fieldInput = m.focusedCanonical()
	case "shift+tab":
		m.focus = nextField(m.focus, -1)
		m.fieldInput = m.focusedCanonical()
	case "esc":
		if m.focus != fieldNone {
			m.focus = fieldNone
			m.fieldInput = ""
		} else {
			fresh := newModel(m.client)
			fresh.width, fresh.height = m.width, m.height
			return fresh, nil
		}
	case "enter":
		if m.focus != fieldNone {
			m.commitField()
			return m, nil
		}
		if m.ctrl.Validation().OK() {
			m.errMsg = ""
			m.state = stateSubmitting
			return m, submitCmd(m.client, m.submitRequest())
		}
	case "left":
		m.nudge(-trim.SnapPrecision)
	case "right":
		m.nudge(trim.SnapPrecision)
	case "backspace":
		if m.focus != fieldNone && m.fieldInput != "" {
			runes := []rune(m.fieldInput)
			m.fieldInput = string(runes[:len(runes)-1])
		}
	case "q":
		if m.focus == fieldNone {
			m.quitting = true
			return m, tea.Quit
		}
	default:
		if m.focus != fieldNone && msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			ch := msg.Runes[0]
			if (ch >= '0' && ch <= '9') || ch == ':' || ch == '.' {
				m.fieldInput += string(ch)
			}
		}
	}
	return m, nil
}

func nextField(f trimField, dir int) trimField {
	order := []trimField{fieldNone, fieldStart, fieldEnd, fieldDuration}
	for i, v := range order {
		if v == f {
			return order[(i+dir+len(order))%len(order)]
		}
	}
	return fieldNone
}

// commitField parses the typed text and applies it. Whether the edit was
// accepted or rejected, the box re-renders from the canonical state and
// the invalid keystrokes are gone.
func (m *model) commitField() {
	switch m.focus {
	case fieldStart:
		m.ctrl.EnterStart(m.fieldInput)
	case fieldEnd:
		m.ctrl.EnterEnd(m.fieldInput)
	case fieldDuration:
		m.ctrl.EnterDuration(m.fieldInput)
	}
	m.fieldInput = m.focusedCanonical()
}

func (m model) focusedCanonical() string {
	switch m.focus {
	case fieldStart:
		return m.ctrl.StartText()
	case fieldEnd:
		return m.ctrl.EndText()
	case fieldDuration:
		return m.ctrl.DurationText()
	}
	return ""
}

// nudge moves the focused boundary by one snap step, with drag
// semantics: clamped, never rejected.
func (m *model) nudge(delta float64) {
	sel := m.ctrl.Selection()
	switch m.focus {
	case fieldEnd:
		m.ctrl.MoveEnd(sel.ClipEnd + delta)
	case fieldDuration:
		m.ctrl.SetDuration(trim.Snap(sel.ClipDuration() + delta))
	default:
		m.ctrl.MoveStart(sel.ClipStart + delta)
	}
	if m.focus != fieldNone {
		m.fieldInput = m.focusedCanonical()
	}
}

func (m model) timelineWidth() int {
	w := m.width - 2*timelineMargin
	if w > timelineMaxW {
		w = timelineMaxW
	}
	if w < 10 {
		w = 10
	}
	return w
}

func (m model) timelineRect() trim.Rect {
	return trim.Rect{Left: timelineMargin, Width: float64(m.timelineWidth() - 1)}
}

// handleCol is the bar cell a time value lands on.
func (m model) handleCol(t float64) int {
	sel := m.ctrl.Selection()
	if sel.VideoDuration <= 0 {
		return 0
	}
	return int(t/sel.VideoDuration*float64(m.timelineWidth()-1) + 0.5)
}

func (m model) updateTrimMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	rect := m.timelineRect()
	p := trim.Pointer{Kind: trim.PointerMouse, ClientX: float64(msg.X)}
	w := m.timelineWidth()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if msg.Y != timelineRow || msg.X < timelineMargin || msg.X >= timelineMargin+w {
			return m, nil
		}
		sel := m.ctrl.Selection()
		// a press on a handle grabs it; anywhere else on the bar moves
		// the nearest handle to the pointer
		switch msg.X - timelineMargin {
		case m.handleCol(sel.ClipStart):
			m.ctrl.GrabHandle(trim.HandleStart)
		case m.handleCol(sel.ClipEnd):
			m.ctrl.GrabHandle(trim.HandleEnd)
		default:
			m.ctrl.PointerDown(p, rect)
		}

	case tea.MouseActionMotion:
		if msg.Y != timelineRow {
			// the pointer left the timeline: implicit release
			m.ctrl.PointerLeave()
			return m, nil
		}
		m.ctrl.PointerMove(p, rect)

	case tea.MouseActionRelease:
		m.ctrl.PointerUp()
	}
	return m, nil
}

// submitRequest renders the selection as the hh:mm:ss payload the job
// API takes. Whole-second granularity widens the clip rather than
// narrowing it: floor the start, ceil the end (capped at the video end).
// Near the length limit widening could push a passing selection over
// MaxClipDuration, so the end falls back to flooring there.
func (m model) submitRequest() clipRequest {
	sel := m.ctrl.Selection()
	start := math.Floor(sel.ClipStart)
	end := math.Ceil(sel.ClipEnd)
	if end > sel.VideoDuration {
		end = math.Floor(sel.VideoDuration)
	}
	if end-start > trim.MaxClipDuration {
		end = math.Floor(sel.ClipEnd)
	}
	return clipRequest{
		URL:          m.videoURL,
		Title:        m.videoTitle,
		DurationSecs: sel.VideoDuration,
		Start:        trim.FormatHHMMSS(start),
		End:          trim.FormatHHMMSS(end),
	}
}
