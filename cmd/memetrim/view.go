package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mememaker-site/trim"
)

var (
	primaryColor = lipgloss.Color("#7C3AED")
	accentColor  = lipgloss.Color("#10B981")
	warningColor = lipgloss.Color("#F59E0B")
	dangerColor  = lipgloss.Color("#EF4444")
	dimColor     = lipgloss.Color("#64748B")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(primaryColor).
			Padding(0, 2)

	dimStyle     = lipgloss.NewStyle().Foreground(dimColor)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(dangerColor)
	warnStyle    = lipgloss.NewStyle().Foreground(warningColor)

	handleStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	rangeStyle  = lipgloss.NewStyle().Foreground(primaryColor)
	trackStyle  = lipgloss.NewStyle().Foreground(dimColor)

	fieldStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#E2E8F0"))
	focusedFieldStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor).Underline(true)

	spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
)

func (m model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateURLInput:
		return m.viewURLInput()
	case stateFetchingMeta:
		return m.viewSpinner("Probing video metadata...")
	case stateTrim:
		return m.viewTrim()
	case stateSubmitting:
		return m.viewSpinner("Submitting clip job...")
	case stateWatching:
		return m.viewWatching()
	case stateDone:
		return m.viewDone()
	case stateFailed:
		return m.viewFailed()
	}
	return ""
}

func (m model) viewURLInput() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Meme Maker") + "\n\n")
	b.WriteString("  Paste a public video URL (YouTube, Instagram, ...)\n\n")
	b.WriteString("  > " + m.urlInput + "▌\n\n")
	if m.errMsg != "" {
		b.WriteString("  " + errorStyle.Render("✗ "+m.errMsg) + "\n\n")
	}
	b.WriteString(dimStyle.Render("  enter: fetch  •  ctrl+c: quit") + "\n")
	return b.String()
}

func (m model) viewSpinner(caption string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Meme Maker") + "\n\n")
	b.WriteString("  " + spinnerFrames[m.spinnerIdx] + " " + caption + "\n")
	return b.String()
}

// viewTrim lays the trim screen out line by line. The timeline bar must
// land exactly on timelineRow at column timelineMargin; updateTrimMouse
// depends on it.
func (m model) viewTrim() string {
	sel := m.ctrl.Selection()
	v := m.ctrl.Validation()

	lines := []string{
		titleStyle.Render("Meme Maker / Trim"), // row 0
		"", // row 1
		fmt.Sprintf("  %s %s", m.videoTitle, // row 2
			dimStyle.Render("("+trim.FormatTime(sel.VideoDuration)+")")),
		"",                 // row 3
		m.renderTimeline(), // row 4 == timelineRow
		"",
		m.renderFields(),
		"",
	}

	switch {
	case !v.MaxDuration:
		lines = append(lines, "  "+warnStyle.Render(fmt.Sprintf(
			"⚠ clip is longer than %.0fs, shorten it to submit", trim.MaxClipDuration)))
	case m.errMsg != "":
		lines = append(lines, "  "+errorStyle.Render("✗ "+m.errMsg))
	case v.OK():
		lines = append(lines, "  "+successStyle.Render("✓ ready to submit"))
	default:
		lines = append(lines, "  "+warnStyle.Render("⚠ clip range is invalid"))
	}

	lines = append(lines, "",
		dimStyle.Render("  drag handles with the mouse  •  tab: focus a field, type a time, enter: apply"),
		dimStyle.Render("  ←/→: nudge  •  enter: submit  •  esc: start over  •  q: quit"))

	return strings.Join(lines, "\n") + "\n"
}

func (m model) renderTimeline() string {
	sel := m.ctrl.Selection()
	w := m.timelineWidth()
	startCol := m.handleCol(sel.ClipStart)
	endCol := m.handleCol(sel.ClipEnd)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", timelineMargin))
	for i := 0; i < w; i++ {
		switch {
		case i == startCol || i == endCol:
			b.WriteString(handleStyle.Render("█"))
		case i > startCol && i < endCol:
			b.WriteString(rangeStyle.Render("━"))
		default:
			b.WriteString(trackStyle.Render("─"))
		}
	}
	return b.String()
}

func (m model) renderFields() string {
	render := func(f trimField, label, canonical string) string {
		if m.focus == f {
			return label + " " + focusedFieldStyle.Render("["+m.fieldInput+"▌]")
		}
		return label + " " + fieldStyle.Render("["+canonical+"]")
	}
	return "  " +
		render(fieldStart, "Start", m.ctrl.StartText()) + "   " +
		render(fieldEnd, "End", m.ctrl.EndText()) + "   " +
		render(fieldDuration, "Length", m.ctrl.DurationText())
}

func (m model) viewWatching() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Meme Maker") + "\n\n")
	b.WriteString(fmt.Sprintf("  %s job %d: %s\n\n",
		spinnerFrames[m.spinnerIdx], m.job.ID, m.job.Status))
	b.WriteString(fmt.Sprintf("  %s  [%s - %s]\n", m.job.Title, m.job.Start, m.job.End))
	return b.String()
}

func (m model) viewDone() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Meme Maker") + "\n\n")
	b.WriteString("  " + successStyle.Render("✓ clip ready") + "\n\n")
	b.WriteString(fmt.Sprintf("  %s  [%s - %s]\n\n", m.job.Title, m.job.Start, m.job.End))
	b.WriteString("  " + m.job.DownloadURL + "\n\n")
	b.WriteString(dimStyle.Render("  n: new clip  •  q: quit") + "\n")
	return b.String()
}

func (m model) viewFailed() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Meme Maker") + "\n\n")
	b.WriteString("  " + errorStyle.Render("✗ clip failed") + "\n\n")
	if m.job.Error != "" {
		b.WriteString("  " + m.job.Error + "\n\n")
	}
	b.WriteString(dimStyle.Render("  r: retry  •  n: new clip  •  q: quit") + "\n")
	return b.String()
}
