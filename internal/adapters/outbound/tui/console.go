package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mediacheck/mediacheck/internal/domain"
)

var (
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	dim     = lipgloss.Color("#6B7280") // muted gray
	accent  = lipgloss.Color("#D97706") // amber
)

// LineStyler colours report lines for a console. Only escape sequences are added:
// with colours stripped the text equals the log file line.
type LineStyler struct {
	stamp   lipgloss.Style
	pass    lipgloss.Style
	fail    lipgloss.Style
	skip    lipgloss.Style
	banner  lipgloss.Style
	enabled bool
}

// NewLineStyler detects the colour profile of w; mode overrides detection.
func NewLineStyler(w io.Writer, mode domain.ColorMode) *LineStyler {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case domain.ColorAlways:
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI256)
		}
	case domain.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return &LineStyler{
		stamp:   r.NewStyle().Foreground(dim),
		pass:    r.NewStyle().Foreground(success).Bold(true),
		fail:    r.NewStyle().Foreground(danger).Bold(true),
		skip:    r.NewStyle().Foreground(dim),
		banner:  r.NewStyle().Foreground(accent),
		enabled: r.ColorProfile() != termenv.Ascii,
	}
}

// Enabled reports whether Render emits escape sequences.
func (s *LineStyler) Enabled() bool { return s.enabled }

// Render styles the timestamp and the status keyword of a report line.
func (s *LineStyler) Render(line string) string {
	if !s.enabled || len(line) < len(domain.TimestampLayout) {
		return line
	}

	stamp, rest := line[:len(domain.TimestampLayout)], line[len(domain.TimestampLayout):]
	body := strings.TrimPrefix(rest, " ")
	if len(body) == len(rest) {
		return line
	}

	keyword, tail, ok := strings.Cut(body, ":")
	if !ok {
		return s.stamp.Render(stamp) + " " + s.banner.Render(body)
	}

	var style lipgloss.Style
	switch keyword {
	case domain.KeywordSuccess:
		style = s.pass
	case domain.KeywordFailed:
		style = s.fail
	case domain.KeywordSkipped:
		style = s.skip
	default:
		return s.stamp.Render(stamp) + " " + s.banner.Render(body)
	}
	return s.stamp.Render(stamp) + " " + style.Render(keyword) + ":" + tail
}
