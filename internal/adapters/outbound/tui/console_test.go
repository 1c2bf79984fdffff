package tui_test

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/mediacheck/mediacheck/internal/adapters/outbound/tui"
	"github.com/mediacheck/mediacheck/internal/domain"
	"github.com/stretchr/testify/assert"
)

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

var lines = []string{
	"2024/03/07 09:05:02 program started",
	"2024/03/07 09:05:03 success: a.jpg can be opened normally",
	"2024/03/07 09:05:03 failed: b.png cannot be opened",
	"2024/03/07 09:05:04 failed: c.mp4 error while opening: ffprobe: Invalid data found",
	"2024/03/07 09:05:04 skipped: e.txt unknown type",
	"2024/03/07 09:05:05 程式結束",
	"short",
}

func TestLineStyler_NonTerminalIsPlain(t *testing.T) {
	s := tui.NewLineStyler(&bytes.Buffer{}, domain.ColorAuto)
	assert.False(t, s.Enabled())
	for _, l := range lines {
		assert.Equal(t, l, s.Render(l))
	}
}

func TestLineStyler_NeverIsPlain(t *testing.T) {
	s := tui.NewLineStyler(&bytes.Buffer{}, domain.ColorNever)
	assert.False(t, s.Enabled())
	assert.Equal(t, lines[1], s.Render(lines[1]))
}

func TestLineStyler_AlwaysAddsColourButKeepsText(t *testing.T) {
	s := tui.NewLineStyler(&bytes.Buffer{}, domain.ColorAlways)
	assert.True(t, s.Enabled())

	for _, l := range lines {
		out := s.Render(l)
		assert.Equal(t, l, ansi.ReplaceAllString(out, ""), "styling must not change text")
	}
	assert.NotEqual(t, lines[2], s.Render(lines[2]))
}
