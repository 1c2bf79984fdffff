// Package probe inspects media containers with ffprobe through the transcoder library.
package probe

import (
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/floostack/transcoder"
	"github.com/floostack/transcoder/ffmpeg"

	"github.com/mediacheck/mediacheck/internal/domain"
)

// ErrFfprobeNotFound is returned by Probe when no ffprobe binary could be resolved.
var ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")

// Prober implements domain.MediaProber.
type Prober struct {
	binPath string
}

// New resolves binPath (a name on PATH or an explicit path). Resolution failure is
// not fatal: every Probe call then reports ErrFfprobeNotFound.
func New(binPath string) *Prober {
	resolved, err := exec.LookPath(binPath)
	if err != nil {
		return &Prober{}
	}
	return &Prober{binPath: resolved}
}

// Available reports whether an ffprobe binary was resolved.
func (p *Prober) Available() error {
	if p.binPath == "" {
		return ErrFfprobeNotFound
	}
	return nil
}

// BinPath returns the resolved ffprobe path, or "" when none was found.
func (p *Prober) BinPath() string { return p.binPath }

// Probe runs a single ffprobe call against path.
func (p *Prober) Probe(path string) (*domain.ProbeResult, error) {
	if p.binPath == "" {
		return nil, ErrFfprobeNotFound
	}

	cfg := &ffmpeg.Config{FfprobeBinPath: p.binPath}
	metadata, err := ffmpeg.New(cfg).Input(inputPath(path)).GetMetadata()
	if err != nil {
		return nil, fmt.Errorf("ffprobe: %s", summarize(err.Error()))
	}

	return FromMetadata(metadata), nil
}

// inputPath makes path absolute so ffprobe never reads a relative name such as
// "concat:x.mp4" or "http:a.mp4" as a protocol URL.
func inputPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "file:" + path
	}
	return abs
}

// ParseJSON converts raw ffprobe JSON output into a ProbeResult.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*domain.ProbeResult, error) {
	var md ffmpeg.Metadata
	if err := json.Unmarshal(data, &md); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return FromMetadata(md), nil
}

// FromMetadata counts the decodable streams reported by ffprobe.
func FromMetadata(md transcoder.Metadata) *domain.ProbeResult {
	res := &domain.ProbeResult{}
	if md == nil {
		return res
	}

	if f := md.GetFormat(); f != nil {
		res.FormatName = f.GetFormatName()
		res.Duration = f.GetDuration()
	}

	for _, s := range md.GetStreams() {
		switch s.GetCodecType() {
		case "video":
			res.VideoStreams++
		case "audio":
			res.AudioStreams++
		}
	}
	return res
}

var ffprobeErrorString = regexp.MustCompile(`"string"\s*:\s*"([^"]+)"`)

// summarize extracts the ffprobe diagnostic from the transcoder's verbose error text.
func summarize(text string) string {
	if m := ffprobeErrorString.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if _, rest, ok := strings.Cut(text, "| error: "); ok {
		if before, _, ok := strings.Cut(rest, " |"); ok {
			return strings.TrimSpace(before)
		}
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(text)
}
