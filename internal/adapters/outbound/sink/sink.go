package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Target is one destination of a FanOut. Decorate, when set, restyles each line
// for that destination only (for example terminal colours); it must not change the text.
type Target struct {
	W        io.Writer
	Decorate func(string) string
}

type flusher interface{ Flush() error }

type syncer interface{ Sync() error }

// FanOut implements domain.LineSink by duplicating every line to all targets.
type FanOut struct {
	mu      sync.Mutex
	targets []Target
	owned   []io.Closer
}

// New builds a FanOut over targets. The caller keeps ownership of the writers.
func New(targets ...Target) *FanOut {
	return &FanOut{targets: targets}
}

// Open creates or truncates <dir>/<programName>.log and returns a FanOut writing to
// that file first and console second. The log file is owned and closed by Close.
func Open(dir, programName string, console Target) (*FanOut, error) {
	if programName == "" {
		return nil, errors.New("program name must not be empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	p := LogPath(dir, programName)
	f, err := os.OpenFile(p, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	s := New(Target{W: f}, console)
	s.owned = append(s.owned, f)
	return s, nil
}

// LogPath returns the log file path used by Open.
func LogPath(dir, programName string) string {
	return filepath.Join(dir, programName+".log")
}

// WriteLine appends text and a newline to every target and flushes each one.
// All targets are attempted even if one fails; the first error is returned.
func (s *FanOut) WriteLine(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for _, t := range s.targets {
		line := text
		if t.Decorate != nil {
			line = t.Decorate(text)
		}
		if _, err := io.WriteString(t.W, line+"\n"); err != nil && firstErr == nil {
			firstErr = err
		}
		if err := flush(t.W); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Close flushes every target and closes the writers this FanOut owns.
// Console streams belong to the process and are left open.
func (s *FanOut) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, t := range s.targets {
		if f, ok := t.W.(flusher); ok {
			errs = append(errs, f.Flush())
		}
	}
	for _, c := range s.owned {
		errs = append(errs, c.Close())
	}
	s.owned = nil
	return errors.Join(errs...)
}

func flush(w io.Writer) error {
	switch f := w.(type) {
	case flusher:
		return f.Flush()
	case *os.File:
		// writes already reached the kernel; fsync per line is not required
		return nil
	case syncer:
		return f.Sync()
	}
	return nil
}
