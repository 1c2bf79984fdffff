package domain

import (
	"errors"
	"strings"
)

// ErrInvalidRoot is returned when the scan root is missing or not a directory.
var ErrInvalidRoot = errors.New("scan root is not a directory")

// MediaCategory is the coarse media classification used for decoder dispatch.
type MediaCategory int

const (
	CategoryUnknown MediaCategory = iota
	CategoryImage
	CategoryVideo
	CategoryAudio
)

func (c MediaCategory) String() string {
	switch c {
	case CategoryImage:
		return "image"
	case CategoryVideo:
		return "video"
	case CategoryAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// Known reports whether the category has a verifier.
func (c MediaCategory) Known() bool { return c != CategoryUnknown }

// VerdictStatus is the outcome kind of a single verification.
type VerdictStatus int

const (
	// StatusOpened means the decoder opened the file and found it valid.
	StatusOpened VerdictStatus = iota
	// StatusInvalid means the decoder ran but reported the content empty or unreadable.
	StatusInvalid
	// StatusDecodeError means the decoder failed with an error.
	StatusDecodeError
)

func (s VerdictStatus) String() string {
	switch s {
	case StatusOpened:
		return "opened"
	case StatusInvalid:
		return "invalid"
	default:
		return "decode_error"
	}
}

// Verdict is the result of verifying one file. Message is only set for StatusDecodeError.
type Verdict struct {
	Status  VerdictStatus
	Message string
}

func Opened() Verdict { return Verdict{Status: StatusOpened} }

func OpenedButInvalid() Verdict { return Verdict{Status: StatusInvalid} }

// DecodeFailed wraps a decoder error into a verdict.
func DecodeFailed(err error) Verdict {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return DecodeFailedMessage(msg)
}

// DecodeFailedMessage builds a DecodeError verdict from raw text, collapsed to one line.
func DecodeFailedMessage(msg string) Verdict {
	return Verdict{Status: StatusDecodeError, Message: oneLine(msg)}
}

// OK reports whether the verdict is a success.
func (v Verdict) OK() bool { return v.Status == StatusOpened }

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ScanStats counts what a scan did. It is used for diagnostics only.
type ScanStats struct {
	Checked int
	Failed  int
	Skipped int
}
