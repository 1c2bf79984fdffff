package domain

import "strings"

// CategoryFor maps a "<type>/<subtype>" MIME string to a media category.
// GIF is decoded as a frame sequence, so the gif subtype is classified as video.
func CategoryFor(mimeType string) MediaCategory {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	typ, sub, ok := strings.Cut(strings.ToLower(strings.TrimSpace(mimeType)), "/")
	if !ok {
		return CategoryUnknown
	}

	if sub == "gif" {
		return CategoryVideo
	}

	switch typ {
	case "image":
		return CategoryImage
	case "video":
		return CategoryVideo
	case "audio":
		return CategoryAudio
	default:
		return CategoryUnknown
	}
}

// Classifier turns file paths into media categories.
type Classifier struct {
	lookup TypeLookup
}

func NewClassifier(lookup TypeLookup) *Classifier {
	return &Classifier{lookup: lookup}
}

// Classify never fails: paths with no recognizable type are CategoryUnknown.
func (c *Classifier) Classify(path string) MediaCategory {
	return CategoryFor(c.lookup.MimeType(path))
}
