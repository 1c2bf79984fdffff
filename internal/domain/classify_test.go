package domain_test

import (
	"testing"

	"github.com/mediacheck/mediacheck/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		mime string
		want domain.MediaCategory
	}{
		{"image/jpeg", domain.CategoryImage},
		{"image/png", domain.CategoryImage},
		{"video/mp4", domain.CategoryVideo},
		{"audio/mpeg", domain.CategoryAudio},
		{"image/gif", domain.CategoryVideo},
		{"IMAGE/GIF", domain.CategoryVideo},
		{"audio/wav; charset=binary", domain.CategoryAudio},
		{"text/plain; charset=utf-8", domain.CategoryUnknown},
		{"application/octet-stream", domain.CategoryUnknown},
		{"", domain.CategoryUnknown},
		{"image", domain.CategoryUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CategoryFor(tt.mime))
		})
	}
}

type mapLookup map[string]string

func (m mapLookup) MimeType(path string) string { return m[path] }

func TestClassifier_Classify(t *testing.T) {
	c := domain.NewClassifier(mapLookup{
		"a.jpg": "image/jpeg",
		"d.gif": "image/gif",
		"e.txt": "text/plain",
	})

	assert.Equal(t, domain.CategoryImage, c.Classify("a.jpg"))
	assert.Equal(t, domain.CategoryVideo, c.Classify("d.gif"), "gif must go to the video path")
	assert.Equal(t, domain.CategoryUnknown, c.Classify("e.txt"))
	assert.Equal(t, domain.CategoryUnknown, c.Classify("missing"))
}

func TestMediaCategory_String(t *testing.T) {
	assert.Equal(t, "image", domain.CategoryImage.String())
	assert.Equal(t, "video", domain.CategoryVideo.String())
	assert.Equal(t, "audio", domain.CategoryAudio.String())
	assert.Equal(t, "unknown", domain.CategoryUnknown.String())
	assert.False(t, domain.CategoryUnknown.Known())
	assert.True(t, domain.CategoryAudio.Known())
}
