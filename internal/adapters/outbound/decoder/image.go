// Package decoder holds the per-category verifiers. Each one opens a file with a
// decoder, releases it on every path and converts the outcome into a domain.Verdict.
package decoder

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	_ "image/jpeg" // registers JPEG
	_ "image/png"  // registers PNG

	_ "golang.org/x/image/bmp"  // registers BMP
	_ "golang.org/x/image/tiff" // registers TIFF
	_ "golang.org/x/image/webp" // registers WebP

	"github.com/mediacheck/mediacheck/internal/domain"
)

// ImageVerifier decodes the full pixel buffer of an image whose header
// declares at most maxPixels pixels.
type ImageVerifier struct {
	maxPixels int64
}

// NewImageVerifier returns a verifier with the given pixel budget.
// A non-positive budget uses domain.DefaultMaxImagePixels.
func NewImageVerifier(maxPixels int64) *ImageVerifier {
	if maxPixels <= 0 {
		maxPixels = domain.DefaultMaxImagePixels
	}
	return &ImageVerifier{maxPixels: maxPixels}
}

func (v *ImageVerifier) Verify(path string) (verdict domain.Verdict) {
	defer recoverVerdict(&verdict)

	f, err := os.Open(path)
	if err != nil {
		return domain.DecodeFailed(err)
	}
	defer f.Close()

	// The header is read first: an out-of-memory from a forged size cannot be recovered.
	cfg, _, err := image.DecodeConfig(f)
	switch {
	case errors.Is(err, image.ErrFormat):
		return domain.OpenedButInvalid()
	case err != nil:
		return domain.DecodeFailed(err)
	case cfg.Width <= 0 || cfg.Height <= 0:
		return domain.OpenedButInvalid()
	case int64(cfg.Width)*int64(cfg.Height) > v.maxPixels:
		return domain.DecodeFailedMessage(fmt.Sprintf("image dimensions %dx%d exceed limit of %d pixels", cfg.Width, cfg.Height, v.maxPixels))
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return domain.DecodeFailed(err)
	}

	img, _, err := image.Decode(f)
	switch {
	case errors.Is(err, image.ErrFormat):
		// no registered decoder accepts the data: nothing could be decoded
		return domain.OpenedButInvalid()
	case err != nil:
		return domain.DecodeFailed(err)
	case img == nil || img.Bounds().Empty():
		return domain.OpenedButInvalid()
	}

	return domain.Opened()
}

// recoverVerdict turns a decoder panic into a DecodeError verdict.
func recoverVerdict(verdict *domain.Verdict) {
	if r := recover(); r != nil {
		*verdict = domain.DecodeFailedMessage(fmt.Sprintf("decoder panic: %v", r))
	}
}
