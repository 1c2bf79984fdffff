package decoder

import "github.com/mediacheck/mediacheck/internal/domain"

// Verifiers maps each known category to its verifier.
type Verifiers map[domain.MediaCategory]domain.Verifier

// NewVerifiers wires the default verifier for every known category.
// maxImagePixels is the image pixel budget; see NewImageVerifier.
func NewVerifiers(prober domain.MediaProber, maxImagePixels int64) Verifiers {
	return Verifiers{
		domain.CategoryImage: NewImageVerifier(maxImagePixels),
		domain.CategoryVideo: NewVideoVerifier(prober),
		domain.CategoryAudio: NewAudioVerifier(prober),
	}
}
