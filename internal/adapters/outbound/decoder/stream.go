package decoder

import "github.com/mediacheck/mediacheck/internal/domain"

// StreamVerifier checks a container through a MediaProber and requires at least
// one stream of its kind. It serves both the video and the audio category.
type StreamVerifier struct {
	prober domain.MediaProber
	kind   domain.MediaCategory
}

// NewVideoVerifier requires a decodable video stream.
func NewVideoVerifier(prober domain.MediaProber) *StreamVerifier {
	return &StreamVerifier{prober: prober, kind: domain.CategoryVideo}
}

// NewAudioVerifier requires a decodable audio stream.
func NewAudioVerifier(prober domain.MediaProber) *StreamVerifier {
	return &StreamVerifier{prober: prober, kind: domain.CategoryAudio}
}

func (v *StreamVerifier) Verify(path string) (verdict domain.Verdict) {
	defer recoverVerdict(&verdict)

	res, err := v.prober.Probe(path)
	if err != nil {
		return domain.DecodeFailed(err)
	}
	if res == nil || v.streams(res) == 0 {
		return domain.OpenedButInvalid()
	}
	return domain.Opened()
}

func (v *StreamVerifier) streams(res *domain.ProbeResult) int {
	if v.kind == domain.CategoryAudio {
		return res.AudioStreams
	}
	return res.VideoStreams
}
