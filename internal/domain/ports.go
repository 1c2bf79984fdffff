package domain

// FileEnumerator lists every regular file below a root directory.
type FileEnumerator interface {
	Enumerate(rootPath string, excludeDirs ...string) ([]string, error)
}

// TypeLookup resolves a file path to a "<type>/<subtype>" MIME string.
// An empty string means the type could not be determined.
type TypeLookup interface {
	MimeType(path string) string
}

// Verifier opens a media file with a decoder and reports whether it is usable.
// Implementations never return errors: every failure is carried by the Verdict.
type Verifier interface {
	Verify(path string) Verdict
}

// MediaProber inspects a container with an external prober (ffprobe).
type MediaProber interface {
	Probe(path string) (*ProbeResult, error)
}

// LineSink receives finished report lines.
type LineSink interface {
	WriteLine(text string) error
}

// ConfigLoader loads scan configuration from a directory or an explicit file.
type ConfigLoader interface {
	Load(dir string) (ScanConfig, error)
	LoadFile(path string) (ScanConfig, error)
}

// ProbeResult is the stream inventory of a probed media container.
type ProbeResult struct {
	FormatName   string
	Duration     string
	VideoStreams int
	AudioStreams int
}
