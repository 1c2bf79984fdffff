package typelookup

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// extensionTypes maps lower-case extensions to MIME types. Host MIME databases differ
// between systems, so the table is built in to keep classification reproducible.
var extensionTypes = map[string]string{
	// image
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".jpe":  "image/jpeg",
	".jfif": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".dib":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".webp": "image/webp",
	".ico":  "image/x-icon",
	".svg":  "image/svg+xml",
	".heic": "image/heic",
	".heif": "image/heif",
	".avif": "image/avif",

	// video
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".mov":  "video/quicktime",
	".qt":   "video/quicktime",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
	".webm": "video/webm",
	".wmv":  "video/x-ms-wmv",
	".asf":  "video/x-ms-asf",
	".flv":  "video/x-flv",
	".mpg":  "video/mpeg",
	".mpeg": "video/mpeg",
	".mpe":  "video/mpeg",
	".m2ts": "video/vnd.dlna.mpeg-tts",
	".mts":  "video/vnd.dlna.mpeg-tts",
	".ts":   "video/vnd.dlna.mpeg-tts",
	".vob":  "video/dvd",
	".3gp":  "video/3gpp",
	".3g2":  "video/3gpp2",
	".ogv":  "video/ogg",

	// audio
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".flac": "audio/flac",
	".aac":  "audio/aac",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".opus": "audio/opus",
	".wma":  "audio/x-ms-wma",
	".aif":  "audio/aiff",
	".aiff": "audio/aiff",
	".mid":  "audio/mid",
	".midi": "audio/mid",
	".amr":  "audio/amr",
	".ape":  "audio/ape",

	// common non-media files, listed so they are not sniffed
	".txt":  "text/plain",
	".log":  "text/plain",
	".md":   "text/markdown",
	".csv":  "text/csv",
	".json": "application/json",
	".xml":  "text/xml",
	".html": "text/html",
	".htm":  "text/html",
	".nfo":  "text/plain",
	".srt":  "application/x-subrip",
	".ass":  "text/x-ssa",
	".pdf":  "application/pdf",
	".zip":  "application/zip",
	".db":   "application/octet-stream",
	".ini":  "text/plain",
	".yaml": "application/yaml",
	".yml":  "application/yaml",
}

// Lookup implements domain.TypeLookup.
type Lookup struct {
	sniff bool
}

// New returns a Lookup. When sniff is true, files with an unlisted extension
// are classified from their leading bytes.
func New(sniff bool) *Lookup {
	return &Lookup{sniff: sniff}
}

func (l *Lookup) MimeType(path string) string {
	if t, ok := ByExtension(path); ok {
		return t
	}
	if !l.sniff {
		return ""
	}
	m, err := mimetype.DetectFile(path)
	if err != nil {
		return ""
	}
	return m.String()
}

// ByExtension looks path up in the built-in extension table.
func ByExtension(path string) (string, bool) {
	t, ok := extensionTypes[strings.ToLower(filepath.Ext(path))]
	return t, ok
}
