package domain

import "fmt"

// ColorMode controls console colouring of report lines.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ValidColorModes enumerates all recognized color modes.
var ValidColorModes = []ColorMode{ColorAuto, ColorAlways, ColorNever}

// ScanConfig holds run configuration loaded from .mediacheck.yaml.
// Zero values mean "use the default".
type ScanConfig struct {
	LogName      string    `yaml:"log_name"`
	LogDir       string    `yaml:"log_dir"`
	Locale       Locale    `yaml:"locale"`
	LogSkipped   bool      `yaml:"log_skipped"`
	SniffContent *bool     `yaml:"sniff_content"`
	ExcludePaths []string  `yaml:"exclude_paths"`
	FfprobePath  string    `yaml:"ffprobe_path"`
	Color        ColorMode `yaml:"color"`

	// MaxImagePixels caps Width*Height of an image before its pixels are decoded.
	MaxImagePixels int64 `yaml:"max_image_pixels"`
}

// DefaultMaxImagePixels is about 400 MB of RGBA pixel data.
const DefaultMaxImagePixels int64 = 100_000_000

// DefaultConfig returns the configuration used when no file is present.
// LogName is left empty: it defaults to the program name at sink construction.
func DefaultConfig() ScanConfig {
	return ScanConfig{
		LogDir:         ".",
		Locale:         LocaleEnglish,
		FfprobePath:    "ffprobe",
		Color:          ColorAuto,
		MaxImagePixels: DefaultMaxImagePixels,
	}
}

// WithDefaults fills every unset field from DefaultConfig.
func (c ScanConfig) WithDefaults() ScanConfig {
	d := DefaultConfig()
	if c.LogDir == "" {
		c.LogDir = d.LogDir
	}
	if c.Locale == "" {
		c.Locale = d.Locale
	}
	if c.FfprobePath == "" {
		c.FfprobePath = d.FfprobePath
	}
	if c.Color == "" {
		c.Color = d.Color
	}
	if c.MaxImagePixels == 0 {
		c.MaxImagePixels = d.MaxImagePixels
	}
	return c
}

// ShouldSniff reports whether content sniffing is enabled. It defaults to true.
func (c ScanConfig) ShouldSniff() bool {
	return c.SniffContent == nil || *c.SniffContent
}

// LogFileName returns the log file name for programName, honouring log_name.
func (c ScanConfig) LogFileName(programName string) string {
	if c.LogName != "" {
		return c.LogName
	}
	return programName
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ScanConfig) Validate() error {
	if c.Locale != "" && !isValidLocale(c.Locale) {
		return fmt.Errorf("unknown locale %q (valid: en, zh-TW)", c.Locale)
	}

	if c.Color != "" && !isValidColorMode(c.Color) {
		return fmt.Errorf("unknown color %q (valid: auto, always, never)", c.Color)
	}

	if c.MaxImagePixels < 0 {
		return fmt.Errorf("max_image_pixels must not be negative, got %d", c.MaxImagePixels)
	}

	for i, p := range c.ExcludePaths {
		if p == "" {
			return fmt.Errorf("exclude_paths[%d] must not be empty", i)
		}
	}

	return nil
}

func isValidLocale(l Locale) bool {
	for _, v := range ValidLocales {
		if v == l {
			return true
		}
	}
	return false
}

func isValidColorMode(m ColorMode) bool {
	for _, v := range ValidColorModes {
		if v == m {
			return true
		}
	}
	return false
}
