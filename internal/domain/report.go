package domain

import (
	"fmt"
	"time"
)

// TimestampLayout renders as YYYY/MM/DD HH:MM:SS.
const TimestampLayout = "2006/01/02 15:04:05"

// Locale selects the wording of report lines.
type Locale string

const (
	LocaleEnglish            Locale = "en"
	LocaleTraditionalChinese Locale = "zh-TW"
)

// ValidLocales enumerates all supported report locales.
var ValidLocales = []Locale{LocaleEnglish, LocaleTraditionalChinese}

// Status keywords. They are not localized so that logs stay greppable.
const (
	KeywordSuccess = "success"
	KeywordFailed  = "failed"
	KeywordSkipped = "skipped"
)

type messages struct {
	opened   string
	invalid  string
	errored  string
	started  string
	finished string
	skipped  string
}

var catalog = map[Locale]messages{
	LocaleEnglish: {
		opened:   "can be opened normally",
		invalid:  "cannot be opened",
		errored:  "error while opening: ",
		started:  "program started",
		finished: "program finished",
		skipped:  "unknown type",
	},
	LocaleTraditionalChinese: {
		opened:   "可正常開啟",
		invalid:  "無法開啟",
		errored:  "開啟時發生錯誤: ",
		started:  "程式啟動",
		finished: "程式結束",
		skipped:  "未知類型",
	},
}

// Formatter renders verdicts and banners as single timestamped lines.
type Formatter struct {
	msgs messages
	now  func() time.Time
}

// NewFormatter returns a formatter for locale. Unknown locales fall back to English.
// A nil clock uses time.Now.
func NewFormatter(locale Locale, now func() time.Time) *Formatter {
	msgs, ok := catalog[locale]
	if !ok {
		msgs = catalog[LocaleEnglish]
	}
	if now == nil {
		now = time.Now
	}
	return &Formatter{msgs: msgs, now: now}
}

func (f *Formatter) stamp() string {
	return f.now().Format(TimestampLayout)
}

// Format renders the verdict for path.
func (f *Formatter) Format(path string, v Verdict) string {
	switch v.Status {
	case StatusOpened:
		return fmt.Sprintf("%s %s: %s %s", f.stamp(), KeywordSuccess, path, f.msgs.opened)
	case StatusInvalid:
		return fmt.Sprintf("%s %s: %s %s", f.stamp(), KeywordFailed, path, f.msgs.invalid)
	default:
		return fmt.Sprintf("%s %s: %s %s%s", f.stamp(), KeywordFailed, path, f.msgs.errored, v.Message)
	}
}

// Skipped renders the optional line for a file of unknown type.
func (f *Formatter) Skipped(path string) string {
	return fmt.Sprintf("%s %s: %s %s", f.stamp(), KeywordSkipped, path, f.msgs.skipped)
}

// StartBanner marks the beginning of a run.
func (f *Formatter) StartBanner() string {
	return f.stamp() + " " + f.msgs.started
}

// EndBanner marks the end of a run.
func (f *Formatter) EndBanner() string {
	return f.stamp() + " " + f.msgs.finished
}
