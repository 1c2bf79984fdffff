package application

import (
	"context"
	"fmt"

	"github.com/apex/log"

	"github.com/mediacheck/mediacheck/internal/domain"
)

// ScanOptions tune a ScanService.
type ScanOptions struct {
	// ExcludeDirs are directory names pruned during enumeration.
	ExcludeDirs []string
	// LogSkipped writes a "skipped" line for files of unknown type.
	LogSkipped bool
}

// ScanService orchestrates the sweep:
// banner -> enumerate -> classify -> verify -> format -> write -> banner.
type ScanService struct {
	enumerator domain.FileEnumerator
	classifier *domain.Classifier
	verifiers  map[domain.MediaCategory]domain.Verifier
	formatter  *domain.Formatter
	opts       ScanOptions
}

func NewScanService(
	enumerator domain.FileEnumerator,
	classifier *domain.Classifier,
	verifiers map[domain.MediaCategory]domain.Verifier,
	formatter *domain.Formatter,
	opts ScanOptions,
) *ScanService {
	return &ScanService{
		enumerator: enumerator,
		classifier: classifier,
		verifiers:  verifiers,
		formatter:  formatter,
		opts:       opts,
	}
}

// Run scans rootPath and writes one line per media file to sink, framed by banners.
// Per-file failures become report lines; only systemic failures are returned.
// Cancelling ctx stops the scan between files; the end banner is still written.
func (s *ScanService) Run(ctx context.Context, rootPath string, sink domain.LineSink) (domain.ScanStats, error) {
	var stats domain.ScanStats

	if err := sink.WriteLine(s.formatter.StartBanner()); err != nil {
		return stats, fmt.Errorf("writing report: %w", err)
	}

	files, err := s.enumerator.Enumerate(rootPath, s.opts.ExcludeDirs...)
	if err != nil {
		return stats, fmt.Errorf("enumerating %s: %w", rootPath, err)
	}
	log.WithField("files", len(files)).Debug("enumerated")

	for _, path := range files {
		if ctx.Err() != nil {
			break
		}
		if err := s.handle(path, sink, &stats); err != nil {
			return stats, fmt.Errorf("writing report: %w", err)
		}
	}

	if err := sink.WriteLine(s.formatter.EndBanner()); err != nil {
		return stats, fmt.Errorf("writing report: %w", err)
	}
	return stats, ctx.Err()
}

func (s *ScanService) handle(path string, sink domain.LineSink, stats *domain.ScanStats) error {
	category := s.classifier.Classify(path)
	verifier, ok := s.verifiers[category]
	if !category.Known() || !ok {
		stats.Skipped++
		log.WithField("path", path).Debug("skipped unknown type")
		if s.opts.LogSkipped {
			return sink.WriteLine(s.formatter.Skipped(path))
		}
		return nil
	}

	verdict := safeVerify(verifier, path)
	stats.Checked++
	if !verdict.OK() {
		stats.Failed++
	}
	log.WithFields(log.Fields{
		"path":     path,
		"category": category,
		"status":   verdict.Status,
	}).Debug("verified")

	return sink.WriteLine(s.formatter.Format(path, verdict))
}

// safeVerify keeps a panicking verifier from aborting the scan.
func safeVerify(v domain.Verifier, path string) (verdict domain.Verdict) {
	defer func() {
		if r := recover(); r != nil {
			verdict = domain.DecodeFailedMessage(fmt.Sprintf("verifier panic: %v", r))
		}
	}()
	return v.Verify(path)
}
