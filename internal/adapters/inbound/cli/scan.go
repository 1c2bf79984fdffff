package cli

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/mediacheck/mediacheck/internal/adapters/outbound/decoder"
	"github.com/mediacheck/mediacheck/internal/adapters/outbound/probe"
	"github.com/mediacheck/mediacheck/internal/adapters/outbound/scanner"
	"github.com/mediacheck/mediacheck/internal/adapters/outbound/sink"
	"github.com/mediacheck/mediacheck/internal/adapters/outbound/tui"
	"github.com/mediacheck/mediacheck/internal/adapters/outbound/typelookup"
	"github.com/mediacheck/mediacheck/internal/application"
	"github.com/mediacheck/mediacheck/internal/domain"
)

func loadConfig(loader domain.ConfigLoader, path string) (domain.ScanConfig, error) {
	if path == "" {
		cfg, err := loader.Load(".")
		if err != nil {
			return domain.ScanConfig{}, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := loader.LoadFile(path)
	if err != nil {
		return domain.ScanConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func runScan(cmd *cobra.Command, root string, cfg domain.ScanConfig) (err error) {
	// Check the root before the sink truncates the previous log.
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidRoot, root)
	}

	prober := probe.New(cfg.FfprobePath)
	if err := prober.Available(); err != nil {
		log.WithField("ffprobe", cfg.FfprobePath).Warn("ffprobe not found, video and audio files will be reported as failed")
	} else {
		log.WithField("ffprobe", prober.BinPath()).Debug("using ffprobe")
	}

	console := cmd.OutOrStdout()
	styler := tui.NewLineStyler(console, cfg.Color)
	out, err := sink.Open(cfg.LogDir, cfg.LogFileName(programName), sink.Target{W: console, Decorate: styler.Render})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing log file: %w", cerr)
		}
	}()

	svc := application.NewScanService(
		scanner.New(),
		domain.NewClassifier(typelookup.New(cfg.ShouldSniff())),
		decoder.NewVerifiers(prober, cfg.MaxImagePixels),
		domain.NewFormatter(cfg.Locale, nil),
		application.ScanOptions{
			ExcludeDirs: cfg.ExcludePaths,
			LogSkipped:  cfg.LogSkipped,
		},
	)

	stats, err := svc.Run(cmd.Context(), root, out)
	log.WithFields(log.Fields{
		"checked": stats.Checked,
		"failed":  stats.Failed,
		"skipped": stats.Skipped,
		"log":     sink.LogPath(cfg.LogDir, cfg.LogFileName(programName)),
	}).Debug("scan finished")

	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	return nil
}
