package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	"github.com/mediacheck/mediacheck/internal/adapters/outbound/config"
)

var (
	version = "dev"
	commit  = "none"
)

const programName = "mediacheck"

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   programName + " <root>",
		Short: "Find unreadable images, videos and audio files",
		Long: "Recursively scan a directory, open every image, video and audio file with a matching decoder " +
			"and log one success/failed line per file to " + programName + ".log and the console.",
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd, verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(config.New(), configPath)
			if err != nil {
				return err
			}
			return runScan(cmd, args[0], cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file (default ./.mediacheck.yaml when present)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print debug diagnostics to stderr")
	setVersionTemplate(cmd)

	return cmd
}

// setupLogging routes diagnostics to stderr so they never mix with the report on stdout.
func setupLogging(cmd *cobra.Command, verbose bool) {
	log.SetHandler(clihandler.New(cmd.ErrOrStderr()))
	if verbose {
		log.SetLevel(log.DebugLevel)
		return
	}
	log.SetLevel(log.WarnLevel)
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.SetHandler(clihandler.New(os.Stderr))
	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		log.WithError(err).Error(programName + " failed")
	}
	return err
}
