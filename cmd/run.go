package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/skinfinder/internal/app"
	"github.com/abhisek/skinfinder/internal/logging"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the questionnaire",
		RunE: func(cmd *cobra.Command, args []string) error {
			skip, _ := cmd.Flags().GetBool("no-splash")
			return runApp(cmd, skip)
		},
	}
	cmd.Flags().Bool("no-splash", false, "Skip the welcome animation")
	return cmd
}

// runApp loads config, opens the log file, builds the service and
// launches the TUI.
func runApp(cmd *cobra.Command, skipSplash bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	flavor, err := cfg.FlavorValue()
	if err != nil {
		return err
	}

	logger, closer, err := logging.OpenFile(cfg.Log.File, cfg.Log.Verbose)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	svc, err := newService(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("starting skinfinder",
		slog.String("version", version),
		slog.String("flavor", string(flavor)),
		slog.String("provider", cfg.Service.Provider),
		slog.String("service_url", cfg.Service.URL))

	return app.Run(app.Options{
		Service:    svc,
		Flavor:     flavor,
		Logger:     logger,
		SkipSplash: skipSplash,
	})
}
