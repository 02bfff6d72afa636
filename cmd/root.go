package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/skinfinder/internal/config"
	"github.com/abhisek/skinfinder/internal/logging"
	"github.com/abhisek/skinfinder/internal/recommend"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "skinfinder",
		Short: "Skincare ingredient recommendations from a short questionnaire",
		Long: "SkinFinder asks about your skin type, concerns and history, then asks a\n" +
			"recommendation service which ingredients suit you and which products contain them.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, false)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Path to a TOML config file (overrides SKINFINDER_CONFIG)")
	pf.String("service-url", "", "Recommendation service base URL")
	pf.String("service", "", "Service provider: http or mock")
	pf.String("flavor", "", "Questionnaire flavor: classic or catalog")
	pf.String("log-file", "", "Log file for interactive runs")
	pf.BoolP("verbose", "v", false, "Enable debug logging")

	root.AddCommand(newRunCmd())
	root.AddCommand(newPredictCmd())
	root.AddCommand(newProductsCmd())
	root.AddCommand(newConcernsCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves configuration for cmd, with its flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// headlessLogger logs to stderr when --verbose is set and drops everything
// otherwise, keeping command output clean.
func headlessLogger(cmd *cobra.Command, cfg config.Config) *slog.Logger {
	if !cfg.Log.Verbose {
		return logging.Discard()
	}
	return logging.New(cmd.ErrOrStderr(), true)
}

// newService builds the configured recommendation service.
func newService(cfg config.Config, logger *slog.Logger) (recommend.Service, error) {
	svc, err := recommend.New(cfg.Recommend(), logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation service: %w", err)
	}
	return svc, nil
}
