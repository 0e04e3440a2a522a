package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/deck-flow/internal/config"
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string
	envPath    string
	logLevel   string
	outputDir  string
	noProgress bool

	appCtx *app
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:           "deckflow",
		Short:         "Generate consulting-style PowerPoint decks with an LLM",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnvFile(envPath); err != nil {
				return err
			}
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			if outputDir != "" {
				cfg.Paths.Output = outputDir
			}
			if noProgress {
				cfg.UI.Progress = false
			}

			// Log lines go to stderr so they do not tear the progress bar.
			log := logger.NewWithWriter(cfg.Logging.Level, os.Stderr)
			appCtx, err = newApp(cmd.Context(), cfg, log)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx != nil {
				return appCtx.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config")
	root.PersistentFlags().StringVar(&envPath, "env", ".env", "dotenv file with API keys")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	root.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "output directory (overrides config)")
	root.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar")

	root.AddCommand(topicCmd(), paragraphCmd(), watchCmd(), scheduleCmd())
	return root.ExecuteContext(ctx)
}
