package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/deck-flow/internal/watcher"
	"github.com/spf13/cobra"
)

// watch: every .txt/.md dropped into the inbox becomes a paragraph deck.
func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Turn documents dropped into the inbox into decks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, log := appCtx.cfg, appCtx.log

			for _, dir := range []string{cfg.Paths.Inbox, cfg.Paths.Archived} {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("create directory %s: %w", dir, err)
				}
			}

			w, err := watcher.New(cfg.Paths.Inbox, appCtx.pipeline.ProcessFile, log.Named("watcher"), cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			log.Info(ctx, "========================================")
			log.Info(ctx, "deck-flow is watching for documents")
			log.Info(ctx, "Inbox: %s", cfg.Paths.Inbox)
			log.Info(ctx, "Output: %s", cfg.Paths.Output)
			log.Info(ctx, "LLM: %s (%s)", cfg.LLM.Provider, cfg.LLM.Model)
			log.Info(ctx, "Video: %v, handout: %v", cfg.Video.Enabled, cfg.Deck.Handout)
			log.Info(ctx, "Concurrent: %d documents at once", cfg.Performance.MaxConcurrent)
			log.Info(ctx, "Press Ctrl+C to stop")
			log.Info(ctx, "========================================")

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			log.Info(context.Background(), "Watcher stopped")
			return nil
		},
	}
}
