package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/deck-flow/internal/config"
	"github.com/nguyentantai21042004/deck-flow/internal/pipeline"
	"github.com/nguyentantai21042004/deck-flow/internal/schedule"
	"github.com/spf13/cobra"
)

// schedule: run schedule.jobs on their cron expressions, or one job now.
func scheduleCmd() *cobra.Command {
	var (
		runNow string
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Build the configured topic decks on their cron schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := appCtx.log.Named("schedule")

			s, err := schedule.New(appCtx.cfg.Schedule.Jobs, runJob, log)
			if err != nil {
				return err
			}

			if list {
				for _, job := range s.Jobs() {
					fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-15s %2d slides  video=%v  %s\n", job.Name, job.Cron, job.Slides, job.Video, job.Topic)
				}
				return nil
			}
			if runNow != "" {
				return s.RunNow(ctx, runNow)
			}

			if err := s.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&runNow, "run", "", "run the named job once and exit")
	cmd.Flags().BoolVar(&list, "list", false, "list configured jobs")
	return cmd
}

func runJob(ctx context.Context, job config.JobConfig) error {
	res, err := appCtx.pipeline.RunTopic(ctx, pipeline.TopicRequest{
		Topic:   job.Topic,
		Slides:  job.Slides,
		Video:   job.Video,
		Handout: job.Handout,
	})
	if err != nil {
		return err
	}
	appCtx.log.Info(ctx, "Job %s produced %s", job.Name, res.DeckPath)
	return nil
}
