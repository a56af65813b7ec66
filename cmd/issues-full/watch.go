package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lerenn/issues-full/cmd/issues-full/internal/cli"
	"github.com/lerenn/issues-full/pkg/scheduler"
	"github.com/spf13/cobra"
)

func createWatchCmd() *cobra.Command {
	var (
		schedule   string
		avatarsDir string
	)

	watchCmd := &cobra.Command{
		Use:   "watch <previews.json>",
		Short: "Periodically re-enrich issue previews",
		Long: `Enrich the previews of a file now, then again on every tick of the schedule
until interrupted. The file is read again on every run.

The schedule is a cron expression or descriptor and defaults to watch.schedule
from the configuration.

Examples:
  issues-full watch previews.json
  issues-full watch previews.json --schedule "*/30 * * * *"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "-" {
				return cli.ErrWatchStdin
			}

			cfg, err := cli.LoadConfig()
			if err != nil {
				return err
			}
			if schedule == "" {
				schedule = cfg.Watch.Schedule
			}

			session, err := cli.NewSession(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = session.Close() }()

			s, err := scheduler.New(schedule, func(ctx context.Context) error {
				return cli.Enrich(ctx, session, cli.EnrichOptions{
					Input:      args[0],
					AvatarsDir: avatarsDir,
				})
			}, session.Dependencies.Logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return s.Run(ctx)
		},
	}

	watchCmd.Flags().StringVarP(&schedule, "schedule", "s", "", "Cron schedule overriding watch.schedule")
	watchCmd.Flags().StringVar(&avatarsDir, "avatars-dir", "", "Directory receiving the owner avatars")

	return watchCmd
}
