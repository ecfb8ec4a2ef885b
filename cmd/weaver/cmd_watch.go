package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/truth-weaver/internal/apperror"
	"github.com/nguyentantai21042004/truth-weaver/internal/watcher"
)

func newWatchCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run once, then re-run whenever new recordings arrive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, err := loadConfig(flags, cmd.Flags().Changed("config"), os.Getenv)
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
				return apperror.New(apperror.KindInputDirectory, err).WithPath(cfg.Paths.Input)
			}

			a, err := newApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			batch := func(ctx context.Context) error {
				_, err := a.Run(ctx)
				if apperror.Is(err, apperror.KindEmptyDirectory) {
					log.Info(ctx, "No recordings yet in %s", cfg.Paths.Input)
					return nil
				}
				return err
			}

			if err := batch(ctx); err != nil {
				log.Error(ctx, "Initial batch failed: %v", err)
			}

			w, err := watcher.New(cfg.Paths.Input, cfg.Watch.Debounce, batch, log)
			if err != nil {
				return err
			}
			defer w.Stop()

			log.Info(ctx, "Watching %s. Press Ctrl+C to stop", cfg.Paths.Input)

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			log.Info(ctx, "Shutting down")
			return nil
		},
	}
}
