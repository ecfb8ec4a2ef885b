package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRunCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Analyze every recording in the input directory once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig(flags, cmd.Flags().Changed("config"), os.Getenv)
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			a, err := newApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			summary, err := a.Run(ctx)
			if err != nil {
				return err
			}

			cmd.Printf("Report written to %s (%d analyzed, %d fallback, %d failed)\n",
				cfg.Paths.Output, summary.Analyzed, summary.Fallback, len(summary.Failed))
			return nil
		},
	}
}
