package main

import (
	"github.com/spf13/cobra"

	"github.com/shaladi/reuse/internal/config"
)

func newRootCmd() *cobra.Command {
	cfg := &config.Config{}

	root := &cobra.Command{
		Use:           "reusectl",
		Short:         "Operate the reuse mail ingestion engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			loaded.SetupLogging()
			*cfg = *loaded
			return nil
		},
	}

	root.AddCommand(
		newIngestCmd(cfg),
		newEnqueueCmd(cfg),
		newMigrateCmd(cfg),
	)
	return root
}
