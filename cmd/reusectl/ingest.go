package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shaladi/reuse/internal/app"
	"github.com/shaladi/reuse/internal/config"
	"github.com/shaladi/reuse/internal/handler"
)

func newIngestCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest [file...]",
		Short: "Ingest RFC 5322 messages directly into the engine",
		Long: `Parse each message file (stdin when none or "-") and run it through
the classifier and outcome handlers, printing the outcome as JSON.

Example:
  reusectl ingest ./mail/couch.eml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			container, err := app.NewContainer(ctx, cfg, "reusectl")
			if err != nil {
				return err
			}
			defer container.Close()

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, path := range argsOrStdin(args) {
				email, err := readEmail(path, cmd.InOrStdin())
				if err != nil {
					return err
				}

				outcome, err := container.IngestionService.Ingest(ctx, email)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if err := enc.Encode(handler.NewIngestEmailResponse(outcome)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
