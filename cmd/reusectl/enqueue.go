package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shaladi/reuse/internal/config"
	"github.com/shaladi/reuse/internal/core/domain"
	"github.com/shaladi/reuse/internal/infrastructure/amqp"
)

func newEnqueueCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "enqueue [file...]",
		Short: "Queue RFC 5322 messages for the mail worker",
		Long: `Parse each message file (stdin when none or "-") and publish it on the
inbound queue, waiting for the broker to confirm every message.

Example:
  reusectl enqueue ./mail/*.eml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := amqp.NewClient(cfg.AMQPURL, "reusectl")
			if err != nil {
				return err
			}
			defer client.Close()

			if err := amqp.NewTopologyManager(client).Setup(); err != nil {
				return fmt.Errorf("failed to setup AMQP topology: %w", err)
			}
			publisher := amqp.NewPublisher(client)

			for _, path := range argsOrStdin(args) {
				email, err := readEmail(path, cmd.InOrStdin())
				if err != nil {
					return err
				}

				msg := newInboundMessage(email, time.Now())
				if err := publisher.PublishWithConfirm(cmd.Context(), domain.ReuseExchange, domain.RoutingKeyEmailReceived, msg); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				log.WithFields(log.Fields{"file": path, "messageID": msg.MessageID}).Info("Email queued")
				fmt.Fprintln(cmd.OutOrStdout(), msg.MessageID)
			}
			return nil
		},
	}
}
