/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Ashupap/ShorelineVision-sub000/internal/logger"
	"github.com/Ashupap/ShorelineVision-sub000/internal/mq"
	"github.com/Ashupap/ShorelineVision-sub000/internal/notify"
	"github.com/spf13/cobra"
)

// notifyCmd runs the notification worker.
var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Deliver staff notifications by mail",
	Long: `Consumes inquiry notifications from the message broker and mails them to
MAIL_TO. Without SMTP settings every notification is logged and acknowledged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		broker, err := mq.NewFromConfig(ctx, cfg.MQ)
		if err != nil {
			return err
		}
		defer func() {
			_ = broker.Close()
		}()
		if !broker.Enabled() {
			return errors.New("MQ_BACKEND must be set to run the notification worker")
		}

		mailer := notify.NewMailer(cfg.Mail)
		logger.Log.Infow("notification worker started", "channel", notify.InquiryChannel, "mail", cfg.Mail.Enabled())

		if err := broker.Subscribe(ctx, notify.InquiryChannel, mailer.HandleInquiry); err != nil && ctx.Err() == nil {
			return fmt.Errorf("subscribe %s: %w", notify.InquiryChannel, err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(notifyCmd)
}
