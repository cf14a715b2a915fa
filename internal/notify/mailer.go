package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/Ashupap/ShorelineVision-sub000/config"
	"github.com/Ashupap/ShorelineVision-sub000/internal/logger"
	"github.com/Ashupap/ShorelineVision-sub000/internal/mq"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer turns notification events into plain-text mail.
type Mailer struct {
	cfg  config.MailConfig
	send sendFunc
}

func NewMailer(cfg config.MailConfig) *Mailer {
	return &Mailer{cfg: cfg, send: smtp.SendMail}
}

// HandleInquiry is an mq.Handler for InquiryChannel. Undecodable messages
// are logged and acknowledged so they are not redelivered forever.
func (m *Mailer) HandleInquiry(ctx context.Context, msg mq.Message) error {
	var event InquiryEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Log.Errorw("dropping malformed inquiry event", "message_id", msg.ID, "error", err)
		return nil
	}

	inquiry := event.Inquiry
	subject := "New inquiry from " + inquiry.Name
	if inquiry.Subject != nil && *inquiry.Subject != "" {
		subject += ": " + *inquiry.Subject
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Name: %s\r\n", inquiry.Name)
	fmt.Fprintf(&body, "Email: %s\r\n", inquiry.Email)
	writeOptional(&body, "Phone", inquiry.Phone)
	writeOptional(&body, "Company", inquiry.Company)
	writeOptional(&body, "Country", inquiry.Country)
	writeOptional(&body, "Product interest", inquiry.ProductInterest)
	fmt.Fprintf(&body, "Received: %s\r\n\r\n", inquiry.CreatedAt.Format(time.RFC1123))
	body.WriteString(strings.ReplaceAll(inquiry.Message, "\n", "\r\n"))
	body.WriteString("\r\n")

	return m.Send(ctx, subject, body.String(), inquiry.Email)
}

// Send delivers a message to the configured recipient. With no SMTP host
// configured the message is logged and dropped.
func (m *Mailer) Send(ctx context.Context, subject, body, replyTo string) error {
	if !m.cfg.Enabled() || m.cfg.To == "" {
		logger.Log.Infow("mail skipped, smtp not configured", "subject", subject)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", headerValue(m.cfg.From))
	fmt.Fprintf(&msg, "To: %s\r\n", headerValue(m.cfg.To))
	if replyTo != "" {
		fmt.Fprintf(&msg, "Reply-To: %s\r\n", headerValue(replyTo))
	}
	fmt.Fprintf(&msg, "Subject: %s\r\n", headerValue(subject))
	fmt.Fprintf(&msg, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	msg.WriteString(body)

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	if err := m.send(addr, auth, m.cfg.From, []string{m.cfg.To}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	logger.Log.Infow("mail sent", "subject", subject, "to", m.cfg.To)
	return nil
}

func writeOptional(b *strings.Builder, label string, value *string) {
	if value != nil && *value != "" {
		fmt.Fprintf(b, "%s: %s\r\n", label, *value)
	}
}

// headerValue strips line breaks so user input can not inject headers.
func headerValue(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
