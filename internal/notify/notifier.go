// Package notify publishes staff notifications and delivers them by mail.
package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Ashupap/ShorelineVision-sub000/internal/logger"
	"github.com/Ashupap/ShorelineVision-sub000/types"
)

const (
	// InquiryChannel carries one event per submitted contact inquiry.
	InquiryChannel = "notifications.inquiry"

	EventInquiryReceived = "inquiry.received"

	publishTimeout = 10 * time.Second
)

// Publisher sends a payload to a named channel.
type Publisher interface {
	Enabled() bool
	Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error)
}

// InquiryEvent is the payload published on InquiryChannel.
type InquiryEvent struct {
	Type    string        `json:"type"`
	Inquiry types.Inquiry `json:"inquiry"`
}

// Notifier publishes notifications without ever failing or delaying the
// request that triggered them.
type Notifier struct {
	pub Publisher
	wg  sync.WaitGroup
}

func NewNotifier(pub Publisher) *Notifier {
	return &Notifier{pub: pub}
}

// InquiryReceived publishes an inquiry event in the background. Without a
// configured broker the event is only logged.
func (n *Notifier) InquiryReceived(ctx context.Context, inquiry types.Inquiry) {
	if n.pub == nil || !n.pub.Enabled() {
		logger.Log.Infow("inquiry notification skipped, no broker configured", "inquiry_id", inquiry.ID)
		return
	}

	data, err := json.Marshal(InquiryEvent{Type: EventInquiryReceived, Inquiry: inquiry})
	if err != nil {
		logger.Log.Errorw("failed to encode inquiry event", "inquiry_id", inquiry.ID, "error", err)
		return
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()

		id, err := n.pub.Publish(pubCtx, InquiryChannel, data, map[string]string{
			"event":        EventInquiryReceived,
			"content-type": "application/json",
		})
		if err != nil {
			logger.Log.Warnw("failed to publish inquiry event", "inquiry_id", inquiry.ID, "error", err)
			return
		}
		logger.Log.Debugw("inquiry event published", "inquiry_id", inquiry.ID, "message_id", id)
	}()
}

// Wait blocks until every in-flight publish has finished.
func (n *Notifier) Wait() {
	n.wg.Wait()
}
