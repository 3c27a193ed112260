package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/brightwash/booking-service/internal/domain/entities"
	"github.com/brightwash/booking-service/internal/domain/pricing"
	"github.com/brightwash/booking-service/internal/usecase/interfaces"
)

// SlackNotifier posts booking notifications to an incoming webhook. An empty
// webhook URL disables it: BookingCreated becomes a no-op so local setups run
// without Slack.

type SlackNotifier struct {
	webhookURL string
	httpClient *http.Client
}

var _ interfaces.INotifier = (*SlackNotifier)(nil)

func NewSlackNotifier(webhookURL string) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: strings.TrimSpace(webhookURL),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func NewSlackNotifierFromEnv() *SlackNotifier {
	url := os.Getenv("SLACK_WEBHOOK_URL")
	if strings.TrimSpace(url) == "" {
		log.Printf("[notification][slack] SLACK_WEBHOOK_URL not set; notifications disabled")
	}
	return NewSlackNotifier(url)
}

func (n *SlackNotifier) BookingCreated(ctx context.Context, b entities.Booking) error {
	if n.webhookURL == "" {
		return nil
	}

	payload, err := json.Marshal(map[string]string{
		"text": bookingMessage(b),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("slack webhook returned %d: %s", resp.StatusCode, string(body))
	}
	log.Printf("[notification][slack] booking notification sent booking_id=%s", b.ID)
	return nil
}

func bookingMessage(b entities.Booking) string {
	customer := b.CustomerEmail
	if b.IsGuest {
		customer += " (guest)"
	}
	return fmt.Sprintf("New booking %s: %s, %d service(s), total %s, deposit %s",
		b.ID,
		customer,
		len(b.Services),
		pricing.FormatPrice(b.TotalAmount),
		pricing.FormatPrice(b.DepositAmount),
	)
}
