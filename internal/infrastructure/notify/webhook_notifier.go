package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"sheetfab/internal/usecase/interfaces"
)

var ErrWebhookNotConfigured = errors.New("notification webhook not configured")

// WebhookNotifier delivers management alerts by POSTing JSON to a configured
// webhook (an email bridge or chat integration in deployment). It implements
// the best-effort contract: callers log and swallow its errors.
type WebhookNotifier struct {
	webhookURL string
	httpClient *http.Client
}

var _ interfaces.INotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(webhookURL string, timeout time.Duration) *WebhookNotifier {
	return &WebhookNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type notifyPayload struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
}

func (n *WebhookNotifier) Notify(ctx context.Context, recipients []string, subject, body string) error {
	if n.webhookURL == "" {
		return ErrWebhookNotConfigured
	}

	b, err := json.Marshal(notifyPayload{Recipients: recipients, Subject: subject, Body: body})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	log.Printf("[notify][webhook] delivered subject=%q recipients=%d", subject, len(recipients))
	return nil
}
