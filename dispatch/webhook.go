package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/develper21/ppdu/core"
)

// WebhookChannels implements the three channel contracts by POSTing JSON to
// per-channel HTTP endpoints. This is the simplest real integration shape:
// the receiving service (push gateway, SMS provider bridge, PSAP relay) owns
// delivery; the pipeline only reports success or failure of the POST.
//
// An empty URL disables that channel: calls return an error so the dispatcher
// records the failure rather than silently dropping the action.
type WebhookChannels struct {
	NotifyURL    string
	AlertURL     string
	AuthorityURL string

	client *http.Client
}

// webhookPayload is the wire shape shared by all three endpoints. Location is
// present only for authority calls.
type webhookPayload struct {
	SubjectID string            `json:"subject_id"`
	Message   string            `json:"message"`
	Location  *core.GeoLocation `json:"location,omitempty"`
	SentAt    time.Time         `json:"sent_at"`
}

// NewWebhookChannels constructs webhook channels for the given endpoints.
// The caller-supplied per-call context bounds each request; the client itself
// carries no timeout.
func NewWebhookChannels(notifyURL, alertURL, authorityURL string) *WebhookChannels {
	return &WebhookChannels{
		NotifyURL:    notifyURL,
		AlertURL:     alertURL,
		AuthorityURL: authorityURL,
		client:       &http.Client{},
	}
}

// Notify POSTs a notification payload to the notify endpoint.
func (c *WebhookChannels) Notify(ctx context.Context, subjectID, message string) error {
	return c.post(ctx, c.NotifyURL, webhookPayload{SubjectID: subjectID, Message: message, SentAt: time.Now()})
}

// SendAlert POSTs an alert payload to the alert endpoint.
func (c *WebhookChannels) SendAlert(ctx context.Context, subjectID, message string) error {
	return c.post(ctx, c.AlertURL, webhookPayload{SubjectID: subjectID, Message: message, SentAt: time.Now()})
}

// Call POSTs an escalation payload, including the current location, to the
// authority endpoint.
func (c *WebhookChannels) Call(ctx context.Context, subjectID, message string, location core.GeoLocation) error {
	loc := location
	return c.post(ctx, c.AuthorityURL, webhookPayload{SubjectID: subjectID, Message: message, Location: &loc, SentAt: time.Now()})
}

func (c *WebhookChannels) post(ctx context.Context, url string, payload webhookPayload) error {
	if url == "" {
		return fmt.Errorf("channel endpoint not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// Interface compliance (compile-time assertions)
var (
	_ core.NotificationChannel = (*WebhookChannels)(nil)
	_ core.MessagingChannel    = (*WebhookChannels)(nil)
	_ core.AuthorityChannel    = (*WebhookChannels)(nil)
)
