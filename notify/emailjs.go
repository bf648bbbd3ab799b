package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultEmailJSEndpoint is the public EmailJS REST send endpoint.
const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSConfig identifies the EmailJS service used for delivery.
type EmailJSConfig struct {
	Endpoint  string
	ServiceID string
	UserID    string
}

// EmailJSDispatcher delivers messages through the EmailJS REST API, the
// transport the portal uses for recovery and welcome mail.
//
// EmailJSDispatcher instances are intended to be configured during
// initialization and then treated as immutable.
type EmailJSDispatcher struct {
	httpClient *http.Client
	config     EmailJSConfig
}

// NewEmailJSDispatcher creates an EmailJS-backed [Dispatcher]. A nil
// httpClient falls back to [http.DefaultClient]; an empty endpoint falls back
// to [DefaultEmailJSEndpoint].
func NewEmailJSDispatcher(httpClient *http.Client, cfg EmailJSConfig) *EmailJSDispatcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEmailJSEndpoint
	}
	return &EmailJSDispatcher{httpClient: httpClient, config: cfg}
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send posts the message to EmailJS. The recipient is merged into the
// template params as to_email, matching the portal's template wiring.
func (d *EmailJSDispatcher) Send(ctx context.Context, msg Message) error {
	params := make(map[string]string, len(msg.Params)+1)
	for k, v := range msg.Params {
		params[k] = v
	}
	params[ParamToEmail] = msg.Recipient

	body, err := json.Marshal(emailJSRequest{
		ServiceID:      d.config.ServiceID,
		TemplateID:     msg.TemplateID,
		UserID:         d.config.UserID,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDispatch, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDispatch, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDispatch, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrDispatch, resp.StatusCode)
	}
	return nil
}
