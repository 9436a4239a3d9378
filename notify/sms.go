package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/pbudlong/InstaGift/config"
)

type smsSender interface {
	send(ctx context.Context, to, body string) error
}

type twilioSender struct {
	client *twilio.RestClient
	from   string
}

func newTwilio(cfg config.Config) *twilioSender {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioPhoneNumber == "" {
		return nil
	}
	return &twilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
		from: cfg.TwilioPhoneNumber,
	}
}

func (t *twilioSender) send(_ context.Context, to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.from)
	params.SetBody(body)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send: %w", err)
	}
	if resp.Sid != nil {
		log.Printf("twilio message %s sent to %s", *resp.Sid, to)
	}
	return nil
}

// telnyxSender posts to the Telnyx v2 REST API directly; Telnyx has no
// widely-used Go SDK.
type telnyxSender struct {
	client  *http.Client
	baseURL string
	apiKey  string
	from    string
}

func newTelnyx(cfg config.Config) *telnyxSender {
	if cfg.TelnyxAPIKey == "" || cfg.TelnyxPhoneNumber == "" {
		return nil
	}
	return &telnyxSender{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://api.telnyx.com",
		apiKey:  cfg.TelnyxAPIKey,
		from:    cfg.TelnyxPhoneNumber,
	}
}

func (t *telnyxSender) send(ctx context.Context, to, body string) error {
	payload, _ := json.Marshal(map[string]string{
		"from": t.from,
		"to":   to,
		"text": body,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/v2/messages", bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("telnyx request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.apiKey)

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("telnyx send: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telnyx send: status %d: %s", resp.StatusCode, string(detail))
	}
	log.Printf("telnyx message sent to %s", to)
	return nil
}
