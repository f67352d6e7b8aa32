// Package sms sends text messages through the Vonage REST gateway.
package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"checkcheck/internal/config"
	"checkcheck/internal/model"

	"github.com/rs/zerolog"
)

// countryCode replaces a leading local "0" when normalising recipients.
const countryCode = "233"

// Client is a thin client for the Vonage SMS endpoint.
type Client struct {
	apiKey    string
	apiSecret string
	sender    string
	baseURL   string
	http      *http.Client
	logger    zerolog.Logger
}

// NewClient creates a Vonage client from configuration. Credentials may
// be absent; Send then fails with model.ErrSMSNotConfigured.
func NewClient(cfg config.VonageConfig, logger zerolog.Logger) *Client {
	return &Client{
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		sender:    cfg.SenderID,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		http:      &http.Client{Timeout: 15 * time.Second},
		logger:    logger.With().Str("client", "vonage").Logger(),
	}
}

// Configured reports whether gateway credentials are present.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.apiSecret != ""
}

type vonageResponse struct {
	Messages []struct {
		Status    string `json:"status"`
		ErrorText string `json:"error-text"`
	} `json:"messages"`
	ErrorText string `json:"error_text"`
}

// Send delivers text to phone. The recipient is normalised to
// international format before dispatch.
func (c *Client) Send(ctx context.Context, phone, text string) error {
	if !c.Configured() {
		return model.ErrSMSNotConfigured
	}

	to := FormatPhone(phone)

	params := url.Values{
		"from":       {c.sender},
		"to":         {to},
		"text":       {text},
		"api_key":    {c.apiKey},
		"api_secret": {c.apiSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sms/json", strings.NewReader(params.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build SMS request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("to", to).Msg("SMS request failed")
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	defer resp.Body.Close()

	var body vonageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Error().Err(err).Str("to", to).Msg("failed to decode gateway response")
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}

	if len(body.Messages) == 0 || body.Messages[0].Status != "0" {
		errMsg := body.ErrorText
		if len(body.Messages) > 0 && body.Messages[0].ErrorText != "" {
			errMsg = body.Messages[0].ErrorText
		}
		if errMsg == "" {
			errMsg = "unknown error"
		}
		c.logger.Error().Str("to", to).Str("gateway_error", errMsg).Msg("gateway rejected SMS")
		return fmt.Errorf("vonage error: %s", errMsg)
	}

	c.logger.Info().Str("to", to).Msg("SMS dispatched")
	return nil
}

// FormatPhone strips non-digits and replaces a leading local "0" with the
// country code.
func FormatPhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	clean := digits.String()
	if strings.HasPrefix(clean, "0") {
		return countryCode + clean[1:]
	}
	return clean
}
