// Package recaptcha verifies reCAPTCHA tokens against Google's siteverify
// endpoint. Verification failure blocks a submission before any upstream
// call is made.
package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Verifier checks a client-supplied token.
type Verifier interface {
	Verify(ctx context.Context, token, expectedAction string) error
}

// Client verifies tokens over HTTP.
type Client struct {
	secret     string
	verifyURL  string
	httpClient *http.Client
}

// NewClient creates a verifier with the given shared secret.
func NewClient(secret string) *Client {
	return &Client{
		secret:    secret,
		verifyURL: defaultVerifyURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// WithVerifyURL overrides the siteverify endpoint. Test hook.
func (c *Client) WithVerifyURL(u string) *Client {
	c.verifyURL = u
	return c
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	Action     string   `json:"action"`
	Score      float64  `json:"score"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify checks token with the siteverify endpoint. A non-success
// verdict or a mismatched action is an error; the caller treats it the
// same as a missing required field.
func (c *Client) Verify(ctx context.Context, token, expectedAction string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("recaptcha token is required")
	}

	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("recaptcha verification request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("recaptcha verification returned status %d", resp.StatusCode)
	}

	var verdict verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return fmt.Errorf("failed to decode recaptcha response: %w", err)
	}

	if !verdict.Success {
		return fmt.Errorf("recaptcha verification failed: %s", strings.Join(verdict.ErrorCodes, ", "))
	}
	if expectedAction != "" && verdict.Action != "" && verdict.Action != expectedAction {
		return fmt.Errorf("recaptcha action mismatch: got %q", verdict.Action)
	}
	return nil
}

// Disabled is a Verifier that accepts every token. Used when verification
// is turned off in configuration (local development).
type Disabled struct{}

// Verify always succeeds.
func (Disabled) Verify(context.Context, string, string) error {
	return nil
}
