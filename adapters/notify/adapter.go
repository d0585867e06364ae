// Package notify sends change-notification webhooks to the estimator.
// Payloads are signed with HMAC-SHA256 when a secret is configured, and
// sends are retried a bounded number of times.
package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"takeoff-cost/core/takeoff"
)

// SignatureHeader carries the payload HMAC on outgoing notifications
const SignatureHeader = "X-Takeoff-Signature"

// Config configures notifier behavior
type Config struct {
	// Endpoint is the estimator webhook URL
	Endpoint string `json:"endpoint"`

	// Secret for signature generation; empty disables signing
	Secret string `json:"secret"`

	// Headers to include on every request
	Headers map[string]string `json:"headers"`

	// Timeout for requests
	Timeout time.Duration `json:"timeout"`

	// RetryCount for failed requests
	RetryCount int `json:"retry_count"`

	// RetryDelay between retries
	RetryDelay time.Duration `json:"retry_delay"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig(endpoint string) *Config {
	return &Config{
		Endpoint:   endpoint,
		Timeout:    30 * time.Second,
		RetryCount: 3,
		RetryDelay: 1 * time.Second,
		Headers:    make(map[string]string),
	}
}

// Notifier sends change notifications
type Notifier struct {
	config     *Config
	httpClient *http.Client
}

// New creates a new notifier
func New(config *Config) *Notifier {
	return &Notifier{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Send delivers a change notification, retrying on failure
func (n *Notifier) Send(ctx context.Context, change *takeoff.ChangeNotification) error {
	var lastErr error

	for attempt := 0; attempt <= n.config.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(n.config.RetryDelay):
			}
		}

		if err := n.sendOnce(ctx, change); err != nil {
			lastErr = err
			continue
		}
		return nil
	}

	return fmt.Errorf("notification failed after %d attempts: %w", n.config.RetryCount+1, lastErr)
}

func (n *Notifier) sendOnce(ctx context.Context, change *takeoff.ChangeNotification) error {
	body, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", n.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range n.config.Headers {
		req.Header.Set(k, v)
	}

	if n.config.Secret != "" {
		req.Header.Set(SignatureHeader, "sha256="+sign(body, n.config.Secret))
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("estimator returned %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature verifies an incoming notification signature.
// Accepts the header value with or without the "sha256=" prefix.
func VerifySignature(payload []byte, signature, secret string) bool {
	signature = strings.TrimPrefix(signature, "sha256=")
	expected := sign(payload, secret)
	return hmac.Equal([]byte(signature), []byte(expected))
}
