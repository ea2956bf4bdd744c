// Package api is the outbound REST client for the marketplace backend. Every
// operation is a one-shot request/response exchange; the client never patches
// local cached state, the live subscriptions reconcile the outcome.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pocketclass/config"
	"pocketclass/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client issues mutation calls against the configured API base URL.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	limiter *rate.Limiter
}

// NewClient builds a client from the loaded application config.
func NewClient() *Client {
	timeout := time.Duration(config.AppConfig.HTTPTimeoutSecs) * time.Second
	return NewClientWith(config.AppConfig.APIBaseURL, &http.Client{Timeout: timeout}, config.AppConfig.MaxMutationsPerMin)
}

// NewClientWith builds a client with explicit transport settings.
func NewClientWith(baseURL string, httpClient *http.Client, mutationsPerMin int) *Client {
	if mutationsPerMin <= 0 {
		mutationsPerMin = 60
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    httpClient,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(mutationsPerMin)), mutationsPerMin),
	}
}

// ServerError carries a server-rejected mutation's message, surfaced to the
// user verbatim.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// response is the common application-level envelope of the backend.
type response struct {
	Message string `json:"message"`
}

const (
	maxIdempotentRetries = 2
	retryBaseDelay       = 250 * time.Millisecond
)

// do performs one mutation exchange. Idempotent calls retry on transport
// errors and 5xx responses with a doubling delay; everything else is final
// on the first response.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, headers map[string]string, idempotent bool) (*response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	requestID := uuid.NewString()
	attempts := 1
	if idempotent {
		attempts += maxIdempotentRetries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay << (attempt - 1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			utils.GetLogger().Debug("retrying mutation",
				zap.String("path", path), zap.Int("attempt", attempt+1))
		}

		resp, err := c.exchange(ctx, method, path, payload, headers, requestID)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		var srvErr *ServerError
		if errors.As(err, &srvErr) && srvErr.Status < http.StatusInternalServerError {
			// The server understood and rejected the call; retrying cannot help.
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) exchange(ctx context.Context, method, path string, payload []byte, headers map[string]string, requestID string) (*response, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var out response
	if len(raw) > 0 {
		// Non-JSON bodies are tolerated; the status code decides below.
		_ = json.Unmarshal(raw, &out)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		utils.GetLogger().Warn("mutation rejected",
			zap.String("path", path), zap.Int("status", res.StatusCode), zap.String("message", out.Message))
		return nil, &ServerError{Status: res.StatusCode, Message: out.Message}
	}
	return &out, nil
}

// expectMessage enforces an application-level success signal: an HTTP success
// with an unexpected message is still a failure, and the server's message is
// what the user sees.
func expectMessage(resp *response, want string) error {
	if resp.Message == want {
		return nil
	}
	msg := resp.Message
	if msg == "" {
		msg = "Something went wrong!"
	}
	return &ServerError{Status: http.StatusOK, Message: msg}
}
