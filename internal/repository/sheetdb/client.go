package sheetdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Operation names understood by the workflow-automation webhook. The
// webhook multiplexes every sheet operation over a single endpoint and
// dispatches on this discriminator.
const (
	opReadEmployees    = "read_employees"
	opAddEmployee      = "add_employee"
	opUpdateEmployee   = "update_employee"
	opDeleteEmployee   = "delete_employee"
	opReadAttendance   = "read_attendance"
	opAddAttendance    = "add_attendance"
	opUpdateAttendance = "update_attendance"
	opDeleteAttendance = "delete_attendance"
	opAuthenticate     = "authenticate"
)

// ErrStoreUnavailable wraps transport and HTTP failures talking to the
// entity store webhook. Handlers surface it as a transient 502; calls are
// never retried automatically.
var ErrStoreUnavailable = errors.New("entity store request failed")

const maxResponseBytes = 8 << 20 // 8MB, well above any realistic sheet

type Client struct {
	httpClient *http.Client
	url        string
	secret     string
	timeout    time.Duration
}

func NewClient(url, secret string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{},
		url:        url,
		secret:     secret,
		timeout:    timeout,
	}
}

type webhookRequest struct {
	Operation string `json:"operation"`
	Payload   any    `json:"payload,omitempty"`
}

// call posts one operation to the webhook and returns the raw response
// body. Every call carries its own deadline so a hung remote cannot hang
// the caller indefinitely, and the request context still propagates
// client disconnects.
func (c *Client) call(ctx context.Context, operation string, payload any) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(webhookRequest{Operation: operation, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set("X-Webhook-Secret", c.secret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("Entity store call failed", "operation", operation, "error", err)
		return nil, fmt.Errorf("%s: %w", operation, ErrStoreUnavailable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		slog.Error("Entity store response read failed", "operation", operation, "error", err)
		return nil, fmt.Errorf("%s: %w", operation, ErrStoreUnavailable)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Error("Entity store returned error status",
			"operation", operation, "status", resp.StatusCode)
		return nil, fmt.Errorf("%s: status %d: %w", operation, resp.StatusCode, ErrStoreUnavailable)
	}

	return raw, nil
}
