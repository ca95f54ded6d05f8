// Package studyapi is the HTTP client for the studybuddy collaborator API:
// it serves card decks, receives XP awards and reports user stats.
package studyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studybuddy/internal/domain"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultRetryDelay = 500 * time.Millisecond

	headerUserID         = "X-User-Id"
	headerIdempotencyKey = "Idempotency-Key"
)

// Client talks to the collaborator API on behalf of a single user.
type Client struct {
	baseURL    string
	userID     uuid.UUID
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewClient creates a Client for userID. A zero timeout uses 10s.
func NewClient(baseURL string, userID uuid.UUID, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userID:     userID,
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: defaultRetryDelay,
		log:        logger.With("adapter", "studyapi"),
	}
}

// statusError is a non-2xx response.
type statusError struct {
	Code    int
	Message string
	// Wait is the server's Retry-After hint, zero when absent.
	Wait time.Duration
}

// RetryAfter reports how long the server asked the caller to wait.
func (e *statusError) RetryAfter() time.Duration { return e.Wait }

// transient reports whether the same request may succeed later.
func (e *statusError) transient() bool {
	return e.Code >= 500 || e.Code == http.StatusTooManyRequests || e.Code == http.StatusRequestTimeout
}

func (e *statusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("status %d", e.Code)
}

// Unwrap maps rejecting 4xx statuses to domain sentinels. Throttling and
// timeouts map to nothing.
func (e *statusError) Unwrap() error {
	switch {
	case e.transient():
		return nil
	case e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden:
		return domain.ErrUnauthorized
	case e.Code == http.StatusNotFound:
		return domain.ErrNotFound
	case e.Code >= 400 && e.Code < 500:
		return domain.ErrValidation
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		r = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerUserID, c.userID.String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do sends req and decodes a 2xx JSON body into out (when out is not nil).
// Transport failures, 5xx, 408 and 429 responses are returned as
// transportError.
func (c *Client) do(req *http.Request, retry bool, out any) error {
	var (
		resp *http.Response
		err  error
	)
	if retry {
		resp, err = c.doWithRetry(req)
	} else {
		resp, err = c.httpClient.Do(req)
	}
	if err != nil {
		return &transportError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &statusError{
			Code:    resp.StatusCode,
			Message: readErrorMessage(resp.Body),
			Wait:    parseRetryAfter(resp.Header.Get("Retry-After"), time.Now()),
		}
		if se.transient() {
			return &transportError{err: se}
		}
		return se
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &transportError{err: fmt.Errorf("decode json: %w", err)}
	}
	return nil
}

// doWithRetry executes an idempotent request with a single retry on 5xx or
// network errors.
func (c *Client) doWithRetry(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && (resp.StatusCode >= 500 || resp.StatusCode == http.StatusRequestTimeout))
	if !shouldRetry || req.Context().Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(req.Context(), "studyapi retry",
		slog.String("path", req.URL.Path),
		slog.String("reason", reason),
	)

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-time.After(c.retryDelay):
	case <-req.Context().Done():
		return nil, req.Context().Err()
	}

	return c.httpClient.Do(req)
}

// transportError marks failures where the server could not be reached or
// could not answer.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

func isTransport(err error) bool {
	var te *transportError
	return errors.As(err, &te)
}

func readErrorMessage(r io.Reader) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 4096)).Decode(&body); err != nil {
		return ""
	}
	return body.Error
}

// parseRetryAfter reads a Retry-After value given in seconds or as an HTTP
// date. Invalid or past values yield zero.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}
