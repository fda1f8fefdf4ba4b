package apiclient

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

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"room-booking/pkg/utils"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

// ErrResponseTooLarge is returned when a response body exceeds the read cap.
var ErrResponseTooLarge = errors.New("response body too large")

// StatusError is returned when the remote API answers with a non-2xx status.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote api returned status %d", e.Code)
}

// ErrorMessage extracts the "error" or "message" field of a JSON error body.
func (e *StatusError) ErrorMessage() string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(e.Body, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}

// IsStatusError reports whether err carries a remote HTTP status.
func IsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// Client talks JSON to the remote admin API.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	maxBody int64
	log     *zap.Logger
}

func New(config utils.APIConfig, log *zap.Logger) *Client {
	return NewWithHTTPClient(config, &http.Client{Timeout: config.Timeout}, log)
}

func NewWithHTTPClient(config utils.APIConfig, httpClient *http.Client, log *zap.Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		http:    httpClient,
		maxBody: maxBodyBytes,
		log:     log.With(zap.String("component", "apiclient")),
	}
	if config.RateLimit > 0 {
		burst := config.RateBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(config.RateLimit), burst)
	}
	return c
}

// Do sends body (if non-nil) as JSON and decodes a non-empty 2xx response
// into out (if non-nil). token, when set, is sent as a bearer credential.
func (c *Client) Do(ctx context.Context, method, path, token string, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID, ok := utils.GetRequestIDFromContext(ctx); ok {
		req.Header.Set("X-Request-ID", requestID)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("Remote request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if int64(len(data)) > c.maxBody {
		c.log.Warn("Remote response over size cap",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int64("limit", c.maxBody),
		)
		return fmt.Errorf("%s %s: %w (limit %d bytes)", method, path, ErrResponseTooLarge, c.maxBody)
	}

	c.log.Debug("Remote request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Body: data}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
