package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"time"

	"adpilot/internal/core/domain"
)

// Config holds the settings shared by all vendor adapters built on the
// Vendor Gateway.
type Config struct {
	BaseURL                 string
	AuthToken               string
	Timeout                 time.Duration
	RetryCount              int
	RetryBaseDelay          time.Duration
	BreakerFailureThreshold int
	BreakerCooldown         time.Duration
}

// transport is the HTTP plumbing shared by the vendor adapters: request
// execution, error classification, bounded retry with jittered backoff and
// the per-adapter circuit breaker.
type transport struct {
	platform   domain.Platform
	baseURL    string
	token      string
	client     *http.Client
	retries    int
	baseDelay  time.Duration
	breaker    *breaker
	logger     *slog.Logger
	sleep      func(ctx context.Context, d time.Duration) error // overridable in tests
	jitterRand *rand.Rand
}

func newTransport(platform domain.Platform, cfg Config, logger *slog.Logger) *transport {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	baseDelay := cfg.RetryBaseDelay
	if baseDelay <= 0 {
		baseDelay = 200 * time.Millisecond
	}
	return &transport{
		platform:   platform,
		baseURL:    cfg.BaseURL,
		token:      cfg.AuthToken,
		client:     &http.Client{Timeout: timeout},
		retries:    cfg.RetryCount,
		baseDelay:  baseDelay,
		breaker:    newBreaker(cfg.BreakerFailureThreshold, cfg.BreakerCooldown),
		logger:     logger,
		sleep:      sleepCtx,
		jitterRand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// withRetry runs fn under the circuit breaker, retrying transient failures
// with exponential backoff and jitter. Non-transient failures return
// immediately. One success or final failure is reported to the breaker per
// call, not per attempt.
func (t *transport) withRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	if !t.breaker.allow() {
		return domain.NewAdapterError(t.platform, domain.AdapterUnavailable,
			fmt.Errorf("circuit open, %s not attempted", op))
	}

	var lastErr error
	attempts := t.retries
	if attempts < 1 {
		attempts = 1
	}
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := t.backoff(attempt)
			if err := t.sleep(ctx, delay); err != nil {
				lastErr = domain.NewAdapterError(t.platform, domain.AdapterTimeout, err)
				break
			}
		}
		err := fn(ctx)
		if err == nil {
			t.breaker.success()
			return nil
		}
		lastErr = err
		var aerr *domain.AdapterError
		if errors.As(err, &aerr) && !aerr.Transient() {
			break
		}
		t.logger.Debug("gateway call failed, retrying",
			slog.String("platform", string(t.platform)),
			slog.String("op", op),
			slog.Int("attempt", attempt+1),
			slog.Any("error", err))
	}
	t.breaker.failure()
	return lastErr
}

// backoff returns base * 2^(attempt-1) multiplied by a jitter factor in
// [0.5, 1.5).
func (t *transport) backoff(attempt int) time.Duration {
	d := t.baseDelay << (attempt - 1)
	jitter := 0.5 + t.jitterRand.Float64()
	return time.Duration(float64(d) * jitter)
}

// do performs a single HTTP request against the gateway and decodes the
// JSON response into out. Failures are classified into the adapter error
// taxonomy.
func (t *transport) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := t.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return domain.NewAdapterError(t.platform, domain.AdapterRejected, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return domain.NewAdapterError(t.platform, domain.AdapterRejected, err)
	}
	req.Header.Set("Authorization", "Bearer "+t.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return domain.NewAdapterError(t.platform, classifyTransport(err), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		statusErr := fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, payload)
		return domain.NewAdapterError(t.platform, classifyStatus(resp.StatusCode), statusErr)
	}

	if out != nil {
		if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
			return domain.NewAdapterError(t.platform, domain.AdapterRejected,
				fmt.Errorf("decode %s response: %w", path, err))
		}
	}
	return nil
}

func classifyTransport(err error) domain.AdapterErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.AdapterTimeout
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return domain.AdapterTimeout
	}
	return domain.AdapterUpstream
}

func classifyStatus(code int) domain.AdapterErrorKind {
	switch {
	case code == http.StatusTooManyRequests:
		return domain.AdapterRateLimited
	case code >= 500:
		return domain.AdapterUpstream
	default:
		return domain.AdapterRejected
	}
}
