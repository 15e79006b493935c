package domain

import (
	"errors"
	"fmt"
)

// AdapterErrorKind classifies failures from a platform adapter.
type AdapterErrorKind string

const (
	// AdapterTimeout is a network or deadline timeout. Transient.
	AdapterTimeout AdapterErrorKind = "timeout"
	// AdapterRateLimited is a vendor 429. Transient.
	AdapterRateLimited AdapterErrorKind = "rate_limited"
	// AdapterUpstream is a vendor 5xx. Transient.
	AdapterUpstream AdapterErrorKind = "upstream"
	// AdapterUnavailable means the circuit breaker is open and no network
	// call was attempted.
	AdapterUnavailable AdapterErrorKind = "unavailable"
	// AdapterRejected is a non-transient vendor error (4xx other than 429,
	// auth failure). Never retried.
	AdapterRejected AdapterErrorKind = "rejected"
)

// AdapterError wraps a platform adapter failure with its classification.
type AdapterError struct {
	Platform Platform
	Kind     AdapterErrorKind
	Err      error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("adapter %s: %s: %v", e.Platform, e.Kind, e.Err)
}

func (e *AdapterError) Unwrap() error { return e.Err }

// Transient reports whether the failure may succeed on retry.
func (e *AdapterError) Transient() bool {
	return e.Kind == AdapterTimeout || e.Kind == AdapterRateLimited || e.Kind == AdapterUpstream
}

// NewAdapterError builds a classified adapter error.
func NewAdapterError(platform Platform, kind AdapterErrorKind, err error) *AdapterError {
	return &AdapterError{Platform: platform, Kind: kind, Err: err}
}

var (
	// ErrAllPlatformsUnavailable is returned when no platform could be
	// fetched at all; partial availability degrades instead.
	ErrAllPlatformsUnavailable = errors.New("all platforms unavailable")

	// ErrDuplicateCampaign reports a platform returning the same external
	// id twice in one response, which violates the adapter contract.
	ErrDuplicateCampaign = errors.New("duplicate campaign key in platform response")

	// ErrTickInProgress is returned when a tick is requested while the
	// previous one is still running.
	ErrTickInProgress = errors.New("optimization tick already in progress")

	// ErrPersistence marks audit persistence failures, which are fatal to
	// the remainder of a tick's commits.
	ErrPersistence = errors.New("audit persistence failure")

	// ErrCacheExpired is returned when a refresh failed and the last good
	// value is past its grace period.
	ErrCacheExpired = errors.New("cache refresh failed and stale value expired")
)
