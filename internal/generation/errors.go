package generation

import (
	"errors"
	"fmt"
)

// Failure classes of a generation attempt.
var (
	// ErrMissingInput is a blank required subject. The only failure shown
	// to callers as a client error.
	ErrMissingInput = errors.New("missing input")
	// ErrNotConfigured means no provider credential is set.
	ErrNotConfigured = errors.New("GEMINI_API_KEY not configured")
	// ErrUpstreamUnavailable covers transport failures.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrUpstreamMalformed covers non-success statuses and unusable payloads.
	ErrUpstreamMalformed = errors.New("upstream malformed")
	// ErrEmptyCandidate means the provider answered without any text.
	ErrEmptyCandidate = errors.New("No response from Gemini")
)

// UpstreamError describes a failed provider call.
type UpstreamError struct {
	Kind       error  // ErrUpstreamUnavailable or ErrUpstreamMalformed
	StatusCode int    // provider HTTP status, 0 for transport failures
	Message    string // provider message, safe to show to the caller
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v: HTTP %d: %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// PublicMessage returns the text a caller sees for err.
func PublicMessage(err error) string {
	var up *UpstreamError
	if errors.As(err, &up) && up.Message != "" {
		return up.Message
	}
	switch {
	case errors.Is(err, ErrEmptyCandidate):
		return ErrEmptyCandidate.Error()
	case errors.Is(err, ErrNotConfigured):
		return ErrNotConfigured.Error()
	case err != nil:
		return err.Error()
	}
	return "Unknown error"
}

// StatusCode returns the provider status carried by err, or 0.
func StatusCode(err error) int {
	var up *UpstreamError
	if errors.As(err, &up) {
		return up.StatusCode
	}
	return 0
}
