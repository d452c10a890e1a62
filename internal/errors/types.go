package errors

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"syscall"
)

// ErrorType represents the classification of errors for retry logic
type ErrorType int

const (
	// ErrorTypeTransient - retry-able errors
	ErrorTypeTransient ErrorType = iota
	// ErrorTypePermanent - non-retry-able errors
	ErrorTypePermanent
)

// TransientError represents an error that can be retried
type TransientError struct {
	Err        error
	RetryAfter int // Seconds to wait before retry (from Retry-After header)
	StatusCode int // HTTP status code if applicable
	Message    string
}

func (e *TransientError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("transient error: %v", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// PermanentError represents an error that should not be retried
type PermanentError struct {
	Err        error
	StatusCode int // HTTP status code if applicable
	Message    string
}

func (e *PermanentError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("permanent error: %v", e.Err)
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// NewTransient wraps err as a retryable error.
func NewTransient(err error, statusCode int) *TransientError {
	return &TransientError{Err: err, StatusCode: statusCode}
}

// NewPermanent wraps err as a non-retryable error.
func NewPermanent(err error, statusCode int) *PermanentError {
	return &PermanentError{Err: err, StatusCode: statusCode}
}

// IsTransient reports whether err should be retried.
//
// Explicit classifications win; otherwise network-level failures and
// recognizable timeout/rate-limit signatures are treated as transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var transient *TransientError
	if errors.As(err, &transient) {
		return true
	}

	var permanent *PermanentError
	if errors.As(err, &permanent) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, signature := range []string{
		"timeout",
		"connection reset",
		"temporarily unavailable",
		"rate limit",
		"too many requests",
	} {
		if strings.Contains(msg, signature) {
			return true
		}
	}

	return false
}

// ClassifyHTTPStatus converts an HTTP status code into the retry taxonomy.
func ClassifyHTTPStatus(status int, err error) error {
	switch {
	case status == http.StatusTooManyRequests:
		return &TransientError{Err: err, StatusCode: status}
	case status >= 500:
		return &TransientError{Err: err, StatusCode: status}
	case status >= 400:
		return &PermanentError{Err: err, StatusCode: status}
	default:
		return err
	}
}
