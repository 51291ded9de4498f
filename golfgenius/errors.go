package golfgenius

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
)

// Common errors
var (
	// ErrMissingAPIKey indicates the client was created without credentials
	ErrMissingAPIKey = errors.New("golfgenius API key is required")
	// ErrUnauthorized indicates authentication failure
	ErrUnauthorized = errors.New("unauthorized: invalid API key")
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
)

// APIError represents a non-2xx GolfGenius response
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("golfgenius API error: %s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// Is lets errors.Is match the ErrUnauthorized and ErrNotFound sentinels
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.IsUnauthorized()
	case ErrNotFound:
		return e.IsNotFound()
	}
	return false
}

// RequestError represents a request that never produced a usable response
type RequestError struct {
	Endpoint string
	Err      error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("golfgenius request %s failed: %v", e.Endpoint, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request failed because a deadline expired
func (e *RequestError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) || errors.Is(e.Err, os.ErrDeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(e.Err, &t) && t.Timeout()
}
