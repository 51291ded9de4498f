package golfgenius

import (
	"time"
)

const (
	// DefaultBaseURL is the GolfGenius API v2 root
	DefaultBaseURL = "https://www.golfgenius.com/api_v2"
	// DefaultTimeout bounds a single request
	DefaultTimeout = 30 * time.Second
	// DefaultRequestDelay is the minimum spacing between consecutive requests
	DefaultRequestDelay = 300 * time.Millisecond
)

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	timeout      time.Duration
	requestDelay time.Duration
	observer     Observer
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:      DefaultTimeout,
		requestDelay: DefaultRequestDelay,
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRequestDelay sets the minimum delay between the start of consecutive
// requests. Zero disables throttling.
func WithRequestDelay(delay time.Duration) Option {
	return func(o *clientOptions) {
		if delay >= 0 {
			o.requestDelay = delay
		}
	}
}

// WithObserver registers an Observer for request instrumentation.
func WithObserver(observer Observer) Option {
	return func(o *clientOptions) {
		o.observer = observer
	}
}
