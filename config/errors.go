package config

import "errors"

// ErrMissingAPIKey is returned when no GolfGenius API key is configured
var ErrMissingAPIKey = errors.New("GOLFGENIUS_API_KEY is not set (export it or add it to a .env file)")
