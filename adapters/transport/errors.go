// Package transport provides the shipped HTTP implementation of ports.Adapter.
package transport

import "errors"

// Configuration errors returned by New.
var (
	// ErrMissingAPIKey is returned when neither an API key nor an AuthFunc is set.
	ErrMissingAPIKey = errors.New("api key is required")

	// ErrNilConfig is returned when New is called without a config.
	ErrNilConfig = errors.New("config is required")
)
