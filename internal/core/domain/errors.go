package domain

import "errors"

// Domain errors represent client-side failures.
// Adapters wrap them with context; callers match with errors.Is.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSearchUnavailable indicates no search service is configured.
	ErrSearchUnavailable = errors.New("search service unavailable")

	// ErrInvalidConfig indicates a configuration value could not be used.
	ErrInvalidConfig = errors.New("invalid configuration")

	// Server Errors.

	// ErrTransport indicates the search server could not be reached
	// or the request did not complete (refused, timed out, cancelled).
	ErrTransport = errors.New("transport error")

	// ErrHTTPStatus indicates the search server answered with a non-2xx status.
	ErrHTTPStatus = errors.New("unexpected HTTP status")

	// ErrMalformedResponse indicates the server body was not the expected JSON.
	// It is treated like a transport failure by callers.
	ErrMalformedResponse = errors.New("malformed server response")
)
