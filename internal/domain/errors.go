package domain

import "errors"

// Sentinel errors used throughout the application.
// Handlers translate these to HTTP status codes via a single mapError function.
var (
	ErrInvalidBody         = errors.New("invalid JSON body")
	ErrInvalidDestinations = errors.New("phoneNumbers must be a non-empty array of strings")
	ErrInvalidMessage      = errors.New("message is required and must be a non-empty string")
	ErrMissingCredential   = errors.New("SMS gateway credentials are not configured")
	ErrUpstream            = errors.New("SMS gateway request failed")
)
