package domain

import "errors"

// Sentinel errors for domain error conditions.
// Use errors.Is() for matching - never compare error strings.
var (
	// Input errors
	ErrEmptyInput     = errors.New("input cannot be empty")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnknownCountry = errors.New("country could not be resolved")

	// National-number errors. A parse result carrying this error is still
	// inspectable (country, dial code, lengths); only formatting degrades.
	ErrInvalidNationalNumber = errors.New("invalid national number")

	// Resource errors
	ErrNotFound = errors.New("resource not found")

	// Authorization errors
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("permission denied")

	// Operational errors
	ErrRateLimited   = errors.New("rate limit exceeded")
	ErrIPRateLimited = errors.New("IP address rate limit exceeded")
	ErrUnavailable   = errors.New("service temporarily unavailable")

	// Configuration errors
	ErrConfigRequired = errors.New("required configuration key missing")
)

// IsRetryable returns true if the error represents a transient condition
// that may succeed on retry.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrUnavailable) ||
		errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrIPRateLimited)
}

// clientErrors enumerates all domain errors that represent client-side issues.
var clientErrors = []error{
	ErrEmptyInput,
	ErrInvalidInput,
	ErrUnknownCountry,
	ErrInvalidNationalNumber,
	ErrNotFound,
	ErrUnauthorized,
	ErrForbidden,
}

// IsClientError returns true if the error represents a client-side issue
// that will not succeed on retry without client-side changes.
func IsClientError(err error) bool {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsNotFound returns true if the error represents a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
