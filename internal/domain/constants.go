package domain

import "time"

// Normative limits for phone-number interpretation and service operation.
// These are compiled defaults that can be overridden via configuration
// where a config knob exists.
const (
	// National-number length fallback bounds, used when a country's
	// validation pattern has no recognizable structure. 15 is the ITU
	// E.164 ceiling for national significant numbers.
	FallbackMinNationalLength = 7
	FallbackMaxNationalLength = 15

	// Detection thresholds
	MinDigitsForPrefixDetect = 2 // secondary detection pass needs at least this many digits
	MaxDialCodeDigits        = 3 // dial codes are 1-3 digits after the '+'

	// Rate limiting (per-IP, fixed window)
	LookupRateLimitPerIP  = 120
	LookupRateLimitWindow = 1 * time.Minute

	// Timeout contracts
	RedisTimeout = 2 * time.Second // Max time for Redis operations

	// Graceful shutdown budgets; drain delay lets load balancers
	// propagate endpoint removal before the listener closes.
	ShutdownDrainDelay      = 2 * time.Second
	ShutdownHTTPTimeout     = 10 * time.Second
	ShutdownOTELTimeout     = 5 * time.Second
	GracefulShutdownTimeout = 30 * time.Second // Max time to drain connections on shutdown
)

// TieBreakRegistryOrder names the detection tie-break policy: when more
// than one registry record matches an input (shared dial codes such as
// +1, overlapping prefix hints), the record listed earliest in registry
// order wins. Registry ordering is therefore load-bearing and covered
// by tests, not an accident of iteration.
const TieBreakRegistryOrder = "registry-order-first-match"
