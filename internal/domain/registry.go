// Package domain contains pure business logic and types.
// No external dependencies allowed - this is the innermost ring of Clean Architecture.
package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// dialCodeShape constrains dial codes to '+' followed by 1-3 digits.
var dialCodeShape = regexp.MustCompile(`^\+\d{1,3}$`)

// CountryRecord is an immutable entry in the country registry. One record
// exists per supported country; records sharing a dial code (the +1
// territories) are disambiguated by registry order.
type CountryRecord struct {
	// ISOCode is the two-letter uppercase ISO 3166-1 alpha-2 code, unique
	// across the registry.
	ISOCode string

	// LocalName and EnglishName are the display names shown by consumers.
	// Which one a UI renders is a presentation choice; both are always set.
	LocalName   string
	EnglishName string

	// DialCode is the international calling code, '+' followed by 1-3 digits.
	// Not unique across records.
	DialCode string

	// Pattern is the anchored validation pattern for national significant
	// numbers. It is the source of truth for both validity and length bounds.
	Pattern *regexp.Regexp

	// PrefixHints are 2-3 digit strings that may open a national number,
	// used as the secondary detection signal when no dial code matches.
	PrefixHints []string
}

// DialDigits returns the dial code without its '+' prefix.
func (c CountryRecord) DialDigits() string {
	return strings.TrimPrefix(c.DialCode, "+")
}

// IsZero reports whether the record is the zero value (lookup miss).
func (c CountryRecord) IsZero() bool { return c.ISOCode == "" }

// Registry is a read-only, ordered table of country records. It is
// constructed once at startup and shared by reference; it has no mutable
// state, so concurrent use needs no coordination.
type Registry struct {
	records []CountryRecord
	byISO   map[string]int
}

// NewRegistry builds a Registry from records, validating the registry
// invariants: unique ISO codes and well-formed dial codes. Record order is
// preserved and is the documented tie-break for ambiguous detection
// (TieBreakRegistryOrder).
func NewRegistry(records []CountryRecord) (*Registry, error) {
	byISO := make(map[string]int, len(records))
	out := make([]CountryRecord, len(records))

	for i, rec := range records {
		if rec.ISOCode == "" || rec.ISOCode != strings.ToUpper(rec.ISOCode) || len(rec.ISOCode) != 2 {
			return nil, fmt.Errorf("record %d: ISO code %q must be two uppercase letters: %w", i, rec.ISOCode, ErrInvalidInput)
		}
		if _, dup := byISO[rec.ISOCode]; dup {
			return nil, fmt.Errorf("duplicate ISO code %q: %w", rec.ISOCode, ErrInvalidInput)
		}
		if !dialCodeShape.MatchString(rec.DialCode) {
			return nil, fmt.Errorf("record %q: dial code %q must match +[1-3 digits]: %w", rec.ISOCode, rec.DialCode, ErrInvalidInput)
		}
		if rec.LocalName == "" || rec.EnglishName == "" {
			return nil, fmt.Errorf("record %q: display names must be non-empty: %w", rec.ISOCode, ErrInvalidInput)
		}
		if rec.Pattern == nil {
			return nil, fmt.Errorf("record %q: validation pattern is required: %w", rec.ISOCode, ErrInvalidInput)
		}
		byISO[rec.ISOCode] = i
		out[i] = rec
	}

	return &Registry{records: out, byISO: byISO}, nil
}

// MustNewRegistry builds a Registry, panicking on invalid data. Use only
// for compiled-in tables and tests.
func MustNewRegistry(records []CountryRecord) *Registry {
	r, err := NewRegistry(records)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup resolves an ISO code to a record. The comparison is
// case-insensitive; absence is a lookup miss, not an error.
func (r *Registry) Lookup(isoCode string) (CountryRecord, bool) {
	i, ok := r.byISO[strings.ToUpper(strings.TrimSpace(isoCode))]
	if !ok {
		return CountryRecord{}, false
	}
	return r.records[i], true
}

// All returns the records in registry order. The slice is a copy; the
// registry itself is never exposed for mutation.
func (r *Registry) All() []CountryRecord {
	out := make([]CountryRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of records.
func (r *Registry) Len() int { return len(r.records) }
