package domain

import (
	"fmt"
	"strings"
)

// ParsedNumber is an immutable value describing one interpretation of a
// raw input against a single country's rules. It has no identity beyond
// its fields and is safe to copy and share; validity and the formatted
// renderings are pure functions of the fields, never cached state.
type ParsedNumber struct {
	// CountryCode is the resolved ISO 3166-1 alpha-2 code.
	CountryCode string

	// DialCode is the resolved country's dial code, including the '+'.
	DialCode string

	// NationalNumber holds the national significant digits, with the
	// dial code and any trunk zero stripped.
	NationalNumber string

	// MinLength and MaxLength bound the national number for the resolved
	// country, derived from its validation pattern.
	MinLength int
	MaxLength int

	// Err is non-nil when the national number does not satisfy the
	// country's validation pattern. The value remains inspectable; only
	// the formatting methods degrade to empty strings.
	Err error
}

// IsValid reports whether the national number satisfies the resolved
// country's rules.
func (p ParsedNumber) IsValid() bool { return p.Err == nil }

// FormatE164 renders the number as '+' + dial digits + national digits,
// the ITU E.164 form. Returns "" when the number is invalid.
func (p ParsedNumber) FormatE164() string {
	if !p.IsValid() {
		return ""
	}
	return p.DialCode + p.NationalNumber
}

// FormatInternational renders the international form. In this domain it
// is defined identically to E.164: no grouping separators are applied.
func (p ParsedNumber) FormatInternational() string {
	return p.FormatE164()
}

// FormatNational renders the bare national significant digits.
// Returns "" when the number is invalid.
func (p ParsedNumber) FormatNational() string {
	if !p.IsValid() {
		return ""
	}
	return p.NationalNumber
}

// Parser interprets raw phone-number text against the registry. It is
// stateless beyond the registry reference and safe for concurrent use.
type Parser struct {
	reg *Registry
}

// NewParser creates a Parser over the given registry.
func NewParser(reg *Registry) *Parser {
	return &Parser{reg: reg}
}

// Parse interprets input against defaultISO's rules, or against the
// country self-identified by a leading '+'.
//
// Country resolution trusts the caller: a bare national number is parsed
// under defaultISO without any prefix guessing. Only inputs opening with
// '+' trigger dial-code detection. Live-typing country switching is the
// Detector's job, not Parse's.
//
// Errors: ErrEmptyInput when input holds no usable text, and
// ErrUnknownCountry when neither detection nor defaultISO resolves to a
// registry record. A shape violation is NOT an error return: the
// ParsedNumber is returned with its Err field set and remains
// inspectable.
func (p *Parser) Parse(input, defaultISO string) (ParsedNumber, error) {
	hadPlus, digits := normalizeInput(input)
	if digits == "" {
		return ParsedNumber{}, ErrEmptyInput
	}

	rec, ok := p.resolveCountry(hadPlus, digits, defaultISO)
	if !ok {
		return ParsedNumber{}, fmt.Errorf("no country for input %q or default %q: %w", input, defaultISO, ErrUnknownCountry)
	}

	national := nationalNumber(rec, hadPlus, digits)
	minLen, maxLen := NationalNumberLengths(rec.Pattern.String())

	parsed := ParsedNumber{
		CountryCode:    rec.ISOCode,
		DialCode:       rec.DialCode,
		NationalNumber: national,
		MinLength:      minLen,
		MaxLength:      maxLen,
	}

	if national == "" || !rec.Pattern.MatchString(national) {
		parsed.Err = fmt.Errorf("%q is not a valid %s national number (expected %d-%d digits matching %s): %w",
			national, rec.EnglishName, minLen, maxLen, rec.Pattern.String(), ErrInvalidNationalNumber)
	}

	return parsed, nil
}

// resolveCountry picks the registry record for a parse: dial-code
// detection when the input self-identifies with '+', the caller's
// default otherwise (and as the fallback when detection misses).
func (p *Parser) resolveCountry(hadPlus bool, digits, defaultISO string) (CountryRecord, bool) {
	if hadPlus {
		for _, rec := range p.reg.records {
			if strings.HasPrefix(digits, rec.DialDigits()) {
				return rec, true
			}
		}
	}
	return p.reg.Lookup(defaultISO)
}

// nationalNumber strips the resolved dial code (for '+' inputs) and a
// rejected trunk zero from the digit string. The trunk zero is dropped
// only when the country's pattern rejects the zero-led form but accepts
// the stripped one, so countries whose plans genuinely start with 0 are
// left alone.
func nationalNumber(rec CountryRecord, hadPlus bool, digits string) string {
	national := digits
	if hadPlus {
		national = strings.TrimPrefix(national, rec.DialDigits())
	}

	if strings.HasPrefix(national, "0") && !rec.Pattern.MatchString(national) {
		if trimmed := strings.TrimPrefix(national, "0"); rec.Pattern.MatchString(trimmed) {
			return trimmed
		}
	}
	return national
}
