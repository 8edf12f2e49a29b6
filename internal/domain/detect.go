package domain

import "strings"

// Detector resolves raw typed text to a registry record. It is the live
// path consumers call on every keystroke, so it accepts arbitrary
// separators and partial input and never returns an error: an
// unresolvable input is simply a miss.
type Detector struct {
	reg *Registry
}

// NewDetector creates a Detector over the given registry.
func NewDetector(reg *Registry) *Detector {
	return &Detector{reg: reg}
}

// Detect resolves input to a country record using two passes:
//
//  1. Dial-code match: the first record in registry order whose dial-code
//     digits prefix the input digits wins. Shared dial codes (+1) resolve
//     to the earlier-listed record (TieBreakRegistryOrder).
//  2. Prefix-hint match: attempted only when pass 1 misses and the input
//     has at least MinDigitsForPrefixDetect digits. The first record with
//     a hint prefixing the digits wins; a single leading trunk zero is
//     ignored for this pass.
//
// Detection of bare national numbers is best-effort: a national number
// that happens to open with another country's dial code (an Egyptian
// "10..." also opens with the +1 dial code) resolves to that country.
// This is an accepted limitation of dial-code-first matching, not a
// defect; callers wanting authoritative results should pass a '+' form.
func (d *Detector) Detect(input string) (CountryRecord, bool) {
	_, digits := normalizeInput(input)
	if digits == "" {
		return CountryRecord{}, false
	}

	// Primary pass: dial codes are authoritative when present.
	for _, rec := range d.reg.records {
		if strings.HasPrefix(digits, rec.DialDigits()) {
			return rec, true
		}
	}

	if len(digits) < MinDigitsForPrefixDetect {
		return CountryRecord{}, false
	}

	// Secondary pass: national-number prefix hints. Users typing a
	// national number often include the trunk zero, so hints are also
	// tested against the zero-stripped form.
	trunkStripped := strings.TrimPrefix(digits, "0")
	for _, rec := range d.reg.records {
		for _, hint := range rec.PrefixHints {
			if strings.HasPrefix(digits, hint) || strings.HasPrefix(trunkStripped, hint) {
				return rec, true
			}
		}
	}

	return CountryRecord{}, false
}

// normalizeInput reduces raw text to (hadPlus, digits): every non-digit
// character is dropped, and a '+' counts only in the leading position
// (after whitespace).
func normalizeInput(input string) (bool, string) {
	s := strings.TrimSpace(input)
	hadPlus := strings.HasPrefix(s, "+")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return hadPlus, b.String()
}
