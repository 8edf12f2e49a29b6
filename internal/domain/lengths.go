package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// The deriver reads length bounds from the canonical pattern shape used
// by the registry: an optional alternation group of literal digit
// prefixes followed by counted digit runs, e.g. `^(10|11|12|15)\d{8}$`
// or `^\d{10,11}$`. Anything else falls back to the ITU bounds.
var (
	prefixGroupRe = regexp.MustCompile(`\((?:\?:)?([0-9|]+)\)`)
	digitRunRe    = regexp.MustCompile(`\\d\{(\d+)(?:,(\d+))?\}`)
)

// NationalNumberLengths derives the {min, max} national-number length
// bounds from a validation pattern source string.
//
// It never fails: patterns whose structure is not recognizable yield the
// permissive fallback (FallbackMinNationalLength,
// FallbackMaxNationalLength). Registry data is compiled-in, so a
// malformed pattern is a data defect that should degrade to permissive
// bounds rather than break callers.
func NationalNumberLengths(pattern string) (minLen, maxLen int) {
	minPrefix, maxPrefix, ok := prefixLengths(pattern)
	if !ok {
		minPrefix, maxPrefix = 0, 0
	}

	minRun, maxRun, found := digitRunLengths(pattern)
	if !found {
		return FallbackMinNationalLength, FallbackMaxNationalLength
	}

	minLen = minPrefix + minRun
	maxLen = maxPrefix + maxRun
	if minLen < 1 || maxLen < minLen || maxLen > FallbackMaxNationalLength {
		return FallbackMinNationalLength, FallbackMaxNationalLength
	}
	return minLen, maxLen
}

// prefixLengths extracts the shortest and longest alternative from the
// pattern's leading alternation group of literal digits, if one exists.
func prefixLengths(pattern string) (shortest, longest int, ok bool) {
	m := prefixGroupRe.FindStringSubmatch(pattern)
	if m == nil {
		return 0, 0, false
	}

	alts := strings.Split(m[1], "|")
	shortest = -1
	for _, alt := range alts {
		if alt == "" {
			continue
		}
		n := len(alt)
		if shortest == -1 || n < shortest {
			shortest = n
		}
		if n > longest {
			longest = n
		}
	}
	if shortest == -1 {
		return 0, 0, false
	}
	return shortest, longest, true
}

// digitRunLengths sums the bounds of every counted digit run (`\d{n}` or
// `\d{m,n}`) in the pattern.
func digitRunLengths(pattern string) (minSum, maxSum int, found bool) {
	for _, m := range digitRunRe.FindAllStringSubmatch(pattern, -1) {
		lo, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, 0, false
		}
		hi := lo
		if m[2] != "" {
			hi, err = strconv.Atoi(m[2])
			if err != nil || hi < lo {
				return 0, 0, false
			}
		}
		minSum += lo
		maxSum += hi
		found = true
	}
	return minSum, maxSum, found
}
