package app

import (
	"context"
	"strings"

	"github.com/numera-labs/phone-lookup-platform/internal/domain"
)

// CountryView is the listing shape consumers render in country pickers.
// Name is pre-selected by display language; both raw names are still
// exposed so clients can re-render without another round trip.
type CountryView struct {
	ISOCode     string `json:"iso_code"`
	Name        string `json:"name"`
	LocalName   string `json:"local_name"`
	EnglishName string `json:"english_name"`
	DialCode    string `json:"dial_code"`
	MinLength   int    `json:"min_length"`
	MaxLength   int    `json:"max_length"`
}

// Countries lists all registry records in registry order, with the
// display name chosen by lang ("en" selects the English name, anything
// else the local one). Language never changes behavior beyond that
// selection.
func (s *LookupService) Countries(ctx context.Context, lang string) []CountryView {
	_, span := tracer.Start(ctx, "lookup.countries")
	defer span.End()

	english := strings.EqualFold(lang, "en")

	records := s.reg.All()
	out := make([]CountryView, 0, len(records))
	for _, rec := range records {
		name := rec.LocalName
		if english {
			name = rec.EnglishName
		}
		minLen, maxLen := domain.NationalNumberLengths(rec.Pattern.String())
		out = append(out, CountryView{
			ISOCode:     rec.ISOCode,
			Name:        name,
			LocalName:   rec.LocalName,
			EnglishName: rec.EnglishName,
			DialCode:    rec.DialCode,
			MinLength:   minLen,
			MaxLength:   maxLen,
		})
	}
	return out
}

// Country resolves a single registry record by ISO code,
// case-insensitively.
func (s *LookupService) Country(ctx context.Context, isoCode string) (domain.CountryRecord, error) {
	_, span := tracer.Start(ctx, "lookup.country")
	defer span.End()

	rec, ok := s.reg.Lookup(isoCode)
	if !ok {
		return domain.CountryRecord{}, domain.ErrNotFound
	}
	return rec, nil
}
