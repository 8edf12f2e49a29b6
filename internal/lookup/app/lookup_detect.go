package app

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/numera-labs/phone-lookup-platform/internal/domain"
	"github.com/numera-labs/phone-lookup-platform/internal/observability"
)

// Detect resolves raw typed text to a country record. This is the
// live-typing path: consumers call it on each (debounced) keystroke to
// switch the displayed country, so a miss is routine and maps to
// ErrUnknownCountry rather than anything fatal.
func (s *LookupService) Detect(ctx context.Context, input, clientIP string) (domain.CountryRecord, error) {
	ctx, span := tracer.Start(ctx, "lookup.detect")
	defer span.End()

	logger := observability.WithTraceID(ctx, s.logger)

	if err := s.checkRateLimit(ctx, logger, "detect", clientIP); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.CountryRecord{}, err
	}

	rec, ok := s.detector.Detect(input)
	if !ok {
		detectionsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "miss")))
		span.SetStatus(codes.Error, "no country matched")
		return domain.CountryRecord{}, fmt.Errorf("detect %q: %w", input, domain.ErrUnknownCountry)
	}

	detectionsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", "hit"),
		attribute.String("country", rec.ISOCode),
	))
	span.SetAttributes(attribute.String("lookup.country", rec.ISOCode))

	return rec, nil
}
