package app

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/numera-labs/phone-lookup-platform/internal/domain"
	"github.com/numera-labs/phone-lookup-platform/internal/observability"
)

// Parse interprets input under defaultISO's rules (or the configured
// service default when defaultISO is empty) and returns the full parse
// result. A shape-invalid number is NOT an error return: the result
// carries it in its Err field so callers can still show country and
// length information.
func (s *LookupService) Parse(ctx context.Context, input, defaultISO, clientIP string) (domain.ParsedNumber, error) {
	ctx, span := tracer.Start(ctx, "lookup.parse")
	defer span.End()

	logger := observability.WithTraceID(ctx, s.logger)

	if err := s.checkRateLimit(ctx, logger, "parse", clientIP); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.ParsedNumber{}, err
	}

	if defaultISO == "" {
		defaultISO = s.defaultCountry
	}
	span.SetAttributes(attribute.String("lookup.default_country", defaultISO))

	parsed, err := s.parser.Parse(input, defaultISO)
	if err != nil {
		outcome := "error"
		if errors.Is(err, domain.ErrUnknownCountry) {
			outcome = "unknown_country"
		} else if errors.Is(err, domain.ErrEmptyInput) {
			outcome = "empty_input"
		}
		parsesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return domain.ParsedNumber{}, err
	}

	span.SetAttributes(
		attribute.String("lookup.country", parsed.CountryCode),
		attribute.Bool("lookup.valid", parsed.IsValid()),
	)

	if parsed.IsValid() {
		parsesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "valid")))
	} else {
		parsesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "invalid")))
		invalidTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("country", parsed.CountryCode)))
		logger.DebugContext(ctx, "invalid national number",
			"country", parsed.CountryCode,
			"min_length", parsed.MinLength,
			"max_length", parsed.MaxLength,
		)
	}

	return parsed, nil
}

// checkRateLimit enforces the per-IP fixed window. The limiter is
// fail-open: lookup availability outweighs strict limiting, so a Redis
// failure logs a warning and lets the request through.
func (s *LookupService) checkRateLimit(ctx context.Context, logger *slog.Logger, op, clientIP string) error {
	if s.limiter == nil || s.limitPerIP <= 0 || clientIP == "" {
		return nil
	}

	allowed, err := s.limiter.CheckAndIncrement(
		ctx,
		"lookup:ip:"+clientIP,
		s.limitPerIP,
		int(s.window.Seconds()),
	)
	if err != nil {
		logger.WarnContext(ctx, "rate limit check failed, proceeding (fail-open)",
			"error", err, "client_ip", clientIP, "operation", op)
		return nil
	}
	if !allowed {
		rateLimitsTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", op),
			attribute.String("limit_type", "ip"),
		))
		return domain.ErrIPRateLimited
	}
	return nil
}
