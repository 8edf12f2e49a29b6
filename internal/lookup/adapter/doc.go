// Package adapter contains implementations of interfaces defined in app.
// The Redis rate limiter lives here.
package adapter

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("lookup/adapter")
