package api

import (
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// statusWriter captures the status code for the request metrics middleware.
type statusWriter struct {
	http.ResponseWriter

	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// withRequestMetrics records a request counter and duration histogram through
// the given meter provider. Labels stay low-cardinality: method and status
// only, no paths.
func withRequestMetrics(mp *sdkmetric.MeterProvider, next http.Handler) (http.Handler, error) {
	meter := mp.Meter("avconsole/api")

	requests, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("Number of HTTP requests handled."))
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}

	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Time spent handling HTTP requests."),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("could not create request duration histogram: %w", err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		attrs := metric.WithAttributes(
			attribute.String("http.method", r.Method),
			attribute.Int("http.status_code", sw.status))
		requests.Add(r.Context(), 1, attrs)
		duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
	}), nil
}
