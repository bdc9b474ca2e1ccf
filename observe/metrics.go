package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jonwraymond/faultops/fault"
	"github.com/jonwraymond/faultops/rescue"
)

// FailureMetrics records failures claimed by handlers.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Errors: recording is best-effort and must not panic.
type FailureMetrics struct {
	meter   metric.Meter
	handled metric.Int64Counter
}

// NewFailureMetrics creates failure counters on the given meter.
func NewFailureMetrics(meter metric.Meter) (*FailureMetrics, error) {
	handled, err := meter.Int64Counter(
		"fault.handled.total",
		metric.WithDescription("Total failures claimed by handlers"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, err
	}

	return &FailureMetrics{
		meter:   meter,
		handled: handled,
	}, nil
}

// Record counts one claimed failure, partitioned by tag and class.
func (m *FailureMetrics) Record(ctx context.Context, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("fault.class", fault.ClassOf(err).String()),
	}
	if tag, ok := fault.TagOf(err); ok {
		attrs = append(attrs, attribute.String("fault.tag", tag.Name()))
	}

	m.handled.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// Action returns a handler action recording each claimed failure.
func (m *FailureMetrics) Action() rescue.Action {
	return m.Record
}
