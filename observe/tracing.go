package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonwraymond/faultops/fault"
	"github.com/jonwraymond/faultops/rescue"
)

// Span returns a handler action recording each claimed failure on the
// span already carried by the context. Without a recording span the
// action does nothing.
func Span() rescue.Action {
	return func(ctx context.Context, err error) {
		span := trace.SpanFromContext(ctx)
		if !span.IsRecording() {
			return
		}

		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
		span.SetAttributes(
			attribute.String("fault.class", fault.ClassOf(err).String()),
		)
		if tag, ok := fault.TagOf(err); ok {
			span.SetAttributes(attribute.String("fault.tag", tag.Name()))
		}
	}
}
