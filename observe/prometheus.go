package observe

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jonwraymond/faultops/fault"
	"github.com/jonwraymond/faultops/rescue"
)

// NewHandledCounter creates a Prometheus counter partitioned by failure
// tag and class, for setups that scrape the Prometheus registry
// directly rather than going through OpenTelemetry. The vector is
// registered on reg when reg is non-nil.
func NewHandledCounter(reg prometheus.Registerer, name string) *prometheus.CounterVec {
	vec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: "Total failures claimed by handlers",
		},
		[]string{"tag", "class"},
	)
	if reg != nil {
		reg.MustRegister(vec)
	}
	return vec
}

// CountVec returns a handler action incrementing vec for each claimed
// failure. Errors carrying no tag count under an empty tag label.
func CountVec(vec *prometheus.CounterVec) rescue.Action {
	return func(ctx context.Context, err error) {
		tag := ""
		if t, ok := fault.TagOf(err); ok {
			tag = t.Name()
		}
		vec.WithLabelValues(tag, fault.ClassOf(err).String()).Inc()
	}
}
