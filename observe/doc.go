// Package observe provides telemetry collaborators for rescue policies.
//
// The rescue engine itself never logs or measures anything; handler
// actions are the hook for that. This package supplies ready-made
// actions (structured logging, OpenTelemetry metrics and spans,
// Prometheus counters) plus provider setup for wiring them to real
// exporters.
package observe
