// Package metrics defines the recorder interfaces for snapshot aggregates.
// Sinks such as the Prometheus and Influx sinks in infra/metrics register
// themselves by name; NewSink builds one from configuration and wraps several
// in a MultiSink. Optional capabilities (SweepRecorder) are detected with type
// assertions.
package metrics
