/*
Package observability provides Prometheus metrics for calls to the rendering engine.

A Metrics value is registered once on a prometheus.Registerer and handed to
connection.WithMetrics. A nil *Metrics records nothing, so instrumentation
stays optional.
*/
package observability
