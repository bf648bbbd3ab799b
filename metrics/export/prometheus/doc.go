// Package prometheus provides Prometheus collectors for goPortalAuth metrics.
//
// [NewPrometheusExporter] accepts an [goPortalAuth.Engine] and exposes an [http.Handler]
// that renders all goPortalAuth counters and histograms in Prometheus text exposition
// format. Counter names are prefixed goportalauth_*_total; the single histogram is
// goportalauth_login_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate engine state.
package prometheus
