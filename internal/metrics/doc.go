// Package metrics exports sort statistics to Prometheus.
//
// Metrics implements the driver's Recorder interface. Collectors live on a
// private registry rather than the global default, so tests and multiple
// drivers never collide. The optional HTTP endpoint is started by the app
// when metrics_addr is configured.
package metrics
