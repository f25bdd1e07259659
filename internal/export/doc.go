// Package export exposes the latest computed inlet metrics in Prometheus
// text exposition format, one gauge family per performance metric, labelled
// by inlet name.
package export
