// Package api implements the HTTP REST API for inletpara.
//
// New(store) returns an http.Handler that serves:
//
//	GET  /api/v1/health           — inlet count and status
//	GET  /api/v1/inlets           — the current measurement collection
//	PUT  /api/v1/inlets           — replace the collection (1..max inlets)
//	GET  /api/v1/inlets/{index}   — one measurement; 404 out of range
//	PUT  /api/v1/inlets/{index}   — update one measurement
//	POST /api/v1/inlets/count     — resize the collection {"count": n}
//	GET  /api/v1/results          — computed metrics for every inlet, in order
//	GET  /api/v1/report           — text/plain comparison table + bar charts
//	GET  /api/v1/report.csv       — the results as CSV
//
// All endpoints respond with application/json (except the two report
// variants), return 405 for unsupported methods, and surface failures as
// {"error": "..."} bodies. JSON types are defined in types.go. No external
// HTTP framework is used.
package api
