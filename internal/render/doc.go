// Package render turns computed inlet metrics into human-readable output:
// an aligned comparison table, per-metric horizontal bar charts, and CSV.
//
// Number formats follow the results view of the calculator: ratios with four
// decimals, percentage metrics with two decimals and a % suffix.
package render
