package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/inletpara/inletpara/internal/compute"
)

// barWidth is the length in runes of the longest bar in a chart.
const barWidth = 40

// chartDef names one metric and how to read and format it.
type chartDef struct {
	title  string
	value  func(compute.Metrics) float64
	format string
}

// charts is the set of per-metric comparisons plotted, in display order:
// the same four the results view charts.
var charts = []chartDef{
	{"Kinetic Energy Efficiency (%)", func(m compute.Metrics) float64 { return m.KineticEnergyEfficiency }, "%.2f"},
	{"Adiabatic Compression Efficiency (%)", func(m compute.Metrics) float64 { return m.AdiabaticCompressionEfficiency }, "%.2f"},
	{"Total Pressure Recovery (π)", func(m compute.Metrics) float64 { return m.PressureRecovery }, "%.4f"},
	{"Distortion Index (DI)", func(m compute.Metrics) float64 { return m.DistortionIndex }, "%.4f"},
}

// Charts writes one horizontal bar chart per metric to w, comparing all
// inlets side by side. Bars are scaled to the largest absolute value in each
// chart; negative values render as an empty bar with their value still shown.
func Charts(w io.Writer, results []compute.Metrics) {
	for i, def := range charts {
		if i > 0 {
			fmt.Fprintln(w)
		}
		barChart(w, def, results)
	}
}

func barChart(w io.Writer, def chartDef, results []compute.Metrics) {
	fmt.Fprintf(w, "%s\n", def.title)

	nameWidth := 0
	maxAbs := 0.0
	for _, r := range results {
		if len(r.Name) > nameWidth {
			nameWidth = len(r.Name)
		}
		if v := math.Abs(def.value(r)); v > maxAbs {
			maxAbs = v
		}
	}

	for _, r := range results {
		v := def.value(r)
		n := 0
		if maxAbs > 0 && v > 0 {
			n = int(math.Round(v / maxAbs * barWidth))
		}
		fmt.Fprintf(w, "  %-*s  %s %s\n",
			nameWidth, r.Name,
			strings.Repeat("█", n),
			fmt.Sprintf(def.format, v),
		)
	}
}
