package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/inletpara/inletpara/internal/compute"
)

// Table writes the results comparison table to w, one row per inlet in input
// order.
func Table(w io.Writer, results []compute.Metrics) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "Name\tRecovery\tKE Eff (%)\tAdiabatic Eff (%)\tDistortion\tShock Eff (%)")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%.4f\t%.2f%%\t%.2f%%\t%.4f\t%.2f%%\n",
			r.Name,
			r.PressureRecovery,
			r.KineticEnergyEfficiency,
			r.AdiabaticCompressionEfficiency,
			r.DistortionIndex,
			r.ShockCompressionEfficiency,
		)
	}

	return tw.Flush()
}
