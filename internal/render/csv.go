package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/inletpara/inletpara/internal/compute"
)

// csvHeader is the column order of the CSV export.
var csvHeader = []string{
	"name",
	"pressure_recovery",
	"ke_efficiency_pct",
	"adiabatic_efficiency_pct",
	"distortion_index",
	"shock_efficiency_pct",
}

// CSV writes the results as comma-separated values to w: a header row, then
// one row per inlet in input order.
func CSV(w io.Writer, results []compute.Metrics) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("render: csv header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.Name,
			fmt.Sprintf("%.6f", r.PressureRecovery),
			fmt.Sprintf("%.4f", r.KineticEnergyEfficiency),
			fmt.Sprintf("%.4f", r.AdiabaticCompressionEfficiency),
			fmt.Sprintf("%.6f", r.DistortionIndex),
			fmt.Sprintf("%.4f", r.ShockCompressionEfficiency),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("render: csv row %q: %w", r.Name, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
