package export

import (
	"fmt"
	"io"
	"net/http"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/inletpara/inletpara/internal/compute"
)

// family names one gauge MetricFamily and how to read its value.
type family struct {
	name  string
	help  string
	value func(compute.Metrics) float64
}

var families = []family{
	{
		"inlet_pressure_recovery",
		"Total pressure recovery ratio Pt,e/Pt,i.",
		func(m compute.Metrics) float64 { return m.PressureRecovery },
	},
	{
		"inlet_ke_efficiency_pct",
		"Kinetic energy efficiency in percent.",
		func(m compute.Metrics) float64 { return m.KineticEnergyEfficiency },
	},
	{
		"inlet_adiabatic_efficiency_pct",
		"Adiabatic compression efficiency in percent.",
		func(m compute.Metrics) float64 { return m.AdiabaticCompressionEfficiency },
	},
	{
		"inlet_distortion_index",
		"Exit-plane total pressure distortion index (Pt,max-Pt,min)/Pt,avg.",
		func(m compute.Metrics) float64 { return m.DistortionIndex },
	},
	{
		"inlet_shock_efficiency_pct",
		"Shock compression efficiency in percent.",
		func(m compute.Metrics) float64 { return m.ShockCompressionEfficiency },
	},
}

// Write encodes the results as Prometheus text exposition to w. Each
// performance metric becomes one gauge family with a `name` label per inlet.
func Write(w io.Writer, results []compute.Metrics) error {
	// The text encoder rejects a family with no series, so an empty result
	// set produces an empty exposition.
	if len(results) == 0 {
		return nil
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))

	for _, f := range families {
		mf := &dto.MetricFamily{
			Name: strPtr(f.name),
			Help: strPtr(f.help),
			Type: dto.MetricType_GAUGE.Enum(),
		}
		for _, r := range results {
			mf.Metric = append(mf.Metric, &dto.Metric{
				Label: []*dto.LabelPair{
					{Name: strPtr("name"), Value: strPtr(r.Name)},
				},
				Gauge: &dto.Gauge{Value: floatPtr(f.value(r))},
			})
		}
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("export: encode %s: %w", f.name, err)
		}
	}
	return nil
}

// Handler returns an http.Handler serving GET /metrics from the results
// returned by source on each request.
func Handler(source func() []compute.Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", string(expfmt.NewFormat(expfmt.TypeTextPlain)))
		if err := Write(w, source()); err != nil {
			// Headers are already gone; nothing useful left to send.
			return
		}
	})
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
