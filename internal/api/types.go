package api

import "github.com/inletpara/inletpara/internal/compute"

// InletBody is the JSON representation of one inlet measurement, used both
// in requests and responses.
type InletBody struct {
	Name                     string       `json:"name"`
	Gamma                    float64      `json:"gamma"`
	Mach                     float64      `json:"mach"`
	TheoreticalPressureRatio float64      `json:"theoretical_pressure_ratio"`
	TotalPressureIn          float64      `json:"total_pressure_in"`
	TotalPressureOut         float64      `json:"total_pressure_out"`
	TotalTempIn              float64      `json:"total_temp_in"`
	TotalTempOut             float64      `json:"total_temp_out"`
	StaticTempIn             float64      `json:"static_temp_in"`
	StaticTempOut            float64      `json:"static_temp_out"`
	Extrema                  *ExtremaBody `json:"extrema,omitempty"`
}

// ExtremaBody is the optional exit-plane pressure distribution of an inlet.
type ExtremaBody struct {
	Max float64 `json:"max"`
	Min float64 `json:"min"`
	Avg float64 `json:"avg"`
}

// CountRequest is the payload for POST /api/v1/inlets/count.
type CountRequest struct {
	Count int `json:"count"`
}

// ResultBody is one inlet's computed metrics in GET /api/v1/results.
type ResultBody struct {
	Name                    string  `json:"name"`
	PressureRecovery        float64 `json:"pressure_recovery"`
	KineticEnergyEfficiency float64 `json:"ke_efficiency_pct"`
	AdiabaticEfficiency     float64 `json:"adiabatic_efficiency_pct"`
	DistortionIndex         float64 `json:"distortion_index"`
	ShockEfficiency         float64 `json:"shock_efficiency_pct"`
}

// ResultsResponse is the payload for GET /api/v1/results. It is also the
// envelope body broadcast by the WebSocket hub.
type ResultsResponse struct {
	Results     []ResultBody `json:"results"`
	GeneratedAt string       `json:"generated_at"` // RFC3339
}

// HealthResponse is the payload for GET /api/v1/health.
type HealthResponse struct {
	Status     string `json:"status"`
	InletCount int    `json:"inlet_count"`
	MaxInlets  int    `json:"max_inlets"`
}

// errorResponse is a generic JSON error body.
type errorResponse struct {
	Error string `json:"error"`
}

// toInletBody maps a core measurement to its JSON representation.
func toInletBody(m compute.Measurement) InletBody {
	b := InletBody{
		Name:                     m.Name,
		Gamma:                    m.Gamma,
		Mach:                     m.Mach,
		TheoreticalPressureRatio: m.TheoreticalPressureRatio,
		TotalPressureIn:          m.TotalPressureIn,
		TotalPressureOut:         m.TotalPressureOut,
		TotalTempIn:              m.TotalTempIn,
		TotalTempOut:             m.TotalTempOut,
		StaticTempIn:             m.StaticTempIn,
		StaticTempOut:            m.StaticTempOut,
	}
	if m.Extrema != nil {
		b.Extrema = &ExtremaBody{Max: m.Extrema.Max, Min: m.Extrema.Min, Avg: m.Extrema.Avg}
	}
	return b
}

// toMeasurement maps a request body to a core measurement.
func toMeasurement(b InletBody) compute.Measurement {
	m := compute.Measurement{
		Name:                     b.Name,
		Gamma:                    b.Gamma,
		Mach:                     b.Mach,
		TheoreticalPressureRatio: b.TheoreticalPressureRatio,
		TotalPressureIn:          b.TotalPressureIn,
		TotalPressureOut:         b.TotalPressureOut,
		TotalTempIn:              b.TotalTempIn,
		TotalTempOut:             b.TotalTempOut,
		StaticTempIn:             b.StaticTempIn,
		StaticTempOut:            b.StaticTempOut,
	}
	if b.Extrema != nil {
		m.Extrema = &compute.Extrema{Max: b.Extrema.Max, Min: b.Extrema.Min, Avg: b.Extrema.Avg}
	}
	return m
}

// toResultBody maps computed metrics to their JSON representation.
func toResultBody(r compute.Metrics) ResultBody {
	return ResultBody{
		Name:                    r.Name,
		PressureRecovery:        r.PressureRecovery,
		KineticEnergyEfficiency: r.KineticEnergyEfficiency,
		AdiabaticEfficiency:     r.AdiabaticCompressionEfficiency,
		DistortionIndex:         r.DistortionIndex,
		ShockEfficiency:         r.ShockCompressionEfficiency,
	}
}
