package compute

import "math"

// Compute derives the five performance metrics for one measurement.
//
// Pure and stateless: the output is a function of the input alone, and every
// call is independent, so batches may be computed concurrently without
// coordination.
//
// Guard policy: a metric whose denominator or precondition is degenerate
// reports 0; the other metrics are unaffected. Compute never returns an
// error — physical-plausibility validation is the caller's concern.
func Compute(m Measurement) Metrics {
	out := Metrics{Name: m.Name}

	// 1. Total pressure recovery π = Pt,e / Pt,i.
	if m.TotalPressureIn != 0 {
		out.PressureRecovery = m.TotalPressureOut / m.TotalPressureIn
	}

	// 2. Kinetic energy efficiency ηKE.
	var keEff float64
	if m.Mach > 0 && m.Gamma > 1 && m.TotalPressureOut > 0 {
		base := m.TotalPressureIn / m.TotalPressureOut
		if base > 0 {
			exponent := (m.Gamma - 1) / m.Gamma
			tempRatio := 1.0
			if m.TotalTempIn != 0 {
				tempRatio = m.TotalTempOut / m.TotalTempIn
			}
			bracket := tempRatio*math.Pow(base, exponent) - 1
			keEff = 1 - (1/(m.Gamma-1))*(1/(m.Mach*m.Mach))*bracket
		}
	}
	out.KineticEnergyEfficiency = keEff * 100

	// 3. Adiabatic compression efficiency ηcomp. Reuses ηKE even when ηKE's
	// own preconditions failed and it defaulted to 0 — the two formulas are
	// coupled on purpose.
	staticTempRatio := 1.0
	if m.StaticTempIn != 0 {
		staticTempRatio = m.StaticTempOut / m.StaticTempIn
	}
	if staticTempRatio-1 != 0 {
		num := (m.Gamma - 1) * m.Mach * m.Mach / 2
		adEff := 1 - num*((1-keEff)/(staticTempRatio-1))
		out.AdiabaticCompressionEfficiency = adEff * 100
	}

	// 4. Distortion index DI, only when the exit-plane extrema were measured.
	if m.Extrema != nil && m.Extrema.Avg > 0 {
		out.DistortionIndex = (m.Extrema.Max - m.Extrema.Min) / m.Extrema.Avg
	}

	// 5. Shock compression efficiency ηshock = π / (Pt,e/Pt,i)th.
	if m.TheoreticalPressureRatio > 0 {
		out.ShockCompressionEfficiency = out.PressureRecovery / m.TheoreticalPressureRatio * 100
	}

	return out
}

// ComputeBatch applies Compute to each measurement in order. The result has
// the same length and ordering as the input; records do not interact.
func ComputeBatch(ms []Measurement) []Metrics {
	out := make([]Metrics, len(ms))
	for i, m := range ms {
		out[i] = Compute(m)
	}
	return out
}
