package compute

import (
	"math"
	"testing"
)

// almostEqual returns true if a and b are within epsilon of each other.
func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// reference returns the worked example measurement: a Mach-2 inlet with a
// 0.98 design pressure ratio and the exit-plane extrema tracked.
func reference() Measurement {
	return Measurement{
		Name:                     "Inlet 1",
		Gamma:                    1.4,
		Mach:                     2.0,
		TheoreticalPressureRatio: 0.98,
		TotalPressureIn:          101325.0,
		TotalPressureOut:         95000.0,
		TotalTempIn:              300.0,
		TotalTempOut:             350.0,
		StaticTempIn:             280.0,
		StaticTempOut:            330.0,
		Extrema:                  &Extrema{Max: 98000.0, Min: 92000.0, Avg: 95000.0},
	}
}

func TestCompute_Reference(t *testing.T) {
	got := Compute(reference())

	// π = 95000/101325 = 0.93758
	if !almostEqual(got.PressureRecovery, 0.9376, 0.0001) {
		t.Errorf("PressureRecovery = %.5f, want ≈0.9376", got.PressureRecovery)
	}
	// ηshock = 0.93758/0.98 × 100 = 95.67%
	if !almostEqual(got.ShockCompressionEfficiency, 95.67, 0.01) {
		t.Errorf("ShockCompressionEfficiency = %.4f, want ≈95.67", got.ShockCompressionEfficiency)
	}
	// base = 101325/95000 = 1.06658, exponent = 0.4/1.4
	// bracket = (350/300)·1.06658^0.28571 − 1 = 0.18835
	// ηKE = 1 − (1/0.4)(1/4)(0.18835) = 0.88228 → 88.23%
	if !almostEqual(got.KineticEnergyEfficiency, 88.228, 0.01) {
		t.Errorf("KineticEnergyEfficiency = %.4f, want ≈88.228", got.KineticEnergyEfficiency)
	}
	// staticTempRatio = 330/280 = 1.17857
	// ηcomp = 1 − (0.4·4/2)·((1−0.88228)/0.17857) = 0.47262 → 47.26%
	if !almostEqual(got.AdiabaticCompressionEfficiency, 47.262, 0.01) {
		t.Errorf("AdiabaticCompressionEfficiency = %.4f, want ≈47.262", got.AdiabaticCompressionEfficiency)
	}
	// DI = (98000−92000)/95000 = 0.06316
	if !almostEqual(got.DistortionIndex, 0.0632, 0.0001) {
		t.Errorf("DistortionIndex = %.5f, want ≈0.0632", got.DistortionIndex)
	}
	if got.Name != "Inlet 1" {
		t.Errorf("Name = %q, want %q", got.Name, "Inlet 1")
	}
}

func TestCompute_Guards(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Measurement)
		check  func(t *testing.T, got Metrics)
	}{
		{
			name:   "zero inlet pressure zeroes recovery",
			mutate: func(m *Measurement) { m.TotalPressureIn = 0 },
			check: func(t *testing.T, got Metrics) {
				if got.PressureRecovery != 0 {
					t.Errorf("PressureRecovery = %.5f, want 0", got.PressureRecovery)
				}
				// ηshock is π/0.98 = 0/0.98 — a real division, not a guard.
				if got.ShockCompressionEfficiency != 0 {
					t.Errorf("ShockCompressionEfficiency = %.5f, want 0", got.ShockCompressionEfficiency)
				}
			},
		},
		{
			name:   "zero theoretical ratio zeroes shock efficiency only",
			mutate: func(m *Measurement) { m.TheoreticalPressureRatio = 0 },
			check: func(t *testing.T, got Metrics) {
				if got.ShockCompressionEfficiency != 0 {
					t.Errorf("ShockCompressionEfficiency = %.5f, want 0", got.ShockCompressionEfficiency)
				}
				if got.PressureRecovery == 0 {
					t.Error("PressureRecovery zeroed by an unrelated guard")
				}
			},
		},
		{
			name:   "negative theoretical ratio zeroes shock efficiency",
			mutate: func(m *Measurement) { m.TheoreticalPressureRatio = -0.5 },
			check: func(t *testing.T, got Metrics) {
				if got.ShockCompressionEfficiency != 0 {
					t.Errorf("ShockCompressionEfficiency = %.5f, want 0", got.ShockCompressionEfficiency)
				}
			},
		},
		{
			name:   "equal static temperatures zero adiabatic efficiency",
			mutate: func(m *Measurement) { m.StaticTempOut = m.StaticTempIn },
			check: func(t *testing.T, got Metrics) {
				if got.AdiabaticCompressionEfficiency != 0 {
					t.Errorf("AdiabaticCompressionEfficiency = %.5f, want 0", got.AdiabaticCompressionEfficiency)
				}
				if got.KineticEnergyEfficiency == 0 {
					t.Error("KineticEnergyEfficiency zeroed by an unrelated guard")
				}
			},
		},
		{
			name:   "zero mach zeroes kinetic energy efficiency",
			mutate: func(m *Measurement) { m.Mach = 0 },
			check: func(t *testing.T, got Metrics) {
				if got.KineticEnergyEfficiency != 0 {
					t.Errorf("KineticEnergyEfficiency = %.5f, want 0", got.KineticEnergyEfficiency)
				}
			},
		},
		{
			name:   "gamma at 1 zeroes kinetic energy efficiency",
			mutate: func(m *Measurement) { m.Gamma = 1 },
			check: func(t *testing.T, got Metrics) {
				if got.KineticEnergyEfficiency != 0 {
					t.Errorf("KineticEnergyEfficiency = %.5f, want 0", got.KineticEnergyEfficiency)
				}
			},
		},
		{
			name:   "zero exit pressure zeroes kinetic energy efficiency",
			mutate: func(m *Measurement) { m.TotalPressureOut = 0 },
			check: func(t *testing.T, got Metrics) {
				if got.KineticEnergyEfficiency != 0 {
					t.Errorf("KineticEnergyEfficiency = %.5f, want 0", got.KineticEnergyEfficiency)
				}
			},
		},
		{
			name:   "negative base skips the kinetic energy formula",
			mutate: func(m *Measurement) { m.TotalPressureIn = -101325 },
			check: func(t *testing.T, got Metrics) {
				if got.KineticEnergyEfficiency != 0 {
					t.Errorf("KineticEnergyEfficiency = %.5f, want 0", got.KineticEnergyEfficiency)
				}
			},
		},
		{
			name:   "zero average pressure zeroes distortion",
			mutate: func(m *Measurement) { m.Extrema.Avg = 0 },
			check: func(t *testing.T, got Metrics) {
				if got.DistortionIndex != 0 {
					t.Errorf("DistortionIndex = %.5f, want 0", got.DistortionIndex)
				}
			},
		},
		{
			name:   "negative average pressure zeroes distortion",
			mutate: func(m *Measurement) { m.Extrema.Avg = -95000 },
			check: func(t *testing.T, got Metrics) {
				if got.DistortionIndex != 0 {
					t.Errorf("DistortionIndex = %.5f, want 0", got.DistortionIndex)
				}
			},
		},
		{
			name:   "nil extrema zeroes distortion",
			mutate: func(m *Measurement) { m.Extrema = nil },
			check: func(t *testing.T, got Metrics) {
				if got.DistortionIndex != 0 {
					t.Errorf("DistortionIndex = %.5f, want 0", got.DistortionIndex)
				}
				if got.PressureRecovery == 0 || got.KineticEnergyEfficiency == 0 {
					t.Error("missing extrema affected unrelated metrics")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := reference()
			tc.mutate(&m)
			tc.check(t, Compute(m))
		})
	}
}

// The adiabatic formula reuses ηKE even when ηKE's own preconditions failed
// and it defaulted to 0. With mach = 0 the (γ−1)M²/2 factor also vanishes, so
// ηcomp collapses to exactly 1 — verify the formula still ran rather than
// being short-circuited.
func TestCompute_AdiabaticUsesDefaultedKE(t *testing.T) {
	m := reference()
	m.Mach = 0

	got := Compute(m)
	if got.KineticEnergyEfficiency != 0 {
		t.Fatalf("KineticEnergyEfficiency = %.5f, want 0", got.KineticEnergyEfficiency)
	}
	if !almostEqual(got.AdiabaticCompressionEfficiency, 100, 1e-9) {
		t.Errorf("AdiabaticCompressionEfficiency = %.5f, want 100", got.AdiabaticCompressionEfficiency)
	}
}

func TestCompute_RecoveryScaleInvariant(t *testing.T) {
	for _, scale := range []float64{0.001, 0.5, 2, 1000} {
		m := reference()
		m.TotalPressureIn *= scale
		m.TotalPressureOut *= scale

		got := Compute(m)
		want := Compute(reference())
		if !almostEqual(got.PressureRecovery, want.PressureRecovery, 1e-12) {
			t.Errorf("scale %g: PressureRecovery = %.12f, want %.12f",
				scale, got.PressureRecovery, want.PressureRecovery)
		}
	}
}

func TestCompute_ZeroTotalTempInDefaultsRatio(t *testing.T) {
	m := reference()
	m.TotalTempIn = 0

	// tempRatio falls back to 1: bracket = base^exponent − 1.
	base := m.TotalPressureIn / m.TotalPressureOut
	bracket := math.Pow(base, 0.4/1.4) - 1
	want := (1 - (1/0.4)*(1.0/4.0)*bracket) * 100

	got := Compute(m)
	if !almostEqual(got.KineticEnergyEfficiency, want, 1e-9) {
		t.Errorf("KineticEnergyEfficiency = %.6f, want %.6f", got.KineticEnergyEfficiency, want)
	}
}

func TestComputeBatch_OrderAndLength(t *testing.T) {
	a := reference()
	b := reference()
	b.Name = "Inlet 2"
	b.TotalPressureOut = 90000
	c := reference()
	c.Name = "Inlet 3"
	c.TotalPressureIn = 0

	got := ComputeBatch([]Measurement{a, b, c})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []Metrics{Compute(a), Compute(b), Compute(c)} {
		if got[i] != want {
			t.Errorf("batch[%d] = %+v, want %+v", i, got[i], want)
		}
	}
}

func TestComputeBatch_Empty(t *testing.T) {
	if got := ComputeBatch(nil); len(got) != 0 {
		t.Errorf("ComputeBatch(nil) len = %d, want 0", len(got))
	}
}
