package compute

// Extrema holds the total-pressure distribution extrema at the inlet exit
// plane. It is optional on a Measurement: when absent, the distortion index
// is not computed and reports 0.
type Extrema struct {
	// Max and Min are the highest and lowest total pressures observed across
	// the exit plane, in the same units as the Measurement pressures.
	Max float64
	Min float64

	// Avg is the area-averaged total pressure across the exit plane.
	Avg float64
}

// Measurement is one inlet configuration's raw flow and thermodynamic inputs.
// It is immutable per calculation: Compute reads it once and retains nothing.
//
// Pressures must share one consistent unit (e.g. Pa) and temperatures another
// (e.g. K); the formulas only ever use ratios, so the units themselves are
// never interpreted.
type Measurement struct {
	// Name identifies the inlet for display and grouping only. The calculator
	// enforces no uniqueness.
	Name string

	// Gamma is the ratio of specific heats. Physically > 1.
	Gamma float64

	// Mach is the inlet (freestream) Mach number. Physically > 0.
	Mach float64

	// TheoreticalPressureRatio is the expected total-pressure ratio across the
	// inlet at the design shock condition, typically in (0, 1].
	TheoreticalPressureRatio float64

	// TotalPressureIn and TotalPressureOut are the stagnation pressures
	// upstream and downstream of the inlet.
	TotalPressureIn  float64
	TotalPressureOut float64

	// TotalTempIn and TotalTempOut are the stagnation temperatures upstream
	// and downstream.
	TotalTempIn  float64
	TotalTempOut float64

	// StaticTempIn and StaticTempOut are the static temperatures upstream
	// and downstream.
	StaticTempIn  float64
	StaticTempOut float64

	// Extrema is the optional exit-plane pressure distribution. Nil means
	// the distortion index is not tracked for this inlet.
	Extrema *Extrema
}

// Metrics is the derived performance record for one inlet. It has no identity
// beyond the Name copied from its source Measurement.
type Metrics struct {
	// Name is copied verbatim from the source measurement.
	Name string

	// PressureRecovery is π = Pt,e / Pt,i, a raw ratio. Conceptually [0, 1]
	// for a real inlet, but not clamped.
	PressureRecovery float64

	// KineticEnergyEfficiency is ηKE as a percentage (ratio × 100), unclamped.
	KineticEnergyEfficiency float64

	// AdiabaticCompressionEfficiency is ηcomp as a percentage, unclamped.
	AdiabaticCompressionEfficiency float64

	// DistortionIndex is DI = (Pt,max − Pt,min) / Pt,avg, a raw ratio.
	// 0 when the measurement carries no extrema. Conceptually ≥ 0.
	DistortionIndex float64

	// ShockCompressionEfficiency is ηshock as a percentage, unclamped.
	ShockCompressionEfficiency float64
}
