// Package compute derives inlet performance metrics from raw flow and
// thermodynamic measurements.
//
// metrics.go provides the pure Compute(Measurement) function that applies the
// five closed-form efficiency formulas: total pressure recovery (π),
// kinetic-energy efficiency (ηKE), adiabatic compression efficiency (ηcomp),
// distortion index (DI), and shock compression efficiency (ηshock).
//
// Degenerate inputs (zero denominators, non-physical gamma or Mach) never
// raise an error — the affected metric degrades to 0 while the remaining
// metrics compute independently. Percent-valued metrics are deliberately
// unclamped and can exceed 100 or go negative for non-physical input.
package compute
