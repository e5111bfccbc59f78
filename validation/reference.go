// Package validation holds fixture polars for comparing solver output
// against published NACA 4412 data. Everything here is static test data:
// none of it is computed by the solver, and the "simulated" polar is a
// synthetic perturbation of the reference, not a solver result.
package validation

// Polar is a lift/drag table indexed by angle of attack in degrees.
type Polar struct {
	AlphaDeg []float64
	Cl       []float64
	Cd       []float64
}

// ReferencePolar returns the NACA 4412 polar at Re = 1e6, transcribed from
// XFOIL runs published on AirfoilTools.
func ReferencePolar() Polar {
	return Polar{
		AlphaDeg: []float64{-4, -2, 0, 2, 4, 6, 8, 10, 12},
		Cl:       []float64{0.05, 0.28, 0.51, 0.73, 0.95, 1.15, 1.34, 1.48, 1.58},
		Cd:       []float64{0.007, 0.0065, 0.007, 0.008, 0.0095, 0.011, 0.014, 0.019, 0.026},
	}
}

// SyntheticSolverPolar derives a plausible "solver run" from the reference
// by a fixed perturbation (Cl·1.02 − 0.02, Cd·0.95 + 0.002). Fixture data
// for exercising comparison plots only.
func SyntheticSolverPolar() Polar {
	ref := ReferencePolar()
	sim := Polar{
		AlphaDeg: append([]float64(nil), ref.AlphaDeg...),
		Cl:       make([]float64, len(ref.Cl)),
		Cd:       make([]float64, len(ref.Cd)),
	}
	for i := range ref.Cl {
		sim.Cl[i] = ref.Cl[i]*1.02 - 0.02
		sim.Cd[i] = ref.Cd[i]*0.95 + 0.002
	}
	return sim
}
