package geometry

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDesignation reports a code that is not exactly 4 numeric
	// characters or that decodes to a parameter outside its physical range.
	ErrInvalidDesignation = errors.New("geometry: invalid 4-digit designation")

	// ErrDegenerateCamber reports a cambered section whose maximum-camber
	// position is zero; the forward camber branch divides by p².
	ErrDegenerateCamber = errors.New("geometry: camber position is zero for a cambered section")

	// ErrInvalidPointCount reports a chord sample count below 2.
	ErrInvalidPointCount = errors.New("geometry: chord point count must be at least 2")
)

// Params holds the three section parameters decoded from a NACA 4-digit
// designation.
type Params struct {
	M float64 // maximum camber, fraction of chord
	P float64 // chordwise position of maximum camber
	T float64 // maximum thickness, fraction of chord
}

// Profile holds chord-indexed camber, thickness, and slope sequences.
// All slices share the length passed to Generate.
type Profile struct {
	X     []float64 // chord stations, strictly increasing over [0, 1]
	Yc    []float64 // camber ordinate
	Yt    []float64 // thickness half-width
	Theta []float64 // local camber-line slope angle, atan(dyc/dx)
}

// Surface holds the upper and lower surface coordinates obtained by
// offsetting the camber line perpendicular to its local slope.
type Surface struct {
	XU, YU []float64
	XL, YL []float64
}

// ParseDesignation decodes a 4-digit designation: m = d1/100, p = d2/10,
// t = d34/100.
func ParseDesignation(code string) (Params, error) {
	if len(code) != 4 {
		return Params{}, fmt.Errorf("%w: %q", ErrInvalidDesignation, code)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return Params{}, fmt.Errorf("%w: %q", ErrInvalidDesignation, code)
		}
	}
	m := float64(code[0]-'0') / 100
	p := float64(code[1]-'0') / 10
	t := float64(10*(code[2]-'0')+(code[3]-'0')) / 100
	if t <= 0 {
		return Params{}, fmt.Errorf("%w: %q decodes to zero thickness", ErrInvalidDesignation, code)
	}
	if m > 0 && p == 0 {
		return Params{}, fmt.Errorf("%w: %q", ErrDegenerateCamber, code)
	}
	return Params{M: m, P: p, T: t}, nil
}

// Generate decodes code and produces the section profile and surface
// coordinates over n chord stations. Pure function of (code, n).
func Generate(code string, n int) (*Profile, *Surface, error) {
	par, err := ParseDesignation(code)
	if err != nil {
		return nil, nil, err
	}
	if n < 2 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInvalidPointCount, n)
	}

	pr := &Profile{
		X:     linspace(0, 1, n),
		Yc:    make([]float64, n),
		Yt:    make([]float64, n),
		Theta: make([]float64, n),
	}
	for i, x := range pr.X {
		yc, dyc := camberAt(par, x)
		pr.Yc[i] = yc
		pr.Yt[i] = thicknessAt(par.T, x)
		pr.Theta[i] = math.Atan(dyc)
	}

	su := &Surface{
		XU: make([]float64, n),
		YU: make([]float64, n),
		XL: make([]float64, n),
		YL: make([]float64, n),
	}
	for i, x := range pr.X {
		sin, cos := math.Sin(pr.Theta[i]), math.Cos(pr.Theta[i])
		su.XU[i] = x - pr.Yt[i]*sin
		su.YU[i] = pr.Yc[i] + pr.Yt[i]*cos
		su.XL[i] = x + pr.Yt[i]*sin
		su.YL[i] = pr.Yc[i] - pr.Yt[i]*cos
	}
	return pr, su, nil
}

// thicknessAt evaluates the 4-digit thickness polynomial. yt(0) = 0 and
// yt ≥ 0 over the whole chord for any t > 0.
func thicknessAt(t, x float64) float64 {
	return 5 * t * (0.2969*math.Sqrt(x) - 0.1260*x - 0.3516*x*x +
		0.2843*x*x*x - 0.1015*x*x*x*x)
}

// camberAt evaluates the camber ordinate and its slope at one station.
// The piecewise formulas split exactly at x = p and agree there. Symmetric
// sections short-circuit so the forward branch never divides by p².
func camberAt(par Params, x float64) (yc, dyc float64) {
	if par.M == 0 {
		return 0, 0
	}
	m, p := par.M, par.P
	if x <= p {
		yc = m / (p * p) * (2*p*x - x*x)
		dyc = 2 * m / (p * p) * (p - x)
		return yc, dyc
	}
	q := 1 - p
	yc = m / (q * q) * ((1 - 2*p) + 2*p*x - x*x)
	dyc = 2 * m / (q * q) * (p - x)
	return yc, dyc
}

func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	xs[n-1] = hi
	return xs
}
