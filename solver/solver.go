// Package solver computes an approximate two-dimensional inviscid flow
// field around an airfoil section: a unit freestream at angle of attack
// superposed with a single regularized point vortex at the quarter-chord.
// The circulation is a fixed lift-equivalent constant, not solved from the
// section shape; no boundary condition is enforced on the body surface.
package solver

import (
	"errors"
	"fmt"
	"math"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/mrashidii/Electric-Propeller-CFD-Analysis/field"
	"github.com/mrashidii/Electric-Propeller-CFD-Analysis/geometry"
)

// Sampling domain around the section, independent of its true extent.
const (
	XMin = -0.5
	XMax = 1.5
	YMin = -0.8
	YMax = 0.8
)

const (
	// lift-equivalent circulation for the nominal operating angle
	gamma = 2.5
	// regularization added to r² so the induced velocity stays finite at
	// the vortex center
	epsilon = 0.05
	// vortex sits at the quarter-chord
	vortexX = 0.25
	vortexY = 0.0
)

var (
	// ErrInvalidGridResolution reports a non-positive per-axis sample count.
	ErrInvalidGridResolution = errors.New("solver: grid resolution must be positive")

	// ErrGridResolutionLimit reports a resolution above the configured cap.
	ErrGridResolutionLimit = errors.New("solver: grid resolution exceeds configured limit")
)

// Result bundles the arrays of one solve invocation.
type Result struct {
	Grid     *field.Grid
	Velocity *field.VectorField
	Cp       *field.ScalarField
}

// Solver evaluates the flow field for one operating condition. Each solve
// is a pure function of the inputs; the stored last result only backs the
// serving layer's push loop.
type Solver struct {
	code     string
	alpha    float64 // radians
	reynolds float64 // stored for the caller, no viscous correction applies

	cfg     Config
	calcHub *CalcHub
	e       *executor

	mu   sync.Mutex
	last *Result
}

// New builds a solver for the given designation and angle of attack in
// degrees. Reynolds is kept as an inert passthrough.
func New(code string, alphaDeg, reynolds float64, cfg Config) *Solver {
	log.WithFields(log.Fields{
		"code":     code,
		"alphaDeg": alphaDeg,
		"reynolds": reynolds,
	}).Info("initializing solver")
	return &Solver{
		code:     code,
		alpha:    alphaDeg * math.Pi / 180,
		reynolds: reynolds,
		cfg:      cfg,
		calcHub:  NewCalcHub(),
		e:        newExecutor(cfg.Workers),
	}
}

func (s *Solver) GetCalcHub() *CalcHub { return s.calcHub }

func (s *Solver) Code() string      { return s.code }
func (s *Solver) Alpha() float64    { return s.alpha }
func (s *Solver) Reynolds() float64 { return s.reynolds }

// SectionGeometry produces the section shape for the solver's own
// designation.
func (s *Solver) SectionGeometry(n int) (*geometry.Profile, *geometry.Surface, error) {
	return geometry.Generate(s.code, n)
}

// ComputeFlowField evaluates velocity and pressure coefficient on a
// gridRes × gridRes lattice. Rows are evaluated in parallel; every cell is
// independent.
func (s *Solver) ComputeFlowField(gridRes int) (*Result, error) {
	if gridRes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGridResolution, gridRes)
	}
	if s.cfg.MaxGridRes > 0 && gridRes > s.cfg.MaxGridRes {
		return nil, fmt.Errorf("%w: %d > %d", ErrGridResolutionLimit, gridRes, s.cfg.MaxGridRes)
	}

	grid := field.NewGrid(XMin, XMax, YMin, YMax, gridRes, gridRes)
	vel := field.NewVectorField(gridRes, gridRes)
	cp := field.NewScalarField(gridRes, gridRes)

	uInf := math.Cos(s.alpha)
	vInf := math.Sin(s.alpha)

	s.e.run(gridRes, func(j int) {
		for i := 0; i < gridRes; i++ {
			idx := j*gridRes + i
			uv, vv := vortexInduced(grid.X[idx], grid.Y[idx])
			u := uInf + uv
			v := vInf + vv
			vel.U[idx] = u
			vel.V[idx] = v
			cp.Values[idx] = 1 - (u*u + v*v)
		}
	})
	return &Result{Grid: grid, Velocity: vel, Cp: cp}, nil
}

// vortexInduced evaluates the regularized point-vortex contribution at one
// sample. Finite everywhere, including exactly at the vortex center.
func vortexInduced(x, y float64) (u, v float64) {
	dx := x - vortexX
	dy := y - vortexY
	r2 := dx*dx + dy*dy
	k := gamma / (2 * math.Pi) / (r2 + epsilon)
	return k * dy, -k * dx
}

// Run performs one solve under the solver's configured resolution, stores
// the arrays for the serving layer, and signals the hub.
func (s *Solver) Run() error {
	res, err := s.ComputeFlowField(s.cfg.GridRes)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.last = res
	s.mu.Unlock()
	s.calcHub.PushSignal()
	return nil
}

// LastResult returns the arrays of the most recent Run, or nil before any.
func (s *Solver) LastResult() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
