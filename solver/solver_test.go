package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Workers = 2
	return cfg
}

func TestComputeFlowFieldShape(t *testing.T) {
	s := New("4412", 6, 1e6, testConfig())
	res, err := s.ComputeFlowField(20)
	require.NoError(t, err)
	assert.Len(t, res.Grid.X, 400)
	assert.Len(t, res.Grid.Y, 400)
	assert.Len(t, res.Velocity.U, 400)
	assert.Len(t, res.Velocity.V, 400)
	assert.Len(t, res.Cp.Values, 400)
}

// With g = 9 the lattice contains the vortex center (0.25, 0) exactly; the
// regularization must keep the velocity finite there.
func TestVortexCenterRegularized(t *testing.T) {
	s := New("4412", 6, 1e6, testConfig())
	res, err := s.ComputeFlowField(9)
	require.NoError(t, err)

	x, y, err := res.Grid.At(3, 4)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, x, 1e-12)
	assert.InDelta(t, 0.0, y, 1e-12)

	for idx := range res.Velocity.U {
		assert.False(t, math.IsNaN(res.Velocity.U[idx]) || math.IsInf(res.Velocity.U[idx], 0))
		assert.False(t, math.IsNaN(res.Velocity.V[idx]) || math.IsInf(res.Velocity.V[idx], 0))
		assert.False(t, math.IsNaN(res.Cp.Values[idx]) || math.IsInf(res.Cp.Values[idx], 0))
	}

	u, v := vortexInduced(vortexX, vortexY)
	assert.Zero(t, u)
	assert.Zero(t, v)
}

func TestFarFieldRecovery(t *testing.T) {
	alpha := 6 * math.Pi / 180
	uInf, vInf := math.Cos(alpha), math.Sin(alpha)

	uv, vv := vortexInduced(1e6, -1e6)
	u := uInf + uv
	v := vInf + vv
	assert.InDelta(t, uInf, u, 1e-6)
	assert.InDelta(t, vInf, v, 1e-6)
	assert.InDelta(t, 0.0, 1-(u*u+v*v), 1e-6)
}

func TestComputeFlowFieldIdempotent(t *testing.T) {
	s := New("4412", 6, 1e6, testConfig())
	a, err := s.ComputeFlowField(33)
	require.NoError(t, err)
	b, err := s.ComputeFlowField(33)
	require.NoError(t, err)
	assert.Equal(t, a.Velocity.U, b.Velocity.U)
	assert.Equal(t, a.Velocity.V, b.Velocity.V)
	assert.Equal(t, a.Cp.Values, b.Cp.Values)
}

func TestInvalidGridResolution(t *testing.T) {
	s := New("4412", 6, 1e6, testConfig())
	for _, g := range []int{0, -3} {
		_, err := s.ComputeFlowField(g)
		assert.ErrorIs(t, err, ErrInvalidGridResolution, "g=%d", g)
	}
}

func TestGridResolutionLimit(t *testing.T) {
	cfg := testConfig()
	cfg.MaxGridRes = 64
	s := New("4412", 6, 1e6, cfg)
	_, err := s.ComputeFlowField(65)
	assert.ErrorIs(t, err, ErrGridResolutionLimit)
	_, err = s.ComputeFlowField(64)
	assert.NoError(t, err)
}

func TestZeroAlphaFreestream(t *testing.T) {
	s := New("0012", 0, 1e6, testConfig())
	res, err := s.ComputeFlowField(9)
	require.NoError(t, err)

	// far corner of the domain, weak vortex influence only
	u, v, err := res.Velocity.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, u, 0.5)
	assert.NotZero(t, v) // induced swirl is present even at alpha = 0
}

func TestReynoldsPassthrough(t *testing.T) {
	s := New("4412", 6, 1.2e6, testConfig())
	assert.Equal(t, 1.2e6, s.Reynolds())
}

func TestSectionGeometry(t *testing.T) {
	s := New("4412", 6, 1e6, testConfig())
	pr, su, err := s.SectionGeometry(100)
	require.NoError(t, err)
	assert.Len(t, pr.X, 100)
	assert.Len(t, su.XU, 100)
}

func TestRunStoresResultAndSignals(t *testing.T) {
	cfg := testConfig()
	cfg.GridRes = 16
	s := New("4412", 6, 1e6, cfg)
	require.Nil(t, s.LastResult())
	require.NoError(t, s.Run())
	<-s.GetCalcHub().ResultDone
	res := s.LastResult()
	require.NotNil(t, res)
	assert.Len(t, res.Cp.Values, 256)
}
