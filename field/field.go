// Package field holds the lattice value containers produced by the flow
// solver. All containers use flat backing slices indexed row-major as
// j*NumX + i, matching the (column i, row j) accessors.
package field

import "fmt"

// Grid is a rectangular sampling lattice with uniform, strictly monotonic
// axes. X is constant along columns and Y is constant along rows.
type Grid struct {
	NumX, NumY int
	Dx, Dy     float64
	X, Y       []float64
}

// NewGrid builds the full outer-product lattice of nx × ny points over the
// closed box [x0,x1] × [y0,y1]. Resolution must be positive; a single
// sample per axis sits at the box origin.
func NewGrid(x0, x1, y0, y1 float64, nx, ny int) *Grid {
	g := &Grid{
		NumX: nx,
		NumY: ny,
		X:    make([]float64, nx*ny),
		Y:    make([]float64, nx*ny),
	}
	if nx > 1 {
		g.Dx = (x1 - x0) / float64(nx-1)
	}
	if ny > 1 {
		g.Dy = (y1 - y0) / float64(ny-1)
	}
	for j := 0; j < ny; j++ {
		y := y0 + float64(j)*g.Dy
		for i := 0; i < nx; i++ {
			g.X[j*nx+i] = x0 + float64(i)*g.Dx
			g.Y[j*nx+i] = y
		}
	}
	return g
}

// At returns the sample coordinates at column i, row j.
func (g *Grid) At(i, j int) (x, y float64, err error) {
	if err := checkIndex(i, j, g.NumX, g.NumY); err != nil {
		return 0, 0, err
	}
	return g.X[j*g.NumX+i], g.Y[j*g.NumX+i], nil
}

// VectorField holds per-point velocity components on a lattice.
type VectorField struct {
	NumX, NumY int
	U, V       []float64
}

func NewVectorField(nx, ny int) *VectorField {
	return &VectorField{
		NumX: nx,
		NumY: ny,
		U:    make([]float64, nx*ny),
		V:    make([]float64, nx*ny),
	}
}

func (f *VectorField) At(i, j int) (u, v float64, err error) {
	if err := checkIndex(i, j, f.NumX, f.NumY); err != nil {
		return 0, 0, err
	}
	return f.U[j*f.NumX+i], f.V[j*f.NumX+i], nil
}

// ScalarField holds one value per lattice point.
type ScalarField struct {
	NumX, NumY int
	Values     []float64
}

func NewScalarField(nx, ny int) *ScalarField {
	return &ScalarField{
		NumX:   nx,
		NumY:   ny,
		Values: make([]float64, nx*ny),
	}
}

func (f *ScalarField) At(i, j int) (float64, error) {
	if err := checkIndex(i, j, f.NumX, f.NumY); err != nil {
		return 0, err
	}
	return f.Values[j*f.NumX+i], nil
}

func checkIndex(i, j, nx, ny int) error {
	if i < 0 || i >= nx {
		return fmt.Errorf("x index out of range, must be between 0 and %d", nx-1)
	}
	if j < 0 || j >= ny {
		return fmt.Errorf("y index out of range, must be between 0 and %d", ny-1)
	}
	return nil
}
