package wdt

import "github.com/veyrin/heatfield/container"

// UnitCost charges 1 for every step regardless of pixel or direction.
// Under Conn4 the resulting field is the L1 (Manhattan) distance to the
// nearest foreground pixel; under Conn8 it is the Chebyshev distance.
type UnitCost[T container.Scalar] struct{}

// Cost implements CostOracle.
func (UnitCost[T]) Cost(_, _, _ int) T { return 1 }

// ChamferCost charges Orthogonal for axis-aligned steps and Diagonal
// for diagonal steps. The classic float weights are 1 and √2; integer
// fields typically use the 2/3 or 5/7 chamfer approximations.
type ChamferCost[T container.Scalar] struct {
	Orthogonal T
	Diagonal   T
}

// Cost implements CostOracle.
func (c ChamferCost[T]) Cost(_, dx, dy int) T {
	if dx != 0 && dy != 0 {
		return c.Diagonal
	}

	return c.Orthogonal
}

// AxisCost charges different weights for horizontal and vertical
// movement; a diagonal step pays for both components. Useful on sensors
// whose row and column pitch differ.
type AxisCost[T container.Scalar] struct {
	Horizontal T
	Vertical   T
}

// Cost implements CostOracle.
func (c AxisCost[T]) Cost(_, dx, dy int) T {
	switch {
	case dx != 0 && dy != 0:
		return c.Horizontal + c.Vertical
	case dx != 0:
		return c.Horizontal
	default:
		return c.Vertical
	}
}

// GradientCost is the metric the contact finder feeds the transform: a
// chamfer base step plus Alpha times the absolute heat difference along
// the step. Crossing the saddle between two touching contacts climbs a
// steep heat gradient, so the field grows faster there and downstream
// labeling keeps the fingers apart.
//
// Heat must share the geometry of the transform's output image; the
// driver guarantees both endpoints of every queried step are in bounds.
type GradientCost[T container.Scalar] struct {
	Heat       *container.Image[T]
	Orthogonal T
	Diagonal   T
	Alpha      T
}

// Cost implements CostOracle.
func (g GradientCost[T]) Cost(i, dx, dy int) T {
	base := g.Orthogonal
	if dx != 0 && dy != 0 {
		base = g.Diagonal
	}
	a := g.Heat.AtIndex(i)
	b := g.Heat.AtIndex(i + dy*g.Heat.Stride() + dx)
	if a < b {
		a, b = b, a
	}

	return base + g.Alpha*(a-b)
}
