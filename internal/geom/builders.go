package geom

import (
	"math"

	"github.com/flowlab/panelflow/internal/panel"
)

// Panelize constructs one panel per consecutive point pair: given N+1
// ordered boundary points, panel k spans (x[k],y[k])-(x[k+1],y[k+1]).
// The traversal order fixes the outward-normal sign for the whole array.
func Panelize(x, y []float64) (*panel.Array, error) {
	if len(x) != len(y) {
		return nil, panel.ErrLengthMismatch
	}
	if len(x) < 2 {
		return nil, panel.ErrTooFewPoints
	}

	n := len(x) - 1
	x1 := make([]float64, n)
	y1 := make([]float64, n)
	x2 := make([]float64, n)
	y2 := make([]float64, n)
	for k := 0; k < n; k++ {
		x1[k] = x[k]
		y1[k] = y[k]
		x2[k] = x[k+1]
		y2[k] = y[k+1]
	}
	return panel.NewArray(x1, y1, x2, y2)
}

// Circle returns the unit circle split into n panels, traversed
// counter-clockwise from (1, 0).
func Circle(n int) (*panel.Array, error) {
	x, y := closedLoop(n, func(theta float64) (float64, float64) {
		return math.Cos(theta), math.Sin(theta)
	})
	return Panelize(x, y)
}

// Ellipse returns an ellipse of unit semi-chord and thickness-to-chord ratio
// tc, centered at (xcen, ycen), split into n panels counter-clockwise.
func Ellipse(n int, tc, xcen, ycen float64) (*panel.Array, error) {
	x, y := closedLoop(n, func(theta float64) (float64, float64) {
		return xcen + math.Cos(theta), ycen + tc*math.Sin(theta)
	})
	return Panelize(x, y)
}

// JoukowskiFoil returns a Joukowski foil with n panels: the conformal image
// of a circle passing through (1, 0) centered at (xcen, ycen). The traversal
// starts and ends at the sharp trailing edge, the image of (1, 0), so the
// trailing-edge panel pair is (0, n-1).
func JoukowskiFoil(n int, xcen, ycen float64) (*panel.Array, error) {
	radius := math.Hypot(1-xcen, -ycen)
	theta0 := math.Atan2(-ycen, 1-xcen)

	x, y := closedLoop(n, func(theta float64) (float64, float64) {
		cx := xcen + radius*math.Cos(theta0+theta)
		cy := ycen + radius*math.Sin(theta0+theta)
		r2 := cx*cx + cy*cy
		return 0.5 * cx * (1 + 1/r2), 0.5 * cy * (1 - 1/r2)
	})
	return Panelize(x, y)
}

// Concatenate joins panel arrays into one multi-body array. Trailing-edge
// index pairs declared against an input remain valid after translating by
// that input's panel offset in the merged sequence.
func Concatenate(arrays ...*panel.Array) (*panel.Array, error) {
	return panel.Concatenate(arrays...)
}

// closedLoop samples a parametric boundary at n+1 equispaced parameter
// values over one full turn, pinning the last point to the first so the
// body is detected as closed.
func closedLoop(n int, at func(theta float64) (float64, float64)) (x, y []float64) {
	x = make([]float64, n+1)
	y = make([]float64, n+1)
	for k := 0; k < n; k++ {
		x[k], y[k] = at(2 * math.Pi * float64(k) / float64(n))
	}
	x[n], y[n] = x[0], y[0]
	return x, y
}
