// Package aero derives aerodynamic quantities from a solved panel array.
package aero

import (
	"math"

	"github.com/flowlab/panelflow/internal/panel"
)

// Circulation returns the total bound circulation of the sheet,
// sum(gamma_i * 2*S_i), positive in the lifting (clockwise) sense for a
// counter-clockwise traversal.
func Circulation(arr *panel.Array) float64 {
	total := 0.0
	for i := 0; i < arr.Len(); i++ {
		total += arr.Gamma(i) * 2 * arr.Geometry(i).S
	}
	return total
}

// LiftCoefficient returns C_L = 2*Circulation/chord for a unit free stream,
// by the Kutta-Joukowski theorem.
func LiftCoefficient(arr *panel.Array, chord float64) float64 {
	return 2 * Circulation(arr) / chord
}

// Chord returns the body extent along x, the reference length for force
// coefficients.
func Chord(arr *panel.Array) float64 {
	minX := math.Inf(1)
	maxX := math.Inf(-1)
	for i := 0; i < arr.Len(); i++ {
		g := arr.Geometry(i)
		minX = math.Min(minX, math.Min(g.X1, g.X2))
		maxX = math.Max(maxX, math.Max(g.X1, g.X2))
	}
	return maxX - minX
}

// ThicknessRatio returns the body extent along y divided by the chord.
func ThicknessRatio(arr *panel.Array) float64 {
	minY := math.Inf(1)
	maxY := math.Inf(-1)
	for i := 0; i < arr.Len(); i++ {
		g := arr.Geometry(i)
		minY = math.Min(minY, math.Min(g.Y1, g.Y2))
		maxY = math.Max(maxY, math.Max(g.Y1, g.Y2))
	}
	return (maxY - minY) / Chord(arr)
}

// PressureCoefficients returns the surface pressure coefficient at each
// panel center, Cp = 1 - gamma^2: the exterior tangential speed equals the
// local sheet strength for a no-slip interior.
func PressureCoefficients(arr *panel.Array) []float64 {
	cp := make([]float64, arr.Len())
	for i := range cp {
		g := arr.Gamma(i)
		cp[i] = 1 - g*g
	}
	return cp
}

// JoukowskiLift returns the thin-foil analytic lift coefficient of a
// Joukowski section, 2*pi*(1 + 4/(3*sqrt(3))*tc)*sin(alpha).
func JoukowskiLift(tc, alpha float64) float64 {
	return 2 * math.Pi * (1 + 4.0/(3.0*math.Sqrt(3))*tc) * math.Sin(alpha)
}
