package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/flowlab/panelflow/internal/panel"
)

// Solve assembles the boundary-condition system for arr under opts, performs
// one dense solve, and writes the resulting strengths back onto the array in
// panel order. Re-solving with a different angle of attack overwrites them.
func Solve(arr *panel.Array, opts Options) error {
	A, b, err := BuildSystem(arr, opts)
	if err != nil {
		return err
	}

	gamma, err := solveDense(A, b, opts.maxCond())
	if err != nil {
		return err
	}

	arr.SetAlpha(opts.Alpha)
	switch opts.Order {
	case panel.OrderLinear:
		return arr.SetLinearGamma(gamma)
	default:
		return arr.SetConstantGamma(gamma)
	}
}

func (o Options) maxCond() float64 {
	if o.MaxCondition > 0 {
		return o.MaxCondition
	}
	return DefaultMaxCondition
}

// solveDense performs the dense linear solve. gonum reports near-singularity
// through a mat.Condition error while still producing a solution; anything
// past the cutoff is rejected, everything else propagates as singular.
func solveDense(A *mat.Dense, b *mat.VecDense, maxCond float64) ([]float64, error) {
	var x mat.VecDense
	if err := x.SolveVec(A, b); err != nil {
		cond, ok := err.(mat.Condition)
		if !ok || math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("%w: %v", ErrSingular, err)
		}
		if float64(cond) > maxCond {
			return nil, fmt.Errorf("%w: condition number %.3g", ErrIllConditioned, float64(cond))
		}
	}

	n := b.Len()
	gamma := make([]float64, n)
	for i := 0; i < n; i++ {
		gamma[i] = x.AtVec(i)
	}
	return gamma, nil
}
