package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/flowlab/panelflow/internal/panel"
)

// Options configures one solve.
type Options struct {
	// Alpha is the free-stream angle of attack in radians.
	Alpha float64

	// Order selects constant- or linear-strength panels.
	Order panel.Order

	// Kutta lists trailing-edge panel index pairs. Negative indices count
	// from the end of the array. Each pair trades its two no-slip rows for
	// the trailing-edge closure: the first index's row becomes the
	// antisymmetry constraint gamma_i + gamma_j = 0 on the per-panel
	// strengths, and the second index's row keeps a no-slip equation sampled
	// at the midpoint of the gap between the two panels.
	Kutta [][2]int

	// MaxCondition bounds the acceptable condition number of the system;
	// zero means DefaultMaxCondition.
	MaxCondition float64
}

// DefaultMaxCondition is the condition-number cutoff beyond which a solve is
// rejected as ill-conditioned.
const DefaultMaxCondition = 1e12

// assembly rows shorter than this are not worth a goroutine.
const minRowsPerChunk = 8

// ResolveKutta validates trailing-edge pairs against n panels and resolves
// negative (from-end) indices. Out-of-range indices and panels referenced
// twice are configuration errors, reported before any assembly work.
func ResolveKutta(pairs [][2]int, n int) ([][2]int, error) {
	resolved := make([][2]int, 0, len(pairs))
	seen := make(map[int]bool, 2*len(pairs))
	for _, p := range pairs {
		var r [2]int
		for k, idx := range p {
			if idx < 0 {
				idx += n
			}
			if idx < 0 || idx >= n {
				return nil, fmt.Errorf("%w: %d with %d panels", ErrKuttaIndex, p[k], n)
			}
			if seen[idx] {
				return nil, fmt.Errorf("%w: panel %d", ErrKuttaDuplicate, idx)
			}
			seen[idx] = true
			r[k] = idx
		}
		resolved = append(resolved, r)
	}
	return resolved, nil
}

// BuildSystem assembles the influence matrix and right-hand side encoding
// the no-slip condition at every panel's collocation point, with the
// trailing-edge rows substituted per Kutta pair.
func BuildSystem(arr *panel.Array, opts Options) (*mat.Dense, *mat.VecDense, error) {
	n := arr.Len()

	kutta, err := ResolveKutta(opts.Kutta, n)
	if err != nil {
		return nil, nil, err
	}

	A := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)

	var prev []int
	switch opts.Order {
	case panel.OrderConstant:
		assembleConstant(arr, A)
	case panel.OrderLinear:
		prev, err = startNodes(arr)
		if err != nil {
			return nil, nil, err
		}
		assembleLinear(arr, prev, A)
	default:
		return nil, nil, fmt.Errorf("%w: %v", panel.ErrUnknownOrder, opts.Order)
	}

	cosA := math.Cos(opts.Alpha)
	sinA := math.Sin(opts.Alpha)
	for i := 0; i < n; i++ {
		g := arr.Geometry(i)
		b.SetVec(i, -(cosA*g.SX + sinA*g.SY))
	}

	for _, p := range kutta {
		substituteKutta(arr, opts.Order, prev, p, A, b, cosA, sinA)
	}

	return A, b, nil
}

// collocation returns the point where panel i's no-slip row is sampled.
// Constant rows sample the panel center. Linear rows sample the quarter
// point toward the end node: on a closed loop with an even panel count, a
// node pattern alternating in sign induces zero tangential velocity at
// every panel center, so center sampling leaves the system singular.
func collocation(g panel.Geometry, order panel.Order) (x, y float64) {
	if order == panel.OrderLinear {
		return g.XC + 0.5*g.S*g.SX, g.YC + 0.5*g.S*g.SY
	}
	return g.XC, g.YC
}

// startNodes maps each panel to the node column owning its start node.
func startNodes(arr *panel.Array) ([]int, error) {
	n := arr.Len()
	prev := make([]int, n)
	for j := 0; j < n; j++ {
		p, ok := arr.PrevInBody(j)
		if !ok {
			return nil, fmt.Errorf("%w: panel %d", ErrOpenBody, j)
		}
		prev[j] = p
	}
	return prev, nil
}

// assembleConstant fills row i with the tangential component at panel i's
// center of every panel's unit-strength induction. The diagonal is the
// analytic self-term.
func assembleConstant(arr *panel.Array, A *mat.Dense) {
	n := arr.Len()
	panel.ParallelFor(n, minRowsPerChunk, func(start, end int) {
		for i := start; i < end; i++ {
			gi := arr.Geometry(i)
			for j := 0; j < n; j++ {
				u, v := panel.ConstantInfluence(arr.Geometry(j), gi.XC, gi.YC)
				A.Set(i, j, u*gi.SX+v*gi.SY)
			}
			A.Set(i, i, 0.5)
		}
	})
}

// assembleLinear accumulates shared-node columns: unknown j is the strength
// at panel j's end node, so column j receives the +S influence of panel j
// and the -S influence of its successor at every collocation point. The
// own-panel terms at the quarter point carry the exact 0.5 self-term split
// 1/8 to the start node and 3/8 to the end node.
func assembleLinear(arr *panel.Array, prev []int, A *mat.Dense) {
	n := arr.Len()
	panel.ParallelFor(n, minRowsPerChunk, func(start, end int) {
		for i := start; i < end; i++ {
			gi := arr.Geometry(i)
			xq, yq := collocation(gi, panel.OrderLinear)
			for j := 0; j < n; j++ {
				ua, va, ub, vb := panel.LinearInfluence(arr.Geometry(j), xq, yq)
				A.Set(i, prev[j], A.At(i, prev[j])+ua*gi.SX+va*gi.SY)
				A.Set(i, j, A.At(i, j)+ub*gi.SX+vb*gi.SY)
			}
		}
	})
}

// substituteKutta trades the pair's two no-slip rows for the trailing-edge
// closure. Row i becomes the antisymmetry constraint on the per-panel
// strengths: the raw values for constant order, the node means for linear
// order, so the reported strengths cancel across the edge exactly. Row j
// keeps a no-slip equation but samples it at the midpoint of the gap
// between the two panels: a solution carrying reversed circulation can
// cancel the tangential velocity at the surface collocation points while
// leaking its excess circulation as a jet through the trailing-edge gap,
// and the gap row closes that channel.
func substituteKutta(arr *panel.Array, order panel.Order, prev []int, p [2]int, A *mat.Dense, b *mat.VecDense, cosA, sinA float64) {
	n := arr.Len()
	i, j := p[0], p[1]

	for k := 0; k < n; k++ {
		A.Set(i, k, 0)
		A.Set(j, k, 0)
	}

	if order == panel.OrderLinear {
		for _, q := range []int{i, j} {
			A.Set(i, prev[q], A.At(i, prev[q])+0.5)
			A.Set(i, q, A.At(i, q)+0.5)
		}
	} else {
		A.Set(i, i, 1)
		A.Set(i, j, 1)
	}
	b.SetVec(i, 0)

	gi := arr.Geometry(i)
	gj := arr.Geometry(j)
	gapX := 0.5 * (gi.XC + gj.XC)
	gapY := 0.5 * (gi.YC + gj.YC)
	for k := 0; k < n; k++ {
		gk := arr.Geometry(k)
		if order == panel.OrderLinear {
			ua, va, ub, vb := panel.LinearInfluence(gk, gapX, gapY)
			A.Set(j, prev[k], A.At(j, prev[k])+ua*gj.SX+va*gj.SY)
			A.Set(j, k, A.At(j, k)+ub*gj.SX+vb*gj.SY)
		} else {
			u, v := panel.ConstantInfluence(gk, gapX, gapY)
			A.Set(j, k, u*gj.SX+v*gj.SY)
		}
	}
	b.SetVec(j, -(cosA*gj.SX + sinA*gj.SY))
}
