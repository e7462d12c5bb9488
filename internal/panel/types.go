package panel

import (
	"fmt"
	"math"
)

// Order selects the assumed variation of sheet strength over each panel.
type Order int

const (
	// OrderConstant assumes one uniform strength per panel.
	OrderConstant Order = iota
	// OrderLinear assumes strength varying linearly between panel end nodes,
	// continuous across adjacent panels of the same body.
	OrderLinear
)

func (o Order) String() string {
	switch o {
	case OrderConstant:
		return "constant"
	case OrderLinear:
		return "linear"
	}
	return fmt.Sprintf("order(%d)", int(o))
}

// ParseOrder maps a config/CLI name to an Order.
func ParseOrder(name string) (Order, error) {
	switch name {
	case "constant", "o1", "":
		return OrderConstant, nil
	case "linear", "o2":
		return OrderLinear, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}

// Field selects a per-panel attribute for bulk extraction.
type Field int

const (
	FieldX1 Field = iota
	FieldY1
	FieldX2
	FieldY2
	FieldXC
	FieldYC
	FieldS
	FieldSX
	FieldSY
	FieldNX
	FieldNY
	FieldGamma
	FieldGammaA
	FieldGammaB
)

var fieldNames = map[Field]string{
	FieldX1: "x1", FieldY1: "y1", FieldX2: "x2", FieldY2: "y2",
	FieldXC: "xc", FieldYC: "yc", FieldS: "s",
	FieldSX: "sx", FieldSY: "sy", FieldNX: "nx", FieldNY: "ny",
	FieldGamma: "gamma", FieldGammaA: "gamma_a", FieldGammaB: "gamma_b",
}

func (f Field) String() string {
	if s, ok := fieldNames[f]; ok {
		return s
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// Body is a contiguous sub-range of panels belonging to one input surface.
// End is exclusive. Closed reports whether the last panel's end point
// coincides with the first panel's start point.
type Body struct {
	Start  int
	End    int
	Closed bool
}

// Geometry is one panel's geometric data in global coordinates.
// S is the half-length; (SX, SY) the unit tangent from the first endpoint to
// the second; (NX, NY) the outward normal, the tangent rotated -90 degrees.
type Geometry struct {
	X1, Y1 float64
	X2, Y2 float64
	XC, YC float64
	S      float64
	SX, SY float64
	NX, NY float64
}

// Array is an ordered arena of panels sharing a traversal sense, plus the
// free-stream angle of attack and the strength order of the latest solve.
// Geometry is laid out as parallel slices indexed by panel.
type Array struct {
	x1, y1, x2, y2 []float64
	xc, yc         []float64
	s              []float64
	sx, sy         []float64
	nx, ny         []float64

	gamma  []float64
	gammaA []float64
	gammaB []float64

	alpha  float64
	order  Order
	bodies []Body
}

const degenerateTol = 1e-12

// NewArray builds a single-body array from parallel endpoint slices,
// panel k spanning (x1[k],y1[k])-(x2[k],y2[k]).
func NewArray(x1, y1, x2, y2 []float64) (*Array, error) {
	n := len(x1)
	if len(y1) != n || len(x2) != n || len(y2) != n {
		return nil, ErrLengthMismatch
	}
	if n == 0 {
		return nil, ErrTooFewPoints
	}

	a := &Array{
		x1: append([]float64(nil), x1...),
		y1: append([]float64(nil), y1...),
		x2: append([]float64(nil), x2...),
		y2: append([]float64(nil), y2...),
		xc: make([]float64, n), yc: make([]float64, n),
		s:  make([]float64, n),
		sx: make([]float64, n), sy: make([]float64, n),
		nx: make([]float64, n), ny: make([]float64, n),
		gamma:  make([]float64, n),
		gammaA: make([]float64, n),
		gammaB: make([]float64, n),
	}

	for k := 0; k < n; k++ {
		dx := x2[k] - x1[k]
		dy := y2[k] - y1[k]
		length := math.Hypot(dx, dy)
		if length <= degenerateTol {
			return nil, fmt.Errorf("%w: panel %d", ErrDegeneratePanel, k)
		}
		a.xc[k] = 0.5 * (x1[k] + x2[k])
		a.yc[k] = 0.5 * (y1[k] + y2[k])
		a.s[k] = 0.5 * length
		a.sx[k] = dx / length
		a.sy[k] = dy / length
		// outward normal: tangent rotated -90 degrees
		a.nx[k] = a.sy[k]
		a.ny[k] = -a.sx[k]
	}

	closed := math.Hypot(x2[n-1]-x1[0], y2[n-1]-y1[0]) <= degenerateTol
	a.bodies = []Body{{Start: 0, End: n, Closed: closed}}
	return a, nil
}

// Len returns the number of panels.
func (a *Array) Len() int { return len(a.s) }

// Alpha returns the angle of attack of the latest solve, in radians.
func (a *Array) Alpha() float64 { return a.alpha }

// Order returns the strength order of the latest solve.
func (a *Array) Order() Order { return a.order }

// Bodies returns the sub-body ranges, in concatenation order.
func (a *Array) Bodies() []Body {
	return append([]Body(nil), a.bodies...)
}

// Geometry returns panel i's geometric data.
func (a *Array) Geometry(i int) Geometry {
	return Geometry{
		X1: a.x1[i], Y1: a.y1[i], X2: a.x2[i], Y2: a.y2[i],
		XC: a.xc[i], YC: a.yc[i], S: a.s[i],
		SX: a.sx[i], SY: a.sy[i], NX: a.nx[i], NY: a.ny[i],
	}
}

// Gamma returns panel i's strength (the node mean for linear order).
func (a *Array) Gamma(i int) float64 { return a.gamma[i] }

// GammaEnds returns panel i's strength at its start and end nodes.
func (a *Array) GammaEnds(i int) (ga, gb float64) { return a.gammaA[i], a.gammaB[i] }

// Values returns an ordered copy of the named attribute across all panels.
func (a *Array) Values(f Field) ([]float64, error) {
	var src []float64
	switch f {
	case FieldX1:
		src = a.x1
	case FieldY1:
		src = a.y1
	case FieldX2:
		src = a.x2
	case FieldY2:
		src = a.y2
	case FieldXC:
		src = a.xc
	case FieldYC:
		src = a.yc
	case FieldS:
		src = a.s
	case FieldSX:
		src = a.sx
	case FieldSY:
		src = a.sy
	case FieldNX:
		src = a.nx
	case FieldNY:
		src = a.ny
	case FieldGamma:
		src = a.gamma
	case FieldGammaA:
		src = a.gammaA
	case FieldGammaB:
		src = a.gammaB
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownField, f)
	}
	return append([]float64(nil), src...), nil
}

// Distance returns the cumulative arc length at each panel center:
// s_0 = S_0, s_i = s_{i-1} + S_{i-1} + S_i.
func (a *Array) Distance() []float64 {
	d := make([]float64, a.Len())
	run := 0.0
	for i := range d {
		d[i] = run + a.s[i]
		run += 2 * a.s[i]
	}
	return d
}

// Perimeter returns the total arc length, the sum of 2*S over all panels.
func (a *Array) Perimeter() float64 {
	total := 0.0
	for _, s := range a.s {
		total += 2 * s
	}
	return total
}

// NextInBody returns the index of panel i's successor within its body,
// wrapping around for closed bodies. ok is false when panel i is the last
// panel of an open body.
func (a *Array) NextInBody(i int) (next int, ok bool) {
	for _, b := range a.bodies {
		if i < b.Start || i >= b.End {
			continue
		}
		if i+1 < b.End {
			return i + 1, true
		}
		if b.Closed {
			return b.Start, true
		}
		return 0, false
	}
	return 0, false
}

// PrevInBody is the inverse of NextInBody.
func (a *Array) PrevInBody(i int) (prev int, ok bool) {
	for _, b := range a.bodies {
		if i < b.Start || i >= b.End {
			continue
		}
		if i > b.Start {
			return i - 1, true
		}
		if b.Closed {
			return b.End - 1, true
		}
		return 0, false
	}
	return 0, false
}

// SetAlpha records the free-stream angle of attack, in radians.
func (a *Array) SetAlpha(alpha float64) { a.alpha = alpha }

// SetConstantGamma overwrites the strengths with a constant-order solution,
// one value per panel. Node values are set to the same constant so that
// Velocity stays well-defined under either order.
func (a *Array) SetConstantGamma(g []float64) error {
	if len(g) != a.Len() {
		return ErrDimensionMismatch
	}
	copy(a.gamma, g)
	copy(a.gammaA, g)
	copy(a.gammaB, g)
	a.order = OrderConstant
	return nil
}

// SetLinearGamma overwrites the strengths with a linear-order solution.
// nodes[j] is the sheet strength at panel j's end node, shared with the
// start of its successor in the same body.
func (a *Array) SetLinearGamma(nodes []float64) error {
	if len(nodes) != a.Len() {
		return ErrDimensionMismatch
	}
	for j := range nodes {
		a.gammaB[j] = nodes[j]
		prev, ok := a.PrevInBody(j)
		if !ok {
			prev = j
		}
		a.gammaA[j] = nodes[prev]
		a.gamma[j] = 0.5 * (a.gammaA[j] + a.gammaB[j])
	}
	a.order = OrderLinear
	return nil
}

// Concatenate returns a new array whose panel sequence is the ordered union
// of the inputs. Input geometry is copied, each input keeping its own
// sub-body range and adjacency; strengths are zeroed. Closed bodies must
// share a traversal sense.
func Concatenate(arrays ...*Array) (*Array, error) {
	if len(arrays) == 0 {
		return nil, ErrTooFewPoints
	}

	total := 0
	for _, in := range arrays {
		total += in.Len()
	}

	out := &Array{
		x1: make([]float64, 0, total), y1: make([]float64, 0, total),
		x2: make([]float64, 0, total), y2: make([]float64, 0, total),
		xc: make([]float64, 0, total), yc: make([]float64, 0, total),
		s:  make([]float64, 0, total),
		sx: make([]float64, 0, total), sy: make([]float64, 0, total),
		nx: make([]float64, 0, total), ny: make([]float64, 0, total),
		gamma:  make([]float64, total),
		gammaA: make([]float64, total),
		gammaB: make([]float64, total),
	}

	sense := 0.0
	offset := 0
	for _, in := range arrays {
		for _, b := range in.bodies {
			if b.Closed {
				area := in.signedArea(b)
				if sense == 0 {
					sense = area
				} else if area*sense < 0 {
					return nil, ErrOrientation
				}
			}
			out.bodies = append(out.bodies, Body{
				Start:  b.Start + offset,
				End:    b.End + offset,
				Closed: b.Closed,
			})
		}
		out.x1 = append(out.x1, in.x1...)
		out.y1 = append(out.y1, in.y1...)
		out.x2 = append(out.x2, in.x2...)
		out.y2 = append(out.y2, in.y2...)
		out.xc = append(out.xc, in.xc...)
		out.yc = append(out.yc, in.yc...)
		out.s = append(out.s, in.s...)
		out.sx = append(out.sx, in.sx...)
		out.sy = append(out.sy, in.sy...)
		out.nx = append(out.nx, in.nx...)
		out.ny = append(out.ny, in.ny...)
		offset += in.Len()
	}
	return out, nil
}

// signedArea computes the shoelace area of one closed body; the sign encodes
// the traversal sense.
func (a *Array) signedArea(b Body) float64 {
	area := 0.0
	for k := b.Start; k < b.End; k++ {
		area += a.x1[k]*a.y2[k] - a.x2[k]*a.y1[k]
	}
	return 0.5 * area
}
