package panel

import (
	"math"
	"testing"
)

func mustArray(t *testing.T, x1, y1, x2, y2 []float64) *Array {
	t.Helper()
	a, err := NewArray(x1, y1, x2, y2)
	if err != nil {
		t.Fatalf("NewArray: %v", err)
	}
	return a
}

func TestConstantSelfInfluence(t *testing.T) {
	// Arbitrary orientations and lengths: the tangential self-influence at
	// the panel's own center is the analytic 0.5, the normal one zero.
	arr := mustArray(t,
		[]float64{0, 1, -2, 0.3},
		[]float64{0, 1, 0.5, -0.7},
		[]float64{2, 1.5, -2, -1.1},
		[]float64{0, 2.5, 3.5, 0.9},
	)

	for i := 0; i < arr.Len(); i++ {
		g := arr.Geometry(i)
		u, v := ConstantInfluence(g, g.XC, g.YC)

		tangential := u*g.SX + v*g.SY
		normal := u*g.NX + v*g.NY

		if math.Abs(tangential-0.5) > 1e-12 {
			t.Errorf("panel %d: self tangential influence = %.15f, want 0.5", i, tangential)
		}
		if math.Abs(normal) > 1e-12 {
			t.Errorf("panel %d: self normal influence = %.15f, want 0", i, normal)
		}
	}
}

func TestSelfInfluenceIgnoresZeroSign(t *testing.T) {
	// A field point on the panel line can carry y = -0 and would flip the
	// angle difference to -pi; the kernel must resolve both zeros to the
	// interior-side limit.
	arr := mustArray(t, []float64{-1}, []float64{0}, []float64{1}, []float64{0})
	g := arr.Geometry(0)

	negZero := math.Copysign(0, -1)
	for _, y := range []float64{0, negZero} {
		u, v := ConstantInfluence(g, 0.5, y)
		tangential := u*g.SX + v*g.SY
		if math.Abs(tangential-0.5) > 1e-12 {
			t.Errorf("signbit(y)=%v: self tangential influence = %.15f, want 0.5",
				math.Signbit(y), tangential)
		}
	}
}

func TestLinearNodesSumToConstant(t *testing.T) {
	arr := mustArray(t, []float64{0.3}, []float64{-0.2}, []float64{1.7}, []float64{0.9})
	g := arr.Geometry(0)

	points := [][2]float64{{2, 1}, {-1, 0.5}, {0.9, -3}, {g.XC, g.YC}}
	for _, p := range points {
		cu, cv := ConstantInfluence(g, p[0], p[1])
		ua, va, ub, vb := LinearInfluence(g, p[0], p[1])

		if math.Abs(ua+ub-cu) > 1e-12 || math.Abs(va+vb-cv) > 1e-12 {
			t.Errorf("at (%g,%g): node kernels sum (%.12f,%.12f), constant kernel (%.12f,%.12f)",
				p[0], p[1], ua+ub, va+vb, cu, cv)
		}
	}
}

func TestLinearSelfInfluenceSplit(t *testing.T) {
	// Each end node carries a quarter of the tangential self-term at the
	// panel's own center; together they reproduce the constant 0.5.
	arr := mustArray(t, []float64{-1}, []float64{2}, []float64{3}, []float64{-1})
	g := arr.Geometry(0)

	ua, va, ub, vb := LinearInfluence(g, g.XC, g.YC)
	ta := ua*g.SX + va*g.SY
	tb := ub*g.SX + vb*g.SY

	if math.Abs(ta-0.25) > 1e-12 {
		t.Errorf("node a self tangential = %.15f, want 0.25", ta)
	}
	if math.Abs(tb-0.25) > 1e-12 {
		t.Errorf("node b self tangential = %.15f, want 0.25", tb)
	}
}

func TestInfluenceRotationInvariance(t *testing.T) {
	// Rotating panel and field point together must rotate the induced
	// velocity by the same angle.
	rot := math.Pi / 3
	c, s := math.Cos(rot), math.Sin(rot)

	base := mustArray(t, []float64{-0.5}, []float64{0}, []float64{0.5}, []float64{0})
	turned := mustArray(t,
		[]float64{-0.5 * c}, []float64{-0.5 * s},
		[]float64{0.5 * c}, []float64{0.5 * s},
	)

	x, y := 0.7, 0.4
	u0, v0 := ConstantInfluence(base.Geometry(0), x, y)
	u1, v1 := ConstantInfluence(turned.Geometry(0), x*c-y*s, x*s+y*c)

	wantU := u0*c - v0*s
	wantV := u0*s + v0*c
	if math.Abs(u1-wantU) > 1e-12 || math.Abs(v1-wantV) > 1e-12 {
		t.Errorf("rotated influence (%.12f,%.12f), want (%.12f,%.12f)", u1, v1, wantU, wantV)
	}
}

func TestVelocityFreeStreamOnly(t *testing.T) {
	arr := mustArray(t, []float64{0}, []float64{0}, []float64{1}, []float64{0})
	arr.SetAlpha(math.Pi / 6)

	// zero strengths: only the free stream remains
	u, v := arr.Velocity(10, 10)
	if math.Abs(u-math.Cos(math.Pi/6)) > 1e-12 || math.Abs(v-math.Sin(math.Pi/6)) > 1e-12 {
		t.Errorf("velocity (%.12f,%.12f), want free stream", u, v)
	}
}
