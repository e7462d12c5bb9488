package panel

import "math"

// The influence kernels are the closed-form induced velocities of a straight
// vortex-sheet segment of unit strength. Each kernel rotates the field point
// into the panel frame (tangent along +x, panel spanning [-S, +S]),
// evaluates the analytic log/angle expressions, and rotates the result back.
//
// The angle difference evaluates to exactly pi at the panel's own center, so
// the tangential self-influence carries the analytic 0.5 limit with no
// numerical special-casing.

// toLocal rotates the field point into panel g's frame.
func toLocal(g Geometry, x, y float64) (xp, yp float64) {
	dx := x - g.XC
	dy := y - g.YC
	xp = dx*g.SX + dy*g.SY
	yp = -dx*g.SY + dy*g.SX
	if yp == 0 {
		// Collapse a negative zero to +0 so atan2 resolves the on-panel
		// limit from the interior side.
		yp = math.Abs(yp)
	}
	return xp, yp
}

// toGlobal rotates a panel-frame velocity back to global coordinates.
func toGlobal(g Geometry, up, vp float64) (u, v float64) {
	u = up*g.SX - vp*g.SY
	v = up*g.SY + vp*g.SX
	return u, v
}

// logRatioAngle evaluates the two primitive integrals of the segment kernel:
// lr = 0.5*ln(r1^2/r2^2) and dt = theta1 - theta2, with r and theta measured
// from the panel's end points.
func logRatioAngle(xp, yp, s float64) (lr, dt float64) {
	r1sq := (xp-s)*(xp-s) + yp*yp
	r2sq := (xp+s)*(xp+s) + yp*yp
	lr = 0.5 * math.Log(r1sq/r2sq)
	dt = math.Atan2(yp, xp-s) - math.Atan2(yp, xp+s)
	return lr, dt
}

// ConstantInfluence returns the velocity at (x, y) induced by panel g
// carrying unit uniform strength. The caller scales by the actual strength.
func ConstantInfluence(g Geometry, x, y float64) (u, v float64) {
	xp, yp := toLocal(g, x, y)
	lr, dt := logRatioAngle(xp, yp, g.S)
	up := dt / (2 * math.Pi)
	vp := lr / (2 * math.Pi)
	return toGlobal(g, up, vp)
}

// LinearInfluence returns the velocities at (x, y) attributable to unit
// strength at panel g's two end nodes: (ua, va) for the node at -S and
// (ub, vb) for the node at +S. The panel's total contribution is
// gammaA*(ua, va) + gammaB*(ub, vb), and the two node kernels sum to the
// constant kernel.
func LinearInfluence(g Geometry, x, y float64) (ua, va, ub, vb float64) {
	xp, yp := toLocal(g, x, y)
	lr, dt := logRatioAngle(xp, yp, g.S)

	den := 4 * math.Pi * g.S
	upA := ((g.S-xp)*dt - yp*lr) / den
	vpA := ((g.S-xp)*lr + yp*dt - 2*g.S) / den
	upB := ((g.S+xp)*dt + yp*lr) / den
	vpB := ((g.S+xp)*lr - yp*dt + 2*g.S) / den

	ua, va = toGlobal(g, upA, vpA)
	ub, vb = toGlobal(g, upB, vpB)
	return ua, va, ub, vb
}

// Velocity returns the total velocity at a field point: the unit free stream
// at the solved angle of attack plus the superposed induction of every panel
// at its current strength. O(N) per query.
func (a *Array) Velocity(x, y float64) (u, v float64) {
	u = math.Cos(a.alpha)
	v = math.Sin(a.alpha)

	for i := 0; i < a.Len(); i++ {
		g := a.Geometry(i)
		switch a.order {
		case OrderLinear:
			ua, va, ub, vb := LinearInfluence(g, x, y)
			u += a.gammaA[i]*ua + a.gammaB[i]*ub
			v += a.gammaA[i]*va + a.gammaB[i]*vb
		default:
			cu, cv := ConstantInfluence(g, x, y)
			u += a.gamma[i] * cu
			v += a.gamma[i] * cv
		}
	}
	return u, v
}
