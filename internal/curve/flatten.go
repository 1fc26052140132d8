// Package curve converts cubic Bezier and uniform cubic B-spline
// segments into short line segments using a curvature-bounded step
// size, following Graphics Gems I's error bound for approximating a
// cubic with a polyline (the same derivation the teacher's
// internal/curves package cites for its own, differently-shaped,
// recursive flattener).
package curve

import "math"

// Cubic holds the four control points of a cubic curve in monomial
// form: P(t) = C0 + t*(C1 + t*(C2 + t*C3)).
type Cubic struct {
	C0X, C1X, C2X, C3X float64
	C0Y, C1Y, C2Y, C3Y float64
}

// BezierToMonomial converts the four Bezier control points (P0..P3) to
// monomial coefficients using the standard cubic Bezier basis matrix.
func BezierToMonomial(x0, y0, x1, y1, x2, y2, x3, y3 float64) Cubic {
	return Cubic{
		C0X: x0,
		C1X: -3*x0 + 3*x1,
		C2X: 3*x0 - 6*x1 + 3*x2,
		C3X: -x0 + 3*x1 - 3*x2 + x3,
		C0Y: y0,
		C1Y: -3*y0 + 3*y1,
		C2Y: 3*y0 - 6*y1 + 3*y2,
		C3Y: -y0 + 3*y1 - 3*y2 + y3,
	}
}

// BSplineToMonomial converts four uniform cubic B-spline control
// points to monomial coefficients, using the uniform B-spline basis
// matrix scaled by 1/6.
func BSplineToMonomial(x0, y0, x1, y1, x2, y2, x3, y3 float64) Cubic {
	const k = 1.0 / 6.0
	return Cubic{
		C0X: k * (x0 + 4*x1 + x2),
		C1X: k * (-3*x0 + 3*x2),
		C2X: k * (3*x0 - 6*x1 + 3*x2),
		C3X: k * (-x0 + 3*x1 - 3*x2 + x3),
		C0Y: k * (y0 + 4*y1 + y2),
		C1Y: k * (-3*y0 + 3*y2),
		C2Y: k * (3*y0 - 6*y1 + 3*y2),
		C3Y: k * (-y0 + 3*y1 - 3*y2 + y3),
	}
}

// Eval returns the point on the curve at parameter t.
func (c Cubic) Eval(t float64) (x, y float64) {
	x = c.C0X + t*(c.C1X+t*(c.C2X+t*c.C3X))
	y = c.C0Y + t*(c.C1Y+t*(c.C2Y+t*c.C3Y))
	return
}

// End returns the curve's endpoint, P(1) = sum of all coefficients.
// Evaluating the sum directly avoids the t=1 rounding wobble that a
// generic Eval(1) chain-multiply can introduce.
func (c Cubic) End() (x, y float64) {
	return c.C0X + c.C1X + c.C2X + c.C3X, c.C0Y + c.C1Y + c.C2Y + c.C3Y
}

// Step computes the curvature-bounded parameter step h for walking
// this curve as a polyline. The acceleration (second derivative) of a
// cubic is linear in t, so its absolute maximum occurs at t=0 or t=1;
// bounding that bounds the chord error of a linear approximation to
// roughly one sub-pixel unit.
func (c Cubic) Step() float64 {
	maxAccelY := abs(2*c.C2Y) + abs(6*c.C3Y)
	maxAccelX := abs(2*c.C2X) + abs(6*c.C3X)
	maxAccel := maxAccelY
	if maxAccelX > maxAccel {
		maxAccel = maxAccelX
	}
	if maxAccel > 8.0 {
		return math.Sqrt(8.0 / maxAccel)
	}
	return 1.0
}

// Flatten calls emit(x, y) for each polyline vertex approximating c,
// starting just after t=0 (the caller already has the current pen
// position) and finishing with the exact endpoint at t=1.
func (c Cubic) Flatten(emit func(x, y float64)) {
	h := c.Step()
	for t := h; t < 1.0; t += h {
		x, y := c.Eval(t)
		emit(x, y)
	}
	x, y := c.End()
	emit(x, y)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
