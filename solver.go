package brayton

import "math"

const (
	solverBracketMin = 1.0  // lower pressure ratio bracket
	solverBracketMax = 40.0 // upper pressure ratio bracket
	solverε          = 1e-9 // convergence tolerance on the pressure ratio
	solverMaxIters   = 100
	machineε         = 2.220446049250313e-16
)

// SolvePR finds the compressor pressure ratio within [1, 40] at which the
// cycle c, with only its pressure ratio overridden, delivers the target mass
// specific work [kJ/kg]. The second return is false when the work residual
// does not change sign across the bracket or the iteration cap is hit;
// the pressure ratio is then NaN. The bracket endpoints decide solvability:
// a target reachable only between them but exceeded at neither end cannot be
// bracketed and fails.
func SolvePR(c Cycle, targetWork float64) (float64, bool) {
	δwork := func(pr float64) float64 {
		trial := c
		trial.PR = pr
		return trial.MassSpecificWork()/1e3 - targetWork
	}
	return brent(δwork, solverBracketMin, solverBracketMax, solverε, solverMaxIters)
}

// brent finds a root of f within [x1, x2] by Brent's method, combining
// bisection, secant steps and inverse quadratic interpolation. It reports
// false, with a NaN root, when f does not change sign across the bracket,
// when f evaluates to NaN, or when maxIters iterations do not reach tol.
func brent(f func(float64) float64, x1, x2, tol float64, maxIters int) (float64, bool) {
	a, b := x1, x2
	fa, fb := f(a), f(b)
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return math.NaN(), false
	}
	if (fa > 0 && fb > 0) || (fa < 0 && fb < 0) {
		return math.NaN(), false
	}
	c, fc := b, fb
	var d, e float64
	for iter := 0; iter < maxIters; iter++ {
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol1 := 2*machineε*math.Abs(b) + 0.5*tol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, true
		}
		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Inverse quadratic interpolation, or secant if a == c.
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			if 2*p < math.Min(3*xm*q-math.Abs(tol1*q), math.Abs(e*q)) {
				// Interpolation accepted.
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
		if math.IsNaN(fb) {
			return math.NaN(), false
		}
	}
	return math.NaN(), false
}
