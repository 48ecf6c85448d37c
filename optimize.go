package brayton

import (
	"math"

	"gonum.org/v1/gonum/optimize"
)

// Search box for Optimized: pressure ratio and combustor exit temperature.
const (
	optPRMin   = 1.0
	optPRMax   = 60.0
	optTempMin = 1273.0 // K
	optTempMax = 2273.0 // K
)

// Optimized returns the copy of c whose pressure ratio and combustor exit
// temperature maximize the thermal efficiency within [1, 60] × [1273, 2273]
// K, every other parameter held fixed. The second return is false when the
// start point cannot seed a simplex, the search errors out, or it ends in
// any status other than a converged one; the first return is then the zero
// Cycle. c itself is never touched.
func Optimized(c Cycle) (Cycle, bool) {
	if math.IsNaN(c.PR) || math.IsNaN(c.TCombustorExit) {
		return Cycle{}, false
	}
	objective := func(x []float64) float64 {
		if x[0] < optPRMin || x[0] > optPRMax || x[1] < optTempMin || x[1] > optTempMax {
			return math.Inf(1)
		}
		trial := c
		trial.PR = x[0]
		trial.TCombustorExit = x[1]
		η := trial.Efficiency()
		if math.IsNaN(η) {
			// A NaN vertex would wedge the simplex.
			return math.Inf(1)
		}
		return 1 - η
	}
	problem := optimize.Problem{Func: objective}
	result, err := optimize.Minimize(problem, []float64{c.PR, c.TCombustorExit}, nil, &optimize.NelderMead{})
	if err != nil {
		return Cycle{}, false
	}
	switch result.Status {
	case optimize.FunctionConvergence, optimize.MethodConverge:
	default:
		return Cycle{}, false
	}
	opt := c
	opt.PR = result.X[0]
	opt.TCombustorExit = result.X[1]
	return opt, true
}

// Optimize moves c to the most efficient design point found by Optimized and
// reports whether one was found; when it reports false, c is left untouched.
// Concurrent calls on a shared cycle must be serialized by the caller.
func (c *Cycle) Optimize() bool {
	opt, ok := Optimized(*c)
	if !ok {
		return false
	}
	*c = opt
	return true
}
