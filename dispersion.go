package brayton

import (
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Dispersion draws design points around a base cycle with Gaussian
// uncertainties on the turbomachinery polytropic efficiencies and the
// turbine metal temperature. Draws are not clamped: a sampled efficiency
// above one or a metal temperature below the compressor exit flows through
// the cycle like any other input.
type Dispersion struct {
	base       Cycle
	ηc, ηt, tm distuv.Normal
}

// NewDispersion returns a dispersion about base with the given standard
// deviations (efficiencies absolute, metal temperature in K). Runs are
// deterministic for a given seed.
func NewDispersion(base Cycle, σηc, σηt, σmetal float64, seed uint64) *Dispersion {
	src := rand.NewPCG(seed, seed)
	ηc, ηt := base.PolyEfficiencies()
	return &Dispersion{
		base: base,
		ηc:   distuv.Normal{Mu: ηc, Sigma: σηc, Src: src},
		ηt:   distuv.Normal{Mu: ηt, Sigma: σηt, Src: src},
		tm:   distuv.Normal{Mu: base.TurbineMetal, Sigma: σmetal, Src: src},
	}
}

// Sample returns one perturbed copy of the base cycle.
func (d *Dispersion) Sample() Cycle {
	c := d.base
	c.ηc = d.ηc.Rand()
	c.ηt = d.ηt.Rand()
	c.TurbineMetal = d.tm.Rand()
	return c
}

// DispersionResult holds the metric samples of a dispersion run.
type DispersionResult struct {
	Efficiency   []float64
	SpecificWork []float64 // kJ/kg
}

// Run samples n perturbed cycles and collects their thermal efficiency and
// mass specific work.
func (d *Dispersion) Run(n int) DispersionResult {
	res := DispersionResult{make([]float64, n), make([]float64, n)}
	for i := 0; i < n; i++ {
		c := d.Sample()
		res.Efficiency[i] = c.Efficiency()
		res.SpecificWork[i] = c.MassSpecificWork() / 1e3
	}
	return res
}

// EfficiencyStats returns the mean and standard deviation of the sampled
// efficiencies.
func (r DispersionResult) EfficiencyStats() (mean, stddev float64) {
	return stat.Mean(r.Efficiency, nil), stat.StdDev(r.Efficiency, nil)
}

// WorkStats returns the mean and standard deviation of the sampled specific
// works [kJ/kg].
func (r DispersionResult) WorkStats() (mean, stddev float64) {
	return stat.Mean(r.SpecificWork, nil), stat.StdDev(r.SpecificWork, nil)
}

// EfficiencyQuantile returns the empirical q quantile of the sampled
// efficiencies.
func (r DispersionResult) EfficiencyQuantile(q float64) float64 {
	sorted := append([]float64(nil), r.Efficiency...)
	sort.Float64s(sorted)
	return stat.Quantile(q, stat.Empirical, sorted, nil)
}
