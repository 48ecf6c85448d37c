package brayton

import "math"

// Station indices of the series returned by Temperatures, Pressures,
// Enthalpies and Entropies.
const (
	StationAmbient = iota
	StationCompressorExit
	StationCombustorExit
	StationTurbineInlet
	StationTurbineExit
	numStations
)

var stationNames = []string{"ambient", "compressor exit", "combustor exit", "turbine inlet", "turbine exit"}

// StationName returns the name of the given station index.
func StationName(i int) string {
	return stationNames[i]
}

// Cycle defines a single spool Brayton cycle design point with polytropic
// turbomachinery and a film cooled turbine. The turbine cooling bleed is
// sized from the metal temperature limit via a Stanton number, bypasses the
// combustor, and mixes back in ahead of the turbine. Temperatures are kept
// in K and pressures in Pa; constructors take °C and kPa.
//
// Derived quantities are recomputed on every call and never validated: an
// infeasible design point (say, a metal temperature below the compressor
// exit temperature) flows through as out-of-range or NaN values, not as an
// error. Use Feasible to flag such points.
type Cycle struct {
	PR             float64 // compressor total pressure ratio
	TCombustorExit float64 // combustor exit temperature [K]
	TurbineMetal   float64 // turbine metal temperature limit [K]
	Stanton        float64 // Stanton number of the cooling film
	BurnerPR       float64 // burner total pressure ratio
	CoolingPR      float64 // cooling passage total pressure ratio
	Ambient        Ambient
	ηc, ηt         float64 // polytropic efficiencies
}

// NewCycle returns the design point at compressor pressure ratio pr, with
// the combustor exit and turbine metal temperatures in °C, the compressor
// and turbine polytropic efficiencies, the cooling film Stanton number, and
// the burner and cooling passage pressure ratios. Pass NaN as the metal
// temperature for an uncooled turbine: the metal then rides at the combustor
// exit temperature and the cooling bleed vanishes.
func NewCycle(pr, combustorExitC, ηc, ηt, metalC, stanton, burnerPR, coolingPR float64, amb Ambient) *Cycle {
	t3 := C2K(combustorExitC)
	tm := C2K(metalC)
	if math.IsNaN(metalC) {
		tm = t3
	}
	return &Cycle{pr, t3, tm, stanton, burnerPR, coolingPR, amb, ηc, ηt}
}

// NewCycleFromWork returns the design point whose compressor pressure ratio
// delivers the target mass specific work [kJ/kg], all other parameters as in
// NewCycle. If no pressure ratio within the solver bracket reaches the
// target, the returned cycle carries a NaN pressure ratio which poisons
// every derived quantity.
func NewCycleFromWork(targetWork, combustorExitC, ηc, ηt, metalC, stanton, burnerPR, coolingPR float64, amb Ambient) *Cycle {
	c := NewCycle(math.NaN(), combustorExitC, ηc, ηt, metalC, stanton, burnerPR, coolingPR, amb)
	if pr, ok := SolvePR(*c, targetWork); ok {
		c.PR = pr
	}
	return c
}

// PolyEfficiencies returns the compressor and turbine polytropic
// efficiencies.
func (c Cycle) PolyEfficiencies() (ηc, ηt float64) {
	return c.ηc, c.ηt
}

// TCompressorExit returns the compressor exit temperature in K.
func (c Cycle) TCompressorExit() float64 {
	γ := c.Ambient.γ
	return c.Ambient.t * math.Pow(c.PR, (γ-1)/(γ*c.ηc))
}

// Coolingβ returns the turbine cooling mass fraction β sized from the metal
// temperature limit. A metal temperature outside the compressor exit to
// combustor exit span yields a fraction outside [0, 1), which propagates.
func (c Cycle) Coolingβ() float64 {
	return c.Stanton * (c.TCombustorExit - c.TurbineMetal) / (c.TurbineMetal - c.TCompressorExit())
}

// TurbinePR returns the turbine expansion pressure ratio: the compressor
// ratio degraded by the burner and cooling passage losses weighted by their
// mass flow split.
func (c Cycle) TurbinePR() float64 {
	β := c.Coolingβ()
	return c.PR * (c.BurnerPR*(1-β) + c.CoolingPR*β)
}

// TTurbineInlet returns the turbine inlet temperature in K, after the
// cooling flow has mixed back in.
func (c Cycle) TTurbineInlet() float64 {
	β := c.Coolingβ()
	return c.TCompressorExit()*β + c.TCombustorExit*(1-β)
}

// TTurbineExit returns the turbine exit temperature in K.
func (c Cycle) TTurbineExit() float64 {
	γ := c.Ambient.γ
	return c.TTurbineInlet() * math.Pow(c.TurbinePR(), -(γ-1)*c.ηt/γ)
}

// MassSpecificHeatAddition returns the combustor heat addition per unit of
// compressor inlet mass flow, in J/kg.
func (c Cycle) MassSpecificHeatAddition() float64 {
	return (c.TCombustorExit - c.TCompressorExit()) * c.Ambient.cp * (1 - c.Coolingβ())
}

// MassSpecificWork returns the net shaft work per unit of compressor inlet
// mass flow, in J/kg.
func (c Cycle) MassSpecificWork() float64 {
	return (c.TTurbineInlet() - c.TTurbineExit() - (c.TCompressorExit() - c.Ambient.t)) * c.Ambient.cp
}

// Efficiency returns the cycle thermal efficiency.
func (c Cycle) Efficiency() float64 {
	return c.MassSpecificWork() / c.MassSpecificHeatAddition()
}

// Enthalpy returns the mass specific enthalpy [J/kg] at temperature t [K],
// referenced to the ambient state.
func (c Cycle) Enthalpy(t float64) float64 {
	return c.Ambient.cp * (t - c.Ambient.t)
}

// Entropy returns the mass specific entropy [J/(kg·K)] at temperature t [K]
// and pressure p [Pa], referenced to the ambient state.
func (c Cycle) Entropy(t, p float64) float64 {
	return c.Ambient.cp*math.Log(t/c.Ambient.t) - c.Ambient.r*math.Log(p/c.Ambient.p)
}

// Temperatures returns the station temperatures in K, in station order.
func (c Cycle) Temperatures() []float64 {
	return []float64{c.Ambient.t, c.TCompressorExit(), c.TCombustorExit, c.TTurbineInlet(), c.TTurbineExit()}
}

// Pressures returns the station pressures in Pa, in station order. The
// exhaust expands fully back to ambient.
func (c Cycle) Pressures() []float64 {
	p0 := c.Ambient.p
	return []float64{p0, p0 * c.PR, p0 * c.PR * c.BurnerPR, p0 * c.TurbinePR(), p0}
}

// Enthalpies returns the station mass specific enthalpies in J/kg.
func (c Cycle) Enthalpies() []float64 {
	h := c.Temperatures()
	for i, t := range h {
		h[i] = c.Enthalpy(t)
	}
	return h
}

// Entropies returns the station mass specific entropies in J/(kg·K).
func (c Cycle) Entropies() []float64 {
	ts := c.Temperatures()
	ps := c.Pressures()
	s := make([]float64, numStations)
	for i := range s {
		s[i] = c.Entropy(ts[i], ps[i])
	}
	return s
}

// Feasible returns whether this design point is physically meaningful: a
// finite pressure ratio, a cooling fraction within [0, 1) and a positive
// heat addition. Infeasible points are only ever flagged, never clamped.
func (c Cycle) Feasible() bool {
	if math.IsNaN(c.PR) || math.IsInf(c.PR, 0) {
		return false
	}
	β := c.Coolingβ()
	return β >= 0 && β < 1 && c.MassSpecificHeatAddition() > 0
}
