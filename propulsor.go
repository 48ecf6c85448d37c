package brayton

import "math"

// Propulsor defines an ideal fan propulsor with a fully expanded nozzle,
// given its fan pressure ratio, flight Mach number and isentropic
// efficiency.
type Propulsor struct {
	FPR            float64 // fan total pressure ratio
	M0             float64 // flight Mach number
	IsenEfficiency float64 // fan isentropic efficiency
	Γ              float64 // heat capacity ratio of the working gas
}

// NewPropulsor returns a propulsor working in air (γ = 1.4).
func NewPropulsor(fpr, m0, ηisen float64) *Propulsor {
	return &Propulsor{fpr, m0, ηisen, 1.4}
}

// ExitMach returns the fully expanded nozzle exit Mach number.
func (p Propulsor) ExitMach() float64 {
	return math.Sqrt(2 / (p.Γ - 1) * (math.Pow(p.FPR, 1/Γ1(p.Γ))*Θ(p.M0, p.Γ) - 1))
}

// TotalTemperatureRatio returns the fan exit to inlet total temperature
// ratio.
func (p Propulsor) TotalTemperatureRatio() float64 {
	return (math.Pow(p.FPR, 1/Γ1(p.Γ))-1)/p.IsenEfficiency + 1
}

// StaticTemperatureRatio returns the nozzle exit to freestream static
// temperature ratio.
func (p Propulsor) StaticTemperatureRatio() float64 {
	return Θ(p.M0, p.Γ) / Θ(p.ExitMach(), p.Γ) * p.TotalTemperatureRatio()
}

// VelocityRatio returns the nozzle exit to flight velocity ratio.
func (p Propulsor) VelocityRatio() float64 {
	return p.ExitMach() / p.M0 * math.Sqrt(p.StaticTemperatureRatio())
}

// ThrustCoefficient returns the thrust normalized by the inlet momentum
// flux, Thrust/(ṁ0·U0).
func (p Propulsor) ThrustCoefficient() float64 {
	return p.VelocityRatio() - 1
}

// KineticEnergyEfficiency returns the jet kinetic energy increase over the
// fan aerodynamic work.
func (p Propulsor) KineticEnergyEfficiency() float64 {
	u := p.VelocityRatio()
	return p.M0 * p.M0 * (p.Γ - 1) / 2 / Θ(p.M0, p.Γ) * (u*u - 1) / (p.TotalTemperatureRatio() - 1)
}

// PropulsiveEfficiency returns the Froude propulsive efficiency.
func (p Propulsor) PropulsiveEfficiency() float64 {
	u := p.VelocityRatio()
	return 2 * p.ThrustCoefficient() / (u*u - 1)
}

// OverallEfficiency returns the product of the kinetic energy and propulsive
// efficiencies.
func (p Propulsor) OverallEfficiency() float64 {
	return p.KineticEnergyEfficiency() * p.PropulsiveEfficiency()
}
