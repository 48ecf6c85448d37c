package brayton

// SeaLevel is the reference ambient state used by default: 25°C and 100 kPa
// of dry air.
var SeaLevel = NewAmbient(25, 100, 287.058, 1.4)

// Ambient defines the ambient state a cycle breathes from and exhausts to.
// All station enthalpies and entropies are referenced to it. An Ambient is
// immutable once constructed.
type Ambient struct {
	t, p, r, γ, cp float64
}

// NewAmbient returns the ambient state at the given temperature [°C] and
// pressure [kPa] for a calorically perfect gas of specific gas constant
// r [J/(kg·K)] and heat capacity ratio γ. The constant pressure specific
// heat is computed once from the provided r and γ.
func NewAmbient(tempC, pressureKPa, r, γ float64) Ambient {
	return Ambient{C2K(tempC), pressureKPa * 1e3, r, γ, r * Γ1(γ)}
}

// Temperature returns the ambient temperature in K.
func (a Ambient) Temperature() float64 {
	return a.t
}

// Pressure returns the ambient pressure in Pa.
func (a Ambient) Pressure() float64 {
	return a.p
}

// GasConstant returns the specific gas constant in J/(kg·K).
func (a Ambient) GasConstant() float64 {
	return a.r
}

// SpecificHeatRatio returns the heat capacity ratio γ.
func (a Ambient) SpecificHeatRatio() float64 {
	return a.γ
}

// Cp returns the constant pressure specific heat in J/(kg·K).
func (a Ambient) Cp() float64 {
	return a.cp
}
