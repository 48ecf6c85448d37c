package brayton

import "math"

// Γ1 returns the isentropic exponent group γ/(γ-1).
func Γ1(γ float64) float64 {
	return γ / (γ - 1)
}

// Θ returns the ratio of total to static temperature at Mach number m for a
// calorically perfect gas of heat capacity ratio γ.
func Θ(m, γ float64) float64 {
	return 1 + (γ-1)/2*m*m
}

// Δ returns the ratio of total to static pressure at Mach number m for a
// calorically perfect gas of heat capacity ratio γ.
func Δ(m, γ float64) float64 {
	return math.Pow(Θ(m, γ), Γ1(γ))
}

// K2C converts Kelvins to degrees Celsius.
func K2C(t float64) float64 {
	return t - 273.15
}

// C2K converts degrees Celsius to Kelvins.
func C2K(t float64) float64 {
	return t + 273.15
}
