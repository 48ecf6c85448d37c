package brayton

import (
	"fmt"
	"math"
)

// g0 is the standard gravitational acceleration in m/s².
const g0 = 9.80665

// Engine defines a turbofan by its cruise and take off performance data.
type Engine struct {
	Name          string
	TSFC          float64 // cruise thrust specific fuel consumption [kg/(N·s)]
	Weight        float64 // dry weight [kg]
	TakeOffThrust float64 // sea level static thrust [N]
}

// Aircraft defines a transport aircraft by its certificated weights and
// cruise data, the engine it flies with and the fuel it burns. Performance
// estimates derive from the Breguet range equation: the lift to drag ratio
// is backed out of the certificated range rather than taken as an input.
type Aircraft struct {
	Name        string
	MTOW        float64 // max take off weight [kg]
	OEW         float64 // operating empty weight [kg]
	MaxFuel     float64 // max fuel weight [kg]
	MaxPayload  float64 // max payload weight [kg]
	Range       float64 // certificated range [m]
	CruiseSpeed float64 // [m/s]
	Seats       int
	NumEngines  int
	Engine      Engine
	Fuel        Fuel
}

// String implements the Stringer interface.
func (a Aircraft) String() string {
	return fmt.Sprintf("%s (%d×%s, %s)", a.Name, a.NumEngines, a.Engine.Name, a.Fuel.Name())
}

// OverallEfficiency returns the propulsion system overall efficiency,
// thrust power over fuel heating power.
func (a Aircraft) OverallEfficiency() float64 {
	return a.CruiseSpeed / a.Engine.TSFC / a.Fuel.LHV()
}

// Isp returns the engine specific impulse in seconds.
func (a Aircraft) Isp() float64 {
	return 1 / (a.Engine.TSFC * g0)
}

// FinalWeight returns the aircraft weight in kg with all fuel burned.
func (a Aircraft) FinalWeight() float64 {
	return a.MTOW - a.MaxFuel
}

// LiftToDrag returns the cruise lift to drag ratio backed out of the
// Breguet range equation from the certificated range and weights.
func (a Aircraft) LiftToDrag() float64 {
	return a.Range / (a.CruiseSpeed * a.Isp() * math.Log(a.MTOW/a.FinalWeight()))
}

// CruiseThrust returns the mid-cruise thrust in N.
func (a Aircraft) CruiseThrust() float64 {
	return (a.MTOW - a.MaxFuel/2) * g0 / a.LiftToDrag()
}

// CruiseFuelBurn returns the cruise fuel consumption in kg/h.
func (a Aircraft) CruiseFuelBurn() float64 {
	return a.CruiseThrust() * a.Engine.TSFC * 3600
}

// CruiseThrustPower returns the cruise thrust power in W.
func (a Aircraft) CruiseThrustPower() float64 {
	return a.CruiseThrust() * a.CruiseSpeed
}

// SpecificPower returns the cruise thrust power per kg of installed engine,
// in W/kg.
func (a Aircraft) SpecificPower() float64 {
	return a.CruiseThrustPower() / (float64(a.NumEngines) * a.Engine.Weight)
}

// CO2PerPaxKm returns the cruise CO2 emissions in kg per passenger and km.
func (a Aircraft) CO2PerPaxKm() float64 {
	burn := a.CruiseThrust() * a.Engine.TSFC // kg/s
	return burn * a.Fuel.CO2PerKg() / a.CruiseSpeed / float64(a.Seats) * 1e3
}

// EnergyPerPaxKm returns the cruise energy consumption in kWh per passenger
// and km, on a lower heating value basis.
func (a Aircraft) EnergyPerPaxKm() float64 {
	burn := a.CruiseThrust() * a.Engine.TSFC // kg/s
	return burn * a.Fuel.LHV() / a.CruiseSpeed / float64(a.Seats) * 1e3 / kWh2J
}

// BreguetRange returns the range in m flown at the certificated weight
// fraction with a propulsion system of overall efficiency ηo burning a
// storage medium of specific energy ε [J/kg].
func (a Aircraft) BreguetRange(ηo, ε float64) float64 {
	return math.Log(a.MTOW/a.FinalWeight()) / g0 * a.LiftToDrag() * ηo * ε
}

// RangeRatioGrid returns the grid of BreguetRange over the certificated
// range, sampled over overall efficiencies ηs and storage specific energies
// εs [kWh/kg].
func (a Aircraft) RangeRatioGrid(ηs, εs []float64) *Grid {
	return NewGrid(εs, ηs, func(ε, ηo float64) float64 {
		return a.BreguetRange(ηo, ε*kWh2J) / a.Range
	})
}

// PayloadRatioGrid returns the grid of payload over max payload carried at
// the fixed range rng [m], sampled over overall efficiencies ηs and storage
// specific energies εs [kWh/kg]. Negative payloads clamp to zero.
func (a Aircraft) PayloadRatioGrid(rng float64, ηs, εs []float64) *Grid {
	return NewGrid(εs, ηs, func(ε, ηo float64) float64 {
		φ := math.Exp(rng * g0 / (a.LiftToDrag() * ηo * ε * kWh2J))
		payload := a.MTOW/φ - a.OEW
		if payload < 0 {
			payload = 0
		}
		return payload / a.MaxPayload
	})
}

/* Available engines */

// LEAP1A powers the A320neo family.
var LEAP1A = Engine{"LEAP-1A", 1.44e-5, 2990, 120.6e3}

// LEAP1B powers the 737 MAX family.
var LEAP1B = Engine{"LEAP-1B", 1.46e-5, 2780, 130.4e3}

// GEnx1B powers the 787.
var GEnx1B = Engine{"GEnx-1B", 1.456e-5, 6147, 338.4e3}

/* Available aircraft */

// A320neo is the narrow body short haul workhorse.
var A320neo = Aircraft{"A320neo", 79000, 44300, 19159, 20000, 6300e3, 230, 194, 2, LEAP1A, JetA{}}

// B737MAX8 is the other narrow body short haul workhorse.
var B737MAX8 = Aircraft{"737 MAX 8", 82191, 45070, 20730, 20882, 6480e3, 233, 178, 2, LEAP1B, JetA{}}

// B787 is the 787-9 long haul twin.
var B787 = Aircraft{"787-9", 254011, 128850, 101456, 52587, 14140e3, 253, 296, 2, GEnx1B, JetA{}}

// AircraftFromString returns the aircraft from its name.
func AircraftFromString(name string) (Aircraft, error) {
	switch name {
	case "A320neo":
		return A320neo, nil
	case "737 MAX 8", "B737MAX8":
		return B737MAX8, nil
	case "787-9", "B787":
		return B787, nil
	}
	return Aircraft{}, fmt.Errorf("unknown aircraft %q", name)
}
