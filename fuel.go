package brayton

import "fmt"

// kWh2J converts kilowatt hours to Joules.
const kWh2J = 3.6e6

// Fuel defines an aviation fuel by its combustion and storage properties.
// Heating values are on a lower heating value basis at 298 K.
type Fuel interface {
	// Name of the fuel.
	Name() string
	// LHV returns the lower heating value in J/kg.
	LHV() float64
	// StoredLHV returns the heating value per kg of fuel plus storage
	// system, in J/kg. Equal to LHV except for fuels that carry a tank
	// mass penalty.
	StoredLHV() float64
	// Density returns the liquid (or stored) density in kg/m³.
	Density() float64
	// CO2PerKg returns the stoichiometric CO2 emitted per kg of fuel
	// burned, in kg.
	CO2PerKg() float64
	// CostPerKg returns the fuel cost in usd/kg.
	CostPerKg() float64
}

// VolumeCost returns the cost of f per liter of liquid.
func VolumeCost(f Fuel) float64 {
	return f.CostPerKg() * f.Density() / 1e3
}

// EnergyCost returns the cost of f per kWh of lower heating value.
func EnergyCost(f Fuel) float64 {
	return f.CostPerKg() / (f.LHV() / kWh2J)
}

// EmissionsFactor returns the CO2 emitted by f per kWh of lower heating
// value, in kg/kWh. Carbon free fuels return zero.
func EmissionsFactor(f Fuel) float64 {
	return f.CO2PerKg() / (f.LHV() / kWh2J)
}

/* Available fuels */

// JetA is kerosene jet fuel, C12H23 per the NASA CEA specification.
type JetA struct{}

// Name implements the Fuel interface.
func (f JetA) Name() string { return "Jet-A" }

// LHV implements the Fuel interface.
func (f JetA) LHV() float64 { return 43.2e6 }

// StoredLHV implements the Fuel interface.
func (f JetA) StoredLHV() float64 { return f.LHV() }

// Density implements the Fuel interface.
func (f JetA) Density() float64 { return 804 }

// CO2PerKg implements the Fuel interface.
func (f JetA) CO2PerKg() float64 { return 3.16 }

// CostPerKg implements the Fuel interface. Jet-A trades by volume at about
// 1.4 usd per liter.
func (f JetA) CostPerKg() float64 { return 1.4 / (f.Density() / 1e3) }

// Methane is CH4, stored as a cryogenic liquid.
type Methane struct{}

// Name implements the Fuel interface.
func (f Methane) Name() string { return "Methane" }

// LHV implements the Fuel interface.
func (f Methane) LHV() float64 { return 50.0e6 }

// StoredLHV implements the Fuel interface.
func (f Methane) StoredLHV() float64 { return f.LHV() }

// Density implements the Fuel interface.
func (f Methane) Density() float64 { return 423 }

// CO2PerKg implements the Fuel interface.
func (f Methane) CO2PerKg() float64 { return 2.74 }

// CostPerKg implements the Fuel interface.
func (f Methane) CostPerKg() float64 { return 0.25 }

// Ammonia is NH3, carbon free and storable as a liquid under mild pressure.
type Ammonia struct{}

// Name implements the Fuel interface.
func (f Ammonia) Name() string { return "Ammonia" }

// LHV implements the Fuel interface.
func (f Ammonia) LHV() float64 { return 18.6e6 }

// StoredLHV implements the Fuel interface.
func (f Ammonia) StoredLHV() float64 { return f.LHV() }

// Density implements the Fuel interface.
func (f Ammonia) Density() float64 { return 682 }

// CO2PerKg implements the Fuel interface.
func (f Ammonia) CO2PerKg() float64 { return 0 }

// CostPerKg implements the Fuel interface. Priced at about 500 usd per
// tonne.
func (f Ammonia) CostPerKg() float64 { return 0.5 }

// Hydrogen is H2, carbon free, with the cryogenic tank mass counted against
// its stored heating value.
type Hydrogen struct {
	// StoredMassFraction is the fuel mass over the fuel plus tank mass.
	StoredMassFraction float64
}

// NewHydrogen returns hydrogen with the given gravimetric storage fraction.
func NewHydrogen(storedMassFraction float64) Hydrogen {
	return Hydrogen{storedMassFraction}
}

// Name implements the Fuel interface.
func (f Hydrogen) Name() string { return "Hydrogen" }

// LHV implements the Fuel interface.
func (f Hydrogen) LHV() float64 { return 120.0e6 }

// StoredLHV implements the Fuel interface.
func (f Hydrogen) StoredLHV() float64 { return f.LHV() * f.StoredMassFraction }

// Density implements the Fuel interface (liquid hydrogen).
func (f Hydrogen) Density() float64 { return 71 }

// CO2PerKg implements the Fuel interface.
func (f Hydrogen) CO2PerKg() float64 { return 0 }

// CostPerKg implements the Fuel interface.
func (f Hydrogen) CostPerKg() float64 { return 4 }

// Ethanol is C2H5OH.
type Ethanol struct{}

// Name implements the Fuel interface.
func (f Ethanol) Name() string { return "Ethanol" }

// LHV implements the Fuel interface.
func (f Ethanol) LHV() float64 { return 27.7e6 }

// StoredLHV implements the Fuel interface.
func (f Ethanol) StoredLHV() float64 { return f.LHV() }

// Density implements the Fuel interface.
func (f Ethanol) Density() float64 { return 789 }

// CO2PerKg implements the Fuel interface.
func (f Ethanol) CO2PerKg() float64 { return 1.91 }

// CostPerKg implements the Fuel interface. Priced at about 1.74 usd per US
// gallon.
func (f Ethanol) CostPerKg() float64 { return 1.74 / 3.785411784 / (f.Density() / 1e3) }

// FuelFromString returns the fuel from its name. Hydrogen is returned
// without any tank mass penalty.
func FuelFromString(name string) (Fuel, error) {
	switch name {
	case "Jet-A", "JetA", "kerosene":
		return JetA{}, nil
	case "Methane", "CH4":
		return Methane{}, nil
	case "Ammonia", "NH3":
		return Ammonia{}, nil
	case "Hydrogen", "H2":
		return NewHydrogen(1), nil
	case "Ethanol", "C2H5OH":
		return Ethanol{}, nil
	}
	return nil, fmt.Errorf("unknown fuel %q", name)
}
