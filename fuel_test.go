package brayton

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestFuelCatalog(t *testing.T) {
	if got := (JetA{}).LHV(); got != 43.2e6 {
		t.Fatalf("incorrect Jet-A heating value %f", got)
	}
	if got := (JetA{}).StoredLHV(); got != 43.2e6 {
		t.Fatalf("Jet-A carries a tank penalty: %f", got)
	}
	if got := (Methane{}).LHV(); got != 50.0e6 {
		t.Fatalf("incorrect methane heating value %f", got)
	}
	if got := (Ethanol{}).LHV(); got != 27.7e6 {
		t.Fatalf("incorrect ethanol heating value %f", got)
	}
	for _, f := range []Fuel{Ammonia{}, NewHydrogen(0.25)} {
		if got := f.CO2PerKg(); got != 0 {
			t.Fatalf("%s emits %f kg CO2/kg", f.Name(), got)
		}
		if got := EmissionsFactor(f); got != 0 {
			t.Fatalf("%s emits %f kg CO2/kWh", f.Name(), got)
		}
	}
}

func TestFuelHydrogenStorage(t *testing.T) {
	h := NewHydrogen(0.3)
	if got := h.LHV(); got != 120.0e6 {
		t.Fatalf("incorrect hydrogen heating value %f", got)
	}
	if got := h.StoredLHV(); !scalar.EqualWithinAbs(got, 36.0e6, 1) {
		t.Fatalf("incorrect stored heating value %f", got)
	}
	// A perfect tank stores the full heating value.
	if got := NewHydrogen(1).StoredLHV(); got != 120.0e6 {
		t.Fatalf("incorrect tankless heating value %f", got)
	}
}

func TestFuelCosts(t *testing.T) {
	costε := 1e-9
	// Jet-A is specified by its volumetric price, so it round trips.
	if got := VolumeCost(JetA{}); !scalar.EqualWithinAbs(got, 1.4, costε) {
		t.Fatalf("incorrect Jet-A price %f usd/L", got)
	}
	if got := EnergyCost(JetA{}); !scalar.EqualWithinAbs(got, 0.1451078, 1e-6) {
		t.Fatalf("incorrect Jet-A price %f usd/kWh", got)
	}
	if got := EnergyCost(Methane{}); !scalar.EqualWithinAbs(got, 0.018, costε) {
		t.Fatalf("incorrect methane price %f usd/kWh", got)
	}
	// Ethanol is specified per US gallon.
	if got := VolumeCost(Ethanol{}); !scalar.EqualWithinAbs(got, 1.74/3.785411784, costε) {
		t.Fatalf("incorrect ethanol price %f usd/L", got)
	}
	if got := EmissionsFactor(JetA{}); !scalar.EqualWithinAbs(got, 3.16/12, costε) {
		t.Fatalf("incorrect Jet-A emissions %f kg CO2/kWh", got)
	}
}

func TestFuelFromString(t *testing.T) {
	for _, name := range []string{"Jet-A", "JetA", "kerosene"} {
		f, err := FuelFromString(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, isJetA := f.(JetA); !isJetA {
			t.Fatalf("%s resolved to %s", name, f.Name())
		}
	}
	f, err := FuelFromString("H2")
	if err != nil {
		t.Fatal(err)
	}
	if got := f.StoredLHV(); got != 120.0e6 {
		t.Fatalf("named hydrogen carries a tank penalty: %f", got)
	}
	for _, name := range []string{"CH4", "NH3", "C2H5OH"} {
		if _, err := FuelFromString(name); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := FuelFromString("unobtainium"); err == nil {
		t.Fatal("unknown fuel resolved")
	}
}
