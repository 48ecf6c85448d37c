package brayton

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestAircraftA320neo(t *testing.T) {
	a := A320neo
	if got := a.String(); got != "A320neo (2×LEAP-1A, Jet-A)" {
		t.Fatalf("incorrect stringer %q", got)
	}
	if got := a.OverallEfficiency(); !scalar.EqualWithinAbs(got, 0.3697274, 1e-6) {
		t.Fatalf("incorrect overall efficiency %f", got)
	}
	if got := a.Isp(); !scalar.EqualWithinAbs(got, 7081.36, 0.01) {
		t.Fatalf("incorrect specific impulse %f s", got)
	}
	if got := a.FinalWeight(); got != 59841 {
		t.Fatalf("incorrect final weight %f kg", got)
	}
	if got := a.LiftToDrag(); !scalar.EqualWithinAbs(got, 13.926, 1e-3) {
		t.Fatalf("incorrect L/D %f", got)
	}
	if got := a.CruiseThrust(); !scalar.EqualWithinAbs(got, 48885, 5) {
		t.Fatalf("incorrect cruise thrust %f N", got)
	}
	if got := a.CruiseFuelBurn(); !scalar.EqualWithinAbs(got, 2534.2, 0.5) {
		t.Fatalf("incorrect fuel burn %f kg/h", got)
	}
	if got := a.CruiseThrustPower(); !scalar.EqualWithinAbs(got, 11.2436e6, 2e3) {
		t.Fatalf("incorrect thrust power %f W", got)
	}
	if got := a.SpecificPower(); !scalar.EqualWithinAbs(got, 1880.2, 0.5) {
		t.Fatalf("incorrect specific power %f W/kg", got)
	}
	if got := a.CO2PerPaxKm(); !scalar.EqualWithinAbs(got, 0.04985, 1e-4) {
		t.Fatalf("incorrect CO2 intensity %f kg/pax/km", got)
	}
	if got := a.EnergyPerPaxKm(); !scalar.EqualWithinAbs(got, 0.18932, 1e-4) {
		t.Fatalf("incorrect energy intensity %f kWh/pax/km", got)
	}
}

func TestAircraftCatalogSanity(t *testing.T) {
	lifts := map[string]float64{"A320neo": 13.926, "737 MAX 8": 13.700, "787-9": 15.652}
	for _, a := range []Aircraft{A320neo, B737MAX8, B787} {
		if a.FinalWeight() <= a.OEW {
			t.Fatalf("%s lands below empty weight", a.Name)
		}
		if got := a.LiftToDrag(); !scalar.EqualWithinAbs(got, lifts[a.Name], 2e-3) {
			t.Fatalf("%s: incorrect L/D %f", a.Name, got)
		}
		if η := a.OverallEfficiency(); η < 0.3 || η > 0.45 {
			t.Fatalf("%s: overall efficiency %f out of the turbofan class", a.Name, η)
		}
	}
}

func TestAircraftBreguetConsistency(t *testing.T) {
	// With its own efficiency and fuel, each airframe flies exactly its
	// certificated range: L/D was backed out of that same equation.
	for _, a := range []Aircraft{A320neo, B737MAX8, B787} {
		got := a.BreguetRange(a.OverallEfficiency(), a.Fuel.LHV())
		if !scalar.EqualWithinAbs(got/a.Range, 1, 1e-12) {
			t.Fatalf("%s: Breguet range %f m departs from %f m", a.Name, got, a.Range)
		}
	}
}

func TestAircraftRangeRatioGrid(t *testing.T) {
	a := A320neo
	ηo := a.OverallEfficiency()
	ε := a.Fuel.LHV() / kWh2J // kWh/kg
	g := a.RangeRatioGrid([]float64{ηo / 2, ηo}, []float64{ε / 2, ε})
	if c, r := g.Dims(); c != 2 || r != 2 {
		t.Fatalf("incorrect grid dims %d×%d", c, r)
	}
	if got := g.Z(1, 1); !scalar.EqualWithinAbs(got, 1, 1e-12) {
		t.Fatalf("certificated point is off the certificated range: %f", got)
	}
	// Range is linear in both efficiency and specific energy.
	if got := g.Z(0, 1); !scalar.EqualWithinAbs(got, 0.5, 1e-12) {
		t.Fatalf("half energy does not halve the range: %f", got)
	}
	if got := g.Z(0, 0); !scalar.EqualWithinAbs(got, 0.25, 1e-12) {
		t.Fatalf("half of both does not quarter the range: %f", got)
	}
}

func TestAircraftPayloadRatioGrid(t *testing.T) {
	a := A320neo
	ηo := a.OverallEfficiency()
	ε := a.Fuel.LHV() / kWh2J
	g := a.PayloadRatioGrid(a.Range, []float64{ηo}, []float64{ε})
	// At the certificated point the fuel fraction is the certificated
	// one, leaving final weight minus empty weight for payload.
	want := (a.FinalWeight() - a.OEW) / a.MaxPayload
	if got := g.Z(0, 0); !scalar.EqualWithinAbs(got, want, 1e-9) {
		t.Fatalf("incorrect payload ratio %f, want %f", got, want)
	}
	// Out of reach: a heavy storage medium at three times the range.
	g = a.PayloadRatioGrid(3*a.Range, []float64{ηo}, []float64{2})
	if got := g.Z(0, 0); got != 0 {
		t.Fatalf("unreachable mission carries payload ratio %f", got)
	}
}

func TestAircraftFromString(t *testing.T) {
	a, err := AircraftFromString("B787")
	if err != nil {
		t.Fatal(err)
	}
	if a.Name != "787-9" {
		t.Fatalf("incorrect aircraft %s", a.Name)
	}
	if _, err := AircraftFromString("A320neo"); err != nil {
		t.Fatal(err)
	}
	if _, err := AircraftFromString("Concorde"); err == nil {
		t.Fatal("unknown aircraft resolved")
	}
}
