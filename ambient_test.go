package brayton

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestAmbientSeaLevel(t *testing.T) {
	ambε := 1e-9
	if got := SeaLevel.Temperature(); got != 298.15 {
		t.Fatalf("incorrect sea level temperature %f K", got)
	}
	if got := SeaLevel.Pressure(); got != 100e3 {
		t.Fatalf("incorrect sea level pressure %f Pa", got)
	}
	if got := SeaLevel.GasConstant(); got != 287.058 {
		t.Fatalf("incorrect gas constant %f", got)
	}
	if got := SeaLevel.SpecificHeatRatio(); got != 1.4 {
		t.Fatalf("incorrect heat capacity ratio %f", got)
	}
	// cp = r·γ/(γ-1) for dry air.
	if got := SeaLevel.Cp(); !scalar.EqualWithinAbs(got, 1004.703, ambε) {
		t.Fatalf("incorrect cp %f", got)
	}
}

func TestAmbientCustomGas(t *testing.T) {
	// Helium at altitude conditions.
	amb := NewAmbient(-50, 20, 2077.1, 5.0/3.0)
	if got := amb.Temperature(); !scalar.EqualWithinAbs(got, 223.15, 1e-12) {
		t.Fatalf("incorrect temperature %f K", got)
	}
	if got := amb.Pressure(); got != 20e3 {
		t.Fatalf("incorrect pressure %f Pa", got)
	}
	if got := amb.Cp(); !scalar.EqualWithinAbs(got, 2077.1*2.5, 1e-9) {
		t.Fatalf("incorrect cp %f", got)
	}
}
