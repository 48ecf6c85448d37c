package brayton

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveCycleDiagrams(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "cycle")
	if err := SaveCycleDiagrams(*designPoint(), prefix); err != nil {
		t.Fatal(err)
	}
	for _, suffix := range []string{"-ts.png", "-ph.png"} {
		info, err := os.Stat(prefix + suffix)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Fatalf("empty diagram %s", prefix+suffix)
		}
	}
}

func TestSaveGridPNG(t *testing.T) {
	base := designPoint()
	g := EfficiencyMap(*base, Span(5, 40, 8), Span(1573.15, 1973.15, 8))
	path := filepath.Join(t.TempDir(), "eta.png")
	if err := SaveGridPNG(g, "Thermal efficiency", "Pressure ratio", "Combustor exit (K)", path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("empty map render")
	}
}
