package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/ChristopherRabotin/brayton"
)

var (
	prMin, prMax float64
	t3Min, t3Max float64
	ηc, ηt       float64
	metalC       float64
	steps        int
	outputdir    string
)

func init() {
	flag.Float64Var(&prMin, "prmin", 5, "lower compressor pressure ratio")
	flag.Float64Var(&prMax, "prmax", 50, "upper compressor pressure ratio")
	flag.Float64Var(&t3Min, "t3min", 1100, "lower combustor exit temperature (°C)")
	flag.Float64Var(&t3Max, "t3max", 1900, "upper combustor exit temperature (°C)")
	flag.Float64Var(&ηc, "etac", 0.92, "compressor polytropic efficiency")
	flag.Float64Var(&ηt, "etat", 0.94, "turbine polytropic efficiency")
	flag.Float64Var(&metalC, "metal", 1200, "turbine metal temperature (°C)")
	flag.IntVar(&steps, "steps", 41, "grid points per axis")
	flag.StringVar(&outputdir, "o", ".", "output directory")
}

func main() {
	flag.Parse()
	base := brayton.NewCycle(prMin, t3Min, ηc, ηt, metalC, 0.07, 0.98, 0.95, brayton.SeaLevel)
	prs := brayton.Span(prMin, prMax, steps)
	t3s := brayton.Span(brayton.C2K(t3Min), brayton.C2K(t3Max), steps)
	maps := []struct {
		grid  *brayton.Grid
		name  string
		title string
	}{
		{brayton.EfficiencyMap(*base, prs, t3s), "eta", "Thermal efficiency"},
		{brayton.SpecificWorkMap(*base, prs, t3s), "work", "Mass specific work (kJ/kg)"},
	}
	for _, m := range maps {
		dat := filepath.Join(outputdir, "contour-"+m.name+".dat")
		if err := m.grid.ExportDat(dat, m.title); err != nil {
			log.Fatal(err)
		}
		png := filepath.Join(outputdir, m.name+".png")
		if err := brayton.SaveGridPNG(m.grid, m.title, "Compressor pressure ratio", "Combustor exit temperature (K)", png); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s and %s", dat, png)
	}
}
