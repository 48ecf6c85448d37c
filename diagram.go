package brayton

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SaveCycleDiagrams renders the T-s and p-h station diagrams of c to
// prefix-ts.png and prefix-ph.png.
func SaveCycleDiagrams(c Cycle, prefix string) error {
	ss := c.Entropies()
	ts := c.Temperatures()
	tsPts := make(plotter.XYs, numStations)
	for i := range tsPts {
		tsPts[i].X = ss[i]
		tsPts[i].Y = ts[i]
	}
	tsPlot := plot.New()
	tsPlot.Title.Text = "Brayton cycle T-s diagram"
	tsPlot.X.Label.Text = "Entropy (J/kg/K)"
	tsPlot.Y.Label.Text = "Temperature (K)"
	if err := plotutil.AddLinePoints(tsPlot, "stations", tsPts); err != nil {
		return err
	}
	if err := tsPlot.Save(8*vg.Inch, 6*vg.Inch, prefix+"-ts.png"); err != nil {
		return err
	}

	hs := c.Enthalpies()
	ps := c.Pressures()
	phPts := make(plotter.XYs, numStations)
	for i := range phPts {
		phPts[i].X = hs[i] / 1e3
		phPts[i].Y = ps[i] / 1e3
	}
	phPlot := plot.New()
	phPlot.Title.Text = "Brayton cycle p-h diagram"
	phPlot.X.Label.Text = "Enthalpy (kJ/kg)"
	phPlot.Y.Label.Text = "Pressure (kPa)"
	if err := plotutil.AddLinePoints(phPlot, "stations", phPts); err != nil {
		return err
	}
	return phPlot.Save(8*vg.Inch, 6*vg.Inch, prefix+"-ph.png")
}

// SaveGridPNG renders g as a heat map with contour lines overlaid.
func SaveGridPNG(g *Grid, title, xlabel, ylabel, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	pal := palette.Heat(12, 1)
	p.Add(plotter.NewHeatMap(g, pal))
	p.Add(plotter.NewContour(g, nil, pal))
	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}
