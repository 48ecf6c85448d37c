package brayton

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Grid is a rectangular sampling of a scalar field over an x × y domain. It
// implements the plotter.GridXYZ interface, so it renders directly as a heat
// map or contour plot. Values are stored exactly as sampled, NaN included.
type Grid struct {
	xs, ys []float64
	z      *mat.Dense
}

// NewGrid samples f over the outer product of xs and ys.
func NewGrid(xs, ys []float64, f func(x, y float64) float64) *Grid {
	z := mat.NewDense(len(ys), len(xs), nil)
	for j, y := range ys {
		for i, x := range xs {
			z.Set(j, i, f(x, y))
		}
	}
	return &Grid{xs, ys, z}
}

// Span returns n evenly spaced values from lo to hi.
func Span(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// Dims implements the plotter.GridXYZ interface.
func (g *Grid) Dims() (c, r int) {
	return len(g.xs), len(g.ys)
}

// X implements the plotter.GridXYZ interface.
func (g *Grid) X(c int) float64 {
	return g.xs[c]
}

// Y implements the plotter.GridXYZ interface.
func (g *Grid) Y(r int) float64 {
	return g.ys[r]
}

// Z implements the plotter.GridXYZ interface.
func (g *Grid) Z(c, r int) float64 {
	return g.z.At(r, c)
}

// WriteDat writes the grid as a contour dat file: a %-prefixed header, then
// one comma separated line per y value.
func (g *Grid) WriteDat(w io.Writer, title string) error {
	if _, err := fmt.Fprintf(w, "%% %s\n%%y as new lines, x as new columns\n", title); err != nil {
		return err
	}
	for j := range g.ys {
		for i := range g.xs {
			if _, err := fmt.Fprintf(w, "%f,", g.z.At(j, i)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// ExportDat writes the grid as a contour dat file at the given path.
func (g *Grid) ExportDat(path, title string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return g.WriteDat(f, title)
}

// EfficiencyMap samples the thermal efficiency of cycles derived from base
// over the compressor pressure ratios prs and combustor exit temperatures
// t3s [K], every other parameter held fixed. Values are raw: infeasible
// corners of the domain carry their out-of-range values.
func EfficiencyMap(base Cycle, prs, t3s []float64) *Grid {
	return NewGrid(prs, t3s, func(pr, t3 float64) float64 {
		trial := base
		trial.PR = pr
		trial.TCombustorExit = t3
		return trial.Efficiency()
	})
}

// SpecificWorkMap samples the mass specific work [kJ/kg] of cycles derived
// from base over the compressor pressure ratios prs and combustor exit
// temperatures t3s [K], every other parameter held fixed.
func SpecificWorkMap(base Cycle, prs, t3s []float64) *Grid {
	return NewGrid(prs, t3s, func(pr, t3 float64) float64 {
		trial := base
		trial.PR = pr
		trial.TCombustorExit = t3
		return trial.MassSpecificWork() / 1e3
	})
}
