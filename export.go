package brayton

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// WriteStationsCSV writes the station series of c as CSV: one row per
// station with its temperature [K], pressure [kPa], enthalpy [kJ/kg] and
// entropy [J/(kg·K)].
func WriteStationsCSV(c Cycle, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"station", "T (K)", "p (kPa)", "h (kJ/kg)", "s (J/kg/K)"}); err != nil {
		return err
	}
	ts := c.Temperatures()
	ps := c.Pressures()
	hs := c.Enthalpies()
	ss := c.Entropies()
	for i := 0; i < numStations; i++ {
		row := []string{
			stationNames[i],
			fmt.Sprintf("%f", ts[i]),
			fmt.Sprintf("%f", ps[i]/1e3),
			fmt.Sprintf("%f", hs[i]/1e3),
			fmt.Sprintf("%f", ss[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportStationsCSV writes the station series of c to a CSV file at the
// given path.
func ExportStationsCSV(c Cycle, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteStationsCSV(c, f)
}
