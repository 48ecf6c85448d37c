package brayton

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/viper"
)

// ErrNoDesignVariable is returned when a scenario specifies neither a
// pressure ratio nor a target specific work.
var ErrNoDesignVariable = errors.New("scenario: one of cycle.pressure_ratio or cycle.target_work is needed")

// Survey domain of the contour tables written by Run.
const (
	surveyPRMin, surveyPRMax   = 2.0, 50.0
	surveyT3MinC, surveyT3MaxC = 1100.0, 1900.0
	surveySteps                = 41
)

// Scenario defines a cycle study read from a TOML file. Every parameter of
// the [ambient] and [cycle] blocks defaults to the standard design point, so
// a scenario needs to set only what it changes, except the design variable:
// exactly one of pressure_ratio and target_work has to be present (when both
// are, the pressure ratio wins).
type Scenario struct {
	Name      string
	OutputDir string
	Optimize  bool

	pr, target     float64 // the absent one is NaN
	combustorExitC float64
	ηc, ηt         float64
	metalC         float64
	stanton        float64
	burnerPR       float64
	coolingPR      float64
	amb            Ambient
}

// LoadScenario reads the scenario TOML file at path.
func LoadScenario(path string) (*Scenario, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(strings.TrimSuffix(base, ".toml"))
	v.SetDefault("ambient.temperature", 25.0)
	v.SetDefault("ambient.pressure", 100.0)
	v.SetDefault("ambient.gas_constant", 287.058)
	v.SetDefault("ambient.gamma", 1.4)
	v.SetDefault("cycle.combustor_exit", 1500.0)
	v.SetDefault("cycle.poly_compressor", 1.0)
	v.SetDefault("cycle.poly_turbine", 1.0)
	v.SetDefault("cycle.metal_temperature", 1200.0)
	v.SetDefault("cycle.stanton", 0.07)
	v.SetDefault("cycle.burner_pr", 0.98)
	v.SetDefault("cycle.cooling_pr", 0.95)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("scenario %s: %s", path, err)
	}
	s := Scenario{
		Name:           v.GetString("general.name"),
		OutputDir:      v.GetString("general.output_dir"),
		Optimize:       v.GetBool("cycle.optimize"),
		pr:             math.NaN(),
		target:         math.NaN(),
		combustorExitC: v.GetFloat64("cycle.combustor_exit"),
		ηc:             v.GetFloat64("cycle.poly_compressor"),
		ηt:             v.GetFloat64("cycle.poly_turbine"),
		metalC:         v.GetFloat64("cycle.metal_temperature"),
		stanton:        v.GetFloat64("cycle.stanton"),
		burnerPR:       v.GetFloat64("cycle.burner_pr"),
		coolingPR:      v.GetFloat64("cycle.cooling_pr"),
		amb: NewAmbient(v.GetFloat64("ambient.temperature"), v.GetFloat64("ambient.pressure"),
			v.GetFloat64("ambient.gas_constant"), v.GetFloat64("ambient.gamma")),
	}
	if v.IsSet("cycle.pressure_ratio") {
		s.pr = v.GetFloat64("cycle.pressure_ratio")
	}
	if v.IsSet("cycle.target_work") {
		s.target = v.GetFloat64("cycle.target_work")
	}
	return &s, nil
}

// Cycle builds the design point this scenario describes. It returns
// ErrNoDesignVariable when the scenario carries neither a pressure ratio nor
// a target work.
func (s Scenario) Cycle() (*Cycle, error) {
	switch {
	case !math.IsNaN(s.pr):
		return NewCycle(s.pr, s.combustorExitC, s.ηc, s.ηt, s.metalC, s.stanton, s.burnerPR, s.coolingPR, s.amb), nil
	case !math.IsNaN(s.target):
		return NewCycleFromWork(s.target, s.combustorExitC, s.ηc, s.ηt, s.metalC, s.stanton, s.burnerPR, s.coolingPR, s.amb), nil
	}
	return nil, ErrNoDesignVariable
}

// Run builds the scenario cycle, optimizes it when requested, logs the
// design point, and writes the cycle diagrams, the efficiency and work
// contour tables and the station CSV to the output directory when one is
// set.
func (s Scenario) Run(logger kitlog.Logger) (*Cycle, error) {
	logger = kitlog.With(logger, "scenario", s.Name)
	c, err := s.Cycle()
	if err != nil {
		logger.Log("error", err)
		return nil, err
	}
	logger.Log("subsys", "cycle", "PR", c.PR, "T3", c.TCombustorExit, "beta", c.Coolingβ(),
		"work", c.MassSpecificWork()/1e3, "eta", c.Efficiency())
	if s.Optimize {
		if c.Optimize() {
			logger.Log("subsys", "optim", "PR", c.PR, "T3", c.TCombustorExit, "eta", c.Efficiency())
		} else {
			logger.Log("subsys", "optim", "converged", false)
		}
	}
	if s.OutputDir != "" {
		if err := os.MkdirAll(s.OutputDir, 0755); err != nil {
			return c, err
		}
		if err := SaveCycleDiagrams(*c, filepath.Join(s.OutputDir, "cycle")); err != nil {
			return c, err
		}
		if err := ExportStationsCSV(*c, filepath.Join(s.OutputDir, "stations.csv")); err != nil {
			return c, err
		}
		prs := Span(surveyPRMin, surveyPRMax, surveySteps)
		t3s := Span(C2K(surveyT3MinC), C2K(surveyT3MaxC), surveySteps)
		if err := EfficiencyMap(*c, prs, t3s).ExportDat(filepath.Join(s.OutputDir, "contour-eta.dat"), "Thermal efficiency"); err != nil {
			return c, err
		}
		if err := SpecificWorkMap(*c, prs, t3s).ExportDat(filepath.Join(s.OutputDir, "contour-work.dat"), "Mass specific work (kJ/kg)"); err != nil {
			return c, err
		}
		logger.Log("subsys", "export", "dir", s.OutputDir)
	}
	return c, nil
}

// LoadAircraft reads an aircraft TOML file at path: an [aircraft] block with
// the certificated weights [kg], range [km], cruise speed [m/s], seat and
// engine counts and the fuel name, and an [engine] block with its name, TSFC
// [kg/(N·s)], dry weight [kg] and take off thrust [kN]. The fuel defaults to
// Jet-A.
func LoadAircraft(path string) (Aircraft, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(strings.TrimSuffix(base, ".toml"))
	v.SetDefault("aircraft.fuel", "Jet-A")
	if err := v.ReadInConfig(); err != nil {
		return Aircraft{}, fmt.Errorf("aircraft %s: %s", path, err)
	}
	fuel, err := FuelFromString(v.GetString("aircraft.fuel"))
	if err != nil {
		return Aircraft{}, err
	}
	engine := Engine{
		Name:          v.GetString("engine.name"),
		TSFC:          v.GetFloat64("engine.tsfc"),
		Weight:        v.GetFloat64("engine.weight"),
		TakeOffThrust: v.GetFloat64("engine.takeoff_thrust") * 1e3,
	}
	return Aircraft{
		Name:        v.GetString("aircraft.name"),
		MTOW:        v.GetFloat64("aircraft.mtow"),
		OEW:         v.GetFloat64("aircraft.oew"),
		MaxFuel:     v.GetFloat64("aircraft.max_fuel"),
		MaxPayload:  v.GetFloat64("aircraft.max_payload"),
		Range:       v.GetFloat64("aircraft.range") * 1e3,
		CruiseSpeed: v.GetFloat64("aircraft.cruise_speed"),
		Seats:       v.GetInt("aircraft.seats"),
		NumEngines:  v.GetInt("aircraft.engines"),
		Engine:      engine,
		Fuel:        fuel,
	}, nil
}
