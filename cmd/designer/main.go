package main

import (
	"flag"
	"log"
	"os"

	"github.com/ChristopherRabotin/brayton"
	kitlog "github.com/go-kit/kit/log"
)

const defaultScenario = "~~unset~~"

var scenario string

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "cycle scenario TOML file")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	s, err := brayton.LoadScenario(scenario)
	if err != nil {
		log.Fatal(err)
	}
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "cmd", "designer")
	if _, err := s.Run(logger); err != nil {
		log.Fatal(err)
	}
}
