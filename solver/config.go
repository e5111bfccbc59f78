package solver

import (
	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// Config carries the tunables of the solver and its serving layer.
// Values come from conf/config.ini with environment overrides on top.
type Config struct {
	Addr        string `env:"SOLVER_ADDR"`
	Workers     int    `env:"SOLVER_WORKERS"`
	MaxGridRes  int    `env:"SOLVER_MAX_GRID_RES"`
	GridRes     int    `env:"SOLVER_GRID_RES"`
	ChordPoints int    `env:"SOLVER_CHORD_POINTS"`
}

func DefaultConfig() Config {
	return Config{
		Addr:        ":9000",
		Workers:     4,
		MaxGridRes:  2000,
		GridRes:     200,
		ChordPoints: 100,
	}
}

// LoadConfig reads path and applies environment overrides. A missing file
// is not fatal; the defaults stand.
func LoadConfig(path string) Config {
	cfg := DefaultConfig()
	file, err := ini.Load(path)
	if err != nil {
		log.WithError(err).Warn("config file not loaded, using defaults")
	} else {
		sec := file.Section("solver")
		cfg.Addr = sec.Key("Addr").MustString(cfg.Addr)
		cfg.Workers = sec.Key("Workers").MustInt(cfg.Workers)
		cfg.MaxGridRes = sec.Key("MaxGridRes").MustInt(cfg.MaxGridRes)
		cfg.GridRes = sec.Key("GridRes").MustInt(cfg.GridRes)
		cfg.ChordPoints = sec.Key("ChordPoints").MustInt(cfg.ChordPoints)
	}
	if err := env.Parse(&cfg); err != nil {
		log.WithError(err).Warn("environment overrides not applied")
	}
	return cfg
}
