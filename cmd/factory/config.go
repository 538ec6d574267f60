package main

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/jolt/press"
)

// SolverConfig mirrors press.Options for the optional JSON config file.
// Zero fields keep the press defaults.
type SolverConfig struct {
	IntTol     float64 `json:"int_tol"`
	SignTol    float64 `json:"sign_tol"`
	RankTol    float64 `json:"rank_tol"`
	MaxExtra   int     `json:"max_extra"`
	FreeVarCap int     `json:"free_var_cap"`
	Workers    int     `json:"workers"`
}

type Config struct {
	Input   string       `json:"input"`
	Part    int          `json:"part"`
	Workers int          `json:"workers"`
	Debug   bool         `json:"debug"`
	Solver  SolverConfig `json:"solver"`
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"input":        c.Input,
		"part":         c.Part,
		"workers":      c.Workers,
		"debug":        c.Debug,
		"int_tol":      c.Solver.IntTol,
		"sign_tol":     c.Solver.SignTol,
		"rank_tol":     c.Solver.RankTol,
		"max_extra":    c.Solver.MaxExtra,
		"free_var_cap": c.Solver.FreeVarCap,
		"solver_pool":  c.Solver.Workers,
	}
}

// PressOptions maps the solver block to press.Options; factory.SolveAll
// fills the zero fields with press defaults.
func (c Config) PressOptions(logger logrus.FieldLogger) press.Options {
	return press.Options{
		IntTol:     c.Solver.IntTol,
		SignTol:    c.Solver.SignTol,
		RankTol:    c.Solver.RankTol,
		MaxExtra:   c.Solver.MaxExtra,
		FreeVarCap: c.Solver.FreeVarCap,
		Workers:    c.Solver.Workers,
		Logger:     logger,
	}
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}
