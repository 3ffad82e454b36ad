package simulation

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/fivecard/poker"
)

// BatchConfig describes a set of estimate runs loaded from an HCL file:
//
//	defaults {
//	  quota   = 1000
//	  workers = 4
//	}
//
//	run "straight" {
//	  seed = 42
//	}
//
//	run "full-house" {
//	  quota = 2000
//	}
type BatchConfig struct {
	Defaults *RunDefaults `hcl:"defaults,block"`
	Runs     []RunConfig  `hcl:"run,block"`
}

// RunDefaults applies to every run block that leaves the field unset.
type RunDefaults struct {
	Quota     int    `hcl:"quota,optional"`
	Workers   int    `hcl:"workers,optional"`
	MaxTrials uint64 `hcl:"max_trials,optional"`
	Seed      int64  `hcl:"seed,optional"`
}

// RunConfig describes one estimate run. The block label names the target
// hand category.
type RunConfig struct {
	Category  string `hcl:"category,label"`
	Quota     int    `hcl:"quota,optional"`
	Workers   int    `hcl:"workers,optional"`
	MaxTrials uint64 `hcl:"max_trials,optional"`
	Seed      int64  `hcl:"seed,optional"`
}

// Target parses the run's category label.
func (rc RunConfig) Target() (poker.Category, error) {
	return poker.ParseCategory(rc.Category)
}

// Options converts the run config into simulator options. Logger and clock
// are left for the caller to fill in.
func (rc RunConfig) Options() Options {
	return Options{
		Quota:     rc.Quota,
		Workers:   rc.Workers,
		MaxTrials: rc.MaxTrials,
		Seed:      rc.Seed,
	}
}

// LoadBatchConfig loads run definitions from an HCL file and folds the
// defaults block into each run. Every run's category label is validated so
// a bad file fails before any simulation starts.
func LoadBatchConfig(filename string) (*BatchConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("simulation: parse %s: %s", filename, diags.Error())
	}

	var config BatchConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("simulation: decode %s: %s", filename, diags.Error())
	}

	if len(config.Runs) == 0 {
		return nil, fmt.Errorf("simulation: %s defines no run blocks", filename)
	}

	config.applyDefaults()

	for _, run := range config.Runs {
		if _, err := run.Target(); err != nil {
			return nil, fmt.Errorf("simulation: run %q: %w", run.Category, err)
		}
	}

	return &config, nil
}

func (c *BatchConfig) applyDefaults() {
	if c.Defaults == nil {
		return
	}
	for i := range c.Runs {
		run := &c.Runs[i]
		if run.Quota == 0 {
			run.Quota = c.Defaults.Quota
		}
		if run.Workers == 0 {
			run.Workers = c.Defaults.Workers
		}
		if run.MaxTrials == 0 {
			run.MaxTrials = c.Defaults.MaxTrials
		}
		if run.Seed == 0 {
			run.Seed = c.Defaults.Seed
		}
	}
}
