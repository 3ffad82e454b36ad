package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/lox/fivecard/cmd/fivecard/shared"
	"github.com/lox/fivecard/internal/fileutil"
	"github.com/lox/fivecard/internal/simulation"
)

// RunCmd executes every run block in an HCL config file in order.
type RunCmd struct {
	Config   string `arg:"" type:"existingfile" help:"HCL file with run blocks"`
	Output   string `short:"o" help:"Also write the report lines to this file"`
	Debug    bool   `help:"Enable debug logging"`
	JSONLogs bool   `name:"json-logs" help:"Structured JSON logs instead of console output"`
}

func (c *RunCmd) Run() error {
	logger := shared.SetupLogger(c.Debug, c.JSONLogs)

	config, err := simulation.LoadBatchConfig(c.Config)
	if err != nil {
		return err
	}

	logger.Info().Int("runs", len(config.Runs)).Str("config", c.Config).Msg("Starting batch")

	var reports []string
	for i, run := range config.Runs {
		target, err := run.Target()
		if err != nil {
			return err
		}

		opts := run.Options()
		opts.Logger = &logger

		result, err := simulation.New(opts).Estimate(context.Background(), target)
		if err != nil {
			return fmt.Errorf("run %q: %w", run.Category, err)
		}

		if i > 0 {
			fmt.Println()
		}
		printResult(result)
		reports = append(reports, result.Report())
	}

	if c.Output != "" {
		data := []byte(strings.Join(reports, "\n") + "\n")
		if err := fileutil.WriteFileAtomic(c.Output, data, 0o644); err != nil {
			return err
		}
		logger.Info().Str("output", c.Output).Msg("Wrote report")
	}

	return nil
}
