package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/fivecard/cmd/fivecard/shared"
	"github.com/lox/fivecard/internal/simulation"
	"github.com/lox/fivecard/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	percentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
)

const simElapsedPrecision = time.Millisecond

// EstimateCmd estimates the probability of one hand category.
type EstimateCmd struct {
	Category  string `arg:"" help:"Hand category: pair, two-pair, trips, straight, flush, full-house, quads"`
	Quota     int    `default:"1000" help:"Matching hands to collect before reporting"`
	MaxTrials uint64 `help:"Abort after this many trials (0 = unbounded)"`
	Workers   int    `default:"1" help:"Parallel trial workers"`
	Seed      *int64 `help:"Deterministic RNG seed (optional)"`
	Debug     bool   `help:"Enable debug logging"`
	JSONLogs  bool   `name:"json-logs" help:"Structured JSON logs instead of console output"`
}

func (c *EstimateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug, c.JSONLogs)

	target, err := poker.ParseCategory(c.Category)
	if err != nil {
		return err
	}

	opts := simulation.Options{
		Quota:     c.Quota,
		MaxTrials: c.MaxTrials,
		Workers:   c.Workers,
		Logger:    &logger,
	}
	if c.Seed != nil {
		opts.Seed = *c.Seed
		logger.Info().Int64("seed", opts.Seed).Msg("Using deterministic seed")
	}

	sim := simulation.New(opts)
	result, err := sim.Estimate(context.Background(), target)
	if err != nil {
		return err
	}

	printResult(result)
	return nil
}

// printResult prints the report sentence followed by a detail table.
func printResult(result simulation.Result) {
	fmt.Printf("%s\n\n", percentStyle.Render(result.Report()))

	low, high := result.ConfidenceInterval(0.95)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	row := func(label, value string) {
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render(label), valueStyle.Render(value))
	}
	row("category", result.Category.String())
	row("matches", fmt.Sprintf("%d", result.Matches))
	row("trials", fmt.Sprintf("%d", result.Trials))
	row("95% CI", fmt.Sprintf("%.4f%% to %.4f%%", low, high))
	row("seed", fmt.Sprintf("%d", result.Seed))
	row("workers", fmt.Sprintf("%d", result.Workers))
	row("elapsed", fmt.Sprintf("%v (%.0f trials/s)", result.Elapsed.Truncate(simElapsedPrecision), result.TrialsPerSecond()))
	w.Flush()
}
