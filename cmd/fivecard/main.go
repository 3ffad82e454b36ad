package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Estimate EstimateCmd      `cmd:"" help:"Estimate the probability of a five-card hand category"`
	Run      RunCmd           `cmd:"" help:"Run a batch of estimates from an HCL config file"`
	Deal     DealCmd          `cmd:"" help:"Deal sample hands and show their classification"`
	Classify ClassifyCmd      `cmd:"" help:"Classify a hand given in card notation"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("fivecard"),
		kong.Description("Monte-Carlo probability estimates for five-card poker hands"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
