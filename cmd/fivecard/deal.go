package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/lox/fivecard/cmd/fivecard/shared"
	"github.com/lox/fivecard/internal/randutil"
	"github.com/lox/fivecard/poker"
)

// DealCmd deals hands from shuffled decks and prints what each one is.
type DealCmd struct {
	Count int    `default:"5" help:"Number of hands to deal"`
	Seed  *int64 `help:"Deterministic RNG seed (optional)"`
	Debug bool   `help:"Enable debug logging"`
}

func (c *DealCmd) Run() error {
	logger := shared.SetupLogger(c.Debug, false)

	seed := randutil.NewSeed()
	if c.Seed != nil {
		seed = *c.Seed
		logger.Info().Int64("seed", seed).Msg("Using deterministic seed")
	}
	rng := randutil.New(seed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("hand"), headerStyle.Render("classification"))

	// A deck yields at most ten hands before it runs out.
	deck := poker.NewDeck(rng)
	deck.Shuffle()
	for i := 0; i < c.Count; i++ {
		if deck.CardsRemaining() < poker.HandSize {
			deck = poker.NewDeck(rng)
			deck.Shuffle()
		}

		hand, err := poker.NewHand(deck)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s\t%s\n",
			valueStyle.Render(hand.String()),
			labelStyle.Render(describeHand(hand)))
	}

	return w.Flush()
}

func describeHand(hand *poker.Hand) string {
	categories := hand.Classify()
	if len(categories) == 0 {
		return "high card"
	}
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}
