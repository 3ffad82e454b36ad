package main

import (
	"fmt"

	"github.com/lox/fivecard/poker"
)

// ClassifyCmd classifies a hand given in card notation.
type ClassifyCmd struct {
	Cards string `arg:"" help:"Five cards in notation like 'AsKsQsJsTs'"`
}

func (c *ClassifyCmd) Run() error {
	cards, err := poker.ParseCards(c.Cards)
	if err != nil {
		return err
	}

	hand, err := poker.HandFromCards(cards)
	if err != nil {
		return err
	}

	fmt.Printf("%s\t%s\n",
		valueStyle.Render(hand.String()),
		labelStyle.Render(describeHand(hand)))
	return nil
}
