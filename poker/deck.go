package poker

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrEmptyDeck is returned when dealing from a deck with no cards left.
var ErrEmptyDeck = errors.New("no cards remaining")

// DeckSize is the number of cards in a full deck.
const DeckSize = NumRanks * NumSuits

// Deck represents a standard 52-card deck. Cards are dealt front-to-back;
// a deck stays in fixed suit-major order until Shuffle is called.
type Deck struct {
	cards [DeckSize]Card
	next  int
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a full deck with every (rank, suit) combination exactly
// once, in fixed suit-major order. A nil rng falls back to the global
// random source.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}

	i := 0
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = Card{rank: rank, suit: suit}
			i++
		}
	}

	return d
}

// Shuffle permutes the remaining cards in place using Fisher-Yates.
func (d *Deck) Shuffle() {
	remaining := d.cards[d.next:]
	for i := len(remaining) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		remaining[i], remaining[j] = remaining[j], remaining[i]
	}
}

// Deal removes and returns the card at the front of the deck.
func (d *Deck) Deal() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, fmt.Errorf("poker: deal: %w", ErrEmptyDeck)
	}
	card := d.cards[d.next]
	d.next++
	return card, nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return d.CardsRemaining() == 0
}

// Reset restores the full 52 cards in their original order without
// reshuffling.
func (d *Deck) Reset() {
	*d = *NewDeck(d.rng)
}

// String renders the remaining cards front-to-back.
func (d *Deck) String() string {
	var out []byte
	for i, c := range d.cards[d.next:] {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, c.String()...)
	}
	return string(out)
}
