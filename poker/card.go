// Package poker models playing cards, decks and five-card hands, and
// classifies hands by counting rank matches.
package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidValue is returned when a rank or suit is outside its domain.
var ErrInvalidValue = errors.New("value outside its domain")

// Rank represents a card rank, ordered from Two (lowest) to Ace (highest).
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the size of the rank domain.
const NumRanks = 13

// Valid reports whether the rank is within the 13-rank domain.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Index returns the rank's position in the rank order (Two=0 .. Ace=12).
func (r Rank) Index() int {
	return int(r)
}

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Suit represents a card suit. Suits carry no ordering for gameplay.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// NumSuits is the size of the suit domain.
const NumSuits = 4

// Valid reports whether the suit is within the 4-suit domain.
func (s Suit) Valid() bool {
	return s >= Spades && s <= Clubs
}

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Card represents a playing card. Cards are immutable once constructed.
//
// Ordering and equality are defined by rank alone: A♠ and A♥ compare equal.
// This is a deliberate semantic choice that hand classification depends on,
// not a missing feature.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a card after validating rank and suit against their
// domains.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("poker: invalid rank %d: %w", rank, ErrInvalidValue)
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("poker: invalid suit %d: %w", suit, ErrInvalidValue)
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustCard is like NewCard but panics on invalid input. Intended for
// constants and tests.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Rank returns the card's rank.
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the card's suit.
func (c Card) Suit() Suit {
	return c.suit
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.rank, c.suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.suit.IsRed()
}

// Compare orders cards by rank only. It returns a negative number when c
// ranks below other, zero when the ranks are equal (suit is ignored), and a
// positive number otherwise.
func (c Card) Compare(other Card) int {
	return c.rank.Index() - other.rank.Index()
}

// Less reports whether c ranks strictly below other.
func (c Card) Less(other Card) bool {
	return c.Compare(other) < 0
}

// EqualRank reports whether two cards share a rank, regardless of suit.
func (c Card) EqualRank(other Card) bool {
	return c.rank == other.rank
}

// ParseCard parses two-character card notation like "As", "Td" or "9h"
// (rank then suit letter).
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("poker: card %q must be 2 characters: %w", s, ErrInvalidValue)
	}

	var rank Rank
	switch s[0] {
	case '2':
		rank = Two
	case '3':
		rank = Three
	case '4':
		rank = Four
	case '5':
		rank = Five
	case '6':
		rank = Six
	case '7':
		rank = Seven
	case '8':
		rank = Eight
	case '9':
		rank = Nine
	case 'T', 't':
		rank = Ten
	case 'J', 'j':
		rank = Jack
	case 'Q', 'q':
		rank = Queen
	case 'K', 'k':
		rank = King
	case 'A', 'a':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("poker: invalid rank %q: %w", s[0:1], ErrInvalidValue)
	}

	var suit Suit
	switch s[1] {
	case 's', 'S':
		suit = Spades
	case 'h', 'H':
		suit = Hearts
	case 'd', 'D':
		suit = Diamonds
	case 'c', 'C':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("poker: invalid suit %q: %w", s[1:2], ErrInvalidValue)
	}

	return NewCard(rank, suit)
}

// ParseCards parses concatenated card notation like "AsKdTc".
func ParseCards(s string) ([]Card, error) {
	s = strings.TrimSpace(s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("poker: cards %q must be pairs of characters: %w", s, ErrInvalidValue)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
