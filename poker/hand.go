package poker

import (
	"fmt"
	"slices"
	"strings"
)

// HandSize is the number of cards dealt into a hand.
const HandSize = 5

// Hand is a five-card hand dealt from a deck. Hands are immutable after
// construction; classification predicates are pure functions of the dealt
// cards.
type Hand struct {
	cards   [HandSize]Card
	matches int
}

// NewHand deals five cards from the deck. Availability is checked before
// any card is dealt, so a short deck fails without mutating it.
func NewHand(d *Deck) (*Hand, error) {
	if remaining := d.CardsRemaining(); remaining < HandSize {
		return nil, fmt.Errorf("poker: hand needs %d cards, deck has %d: %w", HandSize, remaining, ErrEmptyDeck)
	}

	h := &Hand{}
	for i := range h.cards {
		card, err := d.Deal()
		if err != nil {
			return nil, err
		}
		h.cards[i] = card
	}
	h.matches = countMatches(h.cards)
	return h, nil
}

// HandFromCards builds a hand directly from exactly five cards, for
// classifying hands that were not dealt here.
func HandFromCards(cards []Card) (*Hand, error) {
	if len(cards) != HandSize {
		return nil, fmt.Errorf("poker: hand needs %d cards, got %d: %w", HandSize, len(cards), ErrInvalidValue)
	}
	h := &Hand{}
	copy(h.cards[:], cards)
	h.matches = countMatches(h.cards)
	return h, nil
}

// countMatches counts ordered same-rank pairs, so each unordered matching
// pair contributes 2. Possible values are 0, 2, 4, 6, 8 and 12.
func countMatches(cards [HandSize]Card) int {
	matches := 0
	for i := range cards {
		for j := range cards {
			if i != j && cards[i].EqualRank(cards[j]) {
				matches++
			}
		}
	}
	return matches
}

// Cards returns a copy of the hand's cards in dealt order.
func (h *Hand) Cards() []Card {
	cards := make([]Card, HandSize)
	copy(cards, h.cards[:])
	return cards
}

// MatchCount returns the number of ordered same-rank pairs in the hand.
func (h *Hand) MatchCount() int {
	return h.matches
}

// IsFlush reports whether all five cards share a suit.
func (h *Hand) IsFlush() bool {
	suit := h.cards[0].Suit()
	for _, c := range h.cards[1:] {
		if c.Suit() != suit {
			return false
		}
	}
	return true
}

// IsPair reports exactly one pair.
func (h *Hand) IsPair() bool {
	return h.matches == 2
}

// IsTwoPair reports exactly two distinct pairs.
func (h *Hand) IsTwoPair() bool {
	return h.matches == 4
}

// IsTrips reports three of a kind (without a second pair).
func (h *Hand) IsTrips() bool {
	return h.matches == 6
}

// IsFullHouse reports three of a kind plus a pair.
func (h *Hand) IsFullHouse() bool {
	return h.matches == 8
}

// IsQuads reports four of a kind.
func (h *Hand) IsQuads() bool {
	return h.matches == 12
}

// IsStraight reports five distinct ranks spanning exactly four rank steps.
//
// The check sorts a copy of the cards, so the dealt order is preserved.
// A-2-3-4-5 is not recognized: Ace sorts highest, so its span is 12. That
// is a property of the rank-index arithmetic this model is defined by, not
// an oversight.
func (h *Hand) IsStraight() bool {
	if h.matches != 0 {
		return false
	}
	sorted := h.Cards()
	slices.SortFunc(sorted, Card.Compare)
	high := sorted[HandSize-1].Rank().Index()
	low := sorted[0].Rank().Index()
	return high-low == 4
}

// String renders the hand in dealt order, e.g. "A♠ K♦ 7♣ 7♥ 2♠".
func (h *Hand) String() string {
	parts := make([]string, HandSize)
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Category identifies a hand classification that the simulator can target.
type Category uint8

const (
	Pair Category = iota
	TwoPair
	Trips
	Straight
	Flush
	FullHouse
	Quads
)

// Categories returns every category, weakest first.
func Categories() []Category {
	return []Category{Pair, TwoPair, Trips, Straight, Flush, FullHouse, Quads}
}

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case Pair:
		return "pair"
	case TwoPair:
		return "two pair"
	case Trips:
		return "three of a kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case Quads:
		return "four of a kind"
	default:
		return "unknown"
	}
}

// ParseCategory parses a category name as used on the command line.
// Accepted spellings: pair, two-pair, trips, straight, flush, full-house,
// quads (hyphens and spaces are interchangeable).
func ParseCategory(s string) (Category, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", " ") {
	case "pair":
		return Pair, nil
	case "two pair", "2pair":
		return TwoPair, nil
	case "trips", "three of a kind":
		return Trips, nil
	case "straight":
		return Straight, nil
	case "flush":
		return Flush, nil
	case "full house":
		return FullHouse, nil
	case "quads", "four of a kind":
		return Quads, nil
	default:
		return 0, fmt.Errorf("poker: unknown hand category %q: %w", s, ErrInvalidValue)
	}
}

// Matches reports whether the hand satisfies the category's predicate.
// Categories are membership tests, not a ranking: a full house matches
// FullHouse but not Pair.
func (h *Hand) Matches(c Category) bool {
	switch c {
	case Pair:
		return h.IsPair()
	case TwoPair:
		return h.IsTwoPair()
	case Trips:
		return h.IsTrips()
	case Straight:
		return h.IsStraight()
	case Flush:
		return h.IsFlush()
	case FullHouse:
		return h.IsFullHouse()
	case Quads:
		return h.IsQuads()
	default:
		return false
	}
}

// Classify returns every category the hand satisfies, weakest first.
func (h *Hand) Classify() []Category {
	var out []Category
	for _, c := range Categories() {
		if h.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}
