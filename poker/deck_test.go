package poker

import (
	"errors"
	"testing"

	"github.com/lox/fivecard/internal/randutil"
)

func TestNewDeck(t *testing.T) {
	t.Parallel()

	deck := NewDeck(randutil.New(42))

	if deck.CardsRemaining() != 52 {
		t.Errorf("Expected 52 cards, got %d", deck.CardsRemaining())
	}
	if deck.IsEmpty() {
		t.Error("New deck should not be empty")
	}

	// Every (rank, suit) combination exactly once
	seen := make(map[Card]bool)
	for !deck.IsEmpty() {
		card, err := deck.Deal()
		if err != nil {
			t.Fatalf("Deal returned error: %v", err)
		}
		if seen[card] {
			t.Errorf("Duplicate card dealt: %s", card)
		}
		seen[card] = true
	}
	if len(seen) != 52 {
		t.Errorf("Expected 52 distinct cards, got %d", len(seen))
	}
}

func TestNewDeckOrder(t *testing.T) {
	t.Parallel()

	// An unshuffled deck deals in fixed suit-major construction order.
	deck := NewDeck(randutil.New(42))

	first, err := deck.Deal()
	if err != nil {
		t.Fatalf("Deal returned error: %v", err)
	}
	if first != MustCard(Two, Spades) {
		t.Errorf("First card should be 2♠, got %s", first)
	}

	i := 1
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			if suit == Spades && rank == Two {
				continue
			}
			card, err := deck.Deal()
			if err != nil {
				t.Fatalf("Deal %d returned error: %v", i, err)
			}
			if card != MustCard(rank, suit) {
				t.Fatalf("Card %d should be %s, got %s", i, MustCard(rank, suit), card)
			}
			i++
		}
	}
}

func TestDeckShufflePreservesCards(t *testing.T) {
	t.Parallel()

	deck := NewDeck(randutil.New(42))
	deck.Shuffle()

	if deck.CardsRemaining() != 52 {
		t.Errorf("Shuffle changed deck size to %d", deck.CardsRemaining())
	}

	seen := make(map[Card]bool)
	for !deck.IsEmpty() {
		card, err := deck.Deal()
		if err != nil {
			t.Fatalf("Deal returned error: %v", err)
		}
		if seen[card] {
			t.Errorf("Duplicate card after shuffle: %s", card)
		}
		seen[card] = true
	}
	if len(seen) != 52 {
		t.Errorf("Expected 52 distinct cards after shuffle, got %d", len(seen))
	}
}

func TestDeckShuffleReorders(t *testing.T) {
	t.Parallel()

	ordered := NewDeck(randutil.New(42))
	shuffled := NewDeck(randutil.New(42))
	shuffled.Shuffle()

	// Identical decks are astronomically unlikely after a uniform shuffle
	differences := 0
	for i := 0; i < 52; i++ {
		a, _ := ordered.Deal()
		b, _ := shuffled.Deal()
		if a != b {
			differences++
		}
	}
	if differences == 0 {
		t.Error("Shuffled deck is identical to the ordered deck")
	}
}

func TestDeckDeal(t *testing.T) {
	t.Parallel()

	deck := NewDeck(randutil.New(42))
	initialCount := deck.CardsRemaining()

	card, err := deck.Deal()
	if err != nil {
		t.Fatalf("Deal should succeed on new deck: %v", err)
	}
	if deck.CardsRemaining() != initialCount-1 {
		t.Errorf("Expected %d cards after dealing, got %d", initialCount-1, deck.CardsRemaining())
	}
	if !card.Rank().Valid() || !card.Suit().Valid() {
		t.Errorf("Invalid card dealt: %s", card)
	}
}

func TestDeckDealEmpty(t *testing.T) {
	t.Parallel()

	deck := NewDeck(randutil.New(42))
	for i := 0; i < 52; i++ {
		if _, err := deck.Deal(); err != nil {
			t.Fatalf("Deal failed at card %d: %v", i+1, err)
		}
	}

	if !deck.IsEmpty() {
		t.Error("Deck should be empty after dealing all cards")
	}

	_, err := deck.Deal()
	if err == nil {
		t.Fatal("Deal should fail on empty deck")
	}
	if !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("error should wrap ErrEmptyDeck, got %v", err)
	}
}

func TestDeckReset(t *testing.T) {
	t.Parallel()

	deck := NewDeck(randutil.New(42))
	deck.Shuffle()
	for i := 0; i < 10; i++ {
		deck.Deal()
	}

	deck.Reset()
	if deck.CardsRemaining() != 52 {
		t.Errorf("Reset deck should have 52 cards, got %d", deck.CardsRemaining())
	}

	first, err := deck.Deal()
	if err != nil {
		t.Fatalf("Deal returned error: %v", err)
	}
	if first != MustCard(Two, Spades) {
		t.Errorf("Reset deck should deal 2♠ first, got %s", first)
	}
}

func TestDeckNilRNG(t *testing.T) {
	t.Parallel()

	// A nil rng falls back to the global source; shuffling must still work.
	deck := NewDeck(nil)
	deck.Shuffle()
	if deck.CardsRemaining() != 52 {
		t.Errorf("Expected 52 cards, got %d", deck.CardsRemaining())
	}
}
