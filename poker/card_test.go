package poker

import (
	"errors"
	"testing"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()

	aceSpades, err := NewCard(Ace, Spades)
	if err != nil {
		t.Fatalf("NewCard(Ace, Spades) returned error: %v", err)
	}
	if aceSpades.Rank() != Ace {
		t.Errorf("Expected rank Ace, got %d", aceSpades.Rank())
	}
	if aceSpades.Suit() != Spades {
		t.Errorf("Expected suit Spades, got %d", aceSpades.Suit())
	}
	if aceSpades.String() != "A♠" {
		t.Errorf("Expected 'A♠', got %s", aceSpades.String())
	}

	twoClubs := MustCard(Two, Clubs)
	if twoClubs.String() != "2♣" {
		t.Errorf("Expected '2♣', got %s", twoClubs.String())
	}
}

func TestCardCreationValidatesDomains(t *testing.T) {
	t.Parallel()

	// Every valid pair must construct
	for rank := Two; rank <= Ace; rank++ {
		for suit := Spades; suit <= Clubs; suit++ {
			card, err := NewCard(rank, suit)
			if err != nil {
				t.Fatalf("NewCard(%v, %v) returned error: %v", rank, suit, err)
			}
			if card.Rank() != rank || card.Suit() != suit {
				t.Errorf("accessors returned (%v, %v), want (%v, %v)", card.Rank(), card.Suit(), rank, suit)
			}
		}
	}

	tests := []struct {
		name string
		rank Rank
		suit Suit
	}{
		{"rank below domain", Rank(-1), Spades},
		{"rank above domain", Rank(13), Spades},
		{"suit below domain", Ace, Suit(-1)},
		{"suit above domain", Ace, Suit(4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCard(tt.rank, tt.suit)
			if err == nil {
				t.Fatalf("NewCard(%d, %d) should fail", tt.rank, tt.suit)
			}
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("error should wrap ErrInvalidValue, got %v", err)
			}
		})
	}
}

func TestCardOrderingIgnoresSuit(t *testing.T) {
	t.Parallel()

	aceSpades := MustCard(Ace, Spades)
	aceHearts := MustCard(Ace, Hearts)
	kingClubs := MustCard(King, Clubs)

	// Equality is rank-only: same rank, different suit
	if !aceSpades.EqualRank(aceHearts) {
		t.Error("A♠ and A♥ should compare equal by rank")
	}
	if aceSpades.Compare(aceHearts) != 0 {
		t.Error("Compare should ignore suit")
	}

	if !kingClubs.Less(aceSpades) {
		t.Error("K♣ should rank below A♠")
	}
	if aceSpades.Less(kingClubs) {
		t.Error("A♠ should not rank below K♣")
	}
	if aceSpades.Compare(kingClubs) <= 0 {
		t.Error("A♠ should compare above K♣")
	}
}

func TestRankIndex(t *testing.T) {
	t.Parallel()

	if Two.Index() != 0 {
		t.Errorf("Two should have index 0, got %d", Two.Index())
	}
	if Ace.Index() != 12 {
		t.Errorf("Ace should have index 12, got %d", Ace.Index())
	}
	if Six.Index()-Two.Index() != 4 {
		t.Errorf("Six-Two span should be 4, got %d", Six.Index()-Two.Index())
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "As", wantCard: MustCard(Ace, Spades)},
		{name: "two of hearts", input: "2h", wantCard: MustCard(Two, Hearts)},
		{name: "king of diamonds", input: "Kd", wantCard: MustCard(King, Diamonds)},
		{name: "ten of clubs", input: "Tc", wantCard: MustCard(Ten, Clubs)},
		{name: "lowercase rank", input: "qs", wantCard: MustCard(Queen, Spades)},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: "Asd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := ParseCard(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCard(%q) should fail", tt.input)
				}
				if !errors.Is(err, ErrInvalidValue) {
					t.Errorf("error should wrap ErrInvalidValue, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) returned error: %v", tt.input, err)
			}
			if card != tt.wantCard {
				t.Errorf("ParseCard(%q) = %v, want %v", tt.input, card, tt.wantCard)
			}
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards("AsKdTc")
	if err != nil {
		t.Fatalf("ParseCards returned error: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("Expected 3 cards, got %d", len(cards))
	}
	if cards[0] != MustCard(Ace, Spades) || cards[1] != MustCard(King, Diamonds) || cards[2] != MustCard(Ten, Clubs) {
		t.Errorf("Unexpected cards: %v", cards)
	}

	if _, err := ParseCards("AsK"); err == nil {
		t.Error("Odd-length input should fail")
	}
	if _, err := ParseCards("AsXx"); err == nil {
		t.Error("Invalid card in input should fail")
	}
}
