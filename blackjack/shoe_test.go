package blackjack

import (
	"math/rand"
	"testing"

	"blackjack-sim/card"
)

func TestShoeReshuffleThreshold(t *testing.T) {
	// 1 deck at 0.75 penetration: the cut sits 13 cards from the bottom.
	s := NewShoe(1, 0.75, rand.New(rand.NewSource(1)))
	if s.Total() != 52 {
		t.Fatalf("total = %d, want 52", s.Total())
	}

	for s.Remaining() > 14 {
		if _, err := s.Draw(); err != nil {
			t.Fatalf("draw: %v", err)
		}
	}
	if s.NeedsReshuffle() {
		t.Fatal("14 cards remaining should not trigger a reshuffle")
	}
	if _, err := s.Draw(); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if !s.NeedsReshuffle() {
		t.Fatal("13 cards remaining should trigger a reshuffle")
	}

	s.Reset()
	if s.Remaining() != 52 {
		t.Fatalf("remaining after reset = %d, want 52", s.Remaining())
	}
	if s.NeedsReshuffle() {
		t.Fatal("fresh shoe should not need a reshuffle")
	}
}

func TestShoeDeterministicUnderSeed(t *testing.T) {
	a := NewShoe(2, 0.75, rand.New(rand.NewSource(42)))
	b := NewShoe(2, 0.75, rand.New(rand.NewSource(42)))
	for i := 0; i < 104; i++ {
		ca, err := a.Draw()
		if err != nil {
			t.Fatalf("draw a: %v", err)
		}
		cb, err := b.Draw()
		if err != nil {
			t.Fatalf("draw b: %v", err)
		}
		if ca != cb {
			t.Fatalf("card %d differs: %v vs %v", i, ca, cb)
		}
	}
}

func TestShoeContainsEveryCardPerDeck(t *testing.T) {
	s := NewShoe(2, 0.5, rand.New(rand.NewSource(7)))
	seen := make(map[card.Card]int, 52)
	for s.Remaining() > 0 {
		c, err := s.Draw()
		if err != nil {
			t.Fatalf("draw: %v", err)
		}
		seen[c]++
	}
	if len(seen) != 52 {
		t.Fatalf("distinct cards = %d, want 52", len(seen))
	}
	for c, n := range seen {
		if n != 2 {
			t.Fatalf("card %v appeared %d times, want 2", c, n)
		}
	}
}

func TestShoeFromCardsDealsInOrder(t *testing.T) {
	want := []card.Card{card.CardSpadeA, card.CardHeartK, card.CardClub7}
	s, err := NewShoeFromCards(want, 0.5)
	if err != nil {
		t.Fatalf("NewShoeFromCards: %v", err)
	}
	for i, w := range want {
		c, err := s.Draw()
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		if c != w {
			t.Fatalf("draw %d = %v, want %v", i, c, w)
		}
	}

	// Reset restores the same fixed order.
	s.Reset()
	c, err := s.Draw()
	if err != nil {
		t.Fatalf("draw after reset: %v", err)
	}
	if c != want[0] {
		t.Fatalf("draw after reset = %v, want %v", c, want[0])
	}
}

func TestShoeEmptyDraw(t *testing.T) {
	s, err := NewShoeFromCards([]card.Card{card.CardSpade2}, 0.5)
	if err != nil {
		t.Fatalf("NewShoeFromCards: %v", err)
	}
	if _, err := s.Draw(); err != nil {
		t.Fatalf("first draw: %v", err)
	}
	if _, err := s.Draw(); err != ErrShoeEmpty {
		t.Fatalf("err = %v, want ErrShoeEmpty", err)
	}
}

func TestShoeFromCardsRejectsBadInput(t *testing.T) {
	if _, err := NewShoeFromCards(nil, 0.5); err == nil {
		t.Fatal("empty fixed shoe should be rejected")
	}
	if _, err := NewShoeFromCards([]card.Card{card.CardInvalid}, 0.5); err == nil {
		t.Fatal("invalid card should be rejected")
	}
}
