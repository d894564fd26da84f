package blackjack

import (
	"testing"

	"blackjack-sim/card"
)

func TestHandValue(t *testing.T) {
	cases := []struct {
		name  string
		cards []card.Card
		total int
		soft  bool
	}{
		{"hard 20", []card.Card{card.CardSpadeK, card.CardHeartQ}, 20, false},
		{"soft 18", []card.Card{card.CardSpadeA, card.CardHeart7}, 18, true},
		{"two aces", []card.Card{card.CardSpadeA, card.CardHeartA}, 12, true},
		{"soft 19 with two aces", []card.Card{card.CardSpadeA, card.CardHeart7, card.CardClubA}, 19, true},
		{"aces forced hard", []card.Card{card.CardSpadeA, card.CardHeart7, card.CardClubA, card.CardDiamond5}, 14, false},
		{"three aces", []card.Card{card.CardSpadeA, card.CardHeartA, card.CardClubA}, 13, true},
		{"soft 21", []card.Card{card.CardSpadeA, card.CardHeartA, card.CardClub9}, 21, true},
		{"hard 21 after demotion", []card.Card{card.CardSpadeA, card.CardHeartA, card.CardClubT, card.CardDiamond9}, 21, false},
		{"bust", []card.Card{card.CardSpadeK, card.CardHeartQ, card.CardClub5}, 25, false},
	}
	for _, tc := range cases {
		h := NewHand(0, tc.cards...)
		total, soft := h.Value()
		if total != tc.total || soft != tc.soft {
			t.Fatalf("%s: value = (%d, %v), want (%d, %v)", tc.name, total, soft, tc.total, tc.soft)
		}
	}
}

func TestIsBust(t *testing.T) {
	h := NewHand(0, card.CardSpadeK, card.CardHeartQ)
	if h.IsBust() {
		t.Fatal("20 is not bust")
	}
	h.AddCard(card.CardClubA)
	if h.IsBust() {
		t.Fatal("21 with demoted ace is not bust")
	}
	h.AddCard(card.CardDiamond5)
	if !h.IsBust() {
		t.Fatal("26 should be bust")
	}
}

func TestIsBlackjack(t *testing.T) {
	if !NewHand(0, card.CardSpadeA, card.CardHeartK).IsBlackjack() {
		t.Fatal("A+K should be blackjack")
	}

	split := NewHand(0, card.CardSpadeA, card.CardHeartK)
	split.FromSplit = true
	if split.IsBlackjack() {
		t.Fatal("21 on a split hand is not blackjack")
	}

	three := NewHand(0, card.CardSpade7, card.CardHeart7, card.CardClub7)
	if three.IsBlackjack() {
		t.Fatal("21 with three cards is not blackjack")
	}
}

func TestIsPair(t *testing.T) {
	if !NewHand(0, card.CardSpade8, card.CardHeart8).IsPair() {
		t.Fatal("8+8 is a pair")
	}
	// ten-value cards pair by value, not by rank
	if !NewHand(0, card.CardSpadeK, card.CardHeartT).IsPair() {
		t.Fatal("K+T is a pair")
	}
	if NewHand(0, card.CardSpade8, card.CardHeart9).IsPair() {
		t.Fatal("8+9 is not a pair")
	}
	if NewHand(0, card.CardSpadeA, card.CardHeartK).IsPair() {
		t.Fatal("A+K is not a pair")
	}
}

func TestCanSplit(t *testing.T) {
	h := NewHand(0, card.CardSpade8, card.CardHeart8)
	if !h.CanSplit(0, 3, false) {
		t.Fatal("fresh pair should split")
	}
	if h.CanSplit(3, 3, false) {
		t.Fatal("split budget exhausted")
	}

	aces := NewHand(0, card.CardSpadeA, card.CardHeartA)
	aces.FromSplit = true
	aces.FromSplitAces = true
	if aces.CanSplit(1, 3, false) {
		t.Fatal("no resplit of aces when disabled")
	}
	if !aces.CanSplit(1, 3, true) {
		t.Fatal("resplit of aces allowed when enabled")
	}
}

func TestCanDouble(t *testing.T) {
	h := NewHand(0, card.CardSpade5, card.CardHeart6)
	if !h.CanDouble(false) {
		t.Fatal("two fresh cards should double")
	}

	h.FromSplit = true
	if h.CanDouble(false) {
		t.Fatal("no double after split without DAS")
	}
	if !h.CanDouble(true) {
		t.Fatal("DAS allows double after split")
	}

	h.AddCard(card.CardClub2)
	if h.CanDouble(true) {
		t.Fatal("no double with three cards")
	}
}
