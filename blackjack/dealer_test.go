package blackjack

import (
	"testing"

	"blackjack-sim/card"
)

func TestDealerSoft17(t *testing.T) {
	soft17 := NewHand(0, card.CardSpadeA, card.CardHeart6)
	if !DealerShouldHit(soft17, true) {
		t.Fatal("H17 dealer must hit soft 17")
	}
	if DealerShouldHit(soft17, false) {
		t.Fatal("S17 dealer must stand on soft 17")
	}

	// soft 17 from three cards follows the same rule
	soft17three := NewHand(0, card.CardSpadeA, card.CardHeart2, card.CardClub4)
	if !DealerShouldHit(soft17three, true) {
		t.Fatal("H17 dealer must hit three-card soft 17")
	}
}

func TestDealerHardTotals(t *testing.T) {
	hard16 := NewHand(0, card.CardSpadeT, card.CardHeart6)
	if !DealerShouldHit(hard16, true) || !DealerShouldHit(hard16, false) {
		t.Fatal("dealer hits hard 16 under both rules")
	}

	hard17 := NewHand(0, card.CardSpadeT, card.CardHeart7)
	if DealerShouldHit(hard17, true) || DealerShouldHit(hard17, false) {
		t.Fatal("dealer stands on hard 17 under both rules")
	}
}

func TestDealerSoft18Stands(t *testing.T) {
	soft18 := NewHand(0, card.CardSpadeA, card.CardHeart7)
	if DealerShouldHit(soft18, true) {
		t.Fatal("dealer stands on soft 18 even under H17")
	}
}
