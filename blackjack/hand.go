package blackjack

import (
	"fmt"
	"strings"

	"blackjack-sim/card"
)

// Hand 一手牌。分牌会产生多手，各自独立结算。
type Hand struct {
	Cards  card.CardList
	Wager  int64
	Status HandStatus

	// Split lineage
	FromSplit     bool
	FromSplitAces bool
	SplitDepth    int
}

func NewHand(wager int64, cards ...card.Card) *Hand {
	h := &Hand{Wager: wager}
	h.Cards.Add(cards...)
	return h
}

func (h *Hand) AddCard(c card.Card) {
	h.Cards.Add(c)
}

// Value 返回最优点数与是否软牌。
// A 先按 11 计，超过 21 时逐张降为 1；仍有 A 按 11 计则为软牌。
func (h *Hand) Value() (total int, soft bool) {
	aces := 0
	for _, c := range h.Cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0
}

func (h *Hand) IsBust() bool {
	total, _ := h.Value()
	return total > 21
}

// IsBlackjack 两张牌 21 点，且不是分牌后的手牌。
func (h *Hand) IsBlackjack() bool {
	if h.FromSplit || len(h.Cards) != 2 {
		return false
	}
	total, _ := h.Value()
	return total == 21
}

// IsPair 两张同点值的牌（十点牌互为对子，可分）。
func (h *Hand) IsPair() bool {
	return len(h.Cards) == 2 && h.Cards[0].Value() == h.Cards[1].Value()
}

// CanSplit reports pair eligibility under the split budget and ace rules.
// Funds are checked by the round, not here.
func (h *Hand) CanSplit(splitsUsed, maxSplits int, resplitAces bool) bool {
	if !h.IsPair() {
		return false
	}
	if splitsUsed >= maxSplits {
		return false
	}
	if h.FromSplitAces && !resplitAces {
		return false
	}
	return true
}

// CanDouble reports double eligibility under the DAS rule.
// Funds are checked by the round, not here.
func (h *Hand) CanDouble(das bool) bool {
	if len(h.Cards) != 2 {
		return false
	}
	if h.FromSplit && !das {
		return false
	}
	return true
}

func (h *Hand) String() string {
	parts := make([]string, 0, len(h.Cards))
	for _, c := range h.Cards {
		parts = append(parts, c.String())
	}
	total, soft := h.Value()
	if soft {
		return fmt.Sprintf("%s (soft %d)", strings.Join(parts, " "), total)
	}
	return fmt.Sprintf("%s (%d)", strings.Join(parts, " "), total)
}
