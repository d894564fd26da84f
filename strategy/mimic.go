package strategy

import (
	"blackjack-sim/blackjack"
)

// Mimic plays the dealer's own rule from the player seat: hit below 17,
// stand otherwise. Never doubles, splits or surrenders. Useful as a
// worst-reasonable-play baseline.
type Mimic struct{}

func NewMimic() Mimic { return Mimic{} }

func (Mimic) Decide(h *blackjack.Hand, dealerUp int, legal []blackjack.Action) blackjack.Action {
	total, _ := h.Value()
	if total < 17 && hasAction(legal, blackjack.ActionHit) {
		return blackjack.ActionHit
	}
	return blackjack.ActionStand
}
