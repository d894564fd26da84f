package strategy

import (
	"math/rand"

	"blackjack-sim/blackjack"
)

// Random picks uniformly from the legal set. With an rng owned by the
// session it stays reproducible under a fixed seed.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Decide(h *blackjack.Hand, dealerUp int, legal []blackjack.Action) blackjack.Action {
	return legal[r.rng.Intn(len(legal))]
}
