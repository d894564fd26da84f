package strategy

import (
	"blackjack-sim/card"
)

// trueCount normalizes a running count by the estimated decks left in
// the shoe. The estimate is floored at half a deck so the ratio does
// not blow up at deep penetration.
func trueCount(running, totalCards, seen int) float64 {
	remaining := totalCards - seen
	decksLeft := float64(remaining) / 52
	if decksLeft < 0.5 {
		decksLeft = 0.5
	}
	return float64(running) / decksLeft
}

// HiLo is the classic balanced count: 2-6 are +1, 7-9 neutral, tens and
// aces -1.
type HiLo struct {
	totalCards int
	seen       int
	running    int
}

func NewHiLo(decks int) *HiLo {
	return &HiLo{totalCards: decks * 52}
}

func (c *HiLo) OnCardRevealed(cd card.Card) {
	v := cd.Value()
	switch {
	case v >= 2 && v <= 6:
		c.running++
	case v >= 10:
		c.running--
	}
	c.seen++
}

func (c *HiLo) TrueCount() float64 { return trueCount(c.running, c.totalCards, c.seen) }

func (c *HiLo) EndRound() {}

func (c *HiLo) ObserveOutcome(int64) {}

func (c *HiLo) Reset() {
	c.seen = 0
	c.running = 0
}

// None is the counter for strategies that do not count. Its signal is
// always zero.
type None struct{}

func NewNone(int) None { return None{} }

func (None) OnCardRevealed(card.Card) {}

func (None) TrueCount() float64 { return 0 }

func (None) EndRound() {}

func (None) ObserveOutcome(int64) {}

func (None) Reset() {}

// Pseudo tracks round-level card composition instead of single cards.
// Each round contributes the ratio of low cards to high cards seen, so
// a lopsided round moves the count more than a narrow one.
type Pseudo struct {
	totalCards int
	seen       int
	running    int
	low        int
	high       int
}

func NewPseudo(decks int) *Pseudo {
	return &Pseudo{totalCards: decks * 52}
}

func (c *Pseudo) OnCardRevealed(cd card.Card) {
	v := cd.Value()
	switch {
	case v >= 2 && v <= 6:
		c.low++
	case v >= 10:
		c.high++
	}
	c.seen++
}

func (c *Pseudo) EndRound() {
	switch {
	case c.low > c.high:
		if c.high == 0 {
			c.running += c.low / 2
		} else {
			c.running += c.low / c.high
		}
	case c.high > c.low:
		if c.low == 0 {
			c.running -= c.high / 2
		} else {
			c.running -= c.high / c.low
		}
	}
	c.low, c.high = 0, 0
}

func (c *Pseudo) TrueCount() float64 { return trueCount(c.running, c.totalCards, c.seen) }

func (c *Pseudo) ObserveOutcome(int64) {}

func (c *Pseudo) Reset() {
	c.seen = 0
	c.running = 0
	c.low, c.high = 0, 0
}

// WinStreak reports consecutive winning hands. Pushes leave the streak
// alone.
type WinStreak struct {
	streak int
}

func NewWinStreak(int) *WinStreak { return &WinStreak{} }

func (c *WinStreak) OnCardRevealed(card.Card) {}

func (c *WinStreak) TrueCount() float64 { return float64(c.streak) }

func (c *WinStreak) EndRound() {}

func (c *WinStreak) ObserveOutcome(net int64) {
	switch {
	case net > 0:
		c.streak++
	case net < 0:
		c.streak = 0
	}
}

func (c *WinStreak) Reset() { c.streak = 0 }

// LossStreak reports consecutive losing hands, the signal Martingale
// style progressions key on.
type LossStreak struct {
	streak int
}

func NewLossStreak(int) *LossStreak { return &LossStreak{} }

func (c *LossStreak) OnCardRevealed(card.Card) {}

func (c *LossStreak) TrueCount() float64 { return float64(c.streak) }

func (c *LossStreak) EndRound() {}

func (c *LossStreak) ObserveOutcome(net int64) {
	switch {
	case net > 0:
		c.streak = 0
	case net < 0:
		c.streak++
	}
}

func (c *LossStreak) Reset() { c.streak = 0 }
