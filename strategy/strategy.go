// Package strategy provides the pluggable pieces a session is assembled
// from: a playing strategy, a counting system, a bet sizer and an
// optional exit policy. Implementations carry per-session state, so a
// Strategy bundles factories rather than instances.
package strategy

import (
	"math/rand"

	"blackjack-sim/blackjack"
)

// Counter follows every revealed card and exposes the signal bet sizers
// key on. It also hears round boundaries and per-hand outcomes, which
// the streak counters use instead of cards.
type Counter interface {
	blackjack.CardObserver

	// TrueCount is the counter's current signal. For card counters this
	// is the running count normalized by estimated decks remaining; for
	// streak counters it is the streak length.
	TrueCount() float64

	// EndRound marks a round boundary.
	EndRound()

	// ObserveOutcome reports one settled hand's net result.
	ObserveOutcome(net int64)

	// Reset clears all state when the shoe is reshuffled.
	Reset()
}

// BetSizer maps the counter's signal to a wager. The session clamps the
// result to the table limits.
type BetSizer interface {
	BetFor(trueCount float64) int64
}

// ExitPolicy is queried after each round settles. Stateful across the
// session; never reset mid-session.
type ExitPolicy interface {
	ShouldExit(bankroll int64) bool
}

// Strategy is a named bundle of component factories. Each session calls
// the factories once, so no state leaks between sessions.
type Strategy struct {
	Name     string
	Playing  func(rng *rand.Rand) blackjack.PlayingStrategy
	Counting func(decks int) Counter
	Betting  func(tableMin, tableMax int64) BetSizer
	Exit     func(start int64) ExitPolicy // nil means play until bust or max rounds
}
