// Package sim runs strategy sessions and folds them into aggregate
// statistics. Sessions are fully independent: each owns a shoe, an rng
// and fresh strategy component instances, which is what lets the runner
// parallelize them without any shared state.
package sim

import (
	"blackjack-sim/blackjack"
)

// Config carries the simulation parameters around one rule set.
type Config struct {
	Rules         blackjack.Rules
	Sessions      int   // independent sessions per strategy
	MaxRounds     int   // per-session round cap
	StartBankroll int64 // cents
	Seed          int64 // parent seed, per-session seeds derive from it
	HandsPerHour  int   // table pace, scales EV per round to an hourly rate
	Workers       int   // <= 0 means one per CPU
	DrawdownPct   bool  // report drawdown as percent of start instead of dollars
}

func DefaultConfig() Config {
	return Config{
		Rules:         blackjack.DefaultRules(),
		Sessions:      1000,
		MaxRounds:     500,
		StartBankroll: 100000,
		Seed:          1,
		HandsPerHour:  70,
	}
}

func (c Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if c.Sessions <= 0 {
		return blackjack.ErrConfig("sessions must be positive")
	}
	if c.MaxRounds <= 0 {
		return blackjack.ErrConfig("max rounds must be positive")
	}
	if c.StartBankroll < c.Rules.TableMin {
		return blackjack.ErrConfig("starting bankroll cannot cover the table minimum")
	}
	if c.HandsPerHour <= 0 {
		return blackjack.ErrConfig("hands per hour must be positive")
	}
	return nil
}
