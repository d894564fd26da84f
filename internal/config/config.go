// Package config loads JSON simulation profiles: a saved set of table
// rules, simulation parameters and strategy names that would otherwise
// be spelled out as flags.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"blackjack-sim/blackjack"
	"blackjack-sim/sim"
)

// Profile mirrors the simulate flags as a reusable JSON file. Money is
// dollars here; it becomes cents when the profile is applied. Zero
// values fall back to the defaults, so a profile only needs the fields
// it changes.
type Profile struct {
	Strategies   []string `json:"strategies,omitempty"`
	Script       string   `json:"script,omitempty"`
	Exit         bool     `json:"exit,omitempty"`
	Games        int      `json:"games,omitempty"`
	Rounds       int      `json:"rounds,omitempty"`
	Bankroll     float64  `json:"bankroll,omitempty"`
	TableMin     float64  `json:"table_min,omitempty"`
	TableMax     float64  `json:"table_max,omitempty"`
	Decks        int      `json:"decks,omitempty"`
	Penetration  float64  `json:"penetration,omitempty"`
	MaxSplits    *int     `json:"max_splits,omitempty"`
	StandSoft17  bool     `json:"s17,omitempty"`
	NoDAS        bool     `json:"no_das,omitempty"`
	Surrender    bool     `json:"surrender,omitempty"`
	ResplitAces  bool     `json:"resplit_aces,omitempty"`
	Payout       string   `json:"payout,omitempty"`
	Seed         int64    `json:"seed,omitempty"`
	HandsPerHour int      `json:"hands_per_hour,omitempty"`
	Workers      int      `json:"workers,omitempty"`
	DrawdownPct  bool     `json:"drawdown_pct,omitempty"`
}

func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	return &p, nil
}

// Config builds the simulation config the profile describes, starting
// from the defaults and validating the result.
func (p *Profile) Config() (sim.Config, error) {
	cfg := sim.DefaultConfig()

	if p.Games > 0 {
		cfg.Sessions = p.Games
	}
	if p.Rounds > 0 {
		cfg.MaxRounds = p.Rounds
	}
	if p.Bankroll > 0 {
		cfg.StartBankroll = Cents(p.Bankroll)
	}
	if p.TableMin > 0 {
		cfg.Rules.TableMin = Cents(p.TableMin)
	}
	if p.TableMax > 0 {
		cfg.Rules.TableMax = Cents(p.TableMax)
	}
	if p.Decks > 0 {
		cfg.Rules.Decks = p.Decks
	}
	if p.Penetration > 0 {
		cfg.Rules.Penetration = p.Penetration
	}
	if p.MaxSplits != nil {
		cfg.Rules.MaxSplits = *p.MaxSplits
	}
	cfg.Rules.HitSoft17 = !p.StandSoft17
	cfg.Rules.DoubleAfterSplit = !p.NoDAS
	cfg.Rules.Surrender = p.Surrender
	cfg.Rules.ResplitAces = p.ResplitAces
	if p.Payout != "" {
		payout, err := ParsePayout(p.Payout)
		if err != nil {
			return sim.Config{}, err
		}
		cfg.Rules.Payout = payout
	}
	if p.Seed != 0 {
		cfg.Seed = p.Seed
	}
	if p.HandsPerHour > 0 {
		cfg.HandsPerHour = p.HandsPerHour
	}
	if p.Workers != 0 {
		cfg.Workers = p.Workers
	}
	cfg.DrawdownPct = p.DrawdownPct

	if err := cfg.Validate(); err != nil {
		return sim.Config{}, err
	}
	return cfg, nil
}

func ParsePayout(s string) (blackjack.Ratio, error) {
	switch s {
	case "3:2":
		return blackjack.PayoutThreeToTwo, nil
	case "6:5":
		return blackjack.PayoutSixToFive, nil
	}
	return blackjack.Ratio{}, blackjack.ErrConfig(fmt.Sprintf("unknown payout %q", s))
}

// Cents converts a dollar amount from a flag or profile to cents.
func Cents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}
