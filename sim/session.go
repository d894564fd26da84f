package sim

import (
	"fmt"
	"io"
	"math/rand"

	"blackjack-sim/blackjack"
	"blackjack-sim/strategy"
)

// SessionResult is the record one session leaves behind. Money fields
// are cents.
type SessionResult struct {
	Rounds           int
	FinalBankroll    int64
	TotalWagered     int64
	TotalWon         int64 // sum of winning rounds' nets
	TotalLost        int64 // sum of losing rounds' nets, as a positive number
	PeakBankroll     int64
	MinBankroll      int64
	MaxDrawdown      int64 // largest peak-to-bankroll drop seen during play
	Busted           bool
	Exited           bool
	HandsWon         int
	HandsLost        int
	HandsPushed      int
	HandsSurrendered int
}

func (r SessionResult) HandsPlayed() int {
	return r.HandsWon + r.HandsLost + r.HandsPushed + r.HandsSurrendered
}

// Session 一次独立会话：自有牌靴、随机源与策略组件，互不共享。
// Runs one bankroll through rounds until bust, exit, or the round cap.
type Session struct {
	cfg     Config
	rng     *rand.Rand
	shoe    *blackjack.Shoe
	playing blackjack.PlayingStrategy
	counter strategy.Counter
	sizer   strategy.BetSizer
	exit    strategy.ExitPolicy
}

// NewSession instantiates the strategy bundle for one session. The rng
// seeds both the shoe shuffle and any strategy randomness.
func NewSession(cfg Config, strat strategy.Strategy, seed int64) *Session {
	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		cfg:     cfg,
		rng:     rng,
		shoe:    blackjack.NewShoe(cfg.Rules.Decks, cfg.Rules.Penetration, rng),
		playing: strat.Playing(rng),
		counter: strat.Counting(cfg.Rules.Decks),
		sizer:   strat.Betting(cfg.Rules.TableMin, cfg.Rules.TableMax),
	}
	if strat.Exit != nil {
		s.exit = strat.Exit(cfg.StartBankroll)
	}
	return s
}

// Run plays the session out. Round order: reshuffle check, bet sizing
// from the count left by the previous round, affordability check, round
// resolution, tallies and counter feedback, then the stop conditions.
// A strategy error aborts the session; it is a bug, not an outcome.
func (s *Session) Run() (SessionResult, error) {
	defer func() {
		if c, ok := s.playing.(io.Closer); ok {
			c.Close()
		}
	}()

	bankroll := s.cfg.StartBankroll
	res := SessionResult{
		FinalBankroll: bankroll,
		PeakBankroll:  bankroll,
		MinBankroll:   bankroll,
	}

	for res.Rounds < s.cfg.MaxRounds {
		if s.shoe.NeedsReshuffle() {
			s.shoe.Reset()
			s.counter.Reset()
		}

		bet := clampBet(s.sizer.BetFor(s.counter.TrueCount()), s.cfg.Rules.TableMin, s.cfg.Rules.TableMax)
		if bankroll < bet {
			res.Busted = true
			break
		}

		rr, err := blackjack.PlayRound(s.cfg.Rules, s.shoe, s.playing, s.counter, bet, bankroll-bet)
		if err != nil {
			return res, fmt.Errorf("round %d: %w", res.Rounds+1, err)
		}
		res.Rounds++

		bankroll += rr.Net
		res.TotalWagered += rr.Wagered
		if rr.Net > 0 {
			res.TotalWon += rr.Net
		} else {
			res.TotalLost -= rr.Net
		}

		for _, h := range rr.Hands {
			switch h.Outcome {
			case blackjack.OutcomeWin, blackjack.OutcomeBlackjack:
				res.HandsWon++
			case blackjack.OutcomeLoss:
				res.HandsLost++
			case blackjack.OutcomePush:
				res.HandsPushed++
			case blackjack.OutcomeSurrender:
				res.HandsSurrendered++
			}
			s.counter.ObserveOutcome(h.Net)
		}
		s.counter.EndRound()

		if bankroll > res.PeakBankroll {
			res.PeakBankroll = bankroll
		}
		if bankroll < res.MinBankroll {
			res.MinBankroll = bankroll
		}
		if dd := res.PeakBankroll - bankroll; dd > res.MaxDrawdown {
			res.MaxDrawdown = dd
		}

		if s.exit != nil && s.exit.ShouldExit(bankroll) {
			res.Exited = true
			break
		}
		if bankroll < s.cfg.Rules.TableMin {
			res.Busted = true
			break
		}
	}

	res.FinalBankroll = bankroll
	return res, nil
}

func clampBet(bet, min, max int64) int64 {
	if bet < min {
		return min
	}
	if bet > max {
		return max
	}
	return bet
}
