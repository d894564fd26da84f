package strategy

import (
	"math/rand"

	"blackjack-sim/blackjack"
)

func countNone(decks int) Counter       { return NewNone(decks) }
func countHiLo(decks int) Counter       { return NewHiLo(decks) }
func countPseudo(decks int) Counter     { return NewPseudo(decks) }
func countWinStreak(decks int) Counter  { return NewWinStreak(decks) }
func countLossStreak(decks int) Counter { return NewLossStreak(decks) }

func betFlat(min, _ int64) BetSizer { return Flat{Amount: min} }

func betMartingale(min, max int64) BetSizer {
	return Progression{Base: min, Mult: 2, Max: max}
}

func betWin124(min, max int64) BetSizer {
	return Progression{Base: min, Mult: 2, Cycle: 3, Max: max}
}

func betLinear(min, max int64) BetSizer {
	return NewSpread(min,
		SpreadStep{Count: 1, Amount: max / 5},
		SpreadStep{Count: 2, Amount: 2 * max / 5},
		SpreadStep{Count: 3, Amount: 3 * max / 5},
		SpreadStep{Count: 4, Amount: 4 * max / 5},
		SpreadStep{Count: 5, Amount: max},
	)
}

func betMinMax(min, max int64) BetSizer {
	return NewSpread(min, SpreadStep{Count: 3, Amount: max})
}

func exitDouble(start int64) ExitPolicy     { return NewDoubleUp(start) }
func exitPeak(start int64) ExitPolicy       { return NewPeakTrailing(start, 0.10, 0.50) }
func exitWinLoss(start int64) ExitPolicy    { return NewWinLossStop(start, 0.30, 0.40) }
func exitProfitLock(start int64) ExitPolicy { return NewProfitLock(start, 0.30, 0.40) }

// Presets returns the built-in strategy lineup for the given rules.
// With includeExit every base entry is expanded into its four exit
// variants instead.
func Presets(rules blackjack.Rules, includeExit bool) []Strategy {
	playBasic := func(*rand.Rand) blackjack.PlayingStrategy {
		return NewBasic(rules.HitSoft17, rules.DoubleAfterSplit)
	}

	base := []Strategy{
		{Name: "Basic + Flat", Playing: playBasic, Counting: countNone, Betting: betFlat},
		{Name: "Basic + Martingale", Playing: playBasic, Counting: countLossStreak, Betting: betMartingale},
		{Name: "Basic + Win 1-2-4", Playing: playBasic, Counting: countWinStreak, Betting: betWin124},
		{Name: "Basic + Hi-Lo + Linear", Playing: playBasic, Counting: countHiLo, Betting: betLinear},
		{Name: "Basic + Hi-Lo + MinMax", Playing: playBasic, Counting: countHiLo, Betting: betMinMax},
		{Name: "Basic + Pseudo + Linear", Playing: playBasic, Counting: countPseudo, Betting: betLinear},
		{Name: "Basic + Pseudo + MinMax", Playing: playBasic, Counting: countPseudo, Betting: betMinMax},
	}
	if !includeExit {
		return base
	}

	exits := []struct {
		suffix string
		build  func(int64) ExitPolicy
	}{
		{" + Exit:Double", exitDouble},
		{" + Exit:Peak", exitPeak},
		{" + Exit:WinLossStop", exitWinLoss},
		{" + Exit:ProfitLock", exitProfitLock},
	}

	out := make([]Strategy, 0, len(base)*len(exits))
	for _, b := range base {
		for _, e := range exits {
			s := b
			s.Name = b.Name + e.suffix
			s.Exit = e.build
			out = append(out, s)
		}
	}
	return out
}

// ScriptStrategy wraps a Lua script as a flat-betting strategy entry.
// The source is compiled once up front so a malformed script fails
// before any session starts; each session then runs its own Lua state.
func ScriptStrategy(name, source string) (Strategy, error) {
	probe, err := NewScript(source)
	if err != nil {
		return Strategy{}, err
	}
	probe.Close()

	return Strategy{
		Name: name,
		Playing: func(*rand.Rand) blackjack.PlayingStrategy {
			s, err := NewScript(source)
			if err != nil {
				return brokenScript{}
			}
			return s
		},
		Counting: countNone,
		Betting:  betFlat,
	}, nil
}

// brokenScript turns a load failure inside a session into the engine's
// fail-fast illegal action path.
type brokenScript struct{}

func (brokenScript) Decide(*blackjack.Hand, int, []blackjack.Action) blackjack.Action {
	return blackjack.ActionNone
}
