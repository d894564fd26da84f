package strategy

import (
	"sort"
)

// Flat bets the same amount regardless of the count.
type Flat struct {
	Amount int64
}

func (f Flat) BetFor(float64) int64 { return f.Amount }

// SpreadStep maps a count threshold to a bet.
type SpreadStep struct {
	Count  float64
	Amount int64
}

// Spread is a monotonic step function over the true count: the bet of
// the highest step at or below the count, or Base below the lowest
// step.
type Spread struct {
	Base  int64
	Steps []SpreadStep
}

func NewSpread(base int64, steps ...SpreadStep) *Spread {
	sorted := make([]SpreadStep, len(steps))
	copy(sorted, steps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Count < sorted[j].Count })
	return &Spread{Base: base, Steps: sorted}
}

func (s *Spread) BetFor(trueCount float64) int64 {
	bet := s.Base
	for _, step := range s.Steps {
		if trueCount < step.Count {
			break
		}
		bet = step.Amount
	}
	return bet
}

// Progression stakes Base*Mult^step where step is the counter's signal
// truncated to an integer. Cycle > 0 wraps the step (the 1-2-4 win
// progression); Max caps the stake (Martingale against a loss streak
// would otherwise grow without bound).
type Progression struct {
	Base  int64
	Mult  int64
	Cycle int
	Max   int64
}

func (p Progression) BetFor(trueCount float64) int64 {
	step := int(trueCount)
	if step < 0 {
		step = 0
	}
	if p.Cycle > 0 {
		step %= p.Cycle
	}
	bet := p.Base
	for i := 0; i < step; i++ {
		bet *= p.Mult
		if p.Max > 0 && bet >= p.Max {
			return p.Max
		}
	}
	return bet
}
