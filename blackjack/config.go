package blackjack

import "fmt"

// Ratio is a blackjack payout expressed as a fraction of the wager.
// 3:2 pays 150 on a 100 wager, 6:5 pays 120.
type Ratio struct {
	Num int64
	Den int64
}

func (r Ratio) Of(wager int64) int64 {
	return wager * r.Num / r.Den
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d", r.Num, r.Den)
}

var (
	PayoutThreeToTwo = Ratio{Num: 3, Den: 2}
	PayoutSixToFive  = Ratio{Num: 6, Den: 5}
)

// Rules 牌桌规则（金额单位：分）
type Rules struct {
	// Shoe
	Decks       int
	Penetration float64 // fraction of the shoe dealt before reshuffle

	// Table limits
	TableMin int64
	TableMax int64

	// Dealer
	HitSoft17 bool // H17 when true, S17 when false

	// Player options
	DoubleAfterSplit bool
	MaxSplits        int // 3 splits => up to 4 hands
	ResplitAces      bool
	HitSplitAces     bool
	Surrender        bool // late surrender, resolved after the peek

	Payout Ratio // blackjack payout
}

func DefaultRules() Rules {
	return Rules{
		Decks:            8,
		Penetration:      0.75,
		TableMin:         1000,
		TableMax:         100000,
		HitSoft17:        true,
		DoubleAfterSplit: true,
		MaxSplits:        3,
		Payout:           PayoutThreeToTwo,
	}
}

func (r Rules) Validate() error {
	if r.Decks <= 0 {
		return ErrConfig(fmt.Sprintf("Decks must be > 0, got %d", r.Decks))
	}
	if r.Penetration <= 0 || r.Penetration >= 1 {
		return ErrConfig(fmt.Sprintf("Penetration must be in (0, 1), got %g", r.Penetration))
	}
	if r.TableMin <= 0 {
		return ErrConfig(fmt.Sprintf("TableMin must be > 0, got %d", r.TableMin))
	}
	if r.TableMax < r.TableMin {
		return ErrConfig(fmt.Sprintf("TableMax %d < TableMin %d", r.TableMax, r.TableMin))
	}
	if r.MaxSplits < 0 {
		return ErrConfig(fmt.Sprintf("MaxSplits must be >= 0, got %d", r.MaxSplits))
	}
	if r.Payout.Num <= 0 || r.Payout.Den <= 0 {
		return ErrConfig(fmt.Sprintf("invalid payout %d:%d", r.Payout.Num, r.Payout.Den))
	}
	return nil
}
