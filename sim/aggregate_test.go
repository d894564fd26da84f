package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func craftedResults() []SessionResult {
	return []SessionResult{
		{
			Rounds: 100, FinalBankroll: 110000, TotalWagered: 50000,
			TotalWon: 30000, TotalLost: 20000,
			PeakBankroll: 115000, MinBankroll: 95000, MaxDrawdown: 5000,
			Exited:   true,
			HandsWon: 30, HandsLost: 60, HandsPushed: 10,
		},
		{
			Rounds: 50, FinalBankroll: 95000, TotalWagered: 50000,
			TotalWon: 10000, TotalLost: 15000,
			PeakBankroll: 105000, MinBankroll: 85000, MaxDrawdown: 20000,
			Busted:   true,
			HandsWon: 20, HandsLost: 25, HandsPushed: 5,
		},
	}
}

func TestAggregateSessions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartBankroll = 100000

	agg := aggregateSessions("crafted", cfg, craftedResults())

	assert.Equal(t, "crafted", agg.Name)
	assert.Equal(t, 2, agg.Sessions)
	assert.Equal(t, 150, agg.TotalRounds)
	assert.InDelta(t, 75.0, agg.AvgRounds, 1e-9)

	// session ROIs are +10% and -5%
	assert.InDelta(t, 2.5, agg.AvgROI, 1e-9)
	assert.InDelta(t, 10.606601717798213, agg.StdROI, 1e-9)
	assert.InDelta(t, -5.0, agg.MinROI, 1e-9)
	assert.InDelta(t, 10.0, agg.MaxROI, 1e-9)
	assert.InDelta(t, 2.5, agg.MedianROI, 1e-9)
	assert.InDelta(t, 7.5, agg.ROIStdError, 1e-9)
	assert.InDelta(t, 2.5-1.96*7.5, agg.ROILow95, 1e-9)
	assert.InDelta(t, 2.5+1.96*7.5, agg.ROIHigh95, 1e-9)

	// net +5000 cents on 100000 wagered, player ahead
	assert.InDelta(t, -5.0, agg.HouseEdge, 1e-9)
	assert.InDelta(t, 50.0/150, agg.EVPerRound, 1e-9)
	assert.InDelta(t, 1025.0, agg.AvgFinalBankroll, 1e-9)

	assert.InDelta(t, 50.0, agg.RiskOfRuin, 1e-9)
	assert.InDelta(t, 50.0, agg.ExitRate, 1e-9)
	assert.InDelta(t, 50.0, agg.SuccessRate, 1e-9)

	assert.InDelta(t, 35.0, agg.AvgWinRate, 1e-9)
	assert.InDelta(t, 10.0, agg.AvgPushRate, 1e-9)
	assert.InDelta(t, 55.0, agg.AvgLossRate, 1e-9)
	assert.InDelta(t, 0.0, agg.AvgSurrenderRate, 1e-9)

	// absolute drawdowns of $50 and $200
	assert.False(t, agg.DrawdownPct)
	assert.InDelta(t, 125.0, agg.AvgMaxDrawdown, 1e-9)
}

func TestAggregateDrawdownAsPercent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartBankroll = 100000
	cfg.DrawdownPct = true

	agg := aggregateSessions("crafted", cfg, craftedResults())

	assert.True(t, agg.DrawdownPct)
	assert.InDelta(t, 12.5, agg.AvgMaxDrawdown, 1e-9)
}

func TestAggregateSingleSession(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartBankroll = 100000

	agg := aggregateSessions("one", cfg, craftedResults()[:1])

	assert.InDelta(t, 10.0, agg.AvgROI, 1e-9)
	assert.InDelta(t, 0.0, agg.StdROI, 1e-9)
	assert.InDelta(t, 0.0, agg.ROIStdError, 1e-9)
	assert.InDelta(t, 10.0, agg.ROILow95, 1e-9)
	assert.InDelta(t, 10.0, agg.ROIHigh95, 1e-9)
	assert.InDelta(t, 10.0, agg.MedianROI, 1e-9)
}

func TestDollarsPerHour(t *testing.T) {
	agg := Aggregate{EVPerRound: 0.5}
	assert.InDelta(t, 35.0, agg.DollarsPerHour(70), 1e-9)
}

func TestMedian(t *testing.T) {
	assert.InDelta(t, 2.0, median([]float64{3, 1, 2}), 1e-9)
	assert.InDelta(t, 2.5, median([]float64{4, 1, 3, 2}), 1e-9)
}
