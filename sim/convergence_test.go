package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blackjack-sim/strategy"
)

// Known-edge regression: flat-betting full basic strategy against the
// default table (8 decks, h17, das, no surrender, 3:2) carries a house
// edge a little over half a percent. Two million rounds pin the
// estimate well inside the 0.2%-1.1% band for this rule set.
func TestBasicStrategyEdgeConverges(t *testing.T) {
	if testing.Short() {
		t.Skip("two million round run")
	}

	cfg := DefaultConfig()
	cfg.Sessions = 2000
	cfg.MaxRounds = 1000
	cfg.StartBankroll = 10000000 // deep enough that no session can bust
	cfg.Seed = 42

	r, err := NewRunner(cfg)
	assert.NoError(t, err)

	agg, err := r.Run(strategy.Presets(cfg.Rules, false)[0])
	assert.NoError(t, err)

	assert.Equal(t, 2000000, agg.TotalRounds)
	assert.InDelta(t, 0.0, agg.RiskOfRuin, 1e-9)
	assert.InDelta(t, 0.0, agg.ExitRate, 1e-9)

	assert.Greater(t, agg.HouseEdge, 0.2)
	assert.Less(t, agg.HouseEdge, 1.1)

	// sanity on the outcome mix for basic strategy
	assert.Greater(t, agg.AvgWinRate, 35.0)
	assert.Less(t, agg.AvgWinRate, 50.0)
	assert.Greater(t, agg.AvgPushRate, 5.0)
	assert.Less(t, agg.AvgPushRate, 12.0)
}
