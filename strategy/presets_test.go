package strategy

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"blackjack-sim/blackjack"
	"blackjack-sim/card"
)

func presetByName(t *testing.T, ps []Strategy, name string) Strategy {
	t.Helper()
	for _, s := range ps {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("preset %q not found", name)
	return Strategy{}
}

func TestPresetLineup(t *testing.T) {
	ps := Presets(blackjack.DefaultRules(), false)

	want := []string{
		"Basic + Flat",
		"Basic + Martingale",
		"Basic + Win 1-2-4",
		"Basic + Hi-Lo + Linear",
		"Basic + Hi-Lo + MinMax",
		"Basic + Pseudo + Linear",
		"Basic + Pseudo + MinMax",
	}
	assert.Len(t, ps, len(want))
	for i, s := range ps {
		assert.Equal(t, want[i], s.Name)
		assert.NotNil(t, s.Playing, s.Name)
		assert.NotNil(t, s.Counting, s.Name)
		assert.NotNil(t, s.Betting, s.Name)
		assert.Nil(t, s.Exit, s.Name)
	}
}

func TestPresetExitVariants(t *testing.T) {
	ps := Presets(blackjack.DefaultRules(), true)
	assert.Len(t, ps, 28)

	suffixes := []string{" + Exit:Double", " + Exit:Peak", " + Exit:WinLossStop", " + Exit:ProfitLock"}
	for i, s := range ps {
		assert.True(t, strings.HasSuffix(s.Name, suffixes[i%4]), s.Name)
		assert.NotNil(t, s.Exit, s.Name)
		assert.NotNil(t, s.Exit(100000), s.Name)
	}
}

func TestPresetWiring(t *testing.T) {
	ps := Presets(blackjack.DefaultRules(), false)

	flat := presetByName(t, ps, "Basic + Flat")
	assert.IsType(t, None{}, flat.Counting(8))
	assert.Equal(t, int64(1000), flat.Betting(1000, 100000).BetFor(5))

	mart := presetByName(t, ps, "Basic + Martingale")
	assert.IsType(t, &LossStreak{}, mart.Counting(8))
	assert.Equal(t, int64(4000), mart.Betting(1000, 100000).BetFor(2))

	win := presetByName(t, ps, "Basic + Win 1-2-4")
	assert.IsType(t, &WinStreak{}, win.Counting(8))
	assert.Equal(t, int64(1000), win.Betting(1000, 100000).BetFor(3))

	hiLo := presetByName(t, ps, "Basic + Hi-Lo + Linear")
	assert.IsType(t, &HiLo{}, hiLo.Counting(8))
	assert.IsType(t, &Spread{}, hiLo.Betting(1000, 100000))

	pseudo := presetByName(t, ps, "Basic + Pseudo + MinMax")
	assert.IsType(t, &Pseudo{}, pseudo.Counting(8))
	assert.Equal(t, int64(100000), pseudo.Betting(1000, 100000).BetFor(3))
}

func TestPresetPlayingFollowsRules(t *testing.T) {
	soft18 := handOf(card.CardSpadeA, card.CardHeart7)

	h17 := Presets(blackjack.DefaultRules(), false)[0].Playing(nil)
	assert.Equal(t, blackjack.ActionDouble, h17.Decide(soft18, 2, legalNoSurrender))

	rules := blackjack.DefaultRules()
	rules.HitSoft17 = false
	s17 := Presets(rules, false)[0].Playing(nil)
	assert.Equal(t, blackjack.ActionStand, s17.Decide(soft18, 2, legalNoSurrender))
}

func TestScriptStrategyFactory(t *testing.T) {
	s, err := ScriptStrategy("Lua: stand", `
function decide(hand, upcard, actions)
	return "STAND"
end
`)
	assert.NoError(t, err)
	assert.Equal(t, "Lua: stand", s.Name)

	p := s.Playing(nil)
	assert.Equal(t, blackjack.ActionStand, p.Decide(handOf(card.CardSpadeT, card.CardHeart6), 10, legalBase))

	// sessions own their Lua state and release it through Close
	c, ok := p.(io.Closer)
	assert.True(t, ok)
	assert.NoError(t, c.Close())

	p2 := s.Playing(nil)
	assert.NotSame(t, p, p2)
	p2.(io.Closer).Close()
}

func TestScriptStrategyRejectsBadSource(t *testing.T) {
	_, err := ScriptStrategy("bad", `function decide(`)
	assert.Error(t, err)

	_, err = ScriptStrategy("empty", `x = 1`)
	assert.Error(t, err)
}
