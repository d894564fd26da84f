package strategy

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"blackjack-sim/blackjack"
)

// Script runs a user-supplied Lua playing strategy. The script defines
//
//	decide(hand, upcard, actions)
//
// and returns one of the names from actions. hand is a table carrying
// total, soft, pair, from_split and the raw cards as a byte array in
// deal order. A script error or an unknown return surfaces as an
// illegal action, which fails the session the same way a buggy native
// strategy would.
//
// A Script owns a Lua state; Close releases it.
type Script struct {
	state *lua.LState
	fn    lua.LValue
}

func NewScript(source string) (*Script, error) {
	ls := lua.NewState()
	if err := ls.DoString(source); err != nil {
		ls.Close()
		return nil, fmt.Errorf("load strategy script: %w", err)
	}
	return scriptFromState(ls)
}

func NewScriptFile(path string) (*Script, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read strategy script: %w", err)
	}
	return NewScript(string(src))
}

func scriptFromState(ls *lua.LState) (*Script, error) {
	fn := ls.GetGlobal("decide")
	if fn.Type() != lua.LTFunction {
		ls.Close()
		return nil, fmt.Errorf("strategy script does not define decide(hand, upcard, actions)")
	}
	return &Script{state: ls, fn: fn}, nil
}

func (s *Script) Decide(h *blackjack.Hand, dealerUp int, legal []blackjack.Action) blackjack.Action {
	ls := s.state

	hand := ls.NewTable()
	total, soft := h.Value()
	hand.RawSetString("total", lua.LNumber(total))
	hand.RawSetString("soft", lua.LBool(soft))
	hand.RawSetString("pair", lua.LBool(h.IsPair()))
	hand.RawSetString("from_split", lua.LBool(h.FromSplit))

	cards := ls.NewTable()
	for _, b := range h.Cards.CardsBytes() {
		cards.Append(lua.LNumber(b))
	}
	hand.RawSetString("cards", cards)

	actions := ls.NewTable()
	for _, a := range legal {
		actions.Append(lua.LString(blackjack.ActionDictionary[a]))
	}

	err := ls.CallByParam(lua.P{Fn: s.fn, NRet: 1, Protect: true},
		hand, lua.LNumber(dealerUp), actions)
	if err != nil {
		return blackjack.ActionNone
	}
	ret := ls.Get(-1)
	ls.Pop(1)

	name, ok := ret.(lua.LString)
	if !ok {
		return blackjack.ActionNone
	}
	act, ok := blackjack.ActionFromName(string(name))
	if !ok {
		return blackjack.ActionNone
	}
	return act
}

func (s *Script) Close() error {
	s.state.Close()
	return nil
}
