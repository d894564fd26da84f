package strategy

import (
	"blackjack-sim/blackjack"
)

// pcode is one cell of a strategy chart. Codes past the first two carry
// a fallback, taken when the preferred action is not legal right now
// (third card already drawn, split budget gone, surrender disabled).
type pcode uint8

const (
	acH  pcode = iota // hit
	acS               // stand
	acDh              // double, else hit
	acDs              // double, else stand
	acP               // split, else hit
	acPd              // split if double after split is allowed, else hit
	acXh              // surrender, else hit
	acXs              // surrender, else stand
	acXp              // surrender, else split, else hit
)

// Chart columns run dealer upcard 2..9, ten, ace.

var hardH17 = map[int][10]pcode{
	//    2     3     4     5     6     7     8     9     T     A
	5:  {acH, acH, acH, acH, acH, acH, acH, acH, acH, acH},
	6:  {acH, acH, acH, acH, acH, acH, acH, acH, acH, acH},
	7:  {acH, acH, acH, acH, acH, acH, acH, acH, acH, acH},
	8:  {acH, acH, acH, acH, acH, acH, acH, acH, acH, acH},
	9:  {acH, acDh, acDh, acDh, acDh, acH, acH, acH, acH, acH},
	10: {acDh, acDh, acDh, acDh, acDh, acDh, acDh, acDh, acH, acH},
	11: {acDh, acDh, acDh, acDh, acDh, acDh, acDh, acDh, acDh, acDh},
	12: {acH, acH, acS, acS, acS, acH, acH, acH, acH, acH},
	13: {acS, acS, acS, acS, acS, acH, acH, acH, acH, acH},
	14: {acS, acS, acS, acS, acS, acH, acH, acH, acH, acH},
	15: {acS, acS, acS, acS, acS, acH, acH, acH, acXh, acXh},
	16: {acS, acS, acS, acS, acS, acH, acH, acXh, acXh, acXh},
	17: {acS, acS, acS, acS, acS, acS, acS, acS, acS, acXs},
	18: {acS, acS, acS, acS, acS, acS, acS, acS, acS, acS},
	19: {acS, acS, acS, acS, acS, acS, acS, acS, acS, acS},
	20: {acS, acS, acS, acS, acS, acS, acS, acS, acS, acS},
	21: {acS, acS, acS, acS, acS, acS, acS, acS, acS, acS},
}

var hardS17 = map[int][10]pcode{
	//    2     3     4     5     6     7     8     9     T     A
	5:  {acH, acH, acH, acH, acH, acH, acH, acH, acH, acH},
	6:  {acH, acH, acH, acH, acH, acH, acH, acH, acH, acH},
	7:  {acH, acH, acH, acH, acH, acH, acH, acH, acH, acH},
	8:  {acH, acH, acH, acH, acH, acH, acH, acH, acH, acH},
	9:  {acH, acDh, acDh, acDh, acDh, acH, acH, acH, acH, acH},
	10: {acDh, acDh, acDh, acDh, acDh, acDh, acDh, acDh, acH, acH},
	11: {acDh, acDh, acDh, acDh, acDh, acDh, acDh, acDh, acDh, acH},
	12: {acH, acH, acS, acS, acS, acH, acH, acH, acH, acH},
	13: {acS, acS, acS, acS, acS, acH, acH, acH, acH, acH},
	14: {acS, acS, acS, acS, acS, acH, acH, acH, acH, acH},
	15: {acS, acS, acS, acS, acS, acH, acH, acH, acXh, acH},
	16: {acS, acS, acS, acS, acS, acH, acH, acXh, acXh, acXh},
	17: {acS, acS, acS, acS, acS, acS, acS, acS, acS, acS},
	18: {acS, acS, acS, acS, acS, acS, acS, acS, acS, acS},
	19: {acS, acS, acS, acS, acS, acS, acS, acS, acS, acS},
	20: {acS, acS, acS, acS, acS, acS, acS, acS, acS, acS},
	21: {acS, acS, acS, acS, acS, acS, acS, acS, acS, acS},
}

var softH17 = map[int][10]pcode{
	//    2     3     4     5     6     7     8     9     T     A
	13: {acH, acH, acH, acDh, acDh, acH, acH, acH, acH, acH},
	14: {acH, acH, acH, acDh, acDh, acH, acH, acH, acH, acH},
	15: {acH, acH, acDh, acDh, acDh, acH, acH, acH, acH, acH},
	16: {acH, acH, acDh, acDh, acDh, acH, acH, acH, acH, acH},
	17: {acH, acDh, acDh, acDh, acDh, acH, acH, acH, acH, acH},
	18: {acDs, acDs, acDs, acDs, acDs, acS, acS, acH, acH, acH},
	19: {acS, acS, acS, acS, acDs, acS, acS, acS, acS, acS},
	20: {acS, acS, acS, acS, acS, acS, acS, acS, acS, acS},
	21: {acS, acS, acS, acS, acS, acS, acS, acS, acS, acS},
}

var softS17 = map[int][10]pcode{
	//    2     3     4     5     6     7     8     9     T     A
	13: {acH, acH, acH, acDh, acDh, acH, acH, acH, acH, acH},
	14: {acH, acH, acH, acDh, acDh, acH, acH, acH, acH, acH},
	15: {acH, acH, acDh, acDh, acDh, acH, acH, acH, acH, acH},
	16: {acH, acH, acDh, acDh, acDh, acH, acH, acH, acH, acH},
	17: {acH, acDh, acDh, acDh, acDh, acH, acH, acH, acH, acH},
	18: {acS, acDs, acDs, acDs, acDs, acS, acS, acH, acH, acH},
	19: {acS, acS, acS, acS, acS, acS, acS, acS, acS, acS},
	20: {acS, acS, acS, acS, acS, acS, acS, acS, acS, acS},
	21: {acS, acS, acS, acS, acS, acS, acS, acS, acS, acS},
}

// pairs is keyed by the card value of either card (ace rows under 11).
// Shared between the soft-17 variants.
var pairs = map[int][10]pcode{
	//    2     3     4     5     6     7     8     9     T     A
	2:  {acPd, acPd, acP, acP, acP, acP, acH, acH, acH, acH},
	3:  {acPd, acPd, acP, acP, acP, acP, acH, acH, acH, acH},
	4:  {acH, acH, acH, acPd, acPd, acH, acH, acH, acH, acH},
	5:  {acDh, acDh, acDh, acDh, acDh, acDh, acDh, acDh, acH, acH},
	6:  {acPd, acP, acP, acP, acP, acH, acH, acH, acH, acH},
	7:  {acP, acP, acP, acP, acP, acP, acH, acH, acH, acH},
	8:  {acP, acP, acP, acP, acP, acP, acP, acP, acP, acXp},
	9:  {acP, acP, acP, acP, acP, acS, acP, acP, acS, acS},
	10: {acS, acS, acS, acS, acS, acS, acS, acS, acS, acS},
	11: {acP, acP, acP, acP, acP, acP, acP, acP, acP, acP},
}

// Basic plays the standard multi-deck total-dependent charts. The hard
// and soft charts follow the dealer soft-17 rule; the double-after-split
// rule decides the borderline pair splits.
type Basic struct {
	hard map[int][10]pcode
	soft map[int][10]pcode
	das  bool
}

func NewBasic(hitSoft17, das bool) *Basic {
	b := &Basic{hard: hardS17, soft: softS17, das: das}
	if hitSoft17 {
		b.hard = hardH17
		b.soft = softH17
	}
	return b
}

func (b *Basic) Decide(h *blackjack.Hand, dealerUp int, legal []blackjack.Action) blackjack.Action {
	col := dealerUp - 2
	total, soft := h.Value()

	code := acS
	switch {
	case h.IsPair():
		code = pairs[h.Cards[0].Value()][col]
	case soft:
		if row, ok := b.soft[total]; ok {
			code = row[col]
		}
	default:
		if row, ok := b.hard[total]; ok {
			code = row[col]
		}
	}
	return translate(code, legal, b.das)
}

// translate walks a chart code's preference order until it reaches an
// action that is legal right now. Stand closes every chain.
func translate(code pcode, legal []blackjack.Action, das bool) blackjack.Action {
	switch code {
	case acH:
		if hasAction(legal, blackjack.ActionHit) {
			return blackjack.ActionHit
		}
	case acS:
		return blackjack.ActionStand
	case acDh:
		if hasAction(legal, blackjack.ActionDouble) {
			return blackjack.ActionDouble
		}
		if hasAction(legal, blackjack.ActionHit) {
			return blackjack.ActionHit
		}
	case acDs:
		if hasAction(legal, blackjack.ActionDouble) {
			return blackjack.ActionDouble
		}
		return blackjack.ActionStand
	case acP:
		if hasAction(legal, blackjack.ActionSplit) {
			return blackjack.ActionSplit
		}
		if hasAction(legal, blackjack.ActionHit) {
			return blackjack.ActionHit
		}
	case acPd:
		if das && hasAction(legal, blackjack.ActionSplit) {
			return blackjack.ActionSplit
		}
		if hasAction(legal, blackjack.ActionHit) {
			return blackjack.ActionHit
		}
	case acXh:
		if hasAction(legal, blackjack.ActionSurrender) {
			return blackjack.ActionSurrender
		}
		if hasAction(legal, blackjack.ActionHit) {
			return blackjack.ActionHit
		}
	case acXs:
		if hasAction(legal, blackjack.ActionSurrender) {
			return blackjack.ActionSurrender
		}
		return blackjack.ActionStand
	case acXp:
		if hasAction(legal, blackjack.ActionSurrender) {
			return blackjack.ActionSurrender
		}
		if hasAction(legal, blackjack.ActionSplit) {
			return blackjack.ActionSplit
		}
		if hasAction(legal, blackjack.ActionHit) {
			return blackjack.ActionHit
		}
	}
	return blackjack.ActionStand
}

func hasAction(legal []blackjack.Action, target blackjack.Action) bool {
	for _, a := range legal {
		if a == target {
			return true
		}
	}
	return false
}
