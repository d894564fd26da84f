package blackjack

import (
	"blackjack-sim/card"
)

// PlayingStrategy decides one action out of the legal set. The round
// trusts the returned action to be a member of legal and fails the
// round with IllegalActionError otherwise.
type PlayingStrategy interface {
	Decide(h *Hand, dealerUp int, legal []Action) Action
}

// CardObserver receives every card in the order it is turned face up.
// The dealer's hole card is reported only when it is revealed, never
// while face down.
type CardObserver interface {
	OnCardRevealed(c card.Card)
}

// HandResult 单手结算。Hands settled by a dealer blackjack never act
// and keep status active.
type HandResult struct {
	Cards   card.CardList
	Wager   int64
	Status  HandStatus
	Outcome Outcome
	Net     int64 // profit (+) or loss (−) against the wager
}

type RoundResult struct {
	Hands           []HandResult
	DealerCards     card.CardList
	DealerTotal     int
	DealerBlackjack bool

	Wagered int64 // total put at risk, doubles and splits included
	Net     int64 // sum of all hand nets
}

// Round 一局的解算器：发牌、偷看、玩家阶段、庄家阶段、结算。
type Round struct {
	rules Rules
	shoe  *Shoe
	strat PlayingStrategy
	obs   CardObserver

	hands    []*Hand
	dealer   *Hand
	splits   int
	budget   int64 // funds available beyond the committed wagers
	dealerBJ bool
}

// PlayRound resolves one complete round. wager is the initial bet,
// already committed; budget is what remains of the bankroll to cover
// doubles and splits. obs may be nil.
func PlayRound(rules Rules, shoe *Shoe, strat PlayingStrategy, obs CardObserver, wager, budget int64) (*RoundResult, error) {
	if wager <= 0 {
		return nil, ErrConfig("wager must be > 0")
	}
	r := &Round{
		rules:  rules,
		shoe:   shoe,
		strat:  strat,
		obs:    obs,
		hands:  []*Hand{NewHand(wager)},
		dealer: NewHand(0),
		budget: budget,
	}
	return r.resolve()
}

func (r *Round) resolve() (*RoundResult, error) {
	first := r.hands[0]

	// 发牌顺序：玩家、庄家明牌、玩家、庄家底牌
	if err := r.draw(first, true); err != nil {
		return nil, err
	}
	if err := r.draw(r.dealer, true); err != nil {
		return nil, err
	}
	if err := r.draw(first, true); err != nil {
		return nil, err
	}
	if err := r.draw(r.dealer, false); err != nil {
		return nil, err
	}

	// Peek: an ace or ten up means the dealer checks for blackjack before
	// any player decision. A dealer blackjack ends the round with only the
	// initial wager at stake; a player blackjack pushes.
	up := r.dealer.Cards[0]
	if (up.IsAce() || up.IsTenValue()) && r.dealer.IsBlackjack() {
		r.dealerBJ = true
		r.revealHole()
		if first.IsBlackjack() {
			first.Status = HandStatusBlackjack
		}
		return r.settle(), nil
	}

	// Player blackjack wins at the configured payout without dealer play.
	if first.IsBlackjack() {
		first.Status = HandStatusBlackjack
		r.revealHole()
		return r.settle(), nil
	}

	if err := r.playHands(); err != nil {
		return nil, err
	}

	// 底牌在玩家阶段结束后翻开（即使全部爆牌/投降也翻）
	r.revealHole()

	if r.anyLiveHand() {
		for DealerShouldHit(r.dealer, r.rules.HitSoft17) {
			if err := r.draw(r.dealer, true); err != nil {
				return nil, err
			}
		}
	}

	return r.settle(), nil
}

// playHands resolves the player phase over an explicit worklist so deep
// split trees never recurse. A split pushes the new hand onto the stack;
// the current hand keeps playing first.
func (r *Round) playHands() error {
	work := []int{0}
	for len(work) > 0 {
		idx := work[len(work)-1]
		work = work[:len(work)-1]
		h := r.hands[idx]

		for h.Status == HandStatusActive {
			legal := r.legalActions(h)

			var act Action
			if len(legal) == 1 {
				// forced moves (21, split aces) are applied without
				// consulting the strategy
				act = legal[0]
			} else {
				act = r.strat.Decide(h, r.dealer.Cards[0].Value(), legal)
				if !containsAction(legal, act) {
					return &IllegalActionError{Action: act, Legal: legal}
				}
			}

			switch act {
			case ActionHit:
				if err := r.draw(h, true); err != nil {
					return err
				}
				if h.IsBust() {
					h.Status = HandStatusBusted
				}
			case ActionStand:
				h.Status = HandStatusStood
			case ActionDouble:
				r.budget -= h.Wager
				h.Wager *= 2
				if err := r.draw(h, true); err != nil {
					return err
				}
				if h.IsBust() {
					h.Status = HandStatusBusted
				} else {
					h.Status = HandStatusDoubled
				}
			case ActionSurrender:
				h.Status = HandStatusSurrendered
			case ActionSplit:
				child, err := r.split(h)
				if err != nil {
					return err
				}
				r.hands = append(r.hands, child)
				work = append(work, len(r.hands)-1)
			default:
				return &IllegalActionError{Action: act, Legal: legal}
			}
		}
	}
	return nil
}

// legalActions 必须是当前状态的纯函数投影
func (r *Round) legalActions(h *Hand) []Action {
	total, _ := h.Value()
	if total >= 21 {
		return []Action{ActionStand}
	}

	// Split aces take one card each and stand, unless hitting them is
	// allowed. A resplit may still be offered.
	if h.FromSplitAces && !r.rules.HitSplitAces {
		acts := []Action{ActionStand}
		if r.canSplit(h) {
			acts = append(acts, ActionSplit)
		}
		return acts
	}

	acts := []Action{ActionHit, ActionStand}
	if h.CanDouble(r.rules.DoubleAfterSplit) && r.budget >= h.Wager {
		acts = append(acts, ActionDouble)
	}
	if r.canSplit(h) {
		acts = append(acts, ActionSplit)
	}
	if r.rules.Surrender && !h.FromSplit && len(h.Cards) == 2 {
		acts = append(acts, ActionSurrender)
	}
	return acts
}

func (r *Round) canSplit(h *Hand) bool {
	return h.CanSplit(r.splits, r.rules.MaxSplits, r.rules.ResplitAces) && r.budget >= h.Wager
}

// split turns h into the first child in place and returns the second.
// Both children draw their fresh card immediately, first child first.
func (r *Round) split(h *Hand) (*Hand, error) {
	keep, moved := h.Cards[0], h.Cards[1]
	aces := keep.IsAce()

	r.budget -= h.Wager
	r.splits++

	h.Cards = card.CardList{keep}
	h.FromSplit = true
	h.FromSplitAces = aces
	h.SplitDepth++

	child := &Hand{
		Cards:         card.CardList{moved},
		Wager:         h.Wager,
		FromSplit:     true,
		FromSplitAces: aces,
		SplitDepth:    h.SplitDepth,
	}

	if err := r.draw(h, true); err != nil {
		return nil, err
	}
	if err := r.draw(child, true); err != nil {
		return nil, err
	}
	return child, nil
}

func (r *Round) draw(h *Hand, faceUp bool) error {
	c, err := r.shoe.Draw()
	if err != nil {
		return err
	}
	h.AddCard(c)
	if faceUp && r.obs != nil {
		r.obs.OnCardRevealed(c)
	}
	return nil
}

func (r *Round) revealHole() {
	if r.obs != nil {
		r.obs.OnCardRevealed(r.dealer.Cards[1])
	}
}

func (r *Round) anyLiveHand() bool {
	for _, h := range r.hands {
		if h.Status == HandStatusStood || h.Status == HandStatusDoubled {
			return true
		}
	}
	return false
}

func (r *Round) settle() *RoundResult {
	dealerTotal, _ := r.dealer.Value()
	out := &RoundResult{
		Hands:           make([]HandResult, 0, len(r.hands)),
		DealerCards:     append(card.CardList{}, r.dealer.Cards...),
		DealerTotal:     dealerTotal,
		DealerBlackjack: r.dealerBJ,
	}
	dealerBust := dealerTotal > 21

	for _, h := range r.hands {
		hr := HandResult{
			Cards:  append(card.CardList{}, h.Cards...),
			Wager:  h.Wager,
			Status: h.Status,
		}

		switch {
		case r.dealerBJ:
			if h.Status == HandStatusBlackjack {
				hr.Outcome = OutcomePush
			} else {
				hr.Outcome, hr.Net = OutcomeLoss, -h.Wager
			}
		case h.Status == HandStatusBlackjack:
			hr.Outcome, hr.Net = OutcomeBlackjack, r.rules.Payout.Of(h.Wager)
		case h.Status == HandStatusBusted:
			hr.Outcome, hr.Net = OutcomeLoss, -h.Wager
		case h.Status == HandStatusSurrendered:
			// half the wager comes back, odd cent goes to the house
			hr.Outcome, hr.Net = OutcomeSurrender, -(h.Wager - h.Wager/2)
		default:
			total, _ := h.Value()
			switch {
			case dealerBust || total > dealerTotal:
				hr.Outcome, hr.Net = OutcomeWin, h.Wager
			case total == dealerTotal:
				hr.Outcome = OutcomePush
			default:
				hr.Outcome, hr.Net = OutcomeLoss, -h.Wager
			}
		}

		out.Wagered += h.Wager
		out.Net += hr.Net
		out.Hands = append(out.Hands, hr)
	}
	return out
}

func containsAction(actions []Action, target Action) bool {
	for _, a := range actions {
		if a == target {
			return true
		}
	}
	return false
}
