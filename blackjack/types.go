package blackjack

// Action 玩家动作：1-HIT 2-STAND 3-DOUBLE 4-SPLIT 5-SURRENDER
type Action byte

const (
	ActionNone      Action = 0
	ActionHit       Action = 1
	ActionStand     Action = 2
	ActionDouble    Action = 3
	ActionSplit     Action = 4
	ActionSurrender Action = 5
)

var ActionDictionary = map[Action]string{
	ActionNone:      "NONE",
	ActionHit:       "HIT",
	ActionStand:     "STAND",
	ActionDouble:    "DOUBLE",
	ActionSplit:     "SPLIT",
	ActionSurrender: "SURRENDER",
}

// ActionFromName resolves an action by its dictionary name (case-exact).
func ActionFromName(name string) (Action, bool) {
	for a, n := range ActionDictionary {
		if n == name {
			return a, true
		}
	}
	return ActionNone, false
}

// HandStatus 手牌状态
type HandStatus byte

const (
	HandStatusActive      HandStatus = 0
	HandStatusStood       HandStatus = 1
	HandStatusDoubled     HandStatus = 2
	HandStatusBusted      HandStatus = 3
	HandStatusBlackjack   HandStatus = 4
	HandStatusSurrendered HandStatus = 5
)

var HandStatusDictionary = map[HandStatus]string{
	HandStatusActive:      "active",
	HandStatusStood:       "stood",
	HandStatusDoubled:     "doubled",
	HandStatusBusted:      "busted",
	HandStatusBlackjack:   "blackjack",
	HandStatusSurrendered: "surrendered",
}

// Outcome 单手结算结果
type Outcome byte

const (
	OutcomeWin       Outcome = 0
	OutcomeLoss      Outcome = 1
	OutcomePush      Outcome = 2
	OutcomeBlackjack Outcome = 3
	OutcomeSurrender Outcome = 4
)

var OutcomeDictionary = map[Outcome]string{
	OutcomeWin:       "win",
	OutcomeLoss:      "loss",
	OutcomePush:      "push",
	OutcomeBlackjack: "blackjack",
	OutcomeSurrender: "surrender",
}
