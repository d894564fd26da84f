package blackjack

// DealerShouldHit 庄家要牌规则：总点 <17 必须要牌；恰好软 17 时
// H17 要牌、S17 停牌。结果只取决于手牌与规则开关。
func DealerShouldHit(h *Hand, hitSoft17 bool) bool {
	total, soft := h.Value()
	if total < 17 {
		return true
	}
	if total == 17 && soft && hitSoft17 {
		return true
	}
	return false
}
