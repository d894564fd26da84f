package strategy

// DoubleUp leaves the table once the bankroll reaches twice its
// starting value.
type DoubleUp struct {
	start int64
}

func NewDoubleUp(start int64) *DoubleUp {
	return &DoubleUp{start: start}
}

func (d *DoubleUp) ShouldExit(bankroll int64) bool {
	return bankroll >= 2*d.start
}

// PeakTrailing is a trailing stop on the running peak: once the peak
// has exceeded the start by the trigger fraction, the stop arms, and
// falling below the peak by the trailing fraction exits.
type PeakTrailing struct {
	start    int64
	peak     int64
	trailing float64
	trigger  float64
}

func NewPeakTrailing(start int64, trailing, trigger float64) *PeakTrailing {
	return &PeakTrailing{start: start, peak: start, trailing: trailing, trigger: trigger}
}

func (p *PeakTrailing) ShouldExit(bankroll int64) bool {
	if bankroll > p.peak {
		p.peak = bankroll
	}
	armAt := p.start + int64(float64(p.start)*p.trigger)
	if p.peak < armAt {
		return false
	}
	stop := p.peak - int64(float64(p.peak)*p.trailing)
	return bankroll < stop
}

// WinLossStop exits on either side of a band: at or above the profit
// target, or at or below the stop-loss floor.
type WinLossStop struct {
	target int64
	stop   int64
}

// NewWinLossStop builds the band from fractions of the starting
// bankroll: the target is start grown by targetPct, the floor is
// lossPct of start.
func NewWinLossStop(start int64, targetPct, lossPct float64) *WinLossStop {
	return &WinLossStop{
		target: start + int64(float64(start)*targetPct),
		stop:   int64(float64(start) * lossPct),
	}
}

func (w *WinLossStop) ShouldExit(bankroll int64) bool {
	return bankroll >= w.target || bankroll <= w.stop
}

// ProfitLock ratchets a stop-loss upward as profit accumulates: past
// the profit target, half the profit is locked in; past twice the
// target, it leaves outright.
type ProfitLock struct {
	start        int64
	profitTarget int64
	leaveTarget  int64
	stop         int64
}

func NewProfitLock(start int64, lockPct, lossPct float64) *ProfitLock {
	lock := int64(float64(start) * lockPct)
	return &ProfitLock{
		start:        start,
		profitTarget: start + lock,
		leaveTarget:  start + 2*lock,
		stop:         start - int64(float64(start)*lossPct),
	}
}

func (p *ProfitLock) ShouldExit(bankroll int64) bool {
	if bankroll > p.leaveTarget {
		return true
	}
	if bankroll >= p.profitTarget {
		profit := bankroll - p.start
		p.stop = p.start + profit/2
		return false
	}
	return bankroll <= p.stop
}
