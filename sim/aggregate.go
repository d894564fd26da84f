package sim

import (
	"math"
	"sort"
)

// Aggregate summarizes one strategy's sessions. Money-valued fields are
// dollars, rate fields are percentages. ROI is per-session profit as a
// percentage of the starting bankroll.
type Aggregate struct {
	Name        string
	Sessions    int
	TotalRounds int
	AvgRounds   float64

	AvgROI      float64
	StdROI      float64
	MinROI      float64
	MaxROI      float64
	MedianROI   float64
	ROIStdError float64
	ROILow95    float64
	ROIHigh95   float64

	HouseEdge        float64 // -net/wagered, positive favors the house
	EVPerRound       float64
	AvgFinalBankroll float64

	RiskOfRuin  float64 // percent of sessions that busted
	ExitRate    float64 // percent of sessions the exit policy ended
	SuccessRate float64 // percent of sessions ending in profit

	AvgWinRate       float64
	AvgPushRate      float64
	AvgLossRate      float64
	AvgSurrenderRate float64

	AvgMaxDrawdown float64
	DrawdownPct    bool // AvgMaxDrawdown is percent of start, not dollars
}

// DollarsPerHour scales EV per round by table pace.
func (a Aggregate) DollarsPerHour(handsPerHour int) float64 {
	return a.EVPerRound * float64(handsPerHour)
}

// aggregateSessions folds per-session results in index order. Every
// derived float comes from one pass over deterministic totals, so the
// output is bit-identical no matter how many workers produced the
// slice.
func aggregateSessions(name string, cfg Config, results []SessionResult) Aggregate {
	agg := Aggregate{Name: name, Sessions: len(results), DrawdownPct: cfg.DrawdownPct}
	if len(results) == 0 {
		return agg
	}

	start := float64(cfg.StartBankroll)
	rois := make([]float64, len(results))

	var totalWagered, totalNet int64
	var finalSum, winSum, pushSum, lossSum, surrSum, ddSum float64
	var busts, exits, profitable, totalRounds int

	for i, r := range results {
		totalRounds += r.Rounds
		totalWagered += r.TotalWagered

		net := r.FinalBankroll - cfg.StartBankroll
		totalNet += net
		rois[i] = float64(net) / start * 100
		finalSum += float64(r.FinalBankroll)

		if r.Busted {
			busts++
		}
		if r.Exited {
			exits++
		}
		if net > 0 {
			profitable++
		}

		if hands := r.HandsPlayed(); hands > 0 {
			winSum += float64(r.HandsWon) / float64(hands) * 100
			pushSum += float64(r.HandsPushed) / float64(hands) * 100
			lossSum += float64(r.HandsLost) / float64(hands) * 100
			surrSum += float64(r.HandsSurrendered) / float64(hands) * 100
		}

		if cfg.DrawdownPct {
			ddSum += float64(r.MaxDrawdown) / start * 100
		} else {
			ddSum += float64(r.MaxDrawdown) / 100
		}
	}

	n := float64(len(results))
	agg.TotalRounds = totalRounds
	agg.AvgRounds = float64(totalRounds) / n

	agg.AvgROI = mean(rois)
	agg.StdROI = stddev(rois, agg.AvgROI)
	agg.MinROI = minOf(rois)
	agg.MaxROI = maxOf(rois)
	agg.MedianROI = median(rois)
	agg.ROIStdError = agg.StdROI / math.Sqrt(n)
	margin := 1.96 * agg.ROIStdError
	agg.ROILow95 = agg.AvgROI - margin
	agg.ROIHigh95 = agg.AvgROI + margin

	if totalWagered > 0 {
		agg.HouseEdge = -float64(totalNet) / float64(totalWagered) * 100
	}
	if totalRounds > 0 {
		agg.EVPerRound = float64(totalNet) / 100 / float64(totalRounds)
	}
	agg.AvgFinalBankroll = finalSum / 100 / n

	agg.RiskOfRuin = float64(busts) / n * 100
	agg.ExitRate = float64(exits) / n * 100
	agg.SuccessRate = float64(profitable) / n * 100

	agg.AvgWinRate = winSum / n
	agg.AvgPushRate = pushSum / n
	agg.AvgLossRate = lossSum / n
	agg.AvgSurrenderRate = surrSum / n
	agg.AvgMaxDrawdown = ddSum / n
	return agg
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stddev is the sample standard deviation, zero for a single session.
func stddev(xs []float64, mu float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		d := x - mu
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

func median(xs []float64) float64 {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func minOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func maxOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
