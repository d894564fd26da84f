// Package store persists simulation run history. The default backend
// is off; sqlite or postgres is selected through the environment, both
// behind the same Service interface.
package store

import (
	"context"
	"log"
	"time"

	"blackjack-sim/sim"
)

// RunRecord is one strategy's aggregate outcome with enough context to
// compare runs later. Params carries the rules and simulation
// parameters as JSON.
type RunRecord struct {
	ID          int64     `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Strategy    string    `json:"strategy"`
	Params      string    `json:"params"`
	Sessions    int       `json:"sessions"`
	TotalRounds int       `json:"total_rounds"`
	AvgROI      float64   `json:"avg_roi"`
	HouseEdge   float64   `json:"house_edge"`
	EVPerRound  float64   `json:"ev_per_round"`
	RiskOfRuin  float64   `json:"risk_of_ruin"`
	SuccessRate float64   `json:"success_rate"`
}

// NewRunRecord captures a finished aggregate's headline stats.
func NewRunRecord(agg sim.Aggregate, params string) RunRecord {
	return RunRecord{
		CreatedAt:   time.Now().UTC(),
		Strategy:    agg.Name,
		Params:      params,
		Sessions:    agg.Sessions,
		TotalRounds: agg.TotalRounds,
		AvgROI:      agg.AvgROI,
		HouseEdge:   agg.HouseEdge,
		EVPerRound:  agg.EVPerRound,
		RiskOfRuin:  agg.RiskOfRuin,
		SuccessRate: agg.SuccessRate,
	}
}

type Service interface {
	Close() error
	SaveRun(ctx context.Context, rec RunRecord) error
	ListRuns(ctx context.Context, limit int) ([]RunRecord, error)
}

// SaveRunBestEffort persists the record, logging instead of failing; a
// history write must never abort a finished simulation.
func SaveRunBestEffort(ctx context.Context, svc Service, rec RunRecord) {
	if err := svc.SaveRun(ctx, rec); err != nil {
		log.Printf("[Store] save run failed: strategy=%s err=%v", rec.Strategy, err)
	}
}

type noopService struct{}

// NewNoopService returns the do-nothing backend used when history is
// not configured.
func NewNoopService() Service { return noopService{} }

func (noopService) Close() error { return nil }

func (noopService) SaveRun(context.Context, RunRecord) error { return nil }

func (noopService) ListRuns(context.Context, int) ([]RunRecord, error) { return nil, nil }
