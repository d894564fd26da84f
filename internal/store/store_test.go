package store

import (
	"context"
	"testing"
	"time"

	"blackjack-sim/sim"
)

func TestSQLiteRoundTrip(t *testing.T) {
	svc, err := NewSQLiteService(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer svc.Close()

	ctx := context.Background()
	first := RunRecord{
		CreatedAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Strategy:    "Basic + Flat",
		Params:      `{"decks":8}`,
		Sessions:    1000,
		TotalRounds: 500000,
		AvgROI:      -1.25,
		HouseEdge:   0.61,
		EVPerRound:  -0.061,
		RiskOfRuin:  2.1,
		SuccessRate: 44.0,
	}
	if err := svc.SaveRun(ctx, first); err != nil {
		t.Fatalf("save first run: %v", err)
	}

	second := first
	second.Strategy = "Basic + Hi-Lo + Linear"
	second.AvgROI = 3.4
	if err := svc.SaveRun(ctx, second); err != nil {
		t.Fatalf("save second run: %v", err)
	}

	runs, err := svc.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Strategy != "Basic + Hi-Lo + Linear" {
		t.Fatalf("newest run should come first, got %q", runs[0].Strategy)
	}

	got := runs[1]
	if got.ID == 0 {
		t.Fatalf("id not assigned")
	}
	if got.Strategy != first.Strategy || got.Params != first.Params {
		t.Fatalf("record mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("created at mismatch: %v != %v", got.CreatedAt, first.CreatedAt)
	}
	if got.HouseEdge != first.HouseEdge || got.Sessions != first.Sessions || got.TotalRounds != first.TotalRounds {
		t.Fatalf("stats mismatch: %+v", got)
	}
}

func TestListRunsHonorsLimit(t *testing.T) {
	svc, err := NewSQLiteService(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer svc.Close()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if err := svc.SaveRun(ctx, RunRecord{Strategy: "s"}); err != nil {
			t.Fatalf("save run %d: %v", i, err)
		}
	}

	runs, err := svc.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
}

func TestNewRunRecordFromAggregate(t *testing.T) {
	agg := sim.Aggregate{
		Name: "Basic + Flat", Sessions: 5, TotalRounds: 100,
		AvgROI: 1.5, HouseEdge: 0.5, EVPerRound: -0.1,
		RiskOfRuin: 10, SuccessRate: 40,
	}

	rec := NewRunRecord(agg, `{"seed":1}`)
	if rec.Strategy != agg.Name || rec.Sessions != agg.Sessions || rec.TotalRounds != agg.TotalRounds {
		t.Fatalf("record mismatch: %+v", rec)
	}
	if rec.AvgROI != agg.AvgROI || rec.HouseEdge != agg.HouseEdge {
		t.Fatalf("stats mismatch: %+v", rec)
	}
	if rec.Params != `{"seed":1}` {
		t.Fatalf("params mismatch: %q", rec.Params)
	}
	if rec.CreatedAt.IsZero() {
		t.Fatalf("created at not set")
	}
}

func TestServiceFromEnvModes(t *testing.T) {
	t.Setenv("STORE_MODE", "off")
	svc, mode, err := NewServiceFromEnv()
	if err != nil || mode != StoreModeOff || svc == nil {
		t.Fatalf("off mode: svc=%v mode=%q err=%v", svc, mode, err)
	}

	t.Setenv("STORE_MODE", "sqlite")
	t.Setenv("STORE_DB_PATH", ":memory:")
	svc, mode, err = NewServiceFromEnv()
	if err != nil || mode != StoreModeSQLite {
		t.Fatalf("sqlite mode: mode=%q err=%v", mode, err)
	}
	if _, ok := svc.(*SQLiteService); !ok {
		t.Fatalf("expected sqlite backend, got %T", svc)
	}
	svc.Close()

	t.Setenv("STORE_MODE", "bogus")
	if _, _, err := NewServiceFromEnv(); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
