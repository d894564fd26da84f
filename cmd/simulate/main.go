// Command simulate runs blackjack strategy presets through the session
// runner and compares their aggregate results. Rules and simulation
// parameters come from flags or from a JSON profile; finished runs can
// be recorded through the store configured by STORE_MODE.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"

	"blackjack-sim/internal/config"
	"blackjack-sim/internal/store"
	"blackjack-sim/sim"
	"blackjack-sim/strategy"
)

type options struct {
	strategies string
	list       bool
	history    bool

	rounds   int
	games    int
	bankroll float64
	tableMin float64
	tableMax float64

	decks       int
	penetration float64
	splits      int
	s17         bool
	noDAS       bool
	surrender   bool
	resplitAces bool
	payout      string

	exit         bool
	script       string
	profile      string
	seed         int64
	handsPerHour int
	workers      int
	drawdownPct  bool
}

func parseOptions() *options {
	o := &options{}

	flag.StringVar(&o.strategies, "strategies", "", "comma separated preset indexes or names (see -list)")
	flag.BoolVar(&o.list, "list", false, "list available strategies and exit")
	flag.BoolVar(&o.history, "history", false, "list recorded runs and exit")

	flag.IntVar(&o.rounds, "rounds", 500, "rounds per session")
	flag.IntVar(&o.rounds, "r", 500, "shorthand for -rounds")
	flag.IntVar(&o.games, "games", 1000, "sessions per strategy")
	flag.IntVar(&o.games, "g", 1000, "shorthand for -games")
	flag.Float64Var(&o.bankroll, "bankroll", 1000, "starting bankroll in dollars")
	flag.Float64Var(&o.bankroll, "b", 1000, "shorthand for -bankroll")
	flag.Float64Var(&o.tableMin, "table-min", 10, "table minimum in dollars")
	flag.Float64Var(&o.tableMax, "table-max", 1000, "table maximum in dollars")

	flag.IntVar(&o.decks, "decks", 8, "decks in the shoe")
	flag.IntVar(&o.decks, "d", 8, "shorthand for -decks")
	flag.Float64Var(&o.penetration, "penetration", 0.75, "fraction of the shoe dealt before reshuffle")
	flag.IntVar(&o.splits, "splits", 3, "max splits per round")
	flag.IntVar(&o.splits, "s", 3, "shorthand for -splits")
	flag.BoolVar(&o.s17, "s17", false, "dealer stands on soft 17")
	flag.BoolVar(&o.noDAS, "no-das", false, "disallow double after split")
	flag.BoolVar(&o.surrender, "surrender", false, "allow late surrender")
	flag.BoolVar(&o.resplitAces, "resplit-aces", false, "allow resplitting aces")
	flag.StringVar(&o.payout, "payout", "3:2", "blackjack payout, 3:2 or 6:5")

	flag.BoolVar(&o.exit, "exit", false, "expand presets with exit policy variants")
	flag.StringVar(&o.script, "script", "", "Lua playing strategy file to add to the lineup")
	flag.StringVar(&o.profile, "config", "", "JSON profile file, replaces the rule and simulation flags")
	flag.Int64Var(&o.seed, "seed", 0, "random seed, 0 picks one from the clock")
	flag.IntVar(&o.handsPerHour, "hands-per-hour", 70, "table pace for the $/hour column")
	flag.IntVar(&o.workers, "workers", 0, "concurrent session workers, 0 means one per CPU")
	flag.BoolVar(&o.drawdownPct, "drawdown-pct", false, "report drawdown as percent of bankroll instead of dollars")

	flag.Parse()
	return o
}

func main() {
	_ = godotenv.Load()

	o := parseOptions()
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	if o.history {
		if err := showHistory(); err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}
		return
	}

	cfg, err := buildConfig(o)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	lineup := strategy.Presets(cfg.Rules, o.exit)
	if o.script != "" {
		scripted, err := loadScriptStrategy(o.script)
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}
		lineup = append(lineup, scripted)
	}

	if o.list {
		printStrategyList(lineup)
		return
	}

	selected, err := selectStrategies(lineup, o.strategies)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	printBanner()
	printConfigPanel(cfg, len(selected))

	svc, mode, err := store.NewServiceFromEnv()
	if err != nil {
		logger.Warn("run store disabled", "err", err)
		svc = store.NewNoopService()
		mode = store.StoreModeOff
	}
	defer svc.Close()
	if mode != store.StoreModeOff {
		pterm.Info.Printfln("Recording runs to the %s store", mode)
	}

	runner, err := sim.NewRunner(cfg)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	params := encodeParams(cfg)
	ctx := context.Background()

	aggs := make([]sim.Aggregate, 0, len(selected))
	for _, strat := range selected {
		spinner, _ := pterm.DefaultSpinner.Start("Running " + strat.Name + " ...")
		agg, err := runner.Run(strat)
		if err != nil {
			spinner.Fail(strat.Name + ": " + err.Error())
			os.Exit(1)
		}
		spinner.Success(fmt.Sprintf("%s  (%s rounds)", strat.Name, formatInt(agg.TotalRounds)))

		aggs = append(aggs, agg)
		store.SaveRunBestEffort(ctx, svc, store.NewRunRecord(agg, params))
	}

	printResults(aggs, cfg.HandsPerHour, cfg.Rules.Surrender)
	printRankings(aggs, cfg.HandsPerHour)
}

// buildConfig assembles the simulation config from a profile file when
// -config is given, otherwise from the flags. A profile also carries
// strategy selection, so it overrides those options too.
func buildConfig(o *options) (sim.Config, error) {
	if o.profile != "" {
		p, err := config.Load(o.profile)
		if err != nil {
			return sim.Config{}, err
		}
		if len(p.Strategies) > 0 {
			o.strategies = strings.Join(p.Strategies, ",")
		}
		if p.Script != "" {
			o.script = p.Script
		}
		if p.Exit {
			o.exit = true
		}
		return p.Config()
	}

	cfg := sim.DefaultConfig()
	cfg.Sessions = o.games
	cfg.MaxRounds = o.rounds
	cfg.StartBankroll = config.Cents(o.bankroll)
	cfg.Seed = o.seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.HandsPerHour = o.handsPerHour
	cfg.Workers = o.workers
	cfg.DrawdownPct = o.drawdownPct

	cfg.Rules.Decks = o.decks
	cfg.Rules.Penetration = o.penetration
	cfg.Rules.TableMin = config.Cents(o.tableMin)
	cfg.Rules.TableMax = config.Cents(o.tableMax)
	cfg.Rules.HitSoft17 = !o.s17
	cfg.Rules.DoubleAfterSplit = !o.noDAS
	cfg.Rules.Surrender = o.surrender
	cfg.Rules.ResplitAces = o.resplitAces
	cfg.Rules.MaxSplits = o.splits

	payout, err := config.ParsePayout(o.payout)
	if err != nil {
		return sim.Config{}, err
	}
	cfg.Rules.Payout = payout

	if err := cfg.Validate(); err != nil {
		return sim.Config{}, err
	}
	return cfg, nil
}

// selectStrategies resolves the -strategies expression against the
// lineup. Tokens are either indexes or names; invalid tokens warn and
// are skipped, an empty expression selects everything.
func selectStrategies(lineup []strategy.Strategy, expr string) ([]strategy.Strategy, error) {
	if strings.TrimSpace(expr) == "" {
		return lineup, nil
	}

	var picked []strategy.Strategy
	for _, tok := range strings.Split(expr, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if idx, err := strconv.Atoi(tok); err == nil {
			if idx < 0 || idx >= len(lineup) {
				pterm.Warning.Printfln("strategy index %d out of range (0-%d)", idx, len(lineup)-1)
				continue
			}
			picked = append(picked, lineup[idx])
			continue
		}
		found := false
		for _, s := range lineup {
			if strings.EqualFold(s.Name, tok) {
				picked = append(picked, s)
				found = true
				break
			}
		}
		if !found {
			pterm.Warning.Printfln("unknown strategy %q", tok)
		}
	}

	if len(picked) == 0 {
		return nil, fmt.Errorf("no valid strategies selected")
	}
	return picked, nil
}

func loadScriptStrategy(path string) (strategy.Strategy, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return strategy.Strategy{}, fmt.Errorf("read script: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strategy.ScriptStrategy("Script:"+name, string(src))
}

func showHistory() error {
	svc, mode, err := store.NewServiceFromEnv()
	if err != nil {
		return err
	}
	defer svc.Close()

	if mode == store.StoreModeOff {
		pterm.Info.Println("run history is off, set STORE_MODE=sqlite or STORE_MODE=postgres to record runs")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	runs, err := svc.ListRuns(ctx, 20)
	if err != nil {
		return err
	}
	printHistory(runs)
	return nil
}

// runParams is the rule and simulation snapshot stored next to each
// recorded run so history entries stay interpretable.
type runParams struct {
	Decks       int     `json:"decks"`
	Penetration float64 `json:"penetration"`
	TableMin    int64   `json:"table_min"`
	TableMax    int64   `json:"table_max"`
	HitSoft17   bool    `json:"h17"`
	DAS         bool    `json:"das"`
	Surrender   bool    `json:"surrender"`
	MaxSplits   int     `json:"max_splits"`
	Payout      string  `json:"payout"`
	Sessions    int     `json:"sessions"`
	MaxRounds   int     `json:"max_rounds"`
	Bankroll    int64   `json:"bankroll"`
	Seed        int64   `json:"seed"`
}

func encodeParams(cfg sim.Config) string {
	r := cfg.Rules
	b, err := json.Marshal(runParams{
		Decks:       r.Decks,
		Penetration: r.Penetration,
		TableMin:    r.TableMin,
		TableMax:    r.TableMax,
		HitSoft17:   r.HitSoft17,
		DAS:         r.DoubleAfterSplit,
		Surrender:   r.Surrender,
		MaxSplits:   r.MaxSplits,
		Payout:      r.Payout.String(),
		Sessions:    cfg.Sessions,
		MaxRounds:   cfg.MaxRounds,
		Bankroll:    cfg.StartBankroll,
		Seed:        cfg.Seed,
	})
	if err != nil {
		return ""
	}
	return string(b)
}
