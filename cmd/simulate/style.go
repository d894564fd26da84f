package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"blackjack-sim/internal/store"
	"blackjack-sim/sim"
	"blackjack-sim/strategy"
)

func printBanner() {
	pterm.Print("\n")
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgRed.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}
	pterm.Println(pterm.FgDarkGray.Sprint("  strategy simulator"))
	pterm.Println()
}

func printConfigPanel(cfg sim.Config, strategies int) {
	r := cfg.Rules
	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	body := pterm.Sprintfln("Strategies:      %d", strategies) +
		pterm.Sprintfln("Bankroll:        %s", dollars(cfg.StartBankroll)) +
		pterm.Sprintfln("Rounds/Session:  %s", formatInt(cfg.MaxRounds)) +
		pterm.Sprintfln("Sessions:        %s", formatInt(cfg.Sessions)) +
		pterm.Sprintfln("Seed:            %d", cfg.Seed) +
		"\n" +
		pterm.Sprintfln("Bet Range:       %s - %s", dollars(r.TableMin), dollars(r.TableMax)) +
		pterm.Sprintfln("Decks:           %d (%.0f%% dealt)", r.Decks, r.Penetration*100) +
		pterm.Sprintfln("Dealer H17:      %s", yesNo(r.HitSoft17)) +
		pterm.Sprintfln("DAS:             %s", yesNo(r.DoubleAfterSplit)) +
		pterm.Sprintfln("Late Surrender:  %s", yesNo(r.Surrender)) +
		pterm.Sprintfln("Max Splits:      %d", r.MaxSplits) +
		pterm.Sprintf("Payout:          %s", r.Payout)

	pterm.Println(box.WithTitle(pterm.LightYellow("|CONFIGURATION|")).WithTitleTopCenter().Sprint(body))
}

func printStrategyList(lineup []strategy.Strategy) {
	pterm.DefaultSection.Println("Available Strategies")
	for i, s := range lineup {
		pterm.Printfln("  %2d: %s", i, s.Name)
	}
	pterm.Println()
}

// printResults renders the aggregate table sorted by EV per round, best
// first. The surrender column only appears when the rules allow it.
func printResults(aggs []sim.Aggregate, handsPerHour int, showSurrender bool) {
	sorted := make([]sim.Aggregate, len(aggs))
	copy(sorted, aggs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EVPerRound > sorted[j].EVPerRound
	})

	header := []string{"Strategy", "Rounds", "$/Hour", "House Edge", "Win", "Push", "Loss"}
	if showSurrender {
		header = append(header, "Surr")
	}
	header = append(header, "Profit%", "RoR", "Drawdown")

	data := pterm.TableData{header}
	for _, a := range sorted {
		row := []string{
			a.Name,
			formatInt(a.TotalRounds),
			fmt.Sprintf("%+.2f", a.DollarsPerHour(handsPerHour)),
			fmt.Sprintf("%+.2f%%", a.HouseEdge),
			fmt.Sprintf("%.1f%%", a.AvgWinRate),
			fmt.Sprintf("%.1f%%", a.AvgPushRate),
			fmt.Sprintf("%.1f%%", a.AvgLossRate),
		}
		if showSurrender {
			row = append(row, fmt.Sprintf("%.1f%%", a.AvgSurrenderRate))
		}
		row = append(row,
			fmt.Sprintf("%.1f%%", a.SuccessRate),
			fmt.Sprintf("%.1f%%", a.RiskOfRuin),
			drawdown(a),
		)
		data = append(data, row)
	}

	pterm.DefaultSection.Println("Simulation Results")
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
	}
}

func printRankings(aggs []sim.Aggregate, handsPerHour int) {
	if len(aggs) < 2 {
		return
	}

	rank := func(less func(a, b sim.Aggregate) bool) (best, worst sim.Aggregate) {
		sorted := make([]sim.Aggregate, len(aggs))
		copy(sorted, aggs)
		sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
		return sorted[0], sorted[len(sorted)-1]
	}

	pterm.DefaultSection.Println("Rankings")

	best, worst := rank(func(a, b sim.Aggregate) bool { return a.EVPerRound > b.EVPerRound })
	pterm.Printfln("  Best $/Hour:      %s (%+.2f)", pterm.LightGreen(best.Name), best.DollarsPerHour(handsPerHour))
	pterm.Printfln("  Worst $/Hour:     %s (%+.2f)", pterm.LightRed(worst.Name), worst.DollarsPerHour(handsPerHour))

	best, worst = rank(func(a, b sim.Aggregate) bool { return a.HouseEdge < b.HouseEdge })
	pterm.Printfln("  Lowest Edge:      %s (%+.2f%%)", best.Name, best.HouseEdge)
	pterm.Printfln("  Highest Edge:     %s (%+.2f%%)", worst.Name, worst.HouseEdge)

	best, worst = rank(func(a, b sim.Aggregate) bool { return a.StdROI < b.StdROI })
	pterm.Printfln("  Lowest Variance:  %s (std %.2f%%)", best.Name, best.StdROI)
	pterm.Printfln("  Highest Variance: %s (std %.2f%%)", worst.Name, worst.StdROI)

	best, worst = rank(func(a, b sim.Aggregate) bool { return a.SuccessRate > b.SuccessRate })
	pterm.Printfln("  Best Profit%%:     %s (%.1f%%)", best.Name, best.SuccessRate)
	pterm.Printfln("  Worst Profit%%:    %s (%.1f%%)", worst.Name, worst.SuccessRate)

	best, worst = rank(func(a, b sim.Aggregate) bool { return a.AvgMaxDrawdown < b.AvgMaxDrawdown })
	pterm.Printfln("  Lowest Drawdown:  %s (%s)", best.Name, drawdown(best))
	pterm.Printfln("  Highest Drawdown: %s (%s)", worst.Name, drawdown(worst))

	best, worst = rank(func(a, b sim.Aggregate) bool { return a.RiskOfRuin < b.RiskOfRuin })
	pterm.Printfln("  Lowest RoR:       %s (%.1f%%)", best.Name, best.RiskOfRuin)
	pterm.Printfln("  Highest RoR:      %s (%.1f%%)", worst.Name, worst.RiskOfRuin)
	pterm.Println()
}

func printHistory(runs []store.RunRecord) {
	if len(runs) == 0 {
		pterm.Info.Println("no recorded runs yet")
		return
	}

	data := pterm.TableData{{"When", "Strategy", "Sessions", "Rounds", "ROI", "Edge", "RoR", "Profit%"}}
	for _, r := range runs {
		data = append(data, []string{
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Strategy,
			formatInt(r.Sessions),
			formatInt(r.TotalRounds),
			fmt.Sprintf("%+.2f%%", r.AvgROI),
			fmt.Sprintf("%+.2f%%", r.HouseEdge),
			fmt.Sprintf("%.1f%%", r.RiskOfRuin),
			fmt.Sprintf("%.1f%%", r.SuccessRate),
		})
	}

	pterm.DefaultSection.Println("Recorded Runs")
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
	}
}

func dollars(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

func drawdown(a sim.Aggregate) string {
	if a.DrawdownPct {
		return fmt.Sprintf("%.1f%%", a.AvgMaxDrawdown)
	}
	return fmt.Sprintf("$%.2f", a.AvgMaxDrawdown)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func formatInt(n int) string {
	if n < 0 {
		return "-" + formatInt(-n)
	}
	s := strconv.Itoa(n)
	var out []byte
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return string(out)
}
