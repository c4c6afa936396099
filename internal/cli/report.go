package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pomotick/internal/engine"
	"pomotick/internal/report"
	"pomotick/internal/state"
)

var (
	reportRange string

	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Print accumulated daily work totals",
		RunE:  runReport,
	}
)

func init() {
	reportCmd.Flags().StringVar(&reportRange, "range", "today", "report range: today|week|month|all")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	store, err := state.NewStore(cfg.StateFile)
	if err != nil {
		return err
	}
	snap, err := store.Load()
	if err != nil {
		return err
	}

	ledger := engine.Ledger{}
	if snap != nil {
		ledger = engine.Ledger(snap.DailyWorkTotals)
	}

	now := time.Now()
	fromKey, title, err := rangeStart(now, reportRange)
	if err != nil {
		return err
	}

	fmt.Println(title)
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("%-15s | %s\n", "Date", "Working Time")
	fmt.Println(strings.Repeat("-", 40))

	var total float64
	for _, day := range ledger.Days() {
		if day < fromKey {
			continue
		}
		secs := ledger.Day(day)
		total += secs
		fmt.Printf("%-15s | %s\n", day, report.HoursMinutes(secs))
	}
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("Total working time: %s\n", report.HoursMinutes(total))

	if cfg.DailyGoalMinutes > 0 && reportRange == "today" {
		goal := float64(cfg.DailyGoalMinutes * 60)
		fmt.Printf("Daily goal progress: %d%% of %s\n",
			int(total*100/goal), report.HoursMinutes(goal))
	}
	return nil
}

// rangeStart returns the inclusive first date key of the range. Date keys
// sort lexically, so filtering is a string comparison.
func rangeStart(now time.Time, rng string) (string, string, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch rng {
	case "today":
		return engine.DayKey(midnight), "Work for " + engine.DayKey(midnight), nil
	case "week":
		// ISO week: Monday start.
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start := midnight.AddDate(0, 0, -(weekday - 1))
		return engine.DayKey(start), "Work for week starting " + engine.DayKey(start), nil
	case "month":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return engine.DayKey(start), "Work for month " + start.Format("2006-01"), nil
	case "all":
		return "", "Work for all recorded days", nil
	}
	return "", "", fmt.Errorf("unknown range %q (want today, week, month or all)", rng)
}
