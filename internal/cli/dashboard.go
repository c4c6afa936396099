package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pomotick/internal/activity"
	"pomotick/internal/report"
	"pomotick/internal/state"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show an interactive dashboard over the saved timer state",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		store, err := state.NewStore(cfg.StateFile)
		if err != nil {
			return err
		}

		m := report.Dashboard{
			Load:        store.Load,
			Probe:       activity.NewProbe(),
			GoalMinutes: cfg.DailyGoalMinutes,
		}
		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run dashboard: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
