package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pomotick/internal/activity"
	"pomotick/internal/engine"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4A90E2")).
			Padding(0, 1).
			MarginBottom(1)

	workStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	breakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F7DC6F")).
			Bold(true)

	idleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2).
			MarginBottom(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

type dashTickMsg time.Time

func dashTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return dashTickMsg(t)
	})
}

// Dashboard is a read-only TUI over the persisted snapshot. It reloads the
// snapshot once per second and probes input idleness directly, so it can run
// beside (or without) an active timer process.
type Dashboard struct {
	Load        func() (*engine.Snapshot, error)
	Probe       activity.Probe
	GoalMinutes int

	snap    *engine.Snapshot
	idle    time.Duration
	idleErr error
	width   int
	height  int
}

func (m Dashboard) Init() tea.Cmd {
	return dashTickCmd()
}

func (m Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case dashTickMsg:
		if snap, err := m.Load(); err == nil {
			m.snap = snap
		}
		m.idle, m.idleErr = m.Probe.IdleDuration()
		return m, dashTickCmd()
	}
	return m, nil
}

func (m Dashboard) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	now := time.Now()
	header := headerStyle.Width(m.width).Render(
		fmt.Sprintf("Pomotick Dashboard - %s", now.Format("Jan 2, 2006 15:04:05")),
	)

	colWidth := m.width/2 - 3

	timerBox := boxStyle.Width(colWidth).Render(m.timerView())
	statusBox := boxStyle.Width(colWidth).Render(m.statusView())
	goalBox := boxStyle.Width(colWidth).Render(m.goalView(now, colWidth-10))
	historyBox := boxStyle.Width(colWidth).Render(m.historyView())

	left := lipgloss.JoinVertical(lipgloss.Left, timerBox, statusBox, goalBox)
	content := lipgloss.JoinHorizontal(lipgloss.Top, left, historyBox)

	footer := footerStyle.Width(m.width).
		Render("Press 'q' or Ctrl+C to quit - updates every second")

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m Dashboard) timerView() string {
	if m.snap == nil {
		return "TIMER\n\nno saved timer state yet"
	}
	style := workStyle
	if m.snap.Mode == engine.ModeBreak {
		style = breakStyle
	}
	return fmt.Sprintf("TIMER\n\nMode: %s\nTime Left: %s",
		style.Render(m.snap.Mode.Title()),
		Clock(m.snap.Remaining),
	)
}

func (m Dashboard) statusView() string {
	switch {
	case m.idleErr != nil:
		return "LIVE STATUS\n\nunknown (no idle probe)"
	case m.idle <= engine.DefaultIdleThreshold:
		return fmt.Sprintf("LIVE STATUS\n\n%s", workStyle.Render("ACTIVE"))
	default:
		return fmt.Sprintf("LIVE STATUS\n\n%s (%s)",
			idleStyle.Render("IDLE"), Clock(m.idle.Seconds()))
	}
}

func (m Dashboard) goalView(now time.Time, barWidth int) string {
	var today float64
	if m.snap != nil {
		today = engine.Ledger(m.snap.DailyWorkTotals).Today(now)
	}
	out := fmt.Sprintf("TODAY\n\nWorked: %s", HoursMinutes(today))
	if m.GoalMinutes <= 0 {
		return out
	}
	pct := int(today) * 100 / (m.GoalMinutes * 60)
	if barWidth < 10 {
		barWidth = 10
	}
	return fmt.Sprintf("%s\n%s %d%% of %s goal",
		out, progressBar(pct, barWidth), pct, HoursMinutes(float64(m.GoalMinutes*60)))
}

func (m Dashboard) historyView() string {
	out := "RECENT DAYS\n\n"
	if m.snap == nil {
		return out + "no history"
	}
	ledger := engine.Ledger(m.snap.DailyWorkTotals)
	days := ledger.Days()
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	if len(days) > 7 {
		days = days[:7]
	}
	if len(days) == 0 {
		return out + "no history"
	}
	for _, day := range days {
		out += fmt.Sprintf("%s  %s\n", day, HoursMinutes(ledger.Day(day)))
	}
	return strings.TrimRight(out, "\n")
}

func progressBar(percentage, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}
	filled := (percentage * width) / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return workStyle.Render(bar)
}
