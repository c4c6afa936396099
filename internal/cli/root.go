// Package cli wires the activity tracker, timer engine, state store and
// reporter together behind a cobra command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"pomotick/internal/activity"
	"pomotick/internal/config"
	"pomotick/internal/engine"
	"pomotick/internal/report"
	"pomotick/internal/state"
)

const saveInterval = 10 * time.Second

var (
	flagConfig       string
	flagFile         string
	flagWorkTime     int
	flagBreakTime    int
	flagStartMode    string
	flagStartMinutes float64

	rootCmd = &cobra.Command{
		Use:   "pomotick",
		Short: "Activity-adaptive Pomodoro timer",
		Long: `Pomotick is a continuously running work/break timer that watches user
input activity. Active work counts the timer down and earns daily work
credit; idling during work counts it back up. Progress is saved to a JSON
state file and survives restarts. Stop it with Ctrl+C.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTimer,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to settings yaml (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "path to the JSON state file")
	rootCmd.Flags().IntVar(&flagWorkTime, "work-time", 30, "duration of a work session in minutes")
	rootCmd.Flags().IntVar(&flagBreakTime, "break-time", 30, "duration of a break in minutes")
	rootCmd.Flags().StringVar(&flagStartMode, "start-mode", "work", "starting mode: work or break")
	rootCmd.Flags().Float64Var(&flagStartMinutes, "start-minutes", 0, "starting remaining time in minutes (overrides saved state)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// loadSettings merges the settings file with explicitly set flags.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	path := flagConfig
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("work-time") {
		cfg.WorkMinutes = flagWorkTime
	}
	if cmd.Flags().Changed("break-time") {
		cfg.BreakMinutes = flagBreakTime
	}
	if flagFile != "" {
		cfg.StateFile = flagFile
	}
	return cfg, nil
}

func runTimer(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	engCfg := engine.Config{
		WorkDuration:  time.Duration(cfg.WorkMinutes) * time.Minute,
		BreakDuration: time.Duration(cfg.BreakMinutes) * time.Minute,
		IdleThreshold: time.Duration(cfg.IdleThresholdSeconds) * time.Second,
	}

	store, err := state.NewStore(cfg.StateFile)
	if err != nil {
		return err
	}
	snap, err := store.Load()
	if err != nil {
		return err
	}

	var ov engine.Overrides
	if cmd.Flags().Changed("start-mode") {
		mode, err := engine.ParseMode(flagStartMode)
		if err != nil {
			return err
		}
		ov.Mode = mode
	}
	if cmd.Flags().Changed("start-minutes") {
		v := flagStartMinutes
		ov.StartMinutes = &v
	}

	eng, err := engine.Resume(engCfg, snap, ov)
	if err != nil {
		return err
	}

	fmt.Println("[pomotick] Pomodoro timer started. Ctrl+C to stop.")
	fmt.Printf("[pomotick] Work time: %d minutes\n", cfg.WorkMinutes)
	fmt.Printf("[pomotick] Break time: %d minutes\n", cfg.BreakMinutes)
	switch {
	case snap == nil:
		fmt.Println("[pomotick] No saved state found, starting fresh.")
	case ov.Mode != "" && ov.Mode != snap.Mode:
		fmt.Printf("[pomotick] Overriding saved mode %s with %s.\n", snap.Mode, ov.Mode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracker := activity.NewTracker(time.Now())
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return tracker.Run(ctx, activity.NewProbe(), time.Second)
	})
	g.Go(func() error {
		return runLoop(ctx, eng, tracker, store, cfg)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Println("\n[pomotick] Pomodoro timer stopped.")
	return nil
}

// runLoop drives the engine at a 1-second cadence. Elapsed time is measured
// from the wall clock rather than assumed to be the tick period, so scheduler
// jitter and system sleep feed through as larger deltas.
func runLoop(ctx context.Context, eng *engine.Engine, tracker *activity.Tracker, store *state.Store, cfg config.Config) error {
	console := &report.Console{Out: os.Stdout}
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	lastTick := time.Now()
	lastSave := lastTick

	for {
		select {
		case <-ctx.Done():
			// Final flush: surface errors but never block exit on them.
			if err := store.Save(eng.Snapshot()); err != nil {
				fmt.Fprintln(os.Stderr, "[pomotick] final state save failed:", err)
			}
			return nil
		case now := <-ticker.C:
			elapsed := now.Sub(lastTick).Seconds()
			if elapsed < 0 {
				elapsed = 0
			}
			lastTick = now

			st := eng.Tick(elapsed, now, tracker.Last())
			if st.Transitioned {
				if st.Mode == engine.ModeBreak {
					fmt.Printf("\n[pomotick] Starting break (%d minutes)...\n", cfg.BreakMinutes)
				} else {
					fmt.Printf("\n[pomotick] Starting work (%d minutes)...\n", cfg.WorkMinutes)
				}
			}
			console.Render(st)

			if now.Sub(lastSave) >= saveInterval {
				if err := store.Save(eng.Snapshot()); err != nil {
					fmt.Fprintln(os.Stderr, "[pomotick] state save failed:", err)
				}
				lastSave = now
			}
		}
	}
}
