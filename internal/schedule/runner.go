package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/tanabodee/attendly/internal/logger"
	"github.com/tanabodee/attendly/internal/models"
)

// CheckFunc runs one automatic check. It must not panic; any failure is its
// own to log, the runner keeps ticking regardless.
type CheckFunc func(now time.Time)

// SettingsFunc supplies the current schedule configuration each tick.
type SettingsFunc func() (models.Settings, error)

// Runner is the watch-mode heartbeat: a one-second ticker that consults the
// schedule evaluator and invokes the check on a match.
type Runner struct {
	settings SettingsFunc
	check    CheckFunc
	interval time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRunner creates a runner over the given settings source and check.
func NewRunner(settings SettingsFunc, check CheckFunc) *Runner {
	return &Runner{
		settings: settings,
		check:    check,
		interval: time.Second,
	}
}

// Start launches the heartbeat loop. Stop or cancelling ctx ends it.
func (r *Runner) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)

	r.wg.Add(1)
	go r.loop(ctx)

	logger.Info("watch heartbeat started", "interval", r.interval)
}

// Stop ends the heartbeat and waits for an in-flight check to return.
func (r *Runner) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
	logger.Info("watch heartbeat stopped")
}

func (r *Runner) loop(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			// A stalled host can skip the trigger second entirely. There is
			// no catch-up fire: a late notification would carry stale
			// deadline wording. Make the gap visible instead.
			if gap := now.Sub(last); gap > 2*time.Second {
				logger.Warn("heartbeat lagged, a trigger second may have been missed", "gap", gap)
			}
			last = now

			settings, err := r.settings()
			if err != nil {
				logger.Error("failed to read settings", "error", err)
				continue
			}

			if ShouldFire(now, settings.CheckDays, settings.CheckTimes) {
				logger.Info("schedule matched, running automatic check", "time", now.Format("15:04:05"))
				// Checks run off the heartbeat so a slow relay chain cannot
				// swallow the next trigger second. Overlapping checks are
				// independent; the record snapshot is last-writer-wins.
				r.wg.Add(1)
				go func(now time.Time) {
					defer r.wg.Done()
					r.check(now)
				}(now)
			}
		}
	}
}
