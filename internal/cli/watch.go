package cli

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tanabodee/attendly/internal/logger"
	"github.com/tanabodee/attendly/internal/models"
	"github.com/tanabodee/attendly/internal/notify"
	"github.com/tanabodee/attendly/internal/reconcile"
	"github.com/tanabodee/attendly/internal/schedule"
)

type WatchCmd struct{}

// Run starts the watch daemon: a one-second heartbeat that fires the full
// fetch, reconcile, notify chain at the configured weekday/time triggers.
// Errors never reach the terminal here; passive monitoring logs and moves on.
func (c *WatchCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if settings.EmpID == "" {
		return fmt.Errorf("no employee number saved, run 'attendly settings --emp-id <ID>' first")
	}
	if len(settings.CheckTimes) == 0 || len(settings.CheckDays) == 0 {
		return fmt.Errorf("no schedule configured, run 'attendly settings --times ... --days ...' first")
	}

	fmt.Printf("Watching for %s on %s at %s. Ctrl-C to stop.\n",
		settings.EmpID, FormatWeekdays(settings.CheckDays), strings.Join(settings.CheckTimes, ", "))

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := schedule.NewRunner(ctx.Store.GetSettings, func(now time.Time) {
		c.runAutoCheck(ctx, now)
	})
	runner.Start(sigCtx)

	<-sigCtx.Done()
	runner.Stop()
	fmt.Println("Stopped.")
	return nil
}

// runAutoCheck is one scheduled pass over the fetch-parse-reconcile-notify
// chain. Unlike manual checks, failures are suppressed from the user.
func (c *WatchCmd) runAutoCheck(ctx *Context, now time.Time) {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		logger.Error("automatic check aborted", "error", err)
		return
	}

	fetched, err := ctx.BuildFetcher(settings).Fetch(context.Background(), settings.EmpID)
	if err != nil {
		logger.Error("automatic check failed", "error", err)
		if saveErr := ctx.Store.AddCheckRun(models.NewCheckRun(models.CheckKindAuto, "failed", err.Error())); saveErr != nil {
			logger.Error("failed to record check run", "error", saveErr)
		}
		return
	}

	if err := ctx.Store.SaveRecords(reconcile.SortDescending(fetched)); err != nil {
		logger.Error("failed to save records", "error", err)
	}

	settings.LastChecked = now.Unix()
	if err := ctx.Store.SaveSettings(settings); err != nil {
		logger.Error("failed to save settings", "error", err)
	}

	res := reconcile.Evaluate(fetched, now)
	logger.Info("automatic check reconciled", "outcome", res.Outcome.String(), "records", len(fetched))

	if note, ok := notify.ForOutcome(res); ok {
		ctx.Notifier.Send(note, settings.CustomSound)
	}

	detail := ""
	if res.Matched != nil {
		detail = res.Matched.Timestamp
	}
	if err := ctx.Store.AddCheckRun(models.NewCheckRun(models.CheckKindAuto, res.Outcome.String(), detail)); err != nil {
		logger.Error("failed to record check run", "error", err)
	}
}
