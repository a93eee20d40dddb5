package cli

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/tanabodee/attendly/internal/errors"
	"github.com/tanabodee/attendly/internal/models"
	"github.com/tanabodee/attendly/internal/notify"
	"github.com/tanabodee/attendly/internal/reconcile"
)

type CheckCmd struct {
	ID   string `arg:"" optional:"" help:"Employee number to check. Defaults to the saved one."`
	Save bool   `help:"Save the given employee number as the default." default:"true" negatable:""`
}

// Run performs a manual check: fetch, persist the snapshot, display it, and
// play the success cue when today has at least one scan. Fetch failures are
// surfaced to the user; only automatic checks suppress them.
func (c *CheckCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	id := c.ID
	if id == "" {
		id = settings.EmpID
	}
	if id == "" {
		return &apperrors.ValidationError{Field: "employee number", Reason: "none given and none saved; run 'attendly settings --emp-id <ID>'"}
	}

	fmt.Printf("Checking attendance for %s...\n", id)

	fetched, err := ctx.BuildFetcher(settings).Fetch(context.Background(), id)
	if err != nil {
		_ = ctx.Store.AddCheckRun(models.NewCheckRun(models.CheckKindManual, "failed", err.Error()))
		return err
	}

	// Snapshot is persisted and displayed newest-first, replacing the
	// previous one wholesale.
	records := reconcile.SortDescending(fetched)
	if err := ctx.Store.SaveRecords(records); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}

	now := time.Now()
	if c.ID != "" && c.Save && id != settings.EmpID {
		settings.EmpID = id
	}
	settings.LastChecked = now.Unix()
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println(RenderRecords(records, settings.DarkTable))

	hasToday := reconcile.HasRecordToday(records, now)
	if hasToday && settings.EnableSound {
		ctx.Notifier.PlayCue(notify.CueSuccess, settings.CustomSound)
	}

	outcome := "no-record-today"
	if hasToday {
		outcome = "record-found"
	}
	if err := ctx.Store.AddCheckRun(models.NewCheckRun(models.CheckKindManual, outcome, fmt.Sprintf("%d records", len(records)))); err != nil {
		return err
	}

	return nil
}
