package cli

import (
	"fmt"
	"time"

	"github.com/tanabodee/attendly/internal/constants"
)

type RecordsCmd struct {
	Today bool `help:"Show only today's records."`
}

// Run renders the last-fetched snapshot without touching the network.
func (c *RecordsCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	records, err := ctx.Store.GetRecords()
	if err != nil {
		return fmt.Errorf("failed to get records: %w", err)
	}

	if c.Today {
		today := time.Now().Format(constants.RecordDateFormat)
		filtered := records[:0:0]
		for _, r := range records {
			if len(r.Timestamp) >= len(today) && r.Timestamp[:len(today)] == today {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	fmt.Println(RenderRecords(records, settings.DarkTable))

	if settings.LastChecked > 0 {
		fmt.Printf("Last checked: %s\n", time.Unix(settings.LastChecked, 0).Format("2006-01-02 15:04:05"))
	}
	return nil
}
