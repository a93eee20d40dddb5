package cli

import (
	"fmt"
	"time"
)

type HistoryCmd struct {
	Limit int `help:"Maximum number of check runs to show." default:"20"`
}

// Run lists recorded check runs, newest first.
func (c *HistoryCmd) Run(ctx *Context) error {
	runs, err := ctx.Store.GetCheckRuns(c.Limit)
	if err != nil {
		return fmt.Errorf("failed to get check history: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No checks recorded yet.")
		return nil
	}

	for _, run := range runs {
		line := fmt.Sprintf("%s  %-6s  %s",
			time.Unix(run.At, 0).Format("2006-01-02 15:04:05"), run.Kind, run.Outcome)
		if run.Detail != "" {
			line += "  (" + run.Detail + ")"
		}
		fmt.Println(line)
	}
	return nil
}
