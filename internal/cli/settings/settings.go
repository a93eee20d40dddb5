package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/tanabodee/attendly/internal/cli"
	"github.com/tanabodee/attendly/internal/notify"
)

type SettingsCmd struct {
	List        bool `help:"List current settings."`
	Interactive bool `short:"i" help:"Edit settings in an interactive form."`

	EmpID      *string `help:"Default employee number for checks."`
	Times      *string `help:"Comma-separated auto-check times (HH:mm), e.g. \"08:00,16:45\"."`
	Days       *string `help:"Comma-separated auto-check days, e.g. \"mon,wed,fri\" or \"1,3,5\"."`
	Sound      *bool   `help:"Enable or disable sound cues."`
	Endpoint   *string `help:"Portal report URL."`
	DarkTable  *bool   `help:"Use the dark table theme."`
	ClearSound bool    `help:"Remove the custom sound payload."`
	TestSound  bool    `help:"Play the success cue with the current sound settings."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Employee No.:   %s\n", orUnset(settings.EmpID))
		fmt.Printf("  Check Times:    %s\n", strings.Join(settings.CheckTimes, ", "))
		fmt.Printf("  Check Days:     %s\n", cli.FormatWeekdays(settings.CheckDays))
		fmt.Printf("  Sound Enabled:  %v\n", settings.EnableSound)
		fmt.Printf("  Custom Sound:   %v\n", settings.CustomSound != "")
		fmt.Printf("  Dark Table:     %v\n", settings.DarkTable)
		fmt.Printf("  Endpoint:       %s\n", settings.Endpoint)
		return nil
	}

	if c.TestSound {
		ctx.Notifier.PlayCue(notify.CueSuccess, settings.CustomSound)
		fmt.Println("Played success cue.")
		return nil
	}

	if c.Interactive {
		return c.runForm(ctx)
	}

	updated := false
	if c.EmpID != nil {
		settings.EmpID = strings.ToUpper(strings.TrimSpace(*c.EmpID))
		updated = true
	}
	if c.Times != nil {
		times, err := cli.ParseCheckTimes(*c.Times)
		if err != nil {
			return err
		}
		settings.CheckTimes = times
		updated = true
	}
	if c.Days != nil {
		days, err := cli.ParseWeekdays(*c.Days)
		if err != nil {
			return err
		}
		settings.CheckDays = days
		updated = true
	}
	if c.Sound != nil {
		settings.EnableSound = *c.Sound
		updated = true
	}
	if c.Endpoint != nil {
		settings.Endpoint = strings.TrimSpace(*c.Endpoint)
		updated = true
	}
	if c.DarkTable != nil {
		settings.DarkTable = *c.DarkTable
		updated = true
	}
	if c.ClearSound {
		settings.CustomSound = ""
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}

// runForm mirrors the original settings view: employee number, a weekday
// picker, the time list, and the sound toggle.
func (c *SettingsCmd) runForm(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	empID := settings.EmpID
	times := strings.Join(settings.CheckTimes, ",")
	days := append([]int(nil), settings.CheckDays...)
	sound := settings.EnableSound
	dark := settings.DarkTable

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Employee No.").
				Description("e.g. C282811").
				Value(&empID),
			huh.NewMultiSelect[int]().
				Title("Auto-Check Days").
				Options(
					huh.NewOption("Sunday", 0),
					huh.NewOption("Monday", 1),
					huh.NewOption("Tuesday", 2),
					huh.NewOption("Wednesday", 3),
					huh.NewOption("Thursday", 4),
					huh.NewOption("Friday", 5),
					huh.NewOption("Saturday", 6),
				).
				Value(&days),
			huh.NewInput().
				Title("Auto-Check Times").
				Description("Comma-separated HH:mm, e.g. 08:00,16:45").
				Validate(func(s string) error {
					_, err := cli.ParseCheckTimes(s)
					return err
				}).
				Value(&times),
			huh.NewConfirm().
				Title("Sound cues on manual checks?").
				Value(&sound),
			huh.NewConfirm().
				Title("Dark table theme?").
				Value(&dark),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	parsedTimes, err := cli.ParseCheckTimes(times)
	if err != nil {
		return err
	}

	settings.EmpID = strings.ToUpper(strings.TrimSpace(empID))
	settings.CheckTimes = parsedTimes
	settings.CheckDays = days
	settings.EnableSound = sound
	settings.DarkTable = dark

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
