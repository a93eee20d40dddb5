package cli

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/tanabodee/attendly/internal/fetcher"
	"github.com/tanabodee/attendly/internal/keyring"
	"github.com/tanabodee/attendly/internal/logger"
	"github.com/tanabodee/attendly/internal/models"
	"github.com/tanabodee/attendly/internal/notify"
	"github.com/tanabodee/attendly/internal/storage"
	"github.com/tanabodee/attendly/internal/utils"
)

type Context struct {
	Store    storage.Provider
	Notifier *notify.Notifier
	Debug    bool
}

// BuildFetcher wires the relay chain for the configured endpoint. The
// corsproxy key comes from the OS keyring when present; ATTENDLY_ENDPOINT
// overrides the persisted endpoint for one-off runs.
func (c *Context) BuildFetcher(settings models.Settings) *fetcher.Fetcher {
	endpoint := settings.Endpoint
	if env := os.Getenv("ATTENDLY_ENDPOINT"); env != "" {
		endpoint = env
	}

	key, err := keyring.GetRelayKey()
	if err != nil {
		if err != keyring.ErrNotFound {
			logger.Debug("keyring unavailable, relays run unkeyed", "error", err)
		}
		key = ""
	}

	return fetcher.New(endpoint, fetcher.DefaultStrategies(key)...)
}

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ParseWeekdays parses a comma-separated list of weekdays into day indices
// (0=Sunday .. 6=Saturday). Accepts names, short names, and digits.
func ParseWeekdays(s string) ([]int, error) {
	dayMap := map[string]int{
		"sun": 0, "sunday": 0,
		"mon": 1, "monday": 1,
		"tue": 2, "tuesday": 2,
		"wed": 3, "wednesday": 3,
		"thu": 4, "thursday": 4,
		"fri": 5, "friday": 5,
		"sat": 6, "saturday": 6,
	}

	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		if d, ok := dayMap[part]; ok {
			days = append(days, d)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		days = append(days, num)
	}

	sort.Ints(days)
	return days, nil
}

// FormatWeekdays renders day indices as short names, e.g. "Mon,Wed,Fri".
func FormatWeekdays(days []int) string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		if d >= 0 && d < len(weekdayNames) {
			names = append(names, weekdayNames[d])
		}
	}
	return strings.Join(names, ",")
}

// ParseCheckTimes parses a comma-separated list of HH:mm trigger times,
// keeping the user's order.
func ParseCheckTimes(s string) ([]string, error) {
	var times []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, err := utils.ParseClockToMinutes(part); err != nil {
			return nil, fmt.Errorf("invalid time %q, expected HH:mm", part)
		}
		times = append(times, part)
	}
	return times, nil
}

// RenderRecords renders the attendance snapshot as a bordered table.
func RenderRecords(records []models.AttendanceRecord, dark bool) string {
	if len(records) == 0 {
		return "No attendance records stored. Run 'attendly check' to fetch some."
	}

	border := lipgloss.Color("245")
	header := lipgloss.Color("36")
	if dark {
		border = lipgloss.Color("240")
		header = lipgloss.Color("43")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(border)).
		Headers("#", "EMP NO", "NAME", "DATE / TIME").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Foreground(header).Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, r := range records {
		t.Row(strconv.Itoa(r.Seq), r.EmpNo, r.Name, r.Timestamp)
	}

	return t.Render()
}
