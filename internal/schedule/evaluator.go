// Package schedule decides when automatic checks fire and drives the
// watch-mode heartbeat.
package schedule

import (
	"slices"
	"time"

	"github.com/tanabodee/attendly/internal/utils"
)

// ShouldFire reports whether an automatic check is due at the given instant.
// Matching is exact-string at minute granularity and additionally gated to
// second zero, so a once-per-second caller fires at most once per configured
// minute. A heartbeat that skips the trigger second misses the fire; see
// Runner for how lag is surfaced.
func ShouldFire(now time.Time, days []int, times []string) bool {
	if now.Second() != 0 {
		return false
	}
	if !slices.Contains(days, int(now.Weekday())) {
		return false
	}
	return slices.Contains(times, utils.ClockString(now))
}
