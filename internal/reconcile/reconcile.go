// Package reconcile derives a presence decision from a day's scan records:
// did a qualifying morning scan happen, did a qualifying evening scan happen,
// and has the respective deadline passed.
package reconcile

import (
	"sort"
	"time"

	"github.com/tanabodee/attendly/internal/constants"
	"github.com/tanabodee/attendly/internal/models"
	"github.com/tanabodee/attendly/internal/utils"
)

// Outcome is the result of reconciling today's records against the clock.
type Outcome int

const (
	NoOutcomeYet Outcome = iota
	MorningConfirmed
	MorningMissing
	EveningConfirmed
	EveningMissing
)

func (o Outcome) String() string {
	switch o {
	case MorningConfirmed:
		return "morning-confirmed"
	case MorningMissing:
		return "morning-missing"
	case EveningConfirmed:
		return "evening-confirmed"
	case EveningMissing:
		return "evening-missing"
	default:
		return "no-outcome-yet"
	}
}

// Result pairs an outcome with the record that produced it, if any.
type Result struct {
	Outcome Outcome
	Matched *models.AttendanceRecord
}

// TodayRecords filters records to those whose date portion equals now's date
// in the portal's DD/MM/YYYY rendering.
func TodayRecords(records []models.AttendanceRecord, now time.Time) []models.AttendanceRecord {
	today := now.Format(constants.RecordDateFormat)
	var out []models.AttendanceRecord
	for _, r := range records {
		if utils.RecordDate(r.Timestamp) == today {
			out = append(out, r)
		}
	}
	return out
}

// SortAscending returns a copy sorted ascending by parsed timestamp. Pairs
// with an unparseable member compare equal, so they keep their relative order.
func SortAscending(records []models.AttendanceRecord) []models.AttendanceRecord {
	out := append([]models.AttendanceRecord(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		a, errA := utils.ParseRecordTimestamp(out[i].Timestamp)
		b, errB := utils.ParseRecordTimestamp(out[j].Timestamp)
		if errA != nil || errB != nil {
			return false
		}
		return a.Before(b)
	})
	return out
}

// SortDescending returns a copy sorted newest-first, for display and for the
// persisted snapshot. Same unparseable-pairs-compare-equal rule.
func SortDescending(records []models.AttendanceRecord) []models.AttendanceRecord {
	out := append([]models.AttendanceRecord(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		a, errA := utils.ParseRecordTimestamp(out[i].Timestamp)
		b, errB := utils.ParseRecordTimestamp(out[j].Timestamp)
		if errA != nil || errB != nil {
			return false
		}
		return b.Before(a)
	})
	return out
}

// Evaluate reconciles a snapshot (any order) against the current time.
//
// Before noon: a morning scan (earliest entry before 12:00) confirms
// check-in; none found after 08:00 means a missing entry; before 08:00 there
// is nothing to say yet. From 16:40 an evening scan (earliest entry at or
// after 16:40) confirms checkout, otherwise the checkout is missing. The
// window between noon and 16:40 never produces an outcome.
func Evaluate(records []models.AttendanceRecord, now time.Time) Result {
	today := SortAscending(TodayRecords(records, now))

	morning := earliest(today, func(t time.Time) bool {
		return t.Hour() < 12
	})
	evening := earliest(today, func(t time.Time) bool {
		return utils.MinutesOfDay(t) >= constants.EveningDeadlineMinutes
	})

	switch t := utils.MinutesOfDay(now); {
	case t < constants.NoonMinutes:
		if morning != nil {
			return Result{Outcome: MorningConfirmed, Matched: morning}
		}
		if t >= constants.MorningDeadlineMinutes {
			return Result{Outcome: MorningMissing}
		}
		return Result{Outcome: NoOutcomeYet}
	case t >= constants.EveningDeadlineMinutes:
		if evening != nil {
			return Result{Outcome: EveningConfirmed, Matched: evening}
		}
		return Result{Outcome: EveningMissing}
	default:
		return Result{Outcome: NoOutcomeYet}
	}
}

// HasRecordToday reports whether any record belongs to today's date. Manual
// checks reduce to this single binary.
func HasRecordToday(records []models.AttendanceRecord, now time.Time) bool {
	return len(TodayRecords(records, now)) > 0
}

func earliest(sorted []models.AttendanceRecord, match func(time.Time) bool) *models.AttendanceRecord {
	for i := range sorted {
		t, err := utils.ParseRecordTimestamp(sorted[i].Timestamp)
		if err != nil {
			continue
		}
		if match(t) {
			return &sorted[i]
		}
	}
	return nil
}
