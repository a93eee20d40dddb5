package reconcile

import (
	"testing"
	"time"

	"github.com/tanabodee/attendly/internal/constants"
	"github.com/tanabodee/attendly/internal/models"
)

// rec builds a record stamped on day's date at the given clock time.
func rec(day time.Time, clock string) models.AttendanceRecord {
	return models.AttendanceRecord{
		EmpNo:     "C282811",
		Name:      "Somchai",
		Timestamp: day.Format(constants.RecordDateFormat) + " " + clock,
	}
}

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local)
}

func TestEvaluate(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)
	yesterday := day.AddDate(0, 0, -1)

	full := []models.AttendanceRecord{
		rec(day, "07:55:00"),
		rec(day, "16:45:00"),
	}

	tests := []struct {
		name        string
		records     []models.AttendanceRecord
		now         time.Time
		wantOutcome Outcome
		wantMatched string
	}{
		{
			name:        "morning scan confirmed before noon",
			records:     full,
			now:         at(day, 8, 30),
			wantOutcome: MorningConfirmed,
			wantMatched: "07:55:00",
		},
		{
			name:        "noon is a quiet window",
			records:     full,
			now:         at(day, 12, 0),
			wantOutcome: NoOutcomeYet,
		},
		{
			name:        "before the morning deadline nothing is missing",
			records:     []models.AttendanceRecord{rec(day, "09:00:00")},
			now:         at(day, 7, 59),
			wantOutcome: NoOutcomeYet,
		},
		{
			name:        "past the morning deadline with no entries",
			records:     nil,
			now:         at(day, 8, 1),
			wantOutcome: MorningMissing,
		},
		{
			name:        "evening scan confirmed after 16:40",
			records:     full,
			now:         at(day, 17, 0),
			wantOutcome: EveningConfirmed,
			wantMatched: "16:45:00",
		},
		{
			name:        "missing checkout after 16:40",
			records:     []models.AttendanceRecord{rec(day, "07:55:00")},
			now:         at(day, 16, 40),
			wantOutcome: EveningMissing,
		},
		{
			name:        "afternoon scan before 16:40 does not count as evening",
			records:     []models.AttendanceRecord{rec(day, "16:39:00")},
			now:         at(day, 17, 0),
			wantOutcome: EveningMissing,
		},
		{
			name:        "yesterday's records are ignored",
			records:     []models.AttendanceRecord{rec(yesterday, "07:55:00")},
			now:         at(day, 8, 30),
			wantOutcome: MorningMissing,
		},
		{
			name:        "an 09:00 scan still counts as morning",
			records:     []models.AttendanceRecord{rec(day, "09:00:00")},
			now:         at(day, 9, 30),
			wantOutcome: MorningConfirmed,
			wantMatched: "09:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Evaluate(tt.records, tt.now)
			if res.Outcome != tt.wantOutcome {
				t.Fatalf("Evaluate() outcome = %v, want %v", res.Outcome, tt.wantOutcome)
			}
			if tt.wantMatched != "" {
				if res.Matched == nil {
					t.Fatalf("Evaluate() matched nothing, want %s", tt.wantMatched)
				}
				want := tt.now.Format(constants.RecordDateFormat) + " " + tt.wantMatched
				if res.Matched.Timestamp != want {
					t.Errorf("Evaluate() matched %q, want %q", res.Matched.Timestamp, want)
				}
			}
		})
	}
}

func TestEvaluatePicksEarliestMorningScan(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)
	// Out of order on purpose; Evaluate sorts before picking.
	records := []models.AttendanceRecord{
		rec(day, "08:10:00"),
		rec(day, "07:55:00"),
	}

	res := Evaluate(records, at(day, 9, 0))
	if res.Outcome != MorningConfirmed || res.Matched == nil {
		t.Fatalf("Evaluate() = %+v, want MorningConfirmed with a match", res)
	}
	if got := res.Matched.Timestamp; got != rec(day, "07:55:00").Timestamp {
		t.Errorf("Evaluate() matched %q, want the earliest scan", got)
	}
}

func TestSortAscendingStability(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)
	a := rec(day, "08:00:00")
	a.Seq = 1
	b := rec(day, "08:00:00")
	b.Seq = 2
	c := rec(day, "07:00:00")
	c.Seq = 3

	sorted := SortAscending([]models.AttendanceRecord{a, b, c})
	if sorted[0].Seq != 3 {
		t.Errorf("earliest record not first: %+v", sorted)
	}
	if sorted[1].Seq != 1 || sorted[2].Seq != 2 {
		t.Errorf("equal timestamps reordered: %+v", sorted)
	}
}

func TestSortKeepsUnparseableInPlace(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)
	bad := models.AttendanceRecord{Seq: 1, Timestamp: "not a timestamp"}
	good := rec(day, "07:00:00")
	good.Seq = 2

	sorted := SortAscending([]models.AttendanceRecord{bad, good})
	if sorted[0].Seq != 1 || sorted[1].Seq != 2 {
		t.Errorf("unparseable record moved: %+v", sorted)
	}
}

func TestHasRecordToday(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)

	if !HasRecordToday([]models.AttendanceRecord{rec(day, "07:55:00")}, at(day, 8, 0)) {
		t.Error("HasRecordToday() = false with a record for today")
	}
	if HasRecordToday([]models.AttendanceRecord{rec(day.AddDate(0, 0, -1), "07:55:00")}, at(day, 8, 0)) {
		t.Error("HasRecordToday() = true with only yesterday's record")
	}
	if HasRecordToday(nil, at(day, 8, 0)) {
		t.Error("HasRecordToday() = true with no records")
	}
}
