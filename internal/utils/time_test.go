package utils

import (
	"testing"
	"time"
)

func TestParseRecordTimestamp(t *testing.T) {
	got, err := ParseRecordTimestamp("11/03/2024 07:55:30")
	if err != nil {
		t.Fatalf("ParseRecordTimestamp() error = %v", err)
	}
	want := time.Date(2024, 3, 11, 7, 55, 30, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParseRecordTimestamp() = %v, want %v", got, want)
	}

	if _, err := ParseRecordTimestamp("2024-03-11 07:55:30"); err == nil {
		t.Error("ParseRecordTimestamp() accepted an ISO timestamp")
	}
}

func TestRecordDateAndClock(t *testing.T) {
	ts := "11/03/2024 07:55:30"
	if got := RecordDate(ts); got != "11/03/2024" {
		t.Errorf("RecordDate() = %q", got)
	}
	if got := RecordClock(ts); got != "07:55:30" {
		t.Errorf("RecordClock() = %q", got)
	}
	if got := RecordClock("11/03/2024"); got != "" {
		t.Errorf("RecordClock() = %q for a date-only string, want empty", got)
	}
}

func TestClockString(t *testing.T) {
	at := time.Date(2024, 3, 11, 8, 5, 0, 0, time.Local)
	if got := ClockString(at); got != "08:05" {
		t.Errorf("ClockString() = %q, want 08:05", got)
	}
}

func TestMinutesOfDay(t *testing.T) {
	at := time.Date(2024, 3, 11, 16, 40, 59, 0, time.Local)
	if got := MinutesOfDay(at); got != 1000 {
		t.Errorf("MinutesOfDay() = %d, want 1000", got)
	}
}

func TestParseClockToMinutes(t *testing.T) {
	tests := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{clock: "00:00", want: 0},
		{clock: "08:00", want: 480},
		{clock: "16:40", want: 1000},
		{clock: "23:59", want: 1439},
		{clock: "25:00", wantErr: true},
		{clock: "08:00:00", wantErr: true},
		{clock: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseClockToMinutes(tt.clock)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClockToMinutes(%q) accepted invalid input", tt.clock)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClockToMinutes(%q) error = %v", tt.clock, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClockToMinutes(%q) = %d, want %d", tt.clock, got, tt.want)
		}
	}
}
