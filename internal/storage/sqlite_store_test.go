package storage

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tanabodee/attendly/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "attendly.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreInitSeedsDefaults(t *testing.T) {
	s := newTestSQLiteStore(t)

	got, err := s.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	want := models.DefaultSettings()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetSettings() = %+v, want defaults %+v", got, want)
	}
}

func TestSQLiteStoreSettingsRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)

	want := models.DefaultSettings()
	want.EmpID = "C282811"
	want.CheckTimes = []string{"07:45"}
	want.CheckDays = []int{2, 4}
	want.DarkTable = true

	if err := s.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	reloaded := NewSQLiteStore(s.GetConfigPath())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	t.Cleanup(func() { reloaded.Close() })

	got, err := reloaded.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetSettings() = %+v, want %+v", got, want)
	}
}

func TestSQLiteStoreRecordsReplaceSnapshot(t *testing.T) {
	s := newTestSQLiteStore(t)

	first := []models.AttendanceRecord{
		{Seq: 1, EmpNo: "C1", Name: "A", Timestamp: "11/03/2024 07:55:00"},
		{Seq: 2, EmpNo: "C1", Name: "A", Timestamp: "11/03/2024 16:45:00"},
	}
	if err := s.SaveRecords(first); err != nil {
		t.Fatalf("SaveRecords() error = %v", err)
	}

	second := []models.AttendanceRecord{
		{Seq: 1, EmpNo: "C1", Name: "A", Timestamp: "12/03/2024 07:50:00"},
	}
	if err := s.SaveRecords(second); err != nil {
		t.Fatalf("SaveRecords() error = %v", err)
	}

	got, err := s.GetRecords()
	if err != nil {
		t.Fatalf("GetRecords() error = %v", err)
	}
	if !reflect.DeepEqual(got, second) {
		t.Errorf("GetRecords() = %v, want the replacing snapshot %v", got, second)
	}
}

func TestSQLiteStoreCheckRunsNewestFirst(t *testing.T) {
	s := newTestSQLiteStore(t)

	for _, r := range []models.CheckRun{
		{ID: "a", At: 1, Kind: models.CheckKindManual, Outcome: "record-found"},
		{ID: "b", At: 2, Kind: models.CheckKindAuto, Outcome: "morning-confirmed"},
		{ID: "c", At: 3, Kind: models.CheckKindAuto, Outcome: "failed", Detail: "relay down"},
	} {
		if err := s.AddCheckRun(r); err != nil {
			t.Fatalf("AddCheckRun() error = %v", err)
		}
	}

	got, err := s.GetCheckRuns(2)
	if err != nil {
		t.Fatalf("GetCheckRuns() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetCheckRuns(2) returned %d runs", len(got))
	}
	if got[0].ID != "c" || got[1].ID != "b" {
		t.Errorf("GetCheckRuns() order = %s,%s, want newest first", got[0].ID, got[1].ID)
	}
	if got[0].Detail != "relay down" {
		t.Errorf("Detail = %q, want it preserved", got[0].Detail)
	}
}

func TestSQLiteStoreLoadWithoutInit(t *testing.T) {
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := s.Load(); err == nil {
		t.Error("Load() without init should error")
	}
	if _, err := s.GetSettings(); err == nil {
		t.Error("GetSettings() before Load should error")
	}
}
