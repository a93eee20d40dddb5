package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/tanabodee/attendly/internal/constants"
	"github.com/tanabodee/attendly/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS records (
	seq       INTEGER NOT NULL,
	emp_no    TEXT NOT NULL,
	name      TEXT NOT NULL,
	timestamp TEXT NOT NULL,
	position  INTEGER PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS check_runs (
	id      TEXT PRIMARY KEY,
	at      INTEGER NOT NULL,
	kind    TEXT NOT NULL,
	outcome TEXT NOT NULL,
	detail  TEXT NOT NULL DEFAULT ''
);
`

// The settings blob stays JSON inside SQLite so the legacy default-filling
// lives in exactly one place (models.Settings.UnmarshalJSON).
const settingsKey = "settings"

// SQLiteStore is the default provider.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM settings WHERE key = ?", settingsKey).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'attendly init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema creation is idempotent; older stores gain new tables on load.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	if s.db == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}

	var blob string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", settingsKey).Scan(&blob)
	if err == sql.ErrNoRows {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, err
	}

	var settings models.Settings
	if err := json.Unmarshal([]byte(blob), &settings); err != nil {
		return models.Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	blob, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		settingsKey, string(blob),
	)
	return err
}

func (s *SQLiteStore) GetRecords() ([]models.AttendanceRecord, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT seq, emp_no, name, timestamp FROM records ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.AttendanceRecord{}
	for rows.Next() {
		var r models.AttendanceRecord
		if err := rows.Scan(&r.Seq, &r.EmpNo, &r.Name, &r.Timestamp); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) SaveRecords(records []models.AttendanceRecord) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM records"); err != nil {
		return err
	}
	for i, r := range records {
		_, err := tx.Exec(
			"INSERT INTO records (seq, emp_no, name, timestamp, position) VALUES (?, ?, ?, ?, ?)",
			r.Seq, r.EmpNo, r.Name, r.Timestamp, i,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddCheckRun(run models.CheckRun) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(
		"INSERT INTO check_runs (id, at, kind, outcome, detail) VALUES (?, ?, ?, ?, ?)",
		run.ID, run.At, run.Kind, run.Outcome, run.Detail,
	)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		"DELETE FROM check_runs WHERE id NOT IN (SELECT id FROM check_runs ORDER BY at DESC, id LIMIT ?)",
		constants.HistoryLimit,
	)
	return err
}

func (s *SQLiteStore) GetCheckRuns(limit int) ([]models.CheckRun, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	if limit <= 0 {
		limit = constants.HistoryLimit
	}

	rows, err := s.db.Query(
		"SELECT id, at, kind, outcome, detail FROM check_runs ORDER BY at DESC, id LIMIT ?", limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []models.CheckRun{}
	for rows.Next() {
		var r models.CheckRun
		if err := rows.Scan(&r.ID, &r.At, &r.Kind, &r.Outcome, &r.Detail); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
