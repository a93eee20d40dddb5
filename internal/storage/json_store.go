package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tanabodee/attendly/internal/constants"
	"github.com/tanabodee/attendly/internal/models"
)

type Store struct {
	Settings models.Settings           `json:"settings"`
	Records  []models.AttendanceRecord `json:"records"`
	History  []models.CheckRun         `json:"history"`
}

// JSONStore keeps the whole store in one human-readable file. It is the
// provider for config paths ending in .json. The mutex serializes the watch
// heartbeat's settings reads against overlapping check goroutines writing the
// snapshot; overlapping saves are last-writer-wins.
type JSONStore struct {
	path string

	mu    sync.Mutex
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Settings: models.DefaultSettings(),
		Records:  []models.AttendanceRecord{},
		History:  []models.CheckRun{},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'attendly init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Older payloads may predate these sections.
	if s.store.Records == nil {
		s.store.Records = []models.AttendanceRecord{}
	}
	if s.store.History == nil {
		s.store.History = []models.CheckRun{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save writes the store to disk. Callers hold mu.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) GetRecords() ([]models.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return append([]models.AttendanceRecord(nil), s.store.Records...), nil
}

func (s *JSONStore) SaveRecords(records []models.AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Records = append([]models.AttendanceRecord(nil), records...)
	return s.save()
}

func (s *JSONStore) AddCheckRun(run models.CheckRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.History = append(s.store.History, run)
	if over := len(s.store.History) - constants.HistoryLimit; over > 0 {
		s.store.History = s.store.History[over:]
	}
	return s.save()
}

func (s *JSONStore) GetCheckRuns(limit int) ([]models.CheckRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	runs := append([]models.CheckRun(nil), s.store.History...)
	// Stored oldest-first; return newest-first.
	for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
		runs[i], runs[j] = runs[j], runs[i]
	}
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
