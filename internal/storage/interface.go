package storage

import "github.com/tanabodee/attendly/internal/models"

// Provider is the process-wide settings/records store. It is read at startup
// and rewritten whenever settings or the record snapshot change; there are no
// concurrent writers beyond overlapping checks, which are last-writer-wins.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Record snapshot. SaveRecords replaces the snapshot wholesale; the
	// fetcher never merges across fetches.
	GetRecords() ([]models.AttendanceRecord, error)
	SaveRecords([]models.AttendanceRecord) error

	// Check history
	AddCheckRun(models.CheckRun) error
	GetCheckRuns(limit int) ([]models.CheckRun, error)

	// Utils
	GetConfigPath() string
}
