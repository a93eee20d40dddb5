package constants

import "time"

const (
	AppName            = "attendly"
	DefaultKeyringUser = "relay-api-key"
	DefaultConfigPath  = "~/.config/attendly/attendly.db"
	Version            = "v0.3.1"

	// RecordTimestampFormat is the remote record system's native timestamp
	// rendering (DD/MM/YYYY HH:mm:ss). Not ISO.
	RecordTimestampFormat = "02/01/2006 15:04:05"

	// RecordDateFormat is the date portion of RecordTimestampFormat.
	RecordDateFormat = "02/01/2006"

	// ClockFormat is the minute-granularity time-of-day format used in
	// schedule configuration (HH:mm).
	ClockFormat = "15:04"

	// Reconciliation boundaries, minutes from midnight.
	MorningDeadlineMinutes = 8 * 60
	NoonMinutes            = 12 * 60
	EveningDeadlineMinutes = 16*60 + 40

	// FetchTimeout bounds each relay attempt. Two relays means a worst case
	// of roughly twice this before a check is reported as failed.
	FetchTimeout = 15 * time.Second

	// NoDataMarker is the text the portal renders when an employee has no
	// scans; a rowless page carrying it is a valid empty result.
	NoDataMarker = "No data"

	// MinDocumentSize is the short-document threshold: a rowless page below
	// this size is treated as empty rather than as a structure failure.
	MinDocumentSize = 500

	// HistoryLimit caps the number of retained check runs.
	HistoryLimit = 200
)
