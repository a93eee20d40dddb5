package models

import (
	"time"

	"github.com/google/uuid"
)

// Check kinds
const (
	CheckKindManual = "manual"
	CheckKindAuto   = "auto"
)

// CheckRun is one completed or failed check, kept for the history view.
type CheckRun struct {
	ID      string `json:"id"`
	At      int64  `json:"at"` // unix time the check ran
	Kind    string `json:"kind"`
	Outcome string `json:"outcome"`
	Detail  string `json:"detail,omitempty"`
}

// NewCheckRun stamps a fresh run with an ID and the current time.
func NewCheckRun(kind, outcome, detail string) CheckRun {
	return CheckRun{
		ID:      uuid.NewString(),
		At:      time.Now().Unix(),
		Kind:    kind,
		Outcome: outcome,
		Detail:  detail,
	}
}
