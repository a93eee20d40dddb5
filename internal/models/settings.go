package models

import (
	"encoding/json"

	"github.com/tanabodee/attendly/internal/constants"
)

// Settings represents application-wide settings
type Settings struct {
	EmpID       string   `json:"emp_id"`       // default employee number for checks
	CheckTimes  []string `json:"check_times"`  // "HH:mm" trigger times, in user order
	CheckDays   []int    `json:"check_days"`   // weekday indices, 0=Sunday .. 6=Saturday
	EnableSound bool     `json:"enable_sound"` // whether sound cues play on manual checks
	CustomSound string   `json:"custom_sound"` // optional data-URL audio payload
	LastChecked int64    `json:"last_checked"` // unix time of the last completed check
	DarkTable   bool     `json:"dark_table"`   // dark rendering theme for the record table
	Endpoint    string   `json:"endpoint"`     // portal report URL, queried with ?emp_no=
}

// DefaultSettings returns the settings used for a fresh store.
func DefaultSettings() Settings {
	return Settings{
		CheckTimes:  append([]string(nil), constants.DefaultCheckTimes...),
		CheckDays:   append([]int(nil), constants.DefaultCheckDays...),
		EnableSound: constants.DefaultEnableSound,
		DarkTable:   constants.DefaultDarkTable,
		Endpoint:    constants.DefaultEndpoint,
	}
}

// UnmarshalJSON fills defaults for fields absent from older persisted
// payloads. The schema is versionless; absence is the only signal.
func (s *Settings) UnmarshalJSON(data []byte) error {
	type alias Settings
	aux := struct {
		*alias
		CheckTimes  []string `json:"check_times"`
		CheckDays   []int    `json:"check_days"`
		EnableSound *bool    `json:"enable_sound"`
		Endpoint    *string  `json:"endpoint"`
	}{alias: (*alias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	s.CheckTimes = aux.CheckTimes
	if aux.CheckTimes == nil {
		s.CheckTimes = append([]string(nil), constants.DefaultCheckTimes...)
	}
	s.CheckDays = aux.CheckDays
	if aux.CheckDays == nil {
		s.CheckDays = append([]int(nil), constants.DefaultCheckDays...)
	}
	s.EnableSound = constants.DefaultEnableSound
	if aux.EnableSound != nil {
		s.EnableSound = *aux.EnableSound
	}
	s.Endpoint = constants.DefaultEndpoint
	if aux.Endpoint != nil && *aux.Endpoint != "" {
		s.Endpoint = *aux.Endpoint
	}

	return nil
}
