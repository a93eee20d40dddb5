package constants

const (
	// Setting names
	SettingEmpID       = "emp_id"
	SettingCheckTimes  = "check_times"
	SettingCheckDays   = "check_days"
	SettingEnableSound = "enable_sound"
	SettingCustomSound = "custom_sound"
	SettingEndpoint    = "endpoint"
	SettingDarkTable   = "dark_table"

	// Default settings values
	DefaultEnableSound = true
	DefaultDarkTable   = false

	// DefaultEndpoint is the portal report page queried with ?emp_no=<id>.
	DefaultEndpoint = "http://attendance.calcompportal.com/att_scan/scan_rpt.php"
)

// DefaultCheckTimes brackets the two reconciliation deadlines.
var DefaultCheckTimes = []string{"08:00", "16:45"}

// DefaultCheckDays is Monday through Friday (0=Sunday .. 6=Saturday).
var DefaultCheckDays = []int{1, 2, 3, 4, 5}
