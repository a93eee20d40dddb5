package models

// AttendanceRecord is one scan event parsed from the portal's report table.
type AttendanceRecord struct {
	Seq       int    `json:"seq"`       // 1-based data-row position in the parsed table
	EmpNo     string `json:"emp_no"`    // employee number as rendered by the portal
	Name      string `json:"name"`      // employee name, "Unknown" when the cell is blank
	Timestamp string `json:"timestamp"` // DD/MM/YYYY HH:mm:ss, kept verbatim
}
