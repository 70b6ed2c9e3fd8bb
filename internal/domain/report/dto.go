package report

// EmployeeStats aggregates one employee's lifetime attendance.
// TotalPresent and TotalAbsent are counted independently; TotalDays is
// the full record count.
type EmployeeStats struct {
	EmployeeID   string `json:"employee_id"`
	FullName     string `json:"full_name"`
	TotalPresent int    `json:"total_present"`
	TotalAbsent  int    `json:"total_absent"`
	TotalDays    int    `json:"total_days"`
}

// MonthlyAttendanceStats aggregates one employee's attendance over a
// single calendar month. AbsentDays is derived as TotalDays minus
// PresentDays.
type MonthlyAttendanceStats struct {
	EmployeeID     string  `json:"employee_id"`
	FullName       string  `json:"full_name"`
	Department     string  `json:"department"`
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	TotalDays      int     `json:"total_days"`
	PresentDays    int     `json:"present_days"`
	AbsentDays     int     `json:"absent_days"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// MonthlyStatsFilter selects the month to aggregate. Nil fields default
// independently to the current calendar month and year.
type MonthlyStatsFilter struct {
	Month *int
	Year  *int
}
