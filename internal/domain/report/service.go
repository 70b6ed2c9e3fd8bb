package report

import "context"

// ReportService computes read-only attendance aggregates. Nothing is
// cached or pre-aggregated; every call scans the current records.
type ReportService interface {
	// AttendanceSummary returns lifetime stats for every employee.
	AttendanceSummary(ctx context.Context) ([]EmployeeStats, error)

	// MonthlyStats returns one employee's aggregates for the selected
	// month. Fails with employee.ErrEmployeeNotFound for an unknown
	// employee.
	MonthlyStats(ctx context.Context, employeeID string, filter MonthlyStatsFilter) (MonthlyAttendanceStats, error)
}
