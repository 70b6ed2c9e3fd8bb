package attendance

import "context"

// AttendanceRepository defines data access methods for attendance
// records.
type AttendanceRepository interface {
	// Insert persists a new attendance record and returns it with the
	// store-assigned ID. Returns ErrDuplicateRecord when the
	// (employee_id, date) unique index rejects the write.
	Insert(ctx context.Context, record Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for an employee on a
	// specific date. Returns ErrAttendanceNotFound when absent.
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (Attendance, error)

	// UpdateStatus overwrites the status of an existing record,
	// preserving its ID, and returns the updated record.
	UpdateStatus(ctx context.Context, id string, status Status) (Attendance, error)

	// List retrieves records matching the filter, sorted by date
	// descending.
	List(ctx context.Context, filter ListAttendanceFilter) ([]Attendance, error)

	// ListByEmployee retrieves every record for one employee.
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	// ListByEmployeeBetween retrieves one employee's records in the
	// half-open date range [startDate, endDate).
	ListByEmployeeBetween(ctx context.Context, employeeID, startDate, endDate string) ([]Attendance, error)

	// DeleteByEmployeeID removes all records for an employee and
	// reports how many were deleted.
	DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error)
}
