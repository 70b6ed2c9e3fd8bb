package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// RecordAttendance upserts the status for (employee_id, date). An
	// existing record is overwritten in place; otherwise a new record
	// is created.
	RecordAttendance(ctx context.Context, req RecordAttendanceRequest) (AttendanceResponse, error)

	// ListAttendance retrieves records matching the filter, newest
	// date first.
	ListAttendance(ctx context.Context, filter ListAttendanceFilter) ([]AttendanceResponse, error)
}
