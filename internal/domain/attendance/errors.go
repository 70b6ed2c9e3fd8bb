package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")

	// ErrDuplicateRecord signals that an insert raced a concurrent
	// insert for the same (employee_id, date) pair and hit the
	// store-level unique index.
	ErrDuplicateRecord = errors.New("attendance record already exists for this date")
)
