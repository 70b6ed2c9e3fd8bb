package attendance

// DateLayout is the wire and storage format for attendance dates.
// Lexicographic comparison of strings in this format matches calendar
// order, which the range queries rely on.
const DateLayout = "2006-01-02"

// Status is the closed set of daily attendance outcomes.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// ParseStatus validates a raw status string against the closed set.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPresent, StatusAbsent:
		return Status(s), true
	}
	return "", false
}

// Attendance records one employee's status for one calendar day.
// At most one record exists per (EmployeeID, Date) pair.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       string
	Status     Status
}
