package employee

// Employee is an HR record keyed by a caller-supplied business
// identifier. ID is the store-assigned identifier and is immutable.
type Employee struct {
	ID         string
	EmployeeID string
	FullName   string
	Email      string
	Department string
}
