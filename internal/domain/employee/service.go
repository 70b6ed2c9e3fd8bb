package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee creates an employee after checking business-key
	// uniqueness and canonicalizing the department spelling.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// ListEmployees retrieves all employees.
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// GetEmployee retrieves a single employee by business identifier.
	GetEmployee(ctx context.Context, employeeID string) (EmployeeResponse, error)

	// DeleteEmployee removes an employee and all of its attendance
	// records.
	DeleteEmployee(ctx context.Context, employeeID string) error
}
