package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
// Lookup methods return ErrEmployeeNotFound when no record matches.
type EmployeeRepository interface {
	// Insert persists a new employee and returns it with the
	// store-assigned ID. Returns ErrEmployeeIDExists or ErrEmailExists
	// when a store-level uniqueness constraint rejects the write.
	Insert(ctx context.Context, newEmployee Employee) (Employee, error)

	// GetByEmployeeID retrieves an employee by its business identifier.
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)

	// GetByEmail retrieves an employee by exact email match.
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// GetByDepartmentFold retrieves any employee whose department matches
	// ignoring case. Used to canonicalize department spelling on create.
	GetByDepartmentFold(ctx context.Context, department string) (Employee, error)

	// List retrieves all employees in store-native order.
	List(ctx context.Context) ([]Employee, error)

	// DeleteByEmployeeID removes the employee with the given business
	// identifier.
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}
