// Package memory provides in-memory repository implementations used by
// tests and local development.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees []employee.Employee
	sequence  int
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{}
}

// Insert implements employee.EmployeeRepository. It enforces the same
// unique constraints the Mongo indexes do.
func (r *EmployeeRepository) Insert(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.employees {
		if e.EmployeeID == newEmployee.EmployeeID {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		if e.Email == newEmployee.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	r.sequence++
	newEmployee.ID = fmt.Sprintf("emp-%d", r.sequence)
	r.employees = append(r.employees, newEmployee)
	return newEmployee, nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (r *EmployeeRepository) GetByEmployeeID(_ context.Context, employeeID string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.employees {
		if e.EmployeeID == employeeID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// GetByEmail implements employee.EmployeeRepository.
func (r *EmployeeRepository) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// GetByDepartmentFold implements employee.EmployeeRepository. Insertion
// order makes the match first-writer-wins, like the store scan.
func (r *EmployeeRepository) GetByDepartmentFold(_ context.Context, department string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.employees {
		if strings.EqualFold(e.Department, department) {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// List implements employee.EmployeeRepository.
func (r *EmployeeRepository) List(_ context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employee.Employee, len(r.employees))
	copy(out, r.employees)
	return out, nil
}

// DeleteByEmployeeID implements employee.EmployeeRepository.
func (r *EmployeeRepository) DeleteByEmployeeID(_ context.Context, employeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.employees {
		if e.EmployeeID == employeeID {
			r.employees = append(r.employees[:i], r.employees[i+1:]...)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}
