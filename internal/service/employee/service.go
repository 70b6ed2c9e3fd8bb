package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
//
// Uniqueness checks are check-then-act; two concurrent creates with the
// same business key can both pass them. The store-level unique indexes
// turn that race into the same conflict errors at insert time.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeIDExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, req.Email); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, err
	}

	// A department that differs from an existing one only in casing is
	// stored with the existing casing. First writer wins.
	department := req.Department
	existing, err := s.employeeRepo.GetByDepartmentFold(ctx, req.Department)
	switch {
	case err == nil:
		department = existing.Department
	case !errors.Is(err, employee.ErrEmployeeNotFound):
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Insert(ctx, employee.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: department,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

// DeleteEmployee implements employee.EmployeeService.
//
// The cascade is two independent store operations. A crash between them
// leaves orphaned attendance rows, which are unreachable through the
// deleted business key and tolerated.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, employeeID string) error {
	if _, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID); err != nil {
		return err
	}

	deleted, err := s.attendanceRepo.DeleteByEmployeeID(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance records for employee %q: %w", employeeID, err)
	}
	if deleted > 0 {
		slog.Info("Deleted attendance records for employee", "employee_id", employeeID, "count", deleted)
	}

	return s.employeeRepo.DeleteByEmployeeID(ctx, employeeID)
}
