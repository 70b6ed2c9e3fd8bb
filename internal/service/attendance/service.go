package attendance

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// RecordAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecordAttendance(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	status := attendance.Status(req.Status)

	// The employee reference is validated at write time only; there is
	// no persistent foreign key.
	if _, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
	switch {
	case err == nil:
		updated, err := s.attendanceRepo.UpdateStatus(ctx, existing.ID, status)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.ToResponse(updated), nil
	case !errors.Is(err, attendance.ErrAttendanceNotFound):
		return attendance.AttendanceResponse{}, err
	}

	created, err := s.attendanceRepo.Insert(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     status,
	})
	if errors.Is(err, attendance.ErrDuplicateRecord) {
		// Lost the race with a concurrent insert for the same pair.
		// Fall back to updating the record that won.
		winner, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		updated, err := s.attendanceRepo.UpdateStatus(ctx, winner.ID, status)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.ToResponse(updated), nil
	}
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}
	return responses, nil
}
