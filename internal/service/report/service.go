package report

import (
	"context"
	"math"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/report"
)

// Clock provides the current time for month/year defaults.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	clock          Clock
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	clock Clock,
) report.ReportService {
	if clock == nil {
		clock = realClock{}
	}
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		clock:          clock,
	}
}

// AttendanceSummary implements report.ReportService.
//
// Present and Absent are counted in separate accumulators rather than
// deriving one from the other.
func (s *ReportServiceImpl) AttendanceSummary(ctx context.Context) ([]report.EmployeeStats, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]report.EmployeeStats, 0, len(employees))
	for _, emp := range employees {
		records, err := s.attendanceRepo.ListByEmployee(ctx, emp.EmployeeID)
		if err != nil {
			return nil, err
		}

		var totalPresent, totalAbsent int
		for _, rec := range records {
			switch rec.Status {
			case attendance.StatusPresent:
				totalPresent++
			case attendance.StatusAbsent:
				totalAbsent++
			}
		}

		stats = append(stats, report.EmployeeStats{
			EmployeeID:   emp.EmployeeID,
			FullName:     emp.FullName,
			TotalPresent: totalPresent,
			TotalAbsent:  totalAbsent,
			TotalDays:    len(records),
		})
	}
	return stats, nil
}

// MonthlyStats implements report.ReportService.
func (s *ReportServiceImpl) MonthlyStats(ctx context.Context, employeeID string, filter report.MonthlyStatsFilter) (report.MonthlyAttendanceStats, error) {
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return report.MonthlyAttendanceStats{}, err
	}

	now := s.clock.Now()
	month := int(now.Month())
	if filter.Month != nil {
		month = *filter.Month
	}
	year := now.Year()
	if filter.Year != nil {
		year = *filter.Year
	}

	// Half-open range [first of month, first of next month). AddDate
	// rolls December into January of the next year.
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	records, err := s.attendanceRepo.ListByEmployeeBetween(
		ctx,
		employeeID,
		start.Format(attendance.DateLayout),
		end.Format(attendance.DateLayout),
	)
	if err != nil {
		return report.MonthlyAttendanceStats{}, err
	}

	totalDays := len(records)
	var presentDays int
	for _, rec := range records {
		if rec.Status == attendance.StatusPresent {
			presentDays++
		}
	}
	absentDays := totalDays - presentDays

	attendanceRate := 0.0
	if totalDays > 0 {
		attendanceRate = math.Round(float64(presentDays)/float64(totalDays)*100*10) / 10
	}

	return report.MonthlyAttendanceStats{
		EmployeeID:     emp.EmployeeID,
		FullName:       emp.FullName,
		Department:     emp.Department,
		Month:          month,
		Year:           year,
		TotalDays:      totalDays,
		PresentDays:    presentDays,
		AbsentDays:     absentDays,
		AttendanceRate: attendanceRate,
	}, nil
}
