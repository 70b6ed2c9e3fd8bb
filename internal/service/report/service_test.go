package report

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/hrms-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fixture struct {
	svc            report.ReportService
	employeeRepo   *memory.EmployeeRepository
	attendanceRepo *memory.AttendanceRepository
}

func newFixture(t *testing.T, clock Clock) fixture {
	t.Helper()
	employeeRepo := memory.NewEmployeeRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	return fixture{
		svc:            NewReportService(employeeRepo, attendanceRepo, clock),
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

func (f fixture) addEmployee(t *testing.T, employeeID, fullName, department string) {
	t.Helper()
	_, err := f.employeeRepo.Insert(context.Background(), employee.Employee{
		EmployeeID: employeeID,
		FullName:   fullName,
		Email:      employeeID + "@example.com",
		Department: department,
	})
	require.NoError(t, err)
}

func (f fixture) addRecord(t *testing.T, employeeID, date string, status attendance.Status) {
	t.Helper()
	_, err := f.attendanceRepo.Insert(context.Background(), attendance.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	})
	require.NoError(t, err)
}

func TestReportService_AttendanceSummary_CountsIndependently(t *testing.T) {
	f := newFixture(t, nil)
	f.addEmployee(t, "EMP001", "Jane Doe", "Engineering")

	for _, date := range []string{"2024-03-01", "2024-03-02", "2024-03-03"} {
		f.addRecord(t, "EMP001", date, attendance.StatusPresent)
	}
	for _, date := range []string{"2024-03-04", "2024-03-05"} {
		f.addRecord(t, "EMP001", date, attendance.StatusAbsent)
	}

	stats, err := f.svc.AttendanceSummary(context.Background())

	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "EMP001", stats[0].EmployeeID)
	assert.Equal(t, "Jane Doe", stats[0].FullName)
	assert.Equal(t, 3, stats[0].TotalPresent)
	assert.Equal(t, 2, stats[0].TotalAbsent)
	assert.Equal(t, 5, stats[0].TotalDays)
}

func TestReportService_AttendanceSummary_EmployeeWithoutRecords(t *testing.T) {
	f := newFixture(t, nil)
	f.addEmployee(t, "EMP001", "Jane Doe", "Engineering")

	stats, err := f.svc.AttendanceSummary(context.Background())

	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Zero(t, stats[0].TotalPresent)
	assert.Zero(t, stats[0].TotalAbsent)
	assert.Zero(t, stats[0].TotalDays)
}

func TestReportService_MonthlyStats_UnknownEmployee(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.MonthlyStats(context.Background(), "EMP404", report.MonthlyStatsFilter{})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestReportService_MonthlyStats_EmptyMonth(t *testing.T) {
	f := newFixture(t, nil)
	f.addEmployee(t, "EMP001", "Jane Doe", "Engineering")

	month, year := 2, 2024
	stats, err := f.svc.MonthlyStats(context.Background(), "EMP001", report.MonthlyStatsFilter{
		Month: &month,
		Year:  &year,
	})

	require.NoError(t, err)
	assert.Zero(t, stats.TotalDays)
	assert.Zero(t, stats.PresentDays)
	assert.Zero(t, stats.AbsentDays)
	assert.Equal(t, 0.0, stats.AttendanceRate)
}

func TestReportService_MonthlyStats_MonthBoundaries(t *testing.T) {
	f := newFixture(t, nil)
	f.addEmployee(t, "EMP001", "Jane Doe", "Engineering")

	// Leap-year February: the 29th is in range, March 1st is not.
	f.addRecord(t, "EMP001", "2024-01-31", attendance.StatusPresent)
	f.addRecord(t, "EMP001", "2024-02-01", attendance.StatusPresent)
	f.addRecord(t, "EMP001", "2024-02-29", attendance.StatusAbsent)
	f.addRecord(t, "EMP001", "2024-03-01", attendance.StatusPresent)

	month, year := 2, 2024
	stats, err := f.svc.MonthlyStats(context.Background(), "EMP001", report.MonthlyStatsFilter{
		Month: &month,
		Year:  &year,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalDays)
	assert.Equal(t, 1, stats.PresentDays)
	assert.Equal(t, 1, stats.AbsentDays)
}

func TestReportService_MonthlyStats_DecemberRollsIntoNextYear(t *testing.T) {
	f := newFixture(t, nil)
	f.addEmployee(t, "EMP001", "Jane Doe", "Engineering")

	f.addRecord(t, "EMP001", "2024-12-01", attendance.StatusPresent)
	f.addRecord(t, "EMP001", "2024-12-31", attendance.StatusPresent)
	f.addRecord(t, "EMP001", "2025-01-01", attendance.StatusPresent)

	month, year := 12, 2024
	stats, err := f.svc.MonthlyStats(context.Background(), "EMP001", report.MonthlyStatsFilter{
		Month: &month,
		Year:  &year,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalDays)
	assert.Equal(t, 12, stats.Month)
	assert.Equal(t, 2024, stats.Year)
}

func TestReportService_MonthlyStats_RateRoundedToOneDecimal(t *testing.T) {
	f := newFixture(t, nil)
	f.addEmployee(t, "EMP001", "Jane Doe", "Engineering")

	f.addRecord(t, "EMP001", "2024-03-01", attendance.StatusPresent)
	f.addRecord(t, "EMP001", "2024-03-02", attendance.StatusPresent)
	f.addRecord(t, "EMP001", "2024-03-03", attendance.StatusAbsent)

	month, year := 3, 2024
	stats, err := f.svc.MonthlyStats(context.Background(), "EMP001", report.MonthlyStatsFilter{
		Month: &month,
		Year:  &year,
	})

	require.NoError(t, err)
	assert.Equal(t, 66.7, stats.AttendanceRate)
}

func TestReportService_MonthlyStats_DefaultsToCurrentMonthAndYear(t *testing.T) {
	clock := &stubClock{now: time.Date(2024, time.July, 15, 10, 0, 0, 0, time.UTC)}
	f := newFixture(t, clock)
	f.addEmployee(t, "EMP001", "Jane Doe", "Engineering")

	f.addRecord(t, "EMP001", "2024-07-10", attendance.StatusPresent)
	f.addRecord(t, "EMP001", "2024-06-10", attendance.StatusPresent)

	stats, err := f.svc.MonthlyStats(context.Background(), "EMP001", report.MonthlyStatsFilter{})

	require.NoError(t, err)
	assert.Equal(t, 7, stats.Month)
	assert.Equal(t, 2024, stats.Year)
	assert.Equal(t, 1, stats.TotalDays)
}

func TestReportService_MonthlyStats_MonthAndYearDefaultIndependently(t *testing.T) {
	clock := &stubClock{now: time.Date(2024, time.July, 15, 10, 0, 0, 0, time.UTC)}
	f := newFixture(t, clock)
	f.addEmployee(t, "EMP001", "Jane Doe", "Engineering")

	f.addRecord(t, "EMP001", "2024-03-10", attendance.StatusPresent)

	month := 3
	stats, err := f.svc.MonthlyStats(context.Background(), "EMP001", report.MonthlyStatsFilter{Month: &month})

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Month)
	assert.Equal(t, 2024, stats.Year, "year defaults from the clock")
	assert.Equal(t, 1, stats.TotalDays)
}

func TestReportService_MonthlyStats_CarriesEmployeeFields(t *testing.T) {
	f := newFixture(t, nil)
	f.addEmployee(t, "EMP001", "Jane Doe", "Engineering")

	month, year := 3, 2024
	stats, err := f.svc.MonthlyStats(context.Background(), "EMP001", report.MonthlyStatsFilter{
		Month: &month,
		Year:  &year,
	})

	require.NoError(t, err)
	assert.Equal(t, "EMP001", stats.EmployeeID)
	assert.Equal(t, "Jane Doe", stats.FullName)
	assert.Equal(t, "Engineering", stats.Department)
}
