package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
)

type AttendanceRepository struct {
	mu       sync.RWMutex
	records  []attendance.Attendance
	sequence int
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{}
}

// Insert implements attendance.AttendanceRepository.
func (r *AttendanceRepository) Insert(_ context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.EmployeeID == record.EmployeeID && rec.Date == record.Date {
			return attendance.Attendance{}, attendance.ErrDuplicateRecord
		}
	}

	r.sequence++
	record.ID = fmt.Sprintf("att-%d", r.sequence)
	r.records = append(r.records, record)
	return record, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *AttendanceRepository) GetByEmployeeAndDate(_ context.Context, employeeID, date string) (attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.Date == date {
			return rec, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

// UpdateStatus implements attendance.AttendanceRepository.
func (r *AttendanceRepository) UpdateStatus(_ context.Context, id string, status attendance.Status) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rec := range r.records {
		if rec.ID == id {
			r.records[i].Status = status
			return r.records[i], nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

// List implements attendance.AttendanceRepository.
func (r *AttendanceRepository) List(_ context.Context, filter attendance.ListAttendanceFilter) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]attendance.Attendance, 0, len(r.records))
	for _, rec := range r.records {
		if filter.EmployeeID != "" && rec.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Date != "" && rec.Date != filter.Date {
			continue
		}
		out = append(out, rec)
	}

	// Newest date first, matching the store sort.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *AttendanceRepository) ListByEmployee(_ context.Context, employeeID string) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]attendance.Attendance, 0)
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// ListByEmployeeBetween implements attendance.AttendanceRepository.
// The range is half-open: startDate inclusive, endDate exclusive.
func (r *AttendanceRepository) ListByEmployeeBetween(_ context.Context, employeeID, startDate, endDate string) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]attendance.Attendance, 0)
	for _, rec := range r.records {
		if rec.EmployeeID != employeeID {
			continue
		}
		if rec.Date >= startDate && rec.Date < endDate {
			out = append(out, rec)
		}
	}
	return out, nil
}

// DeleteByEmployeeID implements attendance.AttendanceRepository.
func (r *AttendanceRepository) DeleteByEmployeeID(_ context.Context, employeeID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.records[:0]
	var deleted int64
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID {
			deleted++
			continue
		}
		kept = append(kept, rec)
	}
	r.records = kept
	return deleted, nil
}
