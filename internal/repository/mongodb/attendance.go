package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const attendanceCollection = "attendance"

type attendanceDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID string             `bson:"employee_id"`
	Date       string             `bson:"date"`
	Status     string             `bson:"status"`
}

func (d attendanceDocument) toDomain() attendance.Attendance {
	return attendance.Attendance{
		ID:         d.ID.Hex(),
		EmployeeID: d.EmployeeID,
		Date:       d.Date,
		Status:     attendance.Status(d.Status),
	}
}

type attendanceRepositoryImpl struct {
	col *mongo.Collection
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{col: db.Collection(attendanceCollection)}
}

// Insert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Insert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	doc := attendanceDocument{
		EmployeeID: record.EmployeeID,
		Date:       record.Date,
		Status:     string(record.Status),
	}

	result, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return attendance.Attendance{}, attendance.ErrDuplicateRecord
		}
		return attendance.Attendance{}, fmt.Errorf("failed to insert attendance record: %w", err)
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (attendance.Attendance, error) {
	var doc attendanceDocument
	err := r.col.FindOne(ctx, bson.M{"employee_id": employeeID, "date": date}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to find attendance record: %w", err)
	}
	return doc.toDomain(), nil
}

// UpdateStatus implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) UpdateStatus(ctx context.Context, id string, status attendance.Status) (attendance.Attendance, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("invalid attendance record id %q: %w", id, err)
	}

	var doc attendanceDocument
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": string(status)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance record: %w", err)
	}
	return doc.toDomain(), nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.Attendance, error) {
	query := bson.M{}
	if filter.EmployeeID != "" {
		query["employee_id"] = filter.EmployeeID
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return r.find(ctx, query, opts)
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	return r.find(ctx, bson.M{"employee_id": employeeID}, nil)
}

// ListByEmployeeBetween implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeBetween(ctx context.Context, employeeID, startDate, endDate string) ([]attendance.Attendance, error) {
	query := bson.M{
		"employee_id": employeeID,
		"date":        bson.M{"$gte": startDate, "$lt": endDate},
	}
	return r.find(ctx, query, nil)
}

func (r *attendanceRepositoryImpl) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]attendance.Attendance, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.col.Find(ctx, query, opts)
	} else {
		cursor, err = r.col.Find(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	var docs []attendanceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode attendance records: %w", err)
	}

	records := make([]attendance.Attendance, 0, len(docs))
	for _, doc := range docs {
		records = append(records, doc.toDomain())
	}
	return records, nil
}

// DeleteByEmployeeID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	result, err := r.col.DeleteMany(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance records for %q: %w", employeeID, err)
	}
	return result.DeletedCount, nil
}
