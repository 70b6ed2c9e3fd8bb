package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const employeesCollection = "employees"

type employeeDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID string             `bson:"employee_id"`
	FullName   string             `bson:"full_name"`
	Email      string             `bson:"email"`
	Department string             `bson:"department"`
}

func (d employeeDocument) toDomain() employee.Employee {
	return employee.Employee{
		ID:         d.ID.Hex(),
		EmployeeID: d.EmployeeID,
		FullName:   d.FullName,
		Email:      d.Email,
		Department: d.Department,
	}
}

type employeeRepositoryImpl struct {
	col *mongo.Collection
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{col: db.Collection(employeesCollection)}
}

// Insert implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Insert(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	doc := employeeDocument{
		EmployeeID: newEmployee.EmployeeID,
		FullName:   newEmployee.FullName,
		Email:      newEmployee.Email,
		Department: newEmployee.Department,
	}

	result, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// The unique index name tells us which business key lost
			// the race with a concurrent create.
			if strings.Contains(err.Error(), "email") {
				return employee.Employee{}, employee.ErrEmailExists
			}
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	return r.findOne(ctx, bson.M{"employee_id": employeeID})
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// GetByDepartmentFold implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByDepartmentFold(ctx context.Context, department string) (employee.Employee, error) {
	filter := bson.M{"department": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(department) + "$",
		Options: "i",
	}}
	return r.findOne(ctx, filter)
}

func (r *employeeRepositoryImpl) findOne(ctx context.Context, filter bson.M) (employee.Employee, error) {
	var doc employeeDocument
	err := r.col.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to find employee: %w", err)
	}
	return doc.toDomain(), nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	var docs []employeeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}

	employees := make([]employee.Employee, 0, len(docs))
	for _, doc := range docs {
		employees = append(employees, doc.toDomain())
	}
	return employees, nil
}

// DeleteByEmployeeID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return fmt.Errorf("failed to delete employee %q: %w", employeeID, err)
	}
	if result.DeletedCount == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
