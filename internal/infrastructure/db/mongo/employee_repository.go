package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/epms/payroll-system/internal/core/domain"
)

const employeesCollection = "employees"

// MongoEmployeeRepository persists employee records. The employee number
// carries a unique index.
type MongoEmployeeRepository struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *MongoEmployeeRepository {
	return &MongoEmployeeRepository{coll: db.Collection(employeesCollection)}
}

func employeeIndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		// The monthly summary groups employees by department.
		{Keys: bson.D{{Key: "department_code", Value: 1}}},
	}
}

// EnsureIndexes creates the unique employee number index. Create's
// duplicate-key mapping only holds once this has run against the collection.
func (r *MongoEmployeeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, employeeIndexModels())
	return err
}

func (r *MongoEmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "employee_number", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer cur.Close(ctx)

	employees := make([]domain.Employee, 0)
	if err := cur.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}
	return employees, nil
}

func (r *MongoEmployeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	if _, err := r.coll.InsertOne(ctx, employee); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmployeeExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func (r *MongoEmployeeRepository) Update(ctx context.Context, employeeNumber string, employee *domain.Employee) error {
	employee.EmployeeNumber = employeeNumber
	res, err := r.coll.ReplaceOne(ctx, bson.M{"employee_number": employeeNumber}, employee)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *MongoEmployeeRepository) Delete(ctx context.Context, employeeNumber string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"employee_number": employeeNumber})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
