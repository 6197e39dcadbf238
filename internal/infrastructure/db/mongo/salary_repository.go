package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/epms/payroll-system/internal/core/domain"
)

const salariesCollection = "salaries"

// MongoSalaryRepository persists monthly salary records. The
// (employee_number, month) pair carries a unique compound index.
type MongoSalaryRepository struct {
	coll *mongo.Collection
}

func NewSalaryRepository(db *mongo.Database) *MongoSalaryRepository {
	return &MongoSalaryRepository{coll: db.Collection(salariesCollection)}
}

func salaryIndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "employee_number", Value: 1},
				{Key: "month", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		// The monthly summary matches on month alone.
		{Keys: bson.D{{Key: "month", Value: 1}}},
	}
}

// EnsureIndexes creates the unique (employee_number, month) compound index.
// Create's duplicate-key mapping only holds once this has run against the
// collection.
func (r *MongoSalaryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, salaryIndexModels())
	return err
}

func (r *MongoSalaryRepository) List(ctx context.Context) ([]domain.Salary, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "month", Value: -1},
		{Key: "employee_number", Value: 1},
	})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list salaries: %w", err)
	}
	defer cur.Close(ctx)

	salaries := make([]domain.Salary, 0)
	if err := cur.All(ctx, &salaries); err != nil {
		return nil, fmt.Errorf("decode salaries: %w", err)
	}
	return salaries, nil
}

func (r *MongoSalaryRepository) Create(ctx context.Context, salary *domain.Salary) error {
	if _, err := r.coll.InsertOne(ctx, salary); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrSalaryExists
		}
		return fmt.Errorf("insert salary: %w", err)
	}
	return nil
}

func (r *MongoSalaryRepository) Update(ctx context.Context, employeeNumber, month string, salary *domain.Salary) error {
	salary.EmployeeNumber = employeeNumber
	salary.Month = month
	res, err := r.coll.ReplaceOne(ctx,
		bson.M{"employee_number": employeeNumber, "month": month},
		salary,
	)
	if err != nil {
		return fmt.Errorf("update salary: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSalaryNotFound
	}
	return nil
}

func (r *MongoSalaryRepository) Delete(ctx context.Context, employeeNumber, month string) error {
	res, err := r.coll.DeleteOne(ctx,
		bson.M{"employee_number": employeeNumber, "month": month},
	)
	if err != nil {
		return fmt.Errorf("delete salary: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSalaryNotFound
	}
	return nil
}
