package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/epms/payroll-system/internal/core/domain"
)

const departmentsCollection = "departments"

// MongoDepartmentRepository persists departments. The department code
// carries a unique index.
type MongoDepartmentRepository struct {
	coll *mongo.Collection
}

func NewDepartmentRepository(db *mongo.Database) *MongoDepartmentRepository {
	return &MongoDepartmentRepository{coll: db.Collection(departmentsCollection)}
}

func departmentIndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "department_code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
}

// EnsureIndexes creates the unique department code index. Create's
// duplicate-key mapping only holds once this has run against the collection.
func (r *MongoDepartmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, departmentIndexModels())
	return err
}

func (r *MongoDepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	opts := options.Find().SetSort(bson.D{{Key: "department_code", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer cur.Close(ctx)

	departments := make([]domain.Department, 0)
	if err := cur.All(ctx, &departments); err != nil {
		return nil, fmt.Errorf("decode departments: %w", err)
	}
	return departments, nil
}

func (r *MongoDepartmentRepository) Create(ctx context.Context, department *domain.Department) error {
	if _, err := r.coll.InsertOne(ctx, department); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDepartmentExists
		}
		return fmt.Errorf("insert department: %w", err)
	}
	return nil
}

func (r *MongoDepartmentRepository) Update(ctx context.Context, departmentCode string, department *domain.Department) error {
	department.DepartmentCode = departmentCode
	res, err := r.coll.ReplaceOne(ctx, bson.M{"department_code": departmentCode}, department)
	if err != nil {
		return fmt.Errorf("update department: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

func (r *MongoDepartmentRepository) Delete(ctx context.Context, departmentCode string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"department_code": departmentCode})
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}
