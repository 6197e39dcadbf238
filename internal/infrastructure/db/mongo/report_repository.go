package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/epms/payroll-system/internal/core/domain"
)

// MongoReportRepository answers the aggregation queries behind the monthly
// payroll summary. It reads the salaries, employees, and departments
// collections; it owns no collection of its own.
type MongoReportRepository struct {
	db *mongo.Database
}

func NewReportRepository(db *mongo.Database) *MongoReportRepository {
	return &MongoReportRepository{db: db}
}

type totalsRow struct {
	DepartmentCode string  `bson:"_id"`
	GrossTotal     float64 `bson:"gross_total"`
	DeductionTotal float64 `bson:"deduction_total"`
	NetTotal       float64 `bson:"net_total"`
}

// SummaryByMonth joins the month's salary records to employees and groups
// the gross/deduction/net sums by department code.
func (r *MongoReportRepository) SummaryByMonth(ctx context.Context, month string) ([]domain.DepartmentTotals, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"month": month}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         employeesCollection,
			"localField":   "employee_number",
			"foreignField": "employee_number",
			"as":           "employee",
		}}},
		{{Key: "$unwind", Value: "$employee"}},
		{{Key: "$group", Value: bson.M{
			"_id":             "$employee.department_code",
			"gross_total":     bson.M{"$sum": "$gross_salary"},
			"deduction_total": bson.M{"$sum": "$total_deduction"},
			"net_total":       bson.M{"$sum": "$net_salary"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	return r.aggregate(ctx, salariesCollection, pipeline)
}

// BaselineTotals sums the department baseline figures over the current
// headcount: every employee contributes their department's gross and
// deduction, mirroring the report produced before any payroll run.
func (r *MongoReportRepository) BaselineTotals(ctx context.Context) ([]domain.DepartmentTotals, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         departmentsCollection,
			"localField":   "department_code",
			"foreignField": "department_code",
			"as":           "department",
		}}},
		{{Key: "$unwind", Value: "$department"}},
		{{Key: "$group", Value: bson.M{
			"_id":             "$department_code",
			"gross_total":     bson.M{"$sum": "$department.gross_salary"},
			"deduction_total": bson.M{"$sum": "$department.total_deduction"},
			"net_total": bson.M{"$sum": bson.M{"$subtract": bson.A{
				"$department.gross_salary",
				"$department.total_deduction",
			}}},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	return r.aggregate(ctx, employeesCollection, pipeline)
}

func (r *MongoReportRepository) aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline) ([]domain.DepartmentTotals, error) {
	cur, err := r.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	var raw []totalsRow
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode %s totals: %w", collection, err)
	}

	rows := make([]domain.DepartmentTotals, 0, len(raw))
	for _, t := range raw {
		rows = append(rows, domain.DepartmentTotals{
			DepartmentCode: t.DepartmentCode,
			GrossTotal:     t.GrossTotal,
			DeductionTotal: t.DeductionTotal,
			NetTotal:       t.NetTotal,
		})
	}
	return rows, nil
}
