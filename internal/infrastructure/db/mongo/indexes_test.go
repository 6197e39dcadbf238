package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func findIndex(t *testing.T, models []mongo.IndexModel, keys ...string) mongo.IndexModel {
	t.Helper()
	for _, m := range models {
		d, ok := m.Keys.(bson.D)
		if !ok {
			t.Fatalf("index keys are %T, want bson.D", m.Keys)
		}
		if len(d) != len(keys) {
			continue
		}
		match := true
		for i, key := range keys {
			if d[i].Key != key || d[i].Value != 1 {
				match = false
				break
			}
		}
		if match {
			return m
		}
	}
	t.Fatalf("no index on %v", keys)
	return mongo.IndexModel{}
}

func isUnique(m mongo.IndexModel) bool {
	return m.Options != nil && m.Options.Unique != nil && *m.Options.Unique
}

func TestUserIndexModels_UniqueUsername(t *testing.T) {
	idx := findIndex(t, userIndexModels(), "username")
	if !isUnique(idx) {
		t.Fatalf("username index is not unique; duplicate registrations would succeed")
	}
}

func TestEmployeeIndexModels_UniqueEmployeeNumber(t *testing.T) {
	models := employeeIndexModels()

	idx := findIndex(t, models, "employee_number")
	if !isUnique(idx) {
		t.Fatalf("employee_number index is not unique; duplicate employees would succeed")
	}

	// Supporting index for the summary grouping must not constrain anything.
	if byDept := findIndex(t, models, "department_code"); isUnique(byDept) {
		t.Fatalf("department_code index on employees must not be unique")
	}
}

func TestDepartmentIndexModels_UniqueCode(t *testing.T) {
	idx := findIndex(t, departmentIndexModels(), "department_code")
	if !isUnique(idx) {
		t.Fatalf("department_code index is not unique; duplicate departments would succeed")
	}
}

func TestSalaryIndexModels_UniqueCompositeKey(t *testing.T) {
	models := salaryIndexModels()

	idx := findIndex(t, models, "employee_number", "month")
	if !isUnique(idx) {
		t.Fatalf("(employee_number, month) index is not unique; duplicate salary rows would succeed")
	}

	if byMonth := findIndex(t, models, "month"); isUnique(byMonth) {
		t.Fatalf("month index on salaries must not be unique")
	}
}
