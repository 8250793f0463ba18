package postgresql

import (
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibridge/enroll-backend-go/internal/domain/employee"
	"github.com/medibridge/enroll-backend-go/internal/pkg/database"
)

func newMockDB(t *testing.T) (pgxmock.PgxPoolIface, *database.DB) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, &database.DB{Pool: mock}
}

func employeeRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "emp_id", "name", "email", "dob", "gender", "mobile", "joining_date",
		"policy_start", "policy_end", "department", "designation", "salary", "enrolled",
		"enrollment_status", "enrollment_date", "enrollment_due_date", "role",
		"password_hash", "batch_id", "created_at", "updated_at",
	})
}

func TestEmployeeRepositoryGetByCredentials(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewEmployeeRepository(db)

	now := time.Now()
	dob := time.Date(1990, 3, 12, 0, 0, 0, 0, time.UTC)
	joining := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	policyStart := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	policyEnd := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM employees WHERE LOWER\(email\) = LOWER\(\$1\) AND LOWER\(emp_id\) = LOWER\(\$2\)`).
		WithArgs("jane@acme.test", "EMP001").
		WillReturnRows(employeeRows().AddRow(
			"b2c3d4e5-0000-0000-0000-000000000001", "EMP001", "Jane Doe", "jane@acme.test",
			dob, employee.Female, "9876543210", joining,
			policyStart, policyEnd, nil, nil, nil, false,
			employee.EnrollmentStatusPending, nil, nil, employee.RoleEmployee,
			nil, nil, now, now,
		))

	emp, err := repo.GetByCredentials(t.Context(), "jane@acme.test", "EMP001")
	require.NoError(t, err)
	assert.Equal(t, "EMP001", emp.EmpID)
	assert.Equal(t, employee.Female, emp.Gender)
	assert.False(t, emp.Enrolled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepositoryGetByCredentialsNotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM employees WHERE LOWER\(email\) = LOWER\(\$1\) AND LOWER\(emp_id\) = LOWER\(\$2\)`).
		WithArgs("jane@acme.test", "WRONG").
		WillReturnRows(employeeRows())

	_, err := repo.GetByCredentials(t.Context(), "jane@acme.test", "WRONG")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepositoryExistsByEmpIDOrEmail(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("EMP001", "jane@acme.test").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmpIDOrEmail(t.Context(), "EMP001", "jane@acme.test")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepositoryMarkEnrolled(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery(`UPDATE employees`).
		WithArgs(employee.EnrollmentStatusSubmitted, "b2c3d4e5-0000-0000-0000-000000000001").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("b2c3d4e5-0000-0000-0000-000000000001"))

	err := repo.MarkEnrolled(t.Context(), "b2c3d4e5-0000-0000-0000-000000000001", employee.EnrollmentStatusSubmitted)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepositoryUpdateNoFields(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewEmployeeRepository(db)

	// No columns to write means no query at all.
	err := repo.Update(t.Context(), "b2c3d4e5-0000-0000-0000-000000000001", employee.UpdateEmployeeRequest{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepositoryDeleteNotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery(`DELETE FROM employees WHERE id = \$1 RETURNING id`).
		WithArgs("missing-id").
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	err := repo.Delete(t.Context(), "missing-id")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
