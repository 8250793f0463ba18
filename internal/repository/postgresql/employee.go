package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/medibridge/enroll-backend-go/internal/domain/employee"
	"github.com/medibridge/enroll-backend-go/internal/pkg/database"
)

const employeeColumns = `id, emp_id, name, email, dob, gender, mobile, joining_date,
		policy_start, policy_end, department, designation, salary, enrolled,
		enrollment_status, enrollment_date, enrollment_due_date, role,
		password_hash, batch_id, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmpID, &emp.Name, &emp.Email, &emp.DOB, &emp.Gender,
		&emp.Mobile, &emp.JoiningDate, &emp.PolicyStart, &emp.PolicyEnd,
		&emp.Department, &emp.Designation, &emp.Salary, &emp.Enrolled,
		&emp.EnrollmentStatus, &emp.EnrollmentDate, &emp.EnrollmentDueDate,
		&emp.Role, &emp.PasswordHash, &emp.BatchID, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE id = $1`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetByEmpID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmpID(ctx context.Context, empID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE LOWER(emp_id) = LOWER($1)`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, empID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE LOWER(email) = LOWER($1)`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetByCredentials implements employee.EmployeeRepository. The email and
// employee ID pair is the whole employee credential, matched case-insensitively.
func (e *employeeRepositoryImpl) GetByCredentials(ctx context.Context, email string, empID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE LOWER(email) = LOWER($1) AND LOWER(emp_id) = LOWER($2)`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, email, empID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`
		INSERT INTO employees (
			emp_id, name, email, dob, gender, mobile, joining_date,
			policy_start, policy_end, department, designation, salary,
			enrollment_status, enrollment_due_date, role, password_hash, batch_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17
		)
		RETURNING %s`, employeeColumns)

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.EmpID, newEmployee.Name, newEmployee.Email, newEmployee.DOB,
		newEmployee.Gender, newEmployee.Mobile, newEmployee.JoiningDate,
		newEmployee.PolicyStart, newEmployee.PolicyEnd, newEmployee.Department,
		newEmployee.Designation, newEmployee.Salary, newEmployee.EnrollmentStatus,
		newEmployee.EnrollmentDueDate, newEmployee.Role, newEmployee.PasswordHash,
		newEmployee.BatchID,
	))
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// ExistsByEmpIDOrEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmpIDOrEmail(ctx context.Context, empID, email string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM employees
			WHERE LOWER(emp_id) = LOWER($1) OR LOWER(email) = LOWER($2)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, empID, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Update implements employee.EmployeeRepository. Only the fields present in
// the request are written.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, e.db)

	setClauses := []string{}
	args := []interface{}{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.DOB != nil {
		addSet("dob", *req.DOB)
	}
	if req.Gender != nil {
		addSet("gender", *req.Gender)
	}
	if req.Mobile != nil {
		addSet("mobile", *req.Mobile)
	}
	if req.JoiningDate != nil {
		addSet("joining_date", *req.JoiningDate)
	}
	if req.PolicyStart != nil {
		addSet("policy_start", *req.PolicyStart)
	}
	if req.PolicyEnd != nil {
		addSet("policy_end", *req.PolicyEnd)
	}
	if req.Department != nil {
		addSet("department", *req.Department)
	}
	if req.Designation != nil {
		addSet("designation", *req.Designation)
	}
	if req.Salary != nil {
		addSet("salary", *req.Salary)
	}
	if req.EnrollmentDueDate != nil {
		addSet("enrollment_due_date", *req.EnrollmentDueDate)
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf(`UPDATE employees SET %s WHERE id = $%d RETURNING id`,
		strings.Join(setClauses, ", "), argPos)
	args = append(args, id)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee with id %s: %w", id, err)
	}
	return nil
}

// MarkEnrolled implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) MarkEnrolled(ctx context.Context, id string, status employee.EnrollmentStatus) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET enrolled = TRUE, enrollment_status = $1, enrollment_date = NOW(), updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to mark employee %s enrolled: %w", id, err)
	}
	return nil
}

// List implements employee.EmployeeRepository. A non-nil batchID narrows the
// list to employees created by that upload batch.
func (e *employeeRepositoryImpl) List(ctx context.Context, batchID *string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`SELECT %s FROM employees`, employeeColumns)
	args := []interface{}{}
	if batchID != nil {
		query += ` WHERE batch_id = $1`
		args = append(args, *batchID)
	}
	query += ` ORDER BY created_at DESC, emp_id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `DELETE FROM employees WHERE id = $1 RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee with id %s: %w", id, err)
	}
	return nil
}
