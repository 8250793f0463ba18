package batch

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/medibridge/enroll-backend-go/internal/domain/batch"
	"github.com/medibridge/enroll-backend-go/internal/domain/employee"
	"github.com/medibridge/enroll-backend-go/internal/pkg/database"
)

type BatchServiceImpl struct {
	db *database.DB
	batch.BatchRepository
	employee.EmployeeRepository
}

func NewBatchService(db *database.DB, batchRepository batch.BatchRepository, employeeRepository employee.EmployeeRepository) batch.BatchService {
	return &BatchServiceImpl{
		db:                 db,
		BatchRepository:    batchRepository,
		EmployeeRepository: employeeRepository,
	}
}

func uploaderFromContext(ctx context.Context) *string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil
	}
	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		return &employeeID
	}
	return nil
}

// CreateBatch implements batch.BatchService.
func (b *BatchServiceImpl) CreateBatch(ctx context.Context, req batch.CreateBatchRequest) (batch.UploadBatch, error) {
	if err := req.Validate(); err != nil {
		return batch.UploadBatch{}, err
	}

	newBatch := batch.UploadBatch{
		BatchName:   req.BatchName,
		Description: req.Description,
		UploadedBy:  uploaderFromContext(ctx),
	}
	return b.BatchRepository.Create(ctx, newBatch)
}

// ListBatches implements batch.BatchService.
func (b *BatchServiceImpl) ListBatches(ctx context.Context) ([]batch.BatchResponse, error) {
	batches, err := b.BatchRepository.ListWithCounts(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]batch.BatchResponse, 0, len(batches))
	for _, bc := range batches {
		resp := batch.BatchResponse{
			ID:            bc.ID,
			BatchName:     bc.BatchName,
			Description:   bc.Description,
			UploadedAt:    bc.UploadedAt.Format("2006-01-02 15:04:05"),
			EmployeeCount: bc.EmployeeCount,
		}
		if bc.UploaderName != nil {
			resp.UploadedBy = *bc.UploaderName
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// ImportRoster implements batch.BatchService. The batch is created first, then
// rows import independently: a bad row is reported and skipped, it never
// aborts the rows that already validated.
func (b *BatchServiceImpl) ImportRoster(ctx context.Context, req batch.CreateBatchRequest, csvData []byte) (batch.ImportResult, error) {
	if err := req.Validate(); err != nil {
		return batch.ImportResult{}, err
	}

	rows, err := ParseRoster(csvData)
	if err != nil {
		return batch.ImportResult{}, err
	}

	created, err := b.CreateBatch(ctx, req)
	if err != nil {
		return batch.ImportResult{}, err
	}

	result := batch.ImportResult{
		BatchID:   created.ID,
		TotalRows: len(rows),
	}

	seenEmpIDs := map[string]bool{}
	seenEmails := map[string]bool{}
	for _, row := range rows {
		createReq, convErr := rowToCreateRequest(row)
		if convErr != nil {
			result.FailedCount++
			result.RowErrors = append(result.RowErrors, batch.RowError{
				Row: row.Row, EmpID: row.EmpID, Errors: convErr.Error(),
			})
			continue
		}
		if err := createReq.Validate(); err != nil {
			result.FailedCount++
			result.RowErrors = append(result.RowErrors, batch.RowError{
				Row: row.Row, EmpID: row.EmpID, Errors: err.Error(),
			})
			continue
		}

		empIDKey := strings.ToLower(createReq.EmpID)
		emailKey := strings.ToLower(createReq.Email)
		if seenEmpIDs[empIDKey] || seenEmails[emailKey] {
			result.FailedCount++
			result.RowErrors = append(result.RowErrors, batch.RowError{
				Row: row.Row, EmpID: row.EmpID, Errors: "duplicate emp_id or email within the file",
			})
			continue
		}

		exists, err := b.EmployeeRepository.ExistsByEmpIDOrEmail(ctx, createReq.EmpID, createReq.Email)
		if err != nil {
			return batch.ImportResult{}, fmt.Errorf("failed to check employee existence: %w", err)
		}
		if exists {
			result.FailedCount++
			result.RowErrors = append(result.RowErrors, batch.RowError{
				Row: row.Row, EmpID: row.EmpID, Errors: "emp_id or email already registered",
			})
			continue
		}

		newEmployee, err := employeeFromRequest(createReq, created.ID)
		if err != nil {
			result.FailedCount++
			result.RowErrors = append(result.RowErrors, batch.RowError{
				Row: row.Row, EmpID: row.EmpID, Errors: err.Error(),
			})
			continue
		}
		if _, err := b.EmployeeRepository.Create(ctx, newEmployee); err != nil {
			result.FailedCount++
			result.RowErrors = append(result.RowErrors, batch.RowError{
				Row: row.Row, EmpID: row.EmpID, Errors: fmt.Sprintf("failed to insert: %v", err),
			})
			continue
		}

		seenEmpIDs[empIDKey] = true
		seenEmails[emailKey] = true
		result.ImportedCount++
	}

	return result, nil
}

func employeeFromRequest(req employee.CreateEmployeeRequest, batchID string) (employee.Employee, error) {
	parse := func(value string) (time.Time, error) {
		return time.Parse("2006-01-02", value)
	}

	dob, err := parse(req.DOB)
	if err != nil {
		return employee.Employee{}, err
	}
	joining, err := parse(req.JoiningDate)
	if err != nil {
		return employee.Employee{}, err
	}
	policyStart, err := parse(req.PolicyStart)
	if err != nil {
		return employee.Employee{}, err
	}
	policyEnd, err := parse(req.PolicyEnd)
	if err != nil {
		return employee.Employee{}, err
	}

	newEmployee := employee.Employee{
		EmpID:            req.EmpID,
		Name:             req.Name,
		Email:            req.Email,
		DOB:              dob,
		Gender:           employee.Gender(req.Gender),
		Mobile:           req.Mobile,
		JoiningDate:      joining,
		PolicyStart:      policyStart,
		PolicyEnd:        policyEnd,
		Department:       req.Department,
		Designation:      req.Designation,
		EnrollmentStatus: employee.EnrollmentStatusPending,
		Role:             employee.RoleEmployee,
		BatchID:          &batchID,
	}
	if req.Salary != nil {
		salary := decimal.NewFromFloat(*req.Salary)
		newEmployee.Salary = &salary
	}
	if req.EnrollmentDueDate != nil {
		due, err := parse(*req.EnrollmentDueDate)
		if err != nil {
			return employee.Employee{}, err
		}
		newEmployee.EnrollmentDueDate = &due
	}
	return newEmployee, nil
}

func rowToCreateRequest(row RosterRow) (employee.CreateEmployeeRequest, error) {
	req := employee.CreateEmployeeRequest{
		EmpID:  row.EmpID,
		Name:   row.Name,
		Email:  row.Email,
		Gender: row.Gender,
		Mobile: row.Mobile,
	}

	dates := []struct {
		name   string
		value  string
		target *string
	}{
		{"date_of_birth", row.DOB, &req.DOB},
		{"joining_date", row.JoiningDate, &req.JoiningDate},
		{"policy_start", row.PolicyStart, &req.PolicyStart},
		{"policy_end", row.PolicyEnd, &req.PolicyEnd},
	}
	for _, d := range dates {
		normalized, err := NormalizeDate(d.value)
		if err != nil {
			return employee.CreateEmployeeRequest{}, fmt.Errorf("%s: %w", d.name, err)
		}
		*d.target = normalized
	}

	if row.Department != "" {
		department := row.Department
		req.Department = &department
	}
	if row.Designation != "" {
		designation := row.Designation
		req.Designation = &designation
	}
	if row.Salary != "" {
		salary, err := strconv.ParseFloat(row.Salary, 64)
		if err != nil {
			return employee.CreateEmployeeRequest{}, fmt.Errorf("salary: invalid number %q", row.Salary)
		}
		req.Salary = &salary
	}
	if row.EnrollmentDueDate != "" {
		normalized, err := NormalizeDate(row.EnrollmentDueDate)
		if err != nil {
			return employee.CreateEmployeeRequest{}, fmt.Errorf("enrollment_due_date: %w", err)
		}
		req.EnrollmentDueDate = &normalized
	}
	return req, nil
}
