package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/medibridge/enroll-backend-go/internal/domain/employee"
	"github.com/medibridge/enroll-backend-go/internal/pkg/database"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
	}
}

// Helper function to extract claims from context
func getClaimsFromContext(ctx context.Context) (employeeID, role string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim missing")
	}
	role, _ = claims["role"].(string)
	return employeeID, role, nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:               emp.ID,
		EmpID:            emp.EmpID,
		Name:             emp.Name,
		Email:            emp.Email,
		DOB:              emp.DOB.Format("2006-01-02"),
		Gender:           string(emp.Gender),
		Mobile:           emp.Mobile,
		JoiningDate:      emp.JoiningDate.Format("2006-01-02"),
		PolicyStart:      emp.PolicyStart.Format("2006-01-02"),
		PolicyEnd:        emp.PolicyEnd.Format("2006-01-02"),
		Department:       emp.Department,
		Designation:      emp.Designation,
		Enrolled:         emp.Enrolled,
		EnrollmentStatus: string(emp.EnrollmentStatus),
		Role:             string(emp.Role),
		BatchID:          emp.BatchID,
		CreatedAt:        emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:        emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if emp.Salary != nil {
		salary := emp.Salary.InexactFloat64()
		resp.Salary = &salary
	}
	if emp.EnrollmentDate != nil {
		formatted := emp.EnrollmentDate.Format("2006-01-02")
		resp.EnrollmentDate = &formatted
	}
	if emp.EnrollmentDueDate != nil {
		formatted := emp.EnrollmentDueDate.Format("2006-01-02")
		resp.EnrollmentDueDate = &formatted
	}
	return resp
}

// GetCurrentEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetCurrentEmployee(ctx context.Context) (employee.EmployeeResponse, error) {
	employeeID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// GetEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (e *EmployeeServiceImpl) ListEmployees(ctx context.Context, batchID *string) ([]employee.EmployeeResponse, error) {
	employees, err := e.EmployeeRepository.List(ctx, batchID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// CreateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := e.EmployeeRepository.ExistsByEmpIDOrEmail(ctx, req.EmpID, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee existence: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmpIDExists
	}

	newEmployee, err := employeeFromCreateRequest(req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := e.EmployeeRepository.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return mapEmployeeToResponse(created), nil
}

func employeeFromCreateRequest(req employee.CreateEmployeeRequest) (employee.Employee, error) {
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

// UpdateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return e.EmployeeRepository.Update(ctx, id, req)
}

// DeleteEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	requestingID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	if requestingID == id {
		return employee.ErrCannotDeleteSelf
	}
	return e.EmployeeRepository.Delete(ctx, id)
}
