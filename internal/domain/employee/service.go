package employee

import "context"

type EmployeeService interface {
	GetCurrentEmployee(ctx context.Context) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, batchID *string) ([]EmployeeResponse, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) error
	DeleteEmployee(ctx context.Context, id string) error
}
