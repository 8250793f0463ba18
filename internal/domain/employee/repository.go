package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmpID(ctx context.Context, empID string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	GetByCredentials(ctx context.Context, email string, empID string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	ExistsByEmpIDOrEmail(ctx context.Context, empID, email string) (bool, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error
	MarkEnrolled(ctx context.Context, id string, status EnrollmentStatus) error
	List(ctx context.Context, batchID *string) ([]Employee, error)
	Delete(ctx context.Context, id string) error
}
