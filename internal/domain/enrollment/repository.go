package enrollment

import "context"

type FamilyMemberRepository interface {
	Create(ctx context.Context, member FamilyMember) (FamilyMember, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]FamilyMember, error)
	Delete(ctx context.Context, employeeID string, id string) error
}

type ParentRepository interface {
	Create(ctx context.Context, parent Parent) (Parent, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Parent, error)
	Delete(ctx context.Context, employeeID string, id string) error
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}

type EnrollmentRepository interface {
	Create(ctx context.Context, record Enrollment) (Enrollment, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Enrollment, error)
	GetCoverage(ctx context.Context, employeeID string) (ParentalCoverage, error)
	SaveCoverage(ctx context.Context, employeeID string, coverage ParentalCoverage) error
}
