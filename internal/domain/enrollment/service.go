package enrollment

import "context"

type EnrollmentService interface {
	GetEnrollment(ctx context.Context) (EnrollmentResponse, error)
	SetCoverage(ctx context.Context, req CoverageRequest) error
	AddFamilyMember(ctx context.Context, req AddFamilyMemberRequest) (DependentResponse, error)
	RemoveFamilyMember(ctx context.Context, id string) error
	AddParent(ctx context.Context, req AddParentRequest) (DependentResponse, error)
	RemoveParent(ctx context.Context, id string) error
	GetPremium(ctx context.Context) (PremiumBreakdownResponse, error)
	Submit(ctx context.Context) (SubmitResponse, error)
}
