package enrollment

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibridge/enroll-backend-go/internal/domain/employee"
	"github.com/medibridge/enroll-backend-go/internal/domain/enrollment"
	"github.com/medibridge/enroll-backend-go/internal/pkg/database"
	"github.com/medibridge/enroll-backend-go/internal/pkg/email"
)

type stubEmployeeRepo struct {
	emp employee.Employee
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return s.emp, nil
}
func (s *stubEmployeeRepo) GetByEmpID(ctx context.Context, empID string) (employee.Employee, error) {
	return s.emp, nil
}
func (s *stubEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return s.emp, nil
}
func (s *stubEmployeeRepo) GetByCredentials(ctx context.Context, email string, empID string) (employee.Employee, error) {
	return s.emp, nil
}
func (s *stubEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return newEmployee, nil
}
func (s *stubEmployeeRepo) ExistsByEmpIDOrEmail(ctx context.Context, empID, email string) (bool, error) {
	return false, nil
}
func (s *stubEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	return nil
}
func (s *stubEmployeeRepo) MarkEnrolled(ctx context.Context, id string, status employee.EnrollmentStatus) error {
	return nil
}
func (s *stubEmployeeRepo) List(ctx context.Context, batchID *string) ([]employee.Employee, error) {
	return nil, nil
}
func (s *stubEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

type stubFamilyMemberRepo struct {
	members []enrollment.FamilyMember
}

func (s *stubFamilyMemberRepo) Create(ctx context.Context, member enrollment.FamilyMember) (enrollment.FamilyMember, error) {
	return member, nil
}
func (s *stubFamilyMemberRepo) GetByEmployeeID(ctx context.Context, employeeID string) ([]enrollment.FamilyMember, error) {
	return s.members, nil
}
func (s *stubFamilyMemberRepo) Delete(ctx context.Context, employeeID string, id string) error {
	return nil
}

type stubParentRepo struct {
	parents []enrollment.Parent
}

func (s *stubParentRepo) Create(ctx context.Context, parent enrollment.Parent) (enrollment.Parent, error) {
	return parent, nil
}
func (s *stubParentRepo) GetByEmployeeID(ctx context.Context, employeeID string) ([]enrollment.Parent, error) {
	return s.parents, nil
}
func (s *stubParentRepo) Delete(ctx context.Context, employeeID string, id string) error {
	return nil
}
func (s *stubParentRepo) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	return nil
}

type stubEnrollmentRepo struct {
	coverage      enrollment.ParentalCoverage
	createdRecord *enrollment.Enrollment
}

func (s *stubEnrollmentRepo) Create(ctx context.Context, record enrollment.Enrollment) (enrollment.Enrollment, error) {
	record.ID = "enrollment-1"
	s.createdRecord = &record
	return record, nil
}
func (s *stubEnrollmentRepo) GetByEmployeeID(ctx context.Context, employeeID string) (enrollment.Enrollment, error) {
	return enrollment.Enrollment{}, enrollment.ErrEnrollmentNotFound
}
func (s *stubEnrollmentRepo) GetCoverage(ctx context.Context, employeeID string) (enrollment.ParentalCoverage, error) {
	return s.coverage, nil
}
func (s *stubEnrollmentRepo) SaveCoverage(ctx context.Context, employeeID string, coverage enrollment.ParentalCoverage) error {
	s.coverage = coverage
	return nil
}

type stubEmailService struct{}

func (s *stubEmailService) SendEnrollmentConfirmation(to string, data email.ConfirmationData) error {
	return nil
}

func authedContext(t *testing.T, employeeID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"employee_id": employeeID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func submitFixtureEmployee() employee.Employee {
	return employee.Employee{
		ID:          "emp-1",
		EmpID:       "EMP001",
		Name:        "Asha Nair",
		Email:       "asha.nair@example.com",
		JoiningDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		PolicyStart: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		PolicyEnd:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func newSubmitService(db *database.DB, enrollmentRepo *stubEnrollmentRepo, parents []enrollment.Parent) enrollment.EnrollmentService {
	return NewEnrollmentService(
		db,
		&stubEmployeeRepo{emp: submitFixtureEmployee()},
		&stubFamilyMemberRepo{},
		&stubParentRepo{parents: parents},
		enrollmentRepo,
		&stubEmailService{},
		"http://localhost:3000",
	)
}

func TestSubmitCoverageSelectedWithoutParentSetOrParents(t *testing.T) {
	enrollmentRepo := &stubEnrollmentRepo{
		coverage: enrollment.ParentalCoverage{Selected: true, ParentSet: nil},
	}
	svc := newSubmitService(nil, enrollmentRepo, nil)

	_, err := svc.Submit(authedContext(t, "emp-1"))
	require.Error(t, err)

	var compErr *enrollment.CompositionError
	require.ErrorAs(t, err, &compErr)
	assert.Contains(t, compErr.Violations, "Please select which parents to cover (Parents or Parents-in-law)")
	assert.Contains(t, compErr.Violations, "Please add at least one parent for parental coverage")
	assert.Nil(t, enrollmentRepo.createdRecord)
}

func TestSubmitCoverageSelectedWithSetButZeroParents(t *testing.T) {
	set := enrollment.ParentSetParents
	enrollmentRepo := &stubEnrollmentRepo{
		coverage: enrollment.ParentalCoverage{Selected: true, ParentSet: &set},
	}
	svc := newSubmitService(nil, enrollmentRepo, nil)

	_, err := svc.Submit(authedContext(t, "emp-1"))
	require.Error(t, err)

	var compErr *enrollment.CompositionError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, []string{"Please add at least one parent for parental coverage"}, compErr.Violations)
	assert.Nil(t, enrollmentRepo.createdRecord)
}

func TestSubmitCoverageSelectedWithParent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	set := enrollment.ParentSetParents
	enrollmentRepo := &stubEnrollmentRepo{
		coverage: enrollment.ParentalCoverage{Selected: true, ParentSet: &set},
	}
	parents := []enrollment.Parent{{
		ID:         "parent-1",
		EmployeeID: "emp-1",
		Name:       "Raman Nair",
		Relation:   enrollment.RelationshipFather,
		DOB:        time.Date(1962, 1, 10, 0, 0, 0, 0, time.UTC),
		Gender:     employee.Male,
	}}
	svc := newSubmitService(&database.DB{Pool: mock}, enrollmentRepo, parents)

	resp, err := svc.Submit(authedContext(t, "emp-1"))
	require.NoError(t, err)

	assert.Equal(t, "enrollment-1", resp.EnrollmentID)
	require.NotNil(t, enrollmentRepo.createdRecord)
	assert.True(t, enrollmentRepo.createdRecord.ParentalCoverageSelected)
	assert.Equal(t, enrollment.StatusPending, enrollmentRepo.createdRecord.Status)
	assert.Equal(t, int64(33942), enrollmentRepo.createdRecord.TotalPremium.IntPart())
}
