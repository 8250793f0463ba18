package enrollment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/medibridge/enroll-backend-go/internal/domain/employee"
	"github.com/medibridge/enroll-backend-go/internal/domain/enrollment"
	"github.com/medibridge/enroll-backend-go/internal/pkg/database"
	"github.com/medibridge/enroll-backend-go/internal/pkg/email"
	"github.com/medibridge/enroll-backend-go/internal/repository/postgresql"
)

type EnrollmentServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	enrollment.FamilyMemberRepository
	enrollment.ParentRepository
	enrollment.EnrollmentRepository
	email.EmailService
	portalURL string
}

func NewEnrollmentService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	familyMemberRepository enrollment.FamilyMemberRepository,
	parentRepository enrollment.ParentRepository,
	enrollmentRepository enrollment.EnrollmentRepository,
	emailService email.EmailService,
	portalURL string,
) enrollment.EnrollmentService {
	return &EnrollmentServiceImpl{
		db:                     db,
		EmployeeRepository:     employeeRepository,
		FamilyMemberRepository: familyMemberRepository,
		ParentRepository:       parentRepository,
		EnrollmentRepository:   enrollmentRepository,
		EmailService:           emailService,
		portalURL:              portalURL,
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim missing")
	}
	return employeeID, nil
}

// currentEmployee resolves the authenticated employee and guards every draft
// mutation: once submitted, the enrollment is frozen.
func (s *EnrollmentServiceImpl) currentEmployee(ctx context.Context, mutating bool) (employee.Employee, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return employee.Employee{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, err
	}

	if mutating && emp.Enrolled {
		return employee.Employee{}, enrollment.ErrAlreadySubmitted
	}
	return emp, nil
}

func mapDependent(id, name string, relation enrollment.Relationship, dob time.Time, gender employee.Gender) enrollment.DependentResponse {
	return enrollment.DependentResponse{
		ID:       id,
		Name:     name,
		Relation: string(relation),
		DOB:      dob.Format("2006-01-02"),
		Gender:   string(gender),
		Age:      enrollment.Age(dob, time.Now()),
	}
}

func breakdownToResponse(breakdown enrollment.PremiumBreakdown, policyYear string) enrollment.PremiumBreakdownResponse {
	return enrollment.PremiumBreakdownResponse{
		Description:      breakdown.Description,
		BasePremium:      breakdown.BasePremium.InexactFloat64(),
		ProRatedPremium:  breakdown.ProRatedPremium.InexactFloat64(),
		GST:              breakdown.GST.InexactFloat64(),
		Total:            breakdown.Total.InexactFloat64(),
		MonthlyDeduction: breakdown.MonthlyDeduction.InexactFloat64(),
		Factor:           breakdown.Factor.InexactFloat64(),
		RemainingDays:    breakdown.RemainingDays,
		PolicyYear:       policyYear,
	}
}

// GetEnrollment implements enrollment.EnrollmentService.
func (s *EnrollmentServiceImpl) GetEnrollment(ctx context.Context) (enrollment.EnrollmentResponse, error) {
	emp, err := s.currentEmployee(ctx, false)
	if err != nil {
		return enrollment.EnrollmentResponse{}, err
	}

	members, err := s.FamilyMemberRepository.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		return enrollment.EnrollmentResponse{}, err
	}
	parents, err := s.ParentRepository.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		return enrollment.EnrollmentResponse{}, err
	}
	coverage, err := s.EnrollmentRepository.GetCoverage(ctx, emp.ID)
	if err != nil {
		return enrollment.EnrollmentResponse{}, err
	}

	resp := enrollment.EnrollmentResponse{
		EmployeeID: emp.ID,
		Status:     string(emp.EnrollmentStatus),
		Coverage:   enrollment.CoverageResponse{Selected: coverage.Selected},
	}
	if coverage.ParentSet != nil {
		parentSet := string(*coverage.ParentSet)
		resp.Coverage.ParentSet = &parentSet
	}

	resp.FamilyMembers = make([]enrollment.DependentResponse, 0, len(members))
	for _, m := range members {
		resp.FamilyMembers = append(resp.FamilyMembers, mapDependent(m.ID, m.Name, m.Relation, m.DOB, m.Gender))
	}
	resp.Parents = make([]enrollment.DependentResponse, 0, len(parents))
	for _, p := range parents {
		resp.Parents = append(resp.Parents, mapDependent(p.ID, p.Name, p.Relation, p.DOB, p.Gender))
	}

	policyYear := PolicyYearLabel(emp.PolicyStart, emp.PolicyEnd)

	if emp.Enrolled {
		// Submitted: report the frozen snapshot, not a live recompute.
		record, err := s.EnrollmentRepository.GetByEmployeeID(ctx, emp.ID)
		if err != nil {
			return enrollment.EnrollmentResponse{}, err
		}
		premium := enrollment.PremiumBreakdownResponse{
			BasePremium:      BaseParentalPremium(len(parents)).InexactFloat64(),
			ProRatedPremium:  record.ParentalPolicyPremium.InexactFloat64(),
			GST:              record.GSTAmount.InexactFloat64(),
			Total:            record.TotalPremium.InexactFloat64(),
			MonthlyDeduction: record.TotalPremium.Div(decimal.NewFromInt(12)).Round(0).InexactFloat64(),
			Factor:           record.ProRataFactor.InexactFloat64(),
			RemainingDays:    record.PolicyRemainingDays,
			PolicyYear:       policyYear,
		}
		resp.Premium = &premium
		submittedAt := record.SubmittedAt.Format(time.RFC3339)
		resp.SubmittedAt = &submittedAt
		return resp, nil
	}

	if coverage.Selected {
		breakdown := CalculatePremiumBreakdown(len(parents), emp.JoiningDate, emp.PolicyStart, emp.PolicyEnd)
		premium := breakdownToResponse(breakdown, policyYear)
		resp.Premium = &premium
	}
	return resp, nil
}

// SetCoverage implements enrollment.EnrollmentService. Turning coverage off
// or switching to the other parent set discards the parents already added,
// since they no longer belong to the selection.
func (s *EnrollmentServiceImpl) SetCoverage(ctx context.Context, req enrollment.CoverageRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.currentEmployee(ctx, true)
	if err != nil {
		return err
	}

	existing, err := s.EnrollmentRepository.GetCoverage(ctx, emp.ID)
	if err != nil {
		return err
	}

	coverage := enrollment.ParentalCoverage{Selected: req.Selected}
	if req.ParentSet != nil {
		parentSet := enrollment.ParentSet(*req.ParentSet)
		coverage.ParentSet = &parentSet
	}

	discardParents := !coverage.Selected ||
		(existing.ParentSet != nil && coverage.ParentSet != nil && *existing.ParentSet != *coverage.ParentSet)

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if discardParents {
			if err := s.ParentRepository.DeleteByEmployeeID(txCtx, emp.ID); err != nil {
				return fmt.Errorf("failed to clear parents: %w", err)
			}
		}
		if err := s.EnrollmentRepository.SaveCoverage(txCtx, emp.ID, coverage); err != nil {
			return fmt.Errorf("failed to save coverage selection: %w", err)
		}
		return nil
	})
}

// AddFamilyMember implements enrollment.EnrollmentService. The candidate is
// checked against the existing dependents so the draft can never reach an
// invalid composition.
func (s *EnrollmentServiceImpl) AddFamilyMember(ctx context.Context, req enrollment.AddFamilyMemberRequest) (enrollment.DependentResponse, error) {
	if err := req.Validate(); err != nil {
		return enrollment.DependentResponse{}, err
	}

	emp, err := s.currentEmployee(ctx, true)
	if err != nil {
		return enrollment.DependentResponse{}, err
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return enrollment.DependentResponse{}, err
	}
	relation := enrollment.Relationship(req.Relation)

	if msg := enrollment.ValidateAgeRange(enrollment.Age(dob, time.Now()), relation); msg != "" {
		return enrollment.DependentResponse{}, &enrollment.CompositionError{Violations: []string{msg}}
	}

	existing, err := s.FamilyMemberRepository.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		return enrollment.DependentResponse{}, err
	}

	candidate := enrollment.FamilyMember{
		EmployeeID: emp.ID,
		Name:       req.Name,
		Relation:   relation,
		DOB:        dob,
		Gender:     employee.Gender(req.Gender),
	}
	if result := enrollment.ValidateFamilyComposition(append(existing, candidate)); !result.Valid {
		return enrollment.DependentResponse{}, &enrollment.CompositionError{Violations: result.Errors}
	}

	created, err := s.FamilyMemberRepository.Create(ctx, candidate)
	if err != nil {
		return enrollment.DependentResponse{}, err
	}
	return mapDependent(created.ID, created.Name, created.Relation, created.DOB, created.Gender), nil
}

// RemoveFamilyMember implements enrollment.EnrollmentService.
func (s *EnrollmentServiceImpl) RemoveFamilyMember(ctx context.Context, id string) error {
	emp, err := s.currentEmployee(ctx, true)
	if err != nil {
		return err
	}
	return s.FamilyMemberRepository.Delete(ctx, emp.ID, id)
}

// AddParent implements enrollment.EnrollmentService. Parents can only be
// added after parental coverage is selected, and only into the chosen set.
func (s *EnrollmentServiceImpl) AddParent(ctx context.Context, req enrollment.AddParentRequest) (enrollment.DependentResponse, error) {
	if err := req.Validate(); err != nil {
		return enrollment.DependentResponse{}, err
	}

	emp, err := s.currentEmployee(ctx, true)
	if err != nil {
		return enrollment.DependentResponse{}, err
	}

	coverage, err := s.EnrollmentRepository.GetCoverage(ctx, emp.ID)
	if err != nil {
		return enrollment.DependentResponse{}, err
	}
	if !coverage.Selected {
		return enrollment.DependentResponse{}, enrollment.ErrCoverageNotSelected
	}
	if coverage.ParentSet == nil {
		return enrollment.DependentResponse{}, enrollment.ErrParentSetRequired
	}

	relation := enrollment.Relationship(req.Relation)
	parentSet, _ := enrollment.ParentSetFor(relation)
	if parentSet != *coverage.ParentSet {
		return enrollment.DependentResponse{}, enrollment.ErrParentSetMismatch
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return enrollment.DependentResponse{}, err
	}
	if msg := enrollment.ValidateAgeRange(enrollment.Age(dob, time.Now()), relation); msg != "" {
		return enrollment.DependentResponse{}, &enrollment.CompositionError{Violations: []string{msg}}
	}

	existing, err := s.ParentRepository.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		return enrollment.DependentResponse{}, err
	}

	gender, _ := enrollment.GenderForRelationship(relation)
	candidate := enrollment.Parent{
		EmployeeID: emp.ID,
		Name:       req.Name,
		Relation:   relation,
		DOB:        dob,
		Gender:     gender,
	}
	if result := enrollment.ValidateParentComposition(append(existing, candidate)); !result.Valid {
		return enrollment.DependentResponse{}, &enrollment.CompositionError{Violations: result.Errors}
	}

	created, err := s.ParentRepository.Create(ctx, candidate)
	if err != nil {
		return enrollment.DependentResponse{}, err
	}
	return mapDependent(created.ID, created.Name, created.Relation, created.DOB, created.Gender), nil
}

// RemoveParent implements enrollment.EnrollmentService.
func (s *EnrollmentServiceImpl) RemoveParent(ctx context.Context, id string) error {
	emp, err := s.currentEmployee(ctx, true)
	if err != nil {
		return err
	}
	return s.ParentRepository.Delete(ctx, emp.ID, id)
}

// GetPremium implements enrollment.EnrollmentService. The quote is always a
// live recompute over the current draft.
func (s *EnrollmentServiceImpl) GetPremium(ctx context.Context) (enrollment.PremiumBreakdownResponse, error) {
	emp, err := s.currentEmployee(ctx, false)
	if err != nil {
		return enrollment.PremiumBreakdownResponse{}, err
	}

	coverage, err := s.EnrollmentRepository.GetCoverage(ctx, emp.ID)
	if err != nil {
		return enrollment.PremiumBreakdownResponse{}, err
	}

	parentCount := 0
	if coverage.Selected {
		parents, err := s.ParentRepository.GetByEmployeeID(ctx, emp.ID)
		if err != nil {
			return enrollment.PremiumBreakdownResponse{}, err
		}
		parentCount = len(parents)
	}

	breakdown := CalculatePremiumBreakdown(parentCount, emp.JoiningDate, emp.PolicyStart, emp.PolicyEnd)
	return breakdownToResponse(breakdown, PolicyYearLabel(emp.PolicyStart, emp.PolicyEnd)), nil
}

// Submit implements enrollment.EnrollmentService. It re-validates the whole
// draft, freezes the premium figures into an enrollment record and flips the
// employee's status, all in one transaction. The confirmation email goes out
// after commit so a mail outage cannot roll back a valid submission.
func (s *EnrollmentServiceImpl) Submit(ctx context.Context) (enrollment.SubmitResponse, error) {
	emp, err := s.currentEmployee(ctx, true)
	if err != nil {
		return enrollment.SubmitResponse{}, err
	}

	members, err := s.FamilyMemberRepository.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		return enrollment.SubmitResponse{}, err
	}
	parents, err := s.ParentRepository.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		return enrollment.SubmitResponse{}, err
	}
	coverage, err := s.EnrollmentRepository.GetCoverage(ctx, emp.ID)
	if err != nil {
		return enrollment.SubmitResponse{}, err
	}

	var violations []string
	if result := enrollment.ValidateFamilyComposition(members); !result.Valid {
		violations = append(violations, result.Errors...)
	}
	if result := enrollment.ValidateParentComposition(parents); !result.Valid {
		violations = append(violations, result.Errors...)
	}
	if coverage.Selected {
		if coverage.ParentSet == nil {
			violations = append(violations, "Please select which parents to cover (Parents or Parents-in-law)")
		}
		if len(parents) == 0 {
			violations = append(violations, "Please add at least one parent for parental coverage")
		}
	}
	if len(violations) > 0 {
		return enrollment.SubmitResponse{}, &enrollment.CompositionError{Violations: violations}
	}
	if !coverage.Selected && len(parents) > 0 {
		return enrollment.SubmitResponse{}, enrollment.ErrCoverageNotSelected
	}

	parentCount := 0
	if coverage.Selected {
		parentCount = len(parents)
	}
	breakdown := CalculatePremiumBreakdown(parentCount, emp.JoiningDate, emp.PolicyStart, emp.PolicyEnd)

	now := time.Now()
	record := enrollment.Enrollment{
		EmployeeID:               emp.ID,
		ParentalCoverageSelected: coverage.Selected,
		ParentalCoverageType:     coverage.ParentSet,
		MainPolicyPremium:        decimal.Zero,
		ParentalPolicyPremium:    breakdown.ProRatedPremium,
		GSTAmount:                breakdown.GST,
		TotalPremium:             breakdown.Total,
		ProRataFactor:            breakdown.Factor,
		PolicyRemainingDays:      breakdown.RemainingDays,
		EnrollmentDate:           now,
		Status:                   enrollment.StatusPending,
		SubmittedAt:              now,
	}

	var created enrollment.Enrollment
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.EnrollmentRepository.Create(txCtx, record)
		if err != nil {
			return fmt.Errorf("failed to create enrollment record: %w", err)
		}
		if err := s.EmployeeRepository.MarkEnrolled(txCtx, emp.ID, employee.EnrollmentStatusSubmitted); err != nil {
			return fmt.Errorf("failed to mark employee enrolled: %w", err)
		}
		return nil
	})
	if err != nil {
		return enrollment.SubmitResponse{}, err
	}

	policyYear := PolicyYearLabel(emp.PolicyStart, emp.PolicyEnd)
	go s.sendConfirmation(emp, members, parents, breakdown, policyYear, created.SubmittedAt)

	return enrollment.SubmitResponse{
		EnrollmentID: created.ID,
		Status:       string(created.Status),
		SubmittedAt:  created.SubmittedAt.Format(time.RFC3339),
		Premium:      breakdownToResponse(breakdown, policyYear),
	}, nil
}

func (s *EnrollmentServiceImpl) sendConfirmation(
	emp employee.Employee,
	members []enrollment.FamilyMember,
	parents []enrollment.Parent,
	breakdown enrollment.PremiumBreakdown,
	policyYear string,
	submittedAt time.Time,
) {
	now := time.Now()
	data := email.ConfirmationData{
		EmployeeName:     emp.Name,
		EmpID:            emp.EmpID,
		PolicyYear:       policyYear,
		EnrollmentDate:   submittedAt.Format("02 Jan 2006"),
		CoversParents:    len(parents) > 0,
		BasePremium:      breakdown.BasePremium.StringFixed(2),
		ProRatedPremium:  breakdown.ProRatedPremium.StringFixed(2),
		GST:              breakdown.GST.StringFixed(2),
		TotalPremium:     breakdown.Total.StringFixed(2),
		MonthlyDeduction: breakdown.MonthlyDeduction.StringFixed(2),
		PortalURL:        s.portalURL,
	}
	for _, m := range members {
		data.FamilyMembers = append(data.FamilyMembers, email.DependentLine{
			Name:         m.Name,
			Relationship: string(m.Relation),
			Age:          enrollment.Age(m.DOB, now),
		})
	}
	for _, p := range parents {
		data.Parents = append(data.Parents, email.DependentLine{
			Name:         p.Name,
			Relationship: string(p.Relation),
			Age:          enrollment.Age(p.DOB, now),
		})
	}

	if err := s.EmailService.SendEnrollmentConfirmation(emp.Email, data); err != nil {
		slog.Error("Failed to send enrollment confirmation", "employee_id", emp.ID, "error", err)
	}
}
