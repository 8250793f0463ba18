package enrollment

import (
	"github.com/medibridge/enroll-backend-go/internal/domain/employee"
	"github.com/medibridge/enroll-backend-go/internal/pkg/validator"
)

// AddFamilyMemberRequest carries one base-policy dependent candidate.
// Field-level completeness is validated here; cross-record composition is
// the rule set's job and runs against existing + candidate.
type AddFamilyMemberRequest struct {
	Name     string `json:"name"`
	Relation string `json:"relationship"`
	DOB      string `json:"date_of_birth"`
	Gender   string `json:"gender"`
}

func (r *AddFamilyMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !IsFamilyRelationship(Relationship(r.Relation)) {
		errs = append(errs, validator.ValidationError{Field: "relationship", Message: "relationship must be Spouse or Child"})
	}
	if _, ok := validator.IsValidDate(r.DOB); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "date_of_birth must be a valid YYYY-MM-DD date"})
	}
	if !validator.IsInSlice(r.Gender, []string{string(employee.Male), string(employee.Female)}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender must be Male or Female"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AddParentRequest carries one voluntary-policy parent candidate. Gender is
// optional: it is inferred from the relationship tag.
type AddParentRequest struct {
	Name     string `json:"name"`
	Relation string `json:"relationship"`
	DOB      string `json:"date_of_birth"`
}

func (r *AddParentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !IsParentRelationship(Relationship(r.Relation)) {
		errs = append(errs, validator.ValidationError{Field: "relationship", Message: "relationship must be Father, Mother, Father-in-law or Mother-in-law"})
	}
	if _, ok := validator.IsValidDate(r.DOB); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "date_of_birth must be a valid YYYY-MM-DD date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CoverageRequest struct {
	Selected  bool    `json:"selected"`
	ParentSet *string `json:"parent_set,omitempty"`
}

func (r *CoverageRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ParentSet != nil && !validator.IsInSlice(*r.ParentSet, []string{string(ParentSetParents), string(ParentSetParentsInLaw)}) {
		errs = append(errs, validator.ValidationError{Field: "parent_set", Message: "parent_set must be parents or parents-in-law"})
	}
	if !r.Selected && r.ParentSet != nil {
		errs = append(errs, validator.ValidationError{Field: "parent_set", Message: "parent_set must be empty when coverage is not selected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DependentResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Relation string `json:"relationship"`
	DOB      string `json:"date_of_birth"`
	Gender   string `json:"gender"`
	Age      int    `json:"age"`
}

type CoverageResponse struct {
	Selected  bool    `json:"selected"`
	ParentSet *string `json:"parent_set"`
}

type PremiumBreakdownResponse struct {
	Description      string  `json:"description"`
	BasePremium      float64 `json:"base_premium"`
	ProRatedPremium  float64 `json:"pro_rated_premium"`
	GST              float64 `json:"gst"`
	Total            float64 `json:"total"`
	MonthlyDeduction float64 `json:"monthly_deduction"`
	Factor           float64 `json:"factor"`
	RemainingDays    int     `json:"remaining_days"`
	PolicyYear       string  `json:"policy_year"`
}

// EnrollmentResponse is the draft state while in progress, or the frozen
// snapshot after submission.
type EnrollmentResponse struct {
	EmployeeID    string                    `json:"employee_id"`
	Status        string                    `json:"status"`
	FamilyMembers []DependentResponse       `json:"family_members"`
	Parents       []DependentResponse       `json:"parents"`
	Coverage      CoverageResponse          `json:"parental_coverage"`
	Premium       *PremiumBreakdownResponse `json:"premium,omitempty"`
	SubmittedAt   *string                   `json:"submitted_at,omitempty"`
}

type SubmitResponse struct {
	EnrollmentID string                   `json:"enrollment_id"`
	Status       string                   `json:"status"`
	SubmittedAt  string                   `json:"submitted_at"`
	Premium      PremiumBreakdownResponse `json:"premium"`
}
