package enrollment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/medibridge/enroll-backend-go/internal/domain/employee"
)

// Relationship tags are split into two disjoint domains: family dependents
// ride the free base policy, parents ride the paid voluntary policy.
type Relationship string

const (
	RelationshipSpouse      Relationship = "Spouse"
	RelationshipChild       Relationship = "Child"
	RelationshipFather      Relationship = "Father"
	RelationshipMother      Relationship = "Mother"
	RelationshipFatherInLaw Relationship = "Father-in-law"
	RelationshipMotherInLaw Relationship = "Mother-in-law"
)

// ParentSet is the employee's choice between covering their own parents or
// their parents-in-law. The two sets are mutually exclusive per enrollment.
type ParentSet string

const (
	ParentSetParents      ParentSet = "parents"
	ParentSetParentsInLaw ParentSet = "parents-in-law"
)

type FamilyMember struct {
	ID         string
	EmployeeID string
	Name       string
	Relation   Relationship
	DOB        time.Time
	Gender     employee.Gender
	CreatedAt  time.Time
}

type Parent struct {
	ID         string
	EmployeeID string
	Name       string
	Relation   Relationship
	DOB        time.Time
	Gender     employee.Gender
	CreatedAt  time.Time
}

type ParentalCoverage struct {
	Selected  bool
	ParentSet *ParentSet
}

type EnrollmentStatus string

const (
	StatusPending  EnrollmentStatus = "pending"
	StatusApproved EnrollmentStatus = "approved"
	StatusRejected EnrollmentStatus = "rejected"
)

// Enrollment is the frozen snapshot written once at submission. Premium
// figures are captured at submit time and never recomputed afterwards.
type Enrollment struct {
	ID                       string
	EmployeeID               string
	ParentalCoverageSelected bool
	ParentalCoverageType     *ParentSet
	MainPolicyPremium        decimal.Decimal
	ParentalPolicyPremium    decimal.Decimal
	GSTAmount                decimal.Decimal
	TotalPremium             decimal.Decimal
	ProRataFactor            decimal.Decimal
	PolicyRemainingDays      int
	EnrollmentDate           time.Time
	Status                   EnrollmentStatus
	SubmittedAt              time.Time
	CreatedAt                time.Time
}

// ProRataCalculation reports the intermediate pro-ration figures.
// TotalPolicyDays is the actual policy window span, informational only;
// the premium formula always divides by the fixed 365-day policy year.
type ProRataCalculation struct {
	BasePremium     decimal.Decimal
	ProRatedPremium decimal.Decimal
	Factor          decimal.Decimal
	RemainingDays   int
	TotalPolicyDays int
}

// PremiumBreakdown is what the portal displays while an enrollment is in
// progress. Monetary fields follow the insurer's rounding rules: GST and
// Total are rounded for display, ProRatedPremium is not.
type PremiumBreakdown struct {
	Description      string
	BasePremium      decimal.Decimal
	ProRatedPremium  decimal.Decimal
	GST              decimal.Decimal
	Total            decimal.Decimal
	MonthlyDeduction decimal.Decimal
	Factor           decimal.Decimal
	RemainingDays    int
}

// Age computes whole years elapsed at now; a birthday not yet reached this
// year does not count.
func Age(dob time.Time, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}
