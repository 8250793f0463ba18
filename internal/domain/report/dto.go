package report

import (
	"github.com/medibridge/enroll-backend-go/internal/pkg/validator"
)

// ========================================
// ADMIN DASHBOARD
// ========================================

type DashboardStats struct {
	TotalEmployees    int64             `json:"total_employees"`
	EnrolledEmployees int64             `json:"enrolled_employees"`
	PendingEmployees  int64             `json:"pending_employees"`
	EnrollmentRate    float64           `json:"enrollment_rate"`
	Departments       []DepartmentStats `json:"department_breakdown"`
}

type DepartmentStats struct {
	Department     string  `json:"department"`
	Total          int64   `json:"total"`
	Enrolled       int64   `json:"enrolled"`
	Pending        int64   `json:"pending"`
	EnrollmentRate float64 `json:"enrollment_rate"`
}

// ========================================
// DETAILED ENROLLMENT REPORT
// ========================================

type EnrollmentReportRequest struct {
	BatchID *string `json:"batch_id,omitempty"`
}

func (r *EnrollmentReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BatchID != nil && !validator.IsValidUUID(*r.BatchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "batch_id",
			Message: "batch_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EnrollmentReport struct {
	GeneratedAt string                `json:"generated_at"`
	BatchID     *string               `json:"batch_id,omitempty"`
	Employees   []EnrollmentReportRow `json:"employees"`
}

// EnrollmentReportRow is one employee with their premium figures (zero until
// submission) and every covered dependent.
type EnrollmentReportRow struct {
	EmployeeID            string             `json:"employee_id"`
	EmpID                 string             `json:"emp_id"`
	Name                  string             `json:"name"`
	Email                 string             `json:"email"`
	DOB                   string             `json:"date_of_birth"`
	Gender                string             `json:"gender"`
	Mobile                string             `json:"mobile"`
	JoiningDate           string             `json:"joining_date"`
	Department            string             `json:"department"`
	Designation           string             `json:"designation"`
	PolicyStart           string             `json:"policy_start"`
	PolicyEnd             string             `json:"policy_end"`
	EnrollmentDueDate     string             `json:"enrollment_due_date"`
	EnrollmentStatus      string             `json:"enrollment_status"`
	EnrollmentID          *string            `json:"enrollment_id,omitempty"`
	BatchID               *string            `json:"batch_id,omitempty"`
	TotalPremium          float64            `json:"total_premium"`
	MonthlyDeduction      float64            `json:"monthly_deduction"`
	MainPolicyPremium     float64            `json:"main_policy_premium"`
	ParentalPolicyPremium float64            `json:"parental_policy_premium"`
	GSTAmount             float64            `json:"gst_amount"`
	ProRataFactor         float64            `json:"pro_rata_factor"`
	CoverageSelected      bool               `json:"parental_coverage_selected"`
	CoverageType          string             `json:"parental_coverage_type"`
	Dependents            []ReportDependent  `json:"dependents"`
}

type DependentKind string

const (
	DependentKindFamily DependentKind = "family"
	DependentKindParent DependentKind = "parent"
)

type ReportDependent struct {
	Name     string        `json:"name"`
	Relation string        `json:"relationship"`
	Kind     DependentKind `json:"type"`
	DOB      string        `json:"date_of_birth"`
	Gender   string        `json:"gender"`
	Age      int           `json:"age"`
}
