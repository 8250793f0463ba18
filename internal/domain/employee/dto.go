package employee

import (
	"github.com/medibridge/enroll-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmpID             string   `json:"emp_id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	DOB               string   `json:"date_of_birth"`
	Gender            string   `json:"gender"`
	Mobile            string   `json:"mobile"`
	JoiningDate       string   `json:"joining_date"`
	PolicyStart       string   `json:"policy_start"`
	PolicyEnd         string   `json:"policy_end"`
	Department        *string  `json:"department,omitempty"`
	Designation       *string  `json:"designation,omitempty"`
	Salary            *float64 `json:"salary,omitempty"`
	EnrollmentDueDate *string  `json:"enrollment_due_date,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpID) {
		errs = append(errs, validator.ValidationError{Field: "emp_id", Message: "emp_id is required"})
	} else if !validator.IsValidEmpID(r.EmpID) {
		errs = append(errs, validator.ValidationError{Field: "emp_id", Message: ErrInvalidEmpID.Error()})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is invalid"})
	}

	if !validator.IsInSlice(r.Gender, []string{string(Male), string(Female)}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: ErrInvalidGender.Error()})
	}

	if !validator.IsValidMobile(r.Mobile) {
		errs = append(errs, validator.ValidationError{Field: "mobile", Message: ErrInvalidMobile.Error()})
	}

	dateFields := []struct {
		field string
		value string
	}{
		{"date_of_birth", r.DOB},
		{"joining_date", r.JoiningDate},
		{"policy_start", r.PolicyStart},
		{"policy_end", r.PolicyEnd},
	}
	for _, df := range dateFields {
		if _, ok := validator.IsValidDate(df.value); !ok {
			errs = append(errs, validator.ValidationError{Field: df.field, Message: df.field + " must be a valid YYYY-MM-DD date"})
		}
	}

	if r.EnrollmentDueDate != nil {
		if _, ok := validator.IsValidDate(*r.EnrollmentDueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "enrollment_due_date", Message: "enrollment_due_date must be a valid YYYY-MM-DD date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	Name              *string  `json:"name,omitempty"`
	Email             *string  `json:"email,omitempty"`
	DOB               *string  `json:"date_of_birth,omitempty"`
	Gender            *string  `json:"gender,omitempty"`
	Mobile            *string  `json:"mobile,omitempty"`
	JoiningDate       *string  `json:"joining_date,omitempty"`
	PolicyStart       *string  `json:"policy_start,omitempty"`
	PolicyEnd         *string  `json:"policy_end,omitempty"`
	Department        *string  `json:"department,omitempty"`
	Designation       *string  `json:"designation,omitempty"`
	Salary            *float64 `json:"salary,omitempty"`
	EnrollmentDueDate *string  `json:"enrollment_due_date,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is invalid"})
	}
	if r.Gender != nil && !validator.IsInSlice(*r.Gender, []string{string(Male), string(Female)}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: ErrInvalidGender.Error()})
	}
	if r.Mobile != nil && !validator.IsValidMobile(*r.Mobile) {
		errs = append(errs, validator.ValidationError{Field: "mobile", Message: ErrInvalidMobile.Error()})
	}

	dateFields := []struct {
		field string
		value *string
	}{
		{"date_of_birth", r.DOB},
		{"joining_date", r.JoiningDate},
		{"policy_start", r.PolicyStart},
		{"policy_end", r.PolicyEnd},
		{"enrollment_due_date", r.EnrollmentDueDate},
	}
	for _, df := range dateFields {
		if df.value == nil {
			continue
		}
		if _, ok := validator.IsValidDate(*df.value); !ok {
			errs = append(errs, validator.ValidationError{Field: df.field, Message: df.field + " must be a valid YYYY-MM-DD date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                string   `json:"id"`
	EmpID             string   `json:"emp_id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	DOB               string   `json:"date_of_birth"`
	Gender            string   `json:"gender"`
	Mobile            string   `json:"mobile"`
	JoiningDate       string   `json:"joining_date"`
	PolicyStart       string   `json:"policy_start"`
	PolicyEnd         string   `json:"policy_end"`
	Department        *string  `json:"department,omitempty"`
	Designation       *string  `json:"designation,omitempty"`
	Salary            *float64 `json:"salary,omitempty"`
	Enrolled          bool     `json:"enrolled"`
	EnrollmentStatus  string   `json:"enrollment_status"`
	EnrollmentDate    *string  `json:"enrollment_date,omitempty"`
	EnrollmentDueDate *string  `json:"enrollment_due_date,omitempty"`
	Role              string   `json:"role"`
	BatchID           *string  `json:"batch_id,omitempty"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}
