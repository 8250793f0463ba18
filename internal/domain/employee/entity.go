package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                string
	EmpID             string
	Name              string
	Email             string
	DOB               time.Time
	Gender            Gender
	Mobile            string
	JoiningDate       time.Time
	PolicyStart       time.Time
	PolicyEnd         time.Time
	Department        *string
	Designation       *string
	Salary            *decimal.Decimal
	Enrolled          bool
	EnrollmentStatus  EnrollmentStatus
	EnrollmentDate    *time.Time
	EnrollmentDueDate *time.Time
	Role              Role
	PasswordHash      *string
	BatchID           *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

type EnrollmentStatus string

const (
	EnrollmentStatusPending   EnrollmentStatus = "pending"
	EnrollmentStatusSubmitted EnrollmentStatus = "submitted"
	EnrollmentStatusApproved  EnrollmentStatus = "approved"
)
