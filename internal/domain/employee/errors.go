package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmpIDExists          = errors.New("employee id already exists")
	ErrEmailExists          = errors.New("email already registered")
	ErrInvalidEmpID         = errors.New("invalid employee id format")
	ErrInvalidMobile        = errors.New("mobile number must be 10-13 digits")
	ErrInvalidGender        = errors.New("gender must be Male or Female")
	ErrFutureDateNotAllowed = errors.New("date cannot be in the future")
	ErrUnauthorized         = errors.New("unauthorized to access this employee")
	ErrCannotDeleteSelf     = errors.New("cannot delete your own employee record")
)
