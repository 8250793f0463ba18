package response

import (
	"errors"
	"net/http"

	"github.com/medibridge/enroll-backend-go/internal/domain/auth"
	"github.com/medibridge/enroll-backend-go/internal/domain/batch"
	"github.com/medibridge/enroll-backend-go/internal/domain/employee"
	"github.com/medibridge/enroll-backend-go/internal/domain/enrollment"
	"github.com/medibridge/enroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Composition rule violations carry their message list
	var compositionErr *enrollment.CompositionError
	if errors.As(err, &compositionErr) {
		RuleViolation(w, compositionErr.Violations)
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidAdminCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound), errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, "Refresh token missing")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, auth.ErrNotAnAdminAccount):
		Forbidden(w, "Account is not an admin")
	case errors.Is(err, auth.ErrGoogleAccessDenied):
		Unauthorized(w, "Google access denied")
	case errors.Is(err, auth.ErrStateMismatch):
		Unauthorized(w, "OAuth state mismatch")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmpIDExists):
		Conflict(w, "Employee id or email already registered")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrCannotDeleteSelf):
		Conflict(w, "Cannot delete your own employee record")
	case errors.Is(err, employee.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this employee")

	// Enrollment domain errors
	case errors.Is(err, enrollment.ErrAlreadySubmitted):
		Conflict(w, "Enrollment has already been submitted")
	case errors.Is(err, enrollment.ErrEnrollmentNotFound):
		NotFound(w, "Enrollment not found")
	case errors.Is(err, enrollment.ErrDependentNotFound):
		NotFound(w, "Dependent not found")
	case errors.Is(err, enrollment.ErrCoverageNotSelected):
		BadRequest(w, "Parental coverage has not been selected", nil)
	case errors.Is(err, enrollment.ErrParentSetRequired):
		BadRequest(w, "Choose parents or parents-in-law first", nil)
	case errors.Is(err, enrollment.ErrParentSetMismatch):
		BadRequest(w, "Parent does not belong to the selected parent set", nil)

	// Batch domain errors
	case errors.Is(err, batch.ErrBatchNotFound):
		NotFound(w, "Upload batch not found")
	case errors.Is(err, batch.ErrEmptyRoster):
		BadRequest(w, "Roster file contains no data rows", nil)
	case errors.Is(err, batch.ErrMissingColumns):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, batch.ErrUnsupportedFile):
		BadRequest(w, "Only CSV roster files are supported", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
