package batch

import (
	"github.com/medibridge/enroll-backend-go/internal/pkg/validator"
)

type CreateBatchRequest struct {
	BatchName   string  `json:"batch_name"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BatchName) {
		errs = append(errs, validator.ValidationError{Field: "batch_name", Message: "batch_name is required"})
	}
	if len(r.BatchName) > 255 {
		errs = append(errs, validator.ValidationError{Field: "batch_name", Message: "batch_name must not exceed 255 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BatchResponse struct {
	ID            string  `json:"id"`
	BatchName     string  `json:"batch_name"`
	Description   *string `json:"description,omitempty"`
	UploadedBy    string  `json:"uploaded_by"`
	UploadedAt    string  `json:"uploaded_at"`
	EmployeeCount int64   `json:"employee_count"`
}

// RowError pins an import failure to its spreadsheet row (1-based, header
// excluded) so admins can fix the file and retry.
type RowError struct {
	Row    int    `json:"row"`
	EmpID  string `json:"emp_id,omitempty"`
	Errors string `json:"errors"`
}

type ImportResult struct {
	BatchID       string     `json:"batch_id"`
	TotalRows     int        `json:"total_rows"`
	ImportedCount int        `json:"imported_count"`
	FailedCount   int        `json:"failed_count"`
	RowErrors     []RowError `json:"row_errors,omitempty"`
}
