package batch

import "time"

type UploadBatch struct {
	ID          string
	BatchName   string
	Description *string
	UploadedBy  *string
	UploadedAt  time.Time
}

// UploadBatchWithCount joins the uploader's name and the number of employees
// the batch created, for the admin batch list.
type UploadBatchWithCount struct {
	UploadBatch
	UploaderName  *string
	EmployeeCount int64
}
