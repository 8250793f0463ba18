package batch

import "context"

type BatchRepository interface {
	Create(ctx context.Context, newBatch UploadBatch) (UploadBatch, error)
	GetByID(ctx context.Context, id string) (UploadBatch, error)
	ListWithCounts(ctx context.Context) ([]UploadBatchWithCount, error)
}

type BatchService interface {
	CreateBatch(ctx context.Context, req CreateBatchRequest) (UploadBatch, error)
	ListBatches(ctx context.Context) ([]BatchResponse, error)
	ImportRoster(ctx context.Context, req CreateBatchRequest, csvData []byte) (ImportResult, error)
}
