package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/medibridge/enroll-backend-go/internal/domain/batch"
	"github.com/medibridge/enroll-backend-go/internal/pkg/database"
)

type batchRepositoryImpl struct {
	db *database.DB
}

func NewBatchRepository(db *database.DB) batch.BatchRepository {
	return &batchRepositoryImpl{db: db}
}

// Create implements batch.BatchRepository.
func (b *batchRepositoryImpl) Create(ctx context.Context, newBatch batch.UploadBatch) (batch.UploadBatch, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		INSERT INTO upload_batches (batch_name, description, uploaded_by)
		VALUES ($1, $2, $3)
		RETURNING id, batch_name, description, uploaded_by, uploaded_at
	`

	var created batch.UploadBatch
	err := q.QueryRow(ctx, query, newBatch.BatchName, newBatch.Description, newBatch.UploadedBy).Scan(
		&created.ID, &created.BatchName, &created.Description, &created.UploadedBy, &created.UploadedAt,
	)
	if err != nil {
		return batch.UploadBatch{}, err
	}
	return created, nil
}

// GetByID implements batch.BatchRepository.
func (b *batchRepositoryImpl) GetByID(ctx context.Context, id string) (batch.UploadBatch, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT id, batch_name, description, uploaded_by, uploaded_at
		FROM upload_batches
		WHERE id = $1
	`

	var found batch.UploadBatch
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.BatchName, &found.Description, &found.UploadedBy, &found.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return batch.UploadBatch{}, batch.ErrBatchNotFound
		}
		return batch.UploadBatch{}, err
	}
	return found, nil
}

// ListWithCounts implements batch.BatchRepository.
func (b *batchRepositoryImpl) ListWithCounts(ctx context.Context) ([]batch.UploadBatchWithCount, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT ub.id, ub.batch_name, ub.description, ub.uploaded_by, ub.uploaded_at,
			up.name AS uploader_name,
			COUNT(e.id) AS employee_count
		FROM upload_batches ub
		LEFT JOIN employees up ON up.id = ub.uploaded_by
		LEFT JOIN employees e ON e.batch_id = ub.id
		GROUP BY ub.id, ub.batch_name, ub.description, ub.uploaded_by, ub.uploaded_at, up.name
		ORDER BY ub.uploaded_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []batch.UploadBatchWithCount
	for rows.Next() {
		var bc batch.UploadBatchWithCount
		err := rows.Scan(
			&bc.ID, &bc.BatchName, &bc.Description, &bc.UploadedBy, &bc.UploadedAt,
			&bc.UploaderName, &bc.EmployeeCount,
		)
		if err != nil {
			return nil, err
		}
		batches = append(batches, bc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return batches, nil
}
