package http

import (
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/medibridge/enroll-backend-go/internal/domain/batch"
	"github.com/medibridge/enroll-backend-go/internal/handler/http/response"
)

// Roster uploads are small CSV files; 10 MB is generous.
const maxRosterSize = 10 << 20

type BatchHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type BatchHandlerImpl struct {
	batchService batch.BatchService
}

func NewBatchHandler(batchService batch.BatchService) BatchHandler {
	return &BatchHandlerImpl{batchService: batchService}
}

// List implements BatchHandler.
func (b *BatchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	batches, err := b.batchService.ListBatches(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, batches)
}

// Import implements BatchHandler. Expects a multipart form with a "file"
// part holding the CSV roster and a "batch_name" field.
func (b *BatchHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxRosterSize); err != nil {
		slog.Error("Roster upload parse error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Roster file is required", nil)
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		response.HandleError(w, batch.ErrUnsupportedFile)
		return
	}

	csvData, err := io.ReadAll(io.LimitReader(file, maxRosterSize))
	if err != nil {
		slog.Error("Roster upload read error", "error", err)
		response.InternalServerError(w, "Failed to read roster file")
		return
	}

	createReq := batch.CreateBatchRequest{
		BatchName: r.FormValue("batch_name"),
	}
	if description := r.FormValue("description"); description != "" {
		createReq.Description = &description
	}

	result, err := b.batchService.ImportRoster(r.Context(), createReq, csvData)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Roster imported",
		"batch_id", result.BatchID,
		"imported", result.ImportedCount,
		"failed", result.FailedCount,
	)
	response.Created(w, "Roster imported", result)
}
