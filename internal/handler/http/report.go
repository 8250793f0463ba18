package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/medibridge/enroll-backend-go/internal/domain/report"
	"github.com/medibridge/enroll-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	EnrollmentReport(w http.ResponseWriter, r *http.Request)
	ExportEnrollmentReport(w http.ResponseWriter, r *http.Request)
	ExportEmployees(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func reportRequestFromQuery(r *http.Request) report.EnrollmentReportRequest {
	var req report.EnrollmentReportRequest
	if raw := r.URL.Query().Get("batch_id"); raw != "" {
		req.BatchID = &raw
	}
	return req
}

func writeCSV(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Dashboard implements ReportHandler.
func (h *ReportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportService.GetDashboardStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// EnrollmentReport implements ReportHandler.
func (h *ReportHandlerImpl) EnrollmentReport(w http.ResponseWriter, r *http.Request) {
	generated, err := h.reportService.GenerateEnrollmentReport(r.Context(), reportRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, generated)
}

// ExportEnrollmentReport implements ReportHandler. CSV is the only export
// format; the format parameter is optional and rejected when it asks for
// anything else.
func (h *ReportHandlerImpl) ExportEnrollmentReport(w http.ResponseWriter, r *http.Request) {
	if format := r.URL.Query().Get("format"); format != "" && format != "csv" {
		response.BadRequest(w, fmt.Sprintf("unsupported export format: %s", format), nil)
		return
	}

	data, err := h.reportService.ExportEnrollmentReportCSV(r.Context(), reportRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	filename := fmt.Sprintf("enrollment-report-%s.csv", time.Now().Format("2006-01-02"))
	writeCSV(w, filename, data)
}

// ExportEmployees implements ReportHandler.
func (h *ReportHandlerImpl) ExportEmployees(w http.ResponseWriter, r *http.Request) {
	data, err := h.reportService.ExportEmployeesCSV(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	filename := fmt.Sprintf("employees-%s.csv", time.Now().Format("2006-01-02"))
	writeCSV(w, filename, data)
}
