package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medibridge/enroll-backend-go/internal/domain/report"
)

type stubReportService struct {
	csv []byte
	err error
}

func (s *stubReportService) GetDashboardStats(ctx context.Context) (report.DashboardStats, error) {
	return report.DashboardStats{}, s.err
}

func (s *stubReportService) GenerateEnrollmentReport(ctx context.Context, req report.EnrollmentReportRequest) (report.EnrollmentReport, error) {
	return report.EnrollmentReport{}, s.err
}

func (s *stubReportService) ExportEnrollmentReportCSV(ctx context.Context, req report.EnrollmentReportRequest) ([]byte, error) {
	return s.csv, s.err
}

func (s *stubReportService) ExportEmployeesCSV(ctx context.Context) ([]byte, error) {
	return s.csv, s.err
}

func TestExportEnrollmentReportRejectsUnknownFormat(t *testing.T) {
	handler := NewReportHandler(&stubReportService{csv: []byte("header\n")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reports/enrollment/export?format=xlsx", nil)
	rec := httptest.NewRecorder()
	handler.ExportEnrollmentReport(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Contains(t, resp.Error.Message, "xlsx")
}

func TestExportEnrollmentReportAcceptsCSVFormat(t *testing.T) {
	handler := NewReportHandler(&stubReportService{csv: []byte("header\n")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reports/enrollment/export?format=csv", nil)
	rec := httptest.NewRecorder()
	handler.ExportEnrollmentReport(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "enrollment-report-")
	assert.Equal(t, "header\n", rec.Body.String())
}
