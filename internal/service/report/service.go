package report

import (
	"context"
	"time"

	"github.com/medibridge/enroll-backend-go/internal/domain/report"
	"github.com/medibridge/enroll-backend-go/internal/pkg/database"
)

type ReportServiceImpl struct {
	db *database.DB
	report.ReportRepository
}

func NewReportService(db *database.DB, reportRepository report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{
		db:               db,
		ReportRepository: reportRepository,
	}
}

// GetDashboardStats implements report.ReportService.
func (r *ReportServiceImpl) GetDashboardStats(ctx context.Context) (report.DashboardStats, error) {
	return r.ReportRepository.GetDashboardStats(ctx)
}

// GenerateEnrollmentReport implements report.ReportService.
func (r *ReportServiceImpl) GenerateEnrollmentReport(ctx context.Context, req report.EnrollmentReportRequest) (report.EnrollmentReport, error) {
	if err := req.Validate(); err != nil {
		return report.EnrollmentReport{}, err
	}

	rows, err := r.ReportRepository.GetEnrollmentReportRows(ctx, req.BatchID)
	if err != nil {
		return report.EnrollmentReport{}, err
	}

	return report.EnrollmentReport{
		GeneratedAt: time.Now().Format(time.RFC3339),
		BatchID:     req.BatchID,
		Employees:   rows,
	}, nil
}

// ExportEnrollmentReportCSV implements report.ReportService.
func (r *ReportServiceImpl) ExportEnrollmentReportCSV(ctx context.Context, req report.EnrollmentReportRequest) ([]byte, error) {
	generated, err := r.GenerateEnrollmentReport(ctx, req)
	if err != nil {
		return nil, err
	}
	return renderEnrollmentReportCSV(generated.Employees)
}

// ExportEmployeesCSV implements report.ReportService.
func (r *ReportServiceImpl) ExportEmployeesCSV(ctx context.Context) ([]byte, error) {
	rows, err := r.ReportRepository.GetEnrollmentReportRows(ctx, nil)
	if err != nil {
		return nil, err
	}
	return renderEmployeesCSV(rows)
}
