package report

import "context"

type ReportService interface {
	GetDashboardStats(ctx context.Context) (DashboardStats, error)
	GenerateEnrollmentReport(ctx context.Context, req EnrollmentReportRequest) (EnrollmentReport, error)
	ExportEnrollmentReportCSV(ctx context.Context, req EnrollmentReportRequest) ([]byte, error)
	ExportEmployeesCSV(ctx context.Context) ([]byte, error)
}
