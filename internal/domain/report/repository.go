package report

import "context"

type ReportRepository interface {
	GetDashboardStats(ctx context.Context) (DashboardStats, error)
	GetEnrollmentReportRows(ctx context.Context, batchID *string) ([]EnrollmentReportRow, error)
}
