package postgresql

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/medibridge/enroll-backend-go/internal/domain/enrollment"
	"github.com/medibridge/enroll-backend-go/internal/domain/report"
	"github.com/medibridge/enroll-backend-go/internal/pkg/database"
)

const dateLayout = "2006-01-02"

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// GetDashboardStats implements report.ReportRepository.
func (r *reportRepositoryImpl) GetDashboardStats(ctx context.Context) (report.DashboardStats, error) {
	q := GetQuerier(ctx, r.db)

	var stats report.DashboardStats

	summaryQuery := `
		SELECT COUNT(*) AS total,
			COUNT(*) FILTER (WHERE enrolled) AS enrolled,
			COUNT(*) FILTER (WHERE NOT enrolled) AS pending
		FROM employees
		WHERE role = 'employee'
	`
	err := q.QueryRow(ctx, summaryQuery).Scan(&stats.TotalEmployees, &stats.EnrolledEmployees, &stats.PendingEmployees)
	if err != nil {
		return report.DashboardStats{}, err
	}
	if stats.TotalEmployees > 0 {
		stats.EnrollmentRate = float64(stats.EnrolledEmployees) / float64(stats.TotalEmployees) * 100
	}

	deptQuery := `
		SELECT COALESCE(department, 'Unassigned') AS department,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE enrolled) AS enrolled,
			COUNT(*) FILTER (WHERE NOT enrolled) AS pending
		FROM employees
		WHERE role = 'employee'
		GROUP BY COALESCE(department, 'Unassigned')
		ORDER BY department
	`
	rows, err := q.Query(ctx, deptQuery)
	if err != nil {
		return report.DashboardStats{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var dept report.DepartmentStats
		if err := rows.Scan(&dept.Department, &dept.Total, &dept.Enrolled, &dept.Pending); err != nil {
			return report.DashboardStats{}, err
		}
		if dept.Total > 0 {
			dept.EnrollmentRate = float64(dept.Enrolled) / float64(dept.Total) * 100
		}
		stats.Departments = append(stats.Departments, dept)
	}

	if err = rows.Err(); err != nil {
		return report.DashboardStats{}, err
	}

	return stats, nil
}

// GetEnrollmentReportRows implements report.ReportRepository. It loads every
// employee with the frozen premium figures from their enrollment, then fans
// out the dependents in two follow-up queries keyed by employee ID.
func (r *reportRepositoryImpl) GetEnrollmentReportRows(ctx context.Context, batchID *string) ([]report.EnrollmentReportRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.emp_id, e.name, e.email, e.dob, e.gender, e.mobile,
			e.joining_date, COALESCE(e.department, ''), COALESCE(e.designation, ''),
			e.policy_start, e.policy_end, e.enrollment_due_date, e.enrollment_status, e.batch_id,
			en.id, en.parental_coverage_selected, en.parental_coverage_type,
			en.main_policy_premium, en.parental_policy_premium, en.gst_amount,
			en.total_premium, en.pro_rata_factor
		FROM employees e
		LEFT JOIN enrollments en ON en.employee_id = e.id
		WHERE e.role = 'employee'
	`
	args := []interface{}{}
	if batchID != nil {
		query += ` AND e.batch_id = $1`
		args = append(args, *batchID)
	}
	query += ` ORDER BY e.emp_id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []report.EnrollmentReportRow
	index := map[string]int{}
	for rows.Next() {
		var (
			row               report.EnrollmentReportRow
			dob, joining      time.Time
			policyStart       time.Time
			policyEnd         time.Time
			enrollmentDueDate *time.Time
			coverageSelected  *bool
			coverageType      *string
			mainPremium       *decimal.Decimal
			parentalPremium   *decimal.Decimal
			gstAmount         *decimal.Decimal
			totalPremium      *decimal.Decimal
			proRataFactor     *decimal.Decimal
		)
		err := rows.Scan(
			&row.EmployeeID, &row.EmpID, &row.Name, &row.Email, &dob, &row.Gender,
			&row.Mobile, &joining, &row.Department, &row.Designation,
			&policyStart, &policyEnd, &enrollmentDueDate, &row.EnrollmentStatus, &row.BatchID,
			&row.EnrollmentID, &coverageSelected, &coverageType,
			&mainPremium, &parentalPremium, &gstAmount, &totalPremium, &proRataFactor,
		)
		if err != nil {
			return nil, err
		}

		row.DOB = dob.Format(dateLayout)
		row.JoiningDate = joining.Format(dateLayout)
		row.PolicyStart = policyStart.Format(dateLayout)
		row.PolicyEnd = policyEnd.Format(dateLayout)
		if enrollmentDueDate != nil {
			row.EnrollmentDueDate = enrollmentDueDate.Format(dateLayout)
		}
		if coverageSelected != nil {
			row.CoverageSelected = *coverageSelected
		}
		if coverageType != nil {
			row.CoverageType = *coverageType
		}
		if mainPremium != nil {
			row.MainPolicyPremium = mainPremium.InexactFloat64()
		}
		if parentalPremium != nil {
			row.ParentalPolicyPremium = parentalPremium.InexactFloat64()
		}
		if gstAmount != nil {
			row.GSTAmount = gstAmount.InexactFloat64()
		}
		if totalPremium != nil {
			row.TotalPremium = totalPremium.InexactFloat64()
			row.MonthlyDeduction = totalPremium.DivRound(decimal.NewFromInt(12), 0).InexactFloat64()
		}
		if proRataFactor != nil {
			row.ProRataFactor = proRataFactor.InexactFloat64()
		}

		index[row.EmployeeID] = len(result)
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return result, nil
	}

	now := time.Now()
	attach := func(query string, kind report.DependentKind) error {
		depRows, err := q.Query(ctx, query)
		if err != nil {
			return err
		}
		defer depRows.Close()

		for depRows.Next() {
			var (
				employeeID string
				dep        report.ReportDependent
				dob        time.Time
			)
			if err := depRows.Scan(&employeeID, &dep.Name, &dep.Relation, &dob, &dep.Gender); err != nil {
				return err
			}
			i, ok := index[employeeID]
			if !ok {
				continue
			}
			dep.Kind = kind
			dep.DOB = dob.Format(dateLayout)
			dep.Age = enrollment.Age(dob, now)
			result[i].Dependents = append(result[i].Dependents, dep)
		}
		return depRows.Err()
	}

	familyQuery := `
		SELECT employee_id, name, relationship, dob, gender
		FROM family_members
		ORDER BY employee_id, created_at
	`
	if err := attach(familyQuery, report.DependentKindFamily); err != nil {
		return nil, err
	}

	parentQuery := `
		SELECT employee_id, name, relationship, dob, gender
		FROM parents
		ORDER BY employee_id, created_at
	`
	if err := attach(parentQuery, report.DependentKindParent); err != nil {
		return nil, err
	}

	return result, nil
}
