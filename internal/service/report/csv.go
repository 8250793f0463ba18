package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/medibridge/enroll-backend-go/internal/domain/report"
)

// Dates in exported files use the insurer's display convention.
const exportDateLayout = "02/Jan/2006"

func reformatDate(isoDate string) string {
	if isoDate == "" {
		return ""
	}
	parsed, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return parsed.Format(exportDateLayout)
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// renderEnrollmentReportCSV writes one Employee line per employee followed by
// one Dependent line per covered person, the layout insurers expect for
// policy issuance.
func renderEnrollmentReportCSV(rows []report.EnrollmentReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Record Type", "Emp ID", "Name", "Relationship", "Gender", "Date of Birth",
		"Age", "Mobile", "Department", "Designation", "Joining Date",
		"Policy Start", "Policy End", "Enrollment Status", "Parental Coverage",
		"Pro-Rata Factor", "Parental Premium", "GST", "Total Premium", "Monthly Deduction",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range rows {
		coverage := "No"
		if row.CoverageSelected {
			coverage = "Yes (" + row.CoverageType + ")"
		}
		record := []string{
			"Employee",
			row.EmpID,
			row.Name,
			"Self",
			row.Gender,
			reformatDate(row.DOB),
			"",
			row.Mobile,
			row.Department,
			row.Designation,
			reformatDate(row.JoiningDate),
			reformatDate(row.PolicyStart),
			reformatDate(row.PolicyEnd),
			row.EnrollmentStatus,
			coverage,
			fmt.Sprintf("%.2f%%", row.ProRataFactor*100),
			formatAmount(row.ParentalPolicyPremium),
			formatAmount(row.GSTAmount),
			formatAmount(row.TotalPremium),
			formatAmount(row.MonthlyDeduction),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}

		for _, dep := range row.Dependents {
			record := []string{
				"Dependent",
				row.EmpID,
				dep.Name,
				dep.Relation,
				dep.Gender,
				reformatDate(dep.DOB),
				strconv.Itoa(dep.Age),
				"", "", "", "", "", "", "", "", "", "", "", "", "",
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderEmployeesCSV is the flat roster export, one line per employee with a
// dependent count instead of dependent lines.
func renderEmployeesCSV(rows []report.EnrollmentReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Emp ID", "Name", "Email", "Gender", "Date of Birth", "Mobile",
		"Department", "Designation", "Joining Date", "Policy Start", "Policy End",
		"Enrollment Due Date", "Enrollment Status", "Dependents", "Total Premium", "Monthly Deduction",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range rows {
		record := []string{
			row.EmpID,
			row.Name,
			row.Email,
			row.Gender,
			reformatDate(row.DOB),
			row.Mobile,
			row.Department,
			row.Designation,
			reformatDate(row.JoiningDate),
			reformatDate(row.PolicyStart),
			reformatDate(row.PolicyEnd),
			reformatDate(row.EnrollmentDueDate),
			row.EnrollmentStatus,
			strconv.Itoa(len(row.Dependents)),
			formatAmount(row.TotalPremium),
			formatAmount(row.MonthlyDeduction),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
