package batch

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/medibridge/enroll-backend-go/internal/domain/batch"
)

// RosterRow is one parsed data row, with the original spreadsheet row number
// for error reporting (1-based, header excluded).
type RosterRow struct {
	Row               int
	EmpID             string
	Name              string
	Email             string
	DOB               string
	Gender            string
	Mobile            string
	JoiningDate       string
	PolicyStart       string
	PolicyEnd         string
	Department        string
	Designation       string
	Salary            string
	EnrollmentDueDate string
}

var requiredColumns = []string{
	"emp_id", "name", "email", "date_of_birth", "gender", "mobile",
	"joining_date", "policy_start", "policy_end",
}

// columnAliases maps the header spellings HR teams actually produce onto the
// canonical column names.
var columnAliases = map[string]string{
	"employee_id":       "emp_id",
	"employee_code":     "emp_id",
	"full_name":         "name",
	"employee_name":     "name",
	"email_address":     "email",
	"dob":               "date_of_birth",
	"birth_date":        "date_of_birth",
	"mobile_number":     "mobile",
	"phone":             "mobile",
	"phone_number":      "mobile",
	"date_of_joining":   "joining_date",
	"policy_start_date": "policy_start",
	"policy_end_date":   "policy_end",
	"due_date":          "enrollment_due_date",
}

func normalizeHeader(header string) string {
	normalized := strings.ToLower(strings.TrimSpace(header))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")
	if canonical, ok := columnAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// NormalizeDate converts the date spellings found in roster files to
// YYYY-MM-DD. Slash dates are read day-first; month-first is the fallback
// for dates that only parse that way.
func NormalizeDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("empty date")
	}

	layouts := []string{"2006-01-02", "02/01/2006", "01/02/2006", "02-01-2006", "2006/01/02"}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unrecognized date format: %q", value)
}

// ParseRoster reads a CSV roster into rows. It fails fast on a missing
// required column or an empty file; per-row problems are left to the caller.
func ParseRoster(csvData []byte) ([]RosterRow, error) {
	reader := csv.NewReader(bytes.NewReader(csvData))
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, batch.ErrEmptyRoster
	}

	columnIndex := map[string]int{}
	for i, header := range records[0] {
		columnIndex[normalizeHeader(header)] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columnIndex[required]; !ok {
			return nil, fmt.Errorf("%w: %s", batch.ErrMissingColumns, required)
		}
	}

	if len(records) == 1 {
		return nil, batch.ErrEmptyRoster
	}

	field := func(record []string, column string) string {
		i, ok := columnIndex[column]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	rows := make([]RosterRow, 0, len(records)-1)
	for i, record := range records[1:] {
		rows = append(rows, RosterRow{
			Row:               i + 1,
			EmpID:             field(record, "emp_id"),
			Name:              field(record, "name"),
			Email:             field(record, "email"),
			DOB:               field(record, "date_of_birth"),
			Gender:            field(record, "gender"),
			Mobile:            field(record, "mobile"),
			JoiningDate:       field(record, "joining_date"),
			PolicyStart:       field(record, "policy_start"),
			PolicyEnd:         field(record, "policy_end"),
			Department:        field(record, "department"),
			Designation:       field(record, "designation"),
			Salary:            field(record, "salary"),
			EnrollmentDueDate: field(record, "enrollment_due_date"),
		})
	}
	return rows, nil
}
