package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibridge/enroll-backend-go/internal/domain/batch"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"iso date", "2024-06-15", "2024-06-15", false},
		{"day first slashes", "15/06/2024", "2024-06-15", false},
		{"month first fallback", "06/25/2024", "2024-06-25", false},
		{"day first dashes", "15-06-2024", "2024-06-15", false},
		{"slash iso", "2024/06/15", "2024-06-15", false},
		{"padded", "  2024-06-15  ", "2024-06-15", false},
		{"ambiguous resolves day first", "05/06/2024", "2024-06-05", false},
		{"empty", "", "", true},
		{"garbage", "June 15th", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

const validRoster = `emp_id,name,email,date_of_birth,gender,mobile,joining_date,policy_start,policy_end,department,salary
EMP001,Jane Doe,jane@acme.test,1990-03-12,Female,9876543210,15/06/2024,2024-04-01,2025-03-31,Engineering,1200000
EMP002,John Roe,john@acme.test,1988-11-02,Male,9876501234,2024-07-01,2024-04-01,2025-03-31,,
`

func TestParseRoster(t *testing.T) {
	rows, err := ParseRoster([]byte(validRoster))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].Row)
	assert.Equal(t, "EMP001", rows[0].EmpID)
	assert.Equal(t, "15/06/2024", rows[0].JoiningDate)
	assert.Equal(t, "Engineering", rows[0].Department)
	assert.Equal(t, "1200000", rows[0].Salary)

	assert.Equal(t, 2, rows[1].Row)
	assert.Empty(t, rows[1].Department)
	assert.Empty(t, rows[1].Salary)
}

func TestParseRosterHeaderAliases(t *testing.T) {
	roster := "Employee ID,Full Name,Email Address,DOB,Gender,Mobile Number,Date Of Joining,Policy Start,Policy End\n" +
		"EMP003,Mary Major,mary@acme.test,1975-01-20,Female,9876540000,2024-05-01,2024-04-01,2025-03-31\n"

	rows, err := ParseRoster([]byte(roster))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "EMP003", rows[0].EmpID)
	assert.Equal(t, "Mary Major", rows[0].Name)
	assert.Equal(t, "1975-01-20", rows[0].DOB)
	assert.Equal(t, "2024-05-01", rows[0].JoiningDate)
}

func TestParseRosterMissingColumn(t *testing.T) {
	roster := "emp_id,name,email\nEMP001,Jane Doe,jane@acme.test\n"

	_, err := ParseRoster([]byte(roster))
	assert.ErrorIs(t, err, batch.ErrMissingColumns)
}

func TestParseRosterEmpty(t *testing.T) {
	_, err := ParseRoster([]byte(""))
	assert.ErrorIs(t, err, batch.ErrEmptyRoster)

	headerOnly := "emp_id,name,email,date_of_birth,gender,mobile,joining_date,policy_start,policy_end\n"
	_, err = ParseRoster([]byte(headerOnly))
	assert.ErrorIs(t, err, batch.ErrEmptyRoster)
}

func TestRowToCreateRequestNormalizesDates(t *testing.T) {
	row := RosterRow{
		Row:         1,
		EmpID:       "EMP001",
		Name:        "Jane Doe",
		Email:       "jane@acme.test",
		DOB:         "12/03/1990",
		Gender:      "Female",
		Mobile:      "9876543210",
		JoiningDate: "15/06/2024",
		PolicyStart: "2024-04-01",
		PolicyEnd:   "2025-03-31",
		Salary:      "1200000",
	}

	req, err := rowToCreateRequest(row)
	require.NoError(t, err)
	assert.Equal(t, "1990-03-12", req.DOB)
	assert.Equal(t, "2024-06-15", req.JoiningDate)
	require.NotNil(t, req.Salary)
	assert.Equal(t, 1200000.0, *req.Salary)
	require.NoError(t, req.Validate())
}

func TestRowToCreateRequestBadDate(t *testing.T) {
	row := RosterRow{
		Row:         1,
		EmpID:       "EMP001",
		Name:        "Jane Doe",
		Email:       "jane@acme.test",
		DOB:         "yesterday",
		Gender:      "Female",
		Mobile:      "9876543210",
		JoiningDate: "15/06/2024",
		PolicyStart: "2024-04-01",
		PolicyEnd:   "2025-03-31",
	}

	_, err := rowToCreateRequest(row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date_of_birth")
}

func TestRowToCreateRequestBadSalary(t *testing.T) {
	row := RosterRow{
		Row:         1,
		EmpID:       "EMP001",
		Name:        "Jane Doe",
		Email:       "jane@acme.test",
		DOB:         "1990-03-12",
		Gender:      "Female",
		Mobile:      "9876543210",
		JoiningDate: "2024-06-15",
		PolicyStart: "2024-04-01",
		PolicyEnd:   "2025-03-31",
		Salary:      "12,00,000",
	}

	_, err := rowToCreateRequest(row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "salary")
}
