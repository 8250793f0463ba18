package enrollment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestBaseParentalPremium(t *testing.T) {
	tests := []struct {
		name        string
		parentCount int
		want        decimal.Decimal
	}{
		{"no parents", 0, decimal.Zero},
		{"one parent", 1, decimal.NewFromInt(36203)},
		{"two parents", 2, decimal.NewFromInt(72407)},
		{"count above two still charges double rate", 3, decimal.NewFromInt(72407)},
		{"negative count", -1, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BaseParentalPremium(tt.parentCount)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestRemainingPolicyDays(t *testing.T) {
	tests := []struct {
		name      string
		joining   time.Time
		policyEnd time.Time
		want      int
	}{
		{"mid-year joining", date(2024, time.June, 15), date(2025, time.March, 31), 290},
		{"joining on policy end", date(2025, time.March, 31), date(2025, time.March, 31), 1},
		{"joining after policy end", date(2025, time.June, 1), date(2025, time.March, 31), 0},
		{"full policy year", date(2024, time.April, 1), date(2025, time.March, 31), 365},
		{"joining before policy start", date(2024, time.March, 1), date(2025, time.March, 31), 396},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemainingPolicyDays(tt.joining, tt.policyEnd))
		})
	}
}

func TestCalculateProRataPremiumFactorNotCapped(t *testing.T) {
	// Joining a month before the policy opens yields a factor above 1.
	calc := CalculateProRataPremium(
		decimal.NewFromInt(36203),
		date(2024, time.March, 1),
		date(2024, time.April, 1),
		date(2025, time.March, 31),
	)

	assert.True(t, calc.Factor.GreaterThan(decimal.NewFromInt(1)), "factor %s should exceed 1", calc.Factor)
	assert.Equal(t, 396, calc.RemainingDays)
	assert.Equal(t, 364, calc.TotalPolicyDays)
}

func TestCalculatePremiumBreakdownTwoParents(t *testing.T) {
	breakdown := CalculatePremiumBreakdown(
		2,
		date(2024, time.June, 15),
		date(2024, time.April, 1),
		date(2025, time.March, 31),
	)

	assert.Equal(t, "2 parents coverage", breakdown.Description)
	assert.True(t, decimal.NewFromInt(72407).Equal(breakdown.BasePremium))
	assert.Equal(t, 290, breakdown.RemainingDays)

	wantFactor := decimal.NewFromInt(290).Div(decimal.NewFromInt(365))
	assert.True(t, wantFactor.Equal(breakdown.Factor))

	// 72407 * 290/365 = 57528.8493..., GST 18% = 10355.1928...
	require.InDelta(t, 57528.8493, breakdown.ProRatedPremium.InexactFloat64(), 0.001)
	require.InDelta(t, 10355.19, breakdown.GST.InexactFloat64(), 0.001)

	// Total is rounded once, after adding unrounded GST.
	assert.True(t, decimal.NewFromInt(67884).Equal(breakdown.Total), "total %s", breakdown.Total)
	assert.True(t, decimal.NewFromInt(5657).Equal(breakdown.MonthlyDeduction), "monthly %s", breakdown.MonthlyDeduction)
}

func TestCalculatePremiumBreakdownOneParentFullYear(t *testing.T) {
	breakdown := CalculatePremiumBreakdown(
		1,
		date(2024, time.April, 1),
		date(2024, time.April, 1),
		date(2025, time.March, 31),
	)

	assert.Equal(t, "1 parent coverage", breakdown.Description)
	assert.True(t, decimal.NewFromInt(36203).Equal(breakdown.BasePremium))
	assert.Equal(t, 365, breakdown.RemainingDays)
	assert.True(t, decimal.NewFromInt(1).Equal(breakdown.Factor))

	// Full year: pro-rated equals base, total = 36203 * 1.18 = 42719.54 -> 42720.
	assert.True(t, decimal.NewFromInt(36203).Equal(breakdown.ProRatedPremium))
	assert.True(t, decimal.NewFromInt(42720).Equal(breakdown.Total), "total %s", breakdown.Total)
	assert.True(t, decimal.NewFromInt(3560).Equal(breakdown.MonthlyDeduction), "monthly %s", breakdown.MonthlyDeduction)
}

func TestCalculatePremiumBreakdownNoParents(t *testing.T) {
	breakdown := CalculatePremiumBreakdown(
		0,
		date(2024, time.June, 15),
		date(2024, time.April, 1),
		date(2025, time.March, 31),
	)

	assert.Equal(t, "No parental coverage selected", breakdown.Description)
	assert.True(t, breakdown.BasePremium.IsZero())
	assert.True(t, breakdown.ProRatedPremium.IsZero())
	assert.True(t, breakdown.GST.IsZero())
	assert.True(t, breakdown.Total.IsZero())
	assert.True(t, breakdown.MonthlyDeduction.IsZero())
	assert.True(t, breakdown.Factor.IsZero())
	assert.Equal(t, 0, breakdown.RemainingDays)
}

func TestCalculatePremiumBreakdownJoiningAfterPolicyEnd(t *testing.T) {
	breakdown := CalculatePremiumBreakdown(
		2,
		date(2025, time.June, 1),
		date(2024, time.April, 1),
		date(2025, time.March, 31),
	)

	// Zero remaining days pro-rates everything to zero, base rate stays.
	assert.Equal(t, 0, breakdown.RemainingDays)
	assert.True(t, decimal.NewFromInt(72407).Equal(breakdown.BasePremium))
	assert.True(t, breakdown.ProRatedPremium.IsZero())
	assert.True(t, breakdown.Total.IsZero())
}

func TestPolicyYearLabel(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  string
	}{
		{"cross-year window", date(2024, time.April, 1), date(2025, time.March, 31), "2024-25"},
		{"single-year window", date(2024, time.January, 1), date(2024, time.December, 31), "2024"},
		{"decade rollover", date(2029, time.April, 1), date(2030, time.March, 31), "2029-30"},
		{"century padding", date(2099, time.April, 1), date(2100, time.March, 31), "2099-00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PolicyYearLabel(tt.start, tt.end))
		})
	}
}
