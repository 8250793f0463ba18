package enrollment

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/medibridge/enroll-backend-go/internal/domain/enrollment"
)

// Insurer rate card for the voluntary parental policy. The double rate is
// charged for any count of two or more covered parents.
var (
	RateSingleParent = decimal.NewFromInt(36203)
	RateDoubleParent = decimal.NewFromInt(72407)
	GSTRate          = decimal.NewFromFloat(0.18)
)

// PolicyYearDays is the fixed pro-ration denominator. It stays 365 in leap
// years so that premiums stay comparable across policy years.
const PolicyYearDays = 365

// BaseParentalPremium returns the annual rate for the given parent count.
// Zero parents cost nothing; one costs the single rate; two or more the
// double rate.
func BaseParentalPremium(parentCount int) decimal.Decimal {
	switch {
	case parentCount <= 0:
		return decimal.Zero
	case parentCount == 1:
		return RateSingleParent
	default:
		return RateDoubleParent
	}
}

// RemainingPolicyDays counts the days from joining to the policy end,
// inclusive of both endpoints. Partial days round up. An employee joining
// after the policy end gets zero.
func RemainingPolicyDays(joiningDate, policyEnd time.Time) int {
	diff := policyEnd.Sub(joiningDate).Hours() / 24
	days := int(math.Ceil(diff)) + 1
	if days < 0 {
		return 0
	}
	return days
}

// CalculateProRataPremium pro-rates the annual base premium over the days the
// employee is actually covered. The factor is remaining days over the fixed
// 365-day policy year and is deliberately not capped at 1: an employee who
// joined before the policy start pays slightly over the annual rate, matching
// the insurer's invoicing.
func CalculateProRataPremium(base decimal.Decimal, joiningDate, policyStart, policyEnd time.Time) enrollment.ProRataCalculation {
	remainingDays := RemainingPolicyDays(joiningDate, policyEnd)
	totalPolicyDays := int(math.Ceil(policyEnd.Sub(policyStart).Hours() / 24))

	factor := decimal.NewFromInt(int64(remainingDays)).Div(decimal.NewFromInt(PolicyYearDays))

	return enrollment.ProRataCalculation{
		BasePremium:     base,
		ProRatedPremium: base.Mul(factor),
		Factor:          factor,
		RemainingDays:   remainingDays,
		TotalPolicyDays: totalPolicyDays,
	}
}

// CalculatePremiumBreakdown is the full quote for a parental coverage
// selection. GST is computed on the unrounded pro-rated premium; the total is
// rounded once at the end, and the monthly deduction is the rounded total
// split over twelve months. With no parents everything is zero, including
// the factor.
func CalculatePremiumBreakdown(parentCount int, joiningDate, policyStart, policyEnd time.Time) enrollment.PremiumBreakdown {
	if parentCount <= 0 {
		return enrollment.PremiumBreakdown{Description: "No parental coverage selected"}
	}

	base := BaseParentalPremium(parentCount)
	proRata := CalculateProRataPremium(base, joiningDate, policyStart, policyEnd)

	gst := proRata.ProRatedPremium.Mul(GSTRate)
	total := proRata.ProRatedPremium.Add(gst).Round(0)
	monthly := total.Div(decimal.NewFromInt(12)).Round(0)

	description := "1 parent coverage"
	if parentCount > 1 {
		description = fmt.Sprintf("%d parents coverage", parentCount)
	}

	return enrollment.PremiumBreakdown{
		Description:      description,
		BasePremium:      base,
		ProRatedPremium:  proRata.ProRatedPremium,
		GST:              gst.Round(2),
		Total:            total,
		MonthlyDeduction: monthly,
		Factor:           proRata.Factor,
		RemainingDays:    proRata.RemainingDays,
	}
}

// PolicyYearLabel renders the policy window as a display label: "2024" when
// the window opens and closes in one calendar year, "2024-25" otherwise.
func PolicyYearLabel(policyStart, policyEnd time.Time) string {
	startYear := policyStart.Year()
	endYear := policyEnd.Year()
	if startYear == endYear {
		return fmt.Sprintf("%d", startYear)
	}
	return fmt.Sprintf("%d-%02d", startYear, endYear%100)
}
