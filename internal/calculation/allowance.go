package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/DougieWougie/TaxCalculator/internal/domain"
)

// AllowanceCalculator applies the high-income taper to the personal
// allowance: one pound of allowance lost for every two pounds of income
// above the threshold, so the allowance is exhausted at
// threshold + 2 x base.
type AllowanceCalculator struct {
	BaseAllowance  decimal.Decimal
	TaperThreshold decimal.Decimal
}

// NewAllowanceCalculator creates an allowance calculator from a rules set.
func NewAllowanceCalculator(rules domain.TaxYearRules) *AllowanceCalculator {
	return &AllowanceCalculator{
		BaseAllowance:  rules.PersonalAllowance,
		TaperThreshold: rules.TaperThreshold,
	}
}

// Allowance returns the tapered personal allowance for a total income.
func (ac *AllowanceCalculator) Allowance(totalIncome decimal.Decimal) decimal.Decimal {
	if totalIncome.LessThanOrEqual(ac.TaperThreshold) {
		return ac.BaseAllowance
	}
	reduction := totalIncome.Sub(ac.TaperThreshold).Div(decimal.NewFromInt(2)).Floor()
	allowance := ac.BaseAllowance.Sub(reduction)
	if allowance.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return allowance
}

// TaperExhausted returns the income at which the allowance reaches zero.
func (ac *AllowanceCalculator) TaperExhausted() decimal.Decimal {
	return ac.TaperThreshold.Add(ac.BaseAllowance.Mul(decimal.NewFromInt(2)))
}
