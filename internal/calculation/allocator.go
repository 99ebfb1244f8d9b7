package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/DougieWougie/TaxCalculator/internal/domain"
)

// TaxWithCode computes the income tax for a single income stream under
// a parsed tax code. The code resolves to one of five strategies:
//
//	NT          no tax, one labelled row
//	BR/D0..D3   one flat rate over the whole income
//	K           K adjustment added to income, banded with no allowance
//	0T          banded with no allowance
//	cumulative  banded with the code's own allowance
//
// A Scottish-prefixed code always selects Scottish tables, overriding
// the caller's region.
func (e *Engine) TaxWithCode(income decimal.Decimal, code domain.TaxCodeInfo, region domain.TaxRegion) (decimal.Decimal, []domain.BandBreakdown) {
	if income.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil
	}

	if code.IsScottish {
		region = domain.RegionScotland
	}
	bands := e.Rules.BandsForRegion(region)

	switch {
	case code.Type == domain.TaxCodeNT:
		return decimal.Zero, []domain.BandBreakdown{{
			Band:    "No Tax (NT)",
			Taxable: income,
			Rate:    decimal.Zero,
			Tax:     decimal.Zero,
		}}

	case code.Type.IsFlatRate():
		rate := FlatRateFor(code.Type, region, e.Rules)
		tax := income.Mul(rate)
		return tax, []domain.BandBreakdown{{
			Band:    fmt.Sprintf("Flat Rate (%s)", code.Type),
			Taxable: income,
			Rate:    rate,
			Tax:     tax,
		}}

	case code.Type == domain.TaxCodeK:
		adjusted := AdjustBandsForAllowance(bands, decimal.Zero, e.Rules.PersonalAllowance)
		return ComputeBandedTax(income.Add(code.KAdjustment), adjusted)

	case code.Type == domain.TaxCodeZeroT:
		adjusted := AdjustBandsForAllowance(bands, decimal.Zero, e.Rules.PersonalAllowance)
		return ComputeBandedTax(income, adjusted)

	default:
		adjusted := AdjustBandsForAllowance(bands, code.PersonalAllowance, e.Rules.PersonalAllowance)
		return ComputeBandedTax(income, adjusted)
	}
}

// effectiveCodeAllowance is the allowance a code grants for reporting
// purposes: a cumulative code's own figure, zero for everything else.
func effectiveCodeAllowance(code domain.TaxCodeInfo) decimal.Decimal {
	if code.Type == domain.TaxCodeCumulative {
		return code.PersonalAllowance
	}
	return decimal.Zero
}
