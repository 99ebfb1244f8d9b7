package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/DougieWougie/TaxCalculator/internal/domain"
)

// FlatRateFor resolves the single rate a flat-rate tax code applies to
// the whole of an income. NT is always zero. Any code type without a
// flat-rate meaning in the region's table resolves to zero; valid
// inputs of other types never reach that default.
func FlatRateFor(codeType domain.TaxCodeType, region domain.TaxRegion, rules domain.TaxYearRules) decimal.Decimal {
	if codeType == domain.TaxCodeNT {
		return decimal.Zero
	}
	if !codeType.IsFlatRate() {
		return decimal.Zero
	}
	if rate, ok := rules.FlatRatesForRegion(region)[string(codeType)]; ok {
		return rate
	}
	return decimal.Zero
}
