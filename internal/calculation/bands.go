package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/DougieWougie/TaxCalculator/internal/domain"
)

// AdjustBandsForAllowance rewrites a base band table around a computed
// personal allowance. The allowance band's upper edge becomes the
// computed allowance; any band that would otherwise start inside the
// new allowance has its lower edge moved up to it. Handles both
// contraction (taper) and expansion (a code granting more than the base
// allowance) while keeping the table gapless and non-overlapping.
func AdjustBandsForAllowance(bands []domain.TaxBand, allowance, baseAllowance decimal.Decimal) []domain.TaxBand {
	adjusted := make([]domain.TaxBand, len(bands))
	for i, band := range bands {
		adjusted[i] = band
		if band.Lower.IsZero() && band.Rate.IsZero() {
			adjusted[i].Upper = allowance
			continue
		}
		if band.Lower.LessThanOrEqual(baseAllowance) || band.Lower.LessThan(allowance) {
			adjusted[i].Lower = allowance
		}
	}
	return adjusted
}

// ComputeBandedTax runs an income through an ordered band table,
// returning the total and a per-band breakdown. Bands are ascending, so
// iteration stops at the first band the income does not reach. Slices
// that collapse to nothing (a band swallowed by an expanded allowance)
// are skipped rather than emitted. Non-positive income yields a zero
// total and no rows.
func ComputeBandedTax(income decimal.Decimal, bands []domain.TaxBand) (decimal.Decimal, []domain.BandBreakdown) {
	if income.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil
	}

	total := decimal.Zero
	var breakdown []domain.BandBreakdown
	for _, band := range bands {
		if income.LessThanOrEqual(band.Lower) {
			break
		}
		taxable := band.UpperFor(income).Sub(band.Lower)
		if taxable.LessThanOrEqual(decimal.Zero) {
			continue
		}
		tax := taxable.Mul(band.Rate)
		total = total.Add(tax)
		breakdown = append(breakdown, domain.BandBreakdown{
			Band:    band.Name,
			Taxable: taxable,
			Rate:    band.Rate,
			Tax:     tax,
		})
	}
	return total, breakdown
}

// NICalculator computes employee Class 1 National Insurance. NI has no
// personal allowance concept, so its table is never adjusted.
type NICalculator struct {
	Bands []domain.TaxBand
}

// NewNICalculator creates an NI calculator from a rules set.
func NewNICalculator(rules domain.TaxYearRules) *NICalculator {
	return &NICalculator{Bands: rules.NIBands}
}

// CalculateNI returns total NI and a per-band breakdown for an
// employment income. The second income stream never passes through
// here: pensions in payment are NI-exempt.
func (nc *NICalculator) CalculateNI(income decimal.Decimal) (decimal.Decimal, []domain.BandBreakdown) {
	return ComputeBandedTax(income, nc.Bands)
}
