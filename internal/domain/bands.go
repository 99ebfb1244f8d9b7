package domain

import "github.com/shopspring/decimal"

// TaxBand is a single rate band of a regional table. Bands are ordered
// ascending by Lower and tile [0, inf): each band's Lower equals the
// previous band's Upper, so the taxable slice in a band is
// min(income, Upper) - Lower. The final band of a table is unbounded.
type TaxBand struct {
	Name      string          `yaml:"name" json:"name"`
	Lower     decimal.Decimal `yaml:"lower" json:"lower"`
	Upper     decimal.Decimal `yaml:"upper" json:"upper"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	Unbounded bool            `yaml:"unbounded,omitempty" json:"unbounded,omitempty"`
}

// UpperFor returns the effective upper edge of the band for a given
// income, treating an unbounded band as extending to the income itself.
func (b TaxBand) UpperFor(income decimal.Decimal) decimal.Decimal {
	if b.Unbounded {
		return income
	}
	return decimal.Min(income, b.Upper)
}

// Contains reports whether income falls inside this band
// (Lower exclusive, Upper inclusive).
func (b TaxBand) Contains(income decimal.Decimal) bool {
	if income.LessThanOrEqual(b.Lower) {
		return false
	}
	return b.Unbounded || income.LessThanOrEqual(b.Upper)
}

// BandBreakdown is one row of a banded tax or NI computation.
type BandBreakdown struct {
	Band    string          `json:"band"`
	Taxable decimal.Decimal `json:"taxable"`
	Rate    decimal.Decimal `json:"rate"`
	Tax     decimal.Decimal `json:"tax"`
}
