package domain

import "github.com/shopspring/decimal"

// TaxYearRules contains every figure that changes with the tax year:
// band tables, NI thresholds, the personal allowance and its taper, and
// the flat rates behind BR/D-series codes. Loaded from tax-rules.yaml
// when present and merged over the built-in defaults.
type TaxYearRules struct {
	Metadata          RulesMetadata            `yaml:"metadata" json:"metadata"`
	PersonalAllowance decimal.Decimal          `yaml:"personal_allowance" json:"personalAllowance"`
	TaperThreshold    decimal.Decimal          `yaml:"taper_threshold" json:"taperThreshold"`
	UKBands           []TaxBand                `yaml:"uk_bands" json:"ukBands"`
	ScottishBands     []TaxBand                `yaml:"scottish_bands" json:"scottishBands"`
	NIBands           []TaxBand                `yaml:"ni_bands" json:"niBands"`
	UKFlatRates       map[string]decimal.Decimal `yaml:"uk_flat_rates" json:"ukFlatRates"`
	ScottishFlatRates map[string]decimal.Decimal `yaml:"scottish_flat_rates" json:"scottishFlatRates"`
}

// RulesMetadata describes the provenance of a rules set.
type RulesMetadata struct {
	TaxYear     string `yaml:"tax_year" json:"taxYear"`
	LastUpdated string `yaml:"last_updated" json:"lastUpdated"`
	Description string `yaml:"description" json:"description"`
}

// BandsForRegion returns the income tax table for a region. England,
// Wales and Northern Ireland share the rUK table.
func (r TaxYearRules) BandsForRegion(region TaxRegion) []TaxBand {
	if region.UsesScottishBands() {
		return r.ScottishBands
	}
	return r.UKBands
}

// FlatRatesForRegion returns the flat-rate lookup for a region's
// BR/D-series codes.
func (r TaxYearRules) FlatRatesForRegion(region TaxRegion) map[string]decimal.Decimal {
	if region.UsesScottishBands() {
		return r.ScottishFlatRates
	}
	return r.UKFlatRates
}

// DefaultTaxYearRules returns the built-in 2024/25 rules.
//
// Band bounds tile contiguously: each Lower equals the previous Upper,
// and the taxable slice in a band is min(income, Upper) - Lower. The
// published inclusive thresholds (e.g. basic rate from 12,571) are one
// pound above the stored Lower.
func DefaultTaxYearRules() TaxYearRules {
	return TaxYearRules{
		Metadata: RulesMetadata{
			TaxYear:     "2024/25",
			LastUpdated: "2024-04-06",
			Description: "UK income tax, Scottish income tax and Class 1 employee NI",
		},
		PersonalAllowance: decimal.NewFromInt(12570),
		TaperThreshold:    decimal.NewFromInt(100000),
		UKBands: []TaxBand{
			{Name: "Personal Allowance", Lower: decimal.Zero, Upper: decimal.NewFromInt(12570), Rate: decimal.Zero},
			{Name: "Basic Rate", Lower: decimal.NewFromInt(12570), Upper: decimal.NewFromInt(50270), Rate: decimal.NewFromFloat(0.20)},
			{Name: "Higher Rate", Lower: decimal.NewFromInt(50270), Upper: decimal.NewFromInt(125140), Rate: decimal.NewFromFloat(0.40)},
			{Name: "Additional Rate", Lower: decimal.NewFromInt(125140), Rate: decimal.NewFromFloat(0.45), Unbounded: true},
		},
		ScottishBands: []TaxBand{
			{Name: "Personal Allowance", Lower: decimal.Zero, Upper: decimal.NewFromInt(12570), Rate: decimal.Zero},
			{Name: "Starter Rate", Lower: decimal.NewFromInt(12570), Upper: decimal.NewFromInt(14876), Rate: decimal.NewFromFloat(0.19)},
			{Name: "Basic Rate", Lower: decimal.NewFromInt(14876), Upper: decimal.NewFromInt(26561), Rate: decimal.NewFromFloat(0.20)},
			{Name: "Intermediate Rate", Lower: decimal.NewFromInt(26561), Upper: decimal.NewFromInt(43662), Rate: decimal.NewFromFloat(0.21)},
			{Name: "Higher Rate", Lower: decimal.NewFromInt(43662), Upper: decimal.NewFromInt(75000), Rate: decimal.NewFromFloat(0.42)},
			{Name: "Advanced Rate", Lower: decimal.NewFromInt(75000), Upper: decimal.NewFromInt(125140), Rate: decimal.NewFromFloat(0.45)},
			{Name: "Top Rate", Lower: decimal.NewFromInt(125140), Rate: decimal.NewFromFloat(0.48), Unbounded: true},
		},
		NIBands: []TaxBand{
			{Name: "Below Primary Threshold", Lower: decimal.Zero, Upper: decimal.NewFromInt(12570), Rate: decimal.Zero},
			{Name: "Main Rate", Lower: decimal.NewFromInt(12570), Upper: decimal.NewFromInt(50270), Rate: decimal.NewFromFloat(0.08)},
			{Name: "Upper Rate", Lower: decimal.NewFromInt(50270), Rate: decimal.NewFromFloat(0.02), Unbounded: true},
		},
		UKFlatRates: map[string]decimal.Decimal{
			string(TaxCodeBR): decimal.NewFromFloat(0.20),
			string(TaxCodeD0): decimal.NewFromFloat(0.40),
			string(TaxCodeD1): decimal.NewFromFloat(0.45),
		},
		ScottishFlatRates: map[string]decimal.Decimal{
			string(TaxCodeBR): decimal.NewFromFloat(0.20),
			string(TaxCodeD0): decimal.NewFromFloat(0.21),
			string(TaxCodeD1): decimal.NewFromFloat(0.42),
			string(TaxCodeD2): decimal.NewFromFloat(0.45),
			string(TaxCodeD3): decimal.NewFromFloat(0.48),
		},
	}
}
