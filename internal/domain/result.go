package domain

import "github.com/shopspring/decimal"

// CalculationResult is the flat aggregate of every derived figure for a
// single calculation. It is a pure function of CalculationInput: no
// identity, no lifecycle beyond single-call construction. All figures
// are annual unless the field name says otherwise.
type CalculationResult struct {
	// Input echoes
	GrossSalary     decimal.Decimal `json:"grossSalary"`
	SecondIncome    decimal.Decimal `json:"secondIncome"`
	Region          TaxRegion       `json:"region"`
	SalarySacrifice decimal.Decimal `json:"salarySacrifice"`

	// Pre-tax position
	TaxableIncome      decimal.Decimal `json:"taxableIncome"`      // employment income after sacrifice and pension
	TotalTaxableIncome decimal.Decimal `json:"totalTaxableIncome"` // employment taxable plus second income
	PersonalAllowance  decimal.Decimal `json:"personalAllowance"`

	// Income tax
	EmploymentTax   decimal.Decimal `json:"employmentTax"`
	SecondIncomeTax decimal.Decimal `json:"secondIncomeTax"`
	TotalTax        decimal.Decimal `json:"totalTax"`

	// National Insurance (employment income only)
	NationalInsurance decimal.Decimal `json:"nationalInsurance"`

	// Pension
	PensionContribution decimal.Decimal `json:"pensionContribution"`
	EmployerPension     decimal.Decimal `json:"employerPension"`
	// PensionTaxRelief is the tax plus NI avoided compared with taking
	// the sacrificed amounts as salary. Display figure only.
	PensionTaxRelief decimal.Decimal `json:"pensionTaxRelief"`

	// Net position
	PostTaxDeductions decimal.Decimal `json:"postTaxDeductions"`
	NetIncome         decimal.Decimal `json:"netIncome"`

	// Monthly figures (annual / 12)
	MonthlyGross decimal.Decimal `json:"monthlyGross"`
	MonthlyNet   decimal.Decimal `json:"monthlyNet"`
	MonthlyTax   decimal.Decimal `json:"monthlyTax"`
	MonthlyNI    decimal.Decimal `json:"monthlyNI"`

	// Derived rates
	EffectiveTaxRate decimal.Decimal `json:"effectiveTaxRate"`
	MarginalTaxRate  decimal.Decimal `json:"marginalTaxRate"`

	// Breakdowns
	CombinedTaxBands     []BandBreakdown `json:"combinedTaxBands"`
	EmploymentTaxBands   []BandBreakdown `json:"employmentTaxBands"`
	SecondIncomeTaxBands []BandBreakdown `json:"secondIncomeTaxBands"`
	NIBands              []BandBreakdown `json:"niBands"`

	// Resolved tax codes
	TaxCodeUsed       TaxCodeInfo `json:"taxCodeUsed"`
	SecondTaxCodeUsed TaxCodeInfo `json:"secondTaxCodeUsed"`
}
