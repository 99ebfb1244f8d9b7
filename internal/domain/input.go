package domain

import "github.com/shopspring/decimal"

// PostTaxDeduction is a named amount taken from net pay after tax and
// NI. The engine sums deductions but is otherwise indifferent to them.
type PostTaxDeduction struct {
	Name   string          `yaml:"name" json:"name"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// CalculationInput is the full parameter set for one take-home
// calculation. All amounts are annual. The only implied default is that
// an absent or invalid tax code means standard rules apply.
type CalculationInput struct {
	// GrossSalary is the annual employment salary before any
	// deductions.
	GrossSalary decimal.Decimal `yaml:"gross_salary" json:"grossSalary"`

	// SalarySacrifice is an explicit pre-tax reduction of gross pay
	// (childcare vouchers, cycle schemes and the like).
	SalarySacrifice decimal.Decimal `yaml:"salary_sacrifice" json:"salarySacrifice"`

	// PensionContribution is the employee's salary-sacrifice pension
	// contribution; it reduces pre-tax pay identically to
	// SalarySacrifice.
	PensionContribution decimal.Decimal `yaml:"pension_contribution" json:"pensionContribution"`

	// EmployerPension is informational only and never affects tax.
	EmployerPension decimal.Decimal `yaml:"employer_pension" json:"employerPension"`

	// SecondIncome is an optional second income stream, typically a
	// pension in payment. It is taxed but never attracts NI.
	SecondIncome decimal.Decimal `yaml:"second_income" json:"secondIncome"`

	// Region selects the ambient tax tables. A Scottish-prefixed tax
	// code overrides this for the income it covers.
	Region TaxRegion `yaml:"region" json:"region"`

	// TaxCode is the raw employment tax code, may be empty.
	TaxCode string `yaml:"tax_code" json:"taxCode"`

	// SecondTaxCode is the raw tax code for the second income stream,
	// may be empty.
	SecondTaxCode string `yaml:"second_tax_code" json:"secondTaxCode"`

	// Deductions are post-tax deductions from net pay.
	Deductions []PostTaxDeduction `yaml:"deductions" json:"deductions"`
}

// TotalDeductions sums all post-tax deductions.
func (in CalculationInput) TotalDeductions() decimal.Decimal {
	total := decimal.Zero
	for _, d := range in.Deductions {
		total = total.Add(d.Amount)
	}
	return total
}
