package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/DougieWougie/TaxCalculator/internal/domain"
)

var twelve = decimal.NewFromInt(12)

// Engine orchestrates a complete take-home pay calculation: tax code
// resolution, allowance taper, banded income tax split across two
// income sources, National Insurance, deductions and derived rates.
// Calculate is a pure function of its input; the engine holds only
// immutable rules and is safe for concurrent use.
type Engine struct {
	Rules     domain.TaxYearRules
	Allowance *AllowanceCalculator
	NICalc    *NICalculator
	Logger    Logger
	Debug     bool
}

// NewEngine creates an engine with the built-in tax year rules.
func NewEngine() *Engine {
	return NewEngineWithRules(domain.DefaultTaxYearRules())
}

// NewEngineWithRules creates an engine from an explicit rules set.
func NewEngineWithRules(rules domain.TaxYearRules) *Engine {
	return &Engine{
		Rules:     rules,
		Allowance: NewAllowanceCalculator(rules),
		NICalc:    NewNICalculator(rules),
		Logger:    NopLogger{},
	}
}

// SetLogger sets the engine's logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Calculate computes the full take-home result for one input. It never
// fails: invalid tax codes fall back to standard rules and zero incomes
// flow through as zeroes.
func (e *Engine) Calculate(input domain.CalculationInput) domain.CalculationResult {
	empCode := ParseTaxCode(input.TaxCode)
	secCode := ParseTaxCode(input.SecondTaxCode)

	// A code is in use only if present and valid; the second income's
	// code additionally requires income to attribute it to.
	empCodeInUse := input.TaxCode != "" && empCode.IsValid
	secCodeInUse := input.SecondTaxCode != "" && secCode.IsValid && input.SecondIncome.GreaterThan(decimal.Zero)

	// Pension contributions and explicit sacrifice reduce pre-tax pay
	// identically.
	sacrificed := input.SalarySacrifice.Add(input.PensionContribution)
	taxableEmployment := input.GrossSalary.Sub(sacrificed)
	if taxableEmployment.LessThan(decimal.Zero) {
		taxableEmployment = decimal.Zero
	}
	totalTaxable := taxableEmployment.Add(input.SecondIncome)

	result := domain.CalculationResult{
		GrossSalary:         input.GrossSalary,
		SecondIncome:        input.SecondIncome,
		Region:              input.Region,
		SalarySacrifice:     input.SalarySacrifice,
		TaxableIncome:       taxableEmployment,
		TotalTaxableIncome:  totalTaxable,
		PensionContribution: input.PensionContribution,
		EmployerPension:     input.EmployerPension,
		TaxCodeUsed:         empCode,
		SecondTaxCodeUsed:   secCode,
	}

	if empCodeInUse || secCodeInUse {
		e.calculatePerSource(input, &result, empCode, secCode, empCodeInUse, secCodeInUse, taxableEmployment, totalTaxable)
	} else {
		e.calculateCombined(input, &result, taxableEmployment, totalTaxable)
	}
	result.TotalTax = result.EmploymentTax.Add(result.SecondIncomeTax)

	// NI is due on employment income only; the second stream is a
	// pension in payment and always NI-exempt.
	ni, niRows := e.NICalc.CalculateNI(taxableEmployment)
	result.NationalInsurance = ni
	result.NIBands = niRows

	result.PostTaxDeductions = input.TotalDeductions()
	result.NetIncome = input.GrossSalary.
		Sub(result.EmploymentTax).
		Sub(ni).
		Sub(sacrificed).
		Add(input.SecondIncome.Sub(result.SecondIncomeTax)).
		Sub(result.PostTaxDeductions)

	result.EffectiveTaxRate = effectiveRate(result.TotalTax.Add(ni), input.GrossSalary.Add(input.SecondIncome), totalTaxable)
	result.MarginalTaxRate = e.marginalRate(totalTaxable, input.Region)

	result.MonthlyGross = input.GrossSalary.Div(twelve)
	result.MonthlyNet = result.NetIncome.Div(twelve)
	result.MonthlyTax = result.TotalTax.Div(twelve)
	result.MonthlyNI = ni.Div(twelve)

	result.PensionTaxRelief = e.pensionRelief(input, result.TotalTax.Add(ni))

	e.Logger.Debugf("calculate: taxable=%s allowance=%s tax=%s ni=%s net=%s",
		totalTaxable, result.PersonalAllowance, result.TotalTax, ni, result.NetIncome)

	return result
}

// calculateCombined handles the no-tax-code path: one allowance sized
// on total taxable income, one banded run over the sum, and the second
// source attributed the marginal tax stacked on top of employment
// income.
func (e *Engine) calculateCombined(input domain.CalculationInput, result *domain.CalculationResult, taxableEmployment, totalTaxable decimal.Decimal) {
	allowance := e.Allowance.Allowance(totalTaxable)
	adjusted := AdjustBandsForAllowance(e.Rules.BandsForRegion(input.Region), allowance, e.Rules.PersonalAllowance)

	combinedTax, combinedRows := ComputeBandedTax(totalTaxable, adjusted)
	employmentTax, employmentRows := ComputeBandedTax(taxableEmployment, adjusted)

	result.PersonalAllowance = allowance
	result.EmploymentTax = employmentTax
	// The remainder is the marginal tax attributable to the second
	// stream. It is reported as-is even if negative; clamping would
	// silently misreport attribution.
	result.SecondIncomeTax = combinedTax.Sub(employmentTax)
	result.EmploymentTaxBands = employmentRows
	result.CombinedTaxBands = combinedRows
	if input.SecondIncome.GreaterThan(decimal.Zero) {
		result.SecondIncomeTaxBands = marginalRows(combinedRows, employmentRows)
	}
}

// calculatePerSource handles the path where at least one tax code is in
// use: each side is taxed independently under its own code, and a side
// without a code falls back to combined-style logic with the allowance
// sized on total taxable income.
func (e *Engine) calculatePerSource(input domain.CalculationInput, result *domain.CalculationResult, empCode, secCode domain.TaxCodeInfo, empCodeInUse, secCodeInUse bool, taxableEmployment, totalTaxable decimal.Decimal) {
	fallbackAllowance := e.Allowance.Allowance(totalTaxable)
	fallbackBands := AdjustBandsForAllowance(e.Rules.BandsForRegion(input.Region), fallbackAllowance, e.Rules.PersonalAllowance)

	if empCodeInUse {
		result.EmploymentTax, result.EmploymentTaxBands = e.TaxWithCode(taxableEmployment, empCode, input.Region)
		result.PersonalAllowance = effectiveCodeAllowance(empCode)
	} else {
		result.EmploymentTax, result.EmploymentTaxBands = ComputeBandedTax(taxableEmployment, fallbackBands)
		result.PersonalAllowance = fallbackAllowance
	}

	switch {
	case secCodeInUse:
		result.SecondIncomeTax, result.SecondIncomeTaxBands = e.TaxWithCode(input.SecondIncome, secCode, input.Region)
	case input.SecondIncome.GreaterThan(decimal.Zero):
		// Marginal stacking: tax on the combined income under the
		// fallback allowance, minus employment tax. Never clamped.
		combinedTax, combinedRows := ComputeBandedTax(totalTaxable, fallbackBands)
		result.SecondIncomeTax = combinedTax.Sub(result.EmploymentTax)
		result.SecondIncomeTaxBands = marginalRows(combinedRows, result.EmploymentTaxBands)
	}

	result.CombinedTaxBands = relabelledRows("Salary", result.EmploymentTaxBands)
	result.CombinedTaxBands = append(result.CombinedTaxBands, relabelledRows("Pension", result.SecondIncomeTaxBands)...)
}

// marginalRows diffs a combined breakdown against an employment-only
// breakdown, leaving the slices attributable to the stacked second
// income.
func marginalRows(combined, employment []domain.BandBreakdown) []domain.BandBreakdown {
	empByBand := make(map[string]domain.BandBreakdown, len(employment))
	for _, row := range employment {
		empByBand[row.Band] = row
	}
	var rows []domain.BandBreakdown
	for _, row := range combined {
		if emp, ok := empByBand[row.Band]; ok {
			row.Taxable = row.Taxable.Sub(emp.Taxable)
			row.Tax = row.Tax.Sub(emp.Tax)
		}
		if row.Taxable.IsZero() && row.Tax.IsZero() {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// relabelledRows prefixes breakdown rows with their income source for
// the combined listing.
func relabelledRows(source string, rows []domain.BandBreakdown) []domain.BandBreakdown {
	out := make([]domain.BandBreakdown, 0, len(rows))
	for _, row := range rows {
		row.Band = source + ": " + row.Band
		out = append(out, row)
	}
	return out
}

// effectiveRate is (tax + NI) / gross income, guarded so zero income
// can never divide by zero or report a rate.
func effectiveRate(totalTaxAndNI, grossTotal, totalTaxable decimal.Decimal) decimal.Decimal {
	if totalTaxable.LessThanOrEqual(decimal.Zero) || grossTotal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return totalTaxAndNI.Div(grossTotal)
}

// marginalRate locates the band holding total taxable income under the
// region's adjusted table. Inside the allowance taper zone the located
// rate is multiplied by 1.5: each extra pound is taxed at the band rate
// and also costs the band rate on 50p of newly lost allowance. This is
// a derived display figure, never a band of its own.
func (e *Engine) marginalRate(totalTaxable decimal.Decimal, region domain.TaxRegion) decimal.Decimal {
	if totalTaxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	allowance := e.Allowance.Allowance(totalTaxable)
	adjusted := AdjustBandsForAllowance(e.Rules.BandsForRegion(region), allowance, e.Rules.PersonalAllowance)
	for _, band := range adjusted {
		if !band.Contains(totalTaxable) {
			continue
		}
		rate := band.Rate
		if totalTaxable.GreaterThan(e.Rules.TaperThreshold) && totalTaxable.LessThanOrEqual(e.Allowance.TaperExhausted()) {
			rate = rate.Mul(decimal.NewFromFloat(1.5))
		}
		return rate
	}
	return decimal.Zero
}

// pensionRelief reports the tax and NI avoided by the sacrificed
// amounts, by re-running the calculation with them taken as salary
// instead. Zero when nothing is sacrificed.
func (e *Engine) pensionRelief(input domain.CalculationInput, actualTaxAndNI decimal.Decimal) decimal.Decimal {
	if input.SalarySacrifice.Add(input.PensionContribution).LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	baselineInput := input
	baselineInput.SalarySacrifice = decimal.Zero
	baselineInput.PensionContribution = decimal.Zero
	baseline := e.Calculate(baselineInput)
	return baseline.TotalTax.Add(baseline.NationalInsurance).Sub(actualTaxAndNI)
}
