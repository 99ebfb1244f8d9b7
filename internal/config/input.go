package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/DougieWougie/TaxCalculator/internal/domain"
)

// InputParser loads and sanitises calculation input files. The engine
// assumes non-negative finite numbers; this is the boundary that
// enforces it.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a calculation input from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.CalculationInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input domain.CalculationInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// ValidateInput sanitises a calculation input in place: the region
// defaults to England when absent, and every amount must be
// non-negative. Tax codes are not validated here; an unparseable code
// is handled by the engine as absent.
func (ip *InputParser) ValidateInput(input *domain.CalculationInput) error {
	if input.Region == "" {
		input.Region = domain.RegionEngland
	}
	if !input.Region.IsValid() {
		return fmt.Errorf("unknown region %q", input.Region)
	}

	amounts := map[string]decimal.Decimal{
		"gross_salary":         input.GrossSalary,
		"salary_sacrifice":     input.SalarySacrifice,
		"pension_contribution": input.PensionContribution,
		"employer_pension":     input.EmployerPension,
		"second_income":        input.SecondIncome,
	}
	for name, amount := range amounts {
		if amount.IsNegative() {
			return fmt.Errorf("%s must not be negative, got %s", name, amount)
		}
	}

	for i, d := range input.Deductions {
		if d.Name == "" {
			return fmt.Errorf("deduction %d: name is required", i)
		}
		if d.Amount.IsNegative() {
			return fmt.Errorf("deduction %q: amount must not be negative, got %s", d.Name, d.Amount)
		}
	}

	return nil
}

// LoadRules loads a tax-rules file, merged over the built-in defaults
// so a partial file only overrides what it names.
func (ip *InputParser) LoadRules(filename string) (domain.TaxYearRules, error) {
	rules := domain.DefaultTaxYearRules()

	data, err := os.ReadFile(filename)
	if err != nil {
		return rules, fmt.Errorf("failed to read rules file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("failed to parse rules YAML: %w", err)
	}

	if err := validateRules(rules); err != nil {
		return rules, fmt.Errorf("rules validation failed: %w", err)
	}
	return rules, nil
}

// validateRules checks the structural invariants the engine relies on:
// each table ordered ascending and gapless, ending in an unbounded band.
func validateRules(rules domain.TaxYearRules) error {
	if rules.PersonalAllowance.IsNegative() {
		return fmt.Errorf("personal allowance must not be negative")
	}
	if rules.TaperThreshold.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("taper threshold must be positive")
	}
	tables := map[string][]domain.TaxBand{
		"uk_bands":       rules.UKBands,
		"scottish_bands": rules.ScottishBands,
		"ni_bands":       rules.NIBands,
	}
	for name, bands := range tables {
		if err := validateBandTable(bands); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func validateBandTable(bands []domain.TaxBand) error {
	if len(bands) == 0 {
		return fmt.Errorf("band table is empty")
	}
	if !bands[0].Lower.IsZero() {
		return fmt.Errorf("first band must start at zero, got %s", bands[0].Lower)
	}
	for i, band := range bands {
		last := i == len(bands)-1
		if band.Unbounded != last {
			return fmt.Errorf("band %q: only the final band may be unbounded", band.Name)
		}
		if last {
			continue
		}
		if band.Upper.LessThanOrEqual(band.Lower) {
			return fmt.Errorf("band %q: upper %s must exceed lower %s", band.Name, band.Upper, band.Lower)
		}
		if !bands[i+1].Lower.Equal(band.Upper) {
			return fmt.Errorf("band %q: next band leaves a gap after %s", band.Name, band.Upper)
		}
	}
	return nil
}
