package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/DougieWougie/TaxCalculator/internal/domain"
)

// ConsoleFormatter renders a human-readable take-home pay report.
type ConsoleFormatter struct{}

// Name returns the formatter name.
func (cf *ConsoleFormatter) Name() string { return "console" }

// Format renders the full annual and monthly breakdown as text.
func (cf *ConsoleFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================")
	fmt.Fprintf(&buf, "TAKE-HOME PAY - %s\n", result.Region.DisplayName())
	fmt.Fprintln(&buf, "=================================================================")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INCOME")
	fmt.Fprintf(&buf, "  Gross Salary:           %s\n", FormatCurrency(result.GrossSalary))
	if result.SecondIncome.IsPositive() {
		fmt.Fprintf(&buf, "  Pension Income:         %s\n", FormatCurrency(result.SecondIncome))
	}
	if result.SalarySacrifice.IsPositive() {
		fmt.Fprintf(&buf, "  Salary Sacrifice:       %s\n", FormatCurrency(result.SalarySacrifice))
	}
	if result.PensionContribution.IsPositive() {
		fmt.Fprintf(&buf, "  Pension Contribution:   %s\n", FormatCurrency(result.PensionContribution))
	}
	if result.EmployerPension.IsPositive() {
		fmt.Fprintf(&buf, "  Employer Pension:       %s\n", FormatCurrency(result.EmployerPension))
	}
	fmt.Fprintf(&buf, "  Taxable Income:         %s\n", FormatCurrency(result.TaxableIncome))
	fmt.Fprintf(&buf, "  Personal Allowance:     %s\n", FormatCurrency(result.PersonalAllowance))
	fmt.Fprintln(&buf)

	if code := result.TaxCodeUsed; code.Raw != "" {
		fmt.Fprintf(&buf, "  Tax Code:               %s%s\n", code.Raw, codeNote(code))
	}
	if code := result.SecondTaxCodeUsed; code.Raw != "" {
		fmt.Fprintf(&buf, "  Pension Tax Code:       %s%s\n", code.Raw, codeNote(code))
	}
	if result.TaxCodeUsed.Raw != "" || result.SecondTaxCodeUsed.Raw != "" {
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "INCOME TAX")
	writeBands(&buf, result.CombinedTaxBands)
	fmt.Fprintf(&buf, "  Total Income Tax:       %s\n", FormatCurrency(result.TotalTax))
	if result.SecondIncome.IsPositive() {
		fmt.Fprintf(&buf, "    on Salary:            %s\n", FormatCurrency(result.EmploymentTax))
		fmt.Fprintf(&buf, "    on Pension:           %s\n", FormatCurrency(result.SecondIncomeTax))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "NATIONAL INSURANCE")
	writeBands(&buf, result.NIBands)
	fmt.Fprintf(&buf, "  Total NI:               %s\n", FormatCurrency(result.NationalInsurance))
	fmt.Fprintln(&buf)

	if result.PostTaxDeductions.IsPositive() {
		fmt.Fprintf(&buf, "  Post-Tax Deductions:    %s\n", FormatCurrency(result.PostTaxDeductions))
		fmt.Fprintln(&buf)
	}
	if result.PensionTaxRelief.IsPositive() {
		fmt.Fprintf(&buf, "  Tax+NI saved by pension/sacrifice: %s\n", FormatCurrency(result.PensionTaxRelief))
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "NET POSITION")
	fmt.Fprintf(&buf, "  Net Annual Income:      %s\n", FormatCurrency(result.NetIncome))
	fmt.Fprintf(&buf, "  Net Monthly Income:     %s\n", FormatCurrency(result.MonthlyNet))
	fmt.Fprintf(&buf, "  Monthly Tax:            %s\n", FormatCurrency(result.MonthlyTax))
	fmt.Fprintf(&buf, "  Monthly NI:             %s\n", FormatCurrency(result.MonthlyNI))
	fmt.Fprintf(&buf, "  Effective Tax Rate:     %s\n", FormatPercentage(result.EffectiveTaxRate))
	fmt.Fprintf(&buf, "  Marginal Tax Rate:      %s\n", FormatPercentage(result.MarginalTaxRate))

	return buf.Bytes(), nil
}

func writeBands(buf *bytes.Buffer, bands []domain.BandBreakdown) {
	for _, row := range bands {
		fmt.Fprintf(buf, "  %-24s%12s @ %-6s = %s\n",
			row.Band, FormatCurrency(row.Taxable), FormatPercentage(row.Rate), FormatCurrency(row.Tax))
	}
}

func codeNote(code domain.TaxCodeInfo) string {
	notes := make([]string, 0, 2)
	if !code.IsValid {
		notes = append(notes, "invalid, standard rules applied")
	} else if code.IsScottish {
		notes = append(notes, "Scottish")
	}
	if len(notes) == 0 {
		return ""
	}
	return " (" + strings.Join(notes, ", ") + ")"
}
