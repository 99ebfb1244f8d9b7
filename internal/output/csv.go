package output

import (
	"bytes"
	"encoding/csv"

	"github.com/DougieWougie/TaxCalculator/internal/domain"
)

// CSVFormatter renders the headline figures and band breakdowns as CSV.
// Every record is the same width so the document parses under a strict
// reader: summary rows leave the rate and tax columns empty, band rows
// fill all five.
type CSVFormatter struct{}

// Name returns the formatter name.
func (cf *CSVFormatter) Name() string { return "csv" }

// Format writes a header, the summary rows, then one row per breakdown
// band.
func (cf *CSVFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"kind", "field", "value", "rate", "tax"},
		summaryRow("region", string(result.Region)),
		summaryRow("gross_salary", result.GrossSalary.StringFixed(2)),
		summaryRow("second_income", result.SecondIncome.StringFixed(2)),
		summaryRow("taxable_income", result.TaxableIncome.StringFixed(2)),
		summaryRow("personal_allowance", result.PersonalAllowance.StringFixed(2)),
		summaryRow("employment_tax", result.EmploymentTax.StringFixed(2)),
		summaryRow("second_income_tax", result.SecondIncomeTax.StringFixed(2)),
		summaryRow("total_tax", result.TotalTax.StringFixed(2)),
		summaryRow("national_insurance", result.NationalInsurance.StringFixed(2)),
		summaryRow("post_tax_deductions", result.PostTaxDeductions.StringFixed(2)),
		summaryRow("net_income", result.NetIncome.StringFixed(2)),
		summaryRow("monthly_net", result.MonthlyNet.StringFixed(2)),
		summaryRow("effective_tax_rate", result.EffectiveTaxRate.StringFixed(4)),
		summaryRow("marginal_tax_rate", result.MarginalTaxRate.StringFixed(4)),
	}
	records = append(records, bandRows("tax_band", result.CombinedTaxBands)...)
	records = append(records, bandRows("ni_band", result.NIBands)...)

	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), w.Error()
}

func summaryRow(field, value string) []string {
	return []string{"summary", field, value, "", ""}
}

func bandRows(kind string, bands []domain.BandBreakdown) [][]string {
	rows := make([][]string, 0, len(bands))
	for _, row := range bands {
		rows = append(rows, []string{kind, row.Band, row.Taxable.StringFixed(2), row.Rate.StringFixed(4), row.Tax.StringFixed(2)})
	}
	return rows
}
