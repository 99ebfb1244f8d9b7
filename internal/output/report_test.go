package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DougieWougie/TaxCalculator/internal/calculation"
	"github.com/DougieWougie/TaxCalculator/internal/domain"
)

func sampleResult(t *testing.T) *domain.CalculationResult {
	t.Helper()
	engine := calculation.NewEngine()
	result := engine.Calculate(domain.CalculationInput{
		GrossSalary:  decimal.NewFromInt(45000),
		SecondIncome: decimal.NewFromInt(8000),
		Region:       domain.RegionEngland,
		TaxCode:      "1257L",
	})
	return &result
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"0", "£0.00"},
		{"1234.5", "£1,234.50"},
		{"12570", "£12,570.00"},
		{"1257000.99", "£1,257,000.99"},
		{"-514", "-£514.00"},
		{"999.999", "£1,000.00"},
	}

	for _, tt := range tests {
		got := FormatCurrency(decimal.RequireFromString(tt.amount))
		assert.Equal(t, tt.expected, got, "FormatCurrency(%s)", tt.amount)
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "20.0%", FormatPercentage(decimal.NewFromFloat(0.20)))
	assert.Equal(t, "16.3%", FormatPercentage(decimal.RequireFromString("0.16268")))
	assert.Equal(t, "0.0%", FormatPercentage(decimal.Zero))
	assert.Equal(t, "60.0%", FormatPercentage(decimal.NewFromFloat(0.60)))
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"console", "console"},
		{"text", "console"},
		{"", "console"},
		{"JSON", "json"},
		{"csv", "csv"},
	}
	for _, tt := range tests {
		f := GetFormatterByName(tt.name)
		require.NotNil(t, f, "Formatter %q should exist", tt.name)
		assert.Equal(t, tt.expected, f.Name())
	}

	assert.Nil(t, GetFormatterByName("xml"), "Unsupported formats return nil")
}

func TestConsoleFormatter(t *testing.T) {
	result := sampleResult(t)
	out, err := (&ConsoleFormatter{}).Format(result)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "TAKE-HOME PAY - England")
	assert.Contains(t, text, "INCOME TAX")
	assert.Contains(t, text, "NATIONAL INSURANCE")
	assert.Contains(t, text, "NET POSITION")
	assert.Contains(t, text, "Gross Salary:")
	assert.Contains(t, text, "£45,000.00")
	assert.Contains(t, text, "Tax Code:               1257L")
	assert.Contains(t, text, "on Salary:")
	assert.Contains(t, text, "on Pension:")
}

func TestConsoleFormatter_CodeNotes(t *testing.T) {
	engine := calculation.NewEngine()

	invalid := engine.Calculate(domain.CalculationInput{
		GrossSalary: decimal.NewFromInt(30000),
		Region:      domain.RegionEngland,
		TaxCode:     "BANANA",
	})
	out, err := (&ConsoleFormatter{}).Format(&invalid)
	require.NoError(t, err)
	assert.Contains(t, string(out), "invalid, standard rules applied")

	scottish := engine.Calculate(domain.CalculationInput{
		GrossSalary: decimal.NewFromInt(30000),
		Region:      domain.RegionEngland,
		TaxCode:     "S1257L",
	})
	out, err = (&ConsoleFormatter{}).Format(&scottish)
	require.NoError(t, err)
	assert.Contains(t, string(out), "(Scottish)")
}

func TestJSONFormatter(t *testing.T) {
	result := sampleResult(t)
	out, err := (&JSONFormatter{}).Format(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "grossSalary")
	assert.Contains(t, decoded, "totalTax")
	assert.Contains(t, decoded, "niBands")
	assert.Equal(t, "england", decoded["region"])
}

func TestCSVFormatter(t *testing.T) {
	result := sampleResult(t)
	out, err := (&CSVFormatter{}).Format(result)
	require.NoError(t, err)

	// A default csv.Reader pins the field count to the first record, so
	// a successful ReadAll proves every record has the same width.
	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err, "Document must parse under a strict reader")
	require.NotEmpty(t, records)
	assert.Equal(t, []string{"kind", "field", "value", "rate", "tax"}, records[0])

	fields := make(map[string]string)
	var bandRows int
	for _, record := range records[1:] {
		require.Len(t, record, 5)
		switch record[0] {
		case "summary":
			fields[record[1]] = record[2]
		case "tax_band", "ni_band":
			bandRows++
		default:
			t.Fatalf("unexpected record kind %q", record[0])
		}
	}
	assert.Equal(t, "45000.00", fields["gross_salary"])
	assert.Equal(t, "england", fields["region"])
	assert.NotEmpty(t, fields["net_income"])
	assert.Greater(t, bandRows, 0, "Band breakdowns should be emitted")
}
