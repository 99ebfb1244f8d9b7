package output

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/DougieWougie/TaxCalculator/internal/domain"
)

// Formatter renders a calculation result in one output format.
type Formatter interface {
	Name() string
	Format(result *domain.CalculationResult) ([]byte, error)
}

// GetFormatterByName returns the formatter for a format name, or nil
// for an unsupported format.
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "console", "text", "":
		return &ConsoleFormatter{}
	case "json":
		return &JSONFormatter{}
	case "csv":
		return &CSVFormatter{}
	}
	return nil
}

// FormatCurrency formats a decimal as pounds sterling with thousands
// separators and two decimal places.
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, _ := strings.Cut(s, ".")
	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	out := "£" + grouped.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}

// FormatPercentage formats a fractional rate as a percentage with one
// decimal place.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
