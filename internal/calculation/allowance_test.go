package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/DougieWougie/TaxCalculator/internal/domain"
)

func TestAllowanceCalculator_Taper(t *testing.T) {
	ac := NewAllowanceCalculator(domain.DefaultTaxYearRules())

	tests := []struct {
		name     string
		income   int64
		expected int64
	}{
		{"zero income", 0, 12570},
		{"typical salary", 45000, 12570},
		{"at the threshold", 100000, 12570},
		{"one pound over floors to no reduction", 100001, 12570},
		{"two pounds over", 100002, 12569},
		{"halfway through the taper", 112570, 6285},
		{"allowance exhausted", 125140, 0},
		{"beyond exhaustion", 200000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ac.Allowance(decimal.NewFromInt(tt.income))
			assert.True(t, got.Equal(decimal.NewFromInt(tt.expected)),
				"allowance(%d) should be %d, got %s", tt.income, tt.expected, got)
		})
	}
}

func TestAllowanceCalculator_TaperExhausted(t *testing.T) {
	ac := NewAllowanceCalculator(domain.DefaultTaxYearRules())
	assert.True(t, ac.TaperExhausted().Equal(decimal.NewFromInt(125140)),
		"taper should exhaust at 125140, got %s", ac.TaperExhausted())
}
