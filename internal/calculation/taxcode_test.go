package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/DougieWougie/TaxCalculator/internal/domain"
)

func TestParseTaxCode_Standard(t *testing.T) {
	tests := []struct {
		raw       string
		allowance int64
		scottish  bool
	}{
		{"1257L", 12570, false},
		{"1257M", 12570, false},
		{"1257N", 12570, false},
		{"1100T", 11000, false},
		{"S1257L", 12570, true},
		{"C1257L", 12570, false},
		{"  1257l ", 12570, false},
		{"500L", 5000, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			info := ParseTaxCode(tt.raw)

			assert.True(t, info.IsValid, "Should be valid")
			assert.Equal(t, domain.TaxCodeCumulative, info.Type, "Should be cumulative")
			assert.True(t, info.PersonalAllowance.Equal(decimal.NewFromInt(tt.allowance)),
				"Allowance should be %d, got %s", tt.allowance, info.PersonalAllowance)
			assert.Equal(t, tt.scottish, info.IsScottish, "Scottish flag mismatch")
			assert.True(t, info.KAdjustment.IsZero(), "Standard code has no K adjustment")
		})
	}
}

func TestParseTaxCode_FlatAndSpecial(t *testing.T) {
	tests := []struct {
		raw      string
		codeType domain.TaxCodeType
		scottish bool
	}{
		{"BR", domain.TaxCodeBR, false},
		{"SBR", domain.TaxCodeBR, true},
		{"CBR", domain.TaxCodeBR, false},
		{"D0", domain.TaxCodeD0, false},
		{"SD0", domain.TaxCodeD0, true},
		{"D1", domain.TaxCodeD1, false},
		{"SD2", domain.TaxCodeD2, true},
		{"SD3", domain.TaxCodeD3, true},
		{"NT", domain.TaxCodeNT, false},
		{"0T", domain.TaxCodeZeroT, false},
		{"S0T", domain.TaxCodeZeroT, true},
		{"br", domain.TaxCodeBR, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			info := ParseTaxCode(tt.raw)

			assert.True(t, info.IsValid, "Should be valid")
			assert.Equal(t, tt.codeType, info.Type, "Type mismatch")
			assert.Equal(t, tt.scottish, info.IsScottish, "Scottish flag mismatch")
			assert.True(t, info.PersonalAllowance.IsZero(), "Flat codes carry no allowance")
		})
	}
}

func TestParseTaxCode_KCodes(t *testing.T) {
	info := ParseTaxCode("K100")
	assert.True(t, info.IsValid, "Should be valid")
	assert.Equal(t, domain.TaxCodeK, info.Type, "Should be a K code")
	assert.True(t, info.KAdjustment.Equal(decimal.NewFromInt(1000)),
		"K100 adds 1000, got %s", info.KAdjustment)
	assert.True(t, info.PersonalAllowance.IsZero(), "K codes carry no allowance")

	scottish := ParseTaxCode("SK475")
	assert.True(t, scottish.IsValid, "Should be valid")
	assert.True(t, scottish.IsScottish, "SK is a Scottish K code")
	assert.True(t, scottish.KAdjustment.Equal(decimal.NewFromInt(4750)),
		"SK475 adds 4750, got %s", scottish.KAdjustment)
}

func TestParseTaxCode_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"   ",
		"XYZ",
		"K",
		"123",  // digits without a suffix letter
		"1257", // likewise
		"1257X",
		"L1257",
		"D4",
		"K10L",
		"S",
		"C",
	}

	for _, raw := range invalid {
		t.Run("invalid_"+raw, func(t *testing.T) {
			info := ParseTaxCode(raw)

			assert.False(t, info.IsValid, "%q should be invalid", raw)
			assert.Equal(t, domain.TaxCodeCumulative, info.Type, "Invalid codes default to the cumulative sentinel")
			assert.True(t, info.PersonalAllowance.IsZero(), "Invalid codes carry zeroed numerics")
			assert.True(t, info.KAdjustment.IsZero(), "Invalid codes carry zeroed numerics")
			assert.False(t, info.IsScottish, "Invalid codes carry no Scottish flag")
		})
	}
}

func TestParseTaxCode_Idempotent(t *testing.T) {
	for _, raw := range []string{"1257L", "SBR", "K100", "garbage", ""} {
		first := ParseTaxCode(raw)
		second := ParseTaxCode(raw)
		assert.Equal(t, first, second, "parse(%q) should be idempotent", raw)
	}
}
