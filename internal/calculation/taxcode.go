package calculation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/DougieWougie/TaxCalculator/internal/domain"
)

var (
	kCodeRe        = regexp.MustCompile(`^K(\d+)$`)
	standardCodeRe = regexp.MustCompile(`^(\d+)[LMNT]$`)
)

// flatCodeTokens are the exact codes that carry no personal allowance.
// They are matched before the K and standard numeric patterns; no UK
// code collides with both.
var flatCodeTokens = map[string]domain.TaxCodeType{
	"NT": domain.TaxCodeNT,
	"BR": domain.TaxCodeBR,
	"D0": domain.TaxCodeD0,
	"D1": domain.TaxCodeD1,
	"D2": domain.TaxCodeD2,
	"D3": domain.TaxCodeD3,
	"0T": domain.TaxCodeZeroT,
}

// ParseTaxCode parses a raw HMRC tax code into its structured form. It
// is a total function: any input yields a TaxCodeInfo, with IsValid
// false and zeroed numeric fields for anything unrecognisable. The
// Type on an invalid code is the cumulative sentinel and must not be
// read without checking IsValid.
func ParseTaxCode(raw string) domain.TaxCodeInfo {
	info := domain.TaxCodeInfo{
		Raw:               raw,
		Type:              domain.TaxCodeCumulative,
		PersonalAllowance: decimal.Zero,
		KAdjustment:       decimal.Zero,
	}

	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return info
	}

	// S marks a Scottish code; C marks a Welsh one, which is
	// tax-equivalent to the default tables.
	if strings.HasPrefix(code, "S") {
		info.IsScottish = true
		code = code[1:]
	} else if strings.HasPrefix(code, "C") {
		code = code[1:]
	}

	if t, ok := flatCodeTokens[code]; ok {
		info.Type = t
		info.IsValid = true
		return info
	}

	if m := kCodeRe.FindStringSubmatch(code); m != nil {
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			info.IsScottish = false
			return info
		}
		info.Type = domain.TaxCodeK
		info.KAdjustment = decimal.NewFromInt(n * 10)
		info.IsValid = true
		return info
	}

	if m := standardCodeRe.FindStringSubmatch(code); m != nil {
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			info.IsScottish = false
			return info
		}
		info.Type = domain.TaxCodeCumulative
		info.PersonalAllowance = decimal.NewFromInt(n * 10)
		info.IsValid = true
		return info
	}

	// Unrecognised. The Scottish flag is cleared so invalid codes are
	// fully zeroed.
	info.IsScottish = false
	return info
}
