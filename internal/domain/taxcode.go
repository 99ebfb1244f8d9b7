package domain

import "github.com/shopspring/decimal"

// TaxCodeType classifies how a tax code instructs tax to be calculated.
type TaxCodeType string

const (
	// TaxCodeCumulative is the standard code form: digits encoding a
	// personal allowance followed by a suffix letter (e.g. 1257L).
	TaxCodeCumulative TaxCodeType = "cumulative"
	// TaxCodeK adds income instead of granting an allowance (negative
	// allowance, typically benefits in kind exceeding allowances).
	TaxCodeK TaxCodeType = "K"
	// TaxCodeBR taxes all income at the basic rate with no allowance.
	TaxCodeBR TaxCodeType = "BR"
	// TaxCodeD0 through TaxCodeD3 tax all income at a single higher
	// rate tier. D2 and D3 only exist for Scottish codes.
	TaxCodeD0 TaxCodeType = "D0"
	TaxCodeD1 TaxCodeType = "D1"
	TaxCodeD2 TaxCodeType = "D2"
	TaxCodeD3 TaxCodeType = "D3"
	// TaxCodeNT means no tax is deducted at all.
	TaxCodeNT TaxCodeType = "NT"
	// TaxCodeZeroT applies the standard bands with no allowance.
	TaxCodeZeroT TaxCodeType = "0T"
)

// IsFlatRate reports whether the code type taxes all income at one rate.
func (t TaxCodeType) IsFlatRate() bool {
	switch t {
	case TaxCodeBR, TaxCodeD0, TaxCodeD1, TaxCodeD2, TaxCodeD3:
		return true
	}
	return false
}

// TaxCodeInfo is the parsed form of a raw HMRC tax code. It is immutable
// once parsed and derived purely from the raw string. An invalid code
// carries zeroed numeric fields and IsValid=false; callers must treat an
// invalid code as absent.
type TaxCodeInfo struct {
	Raw               string          `json:"raw"`
	Type              TaxCodeType     `json:"type"`
	PersonalAllowance decimal.Decimal `json:"personalAllowance"`
	KAdjustment       decimal.Decimal `json:"kAdjustment"`
	IsScottish        bool            `json:"isScottish"`
	IsValid           bool            `json:"isValid"`
}
