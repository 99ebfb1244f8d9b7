package domain

// TaxRegion identifies which nation's income tax tables apply.
// England, Wales and Northern Ireland share the rUK tables; Scotland
// sets its own bands and rates.
type TaxRegion string

const (
	RegionEngland         TaxRegion = "england"
	RegionScotland        TaxRegion = "scotland"
	RegionWales           TaxRegion = "wales"
	RegionNorthernIreland TaxRegion = "northern_ireland"
)

// AllRegions lists the supported regions in display order.
var AllRegions = []TaxRegion{RegionEngland, RegionScotland, RegionWales, RegionNorthernIreland}

// IsValid reports whether the region is one of the supported values.
func (r TaxRegion) IsValid() bool {
	switch r {
	case RegionEngland, RegionScotland, RegionWales, RegionNorthernIreland:
		return true
	}
	return false
}

// UsesScottishBands reports whether Scottish income tax tables apply.
func (r TaxRegion) UsesScottishBands() bool {
	return r == RegionScotland
}

// DisplayName returns a human-readable region name.
func (r TaxRegion) DisplayName() string {
	switch r {
	case RegionEngland:
		return "England"
	case RegionScotland:
		return "Scotland"
	case RegionWales:
		return "Wales"
	case RegionNorthernIreland:
		return "Northern Ireland"
	}
	return string(r)
}
