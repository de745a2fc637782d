package domain

import (
	"github.com/shopspring/decimal"
)

// CategoryAll is the sentinel meaning "no category constraint"; with it
// active the pipeline groups results by category instead of filtering.
const CategoryAll = "all"

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

// PriceRange is a continuous inclusive price interval. The storefront's
// discrete buckets are presets over this model, and the category browser's
// two-handle slider is the same type with both bounds set.
type PriceRange struct {
	Min       decimal.Decimal `json:"min"`
	Max       decimal.Decimal `json:"max"`
	Unbounded bool            `json:"unbounded,omitempty"` // no upper limit; Max ignored
}

// Valid rejects inverted ranges; an invalid range is ignored by the
// pipeline rather than treated as an error.
func (r PriceRange) Valid() bool {
	return r.Unbounded || r.Max.GreaterThanOrEqual(r.Min)
}

func (r PriceRange) Contains(price decimal.Decimal) bool {
	if price.LessThan(r.Min) {
		return false
	}
	return r.Unbounded || price.LessThanOrEqual(r.Max)
}

// Preset buckets shown by the product-listing filter UI.
func PriceUnder(max string) PriceRange {
	return PriceRange{Max: decimal.RequireFromString(max)}
}

func PriceBetween(min, max string) PriceRange {
	return PriceRange{
		Min: decimal.RequireFromString(min),
		Max: decimal.RequireFromString(max),
	}
}

func PriceOver(min string) PriceRange {
	return PriceRange{Min: decimal.RequireFromString(min), Unbounded: true}
}

// FilterQuery is the settled query fed to the pipeline. It is ephemeral:
// owned by the UI layer, rebuilt per render, never persisted.
type FilterQuery struct {
	Category    string
	SearchText  string
	PriceRanges []PriceRange // OR across selected buckets
	SliderRange *PriceRange  // independent continuous axis, AND-ed in
	MinRatings  []int        // OR across thresholds; loosest wins
	Sort        SortKey
}
