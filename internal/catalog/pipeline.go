// Package catalog computes the derived view of a product snapshot: filter,
// stable sort and grouping over a settled query. Run is pure; it never
// mutates the snapshot or its products, and equal inputs yield equal output.
package catalog

import (
	"slices"
	"strings"

	"github.com/nikolayk812/storefront-core/internal/domain"
)

type Group struct {
	Category string
	Items    []domain.Product
}

type Grouped struct {
	Groups []Group
}

// Flat concatenates the groups back into the filtered, sorted list.
func (g Grouped) Flat() []domain.Product {
	var flat []domain.Product
	for _, group := range g.Groups {
		flat = append(flat, group.Items...)
	}
	return flat
}

// Run applies the stages in order: category, text, price buckets, slider
// range, rating thresholds, stable sort, grouping. Filter axes AND together;
// multiple selections within one axis OR together. Malformed constraints are
// ignored rather than failing the pipeline.
func Run(products []domain.Product, q domain.FilterQuery) Grouped {
	kept := filterCategory(products, q.Category)
	kept = filterText(kept, q.SearchText)
	kept = filterPriceBuckets(kept, q.PriceRanges)
	kept = filterSlider(kept, q.SliderRange)
	kept = filterRating(kept, q.MinRatings)
	kept = sortProducts(kept, q.Sort)
	return group(kept, q.Category)
}

func filterCategory(products []domain.Product, category string) []domain.Product {
	if category == "" || category == domain.CategoryAll {
		return slices.Clone(products)
	}

	var kept []domain.Product
	for _, p := range products {
		if p.Category == category {
			kept = append(kept, p)
		}
	}
	return kept
}

func filterText(products []domain.Product, text string) []domain.Product {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return products
	}

	var kept []domain.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			kept = append(kept, p)
		}
	}
	return kept
}

func filterPriceBuckets(products []domain.Product, ranges []domain.PriceRange) []domain.Product {
	var valid []domain.PriceRange
	for _, r := range ranges {
		if r.Valid() {
			valid = append(valid, r)
		}
	}
	if len(valid) == 0 {
		return products
	}

	var kept []domain.Product
	for _, p := range products {
		for _, r := range valid {
			if r.Contains(p.Price.Amount) {
				kept = append(kept, p)
				break
			}
		}
	}
	return kept
}

func filterSlider(products []domain.Product, r *domain.PriceRange) []domain.Product {
	if r == nil || !r.Valid() {
		return products
	}

	var kept []domain.Product
	for _, p := range products {
		if r.Contains(p.Price.Amount) {
			kept = append(kept, p)
		}
	}
	return kept
}

func filterRating(products []domain.Product, minRatings []int) []domain.Product {
	// OR across thresholds: the loosest selected threshold subsumes the rest.
	threshold := 0
	for _, r := range minRatings {
		if r <= 0 {
			continue
		}
		if threshold == 0 || r < threshold {
			threshold = r
		}
	}
	if threshold == 0 {
		return products
	}

	var kept []domain.Product
	for _, p := range products {
		if p.Rating >= float64(threshold) {
			kept = append(kept, p)
		}
	}
	return kept
}

// sortProducts stable-sorts a copy; ties keep catalog order. The featured
// default is the catalog order itself.
func sortProducts(products []domain.Product, key domain.SortKey) []domain.Product {
	sorted := slices.Clone(products)

	switch key {
	case domain.SortPriceLow:
		slices.SortStableFunc(sorted, func(a, b domain.Product) int {
			return a.Price.Amount.Cmp(b.Price.Amount)
		})
	case domain.SortPriceHigh:
		slices.SortStableFunc(sorted, func(a, b domain.Product) int {
			return b.Price.Amount.Cmp(a.Price.Amount)
		})
	case domain.SortRating:
		slices.SortStableFunc(sorted, func(a, b domain.Product) int {
			switch {
			case a.Rating > b.Rating:
				return -1
			case a.Rating < b.Rating:
				return 1
			}
			return 0
		})
	}

	return sorted
}

// group partitions by category in first-appearance order when the "all"
// sentinel is active, otherwise emits one unnamed group.
func group(products []domain.Product, category string) Grouped {
	if category != "" && category != domain.CategoryAll {
		return Grouped{Groups: []Group{{Items: products}}}
	}

	index := map[string]int{}
	var groups []Group
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(groups)
			index[p.Category] = i
			groups = append(groups, Group{Category: p.Category})
		}
		groups[i].Items = append(groups[i].Items, p)
	}

	return Grouped{Groups: groups}
}
