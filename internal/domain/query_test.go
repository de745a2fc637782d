package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nikolayk812/storefront-core/internal/domain"
)

func TestPriceRangeContains(t *testing.T) {
	tests := []struct {
		name  string
		r     domain.PriceRange
		price string
		want  bool
	}{
		{"under bucket includes bound", domain.PriceUnder("25"), "25", true},
		{"under bucket excludes above", domain.PriceUnder("25"), "25.01", false},
		{"between includes lower bound", domain.PriceBetween("25", "50"), "25", true},
		{"between includes upper bound", domain.PriceBetween("25", "50"), "50", true},
		{"between excludes below", domain.PriceBetween("25", "50"), "24.99", false},
		{"over bucket has no ceiling", domain.PriceOver("100"), "99999", true},
		{"over bucket excludes below", domain.PriceOver("100"), "99.99", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.Contains(decimal.RequireFromString(tt.price))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriceRangeValid(t *testing.T) {
	assert.True(t, domain.PriceBetween("10", "20").Valid())
	assert.True(t, domain.PriceBetween("10", "10").Valid())
	assert.True(t, domain.PriceOver("10").Valid())
	assert.False(t, domain.PriceBetween("20", "10").Valid(), "inverted range is malformed")
}
