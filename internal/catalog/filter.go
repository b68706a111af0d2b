package catalog

import (
	"strings"

	"github.com/aromaluxe/storefront/internal/domain"
)

// Filter narrows products by the given criteria, preserving catalog order.
// Each criterion only removes products, so combining criteria can never grow
// the result.
func Filter(products []domain.Product, c domain.FilterCriteria) []domain.Product {
	if c.IsZero() {
		return products
	}

	queryLower := strings.ToLower(c.Query)

	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !matches(p, c, queryLower) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// matches checks whether a product passes every set criterion.
func matches(p domain.Product, c domain.FilterCriteria, queryLower string) bool {
	// Text match on title.
	if queryLower != "" {
		if !strings.Contains(strings.ToLower(p.Title), queryLower) {
			return false
		}
	}

	// Mood filter.
	if c.Mood != "" && p.Mood != c.Mood {
		return false
	}

	// Scent profile filter.
	if c.ScentProfile != "" && p.ScentProfile != c.ScentProfile {
		return false
	}

	// Price range on the 50ml base price. MaxPrice zero means open-ended.
	if c.MinPrice > 0 && p.Price < c.MinPrice {
		return false
	}
	if c.MaxPrice > 0 && p.Price > c.MaxPrice {
		return false
	}

	return true
}
