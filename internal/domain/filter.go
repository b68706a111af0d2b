package domain

// FilterCriteria narrows a product list. Zero-valued fields are skipped, so
// the empty criteria matches everything.
type FilterCriteria struct {
	// Query matches case-insensitively against the product title.
	Query string `json:"query,omitempty"`
	// Mood filters on exact mood.
	Mood Mood `json:"mood,omitempty"`
	// ScentProfile filters on exact scent profile.
	ScentProfile ScentProfile `json:"scent_profile,omitempty"`
	// MinPrice and MaxPrice bound the 50ml base price in minor units.
	// MaxPrice zero means the range is open-ended above.
	MinPrice int64 `json:"min_price,omitempty"`
	MaxPrice int64 `json:"max_price,omitempty"`
}

// IsZero reports whether no filter fields are set.
func (f FilterCriteria) IsZero() bool {
	return f.Query == "" && f.Mood == "" && f.ScentProfile == "" && f.MinPrice == 0 && f.MaxPrice == 0
}
