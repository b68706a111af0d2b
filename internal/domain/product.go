package domain

import (
	"fmt"
	"math"
)

// Mood is the emotional register a fragrance is marketed under.
type Mood string

const (
	MoodElegant    Mood = "elegant"
	MoodBold       Mood = "bold"
	MoodMysterious Mood = "mysterious"
	MoodFresh      Mood = "fresh"
)

// Moods lists every valid mood in display order.
func Moods() []Mood {
	return []Mood{MoodElegant, MoodBold, MoodMysterious, MoodFresh}
}

// Valid reports whether m is one of the known moods.
func (m Mood) Valid() bool {
	switch m {
	case MoodElegant, MoodBold, MoodMysterious, MoodFresh:
		return true
	}
	return false
}

// ScentProfile is the dominant note family of a fragrance.
type ScentProfile string

const (
	ScentSpicy    ScentProfile = "spicy"
	ScentFloral   ScentProfile = "floral"
	ScentWoody    ScentProfile = "woody"
	ScentCitrus   ScentProfile = "citrus"
	ScentOriental ScentProfile = "oriental"
)

// ScentProfiles lists every valid scent profile in display order.
func ScentProfiles() []ScentProfile {
	return []ScentProfile{ScentSpicy, ScentFloral, ScentWoody, ScentCitrus, ScentOriental}
}

// Valid reports whether s is one of the known scent profiles.
func (s ScentProfile) Valid() bool {
	switch s {
	case ScentSpicy, ScentFloral, ScentWoody, ScentCitrus, ScentOriental:
		return true
	}
	return false
}

// Size is a bottle size. The catalog price on a product is the base price for
// the 50ml bottle; other sizes derive from it via a fixed multiplier.
type Size string

const (
	Size30ml  Size = "30ml"
	Size50ml  Size = "50ml"
	Size100ml Size = "100ml"
)

// Sizes lists every valid size in ascending volume order.
func Sizes() []Size {
	return []Size{Size30ml, Size50ml, Size100ml}
}

// ParseSize validates and returns the Size for the given string.
func ParseSize(s string) (Size, error) {
	switch Size(s) {
	case Size30ml, Size50ml, Size100ml:
		return Size(s), nil
	}
	return "", fmt.Errorf("unknown size %q", s)
}

// Multiplier returns the price multiplier for the size relative to the
// 50ml base price.
func (s Size) Multiplier() float64 {
	switch s {
	case Size30ml:
		return 0.8
	case Size100ml:
		return 1.6
	default:
		return 1.0
	}
}

// PriceFor computes the minor-unit price of this size from the 50ml base
// price, rounding half away from zero.
func (s Size) PriceFor(basePrice int64) int64 {
	return int64(math.Round(float64(basePrice) * s.Multiplier()))
}

// Product is a fragrance from the catalog. Products are read-only within the
// storefront; the content API is the source of truth.
type Product struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Mood         Mood         `json:"mood"`
	ScentProfile ScentProfile `json:"scent_profile"`
	// Price is the 50ml base price in minor currency units.
	Price    int64  `json:"price"`
	ImageURL string `json:"image_url,omitempty"`
}

// Settings holds the site-wide singleton content.
type Settings struct {
	SiteTitle       string    `json:"site_title"`
	MetaDescription string    `json:"meta_description,omitempty"`
	Navigation      []NavLink `json:"navigation,omitempty"`
}

// NavLink is one entry of the site navigation configured in the CMS.
type NavLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}
