package organizer

import (
	"slices"

	"grocymenu/internal/config"
)

// Taxonomy is the reviewed category ordering plus the location marker rules.
type Taxonomy struct {
	// Categories lists the allowed categories in display order.
	Categories []string
	// Location is the Grocy location whose products get Marker appended.
	Location string
	Marker   string
	// Unknown names the category of products without a (known) group.
	Unknown string
}

// FromConfig builds the taxonomy described by the [menu] config section.
func FromConfig(cfg *config.Config) Taxonomy {
	return Taxonomy{
		Categories: append([]string(nil), cfg.Menu.Categories...),
		Location:   cfg.Menu.FridgeLocation,
		Marker:     cfg.Menu.FridgeMarker,
		Unknown:    cfg.Menu.UnknownCategory,
	}
}

// DisplayName renders a product name, suffixed with the marker when the
// product is resident.
func (t Taxonomy) DisplayName(product string, resident bool) string {
	if !resident || t.Marker == "" {
		return product
	}
	return product + " " + t.Marker
}

// Contains reports whether category is one of the allowed categories. The
// comparison is byte-exact.
func (t Taxonomy) Contains(category string) bool {
	return slices.Contains(t.Categories, category)
}
