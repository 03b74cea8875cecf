package organizer

import (
	"grocymenu/internal/grocy"
)

// Residents reports whether a product is stored in the marked location.
type Residents interface {
	Contains(name string) bool
}

// Categorized maps a category to its display names in stock order.
type Categorized map[string][]string

// ItemCount returns the number of display names across all categories.
func (c Categorized) ItemCount() int {
	total := 0
	for _, items := range c {
		total += len(items)
	}
	return total
}

// Organize groups stock entries by category. Entries with a zero amount are
// skipped before their category is resolved. The first entry whose category
// is not in the taxonomy stops the run with a *TaxonomyError.
func Organize(stock []grocy.StockEntry, groups map[int]string, residents Residents, taxonomy Taxonomy) (Categorized, error) {
	categories := make(Categorized)

	for _, entry := range stock {
		if entry.Amount == 0 {
			continue
		}
		name := entry.Product.Name

		category := taxonomy.Unknown
		if id := entry.Product.ProductGroupID; id.Valid {
			if groupName, ok := groups[int(id.Value)]; ok {
				category = groupName
			}
		}

		if !taxonomy.Contains(category) {
			return nil, &TaxonomyError{Category: category, Product: name}
		}

		resident := residents != nil && residents.Contains(name)
		categories[category] = append(categories[category], taxonomy.DisplayName(name, resident))
	}

	return categories, nil
}
