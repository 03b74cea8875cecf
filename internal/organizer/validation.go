package organizer

import (
	"errors"
	"fmt"
)

// ErrTaxonomyViolation matches every *TaxonomyError via errors.Is.
var ErrTaxonomyViolation = errors.New("category not in reviewed taxonomy")

// TaxonomyError reports a stock item whose category is not allowed.
type TaxonomyError struct {
	Category string
	Product  string
}

func (e *TaxonomyError) Error() string {
	return fmt.Sprintf("unexpected category %q found (product %q); update the menu categories if needed", e.Category, e.Product)
}

func (e *TaxonomyError) Is(target error) bool {
	return target == ErrTaxonomyViolation
}
