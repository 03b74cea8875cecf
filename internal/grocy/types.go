package grocy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID is a Grocy object identifier. Grocy encodes ids as numbers or as
// numeric strings depending on the release and endpoint.
type ID int

// UnmarshalJSON accepts 3 and "3".
func (id *ID) UnmarshalJSON(data []byte) error {
	value, present, err := parseNumber(data)
	if err != nil {
		return fmt.Errorf("grocy id: %w", err)
	}
	if !present {
		return fmt.Errorf("grocy id: empty value")
	}
	if value != float64(int(value)) {
		return fmt.Errorf("grocy id: %v is not an integer", value)
	}
	*id = ID(value)
	return nil
}

// OptionalID is an identifier that may be null or an empty string.
type OptionalID struct {
	Value ID
	Valid bool
}

// Some returns a present OptionalID.
func Some(id int) OptionalID {
	return OptionalID{Value: ID(id), Valid: true}
}

// UnmarshalJSON treats null and "" as absent.
func (o *OptionalID) UnmarshalJSON(data []byte) error {
	value, present, err := parseNumber(data)
	if err != nil {
		return fmt.Errorf("grocy id: %w", err)
	}
	if !present {
		*o = OptionalID{}
		return nil
	}
	if value != float64(int(value)) {
		return fmt.Errorf("grocy id: %v is not an integer", value)
	}
	*o = OptionalID{Value: ID(value), Valid: true}
	return nil
}

// MarshalJSON writes null for absent ids.
func (o OptionalID) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(int(o.Value))), nil
}

// Amount is a stock quantity.
type Amount float64

// UnmarshalJSON accepts 2, 2.5, and "2.5". null decodes as zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	value, _, err := parseNumber(data)
	if err != nil {
		return fmt.Errorf("grocy amount: %w", err)
	}
	*a = Amount(value)
	return nil
}

func parseNumber(data []byte) (float64, bool, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, false, nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return 0, false, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false, nil
		}
		value, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false, fmt.Errorf("parse %q: %w", s, err)
		}
		return value, true, nil
	}
	var value float64
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return 0, false, err
	}
	return value, true, nil
}

// StockProduct is the product object nested in a stock entry.
type StockProduct struct {
	ID             ID         `json:"id"`
	Name           string     `json:"name"`
	ProductGroupID OptionalID `json:"product_group_id"`
}

// StockEntry is one row of GET /api/stock.
type StockEntry struct {
	ProductID ID           `json:"product_id"`
	Amount    Amount       `json:"amount"`
	Product   StockProduct `json:"product"`
}

// NamedObject is the shared shape of product groups and locations.
type NamedObject struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Product is one row of GET /api/objects/products.
type Product struct {
	ID             ID         `json:"id"`
	Name           string     `json:"name"`
	ProductGroupID OptionalID `json:"product_group_id"`
	LocationID     OptionalID `json:"location_id"`
}

// ProductLocation is one row of GET /api/stock/products/{id}/locations.
type ProductLocation struct {
	ProductID    ID         `json:"product_id"`
	Amount       Amount     `json:"amount"`
	LocationID   OptionalID `json:"location_id"`
	LocationName string     `json:"location_name"`
}
