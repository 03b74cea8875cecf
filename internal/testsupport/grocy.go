package testsupport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"grocymenu/internal/grocy"
)

// FakeGrocy serves the Grocy endpoints used by the menu pipeline from
// in-memory fixtures.
type FakeGrocy struct {
	APIKey string

	mu               sync.Mutex
	server           *httptest.Server
	stock            []grocy.StockEntry
	groups           []grocy.NamedObject
	locations        []grocy.NamedObject
	products         []grocy.Product
	productLocations map[int][]grocy.ProductLocation
	failures         map[string]int
	calls            map[string]int
}

// NewFakeGrocy starts a fake Grocy server and registers its shutdown.
func NewFakeGrocy(t testing.TB) *FakeGrocy {
	t.Helper()

	fake := &FakeGrocy{
		APIKey:           "test-key",
		productLocations: make(map[int][]grocy.ProductLocation),
		failures:         make(map[string]int),
		calls:            make(map[string]int),
	}
	fake.server = httptest.NewServer(http.HandlerFunc(fake.serve))
	t.Cleanup(fake.server.Close)
	return fake
}

// URL returns the server base URL.
func (f *FakeGrocy) URL() string {
	return f.server.URL
}

// AddGroup registers a product group.
func (f *FakeGrocy) AddGroup(id int, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.groups = append(f.groups, grocy.NamedObject{ID: grocy.ID(id), Name: name})
}

// AddLocation registers a location.
func (f *FakeGrocy) AddLocation(id int, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.locations = append(f.locations, grocy.NamedObject{ID: grocy.ID(id), Name: name})
}

// AddProduct registers a product and, when amount is non-negative, a stock
// entry for it. groupID <= 0 leaves the product without a group. Each
// locationID in locations becomes a per-product location row named after a
// location registered earlier with AddLocation.
func (f *FakeGrocy) AddProduct(id int, name string, groupID int, amount float64, locations ...int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	group := grocy.OptionalID{}
	if groupID > 0 {
		group = grocy.Some(groupID)
	}
	f.products = append(f.products, grocy.Product{ID: grocy.ID(id), Name: name, ProductGroupID: group})
	if amount >= 0 {
		f.stock = append(f.stock, grocy.StockEntry{
			ProductID: grocy.ID(id),
			Amount:    grocy.Amount(amount),
			Product:   grocy.StockProduct{ID: grocy.ID(id), Name: name, ProductGroupID: group},
		})
	}
	for _, locationID := range locations {
		f.productLocations[id] = append(f.productLocations[id], grocy.ProductLocation{
			ProductID:    grocy.ID(id),
			Amount:       grocy.Amount(amount),
			LocationID:   grocy.Some(locationID),
			LocationName: f.locationNameLocked(locationID),
		})
	}
}

// Fail makes path answer with status instead of its fixture.
func (f *FakeGrocy) Fail(path string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[path] = status
}

// Calls reports how many requests path received.
func (f *FakeGrocy) Calls(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[path]
}

func (f *FakeGrocy) locationNameLocked(id int) string {
	for _, loc := range f.locations {
		if int(loc.ID) == id {
			return loc.Name
		}
	}
	return ""
}

func (f *FakeGrocy) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[r.URL.Path]++
	if r.Header.Get(grocy.APIKeyHeader) != f.APIKey {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if status, ok := f.failures[r.URL.Path]; ok {
		w.WriteHeader(status)
		return
	}

	var payload any
	switch path := r.URL.Path; {
	case path == "/api/stock":
		payload = orEmpty(f.stock)
	case path == "/api/objects/product_groups":
		payload = orEmpty(f.groups)
	case path == "/api/objects/locations":
		payload = orEmpty(f.locations)
	case path == "/api/objects/products":
		payload = orEmpty(f.products)
	case path == "/api/system/info":
		payload = map[string]any{"grocy_version": map[string]string{"Version": "4.2.0"}}
	case strings.HasPrefix(path, "/api/stock/products/") && strings.HasSuffix(path, "/locations"):
		raw := strings.TrimSuffix(strings.TrimPrefix(path, "/api/stock/products/"), "/locations")
		id, err := strconv.Atoi(raw)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		payload = orEmpty(f.productLocations[id])
	default:
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

func orEmpty[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
