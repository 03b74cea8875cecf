package grocy_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"grocymenu/internal/grocy"
	"grocymenu/internal/testsupport"
)

func TestNewRequiresCredentials(t *testing.T) {
	if _, err := grocy.New("https://grocy.test", ""); err == nil {
		t.Fatal("expected error when api key missing")
	}
	if _, err := grocy.New("", "key"); err == nil {
		t.Fatal("expected error when base url missing")
	}
}

func TestStockSendsAPIKeyAndDecodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stock" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("GROCY-API-KEY"); got != "key" {
			t.Errorf("expected api key header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"product_id":"1","amount":"2","product":{"id":"1","name":"Cola","product_group_id":"1"}},
			{"product_id":5,"amount":0,"product":{"id":5,"name":"Beer","product_group_id":5}},
			{"product_id":7,"amount":1.5,"product":{"id":7,"name":"Nootjes","product_group_id":null}},
			{"product_id":8,"amount":3,"product":{"id":8,"name":"Ranja","product_group_id":""}}
		]`))
	}))
	t.Cleanup(server.Close)

	client, err := grocy.New(server.URL+"/", "key")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	stock, err := client.Stock(context.Background())
	if err != nil {
		t.Fatalf("Stock returned error: %v", err)
	}
	if len(stock) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(stock))
	}
	if stock[0].Product.Name != "Cola" || stock[0].Amount != 2 || stock[0].Product.ProductGroupID != grocy.Some(1) {
		t.Fatalf("unexpected first entry: %+v", stock[0])
	}
	if stock[1].Amount != 0 || stock[1].Product.ProductGroupID != grocy.Some(5) {
		t.Fatalf("unexpected second entry: %+v", stock[1])
	}
	if stock[2].Amount != 1.5 || stock[2].Product.ProductGroupID.Valid {
		t.Fatalf("expected null group to be absent: %+v", stock[2])
	}
	if stock[3].Product.ProductGroupID.Valid {
		t.Fatalf("expected empty-string group to be absent: %+v", stock[3])
	}
}

func TestNamedObjectEndpoints(t *testing.T) {
	fake := testsupport.NewFakeGrocy(t)
	fake.AddGroup(1, "Frisdranken")
	fake.AddGroup(5, "Bieren")
	fake.AddLocation(2, "Fridge")

	client, err := grocy.New(fake.URL(), fake.APIKey)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	groups, err := client.ProductGroups(context.Background())
	if err != nil {
		t.Fatalf("ProductGroups: %v", err)
	}
	if len(groups) != 2 || groups[1] != "Frisdranken" || groups[5] != "Bieren" {
		t.Fatalf("unexpected groups: %v", groups)
	}
	locations, err := client.Locations(context.Background())
	if err != nil {
		t.Fatalf("Locations: %v", err)
	}
	if locations[2] != "Fridge" {
		t.Fatalf("unexpected locations: %v", locations)
	}
}

func TestProductLocations(t *testing.T) {
	fake := testsupport.NewFakeGrocy(t)
	fake.AddLocation(2, "Fridge")
	fake.AddLocation(3, "Pantry")
	fake.AddProduct(11, "Cola", 1, 2, 3, 2)

	client, err := grocy.New(fake.URL(), fake.APIKey)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	products, err := client.Products(context.Background())
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 1 || products[0].ID != 11 {
		t.Fatalf("unexpected products: %+v", products)
	}
	locations, err := client.ProductLocations(context.Background(), 11)
	if err != nil {
		t.Fatalf("ProductLocations: %v", err)
	}
	if len(locations) != 2 || locations[0].LocationName != "Pantry" || locations[1].LocationName != "Fridge" {
		t.Fatalf("unexpected locations: %+v", locations)
	}
	if fake.Calls("/api/stock/products/11/locations") != 1 {
		t.Fatalf("expected one per-product call")
	}
}

func TestNonSuccessStatusCarriesCode(t *testing.T) {
	fake := testsupport.NewFakeGrocy(t)
	fake.Fail("/api/objects/product_groups", http.StatusInternalServerError)

	client, err := grocy.New(fake.URL(), fake.APIKey)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	_, err = client.ProductGroups(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if !errors.Is(err, grocy.ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
	}
	code, ok := grocy.StatusCode(err)
	if !ok || code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d (ok=%v)", code, ok)
	}
	if want := "failed to retrieve product groups: grocy returned status code 500"; err.Error() != want {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestWrongAPIKeyIsStatusError(t *testing.T) {
	fake := testsupport.NewFakeGrocy(t)
	client, err := grocy.New(fake.URL(), "wrong")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	_, err = client.Stock(context.Background())
	if code, ok := grocy.StatusCode(err); !ok || code != http.StatusUnauthorized {
		t.Fatalf("expected 401 status error, got %v", err)
	}
}

func TestTimeoutBoundsSlowServer(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	client, err := grocy.New(server.URL, "key", grocy.WithTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	start := time.Now()
	if _, err := client.Locations(context.Background()); err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("request was not bounded by timeout: %v", elapsed)
	}
}

func TestMalformedJSONFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	t.Cleanup(server.Close)

	client, err := grocy.New(server.URL, "key")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.Stock(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestOptionalIDRoundTrip(t *testing.T) {
	data, err := json.Marshal(struct {
		A grocy.OptionalID `json:"a"`
		B grocy.OptionalID `json:"b"`
	}{A: grocy.Some(4)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"a":4,"b":null}` {
		t.Fatalf("unexpected encoding %s", data)
	}
}
