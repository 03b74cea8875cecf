package residency_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"grocymenu/internal/grocy"
	"grocymenu/internal/logging"
	"grocymenu/internal/residency"
)

type stubLookup struct {
	products    []grocy.Product
	productsErr error
	locations   map[int][]grocy.ProductLocation
	failing     map[int]error
	delay       time.Duration

	inFlight atomic.Int32
	maxSeen  atomic.Int32
	mu       sync.Mutex
	calls    []int
}

func (s *stubLookup) Products(context.Context) ([]grocy.Product, error) {
	return s.products, s.productsErr
}

func (s *stubLookup) ProductLocations(ctx context.Context, id int) ([]grocy.ProductLocation, error) {
	current := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		seen := s.maxSeen.Load()
		if current <= seen || s.maxSeen.CompareAndSwap(seen, current) {
			break
		}
	}
	s.mu.Lock()
	s.calls = append(s.calls, id)
	s.mu.Unlock()
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := s.failing[id]; err != nil {
		return nil, err
	}
	return s.locations[id], nil
}

func product(id int, name string) grocy.Product {
	return grocy.Product{ID: grocy.ID(id), Name: name}
}

func at(id int, name string) grocy.ProductLocation {
	return grocy.ProductLocation{LocationID: grocy.Some(id), LocationName: name}
}

func TestResolveMarksProductsInTargetLocation(t *testing.T) {
	lookup := &stubLookup{
		products: []grocy.Product{product(1, "Cola"), product(2, "Chips"), product(3, "Bier"), product(4, "Ghost")},
		locations: map[int][]grocy.ProductLocation{
			1: {at(3, "Pantry"), at(2, "Fridge")},
			2: {at(3, "Pantry")},
			3: {at(2, "fridge")},
			4: {{LocationName: "Fridge"}},
		},
	}

	result, err := residency.NewResolver(lookup, 2, logging.NewNop()).Resolve(context.Background(), "Fridge")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !result.Residents.Contains("Cola") {
		t.Fatal("expected Cola to be resident")
	}
	if result.Residents.Contains("Chips") {
		t.Fatal("Chips is only in the pantry")
	}
	if result.Residents.Contains("Bier") {
		t.Fatal("location names must match exactly")
	}
	if result.Residents.Contains("Ghost") {
		t.Fatal("rows without a location id must be ignored")
	}
	if result.Checked != 4 || len(result.Failed) != 0 {
		t.Fatalf("unexpected result counters: %+v", result)
	}
}

func TestResolveSkipsFailedLookups(t *testing.T) {
	var logs bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &logs})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	lookup := &stubLookup{
		products: []grocy.Product{product(1, "Cola"), product(2, "Tonic"), product(3, "Bier")},
		locations: map[int][]grocy.ProductLocation{
			1: {at(2, "Fridge")},
			2: {at(2, "Fridge")},
			3: {at(2, "Fridge")},
		},
		failing: map[int]error{2: &grocy.StatusError{Endpoint: "product locations", StatusCode: 500}},
	}

	result, err := residency.NewResolver(lookup, 1, logger).Resolve(context.Background(), "Fridge")
	if err != nil {
		t.Fatalf("per-product failures must not abort: %v", err)
	}
	if !result.Residents.Contains("Cola") || !result.Residents.Contains("Bier") {
		t.Fatalf("other products must still resolve: %v", result.Residents)
	}
	if result.Residents.Contains("Tonic") {
		t.Fatal("failed product must be excluded")
	}
	if len(result.Failed) != 1 || result.Failed[0] != "Tonic" {
		t.Fatalf("unexpected failed list: %v", result.Failed)
	}
	if !strings.Contains(logs.String(), "WARN residency: product location lookup failed") || !strings.Contains(logs.String(), "product=Tonic") {
		t.Fatalf("expected warning naming the product, got %q", logs.String())
	}
}

func TestResolveProductListFailureIsFatal(t *testing.T) {
	listErr := &grocy.StatusError{Endpoint: "products", StatusCode: 502}
	lookup := &stubLookup{productsErr: listErr}

	_, err := residency.NewResolver(lookup, 4, nil).Resolve(context.Background(), "Fridge")
	if !errors.Is(err, grocy.ErrUnexpectedStatus) {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestResolveBoundsConcurrency(t *testing.T) {
	products := make([]grocy.Product, 0, 20)
	locations := make(map[int][]grocy.ProductLocation)
	for i := 1; i <= 20; i++ {
		products = append(products, product(i, "p"+string(rune('a'+i))))
		locations[i] = []grocy.ProductLocation{at(2, "Fridge")}
	}
	lookup := &stubLookup{products: products, locations: locations, delay: 5 * time.Millisecond}

	result, err := residency.NewResolver(lookup, 3, nil).Resolve(context.Background(), "Fridge")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := lookup.maxSeen.Load(); got > 3 {
		t.Fatalf("expected at most 3 concurrent lookups, saw %d", got)
	}
	if len(result.Residents) != 20 {
		t.Fatalf("expected 20 residents, got %d", len(result.Residents))
	}
	if len(lookup.calls) != 20 {
		t.Fatalf("expected one call per product, got %d", len(lookup.calls))
	}
}

func TestResolveSerialWithOneWorker(t *testing.T) {
	lookup := &stubLookup{
		products:  []grocy.Product{product(1, "a"), product(2, "b"), product(3, "c")},
		locations: map[int][]grocy.ProductLocation{},
		delay:     time.Millisecond,
	}
	if _, err := residency.NewResolver(lookup, 0, nil).Resolve(context.Background(), "Fridge"); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := lookup.maxSeen.Load(); got != 1 {
		t.Fatalf("expected serial lookups, saw %d in flight", got)
	}
}

func TestResolveHonoursCancellation(t *testing.T) {
	lookup := &stubLookup{
		products: []grocy.Product{product(1, "a"), product(2, "b")},
		delay:    time.Second,
	}
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)

	_, err := residency.NewResolver(lookup, 2, nil).Resolve(ctx, "Fridge")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
