package residency

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"grocymenu/internal/grocy"
	"grocymenu/internal/logging"
)

// Lookup is the subset of the Grocy client the resolver needs.
type Lookup interface {
	Products(ctx context.Context) ([]grocy.Product, error)
	ProductLocations(ctx context.Context, productID int) ([]grocy.ProductLocation, error)
}

// Set holds product names confirmed to be in the target location.
type Set map[string]struct{}

// Contains reports whether name is resident.
func (s Set) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Result is the outcome of one resolution.
type Result struct {
	Residents Set
	Checked   int
	// Failed lists products whose location lookup errored.
	Failed []string
}

// Resolver resolves location membership.
type Resolver struct {
	lookup  Lookup
	workers int
	logger  *slog.Logger
}

// NewResolver builds a resolver issuing at most workers concurrent lookups.
func NewResolver(lookup Lookup, workers int, logger *slog.Logger) *Resolver {
	if workers < 1 {
		workers = 1
	}
	return &Resolver{
		lookup:  lookup,
		workers: workers,
		logger:  logging.NewComponentLogger(logger, "residency"),
	}
}

// Resolve returns the names of products with stock in the location named
// target. A location row counts only when it carries a location id and its
// name equals target exactly.
func (r *Resolver) Resolve(ctx context.Context, target string) (*Result, error) {
	products, err := r.lookup.Products(ctx)
	if err != nil {
		return nil, err
	}
	logger := logging.WithContext(ctx, r.logger)

	var (
		mu     sync.Mutex
		result = &Result{Residents: make(Set), Checked: len(products)}
	)

	// Workers never return an error, so gctx is only cancelled with ctx.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for _, product := range products {
		g.Go(func() error {
			locations, err := r.lookup.ProductLocations(gctx, int(product.ID))
			if err != nil {
				if gctx.Err() != nil {
					return nil
				}
				logging.WarnWithContext(logger, "product location lookup failed", "location_lookup_failed",
					logging.String("product", product.Name),
					logging.Int("product_id", int(product.ID)),
					logging.Error(err),
					logging.String(logging.FieldImpact, "product is listed without the location marker"),
					logging.String(logging.FieldErrorHint, "check the product in Grocy"),
				)
				mu.Lock()
				result.Failed = append(result.Failed, product.Name)
				mu.Unlock()
				return nil
			}
			if !storedIn(locations, target) {
				return nil
			}
			mu.Lock()
			result.Residents[product.Name] = struct{}{}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	slices.Sort(result.Failed)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("resolve %s residency: %w", target, err)
	}

	logger.Debug("residency resolved",
		logging.String("location", target),
		logging.Int("products", result.Checked),
		logging.Int("resident", len(result.Residents)),
		logging.Int("failed", len(result.Failed)),
	)
	return result, nil
}

func storedIn(locations []grocy.ProductLocation, target string) bool {
	for _, loc := range locations {
		if loc.LocationID.Valid && loc.LocationName == target {
			return true
		}
	}
	return false
}
