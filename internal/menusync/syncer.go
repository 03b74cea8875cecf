package menusync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"grocymenu/internal/grocy"
	"grocymenu/internal/logging"
	"grocymenu/internal/menufile"
	"grocymenu/internal/organizer"
	"grocymenu/internal/residency"
)

// Stats summarizes one run.
type Stats struct {
	StockEntries     int
	ZeroQuantity     int
	Products         int
	Residents        int
	FailedLookups    int
	Locations        int
	Categories       int
	Items            int
	LocationNotFound bool
}

// Result is the outcome of Build or Run.
type Result struct {
	RunID      string
	Sections   []menufile.Section
	Stats      Stats
	OutputPath string
	Duration   time.Duration
}

// MenuWriter persists the ordered sections.
type MenuWriter interface {
	Write(ctx context.Context, sections []menufile.Section) (string, error)
}

// Syncer wires the pipeline stages together.
type Syncer struct {
	source   grocy.Source
	taxonomy organizer.Taxonomy
	resolver *residency.Resolver
	writer   MenuWriter
	logger   *slog.Logger
}

// Options configures a Syncer.
type Options struct {
	Source   grocy.Source
	Taxonomy organizer.Taxonomy
	Writer   MenuWriter
	Workers  int
	Logger   *slog.Logger
}

// New constructs a Syncer.
func New(opts Options) (*Syncer, error) {
	if opts.Source == nil {
		return nil, errors.New("menusync requires a grocy source")
	}
	if len(opts.Taxonomy.Categories) == 0 {
		return nil, errors.New("menusync requires at least one category")
	}
	return &Syncer{
		source:   opts.Source,
		taxonomy: opts.Taxonomy,
		resolver: residency.NewResolver(opts.Source, opts.Workers, opts.Logger),
		writer:   opts.Writer,
		logger:   logging.NewComponentLogger(opts.Logger, "menusync"),
	}, nil
}

// Build fetches and organizes the menu without writing it.
func (s *Syncer) Build(ctx context.Context) (*Result, error) {
	result := &Result{RunID: uuid.NewString()}
	ctx = logging.WithRunID(ctx, result.RunID)
	logger := logging.WithContext(ctx, s.logger)
	start := time.Now()

	stock, err := s.source.Stock(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch stock: %w", err)
	}
	result.Stats.StockEntries = len(stock)
	for _, entry := range stock {
		if entry.Amount == 0 {
			result.Stats.ZeroQuantity++
		}
	}

	groups, err := s.source.ProductGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch product groups: %w", err)
	}

	locations, err := s.source.Locations(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch locations: %w", err)
	}
	result.Stats.Locations = len(locations)
	if !hasLocation(locations, s.taxonomy.Location) {
		result.Stats.LocationNotFound = true
		logging.WarnWithContext(logger, "marker location not found in grocy", "location_missing",
			logging.String("location", s.taxonomy.Location),
			logging.Int("locations", len(locations)),
			logging.String(logging.FieldImpact, "no items will carry the location marker"),
			logging.String(logging.FieldErrorHint, "check menu.fridge_location against the Grocy location names"),
		)
	}

	residents, err := s.resolver.Resolve(ctx, s.taxonomy.Location)
	if err != nil {
		return nil, fmt.Errorf("resolve %s items: %w", s.taxonomy.Location, err)
	}
	result.Stats.Products = residents.Checked
	result.Stats.Residents = len(residents.Residents)
	result.Stats.FailedLookups = len(residents.Failed)

	categorized, err := organizer.Organize(stock, groups, residents.Residents, s.taxonomy)
	if err != nil {
		return nil, err
	}
	result.Sections = menufile.Sections(categorized, s.taxonomy)
	result.Stats.Categories = len(result.Sections)
	result.Stats.Items = categorized.ItemCount()
	result.Duration = time.Since(start)

	logger.Info("menu built",
		logging.String(logging.FieldEventType, "menu_built"),
		logging.Int("stock_entries", result.Stats.StockEntries),
		logging.Int("zero_quantity", result.Stats.ZeroQuantity),
		logging.Int("categories", result.Stats.Categories),
		logging.Int("items", result.Stats.Items),
		logging.Int("resident", result.Stats.Residents),
		logging.Int("failed_lookups", result.Stats.FailedLookups),
		logging.Duration("duration", result.Duration),
	)
	return result, nil
}

// Run builds the menu and writes it. The writer is only invoked after the
// whole build succeeded.
func (s *Syncer) Run(ctx context.Context) (*Result, error) {
	if s.writer == nil {
		return nil, errors.New("menusync run requires a writer")
	}
	result, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}
	path, err := s.writer.Write(ctx, result.Sections)
	if err != nil {
		return nil, fmt.Errorf("write menu: %w", err)
	}
	result.OutputPath = path

	logging.WithContext(logging.WithRunID(ctx, result.RunID), s.logger).Info("menu written",
		logging.String(logging.FieldEventType, "menu_written"),
		logging.String("path", path),
	)
	return result, nil
}

func hasLocation(locations map[int]string, name string) bool {
	for _, candidate := range locations {
		if candidate == name {
			return true
		}
	}
	return false
}
