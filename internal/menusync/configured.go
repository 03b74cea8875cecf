package menusync

import (
	"fmt"
	"log/slog"

	"grocymenu/internal/config"
	"grocymenu/internal/grocy"
	"grocymenu/internal/menufile"
	"grocymenu/internal/organizer"
)

// NewFromConfig builds a Syncer backed by the Grocy client and menu file
// writer described by cfg. A non-empty outputPath replaces menu.output_path.
func NewFromConfig(cfg *config.Config, outputPath string, logger *slog.Logger) (*Syncer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	client, err := grocy.New(cfg.Grocy.URL, cfg.Grocy.APIKey, grocy.WithTimeout(cfg.RequestTimeout()))
	if err != nil {
		return nil, fmt.Errorf("init grocy client: %w", err)
	}
	if outputPath == "" {
		outputPath = cfg.Menu.OutputPath
	}
	return New(Options{
		Source:   client,
		Taxonomy: organizer.FromConfig(cfg),
		Writer:   menufile.NewWriter(outputPath),
		Workers:  cfg.Grocy.LocationWorkers,
		Logger:   logger,
	})
}
