package testsupport

import (
	"path/filepath"
	"testing"

	"grocymenu/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose output file lives in a unique temp
// directory. It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Grocy.URL = "http://127.0.0.1:1"
	cfgVal.Grocy.APIKey = "test"
	cfgVal.Grocy.TimeoutSeconds = 5
	cfgVal.Menu.OutputPath = filepath.Join(base, "_data", "menu_auto.yml")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithGrocy points the test config at a fake Grocy server.
func WithGrocy(fake *FakeGrocy) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Grocy.URL = fake.URL()
		b.cfg.Grocy.APIKey = fake.APIKey
	}
}

// WithCategories replaces the category ordering.
func WithCategories(categories ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Menu.Categories = append([]string(nil), categories...)
	}
}
