package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateGrocy(); err != nil {
		return err
	}
	if err := c.validateMenu(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateGrocy() error {
	defaultPath, err := DefaultConfigPath()
	if err != nil {
		defaultPath = "~/.config/grocymenu/config.toml"
	}
	if c.Grocy.URL == "" {
		return fmt.Errorf("grocy.url is required. Set GROCY_URL env var or edit %s (create with 'grocymenu config init')", defaultPath)
	}
	parsed, err := url.Parse(c.Grocy.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("grocy.url %q must be an absolute http(s) URL", c.Grocy.URL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("grocy.url scheme %q is not supported", parsed.Scheme)
	}
	if c.Grocy.APIKey == "" {
		return fmt.Errorf("grocy.api_key is required. Set GROCY_API_KEY env var or edit %s", defaultPath)
	}
	if c.Grocy.LocationWorkers > maxLocationWorkers {
		return fmt.Errorf("grocy.location_workers must be at most %d", maxLocationWorkers)
	}
	return nil
}

func (c *Config) validateMenu() error {
	if len(c.Menu.Categories) == 0 {
		return errors.New("menu.categories must list at least one category")
	}
	seen := make(map[string]struct{}, len(c.Menu.Categories))
	for _, category := range c.Menu.Categories {
		if _, ok := seen[category]; ok {
			return fmt.Errorf("menu.categories lists %q more than once", category)
		}
		seen[category] = struct{}{}
	}
	if strings.ContainsAny(c.Menu.FridgeMarker, "\n\r") {
		return errors.New("menu.fridge_marker must be a single line")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not supported (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not supported", c.Logging.Level)
	}
	return nil
}
