package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeGrocy()
	if err := c.normalizeMenu(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeGrocy() {
	if strings.TrimSpace(c.Grocy.URL) == "" {
		if value, ok := os.LookupEnv("GROCY_URL"); ok {
			c.Grocy.URL = value
		}
	}
	if strings.TrimSpace(c.Grocy.APIKey) == "" {
		if value, ok := os.LookupEnv("GROCY_API_KEY"); ok {
			c.Grocy.APIKey = value
		}
	}
	c.Grocy.URL = strings.TrimRight(strings.TrimSpace(c.Grocy.URL), "/")
	c.Grocy.APIKey = strings.TrimSpace(c.Grocy.APIKey)
	if c.Grocy.TimeoutSeconds <= 0 {
		c.Grocy.TimeoutSeconds = defaultGrocyTimeoutSeconds
	}
	if c.Grocy.LocationWorkers <= 0 {
		c.Grocy.LocationWorkers = defaultGrocyLocationWorkers
	}
}

func (c *Config) normalizeMenu() error {
	if strings.TrimSpace(c.Menu.OutputPath) == "" {
		c.Menu.OutputPath = defaultOutputPath
	}
	var err error
	if c.Menu.OutputPath, err = expandPath(strings.TrimSpace(c.Menu.OutputPath)); err != nil {
		return fmt.Errorf("menu.output_path: %w", err)
	}

	if len(c.Menu.Categories) == 0 {
		c.Menu.Categories = append([]string(nil), DefaultCategories...)
	} else {
		categories := make([]string, 0, len(c.Menu.Categories))
		for _, category := range c.Menu.Categories {
			trimmed := strings.TrimSpace(category)
			if trimmed == "" {
				continue
			}
			categories = append(categories, trimmed)
		}
		c.Menu.Categories = categories
	}

	// The location name is matched exactly, so only surrounding whitespace
	// from the config file is dropped.
	c.Menu.FridgeLocation = strings.TrimSpace(c.Menu.FridgeLocation)
	if c.Menu.FridgeLocation == "" {
		c.Menu.FridgeLocation = defaultFridgeLocation
	}
	c.Menu.FridgeMarker = strings.TrimSpace(c.Menu.FridgeMarker)
	if c.Menu.FridgeMarker == "" {
		c.Menu.FridgeMarker = defaultFridgeMarker
	}
	c.Menu.UnknownCategory = strings.TrimSpace(c.Menu.UnknownCategory)
	if c.Menu.UnknownCategory == "" {
		c.Menu.UnknownCategory = defaultUnknownCategory
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
