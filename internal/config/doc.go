// Package config loads, normalizes, and validates grocymenu configuration data.
//
// It supplies repository defaults (including the reviewed category ordering),
// expands user paths, reads TOML files, and honours the GROCY_URL and
// GROCY_API_KEY environment fallbacks. The Config type centralizes every knob
// the CLI and the sync pipeline need so credentials and taxonomy settings are
// resolved once per run.
//
// Always obtain settings through this package so downstream code receives
// trimmed URLs, canonical log formats, and clear validation errors.
package config
