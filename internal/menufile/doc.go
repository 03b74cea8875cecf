// Package menufile writes the categorized menu as the YAML data file read by
// the static site generator.
//
// Sections follow the taxonomy order and absent categories are omitted. The
// file is replaced atomically under an advisory lock, so a failed run never
// leaves a truncated or half-written menu behind.
package menufile
