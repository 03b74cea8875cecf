// Package menusync runs the stock-to-menu pipeline: fetch stock and metadata
// from Grocy, resolve location residency, organize items by category, and
// write the menu file.
//
// Stages run in order and any fatal error stops the run before the writer is
// reached, so the previous menu file stays in place.
package menusync
