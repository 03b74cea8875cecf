// Package organizer turns raw Grocy stock into menu categories.
//
// It joins stock entries with product-group names and the set of products
// resident in the marked location, drops zero-quantity items, and groups the
// remaining display names per category in source order. Every category must
// appear in the reviewed Taxonomy; an unlisted category aborts the run with a
// *TaxonomyError so taxonomy drift is never published silently.
package organizer
