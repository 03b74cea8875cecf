// Package residency decides which products are stored in a named Grocy
// location, such as the fridge.
//
// The resolver lists every product and asks Grocy for each product's stock
// locations through a bounded worker pool. A failed lookup for one product is
// logged and that product is treated as not resident; only the product listing
// itself is fatal.
package residency
