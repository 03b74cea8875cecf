// Package grocy provides the minimal Grocy REST client used to build the menu.
//
// It authenticates every request with the GROCY-API-KEY header and exposes the
// stock listing, product-group, location, and product objects, plus the
// per-product location breakdown. Responses are decoded into small typed
// structs that tolerate the string-encoded numbers older Grocy releases emit.
// Any non-success status surfaces as a *StatusError carrying the HTTP code.
package grocy
