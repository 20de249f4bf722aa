// Package product contains the catalog aggregate: a Product that owns its size
// Variations. The aggregate enforces the availability invariant of the catalog:
// a variation may be available only while its parent product is available, and
// disabling a product disables every variation it owns.
package product
