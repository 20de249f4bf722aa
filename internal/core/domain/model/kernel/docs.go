// Package kernel contains the shared value objects of the domain model:
// opaque identifiers and exact-decimal money amounts. These types are immutable,
// validated at construction and safe to copy, making them suitable building
// blocks for every aggregate in the catalog and ordering domains.
package kernel
