// Package services provides domain services that implement business rules
// spanning multiple aggregates in the ordering system.
//
// The package includes:
//   - OrderAccessPolicy: A domain service deciding which orders a caller may read
//
// Domain services keep cross-aggregate logic out of transport and persistence
// layers, so the rules stay testable in isolation.
package services
