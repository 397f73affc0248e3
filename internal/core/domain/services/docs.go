// Package services provides domain services that span more than one aggregate.
//
// The package includes:
//   - AccessPolicy: decides which role may perform which operation, and for
//     order operations, on which orders
//
// Every decision is made from the Actor's resolved role before any input is
// validated, so a forbidden caller never learns whether their payload was valid.
package services
