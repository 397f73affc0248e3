// Package kernel provides core domain primitives shared by the ordering aggregates.
//
// The package includes:
//   - Money: a non-negative decimal amount with two fractional digits
//   - Price: the Money constructor used for catalog prices (positive, bounded)
//   - Quantity: a bounded positive line-item count
//
// Values are immutable and safe for concurrent use.
package kernel
