// Package order provides the Order aggregate: an immutable snapshot of a customer's
// cart together with its delivery assignment and status.
//
// The package includes:
//   - Order: the aggregate root, created from a non-empty cart by PlaceOrder
//   - Item: a frozen copy of one cart line
//   - Status: the binary delivery state (Pending or Delivered)
//
// Key business rules:
//   - An order cannot be placed from an empty cart
//   - The total equals the sum of item prices at placement and never changes
//   - Items are immutable once placed
//   - Status is 0 (pending) or 1 (delivered); anything else is rejected
//   - An update is validated as a whole before anything changes
package order
