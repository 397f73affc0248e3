// Package identity models the actors of the ordering system.
//
// Roles are derived from group membership in the identity store:
//   - Manager: member of the "Manager" group (checked first)
//   - DeliveryCrew: member of the "Delivery crew" group
//   - Customer: no recognized group
//
// The role is resolved once per request and carried as an Actor, so handlers
// dispatch on Actor.Role() instead of querying membership again.
package identity
