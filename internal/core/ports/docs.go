// Package ports defines the contracts between the application core and its
// adapters: repositories bound to a unit of work, token and password services,
// the request rate limiter and the order notifier.
package ports
