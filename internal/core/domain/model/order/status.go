package order

import (
	"errors"
	"fmt"

	"littlelemon/internal/pkg/errs"
)

// ErrInvalidStatus carries the message shown to API clients for a bad status value.
var ErrInvalidStatus = errors.New("Invalid status value. It should be 0 or 1.")

// Status is the delivery state of an order.
//
// The wire and storage form is the integer value: 0 for pending, 1 for delivered.
// Both directions are allowed; a manager may reopen a delivered order.
type Status int

const (
	// Pending is the status of every freshly placed order.
	Pending Status = iota

	// Delivered marks an order handed to the customer.
	Delivered
)

// ParseStatus validates a raw status value coming from a client or the database.
func ParseStatus(v int) (Status, error) {
	s := Status(v)
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return s, nil
}

// Validate checks that the status is Pending or Delivered.
func (s Status) Validate() error {
	if s != Pending && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%w (got %d)", ErrInvalidStatus, int(s)))
	}
	return nil
}

// Int returns the wire form of the status.
func (s Status) Int() int {
	return int(s)
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Delivered:
		return "Delivered"
	default:
		return "Unknown"
	}
}
