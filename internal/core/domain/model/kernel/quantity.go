package kernel

import "littlelemon/internal/pkg/errs"

const (
	MinQuantity = 1
	// MaxQuantity matches the smallint column backing cart and order item quantities.
	MaxQuantity = 32767
)

// Quantity is a positive line-item count.
type Quantity struct {
	value int
}

// NewQuantity validates that value lies in [MinQuantity, MaxQuantity].
func NewQuantity(value int) (Quantity, error) {
	if value < MinQuantity || value > MaxQuantity {
		return Quantity{}, errs.NewValueIsOutOfRangeError("quantity", value, MinQuantity, MaxQuantity)
	}
	return Quantity{value: value}, nil
}

func (q Quantity) Int() int {
	return q.value
}

// IsZero reports whether q is the zero value, i.e. was not built by NewQuantity.
func (q Quantity) IsZero() bool {
	return q.value == 0
}
