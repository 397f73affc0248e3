// Package throttle implements request rate limiting per actor and endpoint.
package throttle

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"littlelemon/internal/pkg/errs"
)

// Rate is a number of requests allowed per period.
type Rate struct {
	Limit  int
	Period time.Duration
}

// ParseRate reads rates such as "60/minute", "5/s" or "1000/day". Only the first
// letter of the period is significant.
func ParseRate(s string) (Rate, error) {
	count, period, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Rate{}, errs.NewValueIsInvalidErrorWithCause("rate", fmt.Errorf("%q is not N/period", s))
	}

	limit, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil || limit <= 0 {
		return Rate{}, errs.NewValueIsInvalidErrorWithCause("rate", fmt.Errorf("%q is not a positive count", count))
	}

	period = strings.ToLower(strings.TrimSpace(period))
	if period == "" {
		return Rate{}, errs.NewValueIsRequiredError("rate period")
	}
	var d time.Duration
	switch period[0] {
	case 's':
		d = time.Second
	case 'm':
		d = time.Minute
	case 'h':
		d = time.Hour
	case 'd':
		d = 24 * time.Hour
	default:
		return Rate{}, errs.NewValueIsInvalidErrorWithCause("rate period", fmt.Errorf("unknown period %q", period))
	}

	return Rate{Limit: limit, Period: d}, nil
}

func (r Rate) String() string {
	return fmt.Sprintf("%d/%s", r.Limit, r.Period)
}
