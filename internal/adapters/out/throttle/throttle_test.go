package throttle_test

import (
	"errors"
	"testing"
	"time"

	"littlelemon/internal/adapters/out/throttle"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRate(t *testing.T) {
	tests := []struct {
		in   string
		want throttle.Rate
	}{
		{"60/minute", throttle.Rate{Limit: 60, Period: time.Minute}},
		{"5/s", throttle.Rate{Limit: 5, Period: time.Second}},
		{" 100 / hour ", throttle.Rate{Limit: 100, Period: time.Hour}},
		{"1000/day", throttle.Rate{Limit: 1000, Period: 24 * time.Hour}},
	}
	for _, tt := range tests {
		got, err := throttle.ParseRate(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseRate_Invalid(t *testing.T) {
	for _, in := range []string{"", "60", "0/minute", "-1/s", "ten/minute", "10/", "10/week"} {
		_, err := throttle.ParseRate(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid) || errors.Is(err, errs.ErrValueIsRequired), in)
	}
}

func TestMemoryLimiter_DeniesAfterLimit(t *testing.T) {
	l := throttle.NewMemoryLimiter(throttle.Rate{Limit: 3, Period: time.Hour})
	ctx := t.Context()

	for i := range 3 {
		ok, err := l.Allow(ctx, "user:1:orders")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i+1)
	}

	ok, err := l.Allow(ctx, "user:1:orders")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Allow(ctx, "user:2:orders")
	require.NoError(t, err)
	assert.True(t, ok, "other keys have their own bucket")
}
