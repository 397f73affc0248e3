package order_test

import (
	"testing"

	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		in      int
		want    order.Status
		wantErr bool
	}{
		{name: "pending", in: 0, want: order.Pending},
		{name: "delivered", in: 1, want: order.Delivered},
		{name: "two", in: 2, wantErr: true},
		{name: "negative", in: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := order.ParseStatus(tt.in)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				require.ErrorIs(t, err, order.ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.Int())
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Unknown", order.Status(7).String())
}
