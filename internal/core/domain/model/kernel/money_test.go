package kernel_test

import (
	"testing"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr error
	}{
		{name: "regular price", amount: "9.00"},
		{name: "minimum price", amount: "0.01"},
		{name: "maximum price", amount: "9999.99"},
		{name: "zero", amount: "0", wantErr: errs.ErrValueIsOutOfRange},
		{name: "negative", amount: "-1.50", wantErr: errs.ErrValueIsOutOfRange},
		{name: "too large", amount: "10000", wantErr: errs.ErrValueIsOutOfRange},
		{name: "three decimal places", amount: "1.005", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := kernel.NewPrice(decimal.RequireFromString(tt.amount))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, price.Decimal().Equal(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	price, err := kernel.NewPrice(decimal.RequireFromString("9"))
	require.NoError(t, err)
	qty, err := kernel.NewQuantity(2)
	require.NoError(t, err)

	line := price.Mul(qty)
	assert.Equal(t, "18.00", line.String())

	total := kernel.ZeroMoney().Add(line).Add(price)
	assert.Equal(t, "27.00", total.String())
	assert.True(t, total.IsEqual(kernel.ZeroMoney().Add(price.Mul(qty)).Add(price)))
}

func TestNewMoney(t *testing.T) {
	m, err := kernel.NewMoney(decimal.RequireFromString("12.345"))
	require.NoError(t, err)
	assert.Equal(t, "12.35", m.String())

	_, err = kernel.NewMoney(decimal.RequireFromString("-0.01"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewQuantity(t *testing.T) {
	q, err := kernel.NewQuantity(3)
	require.NoError(t, err)
	assert.Equal(t, 3, q.Int())
	assert.False(t, q.IsZero())

	for _, v := range []int{0, -1, kernel.MaxQuantity + 1} {
		_, err = kernel.NewQuantity(v)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "value %d", v)
	}

	assert.True(t, kernel.Quantity{}.IsZero())
}
