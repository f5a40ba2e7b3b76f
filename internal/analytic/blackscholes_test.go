package analytic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferencePrices(t *testing.T) {
	// Classic textbook case: S=100, K=100, r=5%, vol=20%, T=1y.
	call, err := CallPrice(100, 100, 0.05, 0.2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 10.450583572185565, call, 1e-9)

	put, err := PutPrice(100, 100, 0.05, 0.2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 5.573526022256971, put, 1e-9)
}

func TestPutCallParityIsExact(t *testing.T) {
	testCases := []struct {
		spot, strike, rate, vol, expiry float64
	}{
		{100, 100, 0.05, 0.2, 1},
		{30.14, 15, 0.01, 0.332, 0.25},
		{30.14, 30, 0.01, 0.332, 0.25},
		{50, 80, 0.0, 0.5, 2},
	}

	for _, tc := range testCases {
		call, err := CallPrice(tc.spot, tc.strike, tc.rate, tc.vol, tc.expiry)
		require.NoError(t, err)
		put, err := PutPrice(tc.spot, tc.strike, tc.rate, tc.vol, tc.expiry)
		require.NoError(t, err)

		assert.InDelta(t, 0, ParityGap(call, put, tc.spot, tc.strike, tc.rate, tc.expiry), 1e-9)
	}
}

func TestDegenerateCases(t *testing.T) {
	// At expiry the price is the intrinsic value.
	call, err := CallPrice(110, 100, 0.05, 0.2, 0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, call)

	put, err := PutPrice(90, 100, 0.05, 0.2, 0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, put)

	// Zero volatility prices the discounted forward payoff.
	call, err = CallPrice(100, 95, 0.05, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 100-95*math.Exp(-0.05), call, 1e-12)

	put, err = PutPrice(100, 95, 0.05, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, put)
}

func TestInvalidInputs(t *testing.T) {
	testCases := []struct {
		spot, strike, rate, vol, expiry float64
		desc                            string
	}{
		{0, 100, 0.05, 0.2, 1, "zero spot"},
		{-10, 100, 0.05, 0.2, 1, "negative spot"},
		{100, 0, 0.05, 0.2, 1, "zero strike"},
		{100, 100, 0.05, -0.2, 1, "negative vol"},
		{100, 100, 0.05, 0.2, -1, "negative expiry"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := CallPrice(tc.spot, tc.strike, tc.rate, tc.vol, tc.expiry)
			assert.ErrorIs(t, err, ErrInvalidInputs)
			_, err = PutPrice(tc.spot, tc.strike, tc.rate, tc.vol, tc.expiry)
			assert.ErrorIs(t, err, ErrInvalidInputs)
		})
	}
}
