//go:build unit

package coupon_test

import (
	"testing"

	"estate-booking/internal/domain/coupon"
	"estate-booking/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogResolve(t *testing.T) {
	catalog := coupon.DefaultCatalog()

	tests := []struct {
		name         string
		code         string
		base         pricing.Money
		wantDiscount pricing.Money
		errIs        error
	}{
		{name: "percentage SAVE10 on 10000", code: "SAVE10", base: pricing.Naira(10000), wantDiscount: pricing.Naira(1000)},
		{name: "lower case code is accepted", code: "save10", base: pricing.Naira(10000), wantDiscount: pricing.Naira(1000)},
		{name: "surrounding spaces are ignored", code: "  SAVE20 ", base: pricing.Naira(10000), wantDiscount: pricing.Naira(2000)},
		{name: "fixed FLAT50 capped at half of 40", code: "FLAT50", base: pricing.Naira(40), wantDiscount: pricing.Naira(20)},
		{name: "fixed FLAT50 below the cap", code: "FLAT50", base: pricing.Naira(1000), wantDiscount: pricing.Naira(50)},
		{name: "fixed FLAT5000 on large base", code: "flat5000", base: pricing.Naira(60000), wantDiscount: pricing.Naira(5000)},
		{name: "unknown code", code: "ZZZZ", errIs: coupon.ErrInvalidCoupon},
		{name: "empty code", code: "   ", errIs: coupon.ErrInvalidCoupon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := catalog.Resolve(tt.code)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDiscount, c.AmountFor(tt.base))
		})
	}
}

func TestDiscountConstructors(t *testing.T) {
	_, err := coupon.NewPercentageDiscount(0)
	assert.ErrorIs(t, err, coupon.ErrInvalidDiscountPercent)
	_, err = coupon.NewPercentageDiscount(101)
	assert.ErrorIs(t, err, coupon.ErrInvalidDiscountPercent)
	_, err = coupon.NewFixedDiscount(pricing.NewMoney(0))
	assert.ErrorIs(t, err, coupon.ErrInvalidDiscountAmount)

	d, err := coupon.NewPercentageDiscount(100)
	require.NoError(t, err)
	assert.Equal(t, coupon.DiscountPercentage, d.Type())
	assert.Equal(t, pricing.Naira(80), d.AmountFor(pricing.Naira(80)))
}
