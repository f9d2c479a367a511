package pricing

import "errors"

var ErrInvalidRate = errors.New("fee and tax percentages must be between 0 and 100")

// Discount is implemented by an applied coupon.
type Discount interface {
	Code() string
	AmountFor(base Money) Money
}

// Snapshot is derived from the draft, the unit price and the applied coupon.
// It is never edited in place; any input change produces a new one.
type Snapshot struct {
	UnitPrice      Money
	Quantity       int
	BasePrice      Money
	ServiceFee     Money
	TaxAmount      Money
	CouponCode     string
	CouponDiscount Money
	TotalPrice     Money
}

func (s Snapshot) HasCoupon() bool {
	return s.CouponCode != ""
}

type Rates struct {
	ServiceFeePercent int64
	TaxPercent        int64
}

func DefaultRates() Rates {
	return Rates{ServiceFeePercent: 10, TaxPercent: 5}
}

type Calculator struct {
	rates Rates
}

func NewCalculator(rates Rates) (*Calculator, error) {
	if rates.ServiceFeePercent < 0 || rates.ServiceFeePercent > 100 ||
		rates.TaxPercent < 0 || rates.TaxPercent > 100 {
		return nil, ErrInvalidRate
	}
	return &Calculator{rates: rates}, nil
}

func NewDefaultCalculator() *Calculator {
	return &Calculator{rates: DefaultRates()}
}

func (c *Calculator) Rates() Rates {
	return c.rates
}

// Quote prices quantity units (nights for stays, one for an inspection).
// The coupon discount is always recomputed against the current base price.
func (c *Calculator) Quote(unit Money, quantity int, discount Discount) Snapshot {
	if quantity < 0 {
		quantity = 0
	}
	base := unit.Times(quantity)

	snap := Snapshot{
		UnitPrice:  unit,
		Quantity:   quantity,
		BasePrice:  base,
		ServiceFee: base.Percent(c.rates.ServiceFeePercent),
		TaxAmount:  base.Percent(c.rates.TaxPercent),
	}

	if discount != nil {
		snap.CouponCode = discount.Code()
		snap.CouponDiscount = Min(discount.AmountFor(base), base)
	}

	snap.TotalPrice = base.Add(snap.ServiceFee).Add(snap.TaxAmount).Sub(snap.CouponDiscount)
	return snap
}
