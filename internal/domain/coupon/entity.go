package coupon

import (
	"errors"

	"estate-booking/internal/domain/pricing"
)

// InvalidCouponMessage is shown to the user verbatim.
const InvalidCouponMessage = "Invalid coupon code."

var ErrInvalidCoupon = errors.New("invalid coupon code")

type Coupon struct {
	code     Code
	discount Discount
}

func (c *Coupon) Code() string                               { return c.code.String() }
func (c *Coupon) Discount() Discount                         { return c.discount }
func (c *Coupon) AmountFor(base pricing.Money) pricing.Money { return c.discount.AmountFor(base) }

// Catalog is the fixed set of codes accepted at apply time.
type Catalog struct {
	entries map[Code]Discount
}

func NewCatalog(entries map[string]Discount) *Catalog {
	normalized := make(map[Code]Discount, len(entries))
	for raw, d := range entries {
		normalized[NewCode(raw)] = d
	}
	return &Catalog{entries: normalized}
}

func DefaultCatalog() *Catalog {
	must := func(d Discount, err error) Discount {
		if err != nil {
			panic(err)
		}
		return d
	}
	return NewCatalog(map[string]Discount{
		"SAVE10":    must(NewPercentageDiscount(10)),
		"SAVE20":    must(NewPercentageDiscount(20)),
		"WELCOME15": must(NewPercentageDiscount(15)),
		"FLAT50":    must(NewFixedDiscount(pricing.Naira(50))),
		"FLAT5000":  must(NewFixedDiscount(pricing.Naira(5000))),
	})
}

func (c *Catalog) Resolve(raw string) (*Coupon, error) {
	code := NewCode(raw)
	if code == "" {
		return nil, ErrInvalidCoupon
	}
	d, ok := c.entries[code]
	if !ok {
		return nil, ErrInvalidCoupon
	}
	return &Coupon{code: code, discount: d}, nil
}
