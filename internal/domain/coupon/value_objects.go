package coupon

import (
	"errors"
	"strings"

	"estate-booking/internal/domain/pricing"
)

var (
	ErrInvalidDiscountAmount  = errors.New("discount amount must be positive")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

// Code is the case-insensitive catalog key.
type Code string

func NewCode(raw string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(raw)))
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Discount struct {
	kind    DiscountType
	percent int64
	amount  pricing.Money
}

func NewPercentageDiscount(percent int64) (Discount, error) {
	if percent <= 0 || percent > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{kind: DiscountPercentage, percent: percent}, nil
}

func NewFixedDiscount(amount pricing.Money) (Discount, error) {
	if amount.Kobo() <= 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{kind: DiscountFixed, amount: amount}, nil
}

func (d Discount) Type() DiscountType    { return d.kind }
func (d Discount) Percent() int64        { return d.percent }
func (d Discount) Amount() pricing.Money { return d.amount }

// AmountFor computes the discount against base. Fixed discounts never take
// more than half of the base price.
func (d Discount) AmountFor(base pricing.Money) pricing.Money {
	switch d.kind {
	case DiscountPercentage:
		return base.Percent(d.percent)
	case DiscountFixed:
		return pricing.Min(d.amount, base.Half())
	default:
		return pricing.Money{}
	}
}
