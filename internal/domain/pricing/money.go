package pricing

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

var ErrNegativeMoney = errors.New("money cannot be negative")

// Money is an amount of Naira held in kobo so fee and discount arithmetic stays exact.
type Money struct {
	kobo int64
}

func NewMoney(kobo int64) Money {
	return Money{kobo: kobo}
}

func NewMoneyFromNaira(naira float64) (Money, error) {
	if naira < 0 || math.IsNaN(naira) || math.IsInf(naira, 0) {
		return Money{}, ErrNegativeMoney
	}
	return Money{kobo: int64(math.Round(naira * 100))}, nil
}

func Naira(n int64) Money {
	return Money{kobo: n * 100}
}

func (m Money) Kobo() int64 {
	return m.kobo
}

func (m Money) Naira() float64 {
	return float64(m.kobo) / 100.0
}

func (m Money) IsZero() bool {
	return m.kobo == 0
}

func (m Money) Add(other Money) Money {
	return Money{kobo: m.kobo + other.kobo}
}

// Sub floors at zero.
func (m Money) Sub(other Money) Money {
	remaining := m.kobo - other.kobo
	if remaining < 0 {
		remaining = 0
	}
	return Money{kobo: remaining}
}

func (m Money) Times(n int) Money {
	return Money{kobo: m.kobo * int64(n)}
}

// Percent returns p% of m, rounded half up to the nearest kobo.
func (m Money) Percent(p int64) Money {
	return Money{kobo: (m.kobo*p + 50) / 100}
}

func (m Money) Half() Money {
	return Money{kobo: m.kobo / 2}
}

func Min(a, b Money) Money {
	if a.kobo < b.kobo {
		return a
	}
	return b
}

func (m Money) String() string {
	return fmt.Sprintf("NGN %d.%02d", m.kobo/100, m.kobo%100)
}

// MarshalJSON writes the decimal Naira amount the marketplace API expects.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(m.Naira(), 'f', -1, 64)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Money{}
		return nil
	}
	var naira float64
	if err := json.Unmarshal(data, &naira); err != nil {
		return err
	}
	parsed, err := NewMoneyFromNaira(naira)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
