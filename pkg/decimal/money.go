package decimal

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every formatted amount. Reports use a single
// currency and locale: Brazilian real, '.' for thousands and ',' for cents.
const CurrencySymbol = "R$"

// brlNumberFormat is the go-humanize render pattern for pt-BR amounts.
const brlNumberFormat = "#.###,##"

// Money represents a monetary amount for display. Projections run in float64;
// amounts are converted to Money and rounded to cents only when presented.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// ParseMoney reads an amount typed by a user. Plain notation ("1234.56") and
// pt-BR notation ("R$ 1.234,56", "1234,5") are accepted; once a comma is
// present it is the decimal separator and dots are thousands separators.
// English grouping ("1,234.56") is rejected rather than misread.
func ParseMoney(s string) (Money, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimPrefix(v, CurrencySymbol)
	v = strings.ReplaceAll(v, " ", "")
	if i := strings.Index(v, ","); i >= 0 {
		whole, frac := v[:i], v[i+1:]
		if strings.ContainsAny(frac, ".,") {
			return Money{}, fmt.Errorf("invalid amount %q: separator after the decimal comma", s)
		}
		if !validGrouping(whole) {
			return Money{}, fmt.Errorf("invalid amount %q: thousands groups must have 3 digits", s)
		}
		v = strings.ReplaceAll(whole, ".", "") + "." + frac
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// validGrouping reports whether the dots in whole split it into thousands groups.
func validGrouping(whole string) bool {
	groups := strings.Split(strings.TrimPrefix(whole, "-"), ".")
	if len(groups) == 1 {
		return true
	}
	if n := len(groups[0]); n < 1 || n > 3 {
		return false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return false
		}
	}
	return true
}

// Round rounds the money amount to cents, halves away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Float64 returns the amount as a float64, as the projection engine uses it
func (m Money) Float64() float64 {
	return m.Decimal.InexactFloat64()
}

// String returns the amount with two decimals and no grouping ("1647.01")
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount in the display locale: "R$ 1.647,01", "-R$ 12,50".
func (m Money) Format() string {
	return formatWith(m, CurrencySymbol+" ")
}

// FormatNumber renders the amount in the display locale without the currency symbol ("1.647,01").
func (m Money) FormatNumber() string {
	return formatWith(m, "")
}

func formatWith(m Money, prefix string) string {
	rounded := m.Round()
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = Money{rounded.Abs()}
	}
	return sign + prefix + humanize.FormatFloat(brlNumberFormat, rounded.Float64())
}
