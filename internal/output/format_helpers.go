package output

import (
	"fmt"
	"strconv"

	"github.com/rpgo/compound-calculator/internal/domain"
	money "github.com/rpgo/compound-calculator/pkg/decimal"
)

// FormatCurrency formats an amount as BRL with cent rounding ("R$ 1.647,01").
func FormatCurrency(amount float64) string { return money.NewMoney(amount).Format() }

// FormatPercentage formats a percent value with 2 decimals in the report locale ("5,25%").
func FormatPercentage(percent float64) string {
	return money.NewMoney(percent).FormatNumber() + "%"
}

// FormatPeriod labels a schedule row ("Year 3" or "Year 1, month 02").
func FormatPeriod(rec domain.PeriodRecord) string {
	if rec.IsMonthly() {
		return fmt.Sprintf("Year %d, month %02d", rec.Year, rec.MonthInYear)
	}
	return fmt.Sprintf("Year %d", rec.Year)
}

// FormatFrequency describes a compounding frequency ("monthly (12x/year)").
func FormatFrequency(f domain.CompoundingFrequency) string {
	return fmt.Sprintf("%s (%dx/year)", f.Name(), int(f))
}

// amount renders a value for machine-readable output: cent-rounded, no grouping.
func amount(v float64) string { return money.NewMoney(v).Round().String() }

func intToString(i int) string { return strconv.Itoa(i) }

func floatToString(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
