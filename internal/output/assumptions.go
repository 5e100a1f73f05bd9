package output

import (
	"fmt"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// DefaultAssumptions lists the modeling rules that hold for every projection.
var DefaultAssumptions = []string{
	"Contributions are deposited at the end of each month and earn nothing in the month they are made",
	"Interest compounds at the selected frequency for the whole horizon; annual and monthly schedules both end on the future value",
	"Amounts are computed in floating point and rounded to cents only for display",
	"Simple interest comparison: every deposit earns the annual rate linearly for the time it was invested",
}

// GenerateAssumptions lists the assumptions of one projection, starting with its own parameters.
func GenerateAssumptions(result domain.ProjectionResult) []string {
	p := result.Parameters
	out := []string{
		fmt.Sprintf("Annual rate %s compounded %s, %s per period",
			FormatPercentage(p.AnnualRatePercent), FormatFrequency(p.CompoundingFrequency),
			FormatPercentage(p.RatePerPeriod()*100)),
		fmt.Sprintf("%d monthly contributions of %s over %d years", p.TotalMonths(), FormatCurrency(p.MonthlyContribution), p.Years),
	}
	return append(out, DefaultAssumptions...)
}
