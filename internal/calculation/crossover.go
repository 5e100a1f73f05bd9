package calculation

import (
	"errors"
	"fmt"

	"github.com/rpgo/compound-calculator/internal/domain"
)

var (
	// ErrEmptySchedule is returned when a projection has no periods to compare.
	ErrEmptySchedule = errors.New("one or both schedules are empty")
	// ErrScheduleMismatch is returned when two schedules do not cover the same periods.
	ErrScheduleMismatch = errors.New("schedules are not aligned")
)

// crossoverTolerance ignores balance differences below one cent.
const crossoverTolerance = 0.01

// FindCrossover finds the first period in which the scenario that was ahead
// falls behind the other one. The leader is whichever scenario first ends a
// period more than a cent ahead. Schedules must have the same granularity and
// length. If no crossover is found, returns nil, nil.
func FindCrossover(a, b domain.ScenarioSummary) (*domain.Crossover, error) {
	sa, sb := a.Result.Schedule, b.Result.Schedule
	if len(sa) == 0 || len(sb) == 0 {
		return nil, ErrEmptySchedule
	}
	if len(sa) != len(sb) || sa[0].IsMonthly() != sb[0].IsMonthly() {
		return nil, fmt.Errorf("%w: %q has %d %s periods, %q has %d %s periods",
			ErrScheduleMismatch,
			a.Name, len(sa), granularityOf(sa),
			b.Name, len(sb), granularityOf(sb))
	}

	// sign > 0 while a leads, < 0 while b leads
	sign := 0
	for i := range sa {
		diff := sa[i].EndingBalance - sb[i].EndingBalance
		if sign == 0 {
			if diff > crossoverTolerance {
				sign = 1
			} else if diff < -crossoverTolerance {
				sign = -1
			}
			continue
		}

		if float64(sign)*diff < -crossoverTolerance {
			leader, challenger := a, b
			leaderRec, challengerRec := sa[i], sb[i]
			if sign < 0 {
				leader, challenger = b, a
				leaderRec, challengerRec = sb[i], sa[i]
			}
			return &domain.Crossover{
				Leader:            leader.Name,
				Challenger:        challenger.Name,
				PeriodIndex:       leaderRec.PeriodIndex,
				Year:              leaderRec.Year,
				MonthInYear:       leaderRec.MonthInYear,
				LeaderBalance:     leaderRec.EndingBalance,
				ChallengerBalance: challengerRec.EndingBalance,
			}, nil
		}
	}

	return nil, nil
}

func granularityOf(schedule []domain.PeriodRecord) domain.Granularity {
	if len(schedule) > 0 && schedule[0].IsMonthly() {
		return domain.GranularityMonthly
	}
	return domain.GranularityAnnual
}
