package cli

import (
	"fmt"
	"time"

	"github.com/mkarner/cadence/internal/analytics"
	"github.com/mkarner/cadence/internal/models"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	now := time.Now().UTC()

	habits, err := ctx.LoadAllHabits(now)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	best := analytics.Best(habits)
	worst := analytics.Worst(habits)

	fmt.Println("Habit statistics")
	fmt.Println()
	fmt.Printf("Best streak:  %-32s (streak %d, longest %d)\n", best[0].Name, best[0].Streak, best[0].LongestStreak)
	fmt.Printf("Most broken:  %-32s (%d failures)\n", worst[0].Name, worst[0].FailCount)
	fmt.Println()

	grouped := analytics.GroupByPeriod(habits)
	for _, period := range []models.Period{models.PeriodDaily, models.PeriodWeekly, models.PeriodMonthly} {
		group := grouped[period]
		fmt.Printf("%s (%d):\n", period, len(group))
		if len(group) == 0 {
			fmt.Println("  none")
			continue
		}
		for _, h := range group {
			fmt.Printf("  %s %-32s streak %d, longest %d, failures %d\n",
				StateBadge(h.State), h.Name, h.Streak, h.LongestStreak, h.FailCount)
		}
	}

	return nil
}
