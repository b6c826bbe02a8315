package cli

import (
	"fmt"
	"time"

	"github.com/mkarner/cadence/internal/models"
)

type ListCmd struct {
	Period string `help:"Only show habits with this period (daily, weekly, monthly)." default:""`
}

func (c *ListCmd) Run(ctx *Context) error {
	now := time.Now().UTC()

	habits, err := ctx.LoadAllHabits(now)
	if err != nil {
		return err
	}

	if c.Period != "" {
		period, err := models.ParsePeriod(c.Period)
		if err != nil {
			return err
		}
		filtered := habits[:0]
		for _, h := range habits {
			if h.Period == period {
				filtered = append(filtered, h)
			}
		}
		habits = filtered
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	fmt.Printf("%-34s %-9s %-8s %7s %8s %6s\n", "NAME", "PERIOD", "STATE", "STREAK", "LONGEST", "FAILS")
	for _, h := range habits {
		fmt.Printf("%s %-32s %-9s %-8s %7d %8d %6d\n",
			StateBadge(h.State), h.Name, h.Period, h.State,
			h.Streak, h.LongestStreak, h.FailCount)
	}

	return nil
}
