package cli

import (
	"fmt"
	"time"
)

type LogCmd struct {
	Name  string `arg:"" help:"Habit name to show the log for."`
	Limit int    `help:"Show only the most recent N events (0 = all)." default:"0"`
}

func (c *LogCmd) Run(ctx *Context) error {
	now := time.Now().UTC()

	h, err := ctx.LoadHabit(c.Name, now)
	if err != nil {
		return err
	}

	if len(h.Log) == 0 {
		fmt.Printf("No events recorded for %q yet.\n", h.Name)
		return nil
	}

	log := h.Log
	if c.Limit > 0 && len(log) > c.Limit {
		log = log[len(log)-c.Limit:]
	}

	fmt.Printf("History for %q (%s, started %s):\n\n", h.Name, h.Period, h.StartDate.Format("2006-01-02"))
	for _, e := range log {
		fmt.Printf("  %s  %s  %s\n", e.Time.Format("2006-01-02 15:04"), EventMarker(e.Kind), e.Kind)
	}

	fmt.Printf("\nStreak: %d  Longest: %d  Failures: %d  State: %s\n",
		h.Streak, h.LongestStreak, h.FailCount, h.State)
	return nil
}
