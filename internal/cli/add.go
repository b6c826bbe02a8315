package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/mkarner/cadence/internal/constants"
	"github.com/mkarner/cadence/internal/models"
	"github.com/mkarner/cadence/internal/storage"
)

type AddCmd struct {
	Name   string `arg:"" help:"Habit name."`
	Period string `arg:"" help:"Recurrence period: daily, weekly, or monthly."`
	Start  string `help:"Start date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *AddCmd) Run(ctx *Context) error {
	period, err := models.ParsePeriod(c.Period)
	if err != nil {
		return err
	}

	start := time.Now().UTC()
	if c.Start != "" {
		start, err = time.Parse(constants.DateFormat, c.Start)
		if err != nil {
			return fmt.Errorf("invalid start date: %s (expected YYYY-MM-DD)", c.Start)
		}
	}

	// Reject duplicates before writing
	if _, err := ctx.Store.GetHabit(c.Name); err == nil {
		return fmt.Errorf("habit %q already exists", c.Name)
	} else if !errors.Is(err, storage.ErrHabitNotFound) {
		return err
	}

	// Validate name and period through the domain constructor
	h, err := ctx.NewHabit(c.Name, period, start, time.Now().UTC())
	if err != nil {
		return err
	}

	fmt.Printf("Added %s habit: %s\n", period, h.Name)
	return nil
}
