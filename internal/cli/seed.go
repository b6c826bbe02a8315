package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/mkarner/cadence/internal/fixture"
	"github.com/mkarner/cadence/internal/storage"
)

type SeedCmd struct {
	Force bool `help:"Overwrite habits that already exist."`
}

// Run loads the sample data set: five habits with four weeks of activity.
func (c *SeedCmd) Run(ctx *Context) error {
	now := time.Now().UTC()
	seeds := fixture.Sample(now)

	added := 0
	for _, seed := range seeds {
		_, err := ctx.Store.GetHabit(seed.Record.Name)
		if err == nil {
			if !c.Force {
				fmt.Printf("Skipping %q (already exists, use --force to overwrite)\n", seed.Record.Name)
				continue
			}
		} else if !errors.Is(err, storage.ErrHabitNotFound) {
			return err
		}

		if err := ctx.Store.AddHabit(seed.Record); err != nil {
			return err
		}
		if err := ctx.Store.SaveLog(seed.Record.Name, seed.Log); err != nil {
			return err
		}
		added++
	}

	fmt.Printf("Seeded %d sample habits.\n", added)
	return nil
}
