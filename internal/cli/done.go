package cli

import (
	"fmt"
	"time"

	"github.com/mkarner/cadence/internal/habit"
)

type DoneCmd struct {
	Name  string `arg:"" help:"Habit name to check off."`
	Force bool   `help:"Check off even when the habit is not due."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	now := time.Now().UTC()

	h, err := ctx.LoadHabit(c.Name, now)
	if err != nil {
		return err
	}

	// The engine accepts check-offs in any state; the gate lives here
	if h.State != habit.StateReady && !c.Force {
		switch h.State {
		case habit.StateUnready:
			return fmt.Errorf("%q is already done for this %s period (use --force to record anyway)", h.Name, periodUnit(h.Period))
		default:
			return fmt.Errorf("%q is not due right now (use --force to record anyway)", h.Name)
		}
	}

	h.CheckOff(now)
	if err := ctx.SaveHabit(h); err != nil {
		return err
	}

	fmt.Printf("Checked off %q. Current streak: %d\n", h.Name, h.Streak)
	return nil
}
