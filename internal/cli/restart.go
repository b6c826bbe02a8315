package cli

import (
	"fmt"
	"time"

	"github.com/mkarner/cadence/internal/models"
)

type RestartCmd struct {
	Name  string `arg:"" help:"Habit name to restart after a break."`
	Force bool   `help:"Restart even when the last event is already a restart."`
}

func (c *RestartCmd) Run(ctx *Context) error {
	now := time.Now().UTC()

	h, err := ctx.LoadHabit(c.Name, now)
	if err != nil {
		return err
	}

	// Back-to-back restarts add nothing; gate them unless forced
	if n := len(h.Log); n > 0 && h.Log[n-1].Kind == models.EventRestart && !c.Force {
		return fmt.Errorf("%q was already restarted (use --force to restart again)", h.Name)
	}

	h.Restart(now)
	if err := ctx.SaveHabit(h); err != nil {
		return err
	}

	fmt.Printf("Restarted %q. The streak count begins again.\n", h.Name)
	return nil
}
