package cli

import (
	"fmt"
)

type DeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteHabit(c.Name); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", c.Name)
	fmt.Println("(The habit and its full event log are gone for good)")
	return nil
}
