package tasks

import (
	"context"
	"flag"
	"fmt"

	"github.com/steamship-core/steamship-go/internal/cmd/base"
)

type StatusCommand struct {
	*base.Command
}

func (c *StatusCommand) Synopsis() string {
	return "Show the current status of a task"
}

func (c *StatusCommand) Help() string {
	return `Usage: steamship task status [options] <task-id>

  Fetches the task once and prints its status.` + c.Flags().Help()
}

func (c *StatusCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("task status", flag.ContinueOnError))
	c.ClientFlags(f)
	return f
}

func (c *StatusCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 1 {
		ui.Error("expected exactly one task id")
		return 1
	}

	cl, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	resp, err := cl.GetTask(context.Background(), flags.Arg(0), c.Routing())
	if err != nil {
		ui.Error(fmt.Sprintf("error fetching task: %v", err))
		return 1
	}

	if resp.Task != nil {
		printTask(ui, resp.Task)
	}
	if resp.Error != nil {
		ui.Error(resp.Error.Error())
		return 1
	}
	return 0
}
