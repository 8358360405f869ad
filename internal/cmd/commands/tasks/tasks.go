package tasks

import (
	"fmt"
	"time"

	"github.com/mitchellh/cli"

	"github.com/steamship-core/steamship-go/internal/cmd/base"
	"github.com/steamship-core/steamship-go/pkg/task"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Inspect and wait on asynchronous tasks"
}

func (c *Command) Help() string {
	return `Usage: steamship task <subcommand> [options] [args]

  This command groups subcommands for working with tasks returned by
  asynchronous Steamship operations.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

// printTask writes the fields of t, one per line.
func printTask(ui cli.Ui, t *task.Task) {
	ui.Output(fmt.Sprintf("Task ID:       %s", t.ID))
	ui.Output(fmt.Sprintf("Status:        %s", t.Status))
	if t.StatusMessage != "" {
		ui.Output(fmt.Sprintf("Message:       %s", t.StatusMessage))
	}
	if t.CreatedOn != "" {
		line := fmt.Sprintf("Created:       %s", t.CreatedOn)
		if created, err := t.CreatedTime(); err == nil {
			line = fmt.Sprintf("%s (%s ago)", line, time.Since(created).Round(time.Second))
		}
		ui.Output(line)
	}
	if t.LastModifiedOn != "" {
		ui.Output(fmt.Sprintf("Last modified: %s", t.LastModifiedOn))
	}
}
