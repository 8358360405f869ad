package embed

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/steamship-core/steamship-go/internal/cmd/base"
	"github.com/steamship-core/steamship-go/pkg/client"
	"github.com/steamship-core/steamship-go/pkg/task"
)

type Command struct {
	*base.Command

	flagModel   string
	flagWait    bool
	flagTimeout time.Duration
}

func (c *Command) Synopsis() string {
	return "Compute embeddings for one or more texts"
}

func (c *Command) Help() string {
	return `Usage: steamship embed [options] <text>...

  Embeds each text with the given model and prints the size of every vector.
  If the server runs the request asynchronously, the command waits for the
  task unless -wait=false is given.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("embed", flag.ContinueOnError))
	c.ClientFlags(f)

	f.StringVar(&c.flagModel, "model", "", "(Required) Embedding model handle.")
	f.BoolVar(&c.flagWait, "wait", true, "Wait for asynchronous results.")
	f.DurationVar(&c.flagTimeout, "timeout", task.DefaultMaxWait, "Maximum time to wait for the result.")

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI
	ctx := context.Background()

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagModel == "" {
		ui.Error("model flag is required")
		return 1
	}
	if flags.NArg() == 0 {
		ui.Error("expected at least one text to embed")
		return 1
	}

	cl, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	resp, err := cl.Embed(ctx, client.EmbedRequest{Docs: flags.Args(), Model: c.flagModel}, c.Routing())
	if err != nil {
		ui.Error(fmt.Sprintf("error requesting embeddings: %v", err))
		return 1
	}

	if resp.Task != nil && resp.Data == nil {
		if !c.flagWait {
			ui.Output(fmt.Sprintf("Task %s is %s", resp.Task.ID, resp.Task.Status))
			return 0
		}
		ui.Info(fmt.Sprintf("Waiting for task %s...", resp.Task.ID))
		if err := resp.Wait(ctx, cl, task.WithMaxWait(c.flagTimeout), task.WithLogger(c.Log)); err != nil {
			ui.Error(fmt.Sprintf("error waiting for task: %v", err))
			return 1
		}
	}

	if resp.Error != nil {
		ui.Error(resp.Error.Error())
		return 1
	}
	if resp.Data == nil {
		status := "unknown"
		if resp.Task != nil {
			status = resp.Task.Status.String()
		}
		ui.Error(fmt.Sprintf("no embeddings returned (task status: %s)", status))
		return 1
	}

	for i, vector := range resp.Data.Embeddings {
		ui.Output(fmt.Sprintf("%d: %d dimensions", i, len(vector)))
	}
	return 0
}
