package tasks

import (
	"context"
	"flag"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/cli"
	"golang.org/x/sync/errgroup"

	"github.com/steamship-core/steamship-go/internal/cmd/base"
	"github.com/steamship-core/steamship-go/pkg/client"
	"github.com/steamship-core/steamship-go/pkg/task"
)

// maxConcurrentWaits bounds how many tasks are polled at once.
const maxConcurrentWaits = 8

type WaitCommand struct {
	*base.Command

	flagTimeout    time.Duration
	flagRetryDelay time.Duration
}

func (c *WaitCommand) Synopsis() string {
	return "Wait for one or more tasks to finish"
}

func (c *WaitCommand) Help() string {
	return `Usage: steamship task wait [options] <task-id>...

  Polls every given task until it succeeds or fails, or until the timeout
  elapses. Exits non-zero if any task failed or did not finish in time.
  Timing out does not stop the task on the server.` + c.Flags().Help()
}

func (c *WaitCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("task wait", flag.ContinueOnError))
	c.ClientFlags(f)

	f.DurationVar(
		&c.flagTimeout, "timeout", task.DefaultMaxWait,
		"Maximum time to wait for each task.",
	)
	f.DurationVar(
		&c.flagRetryDelay, "retry-delay", task.DefaultRetryDelay,
		"Delay between status checks.",
	)

	return f
}

func (c *WaitCommand) Run(args []string) int {
	ui := &cli.ConcurrentUi{Ui: c.UI}

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() == 0 {
		ui.Error("expected at least one task id")
		return 1
	}

	cl, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	var (
		mu     sync.Mutex
		result *multierror.Error
	)
	record := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		result = multierror.Append(result, err)
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(maxConcurrentWaits)
	for _, id := range flags.Args() {
		id := id
		g.Go(func() error {
			if err := c.waitOne(ctx, cl, id, ui); err != nil {
				record(err)
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := result.ErrorOrNil(); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

func (c *WaitCommand) waitOne(ctx context.Context, cl *client.Client, id string, ui cli.Ui) error {
	resp, err := cl.GetTask(ctx, id, c.Routing())
	if err != nil {
		return fmt.Errorf("task %s: %w", id, err)
	}

	err = resp.Wait(ctx, cl,
		task.WithMaxWait(c.flagTimeout),
		task.WithRetryDelay(c.flagRetryDelay),
		task.WithLogger(c.Log.With("task_id", id)),
	)
	if err != nil {
		return fmt.Errorf("task %s: %w", id, err)
	}

	switch {
	case resp.Task == nil:
		if resp.Error != nil {
			return fmt.Errorf("task %s: %w", id, resp.Error)
		}
		return fmt.Errorf("task %s: no task returned", id)
	case resp.Task.Status == task.StatusSucceeded:
		ui.Output(fmt.Sprintf("task %s succeeded", id))
		return nil
	case resp.Task.Status == task.StatusFailed:
		if resp.Error != nil {
			return fmt.Errorf("task %s failed: %w", id, resp.Error)
		}
		return fmt.Errorf("task %s failed", id)
	default:
		return fmt.Errorf("task %s still %s after %s", id, resp.Task.Status, c.flagTimeout)
	}
}
