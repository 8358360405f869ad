package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/steamship-core/steamship-go/internal/cmd/base"
	"github.com/steamship-core/steamship-go/internal/cmd/commands/embed"
	"github.com/steamship-core/steamship-go/internal/cmd/commands/tasks"
	"github.com/steamship-core/steamship-go/internal/cmd/commands/version"
)

// Commands is the mapping of all available commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	newBase := func() *base.Command {
		return base.NewCommand(log, ui)
	}

	Commands = map[string]cli.CommandFactory{
		"embed": func() (cli.Command, error) {
			return &embed.Command{Command: newBase()}, nil
		},
		"task": func() (cli.Command, error) {
			return &tasks.Command{Command: newBase()}, nil
		},
		"task status": func() (cli.Command, error) {
			return &tasks.StatusCommand{Command: newBase()}, nil
		},
		"task wait": func() (cli.Command, error) {
			return &tasks.WaitCommand{Command: newBase()}, nil
		},
		"task comment": func() (cli.Command, error) {
			return &tasks.CommentCommand{Command: newBase()}, nil
		},
		"task comment add": func() (cli.Command, error) {
			return &tasks.CommentAddCommand{Command: newBase()}, nil
		},
		"task comment list": func() (cli.Command, error) {
			return &tasks.CommentListCommand{Command: newBase()}, nil
		},
		"task comment delete": func() (cli.Command, error) {
			return &tasks.CommentDeleteCommand{Command: newBase()}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: newBase()}, nil
		},
	}
}
