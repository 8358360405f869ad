package version

import (
	"github.com/steamship-core/steamship-go/internal/cmd/base"
	"github.com/steamship-core/steamship-go/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return "Usage: steamship version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
