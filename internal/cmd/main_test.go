package cmd

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	initCommands(hclog.NewNullLogger(), cli.NewMockUi())

	for name, factory := range Commands {
		c, err := factory()
		require.NoError(t, err, name)
		assert.NotEmpty(t, c.Synopsis(), name)
		assert.NotEmpty(t, c.Help(), name)
	}

	for _, name := range []string{
		"task status",
		"task wait",
		"task comment add",
		"task comment list",
		"task comment delete",
		"embed",
		"version",
	} {
		assert.Contains(t, Commands, name)
	}
}

func TestRunVersion(t *testing.T) {
	assert.Equal(t, 0, Main([]string{"steamship", "-version"}))
}
