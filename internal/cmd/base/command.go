package base

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/steamship-core/steamship-go/pkg/client"
	"github.com/steamship-core/steamship-go/pkg/task"
)

// DefaultConfigPath is read when -config is not given and the file exists.
const DefaultConfigPath = "~/.steamship.hcl"

// Command carries what every subcommand needs: output, logging and the
// connection flags used to build a client.
type Command struct {
	UI  cli.Ui
	Log hclog.Logger

	// Fs and LookupEnv default to the OS filesystem and environment.
	Fs        afero.Fs
	LookupEnv func(string) (string, bool)

	flagConfig      string
	flagProfile     string
	flagAPIKey      string
	flagAPIBase     string
	flagSpaceID     string
	flagSpaceHandle string
}

// NewCommand creates a Command backed by the OS filesystem and environment.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		UI:        ui,
		Log:       log,
		Fs:        afero.NewOsFs(),
		LookupEnv: os.LookupEnv,
	}
}

// ClientFlags registers the connection flags on f.
func (c *Command) ClientFlags(f *FlagSet) {
	f.StringVar(
		&c.flagConfig, "config", "",
		"Path to a Steamship config file (HCL or JSON). Defaults to "+DefaultConfigPath+" when present.",
	)
	f.StringVar(
		&c.flagProfile, "profile", "",
		"[STEAMSHIP_PROFILE] Profile block of the config file to use.",
	)
	f.StringVar(
		&c.flagAPIKey, "api-key", "",
		"[STEAMSHIP_API_KEY] API key.",
	)
	f.StringVar(
		&c.flagAPIBase, "api-base", "",
		"[STEAMSHIP_API_BASE] API base URL.",
	)
	f.StringVar(
		&c.flagSpaceID, "space-id", "",
		"[STEAMSHIP_SPACE_ID] Space to run requests in.",
	)
	f.StringVar(
		&c.flagSpaceHandle, "space-handle", "",
		"[STEAMSHIP_SPACE_HANDLE] Space to run requests in, by handle.",
	)
}

// Routing returns the space selected by flags, if any.
func (c *Command) Routing() task.Routing {
	return task.Routing{SpaceID: c.flagSpaceID, SpaceHandle: c.flagSpaceHandle}
}

// Client builds a client from, in increasing precedence: defaults, the
// config file, STEAMSHIP_* environment variables, and flags.
func (c *Command) Client() (*client.Client, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}

	if err := client.ApplyEnv(cfg, c.LookupEnv); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	if c.flagAPIKey != "" {
		cfg.APIKey = c.flagAPIKey
	}
	if c.flagAPIBase != "" {
		cfg.APIBase = c.flagAPIBase
	}

	return client.New(cfg, c.Log)
}

func (c *Command) loadConfig() (*client.Config, error) {
	profile := c.flagProfile
	if val, ok := c.LookupEnv(client.EnvProfile); ok && profile == "" {
		profile = val
	}

	path := c.flagConfig
	if path == "" {
		path = c.defaultConfigPath()
		if path == "" {
			if profile != "" {
				return nil, fmt.Errorf("profile %q requested but no config file found", profile)
			}
			return client.DefaultConfig(), nil
		}
	}

	cfg, err := client.LoadConfig(c.Fs, path, profile)
	if err != nil {
		return nil, err
	}
	c.Log.Debug("loaded config", "path", path, "profile", profile)
	return cfg, nil
}

func (c *Command) defaultConfigPath() string {
	home, ok := c.LookupEnv("HOME")
	if !ok || home == "" {
		return ""
	}
	path := home + DefaultConfigPath[1:]
	if exists, _ := afero.Exists(c.Fs, path); !exists {
		return ""
	}
	return path
}
