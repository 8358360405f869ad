package client

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
)

// Environment variables read by ApplyEnv.
const (
	EnvAPIKey      = "STEAMSHIP_API_KEY"
	EnvAPIBase     = "STEAMSHIP_API_BASE"
	EnvAppBase     = "STEAMSHIP_APP_BASE"
	EnvSpaceID     = "STEAMSHIP_SPACE_ID"
	EnvSpaceHandle = "STEAMSHIP_SPACE_HANDLE"
	EnvProfile     = "STEAMSHIP_PROFILE"
	EnvTimeout     = "STEAMSHIP_TIMEOUT"
	EnvMaxRetries  = "STEAMSHIP_MAX_RETRIES"
)

// configFile is the top level of a config file: default settings plus any
// number of named profiles overriding them.
type configFile struct {
	Profiles []profileBlock `hcl:"profile,block"`
	Remain   hcl.Body       `hcl:",remain"`
}

type profileBlock struct {
	Name   string   `hcl:"name,label"`
	Remain hcl.Body `hcl:",remain"`
}

// fileSettings holds the attributes allowed at the top level and inside a
// profile block. Unset attributes stay nil and do not override.
type fileSettings struct {
	APIKey      *string `hcl:"api_key,optional"`
	APIBase     *string `hcl:"api_base,optional"`
	AppBase     *string `hcl:"app_base,optional"`
	SpaceID     *string `hcl:"space_id,optional"`
	SpaceHandle *string `hcl:"space_handle,optional"`
	Timeout     *string `hcl:"timeout,optional"`
	MaxRetries  *int    `hcl:"max_retries,optional"`
	RetryDelay  *string `hcl:"retry_delay,optional"`
	TLSVerify   *bool   `hcl:"tls_verify,optional"`
}

// LoadConfig reads the config file at path and returns DefaultConfig
// overridden by the file's top-level settings and then by the named profile.
// The file may use HCL (.hcl) or JSON (.json) syntax. An empty profile selects
// the top-level settings only; naming a profile the file does not define is
// an error.
func LoadConfig(fs afero.Fs, path, profile string) (*Config, error) {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var file configFile
	if err := hclsimple.Decode(path, src, nil, &file); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := decodeSettings(file.Remain, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if profile == "" {
		return cfg, nil
	}
	for _, p := range file.Profiles {
		if p.Name != profile {
			continue
		}
		if err := decodeSettings(p.Remain, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode profile %q: %w", profile, err)
		}
		return cfg, nil
	}
	return nil, fmt.Errorf("profile %q not found in %s", profile, path)
}

func decodeSettings(body hcl.Body, cfg *Config) error {
	if body == nil {
		return nil
	}
	var s fileSettings
	if diags := gohcl.DecodeBody(body, nil, &s); diags.HasErrors() {
		return diags
	}
	return s.apply(cfg)
}

func (s *fileSettings) apply(cfg *Config) error {
	var result *multierror.Error

	setString(&cfg.APIKey, s.APIKey)
	setString(&cfg.APIBase, s.APIBase)
	setString(&cfg.AppBase, s.AppBase)
	setString(&cfg.SpaceID, s.SpaceID)
	setString(&cfg.SpaceHandle, s.SpaceHandle)

	if s.Timeout != nil {
		d, err := time.ParseDuration(*s.Timeout)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid timeout: %w", err))
		} else {
			cfg.Timeout = d
		}
	}
	if s.RetryDelay != nil {
		d, err := time.ParseDuration(*s.RetryDelay)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid retry_delay: %w", err))
		} else {
			cfg.RetryDelay = d
		}
	}
	if s.MaxRetries != nil {
		cfg.MaxRetries = *s.MaxRetries
	}
	if s.TLSVerify != nil {
		v := *s.TLSVerify
		cfg.TLSVerify = &v
	}

	return result.ErrorOrNil()
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// ApplyEnv overrides cfg with the STEAMSHIP_* environment variables found by
// lookup (os.LookupEnv in production). All malformed values are reported
// together.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	var result *multierror.Error

	for env, dst := range map[string]*string{
		EnvAPIKey:      &cfg.APIKey,
		EnvAPIBase:     &cfg.APIBase,
		EnvAppBase:     &cfg.AppBase,
		EnvSpaceID:     &cfg.SpaceID,
		EnvSpaceHandle: &cfg.SpaceHandle,
	} {
		if val, ok := lookup(env); ok && val != "" {
			*dst = val
		}
	}

	if val, ok := lookup(EnvTimeout); ok && val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid %s: %w", EnvTimeout, err))
		} else {
			cfg.Timeout = d
		}
	}
	if val, ok := lookup(EnvMaxRetries); ok && val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid %s: %w", EnvMaxRetries, err))
		} else {
			cfg.MaxRetries = n
		}
	}

	return result.ErrorOrNil()
}
