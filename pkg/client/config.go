package client

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	DefaultAPIBase = "https://api.steamship.com/api/v1/"
	DefaultAppBase = "https://steamship.run/"
)

// Config contains the connection settings of a Client.
//
// Settings are usually loaded with LoadConfig from a file such as:
//
//	api_key  = "..."
//	api_base = "https://api.steamship.com/api/v1/"
//	timeout  = "30s"
//
//	profile "staging" {
//	  api_base     = "https://api.staging.steamship.com/api/v1/"
//	  space_handle = "research"
//	}
type Config struct {
	// APIKey is sent as a bearer token on every request.
	APIKey string `json:"apiKey"`

	// APIBase is the root URL that routes are appended to.
	APIBase string `json:"apiBase"`

	// AppBase is the root URL of deployed apps.
	AppBase string `json:"appBase"`

	// SpaceID and SpaceHandle select the default space for requests that do
	// not name one.
	SpaceID     string `json:"spaceId"`
	SpaceHandle string `json:"spaceHandle"`

	// Timeout bounds a single HTTP round trip.
	// Default: 30 seconds
	Timeout time.Duration `json:"timeout"`

	// MaxRetries for requests failing with a network error or 5xx status.
	// Default: 3
	MaxRetries int `json:"maxRetries"`

	// RetryDelay is the initial backoff interval between retries.
	// Default: 1 second
	RetryDelay time.Duration `json:"retryDelay"`

	// TLSVerify controls TLS certificate verification. Set to false only
	// against development servers with self-signed certificates.
	TLSVerify *bool `json:"tlsVerify"`
}

// DefaultConfig returns a Config with sensible defaults and no API key.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		APIBase:    DefaultAPIBase,
		AppBase:    DefaultAppBase,
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		RetryDelay: 1 * time.Second,
		TLSVerify:  &tlsVerify,
	}
}

// applyDefaults fills unset fields from DefaultConfig.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.APIBase == "" {
		c.APIBase = defaults.APIBase
	}
	if c.AppBase == "" {
		c.AppBase = defaults.AppBase
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = defaults.RetryDelay
	}
	if c.TLSVerify == nil {
		c.TLSVerify = defaults.TLSVerify
	}
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.APIKey, validation.Required),
		validation.Field(&c.APIBase, validation.Required, validation.By(httpURL)),
		validation.Field(&c.AppBase, validation.By(httpURL)),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Duration(0))),
		validation.Field(&c.MaxRetries, validation.Min(0)),
		validation.Field(&c.RetryDelay, validation.Min(time.Duration(0))),
	)
}

func httpURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must use http or https scheme, got: %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("must include a host")
	}
	return nil
}

// NewHTTPClient creates the HTTP client used by a Client.
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
