// Package config resolves runtime configuration for timesheet-mcp from the
// environment, with an optional YAML file in the configuration directory as
// a lower-precedence source.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults for the HTTP transport.
const (
	DefaultHost         = "0.0.0.0"
	DefaultPort         = "8080"
	DefaultEndpointPath = "/"
)

// FileName is the optional YAML configuration file inside Dir().
const FileName = "config.yaml"

// Config holds everything the server needs at startup. Environment variables
// override file values; file values override defaults.
type Config struct {
	// APIToken is the fallback Timesheet API key used when a request does
	// not carry its own bearer token. Empty is valid: per-request tokens
	// still work, and tools without any token fail with an
	// authentication-required message.
	APIToken string `yaml:"api_token"`

	// APIURL overrides the upstream Timesheet API base URL.
	APIURL string `yaml:"api_url"`

	// Host and Port are the HTTP bind address.
	Host string `yaml:"host"`
	Port string `yaml:"port"`

	// EndpointPath is the path the MCP protocol endpoint is mounted on.
	EndpointPath string `yaml:"endpoint_path"`

	// ServerURL is the public base URL of this server, used as the
	// resource identity in OAuth discovery documents. Empty means derive
	// it from the incoming request.
	ServerURL string `yaml:"server_url"`

	// ComponentBaseURL is the origin widget bundles may load development
	// assets from. NGROK_URL is accepted as an alias.
	ComponentBaseURL string `yaml:"component_base_url"`

	// StatsMaxPages caps task pagination for statistics. Zero means the
	// server default.
	StatsMaxPages int `yaml:"stats_max_pages"`
}

// Load builds the configuration from the optional YAML file and the
// environment. A missing file is not an error; a malformed one is.
func Load() (*Config, error) {
	cfg := &Config{
		Host:         DefaultHost,
		Port:         DefaultPort,
		EndpointPath: DefaultEndpointPath,
	}

	if dir := Dir(); dir != "" {
		if err := cfg.loadFile(filepath.Join(dir, FileName)); err != nil {
			return nil, err
		}
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	if !strings.HasPrefix(cfg.EndpointPath, "/") {
		cfg.EndpointPath = "/" + cfg.EndpointPath
	}
	return cfg, nil
}

// Addr returns the HTTP bind address.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	setString(&c.APIToken, "TIMESHEET_API_TOKEN")
	setString(&c.APIURL, "TIMESHEET_API_URL")
	setString(&c.Host, "HOST")
	setString(&c.Port, "PORT")
	setString(&c.EndpointPath, "MCP_ENDPOINT_PATH")
	setString(&c.ServerURL, "MCP_SERVER_URL")
	setString(&c.ComponentBaseURL, "COMPONENT_BASE_URL")
	// NGROK_URL is the development alias for the widget asset origin.
	if c.ComponentBaseURL == "" {
		setString(&c.ComponentBaseURL, "NGROK_URL")
	}

	if raw := os.Getenv("STATS_MAX_PAGES"); raw != "" {
		pages, err := strconv.Atoi(raw)
		if err != nil || pages < 1 {
			return fmt.Errorf("STATS_MAX_PAGES must be a positive integer, got %q", raw)
		}
		c.StatsMaxPages = pages
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
