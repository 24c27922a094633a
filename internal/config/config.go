package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"todosync/internal/resource"
)

// FileName is the workspace config file.
const FileName = "todosync.yml"

// Config models todosync.yml.
type Config struct {
	API struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"api"`
	Sync struct {
		ResourceTypes []string `yaml:"resource_types"`
		Journal       *bool    `yaml:"journal"`
	} `yaml:"sync"`
}

// Load reads and validates config from workspace.
func Load(workspace string) (*Config, error) {
	path := Path(workspace)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config %s not found; create one with todosync config init", path)
		}
		return nil, err
	}
	return FromYAML(data)
}

// Validate ensures the config meets required structure.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("config.api.base_url is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config.api.base_url %q is not an absolute url", c.API.BaseURL)
	}
	if c.API.Timeout != "" {
		d, err := time.ParseDuration(c.API.Timeout)
		if err != nil {
			return fmt.Errorf("config.api.timeout: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("config.api.timeout must be positive")
		}
	}
	if len(c.Sync.ResourceTypes) == 0 {
		return fmt.Errorf("config.sync.resource_types is required")
	}
	if _, err := resource.ParseList(c.Sync.ResourceTypes); err != nil {
		return fmt.Errorf("config.sync.resource_types: %w", err)
	}
	return nil
}

// Timeout returns the parsed api timeout, or fallback when unset.
func (c *Config) Timeout(fallback time.Duration) time.Duration {
	if c == nil || c.API.Timeout == "" {
		return fallback
	}
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// ResourceTypes returns the configured selectors. Validate has already
// rejected unknown names.
func (c *Config) ResourceTypes() []resource.Type {
	types, _ := resource.ParseList(c.Sync.ResourceTypes)
	return types
}

// JournalEnabled reports whether round-trips are journaled. Defaults to true.
func (c *Config) JournalEnabled() bool {
	return c.Sync.Journal == nil || *c.Sync.Journal
}

// Path returns the config file path for a workspace.
func Path(workspace string) string {
	if workspace == "" {
		workspace = "."
	}
	return filepath.Join(workspace, FileName)
}

// GenerateDefault returns default config YAML.
func GenerateDefault(baseURL string) string {
	return fmt.Sprintf(defaultTemplate, baseURL)
}

// LoadOptional returns nil,nil if the config file does not exist.
func LoadOptional(workspace string) (*Config, error) {
	path := Path(workspace)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return FromYAML(data)
}

// Default returns the default Config struct pointing at baseURL.
func Default(baseURL string) *Config {
	var cfg Config
	_ = yaml.NewDecoder(bytes.NewBufferString(GenerateDefault(baseURL))).Decode(&cfg)
	return &cfg
}

// FromYAML parses and validates config from raw YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromFile reads YAML config from the given path.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromYAML(data)
}

// DefaultBaseURL is the address todosync serve listens on by default.
const DefaultBaseURL = "http://127.0.0.1:8787"

const defaultTemplate = `api:
  base_url: %s
  timeout: 10s

sync:
  # Resource types requested on every sync. "all" asks for everything.
  resource_types: [all]
  journal: true
`
