// Package config handles global heron configuration: where the snapshot
// lives, the policy settings consulted by the workflows, and command aliases.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/heron/internal/atomicfile"
)

// DefaultStaleness is how old a stored last-access may get before a read
// refreshes it from the filesystem.
const DefaultStaleness = 24 * time.Hour

// Config is the global heron configuration.
type Config struct {
	// Database is the path to the catalog snapshot. Defaults to
	// database.json next to the config file.
	Database string `toml:"database"`

	// Settings are the policy knobs consulted by the catalog workflows.
	Settings Settings `toml:"settings"`

	// Aliases maps alias names to hrn command lines.
	Aliases map[string][]string `toml:"aliases"`

	// path is where this config was loaded from (or will be saved to).
	path string
}

// Settings are the policy knobs. Zero values mean "use the default".
type Settings struct {
	// AutoCreateGroup lets repository updates create groups they name
	// instead of failing with GroupNotFound.
	AutoCreateGroup bool `toml:"auto_create_group"`

	// LastAccessStaleness is a Go duration string; a stored last-access
	// older than this is re-read from the filesystem on display.
	LastAccessStaleness string `toml:"last_access_staleness"`

	// ListStyle selects the table layout for list output
	// (blank, ascii, markdown, csv, psql).
	ListStyle string `toml:"list_style"`

	// TimeFormat selects last-access rendering: "relative" (default),
	// "rfc3339", or a Go time layout string.
	TimeFormat string `toml:"time_format"`
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom loads the configuration from a specific path. A missing file
// yields a usable default config bound to that path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}

// DefaultPath returns the default config file path, XDG style.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "heron", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "heron", "config.toml")
	}
	return "config.toml"
}

// Path returns where this config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// DatabasePath returns the snapshot path, defaulting to database.json in the
// config directory.
func (c *Config) DatabasePath() string {
	if c.Database != "" {
		return c.Database
	}
	return filepath.Join(filepath.Dir(c.path), "database.json")
}

// Save writes the config back to its path atomically, creating the parent
// directory if needed.
func (c *Config) Save() error {
	if c.path == "" {
		return fmt.Errorf("config path was not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return atomicfile.WriteFile(c.path, buf.Bytes(), 0)
}

// Staleness returns the configured last-access staleness duration.
func (c *Config) Staleness() time.Duration {
	if c.Settings.LastAccessStaleness == "" {
		return DefaultStaleness
	}
	d, err := time.ParseDuration(c.Settings.LastAccessStaleness)
	if err != nil || d <= 0 {
		return DefaultStaleness
	}
	return d
}

// IsStale reports whether a stored timestamp is old enough to re-read.
func (c *Config) IsStale(t time.Time) bool {
	return time.Since(t) > c.Staleness()
}

// ---- aliases ----

// FindAlias returns the command line for an alias name.
func (c *Config) FindAlias(name string) ([]string, bool) {
	cmd, ok := c.Aliases[name]
	return cmd, ok
}

// SetAlias registers or replaces an alias.
func (c *Config) SetAlias(name string, command []string) {
	if c.Aliases == nil {
		c.Aliases = make(map[string][]string)
	}
	c.Aliases[name] = command
}

// RemoveAlias deletes an alias. Removing an unknown name is a no-op.
func (c *Config) RemoveAlias(name string) {
	delete(c.Aliases, name)
}

// AliasNames returns alias names sorted for stable listing.
func (c *Config) AliasNames() []string {
	names := make([]string, 0, len(c.Aliases))
	for name := range c.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ---- key-value surface for the config command ----

// SettingKeys are the dotted keys exposed by `hrn config`.
var SettingKeys = []string{
	"database",
	"auto_create_group",
	"last_access_staleness",
	"list_style",
	"time_format",
}

// Get returns the string form of a setting by key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "database":
		return c.DatabasePath(), nil
	case "auto_create_group":
		return strconv.FormatBool(c.Settings.AutoCreateGroup), nil
	case "last_access_staleness":
		return c.Staleness().String(), nil
	case "list_style":
		return c.Settings.ListStyle, nil
	case "time_format":
		return c.Settings.TimeFormat, nil
	default:
		return "", fmt.Errorf("unknown setting: %s", key)
	}
}

// Set updates a setting by key from its string form.
func (c *Config) Set(key, value string) error {
	switch key {
	case "database":
		c.Database = value
	case "auto_create_group":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: expected true or false, got %q", key, value)
		}
		c.Settings.AutoCreateGroup = b
	case "last_access_staleness":
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("%s: invalid duration %q", key, value)
		}
		c.Settings.LastAccessStaleness = value
	case "list_style":
		c.Settings.ListStyle = value
	case "time_format":
		c.Settings.TimeFormat = value
	default:
		return fmt.Errorf("unknown setting: %s", key)
	}
	return nil
}

// Unset restores a setting to its default.
func (c *Config) Unset(key string) error {
	switch key {
	case "database":
		c.Database = ""
	case "auto_create_group":
		c.Settings.AutoCreateGroup = false
	case "last_access_staleness":
		c.Settings.LastAccessStaleness = ""
	case "list_style":
		c.Settings.ListStyle = ""
	case "time_format":
		c.Settings.TimeFormat = ""
	default:
		return fmt.Errorf("unknown setting: %s", key)
	}
	return nil
}
