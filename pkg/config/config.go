// Package config loads stackrow settings from TOML.
//
// A config file seeds the row and tunes the hosts:
//
//	[row]
//	detach_distance = 3
//	item_height = 3
//
//	[server]
//	addr = "127.0.0.1:8080"
//
//	[[items]]
//	label = "alpha"
//	width = 12
//
//	[[items]]
//	id = "beta"
//	label = "beta"
//	width = 8
//
// Missing sections fall back to [Default] values.
package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackrow/pkg/errors"
	"github.com/matzehuels/stackrow/pkg/row"
)

const appName = "stackrow"

// Config is the parsed configuration.
type Config struct {
	Row    RowConfig        `toml:"row"`
	Server ServerConfig     `toml:"server"`
	Items  []row.ItemConfig `toml:"items"`
}

// RowConfig tunes the row geometry.
type RowConfig struct {
	// DetachDistance is how far (in rows) an item's top edge may leave the
	// row baseline before it drops into the pool.
	DetachDistance int `toml:"detach_distance"`

	// ItemHeight is the drawn height of an item in terminal rows.
	ItemHeight int `toml:"item_height"`
}

// ServerConfig configures the HTTP host.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration with a few sample items.
func Default() Config {
	return Config{
		Row: RowConfig{
			DetachDistance: row.DefaultDetachDistance,
			ItemHeight:     3,
		},
		Server: ServerConfig{Addr: "127.0.0.1:8080"},
		Items: []row.ItemConfig{
			{Label: "alpha", Width: 12},
			{Label: "beta", Width: 8},
			{Label: "gamma", Width: 14},
			{Label: "delta", Width: 10},
			{Label: "epsilon", Width: 16},
		},
	}
}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Parse(data)
}

// LoadOrDefault loads path if it is set and exists, otherwise returns
// [Default]. Explicitly named files must exist.
func LoadOrDefault(path string, explicit bool) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) && !explicit {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes TOML data on top of [Default] and validates the result.
// Items listed in data replace the default items.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	cfg.Items = nil

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if !md.IsDefined("items") {
		cfg.Items = Default().Items
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks geometry settings and every item.
func (c Config) Validate() error {
	if c.Row.DetachDistance < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "row.detach_distance must not be negative")
	}
	if c.Row.ItemHeight < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "row.item_height must be at least 1")
	}

	seen := make(map[string]bool, len(c.Items))
	for i, it := range c.Items {
		if err := errors.ValidateLabel(it.Label); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "items[%d]", i)
		}
		if err := errors.ValidateWidth(it.Width); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "items[%d]", i)
		}
		if err := errors.ValidateItemID(it.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "items[%d]", i)
		}
		if it.ID != "" {
			if seen[it.ID] {
				return errors.New(errors.ErrCodeInvalidConfig, "items[%d]: duplicate id %q", i, it.ID)
			}
			seen[it.ID] = true
		}
	}
	return nil
}

// Encode writes c as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return buf.Bytes(), nil
}

// Bounds returns the row-bounds policy described by the config.
func (c Config) Bounds() row.Bounds {
	return row.VerticalBounds(c.Row.DetachDistance)
}

// Path returns the default config file path using the XDG standard
// (~/.config/stackrow/config.toml).
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
