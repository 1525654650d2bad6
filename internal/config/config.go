// Package config loads the windowgram configuration file.
//
// The file lives at $XDG_CONFIG_HOME/windowgram/config.toml (or
// ~/.config/windowgram/config.toml) and is optional; missing keys keep their
// defaults. Command-line flags override values from the file.
//
//	canvas_width  = 1024
//	canvas_height = 1024
//	divider       = 0
//	strategy      = "corner"
//
//	[cache]
//	backend    = "file"   # file, redis or none
//	dir        = ""       # defaults to $XDG_CACHE_HOME/windowgram
//	ttl        = "720h"
//	redis_addr = "localhost:6379"
//	prefix     = ""       # namespace for cache keys
//
//	[server]
//	addr = ":8080"
package config

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/pipeline"
	"github.com/matzehuels/windowgram/pkg/scale"
)

// AppName names the configuration and cache directories.
const AppName = "windowgram"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Backends lists the valid cache backends.
var Backends = []string{BackendFile, BackendRedis, BackendNone}

// Config is the decoded configuration file.
type Config struct {
	CanvasWidth  int    `toml:"canvas_width"`
	CanvasHeight int    `toml:"canvas_height"`
	Divider      int    `toml:"divider"`
	Strategy     string `toml:"strategy"`

	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig selects and configures the result cache.
type CacheConfig struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"`
	TTL       Duration `toml:"ttl"`
	RedisAddr string   `toml:"redis_addr"`
	Prefix    string   `toml:"prefix"`
}

// ServerConfig configures `windowgram serve`.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration written as a Go duration string ("720h").
type Duration struct{ time.Duration }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CanvasWidth:  pipeline.DefaultCanvasWidth,
		CanvasHeight: pipeline.DefaultCanvasHeight,
		Strategy:     pipeline.DefaultStrategy,
		Cache: CacheConfig{
			Backend:   BackendFile,
			TTL:       Duration{30 * 24 * time.Hour},
			RedisAddr: "localhost:6379",
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Path returns the default configuration file path.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns the default cache directory (~/.cache/windowgram/).
func CacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

// Load reads the file at path over the defaults. A missing file is not an
// error. Unknown keys are rejected so that typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := errors.ValidatePath(path); err != nil {
		return cfg, err
	}

	md, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, errors.New(errors.ErrCodeInvalidInput,
			"unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	opts := c.PipelineOptions()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if !slices.Contains(Backends, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid cache backend %q (valid: %s)", c.Cache.Backend, strings.Join(Backends, ", "))
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache ttl cannot be negative")
	}
	if c.Cache.Dir != "" {
		if err := errors.ValidatePath(c.Cache.Dir); err != nil {
			return err
		}
	}
	return nil
}

// PipelineOptions converts the compile settings.
func (c Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		CanvasWidth:  c.CanvasWidth,
		CanvasHeight: c.CanvasHeight,
		Divider:      c.Divider,
		Strategy:     c.Strategy,
	}
}

// ScaleStrategy returns the configured scale strategy.
func (c Config) ScaleStrategy() (scale.Strategy, error) {
	return scale.StrategyByName(c.Strategy)
}

// Write encodes c as TOML to path, creating parent directories. An existing
// file is only replaced when overwrite is set.
func (c Config) Write(path string, overwrite bool) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrCodeInvalidPath, "%s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create config directory")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create config")
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return nil
}
