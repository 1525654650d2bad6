package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/windowgram/pkg/errors"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg != Default() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
canvas_width = 200
divider = 1
strategy = "resample"

[cache]
backend = "none"
ttl = "1h30m"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CanvasWidth != 200 || cfg.Divider != 1 || cfg.Strategy != "resample" {
		t.Errorf("unexpected compile settings: %+v", cfg)
	}
	if cfg.CanvasHeight != Default().CanvasHeight {
		t.Errorf("unset keys should keep defaults, got height %d", cfg.CanvasHeight)
	}
	if cfg.Cache.Backend != BackendNone || cfg.Cache.TTL.Duration != 90*time.Minute {
		t.Errorf("unexpected cache settings: %+v", cfg.Cache)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("server addr = %q", cfg.Server.Addr)
	}

	s, err := cfg.ScaleStrategy()
	if err != nil || s.Name() != "resample" {
		t.Errorf("ScaleStrategy() = %v, %v", s, err)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "canvas = 3\n", "canvas"},
		{"bad strategy", `strategy = "nearest"` + "\n", "nearest"},
		{"bad backend", "[cache]\nbackend = \"memcached\"\n", "memcached"},
		{"bad duration", "[cache]\nttl = \"soon\"\n", "config"},
		{"negative divider", "divider = -2\n", "divider"},
		{"negative canvas", "canvas_width = -5\n", "canvas width"},
		{"syntax", "canvas_width = \n", "config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Fatalf("expected INVALID_INPUT, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Divider = 1
	cfg.Cache.Backend = BackendRedis

	if err := cfg.Write(path, false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}

	if err := cfg.Write(path, false); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("existing file without overwrite should fail, got %v", err)
	}
	if err := cfg.Write(path, true); err != nil {
		t.Errorf("overwrite: %v", err)
	}
}

func TestPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_CACHE_HOME", "/tmp/cache")

	if p, err := Path(); err != nil || p != "/tmp/cfg/windowgram/config.toml" {
		t.Errorf("Path() = %q, %v", p, err)
	}
	if d, err := CacheDir(); err != nil || d != "/tmp/cache/windowgram" {
		t.Errorf("CacheDir() = %q, %v", d, err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Strategy == "" || cfg.CanvasWidth == 0 {
		t.Error("Validate should not modify the config")
	}

	cfg.CanvasHeight = -1
	if err := cfg.Validate(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("negative canvas height: got %v", err)
	}

	cfg = Default()
	cfg.Strategy = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("empty strategy should fall back to the default, got %v", err)
	}
}
