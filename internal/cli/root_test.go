package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/windowgram/pkg/buildinfo"
)

func TestSetVersion(t *testing.T) {
	oldV, oldC, oldD := buildinfo.Version, buildinfo.Commit, buildinfo.Date
	t.Cleanup(func() { buildinfo.Version, buildinfo.Commit, buildinfo.Date = oldV, oldC, oldD })

	SetVersion("1.0.0", "abc123", "2024-01-01")

	info := buildinfo.Get()
	if info.Version != "1.0.0" {
		t.Errorf("version = %q, want %q", info.Version, "1.0.0")
	}
	if info.Commit != "abc123" {
		t.Errorf("commit = %q, want %q", info.Commit, "abc123")
	}
	if info.Date != "2024-01-01" {
		t.Errorf("date = %q, want %q", info.Date, "2024-01-01")
	}
}

func TestSetVersionEmptyKeepsValues(t *testing.T) {
	oldV, oldC, oldD := buildinfo.Version, buildinfo.Commit, buildinfo.Date
	t.Cleanup(func() { buildinfo.Version, buildinfo.Commit, buildinfo.Date = oldV, oldC, oldD })

	SetVersion("v2", "", "")
	SetVersion("", "", "")

	if buildinfo.Version != "v2" {
		t.Errorf("version = %q, want v2", buildinfo.Version)
	}
	if buildinfo.Commit != oldC || buildinfo.Date != oldD {
		t.Error("empty values should not overwrite commit or date")
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	want := []string{"classify", "split", "scale", "group", "edit", "view", "serve", "cache", "config", "version", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCommandUnknownConfigKey(t *testing.T) {
	path := writeTemp(t, "config.toml", "bogus = 1\n")
	_, err := runCLI(t, "", "--config", path, "version")
	if err == nil || !strings.Contains(err.Error(), "bogus") {
		t.Errorf("expected unknown key error, got %v", err)
	}
}
