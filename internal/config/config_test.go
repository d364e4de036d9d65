package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFrom(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Settings.AutoCreateGroup {
			t.Error("auto_create_group should default to false")
		}
		if got, want := cfg.Staleness(), DefaultStaleness; got != want {
			t.Errorf("staleness: got %v, want %v", got, want)
		}
		if got, want := cfg.DatabasePath(), filepath.Join(filepath.Dir(path), "database.json"); got != want {
			t.Errorf("database path: got %q, want %q", got, want)
		}
	})

	t.Run("parses settings and aliases", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `database = "/tmp/catalog.json"

[settings]
auto_create_group = true
last_access_staleness = "1h"
list_style = "psql"

[aliases]
grlist = ["repository", "list", "--entry", "group,id"]
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.Settings.AutoCreateGroup {
			t.Error("expected auto_create_group to be true")
		}
		if got := cfg.Staleness(); got != time.Hour {
			t.Errorf("staleness: got %v, want 1h", got)
		}
		if cfg.DatabasePath() != "/tmp/catalog.json" {
			t.Errorf("database path: got %q", cfg.DatabasePath())
		}
		cmd, ok := cfg.FindAlias("grlist")
		if !ok || len(cmd) != 4 {
			t.Errorf("alias grlist: got %v, ok=%v", cmd, ok)
		}
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heron", "config.toml")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.SetAlias("grl", []string{"group", "list"})
	if err := cfg.Set("auto_create_group", "true"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reloaded.Settings.AutoCreateGroup {
		t.Error("expected auto_create_group to persist")
	}
	if _, ok := reloaded.FindAlias("grl"); !ok {
		t.Error("expected alias grl to persist")
	}
}

func TestGetSetUnset(t *testing.T) {
	cfg := &Config{path: "/tmp/config.toml"}

	if err := cfg.Set("list_style", "markdown"); err != nil {
		t.Fatal(err)
	}
	got, err := cfg.Get("list_style")
	if err != nil || got != "markdown" {
		t.Errorf("get list_style: got %q, err %v", got, err)
	}

	if err := cfg.Set("last_access_staleness", "bogus"); err == nil {
		t.Error("expected invalid duration to be rejected")
	}
	if err := cfg.Set("nope", "x"); err == nil {
		t.Error("expected unknown key to be rejected")
	}

	if err := cfg.Unset("list_style"); err != nil {
		t.Fatal(err)
	}
	if got, _ := cfg.Get("list_style"); got != "" {
		t.Errorf("expected empty after unset, got %q", got)
	}
}

func TestFormatTime(t *testing.T) {
	now := time.Now().Add(-25 * time.Hour)
	cfg := &Config{}

	if got := cfg.FormatTime(nil); got != "" {
		t.Errorf("nil timestamp: got %q", got)
	}
	if got := cfg.FormatTime(&now); got != "1 day ago" {
		t.Errorf("relative: got %q", got)
	}

	cfg.Settings.TimeFormat = "rfc3339"
	if got := cfg.FormatTime(&now); got != now.Format(time.RFC3339) {
		t.Errorf("rfc3339: got %q", got)
	}

	cfg.Settings.TimeFormat = "2006-01-02"
	if got := cfg.FormatTime(&now); got != now.Format("2006-01-02") {
		t.Errorf("layout: got %q", got)
	}
}
