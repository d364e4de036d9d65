package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExists(t *testing.T) {
	if !Exists(t.TempDir()) {
		t.Error("expected temp dir to exist")
	}
	if Exists("/no/such/dir") {
		t.Error("expected missing path to not exist")
	}
}

func TestBasename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/home/me/src/fibonacci", "fibonacci"},
		{"/home/me/src/fibonacci/", "fibonacci"},
		{"fibonacci", "fibonacci"},
	}
	for _, tt := range tests {
		if got := Basename(tt.in); got != tt.want {
			t.Errorf("Basename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	dir := t.TempDir()
	got, err := Canonicalize(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %q", got)
	}

	// Nonexistent paths still canonicalize to an absolute form.
	got, err = Canonicalize("relative/nowhere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %q", got)
	}
}

func TestAccessTime(t *testing.T) {
	dir := t.TempDir()
	if _, ok := AccessTime(dir); !ok {
		t.Error("expected access time for existing dir")
	}
	if _, ok := AccessTime("/no/such/dir"); ok {
		t.Error("expected no access time for missing path")
	}
}

func TestReplaceHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	got := ReplaceHome(filepath.Join(home, "src", "fib"))
	if !strings.HasPrefix(got, "${HOME}") {
		t.Errorf("expected ${HOME} prefix, got %q", got)
	}
	if got := ReplaceHome("/opt/src"); got != "/opt/src" {
		t.Errorf("expected untouched path, got %q", got)
	}
}
