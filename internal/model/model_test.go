package model

import (
	"testing"
	"time"
)

func TestNewRepository(t *testing.T) {
	dir := t.TempDir()
	r := NewRepository("scratch", dir, "throwaway experiments")
	if r.ID != "scratch" || r.Path != dir {
		t.Errorf("unexpected repository: %+v", r)
	}
	if r.LastAccess == nil {
		t.Error("expected last access to be captured for an existing path")
	}
}

func TestRefreshLastAccess(t *testing.T) {
	t.Run("existing path", func(t *testing.T) {
		r := Repository{ID: "scratch", Path: t.TempDir()}
		if !r.RefreshLastAccess() {
			t.Fatal("expected refresh to succeed")
		}
		if r.LastAccess == nil {
			t.Error("expected timestamp after refresh")
		}
	})

	t.Run("missing path", func(t *testing.T) {
		stamp := time.Now()
		r := Repository{ID: "gone", Path: "/no/such/dir", LastAccess: &stamp}
		if r.RefreshLastAccess() {
			t.Error("expected refresh to fail for a missing path")
		}
		if r.LastAccess != &stamp {
			t.Error("expected timestamp to be left alone")
		}
	})
}

func TestGroupNames(t *testing.T) {
	rwg := RepositoryWithGroups{
		Repository: Repository{ID: "x"},
		Groups:     []Group{NewGroup("a"), NewGroup("b")},
	}
	names := rwg.GroupNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("got %v", names)
	}
}

func TestIsAbbrev(t *testing.T) {
	if NewGroup("plain").IsAbbrev() {
		t.Error("abbrev should default to false")
	}
	if !NewGroupWith("terse", "", true).IsAbbrev() {
		t.Error("expected abbrev group")
	}
}
