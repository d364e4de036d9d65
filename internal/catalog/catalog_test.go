package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aidanlsb/heron/internal/config"
	"github.com/aidanlsb/heron/internal/model"
	"github.com/aidanlsb/heron/internal/store"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	s := store.New()
	if err := s.Register(model.Repository{ID: "fibonacci", Path: "/src/fibonacci"}, []string{"no-group"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Register(model.Repository{ID: "helloworld", Path: "/src/helloworld"}, []string{"no-group"}); err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{}
	return New(s, cfg)
}

func TestAddPath(t *testing.T) {
	t.Run("id defaults to last path segment", func(t *testing.T) {
		c := testCatalog(t)
		dir := filepath.Join(t.TempDir(), "myrepo")
		if err := os.Mkdir(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		r, err := c.AddPath(dir, "", "a working copy", []string{"work"})
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if r.ID != "myrepo" {
			t.Errorf("expected id 'myrepo', got %q", r.ID)
		}
		if r.LastAccess == nil {
			t.Error("expected last access to be captured for an existing path")
		}
		if !c.Store.HasRelation("myrepo", "work") {
			t.Error("expected relation to auto-created group")
		}
	})

	t.Run("missing path fails", func(t *testing.T) {
		c := testCatalog(t)
		_, err := c.AddPath("/does/not/exist", "", "", nil)
		var pnf PathNotFoundError
		if !errors.As(err, &pnf) {
			t.Errorf("expected PathNotFoundError, got %v", err)
		}
	})
}

func TestUpdateRepositoryRename(t *testing.T) {
	t.Run("additive groups preserve prior memberships under new id", func(t *testing.T) {
		c := testCatalog(t)
		c.Config.Settings.AutoCreateGroup = true
		err := c.UpdateRepository("helloworld", RepositoryUpdate{
			ID:        "hw",
			AddGroups: []string{"samples"},
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if _, ok := c.Store.FindRepository("helloworld"); ok {
			t.Error("old id should be gone")
		}
		if got := len(c.Store.RelationsWithRepository("helloworld")); got != 0 {
			t.Errorf("expected 0 relations on stale id, got %d", got)
		}
		if !c.Store.HasRelation("hw", "no-group") {
			t.Error("prior membership should survive under new id")
		}
		if !c.Store.HasRelation("hw", "samples") {
			t.Error("additive membership should exist under new id")
		}
	})

	t.Run("replacement groups drop prior memberships", func(t *testing.T) {
		c := testCatalog(t)
		c.Config.Settings.AutoCreateGroup = true
		err := c.UpdateRepository("helloworld", RepositoryUpdate{
			ID:            "hw",
			ReplaceGroups: []string{"fresh"},
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if c.Store.HasRelation("hw", "no-group") {
			t.Error("replaced membership should be dropped")
		}
		if !c.Store.HasRelation("hw", "fresh") {
			t.Error("replacement membership should exist")
		}
		if got := len(c.Store.RelationsWithRepository("hw")); got != 1 {
			t.Errorf("expected exactly 1 relation, got %d", got)
		}
	})

	t.Run("empty replacement list clears every membership", func(t *testing.T) {
		c := testCatalog(t)
		err := c.UpdateRepository("helloworld", RepositoryUpdate{
			ReplaceGroups: []string{},
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got := len(c.Store.RelationsWithRepository("helloworld")); got != 0 {
			t.Errorf("expected 0 relations, got %d", got)
		}
		if _, ok := c.Store.FindRepository("helloworld"); !ok {
			t.Error("repository itself should survive")
		}
	})

	t.Run("nil replacement list keeps current memberships", func(t *testing.T) {
		c := testCatalog(t)
		desc := "still here"
		err := c.UpdateRepository("helloworld", RepositoryUpdate{Description: &desc})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if !c.Store.HasRelation("helloworld", "no-group") {
			t.Error("membership should be untouched")
		}
	})

	t.Run("new id taken by another repository fails", func(t *testing.T) {
		c := testCatalog(t)
		err := c.UpdateRepository("helloworld", RepositoryUpdate{ID: "fibonacci"})
		var rte store.RenameTargetError
		if !errors.As(err, &rte) {
			t.Fatalf("expected RenameTargetError, got %v", err)
		}
		ids := map[string]int{}
		for _, r := range c.Store.Repositories() {
			ids[r.ID]++
		}
		if ids["fibonacci"] != 1 || ids["helloworld"] != 1 {
			t.Errorf("both repositories should remain distinct, got %v", ids)
		}
	})

	t.Run("same id is not a collision", func(t *testing.T) {
		c := testCatalog(t)
		if err := c.UpdateRepository("helloworld", RepositoryUpdate{ID: "helloworld"}); err != nil {
			t.Fatalf("self-rename should be a no-op, got %v", err)
		}
	})

	t.Run("unknown group fails without auto-create policy", func(t *testing.T) {
		c := testCatalog(t)
		err := c.UpdateRepository("helloworld", RepositoryUpdate{AddGroups: []string{"new-group"}})
		var gnf store.GroupNotFoundError
		if !errors.As(err, &gnf) {
			t.Errorf("expected GroupNotFoundError, got %v", err)
		}
	})

	t.Run("unknown repository fails", func(t *testing.T) {
		c := testCatalog(t)
		err := c.UpdateRepository("nope", RepositoryUpdate{ID: "x"})
		var rnf store.RepositoryNotFoundError
		if !errors.As(err, &rnf) {
			t.Errorf("expected RepositoryNotFoundError, got %v", err)
		}
	})
}

func TestUpdateGroupRenameCollision(t *testing.T) {
	c := testCatalog(t)
	if err := c.Store.RegisterGroup(model.NewGroup("other")); err != nil {
		t.Fatal(err)
	}
	err := c.UpdateGroup("no-group", GroupUpdate{Rename: "other"})
	var rte store.RenameTargetError
	if !errors.As(err, &rte) {
		t.Fatalf("expected RenameTargetError, got %v", err)
	}
	names := map[string]int{}
	for _, g := range c.Store.Groups() {
		names[g.Name]++
	}
	if names["other"] != 1 || names["no-group"] != 1 {
		t.Errorf("both groups should remain distinct, got %v", names)
	}
	if got := len(c.Store.RelationsWithGroup("other")); got != 0 {
		t.Errorf("relations must not move onto the taken name, got %d", got)
	}
}

func TestUpdateGroupRename(t *testing.T) {
	c := testCatalog(t)
	note := "renamed"
	err := c.UpdateGroup("no-group", GroupUpdate{Rename: "current", Note: &note})
	if err != nil {
		t.Fatalf("update group: %v", err)
	}
	if _, ok := c.Store.FindGroup("no-group"); ok {
		t.Error("old name should be gone")
	}
	g, ok := c.Store.FindGroup("current")
	if !ok {
		t.Fatal("new name should exist")
	}
	if g.Note != "renamed" {
		t.Errorf("note: got %q", g.Note)
	}
	if got := len(c.Store.RelationsWithGroup("no-group")); got != 0 {
		t.Errorf("expected 0 relations under old name, got %d", got)
	}
	if got := len(c.Store.RelationsWithGroup("current")); got != 2 {
		t.Errorf("expected 2 relations under new name, got %d", got)
	}
}

func TestRename(t *testing.T) {
	t.Run("auto resolves repository", func(t *testing.T) {
		c := testCatalog(t)
		if err := c.Rename("fibonacci", "fib", RenameAuto); err != nil {
			t.Fatalf("rename: %v", err)
		}
		if _, ok := c.Store.FindRepository("fib"); !ok {
			t.Error("expected repository under new id")
		}
	})

	t.Run("target collision fails", func(t *testing.T) {
		c := testCatalog(t)
		err := c.Rename("fibonacci", "helloworld", RenameAuto)
		var rte store.RenameTargetError
		if !errors.As(err, &rte) {
			t.Errorf("expected RenameTargetError, got %v", err)
		}
	})

	t.Run("ambiguous source fails", func(t *testing.T) {
		c := testCatalog(t)
		if err := c.Store.RegisterGroup(model.NewGroup("fibonacci")); err != nil {
			t.Fatal(err)
		}
		err := c.Rename("fibonacci", "other", RenameAuto)
		var amb store.AmbiguousNameError
		if !errors.As(err, &amb) {
			t.Errorf("expected AmbiguousNameError, got %v", err)
		}
	})
}

func TestRemoveMany(t *testing.T) {
	t.Run("non-empty group blocked without force", func(t *testing.T) {
		c := testCatalog(t)
		err := c.RemoveMany([]string{"no-group"}, false)
		var gne store.GroupNotEmptyError
		if !errors.As(err, &gne) {
			t.Errorf("expected GroupNotEmptyError, got %v", err)
		}
		if _, ok := c.Store.FindGroup("no-group"); !ok {
			t.Error("group should survive the blocked delete")
		}
	})

	t.Run("force cascades", func(t *testing.T) {
		c := testCatalog(t)
		if err := c.RemoveMany([]string{"no-group"}, true); err != nil {
			t.Fatalf("remove: %v", err)
		}
		if got := len(c.Store.Relations()); got != 0 {
			t.Errorf("expected 0 relations, got %d", got)
		}
		if got := len(c.Store.Repositories()); got != 2 {
			t.Errorf("repositories should be untouched, got %d", got)
		}
	})

	t.Run("unknown names aggregate", func(t *testing.T) {
		c := testCatalog(t)
		err := c.RemoveMany([]string{"ghost1", "ghost2"}, false)
		var errs store.Errors
		if !errors.As(err, &errs) || len(errs) != 2 {
			t.Errorf("expected 2 aggregated errors, got %v", err)
		}
	})
}

func TestPrune(t *testing.T) {
	setup := func(t *testing.T) *Catalog {
		s := store.New()
		dir := t.TempDir()
		live := filepath.Join(dir, "live")
		if err := os.Mkdir(live, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := s.Register(model.Repository{ID: "live", Path: live}, []string{"kept"}); err != nil {
			t.Fatal(err)
		}
		if err := s.Register(model.Repository{ID: "gone", Path: filepath.Join(dir, "gone")}, []string{"kept"}); err != nil {
			t.Fatal(err)
		}
		for _, name := range []string{"empty1", "empty2"} {
			if err := s.RegisterGroup(model.NewGroup(name)); err != nil {
				t.Fatal(err)
			}
		}
		return New(s, &config.Config{})
	}

	t.Run("candidates are computed without mutating", func(t *testing.T) {
		c := setup(t)
		report := c.PruneCandidates()
		if len(report.EmptyGroups) != 2 {
			t.Errorf("expected 2 empty groups, got %v", report.EmptyGroups)
		}
		if len(report.MissingRepositories) != 1 || report.MissingRepositories[0].ID != "gone" {
			t.Errorf("expected missing repo 'gone', got %+v", report.MissingRepositories)
		}
		// Dry-run leaves everything in place.
		if got := len(c.Store.Groups()); got != 3 {
			t.Errorf("expected 3 groups untouched, got %d", got)
		}
		if got := len(c.Store.Repositories()); got != 2 {
			t.Errorf("expected 2 repositories untouched, got %d", got)
		}
	})

	t.Run("prune deletes exactly the candidates", func(t *testing.T) {
		c := setup(t)
		if err := c.Prune(c.PruneCandidates()); err != nil {
			t.Fatalf("prune: %v", err)
		}
		if _, ok := c.Store.FindGroup("empty1"); ok {
			t.Error("empty1 should be pruned")
		}
		if _, ok := c.Store.FindGroup("kept"); !ok {
			t.Error("kept should survive")
		}
		if _, ok := c.Store.FindRepository("gone"); ok {
			t.Error("gone should be pruned")
		}
		if _, ok := c.Store.FindRepository("live"); !ok {
			t.Error("live should survive")
		}
	})
}

func TestTargets(t *testing.T) {
	c := testCatalog(t)
	repos, err := c.Targets([]string{"no-group"}, []string{"fibonacci"})
	if err != nil {
		t.Fatalf("targets: %v", err)
	}
	if len(repos) != 3 {
		t.Errorf("expected 3 targets (2 via group, 1 direct), got %d", len(repos))
	}
	if _, err := c.Targets([]string{"missing"}, nil); err == nil {
		t.Error("expected unknown group to fail")
	}
}

func TestNamedRepositories(t *testing.T) {
	c := testCatalog(t)
	repos, err := c.NamedRepositories([]string{"no-group", "fibonacci"})
	if err != nil {
		t.Fatalf("named: %v", err)
	}
	if len(repos) != 3 {
		t.Errorf("expected 3 repositories (2 via group, 1 direct), got %d", len(repos))
	}

	if _, err := c.NamedRepositories([]string{"ghost"}); err == nil {
		t.Error("expected unknown name to fail")
	}

	// A name matching both a group and a repository contributes both.
	if err := c.Store.RegisterGroup(model.NewGroup("fibonacci")); err != nil {
		t.Fatal(err)
	}
	c.Store.Relate("helloworld", "fibonacci")
	repos, err = c.NamedRepositories([]string{"fibonacci"})
	if err != nil {
		t.Fatalf("named: %v", err)
	}
	if len(repos) != 2 {
		t.Errorf("expected member plus the repository itself, got %d", len(repos))
	}
}

func TestFind(t *testing.T) {
	c := testCatalog(t)
	if got := len(c.Find([]string{"fib"}, false)); got != 1 {
		t.Errorf("or-match: expected 1, got %d", got)
	}
	if got := len(c.Find([]string{"src"}, false)); got != 2 {
		t.Errorf("path match: expected 2, got %d", got)
	}
	if got := len(c.Find([]string{"src", "hello"}, true)); got != 1 {
		t.Errorf("and-match: expected 1, got %d", got)
	}
}
