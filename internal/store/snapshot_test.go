package store

import (
	"bytes"
	"errors"
	"testing"

	"github.com/aidanlsb/heron/internal/model"
)

func seedSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	s := New()
	if err := s.Register(model.Repository{ID: "fibonacci", Path: "/src/fibonacci"}, []string{"algorithms"}); err != nil {
		t.Fatalf("register fibonacci: %v", err)
	}
	if err := s.Register(model.Repository{ID: "helloworld", Path: "/src/helloworld"}, []string{"algorithms", "samples"}); err != nil {
		t.Fatalf("register helloworld: %v", err)
	}
	return s
}

func TestRegister(t *testing.T) {
	t.Run("auto-creates missing groups once", func(t *testing.T) {
		s := seedSnapshot(t)
		if got := len(s.Groups()); got != 2 {
			t.Errorf("expected 2 groups, got %d", got)
		}
		if _, ok := s.FindGroup("algorithms"); !ok {
			t.Error("expected group 'algorithms' to exist")
		}
		if got := len(s.Relations()); got != 3 {
			t.Errorf("expected 3 relations, got %d", got)
		}
	})

	t.Run("duplicate id fails and leaves store unchanged", func(t *testing.T) {
		s := seedSnapshot(t)
		err := s.Register(model.Repository{ID: "fibonacci", Path: "/elsewhere"}, []string{"other"})
		var exists RepositoryExistsError
		if !errors.As(err, &exists) {
			t.Fatalf("expected RepositoryExistsError, got %v", err)
		}
		if got := len(s.Repositories()); got != 2 {
			t.Errorf("expected 2 repositories, got %d", got)
		}
		if _, ok := s.FindGroup("other"); ok {
			t.Error("group 'other' should not have been created")
		}
	})
}

func TestRelateIsIdempotent(t *testing.T) {
	s := seedSnapshot(t)
	before := len(s.Relations())
	rel := s.Relate("fibonacci", "algorithms")
	if rel.RepositoryID != "fibonacci" || rel.GroupName != "algorithms" {
		t.Errorf("unexpected relation %+v", rel)
	}
	if got := len(s.Relations()); got != before {
		t.Errorf("relation count changed: %d -> %d", before, got)
	}
}

func TestDeleteCascades(t *testing.T) {
	t.Run("delete group removes its relations only", func(t *testing.T) {
		s := seedSnapshot(t)
		if err := s.DeleteGroup("algorithms"); err != nil {
			t.Fatalf("delete group: %v", err)
		}
		if got := len(s.RelationsWithGroup("algorithms")); got != 0 {
			t.Errorf("expected 0 relations for deleted group, got %d", got)
		}
		if got := len(s.Repositories()); got != 2 {
			t.Errorf("repositories should be untouched, got %d", got)
		}
		if !s.HasRelation("helloworld", "samples") {
			t.Error("unrelated relation should survive")
		}
	})

	t.Run("delete repository removes its relations only", func(t *testing.T) {
		s := seedSnapshot(t)
		if err := s.DeleteRepository("helloworld"); err != nil {
			t.Fatalf("delete repository: %v", err)
		}
		if got := len(s.RelationsWithRepository("helloworld")); got != 0 {
			t.Errorf("expected 0 relations for deleted repository, got %d", got)
		}
		if got := len(s.Groups()); got != 2 {
			t.Errorf("groups should be untouched, got %d", got)
		}
	})

	t.Run("delete unknown entities fail", func(t *testing.T) {
		s := seedSnapshot(t)
		var rnf RepositoryNotFoundError
		if err := s.DeleteRepository("nope"); !errors.As(err, &rnf) {
			t.Errorf("expected RepositoryNotFoundError, got %v", err)
		}
		var gnf GroupNotFoundError
		if err := s.DeleteGroup("nope"); !errors.As(err, &gnf) {
			t.Errorf("expected GroupNotFoundError, got %v", err)
		}
		var lnf RelationNotFoundError
		if err := s.DeleteRelation("fibonacci", "samples"); !errors.As(err, &lnf) {
			t.Errorf("expected RelationNotFoundError, got %v", err)
		}
	})
}

func TestUpdateGroupRewritesRelations(t *testing.T) {
	s := seedSnapshot(t)
	if err := s.UpdateGroup("algorithms", model.NewGroupWith("current", "renamed", false)); err != nil {
		t.Fatalf("update group: %v", err)
	}
	if _, ok := s.FindGroup("algorithms"); ok {
		t.Error("old group name should be gone")
	}
	if got := len(s.RelationsWithGroup("algorithms")); got != 0 {
		t.Errorf("expected 0 relations under old name, got %d", got)
	}
	if got := len(s.RelationsWithGroup("current")); got != 2 {
		t.Errorf("expected 2 relations under new name, got %d", got)
	}
}

func TestUpdateRepositoryLeavesRelationsAlone(t *testing.T) {
	s := seedSnapshot(t)
	if err := s.UpdateRepository("fibonacci", model.Repository{ID: "fib", Path: "/src/fibonacci"}); err != nil {
		t.Fatalf("update repository: %v", err)
	}
	// The raw update is intentionally not rename-safe; the catalog layer
	// re-points relations.
	if got := len(s.RelationsWithRepository("fibonacci")); got != 1 {
		t.Errorf("expected the stale relation to remain, got %d", got)
	}
	if got := len(s.RelationsWithRepository("fib")); got != 0 {
		t.Errorf("expected no relations under new id yet, got %d", got)
	}
}

func TestGroupRepositoriesIncludesEmptyGroups(t *testing.T) {
	s := seedSnapshot(t)
	if err := s.RegisterGroup(model.NewGroup("empty")); err != nil {
		t.Fatalf("register group: %v", err)
	}
	parts := s.GroupRepositories()
	members, ok := parts["empty"]
	if !ok {
		t.Fatal("empty group missing from partition")
	}
	if len(members) != 0 {
		t.Errorf("expected empty member list, got %d", len(members))
	}
	if got := len(parts["algorithms"]); got != 2 {
		t.Errorf("expected 2 members in algorithms, got %d", got)
	}
}

func TestOrphanRepositories(t *testing.T) {
	s := seedSnapshot(t)
	if err := s.Register(model.Repository{ID: "loner", Path: "/src/loner"}, nil); err != nil {
		t.Fatalf("register: %v", err)
	}
	orphans := s.OrphanRepositories()
	if len(orphans) != 1 || orphans[0].ID != "loner" {
		t.Errorf("expected single orphan 'loner', got %+v", orphans)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := seedSnapshot(t)
	var buf bytes.Buffer
	if err := s.WriteTo(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	loaded, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got, want := loaded.Repositories(), s.Repositories(); len(got) != len(want) {
		t.Errorf("repositories: got %d, want %d", len(got), len(want))
	}
	if got, want := loaded.Groups(), s.Groups(); len(got) != len(want) {
		t.Errorf("groups: got %d, want %d", len(got), len(want))
	}
	for i, rel := range loaded.Relations() {
		if rel != s.Relations()[i] {
			t.Errorf("relation %d differs: %+v", i, rel)
		}
	}
}

func TestLoadMissingFileBootstraps(t *testing.T) {
	s, err := Load(t.TempDir() + "/database.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(s.Repositories()) != 0 || len(s.Groups()) != 0 {
		t.Error("expected an empty snapshot")
	}
	if s.Dirty() {
		t.Error("fresh snapshot should not be dirty")
	}
}

func TestSaveToPersistsAndClearsDirty(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/database.json"
	s := seedSnapshot(t)
	if !s.Dirty() {
		t.Fatal("mutated snapshot should be dirty")
	}
	if err := s.SaveTo(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if s.Dirty() {
		t.Error("saved snapshot should be clean")
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := len(loaded.Relations()); got != 3 {
		t.Errorf("expected 3 relations after reload, got %d", got)
	}
}
