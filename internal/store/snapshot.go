package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aidanlsb/heron/internal/atomicfile"
	"github.com/aidanlsb/heron/internal/model"
)

// Snapshot is the concrete store: the authoritative in-memory copy of all
// three entity collections for the process lifetime, loaded from and saved
// back to a single JSON document. Insertion order is preserved in the
// backing slices; lookups always re-resolve by key.
type Snapshot struct {
	lastModified time.Time
	repositories []model.Repository
	groups       []model.Group
	relations    []model.Relation

	dirty bool
}

var _ Store = (*Snapshot)(nil)

// snapshotJSON is the on-disk shape of the snapshot.
type snapshotJSON struct {
	LastModified time.Time          `json:"last-modified"`
	Repositories []model.Repository `json:"repositories"`
	Groups       []model.Group      `json:"groups"`
	Relations    []model.Relation   `json:"relations"`
}

// New returns an empty snapshot.
func New() *Snapshot {
	return &Snapshot{lastModified: time.Now()}
}

// Load reads a snapshot from path. A missing file yields an empty snapshot
// so the first `hrn add` bootstraps the catalog without a separate init step.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a snapshot document.
func Parse(data []byte) (*Snapshot, error) {
	var doc snapshotJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &Snapshot{
		lastModified: doc.LastModified,
		repositories: doc.Repositories,
		groups:       doc.Groups,
		relations:    doc.Relations,
	}, nil
}

// Dirty reports whether any mutation happened since load.
func (s *Snapshot) Dirty() bool {
	return s.dirty
}

// MarkDirty flags the snapshot for persistence without a structural edit
// (used by the lazy last-access refresh).
func (s *Snapshot) MarkDirty() {
	s.dirty = true
}

// WriteTo serializes the snapshot with a refreshed modification timestamp.
func (s *Snapshot) WriteTo(w io.Writer) error {
	s.lastModified = time.Now()
	data, err := s.marshal()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// SaveTo persists the snapshot to path atomically.
func (s *Snapshot) SaveTo(path string) error {
	s.lastModified = time.Now()
	data, err := s.marshal()
	if err != nil {
		return err
	}
	if err := atomicfile.WriteFile(path, data, 0); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	s.dirty = false
	return nil
}

func (s *Snapshot) marshal() ([]byte, error) {
	doc := snapshotJSON{
		LastModified: s.lastModified,
		Repositories: s.repositories,
		Groups:       s.groups,
		Relations:    s.relations,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

// ---- Reader ----

// FindRepository looks up a repository by ID.
func (s *Snapshot) FindRepository(id string) (model.Repository, bool) {
	for _, r := range s.repositories {
		if r.ID == id {
			return r, true
		}
	}
	return model.Repository{}, false
}

// FindRepositoryWithGroups joins a repository with its groups.
func (s *Snapshot) FindRepositoryWithGroups(id string) (model.RepositoryWithGroups, bool) {
	r, ok := s.FindRepository(id)
	if !ok {
		return model.RepositoryWithGroups{}, false
	}
	return model.RepositoryWithGroups{Repository: r, Groups: s.GroupsOf(id)}, true
}

// FindGroup looks up a group by name.
func (s *Snapshot) FindGroup(name string) (model.Group, bool) {
	for _, g := range s.groups {
		if g.Name == name {
			return g, true
		}
	}
	return model.Group{}, false
}

// GroupsOf returns the groups of a repository in relation insertion order.
func (s *Snapshot) GroupsOf(id string) []model.Group {
	var groups []model.Group
	for _, rel := range s.relations {
		if rel.RepositoryID != id {
			continue
		}
		if g, ok := s.FindGroup(rel.GroupName); ok {
			groups = append(groups, g)
		}
	}
	return groups
}

// RepositoriesOf returns the members of a group in relation insertion order.
func (s *Snapshot) RepositoriesOf(groupName string) []model.Repository {
	var repos []model.Repository
	for _, rel := range s.relations {
		if rel.GroupName != groupName {
			continue
		}
		if r, ok := s.FindRepository(rel.RepositoryID); ok {
			repos = append(repos, r)
		}
	}
	return repos
}

// HasRelation reports whether a membership edge exists.
func (s *Snapshot) HasRelation(repositoryID, groupName string) bool {
	_, ok := s.FindRelation(repositoryID, groupName)
	return ok
}

// FindRelation looks up a specific membership edge.
func (s *Snapshot) FindRelation(repositoryID, groupName string) (model.Relation, bool) {
	for _, rel := range s.relations {
		if rel.RepositoryID == repositoryID && rel.GroupName == groupName {
			return rel, true
		}
	}
	return model.Relation{}, false
}

// RelationsWithRepository returns every relation naming the repository.
func (s *Snapshot) RelationsWithRepository(repositoryID string) []model.Relation {
	var rels []model.Relation
	for _, rel := range s.relations {
		if rel.RepositoryID == repositoryID {
			rels = append(rels, rel)
		}
	}
	return rels
}

// RelationsWithGroup returns every relation naming the group.
func (s *Snapshot) RelationsWithGroup(groupName string) []model.Relation {
	var rels []model.Relation
	for _, rel := range s.relations {
		if rel.GroupName == groupName {
			rels = append(rels, rel)
		}
	}
	return rels
}

// Groups returns all groups in insertion order.
func (s *Snapshot) Groups() []model.Group {
	return append([]model.Group(nil), s.groups...)
}

// Repositories returns all repositories in insertion order.
func (s *Snapshot) Repositories() []model.Repository {
	return append([]model.Repository(nil), s.repositories...)
}

// Relations returns all membership edges in insertion order.
func (s *Snapshot) Relations() []model.Relation {
	return append([]model.Relation(nil), s.relations...)
}

// GroupRepositories partitions repositories by group name. Empty groups map
// to an empty slice so listing views can still show them.
func (s *Snapshot) GroupRepositories() map[string][]model.Repository {
	result := make(map[string][]model.Repository, len(s.groups))
	for _, g := range s.groups {
		result[g.Name] = s.RepositoriesOf(g.Name)
	}
	return result
}

// OrphanRepositories returns repositories with no relations.
func (s *Snapshot) OrphanRepositories() []model.Repository {
	related := make(map[string]bool, len(s.relations))
	for _, rel := range s.relations {
		related[rel.RepositoryID] = true
	}
	var orphans []model.Repository
	for _, r := range s.repositories {
		if !related[r.ID] {
			orphans = append(orphans, r)
		}
	}
	return orphans
}

// ---- Store ----

// Register adds a repository and its group memberships as one unit. The ID
// must be free; groups that do not exist yet are created with an empty note.
func (s *Snapshot) Register(r model.Repository, groupNames []string) error {
	if _, ok := s.FindRepository(r.ID); ok {
		return RepositoryExistsError{ID: r.ID}
	}
	for _, name := range groupNames {
		if _, ok := s.FindGroup(name); !ok {
			if err := s.RegisterGroup(model.NewGroup(name)); err != nil {
				return err
			}
		}
	}
	s.repositories = append(s.repositories, r)
	for _, name := range groupNames {
		s.Relate(r.ID, name)
	}
	s.dirty = true
	return nil
}

// RegisterGroup adds a group with a fresh name.
func (s *Snapshot) RegisterGroup(g model.Group) error {
	if _, ok := s.FindGroup(g.Name); ok {
		return GroupExistsError{Name: g.Name}
	}
	s.groups = append(s.groups, g)
	s.dirty = true
	return nil
}

// Relate creates a membership edge, idempotently.
func (s *Snapshot) Relate(repositoryID, groupName string) model.Relation {
	if rel, ok := s.FindRelation(repositoryID, groupName); ok {
		return rel
	}
	rel := model.NewRelation(repositoryID, groupName)
	s.relations = append(s.relations, rel)
	s.dirty = true
	return rel
}

// DeleteRelation removes one membership edge.
func (s *Snapshot) DeleteRelation(repositoryID, groupName string) error {
	for i, rel := range s.relations {
		if rel.RepositoryID == repositoryID && rel.GroupName == groupName {
			s.relations = append(s.relations[:i], s.relations[i+1:]...)
			s.dirty = true
			return nil
		}
	}
	return RelationNotFoundError{RepositoryID: repositoryID, GroupName: groupName}
}

// DeleteRepository removes a repository and every relation naming it.
func (s *Snapshot) DeleteRepository(id string) error {
	for i, r := range s.repositories {
		if r.ID == id {
			s.repositories = append(s.repositories[:i], s.repositories[i+1:]...)
			s.deleteRelationsIf(func(rel model.Relation) bool {
				return rel.RepositoryID == id
			})
			s.dirty = true
			return nil
		}
	}
	return RepositoryNotFoundError{ID: id}
}

// DeleteGroup removes a group and every relation naming it.
func (s *Snapshot) DeleteGroup(name string) error {
	for i, g := range s.groups {
		if g.Name == name {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			s.deleteRelationsIf(func(rel model.Relation) bool {
				return rel.GroupName == name
			})
			s.dirty = true
			return nil
		}
	}
	return GroupNotFoundError{Name: name}
}

func (s *Snapshot) deleteRelationsIf(match func(model.Relation) bool) {
	kept := s.relations[:0]
	for _, rel := range s.relations {
		if !match(rel) {
			kept = append(kept, rel)
		}
	}
	s.relations = kept
}

// UpdateRepository replaces the repository matched by oldID. Relations are
// left alone; see the Store contract.
func (s *Snapshot) UpdateRepository(oldID string, r model.Repository) error {
	for i, cur := range s.repositories {
		if cur.ID == oldID {
			s.repositories[i] = r
			s.dirty = true
			return nil
		}
	}
	return RepositoryNotFoundError{ID: oldID}
}

// UpdateGroup replaces the group matched by oldName and re-points every
// relation that referenced the old name.
func (s *Snapshot) UpdateGroup(oldName string, g model.Group) error {
	for i, cur := range s.groups {
		if cur.Name == oldName {
			s.groups[i] = g
			for j := range s.relations {
				if s.relations[j].GroupName == oldName {
					s.relations[j].GroupName = g.Name
				}
			}
			s.dirty = true
			return nil
		}
	}
	return GroupNotFoundError{Name: oldName}
}
