// Package store holds the relational core of the catalog: the read and
// mutation contracts over repositories, groups, and relations, and the
// JSON-snapshot implementation backing them.
//
// The whole catalog is loaded into memory at process start, mutated during a
// single command, and written back once at process end. There is no partial
// or streaming persistence.
package store

import (
	"io"

	"github.com/aidanlsb/heron/internal/model"
)

// Reader is the read-only query contract over the current snapshot.
// Collections come back in relation insertion order; none of these mutate.
type Reader interface {
	// FindRepository looks up a repository by ID.
	FindRepository(id string) (model.Repository, bool)
	// FindRepositoryWithGroups joins a repository with its groups.
	// An existing repository with no groups is found with an empty list;
	// that is distinct from the repository being absent.
	FindRepositoryWithGroups(id string) (model.RepositoryWithGroups, bool)
	// FindGroup looks up a group by name.
	FindGroup(name string) (model.Group, bool)
	// GroupsOf returns the groups a repository belongs to.
	GroupsOf(id string) []model.Group
	// RepositoriesOf returns the members of a group.
	RepositoriesOf(groupName string) []model.Repository
	// HasRelation reports whether a membership edge exists.
	HasRelation(repositoryID, groupName string) bool
	// FindRelation looks up a specific membership edge.
	FindRelation(repositoryID, groupName string) (model.Relation, bool)
	// RelationsWithRepository returns every relation naming the repository.
	RelationsWithRepository(repositoryID string) []model.Relation
	// RelationsWithGroup returns every relation naming the group.
	RelationsWithGroup(groupName string) []model.Relation
	// Groups returns all groups.
	Groups() []model.Group
	// Repositories returns all repositories.
	Repositories() []model.Repository
	// Relations returns all membership edges.
	Relations() []model.Relation
	// GroupRepositories partitions repositories by group name. Groups with
	// zero members are present with an empty slice, not absent.
	GroupRepositories() map[string][]model.Repository
}

// Store is the mutation contract. Every method preserves the invariants:
// unique repository IDs, unique group names, no duplicate relation pairs,
// and no relation naming an entity that a delete left behind.
type Store interface {
	Reader

	// Register adds a repository and relates it to the named groups,
	// creating any group that does not exist yet. It fails with
	// RepositoryExistsError before touching anything.
	Register(r model.Repository, groupNames []string) error
	// RegisterGroup adds a group, failing with GroupExistsError on a
	// taken name.
	RegisterGroup(g model.Group) error
	// Relate creates a membership edge, or returns the existing one;
	// creating a relation that already exists mutates nothing. It does not
	// validate that the endpoints exist - that is the caller's job.
	Relate(repositoryID, groupName string) model.Relation
	// DeleteRelation removes one edge, failing with RelationNotFoundError.
	DeleteRelation(repositoryID, groupName string) error
	// DeleteRepository removes a repository and cascades to every relation
	// naming it. Groups are untouched.
	DeleteRepository(id string) error
	// DeleteGroup removes a group and cascades to every relation naming
	// it. Repositories are untouched.
	DeleteGroup(name string) error
	// UpdateRepository replaces the repository matched by oldID in place.
	// It does NOT rewrite relations: changing the ID through this method
	// alone orphans them. Callers wanting a rename-safe update go through
	// catalog.UpdateRepository instead.
	UpdateRepository(oldID string, r model.Repository) error
	// UpdateGroup replaces the group matched by oldName and rewrites every
	// relation pointing at the old name.
	UpdateGroup(oldName string, g model.Group) error
	// WriteTo serializes the full snapshot, refreshing the modification
	// timestamp.
	WriteTo(w io.Writer) error
}
