// Package model defines the catalog entities: repositories, groups, and the
// many-to-many relations connecting them. Entities are plain values; all
// cross-entity references go by key (repository ID, group name), never by
// pointer, so renames and deletes cannot leave dangling references.
package model

import (
	"time"

	"github.com/aidanlsb/heron/internal/paths"
)

// Repository is a tracked local working copy. The ID is the unique key;
// the path is informational and not part of identity.
type Repository struct {
	ID          string     `json:"id" yaml:"id"`
	Path        string     `json:"path" yaml:"path"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	LastAccess  *time.Time `json:"last-access,omitempty" yaml:"last-access,omitempty"`
}

// NewRepository builds a Repository and captures the path's access time.
// A missing or unreadable path leaves LastAccess unset rather than failing.
func NewRepository(id, path, description string) Repository {
	r := Repository{ID: id, Path: path, Description: description}
	if t, ok := paths.AccessTime(path); ok {
		r.LastAccess = &t
	}
	return r
}

// RefreshLastAccess re-reads the access time from the filesystem.
// Returns true if the stored value changed.
func (r *Repository) RefreshLastAccess() bool {
	t, ok := paths.AccessTime(r.Path)
	if !ok {
		return false
	}
	if r.LastAccess != nil && r.LastAccess.Equal(t) {
		return false
	}
	r.LastAccess = &t
	return true
}

// RepositoryWithGroups is a read-only join of a repository with the groups
// reachable through its relations. Built on demand, never persisted.
type RepositoryWithGroups struct {
	Repository `yaml:",inline"`
	Groups     []Group `json:"groups" yaml:"groups"`
}

// GroupNames returns the names of the joined groups in relation order.
func (r RepositoryWithGroups) GroupNames() []string {
	names := make([]string, 0, len(r.Groups))
	for _, g := range r.Groups {
		names = append(names, g.Name)
	}
	return names
}
