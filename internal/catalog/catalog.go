// Package catalog implements the consistency-preserving workflows layered on
// the store: rename-safe updates, cascading deletes over the flat
// repository/group namespace, pruning, and the last-access refresh policy.
// The store keeps individual mutations sound; this package keeps multi-step
// edits referentially consistent.
package catalog

import (
	"github.com/aidanlsb/heron/internal/config"
	"github.com/aidanlsb/heron/internal/model"
	"github.com/aidanlsb/heron/internal/paths"
	"github.com/aidanlsb/heron/internal/store"
)

// Catalog binds the snapshot store to the policy configuration.
type Catalog struct {
	Store  *store.Snapshot
	Config *config.Config
}

// New builds a catalog over a loaded snapshot.
func New(s *store.Snapshot, cfg *config.Config) *Catalog {
	return &Catalog{Store: s, Config: cfg}
}

// PathNotFoundError reports a registration path that does not exist.
type PathNotFoundError struct {
	Path string
}

func (e PathNotFoundError) Error() string {
	return e.Path + ": repository path not found"
}

// AddPath registers the working copy at path. The identifier defaults to the
// last path segment; the path is canonicalized before storing.
func (c *Catalog) AddPath(path, id, description string, groupNames []string) (model.Repository, error) {
	if !paths.Exists(path) {
		return model.Repository{}, PathNotFoundError{Path: path}
	}
	canonical, err := paths.Canonicalize(path)
	if err != nil {
		return model.Repository{}, err
	}
	if id == "" {
		id = paths.Basename(canonical)
	}
	r := model.NewRepository(id, canonical, description)
	if err := c.Store.Register(r, groupNames); err != nil {
		return model.Repository{}, err
	}
	return r, nil
}

// RepositoryUpdate carries the field changes for a rename-safe repository
// update. Zero-valued fields keep the current value. A non-nil
// ReplaceGroups wins outright over AddGroups: every existing relation is
// dropped first and only the replacement list remains, so an empty
// non-nil list clears all memberships.
type RepositoryUpdate struct {
	ID            string
	Path          string
	Description   *string
	AddGroups     []string
	ReplaceGroups []string
}

// UpdateRepository applies a rename-safe repository update: overlay the
// supplied fields, decide the target group set, swap the stored repository,
// then re-point every intended relation at the (possibly new) identifier.
// No relation is left pointing at the stale ID afterwards. A rename onto an
// identifier that is already taken fails before anything changes.
func (c *Catalog) UpdateRepository(targetID string, upd RepositoryUpdate) error {
	current, ok := c.Store.FindRepositoryWithGroups(targetID)
	if !ok {
		return store.RepositoryNotFoundError{ID: targetID}
	}

	newRepo := current.Repository
	if upd.ID != "" && upd.ID != targetID {
		if _, taken := c.Store.FindRepository(upd.ID); taken {
			return store.RenameTargetError{Name: upd.ID}
		}
		newRepo.ID = upd.ID
	}
	if upd.Path != "" {
		newRepo.Path = upd.Path
	}
	if upd.Description != nil {
		newRepo.Description = *upd.Description
	}
	newRepo = c.refreshed(newRepo, false)

	var targetGroups []string
	if upd.ReplaceGroups != nil {
		// The replacement list wins; existing relations go first, while
		// they still reference the old ID.
		for _, g := range current.Groups {
			if c.Store.HasRelation(targetID, g.Name) {
				if err := c.Store.DeleteRelation(targetID, g.Name); err != nil {
					return err
				}
			}
		}
		targetGroups = upd.ReplaceGroups
	} else {
		targetGroups = append(current.GroupNames(), upd.AddGroups...)
	}

	// The raw update does not touch relations, which is why the
	// replacement deletion above had to come first.
	if err := c.Store.UpdateRepository(targetID, newRepo); err != nil {
		return err
	}

	var errs []error
	for _, name := range targetGroups {
		if err := c.relateWith(newRepo.ID, name); err != nil {
			errs = append(errs, err)
		}
	}
	return store.Collect(errs)
}

// relateWith creates a relation, creating the group first when the
// auto-create-group policy allows it.
func (c *Catalog) relateWith(repositoryID, groupName string) error {
	if c.Store.HasRelation(repositoryID, groupName) {
		return nil
	}
	if _, ok := c.Store.FindGroup(groupName); !ok {
		if !c.Config.Settings.AutoCreateGroup {
			return store.GroupNotFoundError{Name: groupName}
		}
		if err := c.Store.RegisterGroup(model.NewGroup(groupName)); err != nil {
			return err
		}
	}
	c.Store.Relate(repositoryID, groupName)
	return nil
}

// GroupUpdate carries the field changes for a rename-safe group update.
// Nil fields keep the current value.
type GroupUpdate struct {
	Rename string
	Note   *string
	Abbrev *bool
}

// UpdateGroup overlays the supplied fields and delegates to the store's
// update, which already rewrites relation pointers on rename. A rename onto
// a name that is already taken fails before anything changes.
func (c *Catalog) UpdateGroup(name string, upd GroupUpdate) error {
	current, ok := c.Store.FindGroup(name)
	if !ok {
		return store.GroupNotFoundError{Name: name}
	}
	newGroup := current
	if upd.Rename != "" && upd.Rename != name {
		if _, taken := c.Store.FindGroup(upd.Rename); taken {
			return store.RenameTargetError{Name: upd.Rename}
		}
		newGroup.Name = upd.Rename
	}
	if upd.Note != nil {
		newGroup.Note = *upd.Note
	}
	if upd.Abbrev != nil {
		abbrev := *upd.Abbrev
		newGroup.Abbrev = &abbrev
	}
	return c.Store.UpdateGroup(name, newGroup)
}

// Refreshed applies the last-access refresh policy to a repository read for
// display: if the stored timestamp is absent or stale, re-read the access
// time and write it back, marking the store dirty. Relations are untouched.
func (c *Catalog) Refreshed(r model.Repository) model.Repository {
	return c.refreshed(r, true)
}

func (c *Catalog) refreshed(r model.Repository, writeBack bool) model.Repository {
	if r.LastAccess != nil && !c.Config.IsStale(*r.LastAccess) {
		return r
	}
	updated := r
	if !updated.RefreshLastAccess() {
		return r
	}
	if writeBack {
		_ = c.Store.UpdateRepository(r.ID, updated)
	}
	return updated
}
