package catalog

import (
	"github.com/aidanlsb/heron/internal/store"
)

// nameKind says which entity a flat-namespace name resolved to.
type nameKind int

const (
	kindRepository nameKind = iota
	kindGroup
)

// resolveName resolves a name in the flat namespace shared by repository IDs
// and group names. A name matching both or neither is an error.
func (c *Catalog) resolveName(name string) (nameKind, error) {
	_, isRepo := c.Store.FindRepository(name)
	_, isGroup := c.Store.FindGroup(name)
	switch {
	case isRepo && isGroup:
		return 0, store.AmbiguousNameError{Name: name}
	case isRepo:
		return kindRepository, nil
	case isGroup:
		return kindGroup, nil
	default:
		return 0, store.UnknownNameError{Name: name}
	}
}

// RemoveMany resolves each name to a repository or group and applies the
// corresponding cascading delete. Deleting a group that still has members is
// blocked unless force is set. Per-name failures are aggregated.
func (c *Catalog) RemoveMany(names []string, force bool) error {
	var errs []error
	for _, name := range names {
		if err := c.removeOne(name, force); err != nil {
			errs = append(errs, err)
		}
	}
	return store.Collect(errs)
}

func (c *Catalog) removeOne(name string, force bool) error {
	kind, err := c.resolveName(name)
	if err != nil {
		return err
	}
	switch kind {
	case kindRepository:
		return c.Store.DeleteRepository(name)
	default:
		if !force && len(c.Store.RelationsWithGroup(name)) > 0 {
			return store.GroupNotEmptyError{Name: name}
		}
		return c.Store.DeleteGroup(name)
	}
}

// RenameKind selects what a rename targets when the caller disambiguates.
type RenameKind int

const (
	// RenameAuto resolves the source name in the flat namespace.
	RenameAuto RenameKind = iota
	// RenameRepository forces the source to be treated as a repository ID.
	RenameRepository
	// RenameGroup forces the source to be treated as a group name.
	RenameGroup
)

// Rename renames a repository or group through the rename-safe workflows.
// The target name must not collide with an existing entity of the same kind.
func (c *Catalog) Rename(from, to string, kind RenameKind) error {
	if kind == RenameAuto {
		resolved, err := c.resolveName(from)
		if err != nil {
			return err
		}
		if resolved == kindRepository {
			kind = RenameRepository
		} else {
			kind = RenameGroup
		}
	}
	switch kind {
	case RenameRepository:
		return c.UpdateRepository(from, RepositoryUpdate{ID: to})
	default:
		return c.UpdateGroup(from, GroupUpdate{Rename: to})
	}
}
