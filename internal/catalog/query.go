package catalog

import (
	"sort"
	"strings"

	"github.com/aidanlsb/heron/internal/model"
	"github.com/aidanlsb/heron/internal/store"
)

// Find returns repositories whose ID, path, or description contains the
// keywords. matchAll requires every keyword; otherwise any keyword matches.
func (c *Catalog) Find(keywords []string, matchAll bool) []model.RepositoryWithGroups {
	var result []model.RepositoryWithGroups
	for _, r := range c.Store.Repositories() {
		if matchesKeywords(r, keywords, matchAll) {
			if rwg, ok := c.Store.FindRepositoryWithGroups(r.ID); ok {
				rwg.Repository = c.Refreshed(rwg.Repository)
				result = append(result, rwg)
			}
		}
	}
	return result
}

func matchesKeywords(r model.Repository, keywords []string, matchAll bool) bool {
	match := func(w string) bool {
		return strings.Contains(r.ID, w) ||
			strings.Contains(r.Path, w) ||
			strings.Contains(r.Description, w)
	}
	if matchAll {
		for _, w := range keywords {
			if !match(w) {
				return false
			}
		}
		return true
	}
	for _, w := range keywords {
		if match(w) {
			return true
		}
	}
	return false
}

// Recent returns up to n repositories ordered most recently accessed first.
// Repositories with no recorded access sort last.
func (c *Catalog) Recent(n int) []model.RepositoryWithGroups {
	repos := c.Store.Repositories()
	sort.SliceStable(repos, func(i, j int) bool {
		a, b := repos[i].LastAccess, repos[j].LastAccess
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	if n > 0 && len(repos) > n {
		repos = repos[:n]
	}
	result := make([]model.RepositoryWithGroups, 0, len(repos))
	for _, r := range repos {
		if rwg, ok := c.Store.FindRepositoryWithGroups(r.ID); ok {
			result = append(result, rwg)
		}
	}
	return result
}

// Targets resolves group names and repository IDs to a combined repository
// list, preserving order and aggregating unknown names.
func (c *Catalog) Targets(groupNames, repositoryIDs []string) ([]model.Repository, error) {
	var result []model.Repository
	var errs []error
	for _, name := range groupNames {
		if _, ok := c.Store.FindGroup(name); !ok {
			errs = append(errs, store.GroupNotFoundError{Name: name})
			continue
		}
		result = append(result, c.Store.RepositoriesOf(name)...)
	}
	for _, id := range repositoryIDs {
		r, ok := c.Store.FindRepository(id)
		if !ok {
			errs = append(errs, store.RepositoryNotFoundError{ID: id})
			continue
		}
		result = append(result, r)
	}
	if err := store.Collect(errs); err != nil {
		return nil, err
	}
	return result, nil
}

// NamedRepositories resolves each name in the flat namespace: a group name
// expands to its members, a repository ID contributes itself, and a name
// matching both contributes both. Unknown names are aggregated.
func (c *Catalog) NamedRepositories(names []string) ([]model.Repository, error) {
	var result []model.Repository
	var errs []error
	for _, name := range names {
		_, isGroup := c.Store.FindGroup(name)
		r, isRepo := c.Store.FindRepository(name)
		if isGroup {
			result = append(result, c.Store.RepositoriesOf(name)...)
		}
		if isRepo {
			result = append(result, r)
		}
		if !isGroup && !isRepo {
			errs = append(errs, store.UnknownNameError{Name: name})
		}
	}
	if err := store.Collect(errs); err != nil {
		return nil, err
	}
	return result, nil
}
