package catalog

import (
	"fmt"

	"github.com/aidanlsb/heron/internal/model"
	"github.com/aidanlsb/heron/internal/paths"
	"github.com/aidanlsb/heron/internal/store"
	"github.com/aidanlsb/heron/internal/ui"
)

// PruneReport is the candidate set computed by PruneCandidates. Computing it
// mutates nothing; Prune applies the deletions.
type PruneReport struct {
	// EmptyGroups are groups with zero relations.
	EmptyGroups []string
	// MissingRepositories are repositories whose path no longer exists.
	MissingRepositories []model.Repository
}

// Empty reports whether there is nothing to prune.
func (p PruneReport) Empty() bool {
	return len(p.EmptyGroups) == 0 && len(p.MissingRepositories) == 0
}

// Summary builds the confirmation message shown before pruning.
func (p PruneReport) Summary() string {
	return fmt.Sprintf("found %s and %s",
		ui.CountNoun(len(p.EmptyGroups), "empty group", "empty groups"),
		ui.CountNoun(len(p.MissingRepositories), "missing-path repository", "missing-path repositories"))
}

// PruneCandidates computes empty groups and repositories whose working copy
// vanished from disk.
func (c *Catalog) PruneCandidates() PruneReport {
	var report PruneReport
	for _, g := range c.Store.Groups() {
		if len(c.Store.RelationsWithGroup(g.Name)) == 0 {
			report.EmptyGroups = append(report.EmptyGroups, g.Name)
		}
	}
	for _, r := range c.Store.Repositories() {
		if !paths.Exists(r.Path) {
			report.MissingRepositories = append(report.MissingRepositories, r)
		}
	}
	return report
}

// Prune deletes every candidate in the report through the cascading deletes.
// Per-candidate failures are aggregated.
func (c *Catalog) Prune(report PruneReport) error {
	var errs []error
	for _, name := range report.EmptyGroups {
		if err := c.Store.DeleteGroup(name); err != nil {
			errs = append(errs, err)
		}
	}
	for _, r := range report.MissingRepositories {
		if err := c.Store.DeleteRepository(r.ID); err != nil {
			errs = append(errs, err)
		}
	}
	return store.Collect(errs)
}
