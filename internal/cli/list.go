package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/heron/internal/model"
	"github.com/aidanlsb/heron/internal/store"
	"github.com/aidanlsb/heron/internal/ui"
)

var (
	listEntries string
	listFormat  string
)

var listCmd = &cobra.Command{
	Use:   "list [flags] [group...]",
	Short: "List repositories by group",
	Long: `List the repositories in the catalog, grouped by group.

Without arguments every group is shown. Groups marked as abbrev are
collapsed to a repository count unless named explicitly.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listEntries, "entry", "e", "id,path", "Columns to show (id, groups, path, description, last-access, all)")
	formatFlag(listCmd.Flags(), &listFormat)
	rootCmd.AddCommand(listCmd)
}

// groupListing is one group with its member repositories.
type groupListing struct {
	Group        model.Group        `json:"group"`
	Repositories []model.Repository `json:"repositories"`
}

func runList(cmd *cobra.Command, args []string) error {
	listings, err := collectListings(args)
	if err != nil {
		return handleCatalogError(err)
	}

	if isJSONOutput() {
		total := 0
		for _, l := range listings {
			total += len(l.Repositories)
		}
		outputSuccess(listings, &Meta{Count: total})
		return nil
	}

	cols, err := parseRepoColumns(listEntries)
	if err != nil {
		return handleErrorMsg(ErrInvalidInput, err.Error(), "")
	}
	style := listStyle(listFormat)

	// A single group named on the command line gets the compact column
	// layout on a terminal, like ls.
	if len(args) == 1 && len(listings) == 1 && stdoutIsTerminal() && !cmd.Flags().Changed("entry") {
		ids := make([]string, 0, len(listings[0].Repositories))
		for _, r := range listings[0].Repositories {
			ids = append(ids, r.ID)
		}
		if len(ids) > 0 {
			fmt.Println(ui.Columns(ids))
		}
		return nil
	}

	total := 0
	for _, l := range listings {
		collapsed := l.Group.IsAbbrev() && len(args) == 0
		total += len(l.Repositories)
		if collapsed {
			fmt.Printf("%s (%s)\n", ui.Header(l.Group.Name), ui.CountNoun(len(l.Repositories), "repository", "repositories"))
			continue
		}
		fmt.Println(ui.Header(l.Group.Name))
		if len(l.Repositories) == 0 {
			continue
		}
		t := ui.NewTable(repoHeader(cols)...)
		for _, r := range l.Repositories {
			rwg, ok := cat.Store.FindRepositoryWithGroups(r.ID)
			if !ok {
				continue
			}
			rwg.Repository = cat.Refreshed(rwg.Repository)
			t.AddRow(repoRow(rwg, cols)...)
		}
		printTable(t, style)
	}
	fmt.Println(ui.Hint(fmt.Sprintf("%s in %s",
		ui.CountNoun(total, "repository", "repositories"),
		ui.CountNoun(len(listings), "group", "groups"))))
	return nil
}

func collectListings(names []string) ([]groupListing, error) {
	var groups []model.Group
	if len(names) == 0 {
		groups = cat.Store.Groups()
	} else {
		var errs []error
		for _, name := range names {
			g, ok := cat.Store.FindGroup(name)
			if !ok {
				errs = append(errs, store.GroupNotFoundError{Name: name})
				continue
			}
			groups = append(groups, g)
		}
		if err := store.Collect(errs); err != nil {
			return nil, err
		}
	}

	listings := make([]groupListing, 0, len(groups))
	for _, g := range groups {
		listings = append(listings, groupListing{
			Group:        g,
			Repositories: cat.Store.RepositoriesOf(g.Name),
		})
	}
	return listings, nil
}
