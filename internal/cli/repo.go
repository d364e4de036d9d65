package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/heron/internal/catalog"
	"github.com/aidanlsb/heron/internal/model"
	"github.com/aidanlsb/heron/internal/store"
	"github.com/aidanlsb/heron/internal/ui"
)

var repositoryCmd = &cobra.Command{
	Use:     "repository",
	Aliases: []string{"repo"},
	Short:   "Inspect and edit repositories",
}

var repositoryListCmd = &cobra.Command{
	Use:   "list [flags] [group...]",
	Short: "List repositories by group",
	RunE:  runList,
}

var (
	repoInfoEntries string
	repoInfoFormat  string
)

var repositoryInfoCmd = &cobra.Command{
	Use:   "info [flags] <id>...",
	Short: "Show details for repositories",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRepositoryInfo,
}

var (
	repoUpdateID            string
	repoUpdatePath          string
	repoUpdateDescription   string
	repoUpdateAddGroups     []string
	repoUpdateReplaceGroups []string
)

var repositoryUpdateCmd = &cobra.Command{
	Use:   "update [flags] <id>",
	Short: "Update a repository, keeping its group relations intact",
	Long: `Update a repository's ID, path, description, or groups.

Renaming with --id re-points every relation at the new ID, so group
membership survives the rename. --group adds to the current groups;
--new-groups replaces them outright, and an empty value clears them.`,
	Args: cobra.ExactArgs(1),
	RunE: runRepositoryUpdate,
}

var repositoryRemoveCmd = &cobra.Command{
	Use:   "remove <id>...",
	Short: "Remove repositories and their group relations",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRepositoryRemove,
}

func init() {
	repositoryListCmd.Flags().StringVarP(&listEntries, "entry", "e", "id,path", "Columns to show (id, groups, path, description, last-access, all)")
	formatFlag(repositoryListCmd.Flags(), &listFormat)

	repositoryInfoCmd.Flags().StringVarP(&repoInfoEntries, "entry", "e", "all", "Columns to show (id, groups, path, description, last-access, all)")
	formatFlag(repositoryInfoCmd.Flags(), &repoInfoFormat)

	repositoryUpdateCmd.Flags().StringVarP(&repoUpdateID, "id", "i", "", "New ID for the repository")
	repositoryUpdateCmd.Flags().StringVarP(&repoUpdatePath, "path", "p", "", "New path for the repository")
	repositoryUpdateCmd.Flags().StringVarP(&repoUpdateDescription, "description", "d", "", "New description for the repository")
	repositoryUpdateCmd.Flags().StringSliceVarP(&repoUpdateAddGroups, "group", "g", nil, "Group(s) to add the repository to")
	repositoryUpdateCmd.Flags().StringSliceVarP(&repoUpdateReplaceGroups, "new-groups", "G", nil, "Group(s) that replace the current ones")

	repositoryCmd.AddCommand(repositoryListCmd)
	repositoryCmd.AddCommand(repositoryInfoCmd)
	repositoryCmd.AddCommand(repositoryUpdateCmd)
	repositoryCmd.AddCommand(repositoryRemoveCmd)
	rootCmd.AddCommand(repositoryCmd)
}

func runRepositoryInfo(cmd *cobra.Command, args []string) error {
	var errs []error
	var found []model.RepositoryWithGroups
	for _, id := range args {
		r, ok := cat.Store.FindRepositoryWithGroups(id)
		if !ok {
			errs = append(errs, store.RepositoryNotFoundError{ID: id})
			continue
		}
		r.Repository = cat.Refreshed(r.Repository)
		found = append(found, r)
	}
	if err := store.Collect(errs); err != nil {
		return handleCatalogError(err)
	}

	if isJSONOutput() {
		outputSuccess(found, &Meta{Count: len(found)})
		return nil
	}

	cols, err := parseRepoColumns(repoInfoEntries)
	if err != nil {
		return handleErrorMsg(ErrInvalidInput, err.Error(), "")
	}
	t := ui.NewTable(repoHeader(cols)...)
	for _, r := range found {
		t.AddRow(repoRow(r, cols)...)
	}
	printTable(t, listStyle(repoInfoFormat))
	return nil
}

func runRepositoryUpdate(cmd *cobra.Command, args []string) error {
	upd := catalog.RepositoryUpdate{
		ID:        repoUpdateID,
		Path:      repoUpdatePath,
		AddGroups: repoUpdateAddGroups,
	}
	if cmd.Flags().Changed("description") {
		upd.Description = &repoUpdateDescription
	}
	if cmd.Flags().Changed("new-groups") {
		// A supplied-but-empty list clears every membership, so keep the
		// slice non-nil even when no groups were named.
		upd.ReplaceGroups = repoUpdateReplaceGroups
		if upd.ReplaceGroups == nil {
			upd.ReplaceGroups = []string{}
		}
	}
	if err := cat.UpdateRepository(args[0], upd); err != nil {
		return handleCatalogError(err)
	}
	markStoreChanged()

	id := args[0]
	if upd.ID != "" {
		id = upd.ID
	}
	if isJSONOutput() {
		r, _ := cat.Store.FindRepositoryWithGroups(id)
		outputSuccess(r, nil)
		return nil
	}
	fmt.Println(ui.Successf("updated %s", id))
	return nil
}

func runRepositoryRemove(cmd *cobra.Command, args []string) error {
	var errs []error
	var removed []string
	for _, id := range args {
		if err := cat.Store.DeleteRepository(id); err != nil {
			errs = append(errs, err)
			continue
		}
		removed = append(removed, id)
	}
	if err := store.Collect(errs); err != nil {
		return handleCatalogError(err)
	}
	markStoreChanged()

	if isJSONOutput() {
		outputSuccess(removed, &Meta{Count: len(removed)})
		return nil
	}
	for _, id := range removed {
		fmt.Println(ui.Successf("removed %s", id))
	}
	return nil
}
