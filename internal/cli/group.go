package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/heron/internal/catalog"
	"github.com/aidanlsb/heron/internal/model"
	"github.com/aidanlsb/heron/internal/store"
	"github.com/aidanlsb/heron/internal/ui"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Inspect and edit groups",
}

var (
	groupAddNote   string
	groupAddAbbrev bool
)

var groupAddCmd = &cobra.Command{
	Use:   "add [flags] <name>...",
	Short: "Create groups",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGroupAdd,
}

var (
	groupListEntries string
	groupListFormat  string
)

var groupListCmd = &cobra.Command{
	Use:   "list [flags]",
	Short: "List groups",
	RunE:  runGroupList,
}

var groupInfoCmd = &cobra.Command{
	Use:   "info <name>...",
	Short: "Show details for groups",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGroupInfo,
}

var groupOfCmd = &cobra.Command{
	Use:   "of <repository-id>...",
	Short: "Show which groups repositories belong to",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGroupOf,
}

var (
	groupUpdateRename string
	groupUpdateNote   string
	groupUpdateAbbrev bool
)

var groupUpdateCmd = &cobra.Command{
	Use:   "update [flags] <name>",
	Short: "Update a group, keeping its relations intact",
	Long: `Update a group's name, note, or abbrev flag.

Renaming re-points every relation at the new name, so membership
survives the rename.`,
	Args: cobra.ExactArgs(1),
	RunE: runGroupUpdate,
}

var groupRemoveForce bool

var groupRemoveCmd = &cobra.Command{
	Use:   "remove [flags] <name>...",
	Short: "Remove groups and their relations",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGroupRemove,
}

func init() {
	groupAddCmd.Flags().StringVarP(&groupAddNote, "note", "n", "", "Note describing the group")
	groupAddCmd.Flags().BoolVar(&groupAddAbbrev, "abbrev", false, "Collapse the group to a count in listings")

	groupListCmd.Flags().StringVarP(&groupListEntries, "entry", "e", "name,count", "Columns to show (name, note, abbrev, count, all)")
	formatFlag(groupListCmd.Flags(), &groupListFormat)

	groupUpdateCmd.Flags().StringVarP(&groupUpdateRename, "rename-to", "r", "", "New name for the group")
	groupUpdateCmd.Flags().StringVarP(&groupUpdateNote, "note", "n", "", "New note for the group")
	groupUpdateCmd.Flags().BoolVar(&groupUpdateAbbrev, "abbrev", false, "Collapse the group to a count in listings")

	groupRemoveCmd.Flags().BoolVar(&groupRemoveForce, "force", false, "Remove even when the group still has members")

	groupCmd.AddCommand(groupAddCmd)
	groupCmd.AddCommand(groupListCmd)
	groupCmd.AddCommand(groupInfoCmd)
	groupCmd.AddCommand(groupOfCmd)
	groupCmd.AddCommand(groupUpdateCmd)
	groupCmd.AddCommand(groupRemoveCmd)
	rootCmd.AddCommand(groupCmd)
}

func runGroupAdd(cmd *cobra.Command, args []string) error {
	var errs []error
	var added []model.Group
	for _, name := range args {
		g := model.NewGroupWith(name, groupAddNote, groupAddAbbrev)
		if err := cat.Store.RegisterGroup(g); err != nil {
			errs = append(errs, err)
			continue
		}
		added = append(added, g)
	}
	if err := store.Collect(errs); err != nil {
		return handleCatalogError(err)
	}
	markStoreChanged()

	if isJSONOutput() {
		outputSuccess(added, &Meta{Count: len(added)})
		return nil
	}
	for _, g := range added {
		fmt.Println(ui.Successf("added group %s", g.Name))
	}
	return nil
}

func runGroupList(cmd *cobra.Command, args []string) error {
	groups := cat.Store.Groups()

	if isJSONOutput() {
		outputSuccess(groups, &Meta{Count: len(groups)})
		return nil
	}

	cols, err := parseGroupColumns(groupListEntries)
	if err != nil {
		return handleErrorMsg(ErrInvalidInput, err.Error(), "")
	}
	t := ui.NewTable(groupHeader(cols)...)
	for _, g := range groups {
		t.AddRow(groupRow(g, len(cat.Store.RelationsWithGroup(g.Name)), cols)...)
	}
	printTable(t, listStyle(groupListFormat))
	return nil
}

func runGroupInfo(cmd *cobra.Command, args []string) error {
	var errs []error
	var found []model.Group
	for _, name := range args {
		g, ok := cat.Store.FindGroup(name)
		if !ok {
			errs = append(errs, store.GroupNotFoundError{Name: name})
			continue
		}
		found = append(found, g)
	}
	if err := store.Collect(errs); err != nil {
		return handleCatalogError(err)
	}

	if isJSONOutput() {
		outputSuccess(found, &Meta{Count: len(found)})
		return nil
	}
	for _, g := range found {
		fmt.Println(ui.Header(g.Name))
		if g.Note != "" {
			fmt.Printf("  note:   %s\n", g.Note)
		}
		fmt.Printf("  abbrev: %t\n", g.IsAbbrev())
		members := cat.Store.RepositoriesOf(g.Name)
		fmt.Printf("  %s\n", ui.CountNoun(len(members), "repository", "repositories"))
		for _, r := range members {
			fmt.Printf("    %s\n", ui.Accent.Render(r.ID))
		}
	}
	return nil
}

func runGroupOf(cmd *cobra.Command, args []string) error {
	var errs []error
	found := map[string][]model.Group{}
	for _, id := range args {
		if _, ok := cat.Store.FindRepository(id); !ok {
			errs = append(errs, store.RepositoryNotFoundError{ID: id})
			continue
		}
		found[id] = cat.Store.GroupsOf(id)
	}
	if err := store.Collect(errs); err != nil {
		return handleCatalogError(err)
	}

	if isJSONOutput() {
		outputSuccess(found, &Meta{Count: len(found)})
		return nil
	}
	for _, id := range args {
		groups, ok := found[id]
		if !ok {
			continue
		}
		names := make([]string, 0, len(groups))
		for _, g := range groups {
			names = append(names, g.Name)
		}
		fmt.Printf("%s: %s\n", ui.Bold.Render(id), strings.Join(names, ", "))
	}
	return nil
}

func runGroupUpdate(cmd *cobra.Command, args []string) error {
	upd := catalog.GroupUpdate{Rename: groupUpdateRename}
	if cmd.Flags().Changed("note") {
		upd.Note = &groupUpdateNote
	}
	if cmd.Flags().Changed("abbrev") {
		upd.Abbrev = &groupUpdateAbbrev
	}
	if err := cat.UpdateGroup(args[0], upd); err != nil {
		return handleCatalogError(err)
	}
	markStoreChanged()

	name := args[0]
	if upd.Rename != "" {
		name = upd.Rename
	}
	if isJSONOutput() {
		g, _ := cat.Store.FindGroup(name)
		outputSuccess(g, nil)
		return nil
	}
	fmt.Println(ui.Successf("updated group %s", name))
	return nil
}

func runGroupRemove(cmd *cobra.Command, args []string) error {
	var errs []error
	var removed []string
	for _, name := range args {
		if _, ok := cat.Store.FindGroup(name); !ok {
			errs = append(errs, store.GroupNotFoundError{Name: name})
			continue
		}
		if !groupRemoveForce && len(cat.Store.RelationsWithGroup(name)) > 0 {
			errs = append(errs, store.GroupNotEmptyError{Name: name})
			continue
		}
		if err := cat.Store.DeleteGroup(name); err != nil {
			errs = append(errs, err)
			continue
		}
		removed = append(removed, name)
	}
	if err := store.Collect(errs); err != nil {
		return handleCatalogError(err)
	}
	markStoreChanged()

	if isJSONOutput() {
		outputSuccess(removed, &Meta{Count: len(removed)})
		return nil
	}
	for _, name := range removed {
		fmt.Println(ui.Successf("removed group %s", name))
	}
	return nil
}
