package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/heron/internal/model"
	"github.com/aidanlsb/heron/internal/store"
	"github.com/aidanlsb/heron/internal/ui"
)

var (
	addRepositoryID string
	addDescription  string
	addGroups       []string
)

var addCmd = &cobra.Command{
	Use:   "add [flags] <path>...",
	Short: "Register working copies in the catalog",
	Long: `Register one or more working copies in the catalog.

Each path must exist on disk. The repository ID defaults to the
directory basename; groups named with --group are created on the fly.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addRepositoryID, "repository-id", "r", "", "ID for the repository (single path only; defaults to basename)")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description of the repository")
	addCmd.Flags().StringSliceVarP(&addGroups, "group", "g", nil, "Group(s) to relate the repository to")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if addRepositoryID != "" && len(args) > 1 {
		return handleErrorMsg(ErrInvalidInput, "--repository-id applies to a single path only", "")
	}

	var errs []error
	var added []model.Repository
	for _, path := range args {
		repo, err := cat.AddPath(path, addRepositoryID, addDescription, addGroups)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		added = append(added, repo)
	}
	if err := store.Collect(errs); err != nil {
		return handleCatalogError(err)
	}
	markStoreChanged()

	if isJSONOutput() {
		outputSuccess(added, &Meta{Count: len(added)})
		return nil
	}
	for _, repo := range added {
		fmt.Println(ui.Successf("added %s (%s)", ui.Accent.Render(repo.ID), repo.Path))
	}
	return nil
}
