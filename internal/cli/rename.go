package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/heron/internal/catalog"
	"github.com/aidanlsb/heron/internal/ui"
)

var (
	renameRepositoryFlag bool
	renameGroupFlag      bool
)

var renameCmd = &cobra.Command{
	Use:   "rename [flags] <from> <to>",
	Short: "Rename a repository or group",
	Long: `Rename a repository or group, keeping its relations intact.

The source name is resolved against repository IDs and group names;
use --repository or --group when it matches both.`,
	Args: cobra.ExactArgs(2),
	RunE: runRename,
}

func init() {
	renameCmd.Flags().BoolVarP(&renameRepositoryFlag, "repository", "r", false, "Treat the source name as a repository ID")
	renameCmd.Flags().BoolVarP(&renameGroupFlag, "group", "g", false, "Treat the source name as a group name")
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	if renameRepositoryFlag && renameGroupFlag {
		return handleErrorMsg(ErrInvalidInput, "--repository and --group are mutually exclusive", "")
	}
	kind := catalog.RenameAuto
	if renameRepositoryFlag {
		kind = catalog.RenameRepository
	}
	if renameGroupFlag {
		kind = catalog.RenameGroup
	}

	from, to := args[0], args[1]
	if err := cat.Rename(from, to, kind); err != nil {
		return handleCatalogError(err)
	}
	markStoreChanged()

	if isJSONOutput() {
		outputSuccess(map[string]string{"from": from, "to": to}, nil)
		return nil
	}
	fmt.Println(ui.Successf("renamed %s to %s", from, to))
	return nil
}
