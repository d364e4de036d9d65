package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/heron/internal/ui"
)

var removeForce bool

var removeCmd = &cobra.Command{
	Use:     "rm [flags] <name>...",
	Aliases: []string{"remove"},
	Short:   "Remove repositories or groups by name",
	Long: `Remove repositories or groups from the catalog.

Each name is resolved against repository IDs and group names; a name
matching both is ambiguous and refused. Deletes cascade to relations.
Removing a group that still has members requires --force.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVar(&removeForce, "force", false, "Remove groups even when they still have members")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	if err := cat.RemoveMany(args, removeForce); err != nil {
		return handleCatalogError(err)
	}
	markStoreChanged()

	if isJSONOutput() {
		outputSuccess(args, &Meta{Count: len(args)})
		return nil
	}
	for _, name := range args {
		fmt.Println(ui.Successf("removed %s", name))
	}
	return nil
}
