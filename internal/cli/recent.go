package cli

import (
	"github.com/spf13/cobra"

	"github.com/aidanlsb/heron/internal/ui"
)

var (
	recentCount   int
	recentEntries string
	recentFormat  string
)

var recentCmd = &cobra.Command{
	Use:   "recent [flags]",
	Short: "List recently accessed repositories",
	RunE:  runRecent,
}

func init() {
	recentCmd.Flags().IntVarP(&recentCount, "number", "n", 10, "How many repositories to show (0 for all)")
	recentCmd.Flags().StringVarP(&recentEntries, "entry", "e", "id,path,last-access", "Columns to show (id, groups, path, description, last-access, all)")
	formatFlag(recentCmd.Flags(), &recentFormat)
	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, args []string) error {
	repos := cat.Recent(recentCount)

	if isJSONOutput() {
		outputSuccess(repos, &Meta{Count: len(repos)})
		return nil
	}

	cols, err := parseRepoColumns(recentEntries)
	if err != nil {
		return handleErrorMsg(ErrInvalidInput, err.Error(), "")
	}
	t := ui.NewTable(repoHeader(cols)...)
	for _, r := range repos {
		t.AddRow(repoRow(r, cols)...)
	}
	printTable(t, listStyle(recentFormat))
	return nil
}
