package cli

import (
	"github.com/spf13/cobra"

	"github.com/aidanlsb/heron/internal/ui"
)

var (
	findMatchAll bool
	findEntries  string
	findFormat   string
)

var findCmd = &cobra.Command{
	Use:   "find [flags] <keyword>...",
	Short: "Find repositories by keyword",
	Long: `Find repositories whose ID, path, or description contains the given
keywords. Any keyword matches unless --and is set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().BoolVarP(&findMatchAll, "and", "a", false, "Require every keyword to match")
	findCmd.Flags().StringVarP(&findEntries, "entry", "e", "id,groups,path", "Columns to show (id, groups, path, description, last-access, all)")
	formatFlag(findCmd.Flags(), &findFormat)
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	matches := cat.Find(args, findMatchAll)

	if isJSONOutput() {
		outputSuccess(matches, &Meta{Count: len(matches)})
		return nil
	}

	cols, err := parseRepoColumns(findEntries)
	if err != nil {
		return handleErrorMsg(ErrInvalidInput, err.Error(), "")
	}
	t := ui.NewTable(repoHeader(cols)...)
	for _, r := range matches {
		t.AddRow(repoRow(r, cols)...)
	}
	printTable(t, listStyle(findFormat))
	return nil
}
