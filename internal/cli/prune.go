package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/heron/internal/catalog"
	"github.com/aidanlsb/heron/internal/ui"
)

var (
	pruneDryRun bool
	pruneYes    bool
)

var pruneCmd = &cobra.Command{
	Use:   "prune [flags]",
	Short: "Drop empty groups and repositories whose paths are gone",
	Long: `Remove groups with no members and repositories whose working copy no
longer exists on disk. Relations of a pruned repository go with it.

On a terminal, prune asks for confirmation; use --yes to skip the
prompt, or --dry-run to only report what would be removed.`,
	RunE: runPrune,
}

func init() {
	pruneCmd.Flags().BoolVarP(&pruneDryRun, "dry-run", "n", false, "Report candidates without removing anything")
	pruneCmd.Flags().BoolVarP(&pruneYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(pruneCmd)
}

func runPrune(cmd *cobra.Command, args []string) error {
	report := cat.PruneCandidates()

	if pruneDryRun {
		if isJSONOutput() {
			outputSuccess(report, nil)
			return nil
		}
		printPruneReport(report)
		return nil
	}

	if report.Empty() {
		if isJSONOutput() {
			outputSuccess(report, nil)
			return nil
		}
		fmt.Println("nothing to prune")
		return nil
	}

	if !pruneYes && shouldPromptForConfirm() {
		printPruneReport(report)
		if !promptForConfirm("Prune these entries?") {
			fmt.Println("aborted")
			return nil
		}
	}

	if err := cat.Prune(report); err != nil {
		return handleCatalogError(err)
	}
	markStoreChanged()

	if isJSONOutput() {
		outputSuccess(report, nil)
		return nil
	}
	fmt.Println(ui.Successf("pruned %s", report.Summary()))
	return nil
}

func printPruneReport(report catalog.PruneReport) {
	if report.Empty() {
		fmt.Println("nothing to prune")
		return
	}
	if len(report.EmptyGroups) > 0 {
		fmt.Println(ui.Header("empty groups"))
		for _, g := range report.EmptyGroups {
			fmt.Printf("  %s\n", g)
		}
	}
	if len(report.MissingRepositories) > 0 {
		fmt.Println(ui.Header("missing working copies"))
		for _, r := range report.MissingRepositories {
			fmt.Printf("  %s (%s)\n", r.ID, r.Path)
		}
	}
}
