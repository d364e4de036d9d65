package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/heron/internal/model"
	"github.com/aidanlsb/heron/internal/shellquote"
	"github.com/aidanlsb/heron/internal/store"
	"github.com/aidanlsb/heron/internal/ui"
)

var (
	execGroups   []string
	execRepos    []string
	execNoHeader bool
)

var execCmd = &cobra.Command{
	Use:   "exec [flags] -- <command> [args...]",
	Short: "Run a command in each repository's working copy",
	Long: `Run a command with each target repository's path as working directory.

Targets come from --group and --repository; with neither, every
repository in the catalog is a target. The command's output streams
through; failures are collected per repository.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func init() {
	execCmd.Flags().StringSliceVarP(&execGroups, "group", "g", nil, "Run in the repositories of these groups")
	execCmd.Flags().StringSliceVarP(&execRepos, "repository", "r", nil, "Run in these repositories")
	execCmd.Flags().BoolVarP(&execNoHeader, "no-header", "H", false, "Do not print a header before each repository")
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	var targets []model.Repository
	var err error
	if len(execGroups) == 0 && len(execRepos) == 0 {
		targets = cat.Store.Repositories()
	} else {
		targets, err = cat.Targets(execGroups, execRepos)
		if err != nil {
			return handleCatalogError(err)
		}
	}

	if !execNoHeader && !isJSONOutput() {
		fmt.Println(ui.Hint("$ " + shellquote.Join(args)))
	}

	var errs []error
	for _, repo := range targets {
		if !execNoHeader && !isJSONOutput() {
			fmt.Println(ui.Header(fmt.Sprintf("%s (%s)", repo.ID, repo.Path)))
		}
		sub := exec.Command(args[0], args[1:]...)
		sub.Dir = repo.Path
		sub.Stdin = os.Stdin
		sub.Stdout = os.Stdout
		sub.Stderr = os.Stderr
		if err := sub.Run(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", repo.ID, err))
		}
	}
	if err := store.Collect(errs); err != nil {
		return handleError(ErrCommandFailed, err, "")
	}
	if isJSONOutput() {
		outputSuccess(nil, &Meta{Count: len(targets)})
	}
	return nil
}
