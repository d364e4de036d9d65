package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/heron/internal/shellquote"
	"github.com/aidanlsb/heron/internal/ui"
)

var aliasCmd = &cobra.Command{
	Use:   "alias",
	Short: "Manage command aliases",
	Long: `Manage command aliases stored in the config file.

An alias is an argument prefix: with the alias
st = ["exec", "--", "git", "status"], running "hrn st -s" expands to
"hrn exec -- git status -s".`,
	RunE: runAliasList,
}

var aliasSetCmd = &cobra.Command{
	Use:   "set <name> <command>...",
	Short: "Define an alias",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runAliasSet,
}

var aliasRemoveCmd = &cobra.Command{
	Use:   "remove <name>...",
	Short: "Remove aliases",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAliasRemove,
}

func init() {
	aliasCmd.AddCommand(aliasSetCmd)
	aliasCmd.AddCommand(aliasRemoveCmd)
	rootCmd.AddCommand(aliasCmd)
}

func runAliasList(cmd *cobra.Command, args []string) error {
	names := cfg.AliasNames()

	if isJSONOutput() {
		outputSuccess(cfg.Aliases, &Meta{Count: len(names)})
		return nil
	}
	if len(names) == 0 {
		fmt.Println("no aliases defined")
		fmt.Println(ui.Hint("hrn alias set <name> <command>... to define one"))
		return nil
	}
	for _, name := range names {
		expansion, _ := cfg.FindAlias(name)
		fmt.Printf("%s = %s\n", ui.Bold.Render(name), shellquote.Join(expansion))
	}
	return nil
}

func runAliasSet(cmd *cobra.Command, args []string) error {
	name := args[0]
	if c, _, err := rootCmd.Find([]string{name}); err == nil && c != rootCmd && c.Name() != "help" {
		return handleErrorMsg(ErrInvalidInput, fmt.Sprintf("%s is a builtin command", name), "")
	}
	cfg.SetAlias(name, args[1:])
	markConfigChanged()

	if isJSONOutput() {
		outputSuccess(map[string][]string{name: args[1:]}, nil)
		return nil
	}
	fmt.Println(ui.Successf("alias %s = %s", name, shellquote.Join(args[1:])))
	return nil
}

func runAliasRemove(cmd *cobra.Command, args []string) error {
	var missing []string
	for _, name := range args {
		if _, ok := cfg.FindAlias(name); !ok {
			missing = append(missing, name)
			continue
		}
		cfg.RemoveAlias(name)
	}
	if len(missing) > 0 {
		return handleErrorMsg(ErrAliasNotFound, fmt.Sprintf("unknown alias: %s", strings.Join(missing, ", ")), "")
	}
	markConfigChanged()

	if isJSONOutput() {
		outputSuccess(args, &Meta{Count: len(args)})
		return nil
	}
	for _, name := range args {
		fmt.Println(ui.Successf("removed alias %s", name))
	}
	return nil
}
