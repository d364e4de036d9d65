package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/heron/internal/config"
	"github.com/aidanlsb/heron/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the configuration",
	RunE:  runConfigList,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every configuration key",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Reset a configuration value to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config and database paths",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, args []string) error {
	values := map[string]string{}
	for _, key := range config.SettingKeys {
		value, err := cfg.Get(key)
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		values[key] = value
	}

	if isJSONOutput() {
		outputSuccess(values, &Meta{Count: len(values)})
		return nil
	}
	for _, key := range config.SettingKeys {
		fmt.Printf("%s = %s\n", ui.Bold.Render(key), values[key])
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	value, err := cfg.Get(args[0])
	if err != nil {
		return handleError(ErrInvalidInput, err, "")
	}
	if isJSONOutput() {
		outputSuccess(map[string]string{args[0]: value}, nil)
		return nil
	}
	fmt.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := cfg.Set(args[0], args[1]); err != nil {
		return handleError(ErrInvalidInput, err, "")
	}
	markConfigChanged()

	if isJSONOutput() {
		outputSuccess(map[string]string{args[0]: args[1]}, nil)
		return nil
	}
	fmt.Println(ui.Successf("%s = %s", args[0], args[1]))
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	if err := cfg.Unset(args[0]); err != nil {
		return handleError(ErrInvalidInput, err, "")
	}
	markConfigChanged()

	if isJSONOutput() {
		outputSuccess(map[string]string{"unset": args[0]}, nil)
		return nil
	}
	fmt.Println(ui.Successf("unset %s", args[0]))
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	data := map[string]string{
		"config_path":   cfg.Path(),
		"database_path": resolvedDatabasePath,
	}
	if isJSONOutput() {
		outputSuccess(data, nil)
		return nil
	}
	fmt.Printf("config:   %s\n", data["config_path"])
	fmt.Printf("database: %s\n", data["database_path"])
	return nil
}
