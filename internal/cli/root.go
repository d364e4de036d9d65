// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/heron/internal/catalog"
	"github.com/aidanlsb/heron/internal/config"
	"github.com/aidanlsb/heron/internal/store"
)

var (
	// Global flags
	configPath   string
	databaseFlag string

	// Resolved values
	resolvedDatabasePath string
	cfg                  *config.Config
	cat                  *catalog.Catalog

	// Mutating commands flip these so the post-run hook knows what to
	// write back. A command that fails never reaches the hook; partial
	// in-memory changes are discarded with the process.
	storeChanged  bool
	configChanged bool

	// Set when an error was reported through the JSON envelope, so the
	// post-run hook skips persistence just as it would on a returned error.
	commandFailed bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hrn",
	Short: "Heron - a catalog of your working copies",
	Long: `Heron keeps a small catalog of the source-code working copies on your
machine, organized into named groups. It remembers where each clone
lives, what it is, and when you last touched it.

Named for the heron, which stands still and keeps watch over
everything that moves through its stretch of the river.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip catalog resolution for commands that don't need it
		switch cmd.Name() {
		case "version", "docs", "completion", "help":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = loadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		resolvedDatabasePath = cfg.DatabasePath()
		if databaseFlag != "" {
			resolvedDatabasePath = databaseFlag
		}

		snap, err := store.Load(resolvedDatabasePath)
		if err != nil {
			return fmt.Errorf("failed to load database: %w", err)
		}
		cat = catalog.New(snap, cfg)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if commandFailed {
			return nil
		}
		if configChanged {
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
		}
		if cat == nil || (!storeChanged && !cat.Store.Dirty()) {
			return nil
		}
		if err := os.MkdirAll(filepath.Dir(resolvedDatabasePath), 0o755); err != nil {
			return fmt.Errorf("failed to save database: %w", err)
		}
		if err := cat.Store.SaveTo(resolvedDatabasePath); err != nil {
			return fmt.Errorf("failed to save database: %w", err)
		}
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	expandAliasArgs()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&databaseFlag, "database", "", "Path to database file (overrides database in config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

func markStoreChanged() {
	storeChanged = true
}

func markConfigChanged() {
	configChanged = true
}

func loadGlobalConfig() (*config.Config, error) {
	if strings.TrimSpace(configPath) != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// expandAliasArgs rewrites os.Args when the first argument names a
// configured alias rather than a builtin command. Alias expansion is a
// plain prefix substitution; remaining arguments pass through.
func expandAliasArgs() {
	if len(os.Args) < 2 || strings.HasPrefix(os.Args[1], "-") {
		return
	}
	if c, _, err := rootCmd.Find(os.Args[1:]); err == nil && c != rootCmd {
		return
	}
	loaded, err := loadGlobalConfig()
	if err != nil {
		return
	}
	expansion, ok := loaded.FindAlias(os.Args[1])
	if !ok || len(expansion) == 0 {
		return
	}
	rewritten := []string{os.Args[0]}
	rewritten = append(rewritten, expansion...)
	rewritten = append(rewritten, os.Args[2:]...)
	os.Args = rewritten
}
