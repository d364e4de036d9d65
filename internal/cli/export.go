package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/heron/internal/atomicfile"
	"github.com/aidanlsb/heron/internal/model"
	"github.com/aidanlsb/heron/internal/paths"
)

var (
	exportFormat        string
	exportOutput        string
	exportCompact       bool
	exportNoReplaceHome bool
)

var exportCmd = &cobra.Command{
	Use:   "export [flags]",
	Short: "Export the catalog as JSON or YAML",
	Long: `Export the whole catalog to stdout or a file.

Home directory prefixes in repository paths are written as ${HOME} so
the export moves between machines; --no-replace-home keeps them
literal. The format follows the output file extension unless --format
is given.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Export format (json, yaml; defaults by output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "-", "Destination file, or - for stdout")
	exportCmd.Flags().BoolVar(&exportCompact, "compact", false, "Emit compact JSON without indentation")
	exportCmd.Flags().BoolVar(&exportNoReplaceHome, "no-replace-home", false, "Keep the home directory literal in paths")
	rootCmd.AddCommand(exportCmd)
}

// exportDocument is the portable representation of a full snapshot.
type exportDocument struct {
	LastModified time.Time          `json:"last-modified" yaml:"last-modified"`
	Repositories []model.Repository `json:"repositories" yaml:"repositories"`
	Groups       []model.Group      `json:"groups" yaml:"groups"`
	Relations    []model.Relation   `json:"relations" yaml:"relations"`
}

func runExport(cmd *cobra.Command, args []string) error {
	doc := exportDocument{
		LastModified: time.Now(),
		Repositories: cat.Store.Repositories(),
		Groups:       cat.Store.Groups(),
		Relations:    cat.Store.Relations(),
	}
	if !exportNoReplaceHome {
		for i := range doc.Repositories {
			doc.Repositories[i].Path = paths.ReplaceHome(doc.Repositories[i].Path)
		}
	}

	data, err := marshalExport(doc, resolveExportFormat())
	if err != nil {
		return handleError(ErrInternal, err, "")
	}

	if exportOutput == "-" || exportOutput == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := atomicfile.WriteFile(exportOutput, data, 0o644); err != nil {
		return handleError(ErrFileWriteError, err, "")
	}
	if !isJSONOutput() {
		fmt.Printf("exported to %s\n", exportOutput)
	}
	return nil
}

func resolveExportFormat() string {
	if exportFormat != "" {
		return strings.ToLower(exportFormat)
	}
	switch strings.ToLower(filepath.Ext(exportOutput)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

func marshalExport(doc exportDocument, format string) ([]byte, error) {
	switch format {
	case "yaml", "yml":
		return yaml.Marshal(doc)
	case "json":
		if exportCompact {
			data, err := json.Marshal(doc)
			if err != nil {
				return nil, err
			}
			return append(data, '\n'), nil
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown export format: %s (available: json, yaml)", format)
	}
}
