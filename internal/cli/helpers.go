package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/aidanlsb/heron/internal/model"
	"github.com/aidanlsb/heron/internal/ui"
)

// repoColumn selects one column of repository output.
type repoColumn int

const (
	colID repoColumn = iota
	colGroups
	colPath
	colDescription
	colLastAccess
)

var repoColumnNames = map[string]repoColumn{
	"id":          colID,
	"groups":      colGroups,
	"path":        colPath,
	"description": colDescription,
	"last-access": colLastAccess,
}

var allRepoColumns = []repoColumn{colID, colGroups, colPath, colDescription, colLastAccess}

// parseRepoColumns parses a comma-separated column spec such as
// "id,path" or "all".
func parseRepoColumns(spec string) ([]repoColumn, error) {
	var cols []repoColumn
	for _, name := range strings.Split(spec, ",") {
		name = strings.TrimSpace(strings.ToLower(name))
		if name == "" {
			continue
		}
		if name == "all" {
			return allRepoColumns, nil
		}
		col, ok := repoColumnNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown column: %s (available: id, groups, path, description, last-access, all)", name)
		}
		cols = append(cols, col)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("no columns given")
	}
	return cols, nil
}

func repoHeader(cols []repoColumn) []string {
	header := make([]string, 0, len(cols))
	for _, col := range cols {
		switch col {
		case colID:
			header = append(header, "ID")
		case colGroups:
			header = append(header, "Groups")
		case colPath:
			header = append(header, "Path")
		case colDescription:
			header = append(header, "Description")
		case colLastAccess:
			header = append(header, "Last Access")
		}
	}
	return header
}

func repoRow(r model.RepositoryWithGroups, cols []repoColumn) []string {
	row := make([]string, 0, len(cols))
	for _, col := range cols {
		switch col {
		case colID:
			row = append(row, r.ID)
		case colGroups:
			row = append(row, strings.Join(r.GroupNames(), ","))
		case colPath:
			row = append(row, r.Path)
		case colDescription:
			row = append(row, r.Description)
		case colLastAccess:
			row = append(row, cfg.FormatTime(r.LastAccess))
		}
	}
	return row
}

// groupColumn selects one column of group output.
type groupColumn int

const (
	gcolName groupColumn = iota
	gcolNote
	gcolAbbrev
	gcolCount
)

var groupColumnNames = map[string]groupColumn{
	"name":   gcolName,
	"note":   gcolNote,
	"abbrev": gcolAbbrev,
	"count":  gcolCount,
}

var allGroupColumns = []groupColumn{gcolName, gcolNote, gcolAbbrev, gcolCount}

func parseGroupColumns(spec string) ([]groupColumn, error) {
	var cols []groupColumn
	for _, name := range strings.Split(spec, ",") {
		name = strings.TrimSpace(strings.ToLower(name))
		if name == "" {
			continue
		}
		if name == "all" {
			return allGroupColumns, nil
		}
		col, ok := groupColumnNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown column: %s (available: name, note, abbrev, count, all)", name)
		}
		cols = append(cols, col)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("no columns given")
	}
	return cols, nil
}

func groupHeader(cols []groupColumn) []string {
	header := make([]string, 0, len(cols))
	for _, col := range cols {
		switch col {
		case gcolName:
			header = append(header, "Name")
		case gcolNote:
			header = append(header, "Note")
		case gcolAbbrev:
			header = append(header, "Abbrev")
		case gcolCount:
			header = append(header, "Count")
		}
	}
	return header
}

func groupRow(g model.Group, repoCount int, cols []groupColumn) []string {
	row := make([]string, 0, len(cols))
	for _, col := range cols {
		switch col {
		case gcolName:
			row = append(row, g.Name)
		case gcolNote:
			row = append(row, g.Note)
		case gcolAbbrev:
			row = append(row, strconv.FormatBool(g.IsAbbrev()))
		case gcolCount:
			row = append(row, strconv.Itoa(repoCount))
		}
	}
	return row
}

// styleValue is a pflag.Value for --format flags, rejecting unknown
// table styles at parse time instead of silently falling back.
type styleValue struct {
	name *string
}

var _ pflag.Value = styleValue{}

func (v styleValue) String() string { return *v.name }

func (v styleValue) Type() string { return "style" }

func (v styleValue) Set(s string) error {
	s = strings.ToLower(s)
	for _, known := range ui.StyleNames {
		if s == known {
			*v.name = s
			return nil
		}
	}
	return fmt.Errorf("unknown format: %s (available: %s)", s, strings.Join(ui.StyleNames, ", "))
}

// formatFlag registers a validated --format flag bound to target.
func formatFlag(fs *pflag.FlagSet, target *string) {
	fs.VarP(styleValue{target}, "format", "f", "Table format (blank, ascii, markdown, csv, psql)")
}

// listStyle resolves the table style: an explicit --format flag wins,
// otherwise the configured list_style applies.
func listStyle(formatFlag string) ui.Style {
	if formatFlag != "" {
		return ui.ParseStyle(formatFlag)
	}
	return ui.ParseStyle(cfg.Settings.ListStyle)
}

func printTable(t *ui.Table, style ui.Style) {
	fmt.Print(t.Render(style))
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}
