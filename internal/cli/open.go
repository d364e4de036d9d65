package cli

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/heron/internal/model"
	"github.com/aidanlsb/heron/internal/store"
)

const (
	openFolder  = "folder"
	openProject = "project"
	openWebpage = "webpage"
)

// openTargetValue validates --target at flag-parse time.
type openTargetValue string

func (v *openTargetValue) String() string { return string(*v) }

func (v *openTargetValue) Set(s string) error {
	switch s {
	case openFolder, openProject, openWebpage:
		*v = openTargetValue(s)
		return nil
	}
	return fmt.Errorf("%s: unknown open target (folder, project, webpage)", s)
}

func (v *openTargetValue) Type() string { return "target" }

var openTarget = openTargetValue(openFolder)

var openCmd = &cobra.Command{
	Use:   "open [flags] <name>...",
	Short: "Open repositories in the file manager or browser",
	Long: `Open each named repository, or every member of a named group.

--target picks what opens: the working copy folder, the project page
derived from the origin remote, or the repository's GitHub Pages site.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOpen,
}

// Stubbed in tests.
var (
	openPath = browser.OpenFile
	openURL  = browser.OpenURL
)

func init() {
	openCmd.Flags().VarP(&openTarget, "target", "t", "What to open (folder, project, webpage)")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	repos, err := cat.NamedRepositories(args)
	if err != nil {
		return handleCatalogError(err)
	}
	if len(repos) == 0 {
		return handleErrorMsg(ErrInvalidInput, "no repositories to open", "")
	}

	var errs []error
	for _, repo := range repos {
		if err := openRepository(repo, string(openTarget)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", repo.ID, err))
		}
	}
	if err := store.Collect(errs); err != nil {
		return handleError(ErrCommandFailed, err, "")
	}
	if isJSONOutput() {
		outputSuccess(nil, &Meta{Count: len(repos)})
	}
	return nil
}

func openRepository(repo model.Repository, target string) error {
	if target == openFolder {
		return openPath(repo.Path)
	}
	remote, err := originRemote(repo.Path)
	if err != nil {
		return err
	}
	if target == openProject {
		return openURL(remote.ProjectURL())
	}
	return openURL(remote.PagesURL())
}

// originRemote reads the origin remote of the working copy at path.
func originRemote(path string) (remoteURL, error) {
	out, err := exec.Command("git", "-C", path, "config", "--get", "remote.origin.url").Output()
	if err != nil {
		return remoteURL{}, fmt.Errorf("no origin remote: %w", err)
	}
	return parseRemoteURL(strings.TrimSpace(string(out)))
}

// remoteURL is the host/owner/name triple parsed from a git remote.
type remoteURL struct {
	Host  string
	Owner string
	Name  string
}

// ProjectURL is the repository's own web page.
func (u remoteURL) ProjectURL() string {
	return fmt.Sprintf("https://%s/%s/%s", u.Host, u.Owner, u.Name)
}

// PagesURL is the repository's GitHub Pages site.
func (u remoteURL) PagesURL() string {
	return fmt.Sprintf("https://%s.github.io/%s", u.Owner, u.Name)
}

// parseRemoteURL understands https, ssh, and scp-like remote forms.
func parseRemoteURL(raw string) (remoteURL, error) {
	s := strings.TrimSuffix(raw, ".git")
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	} else {
		s = strings.Replace(s, ":", "/", 1)
	}
	if at := strings.Index(s, "@"); at >= 0 {
		s = s[at+1:]
	}
	parts := strings.Split(s, "/")
	if len(parts) < 3 {
		return remoteURL{}, fmt.Errorf("%s: cannot derive a web URL", raw)
	}
	host := parts[0]
	if h, _, found := strings.Cut(host, ":"); found {
		host = h
	}
	return remoteURL{
		Host:  host,
		Owner: strings.Join(parts[1:len(parts)-1], "/"),
		Name:  parts[len(parts)-1],
	}, nil
}
