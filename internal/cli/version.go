package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/heron/internal/buildinfo"
)

const defaultModulePath = "github.com/aidanlsb/heron"

type versionInfo struct {
	Version    string `json:"version"`
	ModulePath string `json:"module_path"`
	Commit     string `json:"commit,omitempty"`
	CommitTime string `json:"commit_time,omitempty"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

var readBuildInfo = debug.ReadBuildInfo

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show Heron version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := currentVersionInfo()

		if isJSONOutput() {
			outputSuccess(info, nil)
			return nil
		}

		fmt.Printf("hrn %s\n", info.Version)
		fmt.Printf("module: %s\n", info.ModulePath)
		if info.Commit != "" {
			fmt.Printf("commit: %s\n", info.Commit)
		}
		fmt.Printf("go: %s (%s)\n", info.GoVersion, info.Platform)
		return nil
	},
}

// currentVersionInfo prefers VCS stamps from the module build info and
// falls back to the ldflags values goreleaser injects.
func currentVersionInfo() versionInfo {
	info := versionInfo{
		Version:    normalizeVersion(buildinfo.Version),
		ModulePath: defaultModulePath,
		Commit:     buildinfo.Commit,
		CommitTime: buildinfo.Date,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := readBuildInfo()
	if !ok || bi == nil {
		return info
	}
	if bi.Main.Path != "" {
		info.ModulePath = bi.Main.Path
	}
	if v := normalizeVersion(bi.Main.Version); v != "devel" && info.Version == "devel" {
		info.Version = v
	}
	if bi.GoVersion != "" {
		info.GoVersion = bi.GoVersion
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = setting.Value
			}
		case "vcs.time":
			if info.CommitTime == "" {
				info.CommitTime = setting.Value
			}
		}
	}
	return info
}

func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if version == "" || version == "(devel)" {
		return "devel"
	}
	return version
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
