package cmd

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "unknown"

// buildVersion returns the module version stamped by `go install`, with the
// short VCS revision appended for development builds.
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return unknownVersion
	}

	version := info.Main.Version
	if version == "" || version == "(devel)" {
		version = "devel"

		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && len(setting.Value) >= 12 {
				version += "+" + setting.Value[:12]
			}
		}
	}

	return version
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the dupes version (the same one --version prints) and the Go runtime it was built with.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version := cmd.Root().Version
			if version == "" {
				version = buildVersion()
			}

			cmd.Println("dupes version\t", version)
			cmd.Println("go version\t", runtime.Version())
			cmd.Println("platform\t", runtime.GOOS+"/"+runtime.GOARCH)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
