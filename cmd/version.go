package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build metadata, overridden by -ldflags on release builds.
var (
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build details",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("immich-frame %s (commit %s, built %s, %s)\n",
			Version, CommitSHA, BuildDate, runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
