package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd prints build details for diagnostics.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the finhealth version and build details.",
	Long: `Show the release version together with the commit hash, build
timestamp and Go runtime. Include this output when reporting bugs or
checking that the right binary is installed.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("finhealth CLI\n")
		cmd.Printf("  Version: %s\n", version)
		cmd.Printf("  Commit:  %s\n", commit)
		cmd.Printf("  Built:   %s\n", date)
		cmd.Printf("  Runtime: %s\n", runtime.Version())
	},
}
