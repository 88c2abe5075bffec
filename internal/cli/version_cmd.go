package cli

import (
	"fmt"

	"github.com/ariel-frischer/gocontract/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gocontract %s\n", version.Version)
		if !version.IsDevBuild() {
			fmt.Fprintf(out, "  commit: %s\n  built:  %s\n", version.Commit, version.BuildDate)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
