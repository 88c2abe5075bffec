package cli

import (
	"fmt"

	"github.com/ariel-frischer/gocontract/contract"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify {on|off|status}",
	Short: "Control the process-wide verification toggle",
	Long: `Control the process-wide verification toggle for this invocation.

The toggle defaults from the ` + contract.EnabledEnvVar + ` environment variable and the
verify config key; 'on' and 'off' override it for the current process.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := loadSettings(cmd); err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		switch args[0] {
		case "on":
			contract.Enable()
			fmt.Fprintln(out, "verification enabled")
		case "off":
			contract.Disable()
			fmt.Fprintln(out, "verification disabled")
		case "status":
			if contract.Enabled() {
				fmt.Fprintln(out, "verification is enabled")
			} else {
				fmt.Fprintln(out, "verification is disabled")
			}
		default:
			return fmt.Errorf("invalid argument %q: valid options are on, off, status", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
