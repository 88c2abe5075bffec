package cli

import (
	"fmt"

	"github.com/ariel-frischer/gocontract/contract"
	"github.com/ariel-frischer/gocontract/internal/render"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe [contract-name]",
	Short: "Render the metadata attached to registered contracts",
	Long: `Render the metadata carrier of a registered contract: specification text,
condition descriptions, declared error kinds, and attached check counts.

Without arguments, all registered contracts are listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, mode, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			desc, ok := contract.Lookup(args[0])
			if !ok {
				return fmt.Errorf("no contract registered under %q; run 'gocontract describe' to list names", args[0])
			}
			render.Carrier(out, desc, mode)
			return nil
		}

		names := contract.Names()
		for i, name := range names {
			desc, ok := contract.Lookup(name)
			if !ok {
				continue
			}
			render.Carrier(out, desc, mode)
			if i < len(names)-1 {
				fmt.Fprintln(out)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
