// Package cli implements the gocontract command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/ariel-frischer/gocontract/internal/config"
	"github.com/ariel-frischer/gocontract/internal/render"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gocontract",
	Short: "Runtime Design-by-Contract checking for Go functions",
	Long: `gocontract attaches machine-checkable preconditions, postconditions, and
invariants to functions, plus descriptive specification metadata, behind a
process-wide verification toggle.

The CLI demonstrates the engine and renders the metadata attached to
registered contracts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to config file (default .gocontract.yml)")
	rootCmd.PersistentFlags().String("color", "", "color output: auto, always, never")
}

// Execute runs the root command and prints any resulting error.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// loadSettings loads configuration honoring the global flags and seeds the
// verification toggle from it.
func loadSettings(cmd *cobra.Command) (*config.Settings, render.Mode, error) {
	configPath, _ := cmd.Flags().GetString("config")

	s, err := config.Load(configPath)
	if err != nil {
		return nil, render.ModeAuto, err
	}
	config.Seed(s)

	colorMode := s.Color
	if flagColor, _ := cmd.Flags().GetString("color"); flagColor != "" {
		colorMode = flagColor
	}
	return s, render.ParseMode(colorMode), nil
}
