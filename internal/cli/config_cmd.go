package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ariel-frischer/gocontract/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gocontract configuration",
	Long:  `Commands for inspecting, initializing, and watching the gocontract configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "verify: %t\n", s.Verify)
		fmt.Fprintf(out, "color: %s\n", s.Color)
		fmt.Fprintf(out, "demo_delay_ms: %d\n", s.DemoDelayMS)
		fmt.Fprintf(out, "company_db: %s\n", s.CompanyDB)
		return nil
	},
}

// starterConfig is written by 'config init'.
const starterConfig = `# gocontract configuration
# Environment variables with the GOCONTRACT_ prefix override these values.

# Enable contract verification for commands run in this project.
verify: false

# Output coloring: auto, always, never.
color: auto

# Simulated work delay for demo commands, in milliseconds.
demo_delay_ms: 400

# Optional path to a YAML company database for the resolver demo.
company_db: ""
`

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = config.ProjectConfigPath
		}

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}

		if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the config file and re-seed the toggle on change",
	Long: `Watch the config file and apply the verify setting whenever it changes,
demonstrating that verification can be toggled at arbitrary points in the
process lifetime. Runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := loadSettings(cmd); err != nil {
			return err
		}

		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = config.ProjectConfigPath
		}
		out := cmd.OutOrStdout()

		w, err := config.NewWatcher(path, config.WithReloadHook(func(s *config.Settings) {
			fmt.Fprintf(out, "reloaded %s: verify=%t\n", path, s.Verify)
		}))
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", path)
		if err := w.Watch(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configWatchCmd)
	rootCmd.AddCommand(configCmd)
}
