package cmd

import (
	"github.com/spf13/cobra"

	"github.com/forgelabs/forge/internal/config"
	"github.com/forgelabs/forge/internal/output"
)

var (
	// Global flags
	configFlag  string
	verboseFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	forgeConfig *config.Config
)

// NewRootCmd creates the root command for the forge CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forge",
		Short: "Create new projects from starter templates",
		Long: `forge creates new projects from cached starter-template repositories.

It provides commands to:
  - Create a new project from a language template
  - List available templates
  - Update cached templates from their source repositories`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: FORGE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(NewNewCmd())
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewUpdateCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals() error {
	output.SetupLogging(verboseFlag)

	loader := config.NewLoader()
	cfg, err := loader.LoadWithDefaults(configFlag)
	if err != nil {
		return WrapExit(err)
	}
	forgeConfig = cfg

	output.Debug("forge started", "config", configFlag)
	return nil
}

// getConfig returns the loaded configuration, defaulting when the root
// PersistentPreRunE has not run (direct command tests).
func getConfig() *config.Config {
	if forgeConfig == nil {
		cfg := &config.Config{}
		return cfg.WithDefaults()
	}
	return forgeConfig
}
