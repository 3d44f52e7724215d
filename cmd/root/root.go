// Package root contains the root command and the state shared by subcommands.
package root

import (
	"fmt"

	"fjacquet/budget-planner/internal/config"
	"fjacquet/budget-planner/internal/container"

	"github.com/spf13/cobra"
)

// GlobalFlags are the persistent flags of every command.
type GlobalFlags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
}

var (
	// Flags holds the parsed persistent flags.
	Flags = GlobalFlags{}

	// AppContainer is built in PersistentPreRunE before any subcommand runs.
	AppContainer *container.Container

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "budget-planner",
		Short: "Plan a weekly budget across spending categories.",
		Long: `budget-planner sets a weekly spending budget, allocates it across named
categories and reports what is allocated, what remains and whether the plan
is balanced.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.InitializeConfig(Flags.ConfigFile)
			if err != nil {
				return err
			}
			if Flags.LogLevel != "" {
				cfg.Log.Level = Flags.LogLevel
			}
			if Flags.LogFormat != "" {
				cfg.Log.Format = Flags.LogFormat
			}
			if err := cfg.Log.Validate(); err != nil {
				return fmt.Errorf("invalid logging flags: %w", err)
			}

			c, err := container.NewContainer(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			AppContainer = c
			return nil
		},
	}
)

// Init registers the persistent flags. Call once before Execute.
func Init() {
	Cmd.PersistentFlags().StringVarP(&Flags.ConfigFile, "config", "c", "", "Config file (default: config.yaml in ., .budget-planner or $HOME/.budget-planner)")
	Cmd.PersistentFlags().StringVar(&Flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	Cmd.PersistentFlags().StringVar(&Flags.LogFormat, "log-format", "", "Log format: text or json")
}

// GetContainer returns the container built for the running command.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return AppContainer, nil
}
