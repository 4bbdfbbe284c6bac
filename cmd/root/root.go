// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"alshakib/logcompat/internal/config"
	"alshakib/logcompat/internal/container"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to all commands
type CommonFlags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
	Tag        string
}

var (
	// Log is the shared logger for the command line's own diagnostics
	Log = logrus.New()

	// App holds the wired dependencies once PersistentPreRunE has run
	App *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "logcompat",
		Short: "A demo CLI for the logcompat logging facade.",
		Long: `logcompat is a demo CLI for the logcompat logging facade.
It sends log lines through the facade, pretty-prints JSON the way the
facade does and shows the effective configuration.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to logcompat!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: setup,
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}

	initOnce sync.Once
)

// Init initializes the root command and all flags
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVarP(&SharedFlags.ConfigFile, "config", "c", "", "Config file (default: config.yaml in $HOME/.logcompat, .logcompat or .)")
		Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Sink log level (trace, debug, info, warn, error)")
		Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Sink log format (text or json)")
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Tag, "tag", "t", "", "Default tag for lines without an explicit tag")
	})
}

// setup loads the environment and configuration, applies flag overrides and
// wires the facade.
func setup(cmd *cobra.Command, args []string) error {
	if envFile, err := config.LoadEnv(); err != nil {
		Log.Warnf("Error loading .env file %s: %v", envFile, err)
	}

	cfg, err := config.InitializeConfigFromFile(SharedFlags.ConfigFile)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = SharedFlags.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	App, err = container.NewContainer(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	Log = App.GetLogger()

	if cmd.Flags().Changed("tag") {
		App.GetFacade().SetDefaultTag(SharedFlags.Tag)
	}
	return nil
}
