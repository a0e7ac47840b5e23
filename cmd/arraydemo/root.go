package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hupe1980/fixedarray/internal/logging"
)

const version = "v0.1.0"

// app carries state shared by all subcommands of one invocation.
type app struct {
	configFile string
	cfg        config
	log        *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.Noop()}

	root := &cobra.Command{
		Use:   "arraydemo",
		Short: "Exercise a fixed-size array",
		Long: `arraydemo builds a six-element fixed array, fills and mutates it,
prints it, then scales every element through a reverse traversal and
prints it again. The empty subcommand shows the zero-length array
rejecting an index.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		RunE:              a.runDemo,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: ./arraydemo.yaml if present)")
	flags.String(cfgKeyFormat, formatText, "output format: text or yaml")
	flags.String(cfgKeyLogLevel, "warn", "log level: debug, info, warn or error")
	flags.String(cfgKeyLogFormat, "text", "log format: text or json")
	addDemoFlags(root.Flags())

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newEmptyCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

func addDemoFlags(flags *pflag.FlagSet) {
	flags.Int(cfgKeyFill, 777, "value every element is filled with")
	flags.Int(cfgKeyFront, 999, "value stored at index 0")
	flags.Int(cfgKeySecond, 3, "value stored at index 1")
	flags.Int(cfgKeyThird, 1234, "value stored at index 2 (checked access)")
	flags.Int(cfgKeyFactor, 2, "multiplier applied through the reverse traversal")
}

// setup loads configuration and the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := loadConfig(cmd, a.configFile)
	if err != nil {
		return err
	}

	log, err := logging.FromConfig(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidConfig, err)
	}

	a.cfg = cfg
	a.log = log.WithCommand(cmd.Name())
	return nil
}

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fill, mutate, print and reverse-scale a six-element array",
		Args:  cobra.NoArgs,
		RunE:  a.runDemo,
	}
	addDemoFlags(cmd.Flags())
	return cmd
}

func newEmptyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "empty",
		Short: "Query a zero-length array and attempt to index it",
		Args:  cobra.NoArgs,
		RunE:  a.runEmpty,
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the arraydemo version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "arraydemo", version)
		},
	}
}
