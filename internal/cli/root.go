// Package cli implements the rubytype command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/rubytype"
	"github.com/iw2rmb/rubytype/internal/config"
	"github.com/iw2rmb/rubytype/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	TablePath  string
	LogLevel   string
	LogFormat  string
	LogFile    string

	// Config is resolved before any subcommand runs.
	Config *config.Config
}

// NewRootCommand creates the root command for the rubytype CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "rubytype",
		Short:   "Show input-method codes above the characters you type",
		Long:    "Edit or render text with each character's code (for example its Wubi code) displayed above it.",
		Version: rubytype.VersionTag(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (.toml, .yaml or .json)")
	cmd.PersistentFlags().StringVarP(&opts.TablePath, "table", "t", "", "code table file (default "+config.DefaultTablePath+")")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "", "log format (text|json)")
	cmd.PersistentFlags().StringVar(&opts.LogFile, "log-file", "", "write logs to this file")

	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewLookupCommand(opts))

	return cmd
}

// resolve loads the config file and applies flag overrides.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("table") {
		cfg.Table.Path = o.TablePath
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = o.LogFormat
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = o.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	o.Config = cfg
	return nil
}

// newLogger builds the logger for a command. Interactive commands own the
// terminal, so without a log file their logs are discarded.
func (o *RootOptions) newLogger(interactive bool) (*logging.Logger, error) {
	lc := o.Config.Logging

	level, err := logging.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(lc.Format)
	if err != nil {
		return nil, err
	}

	out := "stderr"
	switch {
	case lc.File != "":
		out = "file"
	case interactive:
		out = "discard"
	}

	return logging.New(&logging.Config{
		Level:     level,
		Format:    format,
		Output:    out,
		FilePath:  lc.File,
		Component: "rubytype",
	})
}
