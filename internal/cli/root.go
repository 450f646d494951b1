// Package cli wires the fibseq command: configuration, logging and the
// interactive shell that prints the sequence.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yosefmih/fibseq/fibonacci"
)

// NewRootCommand builds the fibseq command. Settings are read from v.
func NewRootCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:           "fibseq",
		Short:         "Print the leading terms of the Fibonacci sequence",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig(v)

			log, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			generate, err := fibonacci.Lookup(cfg.Algorithm)
			if err != nil {
				return err
			}
			log.WithField("algorithm", cfg.Algorithm).Debug("starting")

			shell := &Shell{
				In:       cmd.InOrStdin(),
				Out:      cmd.OutOrStdout(),
				Generate: generate,
				Log:      log,
			}
			return shell.Run()
		},
	}
}

// Execute runs the root command against the process environment.
func Execute() error {
	return NewRootCommand(viper.New()).Execute()
}
