/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vipcxj/divedns/internal/domain"
	"github.com/vipcxj/divedns/internal/logging"
)

// envPrefix prefixes the environment variables read for unset flags.
const envPrefix = "DIVEDNS"

type rootOptions struct {
	logLevel string
}

func (o *rootOptions) logger(cmd *cobra.Command) (log.FieldLogger, error) {
	return logging.New(cmd.ErrOrStderr(), o.logLevel, log.Fields{"command": cmd.CommandPath()})
}

// newRootCmd builds the command tree. Flags bind to fresh option values on
// every call, so repeated in-process runs start from defaults.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "divedns",
		Short:         "Validate and normalize internet domain names",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return SetFlagsFromEnv(cmd.Flags(), envPrefix)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", log.WarnLevel.String(), "The logging level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(newDomainCmd(opts))
	return rootCmd
}

// Execute runs the CLI with os.Args and returns the process exit code.
func Execute() int {
	return run(newRootCmd())
}

func run(rootCmd *cobra.Command) int {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if help := domain.HelpOf(err); help != "" {
		fmt.Fprintf(w, "Hint: %s\n", help)
	}
}
