// Package cli implements welfarectl, the operator tool for the welfare
// registry: identifier and phone checks, password hashes, development
// tokens, migrations and the Kafka event stream.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string
}

var validFormats = []string{FormatText, FormatJSON}

// NewRootCommand creates the welfarectl command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "welfarectl",
		Short:         "Operator tooling for the welfare registry",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(validFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, validFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (text|json)")

	cmd.AddCommand(NewIdentifierCommand(opts))
	cmd.AddCommand(NewPhoneCommand(opts))
	cmd.AddCommand(NewPasswordCommand(opts))
	cmd.AddCommand(NewTokenCommand(opts))
	cmd.AddCommand(NewMigrationsCommand(opts))
	cmd.AddCommand(NewEventsCommand(opts))

	return cmd
}
