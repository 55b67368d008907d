package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"welfare/pkg/validation"
)

type identifierResult struct {
	Input     string `json:"input"`
	Canonical string `json:"canonical,omitempty"`
	Formatted string `json:"formatted,omitempty"`
	Valid     bool   `json:"valid"`
	Reason    string `json:"reason,omitempty"`
}

func NewIdentifierCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identifier",
		Short: "Check and format citizen identifiers",
	}
	cmd.AddCommand(newIdentifierCheckCommand(opts))
	cmd.AddCommand(newIdentifierFormatCommand(opts))
	return cmd
}

func newIdentifierCheckCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <identifier>",
		Short: "Verify the length and control number of an identifier",
		Long: `Reduces the input to digits and verifies the two-digit control number.
Exits 1 when the identifier is malformed or the control number does not match.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := checkIdentifier(args[0])
			if err := render(cmd, opts, res, func(w io.Writer) {
				if res.Valid {
					fmt.Fprintf(w, "valid %s\n", res.Formatted)
					return
				}
				fmt.Fprintf(w, "invalid %q: %s\n", res.Input, res.Reason)
			}); err != nil {
				return err
			}
			if !res.Valid {
				return NewExitError(ExitFailure, res.Reason)
			}
			return nil
		},
	}
}

func newIdentifierFormatCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "format <identifier>",
		Short: "Print an identifier as DDD-DDD-DDD DD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			canonical, err := validation.CanonicalIdentifier(args[0])
			if err != nil {
				return WrapExitError(ExitFailure, "cannot format identifier", err)
			}
			res := identifierResult{
				Input:     args[0],
				Canonical: canonical,
				Formatted: validation.FormatIdentifier(canonical),
				Valid:     validation.IsValidIdentifier(canonical),
			}
			return render(cmd, opts, res, func(w io.Writer) {
				fmt.Fprintln(w, res.Formatted)
			})
		},
	}
}

func checkIdentifier(input string) identifierResult {
	res := identifierResult{Input: input}
	canonical, err := validation.CanonicalIdentifier(input)
	if err != nil {
		res.Reason = err.Error()
		return res
	}
	res.Canonical = canonical
	res.Formatted = validation.FormatIdentifier(canonical)
	res.Valid = validation.IsValidIdentifier(canonical)
	if !res.Valid {
		res.Reason = "control number does not match"
	}
	return res
}
