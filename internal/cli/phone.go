package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"welfare/pkg/validation"
)

type phoneResult struct {
	Input     string `json:"input"`
	Canonical string `json:"canonical,omitempty"`
	Formatted string `json:"formatted,omitempty"`
	Valid     bool   `json:"valid"`
	Reason    string `json:"reason,omitempty"`
}

func NewPhoneCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phone",
		Short: "Check and format phone numbers",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check <phone>",
		Short: "Verify that a phone number has a canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := checkPhone(args[0])
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
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "format <phone>",
		Short: "Print a phone number as +7 (DDD) DDD-DD-DD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			canonical, err := validation.CanonicalPhone(args[0])
			if err != nil {
				return WrapExitError(ExitFailure, "cannot format phone", err)
			}
			res := phoneResult{
				Input:     args[0],
				Canonical: canonical,
				Formatted: validation.FormatPhone(canonical),
				Valid:     true,
			}
			return render(cmd, opts, res, func(w io.Writer) {
				fmt.Fprintln(w, res.Formatted)
			})
		},
	})
	return cmd
}

// checkPhone applies the same pattern the citizen forms use, then derives
// the canonical form.
func checkPhone(input string) phoneResult {
	res := phoneResult{Input: input}
	if !validation.IsValidPhone(input) {
		res.Reason = "phone does not match an accepted format"
		return res
	}
	canonical, err := validation.CanonicalPhone(input)
	if err != nil {
		res.Reason = err.Error()
		return res
	}
	res.Canonical = canonical
	res.Formatted = validation.FormatPhone(canonical)
	res.Valid = true
	return res
}
