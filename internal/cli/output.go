package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Exit codes returned by welfarectl.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // a check ran and failed
	ExitCommandError = 2 // bad arguments or unreachable infrastructure
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// ExitCode maps err to a process exit code. Errors that are not an
// ExitError come from cobra itself (unknown flags, wrong arity).
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// render writes v as one JSON document, or calls text for the human form.
func render(cmd *cobra.Command, opts *RootOptions, v any, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if opts.Format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return WrapExitError(ExitCommandError, "write output", err)
		}
		return nil
	}
	text(w)
	return nil
}
