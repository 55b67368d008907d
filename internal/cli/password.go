package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"welfare/pkg/secrets"
)

func NewPasswordCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Password utilities",
	}

	var cost int
	hash := &cobra.Command{
		Use:   "hash [password]",
		Short: "Print the bcrypt hash of a password",
		Long: `Hashes the password argument, or the first line of stdin when no
argument is given, with the same hasher the user service uses.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := passwordInput(cmd, args)
			if err != nil {
				return err
			}
			hashed, err := secrets.NewHasher(cost).Hash(password)
			if err != nil {
				return WrapExitError(ExitCommandError, "hash password", err)
			}
			return render(cmd, opts, map[string]string{"hash": hashed}, func(w io.Writer) {
				fmt.Fprintln(w, hashed)
			})
		},
	}
	hash.Flags().IntVar(&cost, "cost", 0, "bcrypt cost (0 selects the default)")

	cmd.AddCommand(hash)
	return cmd
}

func passwordInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", WrapExitError(ExitCommandError, "read password from stdin", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
