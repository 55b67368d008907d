// Command welfarectl is the operator tool for the welfare registry.
package main

import (
	"fmt"
	"os"

	"welfare/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "welfarectl:", err)
		os.Exit(cli.ExitCode(err))
	}
}
