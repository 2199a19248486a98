// Command cardquery is a developer tool, not a production surface: it
// initializes a worker against local fixture files and runs a single
// query or deck validation from the command line, in the spirit of the
// teacher's demo/main.go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cardquery",
		Short: "Query and validate decks against a local card corpus fixture",
	}
	cmd.AddCommand(searchCmd())
	cmd.AddCommand(validateCmd())
	return cmd
}
