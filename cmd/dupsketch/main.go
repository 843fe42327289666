// Command dupsketch finds probable duplicate lines in a stream using a
// mergeable duplicates sketch.
//
// It has three subcommands: build constructs a sketch from delimited
// input, combine merges a concatenated stream of sketches into one, and
// filter emits only the probable duplicates of a stream.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dupsketch",
		Short:         "Find probable duplicate lines using a mergeable sketch",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newBuildCmd())
	root.AddCommand(newCombineCmd())
	root.AddCommand(newFilterCmd())

	return root
}
