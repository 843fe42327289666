package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newFilterCmd() *cobra.Command {
	var zeroTerminated bool

	cmd := &cobra.Command{
		Use:   "filter <sketch-file>",
		Short: "Emit only the probable duplicates of standard input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening sketch file: %w", err)
			}
			defer f.Close()

			sketch, err := combineSketches(bufio.NewReader(f))
			if err != nil {
				return err
			}

			w := bufio.NewWriter(os.Stdout)
			defer w.Flush()

			r := bufio.NewReader(os.Stdin)
			delim := delimiter(zeroTerminated)
			return eachToken(r, delim, func(tok []byte) error {
				if !sketch.HasDuplicate(tok) {
					return nil
				}
				_, err := w.Write(tok)
				return err
			})
		},
	}

	cmd.Flags().BoolVarP(&zeroTerminated, "zero-terminated", "0", false,
		"Use NUL bytes as line delimiters instead of newlines")

	return cmd
}
