package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newCombineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "combine",
		Short: "Combine a concatenated stream of sketches into one",
		RunE: func(cmd *cobra.Command, args []string) error {
			sketch, err := combineSketches(bufio.NewReader(os.Stdin))
			if err != nil {
				return err
			}

			w := bufio.NewWriter(os.Stdout)
			if err := sketch.Serialize(w); err != nil {
				return fmt.Errorf("writing sketch: %w", err)
			}
			return w.Flush()
		},
	}
}
