package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/greatroar/dupsketch"
	"github.com/greatroar/dupsketch/internal/sizeparse"
)

func newBuildCmd() *cobra.Command {
	var (
		probes         uint32
		size           string
		zeroTerminated bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a sketch from lines in standard input",
		RunE: func(cmd *cobra.Command, args []string) error {
			bytes, err := sizeparse.Bytes(size)
			if err != nil {
				return err
			}

			sketch, err := dupsketch.New(probes, bytes)
			if err != nil {
				return fmt.Errorf("number of probes cannot be 0: %w", err)
			}

			bar := progressBar(os.Stdin)
			defer bar.Close()

			r := bufio.NewReader(os.Stdin)
			delim := delimiter(zeroTerminated)
			err = eachToken(r, delim, func(tok []byte) error {
				sketch.Insert(tok)
				bar.Add(len(tok))
				return nil
			})
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

	cmd.Flags().Uint32VarP(&probes, "probes", "p", 2,
		"Number of probes in sketch. Larger values are more precise, but slower")
	cmd.Flags().StringVarP(&size, "size", "s", "8MiB",
		"Minimum size of the sketch. Actual size will be the nearest larger power of two")
	cmd.Flags().BoolVarP(&zeroTerminated, "zero-terminated", "0", false,
		"Use NUL bytes as line delimiters instead of newlines")

	return cmd
}

// progressBar renders progress against f's size when f is a regular
// file (so the total is known up front), and is a silent no-op
// otherwise — in particular when stdin is a pipe.
func progressBar(f *os.File) *progressbar.ProgressBar {
	info, err := f.Stat()
	if err != nil || info.Mode()&os.ModeType != 0 {
		return progressbar.DefaultBytesSilent(-1)
	}
	return progressbar.DefaultBytes(info.Size(), "building sketch")
}
