package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/greatroar/dupsketch"
)

// delimiter returns the token delimiter byte: NUL if zeroTerminated,
// newline otherwise. The delimiter is included in the hashed token, so
// "asdf\n" and "asdf" are distinct elements.
func delimiter(zeroTerminated bool) byte {
	if zeroTerminated {
		return 0
	}
	return '\n'
}

// eachToken calls fn with each delim-terminated token read from r,
// including the trailing delimiter when present. It stops at the first
// error returned by fn or encountered while reading r, or once r is
// exhausted.
func eachToken(r *bufio.Reader, delim byte, fn func([]byte) error) error {
	for {
		tok, err := r.ReadBytes(delim)
		if len(tok) > 0 {
			if ferr := fn(tok); ferr != nil {
				return ferr
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}
	}
}

// combineSketches reads a concatenated stream of sketches from r,
// merging each compatible one into an accumulator, and returns it.
//
// It returns an error if the stream holds no sketch at all, or if any
// two sketches in it are incompatible.
func combineSketches(r io.Reader) (*dupsketch.Sketch, error) {
	var acc *dupsketch.Sketch

	for {
		s, err := dupsketch.Deserialize(r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("reading sketch: %w", err)
		}

		if acc == nil {
			acc = s
			continue
		}
		if err := acc.Merge(s); err != nil {
			return nil, fmt.Errorf("merging sketches: %w", err)
		}
	}

	if acc == nil {
		return nil, errors.New("no sketches in input")
	}
	return acc, nil
}
