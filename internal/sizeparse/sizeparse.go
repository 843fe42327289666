// Package sizeparse parses human-readable size strings such as "8MiB" or
// "512kB" for the dupsketch CLI's --size flag.
package sizeparse

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Bytes parses a human-readable size string into a byte count.
//
// Both SI (kB, MB, GB, ...) and IEC (KiB, MiB, GiB, ...) suffixes are
// accepted, as well as a bare integer number of bytes.
func Bytes(s string) (int, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("sizeparse: %q: %w", s, err)
	}
	return int(n), nil
}
