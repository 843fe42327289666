// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dupsketch

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Serialize writes s to w: a little-endian uint32 probe count, a
// little-endian uint64 word count, then that many little-endian uint32
// words, in index order. There is no framing, checksum, magic number,
// or version; multiple sketches may be concatenated into one stream by
// calling Serialize repeatedly on the same writer.
func (s *Sketch) Serialize(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, s.probes); err != nil {
		return fmt.Errorf("dupsketch: writing probe count: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(s.words))); err != nil {
		return fmt.Errorf("dupsketch: writing word count: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, s.words); err != nil {
		return fmt.Errorf("dupsketch: writing words: %w", err)
	}
	return nil
}

// Deserialize reads one sketch from r in the format written by
// Serialize.
//
// If r is at end of stream before any byte of a new record is read,
// Deserialize returns (nil, io.EOF): a normal signal that the stream
// holds no further sketch, not an error. Any other short read — a
// partial probe-count field, a missing word-count field, or a
// truncated word body — returns (nil, io.ErrUnexpectedEOF). Any other
// I/O error from r is returned unwrapped.
//
// Deserialize does not validate the probe or word count against a
// maximum, nor does it re-check that odd counter bits are zero; a
// malformed stream can produce a sketch that violates the package's
// invariants without Deserialize reporting an error. A word count too
// large to allocate makes Deserialize panic or exhaust memory.
func Deserialize(r io.Reader) (*Sketch, error) {
	var probes uint32
	if err := binary.Read(r, binary.LittleEndian, &probes); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, unexpectedEOF(err)
	}

	var numWords uint64
	if err := binary.Read(r, binary.LittleEndian, &numWords); err != nil {
		return nil, unexpectedEOF(err)
	}

	words := make([]uint32, numWords)
	if err := binary.Read(r, binary.LittleEndian, words); err != nil {
		return nil, unexpectedEOF(err)
	}

	return &Sketch{words: words, probes: probes}, nil
}

// unexpectedEOF normalizes a clean EOF encountered mid-record to
// io.ErrUnexpectedEOF, per the same convention encoding/binary.Read
// itself uses, and passes any other error through unchanged.
func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
