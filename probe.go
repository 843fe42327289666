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

import "github.com/zeebo/xxh3"

// probeIter derives the sequence of (word index, bit offset) probe
// positions for one element, from a 128-bit hash of that element split
// into two 64-bit halves.
//
// The hash used here is xxh3.Hash128 rather than the MetroHash128 the
// wire format originally specified: no Go implementation of MetroHash128
// was available, and xxh3 produces the same (Hi, Lo uint64) shape from
// a single call with no per-probe allocation, which is what this
// iterator requires. Sketches built with this hash are not wire
// compatible with ones built against MetroHash128; see DESIGN.md.
//
// h advances by adding i*b to the running hash at each step, so the
// first probe (i=0) always equals the hash's high half unchanged. This
// is intentional and part of the wire contract: two implementations
// agreeing on the hash function must derive the same probe sequence.
//
// It allocates nothing: words and counter masks are derived with shifts
// and masks, and the only per-element work beyond the loop is the
// single xxh3.Hash128 call in newProbeIter.
type probeIter struct {
	h      uint64
	b      uint64
	i      uint32
	probes uint32
	mask   uint64 // len(words) - 1; len(words) is always a power of two.
}

func newProbeIter(buf []byte, probes uint32, numWords int) probeIter {
	h := xxh3.Hash128(buf)

	return probeIter{
		h:      h.Hi,
		b:      h.Lo,
		probes: probes,
		mask:   uint64(numWords - 1),
	}
}

func (it *probeIter) more() bool { return it.i < it.probes }

// next returns the next probe position. It must not be called more
// than probes times.
func (it *probeIter) next() (wordIdx int, bitOffset uint32) {
	it.h += uint64(it.i) * it.b
	it.i++

	wordIdx = int((it.h >> 4) & it.mask)
	bitOffset = uint32(it.h&15) * 2
	return wordIdx, bitOffset
}
