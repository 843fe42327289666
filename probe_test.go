// Copyright 2020 the Blobloom authors
//
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zeebo/xxh3"
)

func TestProbeIterLength(t *testing.T) {
	t.Parallel()

	buf := []byte("hello, world")
	for _, probes := range []uint32{1, 2, 4, 16} {
		it := newProbeIter(buf, probes, 1024)

		n := 0
		for it.more() {
			wordIdx, bitOffset := it.next()
			assert.GreaterOrEqual(t, wordIdx, 0)
			assert.Less(t, wordIdx, 1024)
			assert.Zero(t, bitOffset%2)
			assert.Less(t, bitOffset, uint32(32))
			n++
		}
		assert.EqualValues(t, probes, n)
	}
}

func TestProbeIterDeterministic(t *testing.T) {
	t.Parallel()

	buf := []byte("determinism")

	collect := func() [][2]uint32 {
		it := newProbeIter(buf, 8, 256)
		var got [][2]uint32
		for it.more() {
			w, b := it.next()
			got = append(got, [2]uint32{uint32(w), b})
		}
		return got
	}

	assert.Equal(t, collect(), collect())
}

// The first probe (i=0) always equals the high half of the hash,
// unchanged: h += 0*b is a no-op. This is part of the wire contract.
func TestProbeIterFirstProbeIsHashHigh(t *testing.T) {
	t.Parallel()

	buf := []byte("first probe")
	h := xxh3.Hash128(buf)

	it := newProbeIter(buf, 3, 1024)
	wordIdx, bitOffset := it.next()

	assert.Equal(t, int((h.Hi>>4)&1023), wordIdx)
	assert.Equal(t, uint32(h.Hi&15)*2, bitOffset)
}
