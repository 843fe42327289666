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

import "math"

// A Config holds parameters for Optimize or NewOptimized.
type Config struct {
	// Desired false positive rate once NKeys distinct keys have each
	// been inserted twice.
	FPRate float64

	// Expected number of distinct keys in the stream.
	NKeys int

	// Maximum sketch size in bytes. Zero means no limit.
	MaxBytes int

	// Forces named fields, for forward compatibility.
	_ struct{}
}

// NewOptimized is shorthand for New(Optimize(cfg)).
func NewOptimized(cfg Config) (*Sketch, error) {
	probes, bytes := Optimize(cfg)
	return New(probes, bytes)
}

// Optimize returns a number of probes and a byte size that achieve
// approximately the false positive rate described by cfg, once cfg.NKeys
// distinct keys have each been inserted twice.
//
// A duplicates sketch answers a different question than a plain Bloom
// filter — "seen at least twice" rather than "seen at least once" — so
// it needs roughly double the counters of an equivalent membership
// filter at the same probe count: each element claims a counter pair
// (one bit of headroom past its first insertion) rather than a single
// bit. This function starts from the standard Bloom filter sizing
// identity (m/n = -log2(p)/ln2, k = (m/n)*ln2) and doubles the resulting
// bit budget accordingly.
func Optimize(cfg Config) (probes uint32, bytes int) {
	n := float64(cfg.NKeys)
	p := cfg.FPRate

	if p <= 0 || p > 1 {
		panic("dupsketch: false positive rate must be > 0 and <= 1")
	}
	if n == 0 {
		n = 1
	}

	bitsPerKey := -math.Log2(p) / math.Ln2
	nhashes := int(math.Round(bitsPerKey * math.Ln2))
	if nhashes < 1 {
		nhashes = 1
	}

	totalBits := 2 * bitsPerKey * n
	totalBytes := int(math.Ceil(totalBits / 8))

	if cfg.MaxBytes != 0 && totalBytes > cfg.MaxBytes {
		totalBytes = cfg.MaxBytes
	}

	return uint32(nhashes), totalBytes
}

// FPRate estimates the false positive rate of a sketch with the given
// number of probes and word count, once nkeys distinct keys have each
// been inserted twice, under the standard independence assumption for
// Bloom-style counting filters: each probe independently misses a given
// counter with probability (1 - 1/m)^(2*nkeys), where m is the number of
// counters (16 per word).
func FPRate(nkeys int, numWords int, probes uint32) float64 {
	m := float64(numWords) * wordCounters
	k := float64(probes)
	n := float64(nkeys)

	pMiss := math.Pow(1-1/m, 2*n)
	return math.Pow(1-pMiss, k)
}

// FPRate estimates s's false positive rate after nkeys distinct keys
// have each been inserted twice. See the package-level FPRate.
func (s *Sketch) FPRate(nkeys int) float64 {
	return FPRate(nkeys, len(s.words), s.probes)
}
