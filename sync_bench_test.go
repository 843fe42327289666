// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package dupsketch

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
)

// Baseline for BenchmarkInsertSync: a plain Sketch behind a mutex.
func benchmarkInsertLocked(b *testing.B, requestedBytes int) {
	const probes = 6

	s, err := New(probes, requestedBytes)
	if err != nil {
		b.Fatal(err)
	}
	var (
		mu   sync.Mutex
		seed uint32
	)

	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		r := rand.New(rand.NewSource(int64(atomic.AddUint32(&seed, 1))))
		buf := make([]byte, 32)
		for pb.Next() {
			r.Read(buf)
			mu.Lock()
			s.Insert(buf)
			mu.Unlock()
		}
	})
}

func BenchmarkInsertLocked128kB(b *testing.B) { benchmarkInsertLocked(b, 1<<17) }
func BenchmarkInsertLocked1MB(b *testing.B)   { benchmarkInsertLocked(b, 1<<20) }
func BenchmarkInsertLocked16MB(b *testing.B)  { benchmarkInsertLocked(b, 1<<24) }

func benchmarkInsertSync(b *testing.B, requestedBytes int) {
	const probes = 6

	s, err := NewSync(probes, requestedBytes)
	if err != nil {
		b.Fatal(err)
	}
	var seed uint32

	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		r := rand.New(rand.NewSource(int64(atomic.AddUint32(&seed, 1))))
		buf := make([]byte, 32)
		for pb.Next() {
			r.Read(buf)
			s.Insert(buf)
		}
	})
}

func BenchmarkInsertSync128kB(b *testing.B) { benchmarkInsertSync(b, 1<<17) }
func BenchmarkInsertSync1MB(b *testing.B)   { benchmarkInsertSync(b, 1<<20) }
func BenchmarkInsertSync16MB(b *testing.B)  { benchmarkInsertSync(b, 1<<24) }
