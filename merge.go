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

import "errors"

// ErrIncompatible is returned by Merge when the two sketches do not
// have the same shape.
var ErrIncompatible = errors.New("dupsketch: sketches are not compatible")

// IsCompatible reports whether s and other can be merged: same number
// of probes and the same word count. No other field participates.
func (s *Sketch) IsCompatible(other *Sketch) bool {
	return s.probes == other.probes && len(s.words) == len(other.words)
}

// Merge combines other into s in place, so that every counter in s
// becomes (at least) the saturating sum of its prior value and the
// corresponding counter in other.
//
// Merge requires s.IsCompatible(other); otherwise it returns
// ErrIncompatible and leaves s unchanged. Merge is commutative and
// associative as a query predicate, and the all-zero sketch of matching
// shape is its identity element.
func (s *Sketch) Merge(other *Sketch) error {
	if !s.IsCompatible(other) {
		return ErrIncompatible
	}

	for i, b := range other.words {
		a := s.words[i]
		s.words[i] = a | b | ((a & counterMask) + (b & counterMask))
	}
	return nil
}
