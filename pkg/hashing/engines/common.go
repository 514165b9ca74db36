// Copyright 2026 The Relaywire Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engines

import (
	"io"

	"github.com/relaywire/hashing/pkg/hashing/algorithms"
)

// CommonDigests holds the digests we commonly compute together over one
// input: one fixed 32-byte slot per common algorithm, indexed by
// Algorithm ordinal. Digests shorter than 32 bytes (SHA-1) are
// right-padded with zero bytes.
//
// The fixed layout trades space for O(1) access: the SHA-1 slot wastes
// 12 bytes, so do not use this type for bulk storage of many sets.
type CommonDigests struct {
	d [algorithms.NumCommonAlgorithms][algorithms.Digest256Len]byte
}

// Get returns the 32-byte slot for alg. alg must be SHA1 or SHA256;
// anything else is a caller bug and panics.
func (cd *CommonDigests) Get(alg algorithms.Algorithm) [algorithms.Digest256Len]byte {
	if int(alg) < 0 || int(alg) >= algorithms.NumCommonAlgorithms {
		panic("engines: algorithm not part of the common digest set")
	}
	return cd.d[alg]
}

// ComputeCommonDigests computes the common digest set (SHA-1 and
// SHA-256) of m in a single traversal of the input.
//
// The result is bit-identical to two independent single-algorithm
// computations; the fusion is purely a performance measure.
func ComputeCommonDigests(m []byte) *CommonDigests {
	c1 := NewContext(algorithms.SHA1)
	defer c1.Release()
	c2 := NewContext(algorithms.SHA256)
	defer c2.Release()

	// One pass over m feeding both accumulators.
	_, _ = io.MultiWriter(c1, c2).Write(m)

	var out CommonDigests
	c1.Sum(out.d[algorithms.SHA1][:])
	c2.Sum(out.d[algorithms.SHA256][:])
	return &out
}
