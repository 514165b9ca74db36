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
	"github.com/relaywire/hashing/pkg/hashing/algorithms"
	"github.com/relaywire/hashing/pkg/hashing/digests"
)

// Digest computes the SHA-1 digest of m.
//
// SHA-1 survives here only because legacy identifiers are defined over
// it; new formats should call Digest256 or Digest512.
func Digest(m []byte) [algorithms.DigestLen]byte {
	c := New()
	defer c.Release()

	c.AddBytes(m)
	var out [algorithms.DigestLen]byte
	c.Sum(out[:])
	return out
}

// Digest256 computes a 256-bit digest of m. alg must be SHA256 or
// SHA3_256 (see New256).
func Digest256(alg algorithms.Algorithm, m []byte) [algorithms.Digest256Len]byte {
	c := New256(alg)
	defer c.Release()

	c.AddBytes(m)
	var out [algorithms.Digest256Len]byte
	c.Sum(out[:])
	return out
}

// Digest512 computes a 512-bit digest of m. alg must be SHA512 or
// SHA3_512 (see New512).
func Digest512(alg algorithms.Algorithm, m []byte) [algorithms.Digest512Len]byte {
	c := New512(alg)
	defer c.Release()

	c.AddBytes(m)
	var out [algorithms.Digest512Len]byte
	c.Sum(out[:])
	return out
}

// Sum computes a one-shot digest of m under any supported algorithm and
// returns it as a digests.Digest value carrying the canonical name.
func Sum(alg algorithms.Algorithm, m []byte) digests.Digest {
	c := NewContext(alg)
	defer c.Release()

	c.AddBytes(m)
	return digests.NewDigest(algorithms.Name(alg), c.SumFixed())
}
