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
)

// DigestList computes the digest of prefix ‖ items[0] ‖ items[1] ‖ ... ‖
// suffix under alg, streaming each part through one context instead of
// materializing the concatenation.
//
// Items are absorbed in slice order with no separators between them, so
// the result is order-dependent and equal to hashing the literal
// concatenation once. The returned slice has the algorithm's native
// length.
func DigestList(prefix []byte, items [][]byte, suffix []byte, alg algorithms.Algorithm) []byte {
	out := make([]byte, algorithms.Length(alg))
	DigestListInto(out, prefix, items, suffix, alg)
	return out
}

// DigestListInto is DigestList writing into a caller-provided buffer of
// any length, with the truncate/zero-fill policy of Context.Sum.
func DigestListInto(out []byte, prefix []byte, items [][]byte, suffix []byte, alg algorithms.Algorithm) {
	c := NewContext(alg)
	defer c.Release()

	c.AddBytes(prefix)
	for _, item := range items {
		c.AddBytes(item)
	}
	c.AddBytes(suffix)
	c.Sum(out)
}
