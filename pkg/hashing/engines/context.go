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

// Package engines implements the streaming digest abstraction at the core
// of this library: a Context bound to one algorithm that can absorb bytes
// incrementally, be read non-destructively, duplicated, and reassigned,
// plus one-shot, common-digest-set and list-digest conveniences built on
// top of it.
//
// A Context is exclusively owned by its creator. Concurrent mutation of
// the same Context is a data race; Dup is the sanctioned mechanism for
// fan-out (duplicate once, hand each copy to one goroutine).
package engines

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/sha3"

	"github.com/relaywire/hashing/pkg/hashing/algorithms"
)

// factories maps each algorithm ordinal to a constructor for its backing
// engine. The table is immutable; the algorithm set is closed.
var factories = [algorithms.NumAlgorithms]func() hash.Hash{
	algorithms.SHA1:     sha1.New,
	algorithms.SHA256:   sha256.New,
	algorithms.SHA512:   sha512.New,
	algorithms.SHA3_256: sha3.New256,
	algorithms.SHA3_512: sha3.New512,
}

// Context is a streaming digest computation bound to one algorithm for
// its whole lifetime.
type Context struct {
	alg algorithms.Algorithm
	h   hash.Hash
}

// Context streams arbitrarily chunked input, so it is also an io.Writer.
var _ io.Writer = (*Context)(nil)

// New returns a Context bound to the default common algorithm, SHA-1.
//
// The SHA-1 default is retained for backward compatibility with legacy
// identifiers; new call sites should use New256 or New512.
func New() *Context {
	return NewContext(algorithms.SHA1)
}

// New256 returns a Context bound to a 256-bit algorithm.
//
// alg must be SHA256 or SHA3_256; anything else is a caller bug and
// panics.
func New256(alg algorithms.Algorithm) *Context {
	if alg != algorithms.SHA256 && alg != algorithms.SHA3_256 {
		panic(fmt.Sprintf("engines: New256 called with %d, want sha256 or sha3-256", int(alg)))
	}
	return NewContext(alg)
}

// New512 returns a Context bound to a 512-bit algorithm.
//
// alg must be SHA512 or SHA3_512; anything else is a caller bug and
// panics.
func New512(alg algorithms.Algorithm) *Context {
	if alg != algorithms.SHA512 && alg != algorithms.SHA3_512 {
		panic(fmt.Sprintf("engines: New512 called with %d, want sha512 or sha3-512", int(alg)))
	}
	return NewContext(alg)
}

// NewContext returns a Context bound to any supported algorithm.
// It panics on an out-of-range value.
func NewContext(alg algorithms.Algorithm) *Context {
	if !algorithms.Valid(alg) {
		panic(fmt.Sprintf("engines: invalid digest algorithm %d", int(alg)))
	}
	return &Context{alg: alg, h: factories[alg]()}
}

// Algorithm returns the algorithm this context is bound to.
func (c *Context) Algorithm() algorithms.Algorithm {
	return c.alg
}

// AddBytes absorbs data into the running digest. It may be called any
// number of times with any chunking; the result depends only on the
// concatenation of all absorbed bytes.
func (c *Context) AddBytes(data []byte) {
	if len(data) > 0 {
		// hash.Hash.Write never returns an error per the interface contract.
		_, _ = c.h.Write(data)
	}
}

// Write implements io.Writer so a Context can sit behind io.Copy and
// friends. It never fails.
func (c *Context) Write(p []byte) (int, error) {
	c.AddBytes(p)
	return len(p), nil
}

// Sum writes the digest of everything absorbed so far into out.
//
// If out is shorter than the algorithm's output length, the digest is
// truncated to its prefix. If out is longer, the tail beyond the
// algorithm length is zero-filled. Sum does not disturb the absorbed
// state: further AddBytes calls remain valid and continue the same
// stream (hash.Hash.Sum is non-destructive for every backing engine
// used here, the SHA-3 family included).
func (c *Context) Sum(out []byte) {
	sum := c.h.Sum(nil)
	n := copy(out, sum)
	for i := n; i < len(out); i++ {
		out[i] = 0
	}
}

// SumFixed returns the digest at the algorithm's native length.
func (c *Context) SumFixed() []byte {
	out := make([]byte, algorithms.Length(c.alg))
	c.Sum(out)
	return out
}

// Dup returns a new Context whose absorbed state exactly mirrors c at
// the time of the call. Subsequent mutation of either context is
// independent: the internal accumulator (block buffer, hash words,
// byte counter) is deep-copied, never aliased.
func (c *Context) Dup() *Context {
	d := &Context{alg: c.alg, h: factories[c.alg]()}
	restoreState(d.h, snapshotState(c.h))
	return d
}

// Assign overwrites c's algorithm binding and absorbed state with
// from's. c's prior state is discarded entirely.
func (c *Context) Assign(from *Context) {
	c.alg = from.alg
	c.h = factories[from.alg]()
	restoreState(c.h, snapshotState(from.h))
}

// Release tears down the context deterministically. The backing engine
// state is reset before the reference is dropped, so absorbed data does
// not linger until collection. Using the context afterwards panics.
func (c *Context) Release() {
	if c.h != nil {
		c.h.Reset()
		c.h = nil
	}
}

// snapshotState serializes a backing engine's internal accumulator.
//
// Every engine in the factory table implements binary state marshaling
// (the SHA-1/SHA-2 stdlib hashes document it, and the x/crypto SHA-3
// digests implement it as well). A missing implementation or a marshal
// failure means the environment is corrupt, so both abort.
func snapshotState(h hash.Hash) []byte {
	m, ok := h.(encoding.BinaryMarshaler)
	if !ok {
		panic(fmt.Sprintf("engines: %T does not support state snapshots", h))
	}
	state, err := m.MarshalBinary()
	if err != nil {
		panic(fmt.Sprintf("engines: snapshot of %T failed: %v", h, err))
	}
	return state
}

func restoreState(h hash.Hash, state []byte) {
	u, ok := h.(encoding.BinaryUnmarshaler)
	if !ok {
		panic(fmt.Sprintf("engines: %T does not support state restore", h))
	}
	if err := u.UnmarshalBinary(state); err != nil {
		panic(fmt.Sprintf("engines: restore of %T failed: %v", h, err))
	}
}
