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

// Package xof provides a streaming extendable-output hash backed by
// SHAKE-256.
//
// An XOF absorbs arbitrary bytes and then produces an effectively
// infinite deterministic output stream keyed by everything absorbed.
// The output is defined only as a continuous stream: two Squeeze calls
// of 16 bytes each read the same bytes as one call of 32.
//
// The absorb and squeeze phases are strictly ordered. Absorbing after
// the first Squeeze is a contract violation and panics; there is no
// silent restart of the sponge.
package xof

import (
	"golang.org/x/crypto/sha3"
)

// XOF is a SHAKE-256 absorb/squeeze state. The zero value is not
// usable; call New.
//
// An XOF is exclusively owned by its creator and not safe for
// concurrent use.
type XOF struct {
	shake    sha3.ShakeHash
	squeezed bool
}

// New returns an XOF ready to absorb. No output length is fixed at
// creation; callers squeeze as much as they need.
func New() *XOF {
	return &XOF{shake: sha3.NewShake256()}
}

// AddBytes absorbs data into the sponge. It may be called any number of
// times before the first Squeeze, with any chunking.
//
// Calling AddBytes after Squeeze panics.
func (x *XOF) AddBytes(data []byte) {
	if x.squeezed {
		panic("xof: absorb after squeeze")
	}
	if len(data) > 0 {
		// ShakeHash.Write never fails before Read has been called.
		_, _ = x.shake.Write(data)
	}
}

// Squeeze fills out with the next len(out) bytes of the output stream.
// Consecutive calls continue the stream where the previous call left
// off.
func (x *XOF) Squeeze(out []byte) {
	x.squeezed = true
	if len(out) == 0 {
		return
	}
	// ShakeHash.Read always fills the buffer and never fails.
	_, _ = x.shake.Read(out)
}

// Dup returns an independent XOF mirroring x's current state, both the
// absorbed input and the position in the output stream.
func (x *XOF) Dup() *XOF {
	return &XOF{shake: x.shake.Clone(), squeezed: x.squeezed}
}

// Release tears down the sponge deterministically. The state is reset
// before the reference is dropped; using the XOF afterwards panics.
func (x *XOF) Release() {
	if x.shake != nil {
		x.shake.Reset()
		x.shake = nil
	}
}

// Shake256 is a one-shot convenience: it absorbs m and squeezes outLen
// bytes.
func Shake256(outLen int, m []byte) []byte {
	x := New()
	defer x.Release()

	x.AddBytes(m)
	out := make([]byte, outLen)
	x.Squeeze(out)
	return out
}
