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

// Package digests provides an immutable value type for computed digests.
//
// A Digest pairs the canonical algorithm name with the raw digest bytes
// and offers the text encodings (hex, base32, base64) whose lengths are
// part of the library's wire contract.
package digests

import (
	"crypto/subtle"
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Encodings used for digests on the wire: unpadded, since the raw
// lengths are fixed per algorithm and the padding carries no information.
var (
	base32Encoding = base32.StdEncoding.WithPadding(base32.NoPadding)
	base64Encoding = base64.StdEncoding.WithPadding(base64.NoPadding)
)

// Digest represents a computed digest value.
//
// Digest is effectively immutable: its fields are unexported and both
// constructor and accessors defensively copy the byte slice, so no
// caller can mutate a value after creation.
type Digest struct {
	algorithm string
	value     []byte
}

// NewDigest creates a Digest for the given canonical algorithm name and
// raw digest bytes. The value slice is copied.
func NewDigest(algorithm string, value []byte) Digest {
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	return Digest{
		algorithm: algorithm,
		value:     valueCopy,
	}
}

// Algorithm returns the canonical name of the algorithm that produced
// this digest (e.g. "sha256").
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Value returns a copy of the raw digest bytes.
func (d Digest) Value() []byte {
	valueCopy := make([]byte, len(d.value))
	copy(valueCopy, d.value)
	return valueCopy
}

// Size returns the length of the digest in bytes.
func (d Digest) Size() int {
	return len(d.value)
}

// Hex returns the lowercase hexadecimal encoding of the digest.
// A SHA-1 digest encodes to 40 characters, a 256-bit digest to 64,
// a 512-bit digest to 128.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.value)
}

// Base32 returns the unpadded standard base32 encoding of the digest.
// A SHA-1 digest encodes to 32 characters.
func (d Digest) Base32() string {
	return base32Encoding.EncodeToString(d.value)
}

// Base64 returns the unpadded standard base64 encoding of the digest.
// SHA-1, 256-bit and 512-bit digests encode to 27, 43 and 86
// characters respectively.
func (d Digest) Base64() string {
	return base64Encoding.EncodeToString(d.value)
}

// String returns "algorithm:hexvalue", e.g. "sha256:abc123...".
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}

// Equal reports whether two digests have the same algorithm and value.
//
// The value comparison runs in constant time. Digest values are routinely
// compared against attacker-supplied data, so Equal must not leak the
// position of the first mismatching byte.
func (d Digest) Equal(other Digest) bool {
	if d.algorithm != other.algorithm {
		return false
	}
	if len(d.value) != len(other.value) {
		return false
	}
	return subtle.ConstantTimeCompare(d.value, other.value) == 1
}
