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

// Package algorithms defines the closed set of digest algorithms supported
// by this library, together with their output lengths and canonical names.
//
// The numeric values of the Algorithm constants and the canonical name
// strings are a stable contract: other subsystems persist them to identify
// an algorithm choice, so neither may change between releases. New
// algorithms may only be appended.
package algorithms

import (
	"errors"
	"fmt"
)

// Algorithm identifies one of the supported digest algorithms.
type Algorithm int

const (
	// SHA1 is the legacy 160-bit digest, retained for backward
	// compatibility with old identifiers. Do not use for new formats.
	SHA1 Algorithm = iota
	// SHA256 is the SHA-2 256-bit digest.
	SHA256
	// SHA512 is the SHA-2 512-bit digest.
	SHA512
	// SHA3_256 is the SHA-3 256-bit digest.
	SHA3_256
	// SHA3_512 is the SHA-3 512-bit digest.
	SHA3_512
)

// NumAlgorithms is the number of supported digest algorithms.
const NumAlgorithms = int(SHA3_512) + 1

// NumCommonAlgorithms is the number of algorithms included in a
// CommonDigests set (SHA1 and SHA256).
const NumCommonAlgorithms = int(SHA256) + 1

// Raw digest lengths, in bytes.
const (
	// DigestLen is the length of a SHA-1 digest.
	DigestLen = 20
	// Digest256Len is the length of a 256-bit digest (SHA256, SHA3_256).
	Digest256Len = 32
	// Digest512Len is the length of a 512-bit digest (SHA512, SHA3_512).
	Digest512Len = 64
)

// Lengths of text-encoded digests, without trailing padding characters.
// Downstream wire formats and identifiers depend on these exact values.
const (
	// Base32DigestLen is the length of a base32-encoded SHA-1 digest.
	Base32DigestLen = 32
	// Base64DigestLen is the length of a base64-encoded SHA-1 digest.
	Base64DigestLen = 27
	// Base64Digest256Len is the length of a base64-encoded 256-bit digest.
	Base64Digest256Len = 43
	// Base64Digest512Len is the length of a base64-encoded 512-bit digest.
	Base64Digest512Len = 86
	// HexDigestLen is the length of a hex-encoded SHA-1 digest.
	HexDigestLen = 40
	// HexDigest256Len is the length of a hex-encoded 256-bit digest.
	HexDigest256Len = 64
	// HexDigest512Len is the length of a hex-encoded 512-bit digest.
	HexDigest512Len = 128
)

// ErrUnknownAlgorithm is returned by Parse when a name matches no
// supported algorithm.
var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

// The tables below are immutable and indexed by Algorithm ordinal.
// The algorithm set never changes at runtime, so no registration
// mechanism exists.
var lengths = [NumAlgorithms]int{
	SHA1:     DigestLen,
	SHA256:   Digest256Len,
	SHA512:   Digest512Len,
	SHA3_256: Digest256Len,
	SHA3_512: Digest512Len,
}

var names = [NumAlgorithms]string{
	SHA1:     "sha1",
	SHA256:   "sha256",
	SHA512:   "sha512",
	SHA3_256: "sha3-256",
	SHA3_512: "sha3-512",
}

// Valid reports whether a is one of the supported algorithms.
func Valid(a Algorithm) bool {
	return a >= 0 && int(a) < NumAlgorithms
}

// Length returns the output length of a in bytes.
//
// It is a total function over the supported set; an out-of-range value
// is a programming error and panics.
func Length(a Algorithm) int {
	if !Valid(a) {
		panic(fmt.Sprintf("algorithms: invalid digest algorithm %d", int(a)))
	}
	return lengths[a]
}

// Name returns the canonical lowercase identifier of a.
//
// Like Length, it panics on an out-of-range value.
func Name(a Algorithm) string {
	if !Valid(a) {
		panic(fmt.Sprintf("algorithms: invalid digest algorithm %d", int(a)))
	}
	return names[a]
}

// String implements fmt.Stringer using the canonical name.
func (a Algorithm) String() string {
	return Name(a)
}

// Parse maps a canonical name back to its Algorithm.
//
// Matching is exact and case-sensitive. Unrecognized names return
// ErrUnknownAlgorithm (wrapped with the offending name); this is the
// only recoverable error in the package, since the name may come from
// untrusted or persisted data.
func Parse(name string) (Algorithm, error) {
	for i, n := range names {
		if n == name {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// All returns the supported algorithms in ordinal order.
func All() []Algorithm {
	out := make([]Algorithm, NumAlgorithms)
	for i := range out {
		out[i] = Algorithm(i)
	}
	return out
}
