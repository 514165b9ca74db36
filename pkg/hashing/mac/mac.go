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

// Package mac implements the library's one-shot keyed MACs: standard
// HMAC-SHA256 and a SHA3-256 based construction with variable-length
// tags.
package mac

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"

	"github.com/relaywire/hashing/pkg/hashing/algorithms"
	"github.com/relaywire/hashing/pkg/hashing/engines"
)

// HMACSHA256 computes the HMAC-SHA256 of msg under key. Keys of any
// length are accepted, per RFC 2104.
func HMACSHA256(key, msg []byte) [algorithms.Digest256Len]byte {
	h := hmac.New(sha256.New, key)
	_, _ = h.Write(msg)

	var out [algorithms.Digest256Len]byte
	h.Sum(out[:0])
	return out
}

// SHA3256 computes a keyed MAC over msg as
//
//	SHA3-256( BE64(len(key)) ‖ key ‖ msg )
//
// read at outLen bytes with the usual truncate/zero-fill policy, so
// tags longer than 32 bytes carry no additional strength. The key
// length is prepended as a fixed 8-byte big-endian integer so the
// key/message boundary is unambiguous; SHA-3 needs no HMAC-style
// nesting since it is not length-extendable.
func SHA3256(key, msg []byte, outLen int) []byte {
	var keyLen [8]byte
	binary.BigEndian.PutUint64(keyLen[:], uint64(len(key)))

	c := engines.New256(algorithms.SHA3_256)
	defer c.Release()

	c.AddBytes(keyLen[:])
	c.AddBytes(key)
	c.AddBytes(msg)

	out := make([]byte, outLen)
	c.Sum(out)
	return out
}
