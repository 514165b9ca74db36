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

package digests

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"testing"

	"github.com/relaywire/hashing/pkg/hashing/algorithms"
)

func TestDigestImmutability(t *testing.T) {
	value := []byte{1, 2, 3, 4}
	d := NewDigest("sha256", value)

	value[0] = 0xff
	if d.Value()[0] != 1 {
		t.Error("NewDigest did not copy the input slice")
	}

	out := d.Value()
	out[1] = 0xff
	if d.Value()[1] != 2 {
		t.Error("Value() did not return a defensive copy")
	}
}

func TestHexKnownValue(t *testing.T) {
	sum := sha256.Sum256([]byte("abcd"))
	d := NewDigest("sha256", sum[:])

	const want = "88d4266fd4e6338d13b845fcf289579d209c897823b9217da3e161936f031589"
	if got := d.Hex(); got != want {
		t.Errorf("Hex() = %q, want %q", got, want)
	}
	if got, want := d.String(), "sha256:"+want; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// The encoded lengths are contractual constants; downstream identifiers
// depend on them exactly.
func TestEncodedLengths(t *testing.T) {
	sum1 := sha1.Sum([]byte("payload"))
	sum256 := sha256.Sum256([]byte("payload"))
	sum512 := sha512.Sum512([]byte("payload"))

	d1 := NewDigest("sha1", sum1[:])
	d256 := NewDigest("sha256", sum256[:])
	d512 := NewDigest("sha512", sum512[:])

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"sha1 hex", len(d1.Hex()), algorithms.HexDigestLen},
		{"sha256 hex", len(d256.Hex()), algorithms.HexDigest256Len},
		{"sha512 hex", len(d512.Hex()), algorithms.HexDigest512Len},
		{"sha1 base32", len(d1.Base32()), algorithms.Base32DigestLen},
		{"sha1 base64", len(d1.Base64()), algorithms.Base64DigestLen},
		{"sha256 base64", len(d256.Base64()), algorithms.Base64Digest256Len},
		{"sha512 base64", len(d512.Base64()), algorithms.Base64Digest512Len},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s length = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	sum := sha256.Sum256([]byte("abcd"))
	a := NewDigest("sha256", sum[:])
	b := NewDigest("sha256", sum[:])
	if !a.Equal(b) {
		t.Error("identical digests compare unequal")
	}

	other := sha256.Sum256([]byte("abce"))
	c := NewDigest("sha256", other[:])
	if a.Equal(c) {
		t.Error("different values compare equal")
	}

	d := NewDigest("sha3-256", sum[:])
	if a.Equal(d) {
		t.Error("different algorithms compare equal")
	}
}
