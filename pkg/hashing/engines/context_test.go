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
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"testing"

	"github.com/relaywire/hashing/pkg/hashing/algorithms"
)

// Context must be usable behind io.Copy.
func TestContext_ImplementsWriter(t *testing.T) {
	var _ io.Writer = (*Context)(nil)
}

// Known-answer vectors for "abc" under every supported algorithm
// (FIPS 180-4 and FIPS 202 examples).
var abcVectors = map[algorithms.Algorithm]string{
	algorithms.SHA1:     "a9993e364706816aba3e25717850c26c9cd0d89d",
	algorithms.SHA256:   "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	algorithms.SHA512:   "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
	algorithms.SHA3_256: "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
	algorithms.SHA3_512: "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0",
}

func TestContext_KnownVectors(t *testing.T) {
	for alg, want := range abcVectors {
		c := NewContext(alg)
		c.AddBytes([]byte("abc"))
		got := hex.EncodeToString(c.SumFixed())
		if got != want {
			t.Errorf("%s(abc) = %s, want %s", alg, got, want)
		}
		c.Release()
	}
}

// Streaming any chunking of the input must equal the one-shot digest.
func TestContext_ChunkInvariance(t *testing.T) {
	input := make([]byte, 300)
	for i := range input {
		input[i] = byte(i)
	}

	for _, alg := range algorithms.All() {
		whole := NewContext(alg)
		whole.AddBytes(input)
		want := whole.SumFixed()
		whole.Release()

		for _, split := range []int{0, 1, 63, 64, 65, 136, 300} {
			c := NewContext(alg)
			c.AddBytes(input[:split])
			c.AddBytes(input[split:])
			if got := c.SumFixed(); !bytes.Equal(got, want) {
				t.Errorf("%s: chunked at %d = %x, want %x", alg, split, got, want)
			}
			c.Release()
		}
	}
}

func TestContext_DupDiverges(t *testing.T) {
	c := New256(algorithms.SHA256)
	defer c.Release()
	c.AddBytes([]byte("ab"))

	d := c.Dup()
	defer d.Release()

	c.AddBytes([]byte("c"))
	d.AddBytes([]byte("d"))

	wantC := sha256.Sum256([]byte("abc"))
	wantD := sha256.Sum256([]byte("abd"))
	if got := c.SumFixed(); !bytes.Equal(got, wantC[:]) {
		t.Errorf("original after dup = %x, want sha256(abc)", got)
	}
	if got := d.SumFixed(); !bytes.Equal(got, wantD[:]) {
		t.Errorf("duplicate = %x, want sha256(abd)", got)
	}
}

// Duplication must hold for every algorithm, including partial blocks.
func TestContext_DupAllAlgorithms(t *testing.T) {
	prefix := bytes.Repeat([]byte{0x5a}, 100) // not a block boundary anywhere
	for _, alg := range algorithms.All() {
		c := NewContext(alg)
		c.AddBytes(prefix)
		d := c.Dup()

		c.AddBytes([]byte("left"))
		d.AddBytes([]byte("right"))

		wantC := DigestList(prefix, [][]byte{[]byte("left")}, nil, alg)
		wantD := DigestList(prefix, [][]byte{[]byte("right")}, nil, alg)
		if got := c.SumFixed(); !bytes.Equal(got, wantC) {
			t.Errorf("%s: original diverged incorrectly", alg)
		}
		if got := d.SumFixed(); !bytes.Equal(got, wantD) {
			t.Errorf("%s: duplicate diverged incorrectly", alg)
		}
		c.Release()
		d.Release()
	}
}

func TestContext_AssignDiscardsPriorState(t *testing.T) {
	a := New256(algorithms.SHA256)
	defer a.Release()
	a.AddBytes([]byte("junk to be discarded"))

	b := New512(algorithms.SHA3_512)
	defer b.Release()
	b.AddBytes([]byte("payload"))

	a.Assign(b)
	if a.Algorithm() != algorithms.SHA3_512 {
		t.Fatalf("Algorithm() after assign = %s, want sha3-512", a.Algorithm())
	}
	if got, want := a.SumFixed(), b.SumFixed(); !bytes.Equal(got, want) {
		t.Errorf("digest after assign = %x, want %x", got, want)
	}

	// The two contexts must not alias: extending one leaves the other alone.
	a.AddBytes([]byte("more"))
	if got, want := b.SumFixed(), Digest512(algorithms.SHA3_512, []byte("payload")); !bytes.Equal(got, want[:]) {
		t.Errorf("source context changed by mutation of destination")
	}
}

func TestContext_SumTruncatesAndZeroFills(t *testing.T) {
	full := sha256.Sum256([]byte("abc"))

	c := New256(algorithms.SHA256)
	defer c.Release()
	c.AddBytes([]byte("abc"))

	short := make([]byte, 10)
	c.Sum(short)
	if !bytes.Equal(short, full[:10]) {
		t.Errorf("short Sum = %x, want prefix %x", short, full[:10])
	}

	long := bytes.Repeat([]byte{0xee}, 40)
	c.Sum(long)
	if !bytes.Equal(long[:32], full[:]) {
		t.Errorf("long Sum prefix = %x, want %x", long[:32], full)
	}
	if !bytes.Equal(long[32:], make([]byte, 8)) {
		t.Errorf("long Sum tail = %x, want zeros", long[32:])
	}
}

// Reading the digest does not finalize the stream: appending afterwards
// continues as if Sum had not been called.
func TestContext_AppendAfterSum(t *testing.T) {
	for _, alg := range algorithms.All() {
		c := NewContext(alg)
		c.AddBytes([]byte("ab"))
		_ = c.SumFixed()
		c.AddBytes([]byte("c"))

		want := DigestList(nil, [][]byte{[]byte("abc")}, nil, alg)
		if got := c.SumFixed(); !bytes.Equal(got, want) {
			t.Errorf("%s: append after Sum broke the stream", alg)
		}
		c.Release()
	}
}

func TestNew256RejectsWrongFamily(t *testing.T) {
	for _, alg := range []algorithms.Algorithm{algorithms.SHA1, algorithms.SHA512, algorithms.SHA3_512} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New256(%s) did not panic", alg)
				}
			}()
			New256(alg)
		}()
	}
}

func TestNew512RejectsWrongFamily(t *testing.T) {
	for _, alg := range []algorithms.Algorithm{algorithms.SHA1, algorithms.SHA256, algorithms.SHA3_256} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New512(%s) did not panic", alg)
				}
			}()
			New512(alg)
		}()
	}
}

func TestNewDefaultIsSHA1(t *testing.T) {
	c := New()
	defer c.Release()
	if c.Algorithm() != algorithms.SHA1 {
		t.Errorf("New().Algorithm() = %s, want sha1", c.Algorithm())
	}
}
