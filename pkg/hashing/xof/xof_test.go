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

package xof

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// First 32 output bytes of SHAKE-256 on empty input (FIPS 202 example).
const shake256Empty32 = "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762f"

func TestXOF_EmptyInputVector(t *testing.T) {
	got := Shake256(32, nil)
	if hex.EncodeToString(got) != shake256Empty32 {
		t.Errorf("Shake256(32, nil) = %x, want %s", got, shake256Empty32)
	}
}

// Two squeezes of 16 must read the same stream as one squeeze of 32.
func TestXOF_StreamContinuity(t *testing.T) {
	input := []byte("stream continuity input")

	a := New()
	defer a.Release()
	a.AddBytes(input)
	whole := make([]byte, 32)
	a.Squeeze(whole)

	b := New()
	defer b.Release()
	b.AddBytes(input)
	first := make([]byte, 16)
	second := make([]byte, 16)
	b.Squeeze(first)
	b.Squeeze(second)

	if !bytes.Equal(whole, append(first, second...)) {
		t.Errorf("squeeze(16)+squeeze(16) = %x%x, want squeeze(32) = %x", first, second, whole)
	}
}

// Absorbing in chunks must equal absorbing the concatenation.
func TestXOF_AbsorbChunking(t *testing.T) {
	a := New()
	defer a.Release()
	a.AddBytes([]byte("hello "))
	a.AddBytes(nil)
	a.AddBytes([]byte("world"))

	want := Shake256(64, []byte("hello world"))
	got := make([]byte, 64)
	a.Squeeze(got)
	if !bytes.Equal(got, want) {
		t.Errorf("chunked absorb = %x, want %x", got, want)
	}
}

func TestXOF_Deterministic(t *testing.T) {
	one := Shake256(48, []byte("seed"))
	two := Shake256(48, []byte("seed"))
	if !bytes.Equal(one, two) {
		t.Error("identical absorb sequences produced different streams")
	}

	other := Shake256(48, []byte("seeds"))
	if bytes.Equal(one, other) {
		t.Error("different inputs produced the same stream")
	}
}

func TestXOF_DupContinuesIndependently(t *testing.T) {
	x := New()
	defer x.Release()
	x.AddBytes([]byte("shared prefix"))

	head := make([]byte, 8)
	x.Squeeze(head)

	y := x.Dup()
	defer y.Release()

	fromX := make([]byte, 24)
	fromY := make([]byte, 24)
	x.Squeeze(fromX)
	y.Squeeze(fromY)
	if !bytes.Equal(fromX, fromY) {
		t.Error("duplicate did not continue the stream at the same position")
	}

	// The sponges are independent: the same further reads from each must
	// still yield the same bytes, not interleave a shared state.
	more := make([]byte, 8)
	x.Squeeze(more)
	again := make([]byte, 8)
	y.Squeeze(again)
	if !bytes.Equal(more, again) {
		t.Error("independent duplicates disagreed on the next stream bytes")
	}
}

func TestXOF_AbsorbAfterSqueezePanics(t *testing.T) {
	x := New()
	defer x.Release()
	x.AddBytes([]byte("data"))
	x.Squeeze(make([]byte, 1))

	defer func() {
		if recover() == nil {
			t.Error("AddBytes after Squeeze did not panic")
		}
	}()
	x.AddBytes([]byte("late"))
}
