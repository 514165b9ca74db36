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

package algorithms

import (
	"errors"
	"testing"
)

// Ordinals and names are persisted by other subsystems; these literals
// must never change.
func TestOrdinalsAreStable(t *testing.T) {
	ordinals := map[Algorithm]int{
		SHA1:     0,
		SHA256:   1,
		SHA512:   2,
		SHA3_256: 3,
		SHA3_512: 4,
	}
	for a, want := range ordinals {
		if int(a) != want {
			t.Errorf("ordinal of %s = %d, want %d", a, int(a), want)
		}
	}
	if NumAlgorithms != 5 {
		t.Errorf("NumAlgorithms = %d, want 5", NumAlgorithms)
	}
	if NumCommonAlgorithms != 2 {
		t.Errorf("NumCommonAlgorithms = %d, want 2", NumCommonAlgorithms)
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		alg  Algorithm
		want int
	}{
		{SHA1, 20},
		{SHA256, 32},
		{SHA512, 64},
		{SHA3_256, 32},
		{SHA3_512, 64},
	}
	for _, tt := range tests {
		if got := Length(tt.alg); got != tt.want {
			t.Errorf("Length(%s) = %d, want %d", tt.alg, got, tt.want)
		}
	}
}

func TestNameParseRoundTrip(t *testing.T) {
	for _, a := range All() {
		got, err := Parse(Name(a))
		if err != nil {
			t.Fatalf("Parse(Name(%s)) error = %v", a, err)
		}
		if got != a {
			t.Errorf("Parse(Name(%s)) = %s, want %s", a, got, a)
		}
	}
}

func TestCanonicalNames(t *testing.T) {
	want := map[Algorithm]string{
		SHA1:     "sha1",
		SHA256:   "sha256",
		SHA512:   "sha512",
		SHA3_256: "sha3-256",
		SHA3_512: "sha3-512",
	}
	for a, name := range want {
		if got := Name(a); got != name {
			t.Errorf("Name(%d) = %q, want %q", int(a), got, name)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	for _, name := range []string{"", "md5", "SHA256", "sha-256", "sha3_256", "sha256 "} {
		_, err := Parse(name)
		if !errors.Is(err, ErrUnknownAlgorithm) {
			t.Errorf("Parse(%q) error = %v, want ErrUnknownAlgorithm", name, err)
		}
	}
}

func TestLengthPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Length(-1) did not panic")
		}
	}()
	Length(Algorithm(-1))
}
