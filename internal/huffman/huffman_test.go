// Copyright 2024 The mp3dec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package huffman_test

import (
	"testing"

	"github.com/waveformio/mp3dec/internal/bits"
	"github.com/waveformio/mp3dec/internal/huffman"
)

// TestTableZeroConsumesNoBits exercises the table-0 special case: every
// pair is (0,0) and the bit position must not move.
func TestTableZeroConsumesNoBits(t *testing.T) {
	r := bits.New([]byte{0xff, 0xff})
	x, y, err := huffman.DecodePair(r, 0)
	if err != nil {
		t.Fatalf("DecodePair: %v", err)
	}
	if x != 0 || y != 0 {
		t.Errorf("(x,y) = (%d,%d), want (0,0)", x, y)
	}
	if r.Position() != 0 {
		t.Errorf("Position() = %d, want 0", r.Position())
	}
}

// TestCount1TableBFixedWidth verifies table B reads a fixed 4-bit magnitude
// field, laid out v,w,x,y from MSB to LSB, followed by one sign bit for each
// nonzero magnitude.
func TestCount1TableBFixedWidth(t *testing.T) {
	// 1011 followed by sign bits (1,0,1) for the three nonzero magnitudes,
	// then padding.
	r := bits.New([]byte{0b10111010})
	v, w, x, y, err := huffman.DecodeQuad(r, 1)
	if err != nil {
		t.Fatalf("DecodeQuad: %v", err)
	}
	if v != -1 || w != 0 || x != 1 || y != -1 {
		t.Errorf("(v,w,x,y) = (%d,%d,%d,%d), want (-1,0,1,-1)", v, w, x, y)
	}
	if r.Position() != 7 {
		t.Errorf("Position() = %d, want 7", r.Position())
	}
}

// TestBigValuesShortestCodewordAllTables verifies, for every compiled
// big_values table, that decoding the table's own shortest codeword (an
// all-zero run of bits long enough to cover its escape and sign bits) never
// errors and never produces a negative value.
func TestBigValuesShortestCodewordAllTables(t *testing.T) {
	for table := 1; table < 32; table++ {
		if table == 4 || table == 14 {
			continue // reserved, never selected by a conformant encoder
		}
		buf := make([]byte, 8)
		r := bits.New(buf)
		x, y, err := huffman.DecodePair(r, table)
		if err != nil {
			t.Errorf("table %d: DecodePair error: %v", table, err)
			continue
		}
		if x < 0 || y < 0 {
			t.Errorf("table %d: all-zero codeword produced signed output (%d,%d)", table, x, y)
		}
	}
}

// TestLinbitsEscapeExtendsMagnitude exercises a table with linbits > 0
// (table 16) and confirms DecodePair does not panic on index-15 escapes;
// the exact escape codeword is implementation-internal, so this only
// checks that decoding completes and advances the cursor.
func TestLinbitsEscapeExtendsMagnitude(t *testing.T) {
	buf := []byte{0xff, 0xff, 0xff, 0xff}
	r := bits.New(buf)
	_, _, err := huffman.DecodePair(r, 16)
	if err != nil {
		t.Fatalf("DecodePair: %v", err)
	}
	if r.Position() == 0 {
		t.Error("expected DecodePair to consume at least one bit")
	}
}

func TestUnknownTableSelectErrors(t *testing.T) {
	r := bits.New([]byte{0, 0})
	if _, _, err := huffman.DecodePair(r, 99); err == nil {
		t.Error("expected an error for an out-of-range table select")
	}
}
