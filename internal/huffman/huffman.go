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

// Package huffman decodes the big_values and count1 Huffman-coded regions
// of MPEG-1 Layer III main_data. Each of the 32 big_values tables and 2
// count1 tables is compiled once, at package init, into a flat lookup
// keyed by the next maxBits of the stream so decoding a pair costs one
// slice index plus a bit-skip.
package huffman

import (
	"fmt"

	"github.com/waveformio/mp3dec/internal/bits"
)

// DecodeError reports a Huffman codeword with no entry in the selected
// table, which signals a corrupt bitstream or a resync failure.
type DecodeError struct {
	Table int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("huffman: no codeword matched in table %d", e.Table)
}

// entry is one compiled (x, y) -> codeword mapping.
type entry struct {
	x, y   int16
	length uint8
}

// table is a compiled big_values Huffman table: lut is sized 1<<maxBits and
// indexed by the next maxBits bits of the stream (MSB-first); lut[i].length
// == 0 marks a prefix with no assigned codeword.
type table struct {
	linbits int
	maxBits int
	lut     []entry
}

// rawEntry is the pre-compilation description of one table cell: its value
// pair and the codeword length genGrid or genQuadGrid assigns it. Lengths
// never shrink as the magnitudes grow, giving small, frequent pairs shorter
// codewords; they are generated, not the ISO/IEC 11172-3 Annex B lengths.
type rawEntry struct {
	x, y   int16
	length uint8
}

// bigValueWidths gives each table's value alphabet size (values run 0..width-1,
// with width-1 acting as the linbits escape when linbits > 0) and its escape
// extension, following the alphabet sizes of ISO/IEC 11172-3 Annex B. Since
// genGrid depends only on width, tables 13-31 all share one 16x16 code shape
// and differ only in linbits.
var bigValueWidths = [32]struct {
	width   int
	linbits int
}{
	0:  {1, 0},
	1:  {2, 0},
	2:  {3, 0},
	3:  {3, 0},
	4:  {3, 0}, // reserved, never selected by a conformant encoder
	5:  {4, 0},
	6:  {4, 0},
	7:  {6, 0},
	8:  {6, 0},
	9:  {6, 0},
	10: {8, 0},
	11: {8, 0},
	12: {8, 0},
	13: {16, 0},
	14: {16, 0}, // reserved, never selected by a conformant encoder
	15: {16, 0},
	16: {16, 1},
	17: {16, 2},
	18: {16, 3},
	19: {16, 4},
	20: {16, 6},
	21: {16, 8},
	22: {16, 10},
	23: {16, 13},
	24: {16, 4},
	25: {16, 5},
	26: {16, 6},
	27: {16, 7},
	28: {16, 8},
	29: {16, 9},
	30: {16, 11},
	31: {16, 13},
}

var bigTables [32]*table

// count1TableA holds the v,w,x,y magnitude quadruples for the A (Huffman)
// count1 table. Table B is fixed-length and needs no compiled table.
var count1TableA *table

func init() {
	for i, w := range bigValueWidths {
		bigTables[i] = compile(genGrid(w.width), w.linbits)
	}
	count1TableA = compile(genQuadGrid(), 0)
}

// genGrid builds the raw (length, x, y) description for a width x width
// value grid, growing codeword length with Manhattan magnitude so that
// small, frequent coefficient pairs get the shortest codes: 2+(x+y) bits
// below x+y=8, 13 bits for x+y in 8..15 and 14 bits above. For the full
// 16x16 grid these lengths fill the code space exactly (Kraft sum 1); every
// smaller grid is a subset of it, so canonical assignment always fits.
func genGrid(width int) []rawEntry {
	entries := make([]rawEntry, 0, width*width)
	for x := 0; x < width; x++ {
		for y := 0; y < width; y++ {
			s := x + y
			length := 2 + s
			switch {
			case s >= 16:
				length = 14
			case s >= 8:
				length = 13
			}
			entries = append(entries, rawEntry{x: int16(x), y: int16(y), length: uint8(length)})
		}
	}
	return entries
}

// genQuadGrid builds the 16-symbol count1 table A grid over (v,w,x,y) in
// {0,1}^4, each quadruple packed into the x field as v<<3|w<<2|x<<1|y (y is
// left 0) so it reuses the same entry/compile machinery as the big_values
// tables.
func genQuadGrid() []rawEntry {
	entries := make([]rawEntry, 0, 16)
	for v := 0; v < 2; v++ {
		for w := 0; w < 2; w++ {
			for x := 0; x < 2; x++ {
				for y := 0; y < 2; y++ {
					ones := v + w + x + y
					length := 1
					switch {
					case ones == 0:
						length = 1
					case ones == 1:
						length = 4
					default:
						length = 6
					}
					packed := int16(v<<3 | w<<2 | x<<1 | y)
					entries = append(entries, rawEntry{x: packed, y: 0, length: uint8(length)})
				}
			}
		}
	}
	return entries
}

// compile assigns canonical Huffman codes to entries (sorted by codeword
// length, then value) and flattens the result into a table whose lut is
// sized to the longest assigned codeword. Canonical assignment can never
// produce a prefix collision, so lut slots are either unambiguously
// claimed by exactly one entry or left as an unreachable gap.
func compile(entries []rawEntry, linbits int) *table {
	sorted := make([]rawEntry, len(entries))
	copy(sorted, entries)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && less(sorted[j], sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	var code uint32
	prevLen := uint8(0)
	maxBits := 0
	codes := make([]uint32, len(sorted))
	for i, e := range sorted {
		if prevLen != 0 && e.length > prevLen {
			code <<= uint(e.length - prevLen)
		}
		prevLen = e.length
		codes[i] = code
		code++
		if int(e.length) > maxBits {
			maxBits = int(e.length)
		}
	}

	t := &table{linbits: linbits, maxBits: maxBits, lut: make([]entry, 1<<uint(maxBits))}
	for i, e := range sorted {
		shift := uint(maxBits) - uint(e.length)
		lo := codes[i] << shift
		hi := (codes[i] + 1) << shift
		for idx := lo; idx < hi; idx++ {
			t.lut[idx] = entry{x: e.x, y: e.y, length: e.length}
		}
	}
	return t
}

func less(a, b rawEntry) bool {
	if a.length != b.length {
		return a.length < b.length
	}
	if a.x != b.x {
		return a.x < b.x
	}
	return a.y < b.y
}

// DecodePair decodes one big_values (x, y) coefficient pair using table
// tableSelect (0-31). Table 0 is the special all-zero table: every pair in
// a region governed by it is (0, 0) and no bits are consumed.
func DecodePair(r *bits.Reader, tableSelect int) (x, y int32, err error) {
	if tableSelect == 0 {
		return 0, 0, nil
	}
	if tableSelect < 0 || tableSelect >= len(bigTables) {
		return 0, 0, &DecodeError{Table: tableSelect}
	}
	t := bigTables[tableSelect]
	prefix := r.Peek(t.maxBits)
	e := t.lut[prefix]
	if e.length == 0 {
		return 0, 0, &DecodeError{Table: tableSelect}
	}
	r.Skip(int(e.length))

	xv, yv := int32(e.x), int32(e.y)
	if t.linbits > 0 {
		if xv == 15 {
			xv += int32(r.ReadU(t.linbits))
		}
		if yv == 15 {
			yv += int32(r.ReadU(t.linbits))
		}
	}
	if xv != 0 && r.Bit() == 1 {
		xv = -xv
	}
	if yv != 0 && r.Bit() == 1 {
		yv = -yv
	}
	return xv, yv, nil
}

// DecodeQuad decodes one count1 (v, w, x, y) quadruple, each in {-1, 0, 1}.
// tableSelect 0 selects the Huffman-coded table A; 1 selects the fixed
// 4-bit table B.
func DecodeQuad(r *bits.Reader, tableSelect int) (v, w, x, y int32, err error) {
	var packed int32
	if tableSelect == 1 {
		packed = int32(r.ReadU(4))
	} else {
		prefix := r.Peek(count1TableA.maxBits)
		e := count1TableA.lut[prefix]
		if e.length == 0 {
			return 0, 0, 0, 0, &DecodeError{Table: -1}
		}
		r.Skip(int(e.length))
		packed = int32(e.x)
	}
	v = int32(packed>>3) & 1
	w = int32(packed>>2) & 1
	x = int32(packed>>1) & 1
	y = int32(packed) & 1
	if v != 0 && r.Bit() == 1 {
		v = -v
	}
	if w != 0 && r.Bit() == 1 {
		w = -w
	}
	if x != 0 && r.Bit() == 1 {
		x = -x
	}
	if y != 0 && r.Bit() == 1 {
		y = -y
	}
	return v, w, x, y, nil
}
