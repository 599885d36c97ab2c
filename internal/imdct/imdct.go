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

// Package imdct implements the hybrid-synthesis inverse modified discrete
// cosine transform: 36-point (long blocks, 18 input lines) and 12-point x3
// (short blocks, 6 input lines per window), block-type-dependent windowing
// and overlap-add against the previous block's carried-over half.
package imdct

import "math"

// BlockType mirrors sideinfo.BlockType; duplicated here (rather than
// imported) to keep this package free of a dependency on bitstream framing,
// since the transform itself only cares about the four window shapes.
type BlockType int

const (
	Long              BlockType = 0
	Start             BlockType = 1
	ThreeShortWindows BlockType = 2
	End               BlockType = 3
)

var longWindow [36]float64
var shortWindow [12]float64

func init() {
	for i := range longWindow {
		longWindow[i] = math.Sin(math.Pi / 36 * (float64(i) + 0.5))
	}
	for i := range shortWindow {
		shortWindow[i] = math.Sin(math.Pi / 12 * (float64(i) + 0.5))
	}
}

// Win computes the 36-sample hybrid-synthesis output for one subband's 18
// requantized, (anti-aliased, reordered where applicable) frequency lines
// in, applying the window shape bt calls for and adding the carried
// overlap from the previous block (prevOverlap, 18 samples). It returns the
// 36 samples to add into the synthesis input and the 18-sample overlap to
// carry into the next block.
func Win(in [18]float64, bt BlockType, prevOverlap [18]float64) (out [36]float64, nextOverlap [18]float64) {
	var raw [36]float64
	if bt == ThreeShortWindows {
		// Three independent 12-point IMDCTs, each windowed and placed with
		// a 6-sample stagger, per the short-block layout.
		var blocks [3][12]float64
		for w := 0; w < 3; w++ {
			var six [6]float64
			for i := 0; i < 6; i++ {
				six[i] = in[3*i+w]
			}
			blocks[w] = imdct12(six)
			for i := range blocks[w] {
				blocks[w][i] *= shortWindow[i]
			}
		}
		for i := 0; i < 6; i++ {
			raw[i] = 0
		}
		for w := 0; w < 3; w++ {
			base := 6 + 6*w
			for i := 0; i < 12; i++ {
				raw[base+i] += blocks[w][i]
			}
		}
	} else {
		eighteen := imdct36(in)
		for i := range eighteen {
			raw[i] = eighteen[i] * windowFor(bt, i)
		}
	}

	for i := 0; i < 18; i++ {
		out[i] = raw[i] + prevOverlap[i]
		out[18+i] = raw[18+i]
		nextOverlap[i] = raw[18+i]
	}
	return out, nextOverlap
}

func windowFor(bt BlockType, i int) float64 {
	switch bt {
	case Start:
		if i < 18 {
			return longWindow[i]
		}
		switch {
		case i < 24:
			return 1
		case i < 30:
			return math.Sin(math.Pi / 12 * (float64(i-18) + 0.5))
		default:
			return 0
		}
	case End:
		switch {
		case i < 6:
			return 0
		case i < 12:
			return math.Sin(math.Pi / 12 * (float64(i-6) + 0.5))
		case i < 18:
			return 1
		default:
			return longWindow[i]
		}
	default: // Long
		return longWindow[i]
	}
}

// imdct36 computes the 36-point IMDCT of an 18-line input, following the
// direct-sum definition from the standard rather than a fast factorization:
// out[i] = sum_k in[k] * cos(pi/72 * (2i+1+18) * (2k+1)), for i in [0,36).
func imdct36(in [18]float64) [36]float64 {
	var out [36]float64
	for i := 0; i < 36; i++ {
		var sum float64
		for k := 0; k < 18; k++ {
			sum += in[k] * math.Cos(math.Pi/72*float64((2*i+1+18)*(2*k+1)))
		}
		out[i] = sum
	}
	return out
}

// imdct12 computes the 12-point IMDCT of a 6-line input with the same
// direct-sum definition, scaled for the short-block subdivision.
func imdct12(in [6]float64) [12]float64 {
	var out [12]float64
	for i := 0; i < 12; i++ {
		var sum float64
		for k := 0; k < 6; k++ {
			sum += in[k] * math.Cos(math.Pi/24*float64((2*i+1+6)*(2*k+1)))
		}
		out[i] = sum
	}
	return out
}
