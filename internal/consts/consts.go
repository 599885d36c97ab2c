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

// Package consts holds the fixed enums and lookup tables shared across the
// decoder: MPEG header enums, per-sample-rate scalefactor band indices, the
// preflag amplification table and the scalefactor-size lookup.
package consts

import "fmt"

// Version is the MPEG version ID read from the frame header.
type Version int

const (
	Version2_5      Version = 0
	VersionReserved Version = 1
	Version2        Version = 2
	Version1        Version = 3
)

// Layer is the MPEG layer read from the frame header.
type Layer int

const (
	LayerReserved Layer = 0
	Layer3        Layer = 1
	Layer2        Layer = 2
	Layer1        Layer = 3
)

// Mode is the channel mode read from the frame header.
type Mode int

const (
	ModeStereo        Mode = 0
	ModeJointStereo   Mode = 1
	ModeDualChannel   Mode = 2
	ModeSingleChannel Mode = 3
)

func (m Mode) String() string {
	switch m {
	case ModeStereo:
		return "stereo"
	case ModeJointStereo:
		return "joint_stereo"
	case ModeDualChannel:
		return "dual_channel"
	case ModeSingleChannel:
		return "mono"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// SamplingFrequency is the sample-rate index read from the frame header.
type SamplingFrequency int

const (
	SampleRate44100 SamplingFrequency = 0
	SampleRate48000 SamplingFrequency = 1
	SampleRate32000 SamplingFrequency = 2
)

// Int returns the sample rate in Hz for an MPEG-1 stream.
func (s SamplingFrequency) Int() int {
	return SampleRates[s]
}

// SampleRates maps a SamplingFrequency index to Hz, MPEG-1 only.
var SampleRates = [3]int{44100, 48000, 32000}

// SamplesPerGranule is the number of frequency lines (and PCM samples)
// produced per granule per channel.
const SamplesPerGranule = 576

// GranulesPerFrame is always 2 for MPEG-1 Layer III.
const GranulesPerFrame = 2

// UnexpectedEOF is returned when the bitstream runs out of bytes in the
// middle of a header, side-info or main-data read.
type UnexpectedEOF struct {
	At string
}

func (e *UnexpectedEOF) Error() string {
	return fmt.Sprintf("mp3: unexpected EOF at %s", e.At)
}

// UnsupportedFormat is returned when a frame-synced header decodes to an
// MPEG version or layer this decoder does not implement (anything other
// than MPEG-1 Layer III). Unlike a sync mismatch, this is fatal: frame
// sync alone does not mean the payload that follows is one this decoder
// can parse, so scanning must stop rather than keep shifting for another
// candidate.
type UnsupportedFormat struct {
	Reason string
}

func (e *UnsupportedFormat) Error() string {
	return fmt.Sprintf("mp3: unsupported format: %s", e.Reason)
}

// Layer3Bitrates maps a bitrate index (1..14) to bits per second. Index 0
// (free format) and 15 (reserved) are rejected by the header parser before
// this table is consulted.
var Layer3Bitrates = [15]int{
	0, 32000, 40000, 48000, 56000, 64000, 80000, 96000,
	112000, 128000, 160000, 192000, 224000, 256000, 320000,
}

// ScalefacCompressSizes maps scalefac_compress (4 bits) to (slen1, slen2),
// the bit widths of scalefactors read for bands 0-10 and 11-20 (long
// blocks) or bands 0-5/6-11 (short blocks, window-major).
var ScalefacCompressSizes = [16][2]int{
	{0, 0}, {0, 1}, {0, 2}, {0, 3}, {3, 0}, {1, 1}, {1, 2}, {1, 3},
	{2, 1}, {2, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}, {4, 2}, {4, 3},
}

// Pretab is the high-frequency preemphasis table added to scalefac_l during
// requantization when the side info's preflag bit is set. It has 21 entries;
// band 21 is always 0 and is never indexed here (see frame.pretabFor).
var Pretab = [21]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 3, 3, 3, 2,
}

// ScalefacBandIndicesLong gives, per sample rate, the 23 boundaries of the
// 22 long-block scalefactor bands (the last boundary is 576).
var ScalefacBandIndicesLong = [3][23]int{
	{0, 4, 8, 12, 16, 20, 24, 30, 36, 44, 52, 62, 74, 90, 110, 134, 162, 196, 238, 288, 342, 418, 576},   // 44100 Hz
	{0, 4, 8, 12, 16, 20, 24, 30, 36, 42, 50, 60, 72, 88, 106, 128, 156, 190, 230, 276, 330, 384, 576},   // 48000 Hz
	{0, 4, 8, 12, 16, 20, 24, 30, 36, 44, 54, 66, 82, 102, 126, 156, 194, 240, 296, 364, 448, 550, 576}, // 32000 Hz
}

// ScalefacBandIndicesShort gives, per sample rate, the 14 boundaries of the
// 13 short-block scalefactor bands, in per-window sample units (the last
// boundary, 192, times 3 windows equals 576).
var ScalefacBandIndicesShort = [3][14]int{
	{0, 4, 8, 12, 16, 22, 30, 40, 52, 66, 84, 106, 136, 192}, // 44100 Hz
	{0, 4, 8, 12, 16, 22, 28, 38, 50, 64, 80, 100, 126, 192}, // 48000 Hz
	{0, 4, 8, 12, 16, 22, 30, 42, 58, 78, 104, 138, 180, 192}, // 32000 Hz
}
