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

// Package frameheader parses and validates the 32-bit MPEG-1 Layer III
// frame header and scans a byte stream for frame sync.
package frameheader

import (
	"fmt"
	"io"

	"github.com/waveformio/mp3dec/internal/consts"
)

// FrameHeader is an MPEG1 Layer 1-3 frame header, packed as the raw 32 bits
// read from the stream (sync word included).
type FrameHeader uint32

// FullReader is the minimal source a header read needs.
type FullReader interface {
	ReadFull([]byte) (int, error)
}

// ID returns the MPEG version ID stored in bits 20,19.
func (h FrameHeader) ID() consts.Version {
	return consts.Version((h & 0x00180000) >> 19)
}

// Layer returns the MPEG layer stored in bits 18,17.
func (h FrameHeader) Layer() consts.Layer {
	return consts.Layer((h & 0x00060000) >> 17)
}

// ProtectionBit returns the CRC protection bit stored in bit 16. A value of
// 0 means a 16-bit CRC follows the header.
func (h FrameHeader) ProtectionBit() int {
	return int(h&0x00010000) >> 16
}

// BitrateIndex returns the bitrate index stored in bits 15,12.
func (h FrameHeader) BitrateIndex() int {
	return int(h&0x0000f000) >> 12
}

// SamplingFrequency returns the sample-rate index stored in bits 11,10.
func (h FrameHeader) SamplingFrequency() consts.SamplingFrequency {
	return consts.SamplingFrequency(int(h&0x00000c00) >> 10)
}

// SamplingFrequencyValue returns the sample rate in Hz.
func (h FrameHeader) SamplingFrequencyValue() int {
	return h.SamplingFrequency().Int()
}

// PaddingBit returns the padding bit stored in bit 9.
func (h FrameHeader) PaddingBit() int {
	return int(h&0x00000200) >> 9
}

// PrivateBit returns the private bit stored in bit 8.
func (h FrameHeader) PrivateBit() int {
	return int(h&0x00000100) >> 8
}

// Mode returns the channel mode stored in bits 7,6.
func (h FrameHeader) Mode() consts.Mode {
	return consts.Mode((h & 0x000000c0) >> 6)
}

// ModeExtension returns the 2-bit mode_extension field, meaningful only in
// JointStereo: the high bit selects MS-stereo, the low bit intensity-stereo.
func (h FrameHeader) ModeExtension() int {
	return int(h&0x00000030) >> 4
}

// Copyright returns the copyright bit stored in bit 3.
func (h FrameHeader) Copyright() int {
	return int(h&0x00000008) >> 3
}

// OriginalOrCopy returns the original/copy bit stored in bit 2.
func (h FrameHeader) OriginalOrCopy() int {
	return int(h&0x00000004) >> 2
}

// Emphasis returns the 2-bit emphasis field stored in bits 1,0.
func (h FrameHeader) Emphasis() int {
	return int(h & 0x00000003)
}

// UseMSStereo reports whether mode is JointStereo with the MS-stereo bit set.
func (h FrameHeader) UseMSStereo() bool {
	return h.Mode() == consts.ModeJointStereo && h.ModeExtension()&0x2 != 0
}

// UseIntensityStereo reports whether mode is JointStereo with the
// intensity-stereo bit set.
func (h FrameHeader) UseIntensityStereo() bool {
	return h.Mode() == consts.ModeJointStereo && h.ModeExtension()&0x1 != 0
}

// NumberOfChannels returns 1 for mono, 2 otherwise.
func (h FrameHeader) NumberOfChannels() int {
	if h.Mode() == consts.ModeSingleChannel {
		return 1
	}
	return 2
}

// Granules is always 2 for MPEG-1 Layer III.
func (h FrameHeader) Granules() int {
	return consts.GranulesPerFrame
}

// IsValid reports whether the header decodes to a supported MPEG-1 Layer
// III configuration: sync present, version 1, layer 3, a real bitrate and
// sample-rate index, and a non-reserved emphasis.
func (h FrameHeader) IsValid() bool {
	return h.isSyncCandidate() && h.ID() == consts.Version1 && h.Layer() == consts.Layer3
}

// isSyncCandidate reports whether h has frame sync and the fields that are
// safe to judge before knowing which MPEG version/layer this is: a real
// bitrate index and sample-rate index, and a non-reserved emphasis. It
// deliberately does NOT check ID/Layer, so that Read's resync scan can use
// it to look for the next plausible sync word without silently accepting
// (or endlessly skipping past) a well-formed MPEG-2/Layer I/II header —
// that distinction is judged once, fatally, after sync is found.
func (h FrameHeader) isSyncCandidate() bool {
	const sync = 0xffe00000
	if h&sync != sync {
		return false
	}
	if h.BitrateIndex() == 0 || h.BitrateIndex() == 15 {
		return false
	}
	if h.SamplingFrequency() == 3 {
		return false
	}
	if h.Emphasis() == 2 {
		return false
	}
	return true
}

// FrameByteLen returns the total byte length of this frame, header and CRC
// included: floor(144*bitrate/samplerate) + padding.
func (h FrameHeader) FrameByteLen() int {
	return (144*consts.Layer3Bitrates[h.BitrateIndex()])/h.SamplingFrequencyValue() + h.PaddingBit()
}

// SideInfoByteLen returns the byte length of the side information that
// immediately follows the header (and CRC, if present).
func (h FrameHeader) SideInfoByteLen() int {
	if h.NumberOfChannels() == 1 {
		return 17
	}
	return 32
}

// Read scans source for the next valid frame header starting at position,
// returning the header and the byte offset it was found at. The sync scan
// (isSyncCandidate) skips candidates with a free-format or reserved bitrate
// index, a reserved sample-rate index or a reserved emphasis; a synced
// header that is not MPEG-1 Layer III returns *consts.UnsupportedFormat.
func Read(source FullReader, position int64) (h FrameHeader, startPosition int64, err error) {
	pos := position
	buf := make([]byte, 4)
	n, rerr := source.ReadFull(buf)
	if n < 4 {
		if rerr == io.EOF && n == 0 {
			return 0, 0, io.EOF
		}
		return 0, 0, &consts.UnexpectedEOF{At: "frameheader.Read"}
	}

	b1, b2, b3, b4 := uint32(buf[0]), uint32(buf[1]), uint32(buf[2]), uint32(buf[3])
	cand := FrameHeader(b1<<24 | b2<<16 | b3<<8 | b4)
	for !cand.isSyncCandidate() {
		b1, b2, b3 = b2, b3, b4
		var b [1]byte
		if n, err := source.ReadFull(b[:]); n < 1 {
			if err == io.EOF {
				return 0, 0, &consts.UnexpectedEOF{At: "frameheader.Read (resync)"}
			}
			return 0, 0, err
		}
		b4 = uint32(b[0])
		cand = FrameHeader(b1<<24 | b2<<16 | b3<<8 | b4)
		pos++
	}
	if cand.ID() != consts.Version1 || cand.Layer() != consts.Layer3 {
		return 0, 0, &consts.UnsupportedFormat{
			Reason: fmt.Sprintf("version=%v layer=%v at byte offset %d (only MPEG-1 Layer III is supported)", cand.ID(), cand.Layer(), pos),
		}
	}
	return cand, pos, nil
}
