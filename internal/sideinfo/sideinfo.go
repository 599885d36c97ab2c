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

// Package sideinfo decodes the MPEG-1 Layer III side information that
// follows the frame header: 17 bytes for mono, 32 bytes otherwise.
package sideinfo

import (
	"io"

	"github.com/waveformio/mp3dec/internal/bits"
	"github.com/waveformio/mp3dec/internal/consts"
	"github.com/waveformio/mp3dec/internal/frameheader"
)

// BlockType enumerates the window-switched block types. There is no
// "Forbidden" state: block type is only meaningful when WinSwitchFlag is 1.
type BlockType int

const (
	BlockLong              BlockType = 0
	BlockStart             BlockType = 1
	BlockThreeShortWindows BlockType = 2
	BlockEnd               BlockType = 3
)

// ChannelGranuleInfo holds one granule/channel's worth of side information.
type ChannelGranuleInfo struct {
	Part2_3Length     int // 12 bits: main_data bits consumed by scalefactors+Huffman
	BigValues         int // 9 bits
	GlobalGain        int // 8 bits
	ScalefacCompress  int // 4 bits
	WinSwitchFlag     int // 1 bit
	BlockType         BlockType
	MixedBlockFlag    int
	TableSelect       [3]int // 5 bits each; only [0],[1] used when WinSwitchFlag=1
	SubblockGain      [3]int // 3 bits each; only valid when WinSwitchFlag=1
	Region0Count      int    // 4 bits, implicit when WinSwitchFlag=1
	Region1Count      int    // 3 bits, implicit when WinSwitchFlag=1
	Preflag           int
	ScalefacScale     int
	Count1TableSelect int

	// Count1 is not read from the bitstream; it is the index of the first
	// sample in the all-zero region, set once Huffman decoding completes.
	Count1 int
}

// SideInfo is MPEG-1 Layer III side information for one frame.
type SideInfo struct {
	MainDataBegin int       // 9 bits, in bytes
	PrivateBits   int       // 5 bits mono, 3 bits otherwise
	Scfsi         [2][4]int // [ch][group], 1 bit each, long-block granule-1 reuse

	Granule [consts.GranulesPerFrame][2]ChannelGranuleInfo // [gr][ch]
}

// FullReader is the minimal source a side-info read needs.
type FullReader interface {
	ReadFull([]byte) (int, error)
}

// Read decodes the side information immediately following header in source.
func Read(source FullReader, header frameheader.FrameHeader) (*SideInfo, error) {
	nch := header.NumberOfChannels()
	size := header.SideInfoByteLen()
	buf := make([]byte, size)
	n, err := source.ReadFull(buf)
	if n < size {
		if err == io.EOF {
			return nil, &consts.UnexpectedEOF{At: "sideinfo.Read"}
		}
		return nil, err
	}
	r := bits.New(buf)

	si := &SideInfo{}
	si.MainDataBegin = int(r.ReadU(9))
	if header.Mode() == consts.ModeSingleChannel {
		si.PrivateBits = int(r.ReadU(5))
	} else {
		si.PrivateBits = int(r.ReadU(3))
	}
	for ch := 0; ch < nch; ch++ {
		for group := 0; group < 4; group++ {
			si.Scfsi[ch][group] = int(r.ReadU(1))
		}
	}
	for gr := 0; gr < consts.GranulesPerFrame; gr++ {
		for ch := 0; ch < nch; ch++ {
			g := &si.Granule[gr][ch]
			g.Part2_3Length = int(r.ReadU(12))
			g.BigValues = int(r.ReadU(9))
			g.GlobalGain = int(r.ReadU(8))
			g.ScalefacCompress = int(r.ReadU(4))
			g.WinSwitchFlag = int(r.ReadU(1))
			if g.WinSwitchFlag == 1 {
				g.BlockType = BlockType(r.ReadU(2))
				g.MixedBlockFlag = int(r.ReadU(1))
				for region := 0; region < 2; region++ {
					g.TableSelect[region] = int(r.ReadU(5))
				}
				for window := 0; window < 3; window++ {
					g.SubblockGain[window] = int(r.ReadU(3))
				}
				// Region boundaries are implicit for window-switched
				// blocks: region0 always covers the first 36 lines.
				if g.BlockType == BlockThreeShortWindows && g.MixedBlockFlag == 0 {
					g.Region0Count = 8
				} else {
					g.Region0Count = 7
				}
				g.Region1Count = 20 - g.Region0Count
			} else {
				for region := 0; region < 3; region++ {
					g.TableSelect[region] = int(r.ReadU(5))
				}
				g.Region0Count = int(r.ReadU(4))
				g.Region1Count = int(r.ReadU(3))
				g.BlockType = BlockLong
			}
			g.Preflag = int(r.ReadU(1))
			g.ScalefacScale = int(r.ReadU(1))
			g.Count1TableSelect = int(r.ReadU(1))
		}
	}
	return si, nil
}
