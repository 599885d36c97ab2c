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

// Package maindata reads the bit-reservoir-resolved main_data region of an
// MPEG-1 Layer III frame: scalefactors followed by Huffman-coded frequency
// lines for every granule and channel.
package maindata

import (
	"fmt"
	"io"

	"github.com/waveformio/mp3dec/internal/bits"
	"github.com/waveformio/mp3dec/internal/consts"
	"github.com/waveformio/mp3dec/internal/frameheader"
	"github.com/waveformio/mp3dec/internal/huffman"
	"github.com/waveformio/mp3dec/internal/reservoir"
	"github.com/waveformio/mp3dec/internal/sideinfo"
)

const (
	numLongSFB  = 21
	numShortSFB = 12
)

// scfsiGroupBands maps an scfsi group (0-3) to the [start, end) long-block
// scalefactor band range it governs when a granule-1 reuse flag is set.
var scfsiGroupBands = [4][2]int{{0, 6}, {6, 11}, {11, 16}, {16, 21}}

// GranuleData holds one granule/channel's decoded scalefactors and the
// signed, not-yet-requantized frequency-line magnitudes Huffman decoding
// produced.
type GranuleData struct {
	ScalefacL [numLongSFB]int
	ScalefacS [3][numShortSFB]int
	Is        [consts.SamplesPerGranule]int32
}

// MainData is the decoded main_data payload for one frame.
type MainData struct {
	Granule [consts.GranulesPerFrame][2]GranuleData
}

// FullReader is the minimal source a main-data read needs.
type FullReader interface {
	ReadFull([]byte) (int, error)
}

// Read consumes this frame's main_data bytes from source, resolves them
// against the bit reservoir using si.MainDataBegin, and decodes every
// granule/channel. If the reservoir does not yet hold enough history
// (possible only near the start of a stream), underflowed reports true and
// md is nil: the caller should emit silence for this frame instead.
//
// diag carries the first non-fatal decode anomaly encountered (currently
// only a Huffman codeword with no table entry): every line of the
// granule/channel that hit it is zeroed, including lines decoded before the
// error, and decoding continues with the next granule/channel, but the
// anomaly is reported rather than silently discarded so a caller can log
// or count it.
func Read(source FullReader, res *reservoir.Reservoir, header frameheader.FrameHeader, si *sideinfo.SideInfo) (md *MainData, underflowed bool, diag error, err error) {
	crcLen := 0
	if header.ProtectionBit() == 0 {
		crcLen = 2
	}
	size := header.FrameByteLen() - 4 - crcLen - header.SideInfoByteLen()
	if size < 0 {
		size = 0
	}
	frameBytes := make([]byte, size)
	n, rerr := source.ReadFull(frameBytes)
	if n < size {
		if rerr == nil || rerr == io.EOF {
			rerr = &consts.UnexpectedEOF{At: "maindata.Read"}
		}
		return nil, false, nil, rerr
	}

	availableBefore := res.Len()
	r, underflow, _ := res.Resolve(si.MainDataBegin, frameBytes)
	res.Commit(frameBytes)
	if underflow {
		return nil, true, &ReservoirUnderflowError{MainDataBegin: si.MainDataBegin, Available: availableBefore}, nil
	}

	md = &MainData{}
	sr := int(header.SamplingFrequency())
	for gr := 0; gr < consts.GranulesPerFrame; gr++ {
		for ch := 0; ch < header.NumberOfChannels(); ch++ {
			g := &si.Granule[gr][ch]
			gd := &md.Granule[gr][ch]
			start := r.Position()
			readScalefactors(r, si, md, gr, ch, sr, gd)
			if herr := decodeHuffman(r, g, sr, start+g.Part2_3Length, gd); herr != nil && diag == nil {
				diag = herr
			}
			r.Seek(start + g.Part2_3Length)
		}
	}
	return md, false, diag, nil
}

// ReservoirUnderflowError reports a frame whose main_data_begin reaches
// further back than the reservoir currently holds (possible only near the
// start of a stream, or after a seek). The affected frame is decoded as
// silence rather than garbage; see Read.
type ReservoirUnderflowError struct {
	MainDataBegin int
	Available     int
}

func (e *ReservoirUnderflowError) Error() string {
	return fmt.Sprintf("maindata: bit reservoir underflow: main_data_begin=%d available=%d", e.MainDataBegin, e.Available)
}

func readScalefactors(r *bits.Reader, si *sideinfo.SideInfo, md *MainData, gr, ch, sr int, gd *GranuleData) {
	g := &si.Granule[gr][ch]
	slen1, slen2 := consts.ScalefacCompressSizes[g.ScalefacCompress][0], consts.ScalefacCompressSizes[g.ScalefacCompress][1]

	isShort := g.WinSwitchFlag == 1 && g.BlockType == sideinfo.BlockThreeShortWindows
	if !isShort {
		for band := 0; band < numLongSFB; band++ {
			width := slen1
			if band >= 11 {
				width = slen2
			}
			if gr == 1 && si.Scfsi[ch][groupOf(band)] == 1 {
				gd.ScalefacL[band] = md.Granule[0][ch].ScalefacL[band]
				continue
			}
			gd.ScalefacL[band] = int(r.ReadU(width))
		}
		return
	}

	if g.MixedBlockFlag == 1 {
		for band := 0; band < 8; band++ {
			width := slen1
			if band >= 11 {
				width = slen2
			}
			gd.ScalefacL[band] = int(r.ReadU(width))
		}
		for window := 0; window < 3; window++ {
			for band := 3; band < numShortSFB; band++ {
				width := slen1
				if band >= 6 {
					width = slen2
				}
				gd.ScalefacS[window][band] = int(r.ReadU(width))
			}
		}
		return
	}

	for window := 0; window < 3; window++ {
		for band := 0; band < numShortSFB; band++ {
			width := slen1
			if band >= 6 {
				width = slen2
			}
			gd.ScalefacS[window][band] = int(r.ReadU(width))
		}
	}
}

func groupOf(band int) int {
	for g, rng := range scfsiGroupBands {
		if band >= rng[0] && band < rng[1] {
			return g
		}
	}
	return 3
}

// HuffmanDecodeError reports a Huffman codeword with no matching entry in
// the selected table: a corrupt bitstream or a resync failure. Decoding
// stops for this granule/channel and all of its lines are zeroed, but the
// frame and stream continue; see Read.
type HuffmanDecodeError struct {
	Table int
}

func (e *HuffmanDecodeError) Error() string {
	return fmt.Sprintf("maindata: invalid huffman codeword in table %d", e.Table)
}

// decodeHuffman decodes big_values region pairs followed by count1
// quadruples until the granule's bit budget (endBit, exclusive) is
// exhausted or all 576 lines are filled. Remaining lines stay zero. On a
// decode error it stops, zeroes every line of gd and returns the error.
func decodeHuffman(r *bits.Reader, g *sideinfo.ChannelGranuleInfo, sr int, endBit int, gd *GranuleData) error {
	bigValuesTotal := g.BigValues * 2
	if bigValuesTotal > consts.SamplesPerGranule {
		bigValuesTotal = consts.SamplesPerGranule
	}

	r0End, r1End := regionBoundaries(g, sr, bigValuesTotal)

	idx := 0
	for idx < bigValuesTotal && r.Position() < endBit {
		table := g.TableSelect[0]
		switch {
		case idx >= r1End:
			table = g.TableSelect[2]
		case idx >= r0End:
			table = g.TableSelect[1]
		}
		x, y, err := huffman.DecodePair(r, table)
		if err != nil {
			gd.Is = [consts.SamplesPerGranule]int32{}
			return &HuffmanDecodeError{Table: table}
		}
		gd.Is[idx] = x
		if idx+1 < consts.SamplesPerGranule {
			gd.Is[idx+1] = y
		}
		idx += 2
	}

	for idx+4 <= consts.SamplesPerGranule && r.Position() < endBit {
		v, w, x, y, err := huffman.DecodeQuad(r, g.Count1TableSelect)
		if err != nil {
			gd.Is = [consts.SamplesPerGranule]int32{}
			return &HuffmanDecodeError{Table: g.Count1TableSelect}
		}
		gd.Is[idx] = v
		gd.Is[idx+1] = w
		gd.Is[idx+2] = x
		gd.Is[idx+3] = y
		idx += 4
	}
	g.Count1 = idx
	return nil
}

// regionBoundaries translates region0Count/region1Count (counts of
// scalefactor bands) into frequency-line indices marking where
// TableSelect[1] and TableSelect[2] take over from TableSelect[0].
//
// A pure (non-mixed) short-block granule has no long-block scalefactor
// bands to count regions against, so region0Count/region1Count are
// meaningless here: region_1_start is hardcoded to 36 and there is no
// region 2 at all.
func regionBoundaries(g *sideinfo.ChannelGranuleInfo, sr int, bigValuesTotal int) (r0End, r1End int) {
	if g.WinSwitchFlag == 1 && g.BlockType == sideinfo.BlockThreeShortWindows {
		r0End = 36
		if r0End > bigValuesTotal {
			r0End = bigValuesTotal
		}
		return r0End, bigValuesTotal
	}

	bands := consts.ScalefacBandIndicesLong[sr]
	r0Band := g.Region0Count + 1
	r1Band := r0Band + g.Region1Count + 1
	if r0Band >= len(bands) {
		r0Band = len(bands) - 1
	}
	if r1Band >= len(bands) {
		r1Band = len(bands) - 1
	}
	r0End = bands[r0Band]
	r1End = bands[r1Band]
	if r0End > bigValuesTotal {
		r0End = bigValuesTotal
	}
	if r1End > bigValuesTotal {
		r1End = bigValuesTotal
	}
	return r0End, r1End
}
