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

// Package frame decodes one MPEG-1 Layer III frame end to end: header,
// side information and main data, followed by the full synthesis
// pipeline (requantize, reorder, stereo processing, anti-alias, hybrid
// synthesis, frequency inversion, polyphase synthesis) into PCM.
package frame

import (
	"fmt"
	"math"

	"github.com/waveformio/mp3dec/internal/consts"
	"github.com/waveformio/mp3dec/internal/frameheader"
	"github.com/waveformio/mp3dec/internal/imdct"
	"github.com/waveformio/mp3dec/internal/maindata"
	"github.com/waveformio/mp3dec/internal/reservoir"
	"github.com/waveformio/mp3dec/internal/sideinfo"
)

// powtab34 memoizes x^(4/3) for every magnitude a 15-bit Huffman decode (plus
// linbits escape) can produce, avoiding a math.Pow call per coefficient.
var powtab34 = make([]float64, 8207)

func init() {
	for i := range powtab34 {
		powtab34[i] = math.Pow(float64(i), 4.0/3.0)
	}
}

var isRatios = [6]float64{0, 0.267949, 0.577350, 1, 1.732051, 3.732051}

// cs, ca are the eight butterfly coefficients used by the anti-alias
// stage, one pair per boundary sample between adjacent subbands.
var (
	cs = [8]float64{0.857493, 0.881742, 0.949629, 0.983315, 0.995518, 0.999161, 0.999899, 0.999993}
	ca = [8]float64{-0.514496, -0.471732, -0.313377, -0.181913, -0.094574, -0.040966, -0.014199, -0.003700}
)

// Frame holds one decoded MPEG-1 Layer III frame's state plus the carried
// overlap-add and polyphase-filter history a decoder must thread from one
// frame to the next.
type Frame struct {
	header   frameheader.FrameHeader
	sideInfo *sideinfo.SideInfo
	mainData *maindata.MainData

	underflowed bool
	diag        error // non-fatal anomaly from maindata.Read, if any; see Diagnostic

	xr      [consts.GranulesPerFrame][2][consts.SamplesPerGranule]float64
	overlap [2][32][18]float64
	vVec    [2][1024]float64
}

// FullReader is the minimal source a frame read needs.
type FullReader interface {
	ReadFull([]byte) (int, error)
}

func readCRC(source FullReader) error {
	buf := make([]byte, 2)
	if n, err := source.ReadFull(buf); n < 2 {
		return fmt.Errorf("mp3: error reading CRC: %w", err)
	}
	return nil
}

// Read parses the next frame from source starting at position. prev carries
// overlap-add and polyphase-filter state forward from the previous frame,
// or nil for the first frame of a stream. res is the decoder's shared bit
// reservoir.
func Read(source FullReader, position int64, res *reservoir.Reservoir, prev *Frame) (fr *Frame, startPosition int64, err error) {
	h, pos, err := frameheader.Read(source, position)
	if err != nil {
		return nil, 0, err
	}
	if h.ProtectionBit() == 0 {
		if err := readCRC(source); err != nil {
			return nil, 0, err
		}
	}

	si, err := sideinfo.Read(source, h)
	if err != nil {
		return nil, 0, err
	}

	md, underflowed, diag, err := maindata.Read(source, res, h, si)
	if err != nil {
		return nil, 0, err
	}

	nf := &Frame{header: h, sideInfo: si, mainData: md, underflowed: underflowed, diag: diag}
	if prev != nil {
		nf.overlap = prev.overlap
		nf.vVec = prev.vVec
	}
	return nf, pos, nil
}

// SamplingFrequency returns the frame's sample rate in Hz.
func (f *Frame) SamplingFrequency() int {
	return f.header.SamplingFrequencyValue()
}

// NumberOfChannels returns 1 for mono, 2 for any stereo mode.
func (f *Frame) NumberOfChannels() int {
	return f.header.NumberOfChannels()
}

// BytesPerFrame returns the PCM byte length Decode produces: 2 granules of
// 576 samples, 2 bytes/sample, times the channel count. Unlike many
// decoders this never forces stereo output for a mono source.
func (f *Frame) BytesPerFrame() int {
	return consts.GranulesPerFrame * consts.SamplesPerGranule * 2 * f.header.NumberOfChannels()
}

// Diagnostic returns the first non-fatal decode anomaly maindata.Read
// reported for this frame (a reservoir underflow or an unmatched Huffman
// codeword), or nil if none occurred. Decode already reflects the
// anomaly's recovery (silence for the affected granule/channel); this
// exists so a caller can log or count it instead of it passing silently.
func (f *Frame) Diagnostic() error {
	return f.diag
}

// Decode runs the full synthesis pipeline and returns interleaved 16-bit
// PCM. If the frame's main data underflowed the bit reservoir (only
// possible near the start of a stream), it returns silence instead of
// decoding garbage.
func (f *Frame) Decode() []byte {
	out := make([]byte, f.BytesPerFrame())
	if f.underflowed {
		return out
	}

	nch := f.header.NumberOfChannels()
	sfBandLong, sfBandShort := f.sfBandIndices()
	for gr := 0; gr < consts.GranulesPerFrame; gr++ {
		for ch := 0; ch < nch; ch++ {
			f.requantize(gr, ch, sfBandLong, sfBandShort)
			f.reorder(gr, ch, sfBandShort)
		}
		f.stereo(gr, sfBandLong, sfBandShort)
		for ch := 0; ch < nch; ch++ {
			f.antialias(gr, ch)
			f.hybridSynthesis(gr, ch)
			f.frequencyInversion(gr, ch)
			granuleOffset := gr * consts.SamplesPerGranule * 2 * nch
			f.subbandSynthesis(gr, ch, nch, out[granuleOffset:])
		}
	}
	return out
}

func (f *Frame) sfBandIndices() (long [23]int, short [14]int) {
	sr := int(f.header.SamplingFrequency())
	return consts.ScalefacBandIndicesLong[sr], consts.ScalefacBandIndicesShort[sr]
}

func pow34(v int32) float64 {
	if v < 0 {
		return -powtab34[-v]
	}
	return powtab34[v]
}

func (f *Frame) requantizeOne(gr, ch, pos int, scalefac int, scalefacScale, pretab, globalGain int, subblockGain int, short bool) {
	sfMult := 0.5
	if scalefacScale != 0 {
		sfMult = 1
	}
	var idx float64
	if short {
		idx = -(sfMult * float64(scalefac)) + 0.25*(float64(globalGain)-210-8*float64(subblockGain))
	} else {
		pfxPt := float64(pretab)
		idx = -(sfMult*float64(scalefac) + sfMult*pfxPt) + 0.25*(float64(globalGain)-210)
	}
	mult := math.Pow(2, idx)
	f.xr[gr][ch][pos] = mult * pow34(f.mainData.Granule[gr][ch].Is[pos])
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// pretabFor returns the preemphasis amplification for long-block band sfb;
// band 21 has none.
func pretabFor(sfb int) int {
	if sfb >= len(consts.Pretab) {
		return 0
	}
	return consts.Pretab[sfb]
}

func (f *Frame) requantize(gr, ch int, sfLong [23]int, sfShort [14]int) {
	g := &f.sideInfo.Granule[gr][ch]
	gd := &f.mainData.Granule[gr][ch]
	limit := g.Count1
	if limit == 0 {
		limit = consts.SamplesPerGranule
	}

	isShort := g.WinSwitchFlag == 1 && g.BlockType == sideinfo.BlockThreeShortWindows
	if !isShort {
		sfb := 0
		nextSfb := sfLong[sfb+1]
		for i := 0; i < limit; i++ {
			if i == nextSfb {
				sfb++
				nextSfb = sfLong[sfb+1]
			}
			f.requantizeOne(gr, ch, i, gd.ScalefacL[minInt(sfb, 20)], g.ScalefacScale, g.Preflag*pretabFor(sfb), g.GlobalGain, 0, false)
		}
		return
	}

	start := 0
	sfbStart := 0
	if g.MixedBlockFlag != 0 {
		sfb := 0
		nextSfb := sfLong[sfb+1]
		for i := 0; i < 36 && i < limit; i++ {
			if i == nextSfb {
				sfb++
				nextSfb = sfLong[sfb+1]
			}
			f.requantizeOne(gr, ch, i, gd.ScalefacL[minInt(sfb, 20)], g.ScalefacScale, g.Preflag*pretabFor(sfb), g.GlobalGain, 0, false)
		}
		start = 36
		sfbStart = 3
	}

	sfb := sfbStart
	if sfb >= 12 {
		return
	}
	nextSfb := sfShort[sfb+1] * 3
	winLen := sfShort[sfb+1] - sfShort[sfb]
	for i := start; i < limit; {
		if i == nextSfb {
			sfb++
			if sfb >= 12 {
				break
			}
			nextSfb = sfShort[sfb+1] * 3
			winLen = sfShort[sfb+1] - sfShort[sfb]
		}
		for win := 0; win < 3 && i < limit; win++ {
			for j := 0; j < winLen && i < limit; j++ {
				f.requantizeOne(gr, ch, i, gd.ScalefacS[win][minInt(sfb, 11)], g.ScalefacScale, 0, g.GlobalGain, g.SubblockGain[win], true)
				i++
			}
		}
	}
}

// reorder rearranges a short-block granule's lines, which the bitstream
// stores window-major within each scalefactor band (all of window 0, then
// window 1, then window 2), into window-interleaved order: line j of window
// w moves to 3*j+w within the band, the layout from which imdct.Win reads
// its three 6-line windows.
func (f *Frame) reorder(gr, ch int, sfShort [14]int) {
	g := &f.sideInfo.Granule[gr][ch]
	if !(g.WinSwitchFlag == 1 && g.BlockType == sideinfo.BlockThreeShortWindows) {
		return
	}
	xr := &f.xr[gr][ch]
	limit := g.Count1
	if limit == 0 {
		limit = consts.SamplesPerGranule
	}

	sfbStart := 0
	i := 0
	if g.MixedBlockFlag != 0 {
		sfbStart = 3
		i = 36
	}

	var re [consts.SamplesPerGranule]float64
	sfb := sfbStart
	for sfb < 12 && i < limit {
		winLen := sfShort[sfb+1] - sfShort[sfb]
		base := 3 * sfShort[sfb]
		for win := 0; win < 3 && i < limit; win++ {
			for j := 0; j < winLen && i < limit; j++ {
				re[j*3+win] = xr[i]
				i++
			}
		}
		copy(xr[base:base+3*winLen], re[:3*winLen])
		sfb++
	}
}

func (f *Frame) stereo(gr int, sfLong [23]int, sfShort [14]int) {
	si := f.sideInfo
	if f.header.UseMSStereo() {
		maxPos := si.Granule[gr][1].Count1
		if si.Granule[gr][0].Count1 > maxPos {
			maxPos = si.Granule[gr][0].Count1
		}
		if maxPos == 0 {
			maxPos = consts.SamplesPerGranule
		}
		const invSqrt2 = math.Sqrt2 / 2
		for i := 0; i < maxPos; i++ {
			l := f.xr[gr][0][i]
			r := f.xr[gr][1][i]
			f.xr[gr][0][i] = (l + r) * invSqrt2
			f.xr[gr][1][i] = (l - r) * invSqrt2
		}
	}

	if f.header.UseIntensityStereo() {
		g0 := &si.Granule[gr][0]
		count1R := si.Granule[gr][1].Count1
		isShort := g0.WinSwitchFlag == 1 && g0.BlockType == sideinfo.BlockThreeShortWindows
		if isShort {
			sfbStart := 0
			if g0.MixedBlockFlag != 0 {
				for sfb := 0; sfb < 8; sfb++ {
					if sfLong[sfb] >= count1R {
						f.stereoIntensityLong(gr, sfb, sfLong)
					}
				}
				sfbStart = 3
			}
			for sfb := sfbStart; sfb < 12; sfb++ {
				if sfShort[sfb]*3 >= count1R {
					f.stereoIntensityShort(gr, sfb, sfShort)
				}
			}
		} else {
			for sfb := 0; sfb < 21; sfb++ {
				if sfLong[sfb] >= count1R {
					f.stereoIntensityLong(gr, sfb, sfLong)
				}
			}
		}
	}
}

func (f *Frame) stereoIntensityLong(gr, sfb int, sfLong [23]int) {
	isPos := f.mainData.Granule[gr][0].ScalefacL[minInt(sfb, 20)]
	if isPos >= 7 {
		return
	}
	start, stop := sfLong[sfb], sfLong[sfb+1]
	ratioL, ratioR := isRatio(isPos)
	for i := start; i < stop; i++ {
		l := f.xr[gr][0][i]
		f.xr[gr][0][i] = l * ratioL
		f.xr[gr][1][i] = l * ratioR
	}
}

func (f *Frame) stereoIntensityShort(gr, sfb int, sfShort [14]int) {
	winLen := sfShort[sfb+1] - sfShort[sfb]
	for win := 0; win < 3; win++ {
		isPos := f.mainData.Granule[gr][0].ScalefacS[win][minInt(sfb, 11)]
		if isPos >= 7 {
			continue
		}
		start := sfShort[sfb]*3 + winLen*win
		ratioL, ratioR := isRatio(isPos)
		for i := start; i < start+winLen; i++ {
			l := f.xr[gr][0][i]
			f.xr[gr][0][i] = l * ratioL
			f.xr[gr][1][i] = l * ratioR
		}
	}
}

func isRatio(isPos int) (l, r float64) {
	if isPos == 6 {
		return 1, 0
	}
	return isRatios[isPos] / (1 + isRatios[isPos]), 1 / (1 + isRatios[isPos])
}

func (f *Frame) antialias(gr, ch int) {
	g := &f.sideInfo.Granule[gr][ch]
	if g.WinSwitchFlag == 1 && g.BlockType == sideinfo.BlockThreeShortWindows && g.MixedBlockFlag == 0 {
		return
	}
	sblim := 32
	if g.WinSwitchFlag == 1 && g.BlockType == sideinfo.BlockThreeShortWindows && g.MixedBlockFlag == 1 {
		sblim = 2
	}
	xr := &f.xr[gr][ch]
	for sb := 1; sb < sblim; sb++ {
		for i := 0; i < 8; i++ {
			li := 18*sb - 1 - i
			ui := 18*sb + i
			lb := xr[li]*cs[i] - xr[ui]*ca[i]
			ub := xr[ui]*cs[i] + xr[li]*ca[i]
			xr[li] = lb
			xr[ui] = ub
		}
	}
}

func (f *Frame) hybridSynthesis(gr, ch int) {
	g := &f.sideInfo.Granule[gr][ch]
	for sb := 0; sb < 32; sb++ {
		bt := imdct.BlockType(g.BlockType)
		if g.WinSwitchFlag == 1 && g.MixedBlockFlag == 1 && sb < 2 {
			bt = imdct.Long
		}
		var in [18]float64
		copy(in[:], f.xr[gr][ch][sb*18:sb*18+18])
		out, next := imdct.Win(in, bt, f.overlap[ch][sb])
		copy(f.xr[gr][ch][sb*18:sb*18+18], out[:18])
		f.overlap[ch][sb] = next
	}
}

func (f *Frame) frequencyInversion(gr, ch int) {
	xr := &f.xr[gr][ch]
	for sb := 1; sb < 32; sb += 2 {
		for i := 1; i < 18; i += 2 {
			xr[sb*18+i] = -xr[sb*18+i]
		}
	}
}

func (f *Frame) subbandSynthesis(gr, ch, nch int, out []byte) {
	var uVec [512]float64
	var sVec [32]float64
	xr := &f.xr[gr][ch]
	v := &f.vVec[ch]

	for ss := 0; ss < 18; ss++ {
		copy(v[64:1024], v[0:1024-64])
		for i := 0; i < 32; i++ {
			sVec[i] = xr[i*18+ss]
		}
		for i := 0; i < 64; i++ {
			var sum float64
			for j := 0; j < 32; j++ {
				sum += synthNWin[i][j] * sVec[j]
			}
			v[i] = sum
		}
		for i := 0; i < 512; i += 64 {
			copy(uVec[i:i+32], v[i<<1:(i<<1)+32])
			copy(uVec[i+32:i+64], v[(i<<1)+96:(i<<1)+128])
		}
		for i := 0; i < 512; i++ {
			uVec[i] *= synthDtbl[i]
		}
		for i := 0; i < 32; i++ {
			var sum float64
			for j := 0; j < 512; j += 32 {
				sum += uVec[j+i]
			}
			samp := int(sum * 32767)
			if samp > 32767 {
				samp = 32767
			} else if samp < -32767 {
				samp = -32767
			}
			s := int16(samp)
			bytesPerSample := 2 * nch
			idx := bytesPerSample*(32*ss+i) + 2*ch
			out[idx] = byte(s)
			out[idx+1] = byte(s >> 8)
		}
	}
}

var synthNWin [64][32]float64

func init() {
	for i := 0; i < 64; i++ {
		for j := 0; j < 32; j++ {
			synthNWin[i][j] = math.Cos(float64((16+i)*(2*j+1)) * (math.Pi / 64.0))
		}
	}
}

var synthDtbl = [512]float64{
	0.000000000, -0.000015259, -0.000015259, -0.000015259,
	-0.000015259, -0.000015259, -0.000015259, -0.000030518,
	-0.000030518, -0.000030518, -0.000030518, -0.000045776,
	-0.000045776, -0.000061035, -0.000061035, -0.000076294,
	-0.000076294, -0.000091553, -0.000106812, -0.000106812,
	-0.000122070, -0.000137329, -0.000152588, -0.000167847,
	-0.000198364, -0.000213623, -0.000244141, -0.000259399,
	-0.000289917, -0.000320435, -0.000366211, -0.000396729,
	-0.000442505, -0.000473022, -0.000534058, -0.000579834,
	-0.000625610, -0.000686646, -0.000747681, -0.000808716,
	-0.000885010, -0.000961304, -0.001037598, -0.001113892,
	-0.001205444, -0.001296997, -0.001388550, -0.001480103,
	-0.001586914, -0.001693726, -0.001785278, -0.001907349,
	-0.002014160, -0.002120972, -0.002243042, -0.002349854,
	-0.002456665, -0.002578735, -0.002685547, -0.002792358,
	-0.002899170, -0.002990723, -0.003082275, -0.003173828,
	0.003250122, 0.003326416, 0.003387451, 0.003433228,
	0.003463745, 0.003479004, 0.003479004, 0.003463745,
	0.003417969, 0.003372192, 0.003280640, 0.003173828,
	0.003051758, 0.002883911, 0.002700806, 0.002487183,
	0.002227783, 0.001937866, 0.001617432, 0.001266479,
	0.000869751, 0.000442505, -0.000030518, -0.000549316,
	-0.001098633, -0.001693726, -0.002334595, -0.003005981,
	-0.003723145, -0.004486084, -0.005294800, -0.006118774,
	-0.007003784, -0.007919312, -0.008865356, -0.009841919,
	-0.010848999, -0.011886597, -0.012939453, -0.014022827,
	-0.015121460, -0.016235352, -0.017349243, -0.018463135,
	-0.019577026, -0.020690918, -0.021789551, -0.022857666,
	-0.023910522, -0.024932861, -0.025909424, -0.026840210,
	-0.027725220, -0.028533936, -0.029281616, -0.029937744,
	-0.030532837, -0.031005859, -0.031387329, -0.031661987,
	-0.031814575, -0.031845093, -0.031738281, -0.031478882,
	0.031082153, 0.030517578, 0.029785156, 0.028884888,
	0.027801514, 0.026535034, 0.025085449, 0.023422241,
	0.021575928, 0.019531250, 0.017257690, 0.014801025,
	0.012115479, 0.009231567, 0.006134033, 0.002822876,
	-0.000686646, -0.004394531, -0.008316040, -0.012420654,
	-0.016708374, -0.021179199, -0.025817871, -0.030609131,
	-0.035552979, -0.040634155, -0.045837402, -0.051132202,
	-0.056533813, -0.061996460, -0.067520142, -0.073059082,
	-0.078628540, -0.084182739, -0.089706421, -0.095169067,
	-0.100540161, -0.105819702, -0.110946655, -0.115921021,
	-0.120697021, -0.125259399, -0.129562378, -0.133590698,
	-0.137298584, -0.140670776, -0.143676758, -0.146255493,
	-0.148422241, -0.150115967, -0.151306152, -0.151962280,
	-0.152069092, -0.151596069, -0.150497437, -0.148773193,
	-0.146362305, -0.143264771, -0.139450073, -0.134887695,
	-0.129577637, -0.123474121, -0.116577148, -0.108856201,
	0.100311279, 0.090927124, 0.080688477, 0.069595337,
	0.057617188, 0.044784546, 0.031082153, 0.016510010,
	0.001068115, -0.015228271, -0.032379150, -0.050354004,
	-0.069168091, -0.088775635, -0.109161377, -0.130310059,
	-0.152206421, -0.174789429, -0.198059082, -0.221984863,
	-0.246505737, -0.271591187, -0.297210693, -0.323318481,
	-0.349868774, -0.376800537, -0.404083252, -0.431655884,
	-0.459472656, -0.487472534, -0.515609741, -0.543823242,
	-0.572036743, -0.600219727, -0.628295898, -0.656219482,
	-0.683914185, -0.711318970, -0.738372803, -0.765029907,
	-0.791213989, -0.816864014, -0.841949463, -0.866363525,
	-0.890090942, -0.913055420, -0.935195923, -0.956481934,
	-0.976852417, -0.996246338, -1.014617920, -1.031936646,
	-1.048156738, -1.063217163, -1.077117920, -1.089782715,
	-1.101211548, -1.111373901, -1.120223999, -1.127746582,
	-1.133926392, -1.138763428, -1.142211914, -1.144287109,
	1.144989014, 1.144287109, 1.142211914, 1.138763428,
	1.133926392, 1.127746582, 1.120223999, 1.111373901,
	1.101211548, 1.089782715, 1.077117920, 1.063217163,
	1.048156738, 1.031936646, 1.014617920, 0.996246338,
	0.976852417, 0.956481934, 0.935195923, 0.913055420,
	0.890090942, 0.866363525, 0.841949463, 0.816864014,
	0.791213989, 0.765029907, 0.738372803, 0.711318970,
	0.683914185, 0.656219482, 0.628295898, 0.600219727,
	0.572036743, 0.543823242, 0.515609741, 0.487472534,
	0.459472656, 0.431655884, 0.404083252, 0.376800537,
	0.349868774, 0.323318481, 0.297210693, 0.271591187,
	0.246505737, 0.221984863, 0.198059082, 0.174789429,
	0.152206421, 0.130310059, 0.109161377, 0.088775635,
	0.069168091, 0.050354004, 0.032379150, 0.015228271,
	-0.001068115, -0.016510010, -0.031082153, -0.044784546,
	-0.057617188, -0.069595337, -0.080688477, -0.090927124,
	0.100311279, 0.108856201, 0.116577148, 0.123474121,
	0.129577637, 0.134887695, 0.139450073, 0.143264771,
	0.146362305, 0.148773193, 0.150497437, 0.151596069,
	0.152069092, 0.151962280, 0.151306152, 0.150115967,
	0.148422241, 0.146255493, 0.143676758, 0.140670776,
	0.137298584, 0.133590698, 0.129562378, 0.125259399,
	0.120697021, 0.115921021, 0.110946655, 0.105819702,
	0.100540161, 0.095169067, 0.089706421, 0.084182739,
	0.078628540, 0.073059082, 0.067520142, 0.061996460,
	0.056533813, 0.051132202, 0.045837402, 0.040634155,
	0.035552979, 0.030609131, 0.025817871, 0.021179199,
	0.016708374, 0.012420654, 0.008316040, 0.004394531,
	0.000686646, -0.002822876, -0.006134033, -0.009231567,
	-0.012115479, -0.014801025, -0.017257690, -0.019531250,
	-0.021575928, -0.023422241, -0.025085449, -0.026535034,
	-0.027801514, -0.028884888, -0.029785156, -0.030517578,
	0.031082153, 0.031478882, 0.031738281, 0.031845093,
	0.031814575, 0.031661987, 0.031387329, 0.031005859,
	0.030532837, 0.029937744, 0.029281616, 0.028533936,
	0.027725220, 0.026840210, 0.025909424, 0.024932861,
	0.023910522, 0.022857666, 0.021789551, 0.020690918,
	0.019577026, 0.018463135, 0.017349243, 0.016235352,
	0.015121460, 0.014022827, 0.012939453, 0.011886597,
	0.010848999, 0.009841919, 0.008865356, 0.007919312,
	0.007003784, 0.006118774, 0.005294800, 0.004486084,
	0.003723145, 0.003005981, 0.002334595, 0.001693726,
	0.001098633, 0.000549316, 0.000030518, -0.000442505,
	-0.000869751, -0.001266479, -0.001617432, -0.001937866,
	-0.002227783, -0.002487183, -0.002700806, -0.002883911,
	-0.003051758, -0.003173828, -0.003280640, -0.003372192,
	-0.003417969, -0.003463745, -0.003479004, -0.003479004,
	-0.003463745, -0.003433228, -0.003387451, -0.003326416,
	0.003250122, 0.003173828, 0.003082275, 0.002990723,
	0.002899170, 0.002792358, 0.002685547, 0.002578735,
	0.002456665, 0.002349854, 0.002243042, 0.002120972,
	0.002014160, 0.001907349, 0.001785278, 0.001693726,
	0.001586914, 0.001480103, 0.001388550, 0.001296997,
	0.001205444, 0.001113892, 0.001037598, 0.000961304,
	0.000885010, 0.000808716, 0.000747681, 0.000686646,
	0.000625610, 0.000579834, 0.000534058, 0.000473022,
	0.000442505, 0.000396729, 0.000366211, 0.000320435,
	0.000289917, 0.000259399, 0.000244141, 0.000213623,
	0.000198364, 0.000167847, 0.000152588, 0.000137329,
	0.000122070, 0.000106812, 0.000106812, 0.000091553,
	0.000076294, 0.000076294, 0.000061035, 0.000061035,
	0.000045776, 0.000045776, 0.000030518, 0.000030518,
	0.000030518, 0.000030518, 0.000015259, 0.000015259,
	0.000015259, 0.000015259, 0.000015259, 0.000015259,
}
