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

package maindata_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/waveformio/mp3dec/internal/frameheader"
	"github.com/waveformio/mp3dec/internal/maindata"
	"github.com/waveformio/mp3dec/internal/reservoir"
	"github.com/waveformio/mp3dec/internal/sideinfo"
)

type zeroReader struct{ n int }

func (z *zeroReader) ReadFull(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	z.n += len(p)
	return len(p), nil
}

// TestReadSilentFrameProducesZeroIs decodes a frame whose main_data is all
// zero bytes: table_select 0 means every big_values pair is (0,0), and the
// granule's scalefactors (scalefac_compress=0, slen widths 0) consume no
// bits, so the decode should complete without error and leave every Is
// sample at zero.
func TestReadSilentFrameProducesZeroIs(t *testing.T) {
	h := frameheader.FrameHeader(0xFFFB9064) | 0xc0 // mono
	si := &sideinfo.SideInfo{}
	for gr := 0; gr < 2; gr++ {
		g := &si.Granule[gr][0]
		g.Part2_3Length = 64
		g.BigValues = 0
		g.Count1TableSelect = 1
	}

	res := reservoir.New()
	md, underflowed, _, err := maindata.Read(&zeroReader{}, res, h, si)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if underflowed {
		t.Fatal("main_data_begin=0 on the first frame must not underflow")
	}
	for gr := 0; gr < 2; gr++ {
		for _, v := range md.Granule[gr][0].Is {
			if v != 0 {
				t.Fatalf("granule %d: expected all-zero Is, got %d", gr, v)
			}
		}
	}
}

// TestReadScfsiReusesGranuleZeroScalefactors exercises the scfsi path: when
// every scfsi band group is set, granule 1 must not read its own
// scalefactors for those bands, it reuses granule 0's.
func TestReadScfsiReusesGranuleZeroScalefactors(t *testing.T) {
	h := frameheader.FrameHeader(0xFFFB9064) | 0xc0 // mono
	si := &sideinfo.SideInfo{}
	si.Scfsi[0] = [4]int{1, 1, 1, 1}
	for gr := 0; gr < 2; gr++ {
		g := &si.Granule[gr][0]
		g.Part2_3Length = 64
		g.BigValues = 0
		g.Count1TableSelect = 1
	}

	res := reservoir.New()
	md, underflowed, _, err := maindata.Read(&zeroReader{}, res, h, si)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if underflowed {
		t.Fatal("main_data_begin=0 on the first frame must not underflow")
	}
	if diff := cmp.Diff(md.Granule[0][0].ScalefacL, md.Granule[1][0].ScalefacL); diff != "" {
		t.Errorf("granule 1 scalefactors diverge from granule 0 despite scfsi reuse (-gr0 +gr1):\n%s", diff)
	}
}

// TestReadReportsHuffmanDecodeErrorAsDiag exercises the non-fatal Huffman
// decode error path: an out-of-range table_select can't match any
// compiled table, so decoding must stop for that granule/channel (the
// remaining Is values stay zero) while Read still succeeds and reports the
// anomaly via diag rather than swallowing it.
func TestReadReportsHuffmanDecodeErrorAsDiag(t *testing.T) {
	h := frameheader.FrameHeader(0xFFFB9064) | 0xc0 // mono
	si := &sideinfo.SideInfo{}
	for gr := 0; gr < 2; gr++ {
		g := &si.Granule[gr][0]
		g.Part2_3Length = 64
		g.BigValues = 2
		g.TableSelect = [3]int{99, 99, 99} // out of range: no compiled table matches
		g.Count1TableSelect = 1
	}

	res := reservoir.New()
	_, underflowed, diag, err := maindata.Read(&zeroReader{}, res, h, si)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if underflowed {
		t.Fatal("main_data_begin=0 on the first frame must not underflow")
	}
	herr, ok := diag.(*maindata.HuffmanDecodeError)
	if !ok {
		t.Fatalf("diag = %T, want *maindata.HuffmanDecodeError", diag)
	}
	if herr.Table != 99 {
		t.Errorf("Table = %d, want 99", herr.Table)
	}
}

// TestReadUnderflowsWhenReservoirEmpty exercises the bit-reservoir-underflow
// path: a nonzero main_data_begin on the very first frame has nothing to
// borrow from, so Read must report underflow rather than decode garbage.
func TestReadUnderflowsWhenReservoirEmpty(t *testing.T) {
	h := frameheader.FrameHeader(0xFFFB9064) | 0xc0
	si := &sideinfo.SideInfo{MainDataBegin: 10}
	res := reservoir.New()
	md, underflowed, diag, err := maindata.Read(&zeroReader{}, res, h, si)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !underflowed {
		t.Fatal("expected underflow")
	}
	if md != nil {
		t.Fatal("expected nil MainData on underflow")
	}
	uerr, ok := diag.(*maindata.ReservoirUnderflowError)
	if !ok {
		t.Fatalf("diag = %T, want *maindata.ReservoirUnderflowError", diag)
	}
	if uerr.MainDataBegin != 10 || uerr.Available != 0 {
		t.Errorf("diag = %+v, want MainDataBegin=10 Available=0", uerr)
	}
}
