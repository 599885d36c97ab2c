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

package imdct_test

import (
	"testing"

	"github.com/waveformio/mp3dec/internal/imdct"
)

func TestWinZeroInputProducesZeroOutput(t *testing.T) {
	var in [18]float64
	var prev [18]float64
	out, next := imdct.Win(in, imdct.Long, prev)
	for i, v := range out {
		if v != 0 {
			t.Fatalf("out[%d] = %v, want 0", i, v)
		}
	}
	for i, v := range next {
		if v != 0 {
			t.Fatalf("next[%d] = %v, want 0", i, v)
		}
	}
}

func TestWinIsDeterministic(t *testing.T) {
	var in [18]float64
	for i := range in {
		in[i] = float64(i%5) - 2
	}
	var prev [18]float64
	out1, next1 := imdct.Win(in, imdct.ThreeShortWindows, prev)
	out2, next2 := imdct.Win(in, imdct.ThreeShortWindows, prev)
	if out1 != out2 || next1 != next2 {
		t.Fatal("Win must be a pure function of its inputs")
	}
}

func TestWinBlockTypesProduceDistinctWindows(t *testing.T) {
	var in [18]float64
	for i := range in {
		in[i] = 1
	}
	var prev [18]float64
	long, _ := imdct.Win(in, imdct.Long, prev)
	start, _ := imdct.Win(in, imdct.Start, prev)
	if long == start {
		t.Fatal("Long and Start block windows should differ for a nonzero input")
	}
}
