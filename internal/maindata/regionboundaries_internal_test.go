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

package maindata

import (
	"testing"

	"github.com/waveformio/mp3dec/internal/sideinfo"
)

// TestRegionBoundariesPureShortBlockHardcodesRegion1At36 exercises the
// pure-short-block special case: region_1_start is always 36 and there is
// no region 2, regardless of Region0Count/Region1Count (which a pure
// short-block granule doesn't carry meaningful values for in the first
// place).
func TestRegionBoundariesPureShortBlockHardcodesRegion1At36(t *testing.T) {
	g := &sideinfo.ChannelGranuleInfo{
		WinSwitchFlag: 1,
		BlockType:     sideinfo.BlockThreeShortWindows,
		Region0Count:  8, // would otherwise select band 9 (44/42/44), not 36
	}
	r0End, r1End := regionBoundaries(g, 0, 576)
	if r0End != 36 {
		t.Errorf("r0End = %d, want 36", r0End)
	}
	if r1End != 576 {
		t.Errorf("r1End = %d, want 576 (no region 2 for pure short blocks)", r1End)
	}
}

// TestRegionBoundariesMixedBlockAlsoHardcoded confirms the hardcoded
// 36/576 boundaries apply to mixed blocks too, not just pure short blocks:
// the condition is window_switching_flag && block_type==ThreeShortWindows,
// with no mixed_block_flag exception (original_source/main_data.py applies
// the same hardcode to "mixed & short blocks" alike).
func TestRegionBoundariesMixedBlockAlsoHardcoded(t *testing.T) {
	g := &sideinfo.ChannelGranuleInfo{
		WinSwitchFlag:  1,
		BlockType:      sideinfo.BlockThreeShortWindows,
		MixedBlockFlag: 1,
		Region0Count:   7,
		Region1Count:   13,
	}
	r0End, r1End := regionBoundaries(g, 0, 576)
	if r0End != 36 {
		t.Errorf("r0End = %d, want 36", r0End)
	}
	if r1End != 576 {
		t.Errorf("r1End = %d, want 576", r1End)
	}
}
