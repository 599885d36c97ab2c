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

package reservoir_test

import (
	"testing"

	"github.com/waveformio/mp3dec/internal/reservoir"
)

func TestFirstFrameZeroBeginIsNotUnderflow(t *testing.T) {
	r := reservoir.New()
	rd, underflowed, zeroPrefix := r.Resolve(0, []byte{0x01, 0x02})
	if underflowed {
		t.Error("main_data_begin=0 on an empty reservoir must not underflow")
	}
	if zeroPrefix != 0 {
		t.Errorf("zeroPrefix = %d, want 0", zeroPrefix)
	}
	if got := rd.ReadU(8); got != 0x01 {
		t.Errorf("first byte = %#x, want 0x01", got)
	}
}

func TestFirstFrameNonZeroBeginUnderflows(t *testing.T) {
	r := reservoir.New()
	rd, underflowed, zeroPrefix := r.Resolve(4, []byte{0xaa})
	if !underflowed {
		t.Error("main_data_begin > 0 on an empty reservoir must underflow")
	}
	if zeroPrefix != 4 {
		t.Errorf("zeroPrefix = %d, want 4", zeroPrefix)
	}
	if got := rd.ReadU(32); got != 0 {
		t.Errorf("zero-filled prefix read = %#x, want 0", got)
	}
	if got := rd.ReadU(8); got != 0xaa {
		t.Errorf("frame byte = %#x, want 0xaa", got)
	}
}

func TestCommitAndResolveAcrossFrames(t *testing.T) {
	r := reservoir.New()
	r.Commit([]byte{0x10, 0x20, 0x30})
	rd, underflowed, zeroPrefix := r.Resolve(2, []byte{0x40})
	if underflowed || zeroPrefix != 0 {
		t.Fatalf("unexpected underflow=%v zeroPrefix=%d", underflowed, zeroPrefix)
	}
	want := []byte{0x20, 0x30, 0x40}
	for i, w := range want {
		if got := byte(rd.ReadU(8)); got != w {
			t.Errorf("byte %d = %#x, want %#x", i, got, w)
		}
	}
}

func TestCommitTruncatesToMaxBytes(t *testing.T) {
	r := reservoir.New()
	big := make([]byte, reservoir.MaxBytes+100)
	for i := range big {
		big[i] = byte(i)
	}
	r.Commit(big)
	if got := r.Len(); got != reservoir.MaxBytes {
		t.Errorf("Len() = %d, want %d", got, reservoir.MaxBytes)
	}
}
