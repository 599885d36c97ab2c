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

package pcm_test

import (
	"testing"

	"github.com/waveformio/mp3dec/internal/pcm"
)

func TestBytesPerSample(t *testing.T) {
	mono := pcm.Format{SampleRate: 44100, Channels: 1}
	if got := mono.BytesPerSample(); got != 2 {
		t.Errorf("mono BytesPerSample = %d, want 2", got)
	}
	stereo := pcm.Format{SampleRate: 44100, Channels: 2}
	if got := stereo.BytesPerSample(); got != 4 {
		t.Errorf("stereo BytesPerSample = %d, want 4", got)
	}
}

func TestDuration(t *testing.T) {
	f := pcm.Format{SampleRate: 44100, Channels: 2}
	// One second of stereo 16-bit PCM is 44100 * 4 bytes.
	if got := f.Duration(44100 * 4); got != 1 {
		t.Errorf("Duration = %v, want 1", got)
	}
}

func TestDurationZeroFormat(t *testing.T) {
	var f pcm.Format
	if got := f.Duration(1000); got != 0 {
		t.Errorf("Duration with zero format = %v, want 0", got)
	}
}
