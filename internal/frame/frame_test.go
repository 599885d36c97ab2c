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

package frame_test

import (
	"testing"

	"github.com/waveformio/mp3dec/internal/frame"
	"github.com/waveformio/mp3dec/internal/reservoir"
)

// silentFrameSource serves a single 0xFFFB9064-style mono frame (header,
// no CRC, side info, main data) built entirely from zero bytes, which
// decodes to silence: scalefac_compress=0 needs no scalefactor bits, and
// table_select 0 (BigValues=0, implied by an all-zero side info) means
// every coefficient decodes to (0,0).
type silentFrameSource struct {
	data []byte
	pos  int
}

func newSilentFrameSource() *silentFrameSource {
	// 0xFFFB9064: MPEG-1 Layer III, 128kbps, 44100Hz, JointStereo forced to
	// mono via the low mode bits, no CRC -> frame length 417 bytes.
	header := []byte{0xff, 0xfb, 0x90, 0x64 | 0xc0}
	rest := make([]byte, 417-4)
	buf := append(header, rest...)
	return &silentFrameSource{data: buf}
}

func (s *silentFrameSource) ReadFull(p []byte) (int, error) {
	n := copy(p, s.data[s.pos:])
	s.pos += n
	return n, nil
}

func TestDecodeSilentFrameProducesSilentPCM(t *testing.T) {
	res := reservoir.New()
	fr, _, err := frame.Read(newSilentFrameSource(), 0, res, nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := fr.NumberOfChannels(); got != 1 {
		t.Fatalf("NumberOfChannels = %d, want 1 (mono)", got)
	}
	pcm := fr.Decode()
	if len(pcm) != fr.BytesPerFrame() {
		t.Fatalf("len(pcm) = %d, want %d", len(pcm), fr.BytesPerFrame())
	}
	for i, b := range pcm {
		if b != 0 {
			t.Fatalf("pcm[%d] = %d, want 0 (silence in, silence out)", i, b)
		}
	}
}

func TestBytesPerFrameMonoStaysMono(t *testing.T) {
	res := reservoir.New()
	fr, _, err := frame.Read(newSilentFrameSource(), 0, res, nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := 2 * 576 * 2 * 1 // granules * samples * bytes/sample * channels
	if got := fr.BytesPerFrame(); got != want {
		t.Fatalf("BytesPerFrame = %d, want %d", got, want)
	}
}
