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

// Package reservoir implements the MPEG-1 Layer III bit reservoir: a
// sliding byte buffer holding the tail of recently seen main_data, used to
// resolve main_data_begin back-references across frame boundaries.
package reservoir

import "github.com/waveformio/mp3dec/internal/bits"

// MaxBytes is the maximum number of trailing bytes the reservoir retains,
// the largest value main_data_begin (9 bits) can express.
const MaxBytes = 511

// Reservoir holds the tail of previously seen main_data bytes.
type Reservoir struct {
	tail []byte
}

// New returns an empty reservoir, as at decoder construction.
func New() *Reservoir {
	return &Reservoir{}
}

// Resolve builds a bit reader over mainDataBegin bytes borrowed from the end
// of the reservoir followed by frameBytes, the current frame's main_data.
//
// If the reservoir does not hold mainDataBegin bytes yet (only possible on
// the first frame(s) of a stream), the missing prefix is zero-filled and
// underflowed reports true so the caller can treat this channel-granule's
// output as silence rather than garbage.
func (r *Reservoir) Resolve(mainDataBegin int, frameBytes []byte) (reader *bits.Reader, underflowed bool, zeroPrefix int) {
	if mainDataBegin > len(r.tail) {
		zeroPrefix = mainDataBegin - len(r.tail)
		underflowed = true
	}
	borrowed := r.tail
	if mainDataBegin < len(r.tail) {
		borrowed = r.tail[len(r.tail)-mainDataBegin:]
	}
	buf := make([]byte, 0, zeroPrefix+len(borrowed)+len(frameBytes))
	buf = append(buf, make([]byte, zeroPrefix)...)
	buf = append(buf, borrowed...)
	buf = append(buf, frameBytes...)
	return bits.New(buf), underflowed, zeroPrefix
}

// Commit appends this frame's main_data bytes to the reservoir and
// truncates it to at most MaxBytes trailing bytes.
func (r *Reservoir) Commit(frameBytes []byte) {
	r.tail = append(r.tail, frameBytes...)
	if len(r.tail) > MaxBytes {
		r.tail = r.tail[len(r.tail)-MaxBytes:]
	}
}

// Len reports how many bytes the reservoir currently holds.
func (r *Reservoir) Len() int {
	return len(r.tail)
}
