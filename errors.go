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

package mp3dec

import "fmt"

// UnsupportedFormatError reports a stream this decoder does not handle:
// anything other than MPEG-1 Layer III (MPEG-2/2.5 Layer III, any Layer
// I/II stream, ADTS/AAC, etc). It is always fatal: the decoder stops.
type UnsupportedFormatError struct {
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("mp3dec: unsupported format: %s", e.Reason)
}

// TruncatedStreamError reports a stream that ends mid-frame. Read itself
// still reports this as a clean end of stream (io.EOF), matching the
// behavior of most MP3 players; Decoder.Err returns this alongside it for a
// caller that wants to tell a truncated file apart from one that ended on
// a frame boundary.
type TruncatedStreamError struct {
	At string
}

func (e *TruncatedStreamError) Error() string {
	return fmt.Sprintf("mp3dec: truncated stream at %s", e.At)
}

// ReservoirUnderflowError reports a frame whose main_data_begin reaches
// further back than the bit reservoir currently holds (possible only near
// the start of a stream, or right after a Seek). The decoder recovers by
// emitting silence for the frame; Decoder.Err returns this so a caller can
// log or count the anomaly instead of it passing silently.
type ReservoirUnderflowError struct {
	MainDataBegin int
	Available     int
}

func (e *ReservoirUnderflowError) Error() string {
	return fmt.Sprintf("mp3dec: bit reservoir underflow: main_data_begin=%d available=%d", e.MainDataBegin, e.Available)
}

// HuffmanDecodeError reports a Huffman codeword with no matching entry in
// the selected table. The decoder recovers by zeroing every frequency line
// of the affected granule/channel (so it contributes silence) and goes on
// decoding the rest of the frame; Decoder.Err returns this so a caller can
// log or count the anomaly.
type HuffmanDecodeError struct {
	Table int
}

func (e *HuffmanDecodeError) Error() string {
	return fmt.Sprintf("mp3dec: invalid huffman codeword in table %d", e.Table)
}

// InternalInvariantViolation reports a condition the decoder's own logic
// should make impossible — currently only Decoder.Seek being called with a
// whence other than io.SeekStart/Current/End, which a correct io.Seeker
// caller never does. Seeing one otherwise indicates a bug in this package.
type InternalInvariantViolation struct {
	Detail string
}

func (e *InternalInvariantViolation) Error() string {
	return fmt.Sprintf("mp3dec: internal invariant violation: %s", e.Detail)
}
