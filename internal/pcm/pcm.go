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

// Package pcm describes the interleaved 16-bit PCM a Frame.Decode produces:
// sample rate and channel count accessors used by callers that need to
// interpret or re-encode the raw byte stream (such as a WAVE writer).
package pcm

// Format describes the layout of a decoded PCM byte stream: signed
// 16-bit little-endian samples, interleaved per sample (L, R, L, R, ...), with the
// channel count matching the source stream exactly (mono stays mono;
// this decoder never duplicates a mono channel into fake stereo).
type Format struct {
	SampleRate int
	Channels   int
}

// BytesPerSample is the frame size of one interleaved sample across all
// channels: 2 bytes per channel, 16-bit PCM.
func (f Format) BytesPerSample() int {
	return 2 * f.Channels
}

// Duration returns how many seconds of audio n bytes of this format's PCM
// represents.
func (f Format) Duration(nBytes int) float64 {
	if f.SampleRate == 0 || f.Channels == 0 {
		return 0
	}
	samples := nBytes / f.BytesPerSample()
	return float64(samples) / float64(f.SampleRate)
}
