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

// Package mp3dec decodes MPEG-1 Layer III (MP3) audio into interleaved
// 16-bit PCM. Unlike many MP3 decoders, it never forces stereo output for
// a mono source: Decoder.NumChannels reports the stream's true channel
// count, and PCM stays mono when the source is mono.
package mp3dec

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/waveformio/mp3dec/internal/consts"
	"github.com/waveformio/mp3dec/internal/frame"
	"github.com/waveformio/mp3dec/internal/maindata"
	"github.com/waveformio/mp3dec/internal/pcm"
	"github.com/waveformio/mp3dec/internal/reservoir"
)

// Decoder decodes its underlying source on the fly. Decoder implements
// io.Reader and, when the underlying reader is an io.Seeker, io.Seeker.
type Decoder struct {
	source        *source
	res           *reservoir.Reservoir
	format        pcm.Format
	length        int64
	frameStarts   []int64
	buf           []byte
	frame         *frame.Frame
	pos           int64
	bytesPerFrame int
	lastDiag      error
}

// translateFrameError maps the internal sentinel errors internal/frame and
// its dependencies use into this package's public error kinds (spec §7): a
// frame whose version or layer this decoder doesn't implement surfaces as
// UnsupportedFormatError rather than leaking an internal type to callers. A
// stream that ends mid-frame is recorded as TruncatedStreamError on d, then
// reported to the caller as a clean io.EOF, matching most MP3 players.
func (d *Decoder) translateFrameError(err error) error {
	if err == io.EOF {
		return io.EOF
	}
	if ue, ok := err.(*consts.UnexpectedEOF); ok {
		d.lastDiag = &TruncatedStreamError{At: ue.At}
		return io.EOF
	}
	if uf, ok := err.(*consts.UnsupportedFormat); ok {
		return &UnsupportedFormatError{Reason: uf.Reason}
	}
	return err
}

// wrapDiagnostic translates a non-fatal anomaly internal/maindata reported
// through frame.Frame.Diagnostic into this package's public error kinds.
func wrapDiagnostic(diag error) error {
	switch e := diag.(type) {
	case *maindata.ReservoirUnderflowError:
		return &ReservoirUnderflowError{MainDataBegin: e.MainDataBegin, Available: e.Available}
	case *maindata.HuffmanDecodeError:
		return &HuffmanDecodeError{Table: e.Table}
	default:
		return diag
	}
}

func (d *Decoder) readFrame() error {
	f, _, err := frame.Read(d.source, d.source.pos, d.res, d.frame)
	if err != nil {
		err = d.translateFrameError(err)
		if err == io.EOF {
			return io.EOF
		}
		if _, fatal := err.(*UnsupportedFormatError); fatal {
			log.Error().Err(err).Msg("mp3dec: unsupported frame, stopping")
			return err
		}
		log.Warn().Err(err).Msg("mp3dec: resyncing after frame error")
		return err
	}
	d.frame = f
	if diag := f.Diagnostic(); diag != nil {
		d.lastDiag = wrapDiagnostic(diag)
		log.Warn().Err(d.lastDiag).Msg("mp3dec: frame decode anomaly")
	}
	d.buf = append(d.buf, f.Decode()...)
	return nil
}

// Err returns the most recent non-fatal diagnostic this decoder reported
// while producing the bytes already returned from Read: a bit-reservoir
// underflow, an unmatched Huffman codeword, or a stream that ended mid-frame
// (TruncatedStreamError, surfaced from Read itself as a clean io.EOF). It is
// cleared by nothing; callers that care about a specific frame should check
// Err immediately after the Read call that produced it.
func (d *Decoder) Err() error {
	return d.lastDiag
}

// Read is io.Reader's Read.
func (d *Decoder) Read(buf []byte) (int, error) {
	for len(d.buf) == 0 {
		if err := d.readFrame(); err != nil {
			return 0, err
		}
	}
	n := copy(buf, d.buf)
	d.buf = d.buf[n:]
	d.pos += int64(n)
	return n, nil
}

// Seek is io.Seeker's Seek.
func (d *Decoder) Seek(offset int64, whence int) (int64, error) {
	npos := int64(0)
	switch whence {
	case io.SeekStart:
		npos = offset
	case io.SeekCurrent:
		npos = d.pos + offset
	case io.SeekEnd:
		npos = d.length + offset
	default:
		return 0, &InternalInvariantViolation{Detail: fmt.Sprintf("Seek called with invalid whence %d", whence)}
	}
	d.pos = npos
	d.buf = nil
	d.frame = nil
	d.res = reservoir.New()

	f := int(d.pos / int64(d.bytesPerFrame))
	if f >= len(d.frameStarts) {
		f = len(d.frameStarts) - 1
	}
	if f > 0 {
		f--
		if _, err := d.source.Seek(d.frameStarts[f], io.SeekStart); err != nil {
			return 0, err
		}
		if err := d.readFrame(); err != nil {
			return 0, err
		}
		if err := d.readFrame(); err != nil {
			return 0, err
		}
		d.buf = d.buf[d.bytesPerFrame+int(d.pos%int64(d.bytesPerFrame)):]
	} else {
		if _, err := d.source.Seek(d.frameStarts[f], io.SeekStart); err != nil {
			return 0, err
		}
		if err := d.readFrame(); err != nil {
			return 0, err
		}
		d.buf = d.buf[d.pos:]
	}
	return npos, nil
}

// Close is io.Closer's Close.
func (d *Decoder) Close() error {
	return d.source.Close()
}

// SampleRate returns the sample rate in Hz, e.g. 44100. Retrieved from the
// stream's first frame.
func (d *Decoder) SampleRate() int {
	return d.format.SampleRate
}

// NumChannels returns 1 for a mono source, 2 for any stereo mode. Unlike
// many decoders this is never forced to 2 for a mono stream.
func (d *Decoder) NumChannels() int {
	return d.format.Channels
}

// Length returns the total decoded size in bytes, or -1 if the underlying
// reader is not an io.Seeker and the length could not be precomputed.
func (d *Decoder) Length() int64 {
	return d.length
}

// NewDecoder decodes r, an MPEG-1 Layer III bitstream, and returns a
// decoded PCM stream. If r is an io.Seeker, the stream is scanned once up
// front to index frame starts and compute Length.
func NewDecoder(r io.ReadCloser) (*Decoder, error) {
	s := &source{reader: r}
	d := &Decoder{source: s, res: reservoir.New(), length: -1}

	if _, ok := r.(io.Seeker); ok {
		if err := s.skipTags(); err != nil {
			return nil, err
		}
		res := reservoir.New()
		var l int64
		var f *frame.Frame
		for {
			var err error
			var pos int64
			f, pos, err = frame.Read(s, s.pos, res, f)
			if err != nil {
				err = d.translateFrameError(err)
				if err == io.EOF {
					break
				}
				return nil, err
			}
			d.frameStarts = append(d.frameStarts, pos)
			l += int64(f.BytesPerFrame())
			d.bytesPerFrame = f.BytesPerFrame()
		}
		if err := s.rewind(); err != nil {
			return nil, err
		}
		d.length = l
	}

	if err := s.skipTags(); err != nil {
		return nil, err
	}
	if err := d.readFrame(); err != nil {
		return nil, err
	}
	d.format = pcm.Format{SampleRate: d.frame.SamplingFrequency(), Channels: d.frame.NumberOfChannels()}
	d.bytesPerFrame = d.frame.BytesPerFrame()
	return d, nil
}
