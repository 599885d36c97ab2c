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

// Command mp3wav decodes an MPEG-1 Layer III file to a WAVE file sitting
// next to it. Channel count follows the source: a mono MP3 produces a
// mono WAV, never the forced-stereo output common to other decoders.
package main

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	mp3dec "github.com/waveformio/mp3dec"
)

var errInvalidArgCount = errors.New("expected exactly one argument: input MP3 path")

func main() {
	appl := &cli.Command{
		Name:  "mp3wav",
		Usage: "Decode an MP3 file to a WAV file alongside it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output WAV path (default: input path with .wav extension)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Action: run,
	}

	if err := appl.Run(context.Background(), os.Args); err != nil {
		log.Error().Err(err).Msg("mp3wav: failed")
		os.Exit(1)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	if cmd.Bool("verbose") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if cmd.NArg() != 1 {
		return fmt.Errorf("%w: got %d", errInvalidArgCount, cmd.NArg())
	}

	inPath := cmd.Args().First()
	outPath := cmd.String("output")
	if outPath == "" {
		outPath = outputPath(inPath)
	}

	in, err := os.Open(inPath) //nolint:gosec // CLI tool opens user-specified audio files
	if err != nil {
		return fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer in.Close()

	dec, err := mp3dec.NewDecoder(in)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inPath, err)
	}
	defer dec.Close()

	out, err := os.Create(outPath) //nolint:gosec // CLI tool creates user-specified output files
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer out.Close()

	sr := dec.SampleRate()
	nc := dec.NumChannels()

	log.Info().Str("in", inPath).Str("out", outPath).Int("sampleRate", sr).Int("channels", nc).Msg("mp3wav: decoding")

	enc := wav.NewEncoder(out, sr, 16, nc, 1)

	if err := encodePCM(enc, dec, nc, sr); err != nil {
		return fmt.Errorf("encoding %s: %w", outPath, err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", outPath, err)
	}

	return nil
}

// encodePCM streams the decoder's interleaved 16-bit PCM output through
// the WAVE encoder in fixed-size chunks so a long MP3 never needs to be
// buffered whole in memory.
func encodePCM(enc *wav.Encoder, r io.Reader, numChannels, sampleRate int) error {
	const samplesPerChunk = 4096
	raw := make([]byte, samplesPerChunk*2)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChannels, SampleRate: sampleRate},
		SourceBitDepth: 16,
	}

	for {
		n, err := io.ReadFull(r, raw)
		if n > 0 {
			samples := n / 2
			if cap(buf.Data) < samples {
				buf.Data = make([]int, samples)
			}
			buf.Data = buf.Data[:samples]
			for i := 0; i < samples; i++ {
				buf.Data[i] = int(int16(binary.LittleEndian.Uint16(raw[2*i:])))
			}
			if werr := enc.Write(buf); werr != nil {
				return werr
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func outputPath(inPath string) string {
	ext := filepath.Ext(inPath)
	base := strings.TrimSuffix(inPath, ext)
	return base + ".wav"
}
