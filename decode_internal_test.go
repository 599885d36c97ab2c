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

import (
	"testing"

	"github.com/waveformio/mp3dec/internal/maindata"
)

// TestWrapDiagnosticTranslatesReservoirUnderflow exercises the translation
// readFrame relies on to surface internal/maindata's diagnostic through
// Decoder.Err without leaking an internal type to callers.
func TestWrapDiagnosticTranslatesReservoirUnderflow(t *testing.T) {
	in := &maindata.ReservoirUnderflowError{MainDataBegin: 10, Available: 3}
	got, ok := wrapDiagnostic(in).(*ReservoirUnderflowError)
	if !ok {
		t.Fatalf("wrapDiagnostic(%T) = %T, want *ReservoirUnderflowError", in, wrapDiagnostic(in))
	}
	if got.MainDataBegin != 10 || got.Available != 3 {
		t.Errorf("got = %+v, want MainDataBegin=10 Available=3", got)
	}
}

// TestWrapDiagnosticTranslatesHuffmanDecodeError mirrors the above for the
// other diagnostic internal/maindata.Read can report.
func TestWrapDiagnosticTranslatesHuffmanDecodeError(t *testing.T) {
	in := &maindata.HuffmanDecodeError{Table: 7}
	got, ok := wrapDiagnostic(in).(*HuffmanDecodeError)
	if !ok {
		t.Fatalf("wrapDiagnostic(%T) = %T, want *HuffmanDecodeError", in, wrapDiagnostic(in))
	}
	if got.Table != 7 {
		t.Errorf("Table = %d, want 7", got.Table)
	}
}
