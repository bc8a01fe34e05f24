// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grappe_test

import (
	"reflect"
	"testing"

	"code.hybscloud.com/grappe"
)

func collectSplits(t *testing.T, s *grappe.EolSplitter, chunks [][]byte) []grappe.Split {
	t.Helper()
	var got []grappe.Split
	emit := func(sp grappe.Split) error {
		cp := sp
		if sp.Kind == grappe.SplitBytes {
			cp.B = append([]byte(nil), sp.B...)
		}
		got = append(got, cp)
		return nil
	}
	for i, c := range chunks {
		if err := s.Feed(c, emit); err != nil {
			t.Fatalf("Feed[%d]: %v", i, err)
		}
	}
	if err := s.Done(emit); err != nil {
		t.Fatalf("Done: %v", err)
	}
	return got
}

func TestEolSplitter_AllVariantsSingleChunk(t *testing.T) {
	input := []byte("a\nb\x0Bc\x0Cd\re\xC2\x85f\xE2\x80\xA8g\xE2\x80\xA9h\r\n")
	s := grappe.NewEolSplitter()
	got := collectSplits(t, s, [][]byte{input})

	wantEols := []grappe.Eol{grappe.EolLF, grappe.EolVT, grappe.EolFF, grappe.EolCR, grappe.EolNEL, grappe.EolLS, grappe.EolPS, grappe.EolCRLF}
	var gotEols []grappe.Eol
	for _, sp := range got {
		if sp.Kind == grappe.SplitEol {
			gotEols = append(gotEols, sp.E)
		}
	}
	if !reflect.DeepEqual(gotEols, wantEols) {
		t.Fatalf("eols = %v, want %v", gotEols, wantEols)
	}
}

func TestEolSplitter_CRLFPrecedenceAcrossChunkBoundary(t *testing.T) {
	s := grappe.NewEolSplitter()
	got := collectSplits(t, s, [][]byte{[]byte("x\r"), []byte("\ny")})

	var gotEols []grappe.Eol
	for _, sp := range got {
		if sp.Kind == grappe.SplitEol {
			gotEols = append(gotEols, sp.E)
		}
	}
	if len(gotEols) != 1 || gotEols[0] != grappe.EolCRLF {
		t.Fatalf("eols = %v, want [CRLF]", gotEols)
	}
}

func TestEolSplitter_BareCRAtEndOfStream(t *testing.T) {
	s := grappe.NewEolSplitter()
	got := collectSplits(t, s, [][]byte{[]byte("x\r")})

	last := got[len(got)-1]
	if last.Kind != grappe.SplitEol || last.E != grappe.EolCR {
		t.Fatalf("last = %+v, want CR", last)
	}
}

func TestEolSplitter_NELSplitAcrossEveryBoundary(t *testing.T) {
	s := grappe.NewEolSplitter()
	got := collectSplits(t, s, [][]byte{{0xC2}, {0x85}})

	var n int
	for _, sp := range got {
		if sp.Kind == grappe.SplitEol && sp.E == grappe.EolNEL {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("NEL count = %d, want 1", n)
	}
}

func TestEolSplitter_LSAndPSSplitAtEachByte(t *testing.T) {
	for _, tc := range []struct {
		name string
		last byte
		want grappe.Eol
	}{
		{"LS", 0xA8, grappe.EolLS},
		{"PS", 0xA9, grappe.EolPS},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := grappe.NewEolSplitter()
			got := collectSplits(t, s, [][]byte{{0xE2}, {0x80}, {tc.last}})
			var found grappe.Eol
			count := 0
			for _, sp := range got {
				if sp.Kind == grappe.SplitEol {
					found = sp.E
					count++
				}
			}
			if count != 1 || found != tc.want {
				t.Fatalf("got %v (count=%d), want single %v", found, count, tc.want)
			}
		})
	}
}

func TestEolSplitter_LiteralE2NotATerminator(t *testing.T) {
	// 0xE2 0x80 0x41 ('A'): not LS/PS, must be preserved as literal bytes.
	s := grappe.NewEolSplitter()
	got := collectSplits(t, s, [][]byte{{0xE2, 0x80, 'A'}})
	if len(got) != 1 || got[0].Kind != grappe.SplitBytes {
		t.Fatalf("got %+v, want one Bytes event", got)
	}
	if !reflect.DeepEqual(got[0].B, []byte{0xE2, 0x80, 'A'}) {
		t.Fatalf("bytes = %v", got[0].B)
	}
}

func TestEolSplitter_ResetClearsPending(t *testing.T) {
	s := grappe.NewEolSplitter()
	_ = s.Feed([]byte{'\r'}, func(grappe.Split) error { return nil })
	s.Reset()
	got := collectSplits(t, s, [][]byte{[]byte("ok")})
	if len(got) != 1 || got[0].Kind != grappe.SplitBytes {
		t.Fatalf("got %+v after reset, want one Bytes event", got)
	}
}
