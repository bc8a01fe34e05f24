// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grappe_test

import (
	"testing"

	"code.hybscloud.com/grappe"
)

func collectLineSplits(t *testing.T, l *grappe.LineSplitter, chunks [][]byte) []grappe.LineSplit {
	t.Helper()
	var got []grappe.LineSplit
	emit := func(ev grappe.LineSplit) error {
		cp := ev
		if ev.Kind == grappe.LineBytes {
			cp.B = append([]byte(nil), ev.B...)
		}
		got = append(got, cp)
		return nil
	}
	for i, c := range chunks {
		if err := l.Feed(c, emit); err != nil {
			t.Fatalf("Feed[%d]: %v", i, err)
		}
	}
	if err := l.Done(emit); err != nil {
		t.Fatalf("Done: %v", err)
	}
	return got
}

func TestLineSplitter_SpacesBodyEol(t *testing.T) {
	l := grappe.NewLineSplitter(127)
	got := collectLineSplits(t, l, [][]byte{[]byte("  hello\n")})

	if len(got) != 3 {
		t.Fatalf("got %d events, want 3: %+v", len(got), got)
	}
	if got[0].Kind != grappe.LineSpaces || got[0].N != 2 {
		t.Fatalf("event 0 = %+v", got[0])
	}
	if got[1].Kind != grappe.LineBytes || string(got[1].B) != "hello" {
		t.Fatalf("event 1 = %+v", got[1])
	}
	if got[2].Kind != grappe.LineEol || got[2].E != grappe.EolLF {
		t.Fatalf("event 2 = %+v", got[2])
	}
}

func TestLineSplitter_EmptyLineEolOnly(t *testing.T) {
	l := grappe.NewLineSplitter(127)
	got := collectLineSplits(t, l, [][]byte{[]byte("\n\n")})

	if len(got) != 2 {
		t.Fatalf("got %d events, want 2: %+v", len(got), got)
	}
	for i, ev := range got {
		if ev.Kind != grappe.LineEol || ev.E != grappe.EolLF {
			t.Fatalf("event %d = %+v", i, ev)
		}
	}
}

func TestLineSplitter_NoLeadingSpacesNoSpacesEvent(t *testing.T) {
	l := grappe.NewLineSplitter(127)
	got := collectLineSplits(t, l, [][]byte{[]byte("abc\n")})

	if len(got) != 2 {
		t.Fatalf("got %d events, want 2: %+v", len(got), got)
	}
	if got[0].Kind != grappe.LineBytes || string(got[0].B) != "abc" {
		t.Fatalf("event 0 = %+v", got[0])
	}
}

func TestLineSplitter_TrailingSpacesNoEolAtStreamEnd(t *testing.T) {
	l := grappe.NewLineSplitter(127)
	got := collectLineSplits(t, l, [][]byte{[]byte("x\n  ")})

	last := got[len(got)-1]
	if last.Kind != grappe.LineSpaces || last.N != 2 {
		t.Fatalf("last event = %+v, want Spaces(2)", last)
	}
}

func TestLineSplitter_MultipleLinesAcrossChunks(t *testing.T) {
	l := grappe.NewLineSplitter(127)
	got := collectLineSplits(t, l, [][]byte{[]byte(" a"), []byte("bc\nd"), []byte("ef\r\n")})

	var lines [][]grappe.LineSplit
	var cur []grappe.LineSplit
	for _, ev := range got {
		cur = append(cur, ev)
		if ev.Kind == grappe.LineEol {
			lines = append(lines, cur)
			cur = nil
		}
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %+v", len(lines), got)
	}
	if lines[1][len(lines[1])-1].E != grappe.EolCRLF {
		t.Fatalf("second line eol = %v", lines[1][len(lines[1])-1].E)
	}
}

func TestLineSplitter_ResetStartsClean(t *testing.T) {
	l := grappe.NewLineSplitter(127)
	_ = l.Feed([]byte("  partial"), func(grappe.LineSplit) error { return nil })
	l.Reset()
	got := collectLineSplits(t, l, [][]byte{[]byte("x\n")})
	if len(got) != 2 || got[0].Kind != grappe.LineBytes {
		t.Fatalf("got %+v after reset", got)
	}
}
