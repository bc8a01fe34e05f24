// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grappe

import "strings"

// Offsets is the cumulative (bytes, codepoints, lines) triple of all
// content preceding a given page.
type Offsets struct {
	Bytes int64
	Chars int64
	Lines int64
}

// Page is a fixed-capacity, self-describing byte region: a contiguous
// sequence of (serialized LineMeta, body bytes) records. Terminator bytes
// are never stored; the Eol discriminant in each record's metadata is
// authoritative and the terminator is reconstructed on read.
//
// A sealed Page is immutable and may be shared freely across readers; it
// is never mutated again once handed out by PageBuilder.
type Page struct {
	// Offset is the cumulative offset of all content in pages preceding
	// this one.
	Offset Offsets

	// First is the byte index of the first line's metadata. It is always
	// 0 in this implementation: a mid-line relocation moves an
	// in-progress line's reserved metadata slot and body bytes as one
	// contiguous unit to the start of the fresh page, so there is never a
	// gap before the first record.
	First int

	// End is one past the last used byte in Bytes.
	End int

	// Len, Chars, and Lines are this page's own aggregates (not
	// cumulative) for the lines finalized on this page: Len is their total
	// byte count (leading spaces, body, and terminator bytes), Chars their
	// body codepoint count, and Lines their number.
	Len   int
	Chars int
	Lines int

	// Bytes is the page's byte region, sized exactly to End.
	Bytes []byte
}

// Each walks the page's line records in order, invoking fn with each
// line's metadata and body byte slice (terminator bytes excluded — use
// meta.Eol.Bytes() to get them). fn's error, if any, stops the walk and is
// returned.
func (p *Page) Each(fn func(meta LineMeta, body []byte) error) error {
	i := p.First
	for i < p.End {
		m, n := deserializeLineMeta(p.Bytes[i:])
		i += n
		body := p.Bytes[i : i+m.Len]
		i += m.Len
		if err := fn(m, body); err != nil {
			return err
		}
	}
	return nil
}

// ToString reconstructs this page's slice of the original byte stream:
// for each line, its leading spaces, its body, then its terminator bytes
// if any.
func (p *Page) ToString() string {
	var sb strings.Builder
	sb.Grow(p.Len + p.Lines*2)
	_ = p.Each(func(m LineMeta, body []byte) error {
		for k := 0; k < m.Spaces; k++ {
			sb.WriteByte(' ')
		}
		sb.Write(body)
		sb.Write(m.Eol.Bytes())
		return nil
	})
	return sb.String()
}
