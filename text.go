// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grappe

import "strings"

// Text is an ordered, append-only sequence of sealed pages plus cumulative
// byte/codepoint/line counts. Pages are exclusively owned by the
// PageBuilder that produced them until sealed; once appended here they are
// shared-immutable and may be handed to any number of readers.
type Text struct {
	pages []*Page
	total Offsets
}

// NewText returns an empty document.
func NewText() *Text { return &Text{} }

// AppendPage appends a sealed page and folds its aggregates into the
// document's cumulative counts. Pages must be appended in the order they
// were sealed; AppendPage does not re-check monotonic offsets.
func (t *Text) AppendPage(p *Page) {
	t.pages = append(t.pages, p)
	t.total.Bytes += int64(p.Len)
	t.total.Chars += int64(p.Chars)
	t.total.Lines += int64(p.Lines)
}

// Pages returns the sealed pages in order. The returned slice aliases
// internal storage and must not be modified by the caller.
func (t *Text) Pages() []*Page { return t.pages }

// Counts returns the document's cumulative byte, codepoint, and line
// counts across all pages.
func (t *Text) Counts() Offsets { return t.total }

// ToString reconstructs the original byte stream by concatenating each
// page's spaces·body·eol_bytes reconstruction in order.
func (t *Text) ToString() string {
	var sb strings.Builder
	sb.Grow(int(t.total.Bytes) + int(t.total.Lines)*2)
	for _, p := range t.pages {
		sb.WriteString(p.ToString())
	}
	return sb.String()
}
