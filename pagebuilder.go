// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grappe

import "unicode/utf8"

// PageBuilder folds LineSplit events into fixed-capacity pages, sealing and
// emitting a page whenever the next event would overflow it, and relocating
// an in-progress line's already-written bytes to the start of the fresh
// page so the line continues seamlessly.
//
// PageBuilder is not safe for concurrent use; it is the sole writer of its
// in-progress page, per the package's ownership model.
type PageBuilder struct {
	pageBytes  int
	maxLineLen int

	buf   []byte // len == pageBytes
	index int    // start of the current line's metadata slot
	meta  LineMeta
	long  bool // true once this line has committed to the 4-byte reservation

	lines, bodyLen, bodyChars int // aggregates of lines finalized in buf so far

	offBytes, offChars, offLines int64
}

// NewPageBuilder returns a PageBuilder configured per opts.
func NewPageBuilder(opts Options) *PageBuilder {
	return &PageBuilder{
		pageBytes:  opts.PageBytes,
		maxLineLen: opts.MaxLineLen,
		buf:        make([]byte, opts.PageBytes),
	}
}

// Push accepts one LineSplit event, updates the in-progress page, and
// invokes onPage for a page sealed as a side effect (at most once per
// call: after the first seal the fresh page holds no finalized line, so a
// further relocation emits nothing). Returns ErrLineTooLong if a line's
// body would exceed the configured line-length ceiling.
func (b *PageBuilder) Push(ev LineSplit, onPage func(*Page) error) error {
	switch ev.Kind {
	case LineSpaces:
		return b.pushSpaces(ev.N, onPage)
	case LineBytes:
		return b.pushBytes(ev.B, onPage)
	case LineEol:
		return b.finalizeLine(ev.E, onPage)
	default:
		return nil
	}
}

// Done seals and emits the final page (which may be partial); if no line
// was finalized since the last seal, onPage is not called. If a line was
// in progress with no
// terminating event, it is finalized with EolNone.
func (b *PageBuilder) Done(onPage func(*Page) error) error {
	if b.long {
		if err := b.finalizeLine(EolNone, onPage); err != nil {
			return err
		}
	}
	if b.lines == 0 {
		return nil
	}
	return b.flushFinal(onPage)
}

// Reset discards all in-progress state, so the PageBuilder's storage may
// be reused after a fatal error upstream. Cumulative offsets are kept;
// call NewPageBuilder instead to start over from zero.
func (b *PageBuilder) Reset() {
	b.index = 0
	b.meta = LineMeta{}
	b.long = false
	b.lines, b.bodyLen, b.bodyChars = 0, 0, 0
}

func (b *PageBuilder) pushSpaces(n int, onPage func(*Page) error) error {
	if n <= 0 {
		return nil
	}
	if err := b.ensureLong(onPage); err != nil {
		return err
	}
	allowed := MaxSpaces - b.meta.Spaces
	if n <= allowed {
		b.meta.Spaces += n
		return nil
	}
	b.meta.Spaces = MaxSpaces
	overflow := n - allowed
	spill := make([]byte, overflow)
	for i := range spill {
		spill[i] = ' '
	}
	return b.pushBytes(spill, onPage)
}

func (b *PageBuilder) pushBytes(data []byte, onPage func(*Page) error) error {
	for len(data) > 0 {
		if !b.long {
			if err := b.ensureLong(onPage); err != nil {
				return err
			}
		}
		maxAdd := b.maxLineLen - b.meta.Len
		if maxAdd <= 0 {
			return ErrLineTooLong
		}
		avail := b.pageBytes - 1 - (b.index + 4 + b.meta.Len)
		if avail <= 0 {
			if b.meta.Len >= b.pageBytes-5 {
				// Even a fresh page's full capacity can't hold the body
				// written so far: relocating would just recreate this same
				// overflow on the next iteration. This shape — a line body
				// larger than one page can ever hold — isn't supported.
				return ErrLineTooLong
			}
			if err := b.sealAndRelocate(onPage); err != nil {
				return err
			}
			continue
		}
		n := len(data)
		if n > avail {
			n = avail
		}
		if n > maxAdd {
			n = maxAdd
		}
		if n < len(data) {
			for n > 0 && isUTF8Continuation(data[n]) {
				n--
			}
		}
		if n == 0 {
			// Can't make progress without splitting a codepoint across
			// pages; force a fresh page even though avail > 0.
			if err := b.sealAndRelocate(onPage); err != nil {
				return err
			}
			continue
		}
		copy(b.buf[b.index+4+b.meta.Len:], data[:n])
		b.meta.Len += n
		b.meta.Chars += utf8.RuneCount(data[:n])
		data = data[n:]
	}
	return nil
}

func (b *PageBuilder) finalizeLine(e Eol, onPage func(*Page) error) error {
	b.meta.Eol = e
	width := b.meta.sizeBytes()
	if !b.long {
		if b.index+width+1 > b.pageBytes {
			if err := b.sealAndRelocate(onPage); err != nil {
				return err
			}
		}
	}
	writeLineMetaAt(b.buf, b.index, b.meta)
	consumed := width + b.meta.Len
	lineTotal := b.meta.Spaces + b.meta.Len + len(b.meta.Eol.Bytes())

	b.index += consumed
	b.lines++
	b.bodyLen += lineTotal
	b.bodyChars += b.meta.Chars

	b.meta = LineMeta{}
	b.long = false
	return nil
}

// ensureLong commits the current line to the 4-byte metadata reservation,
// sealing the page first if even that reservation does not fit.
func (b *PageBuilder) ensureLong(onPage func(*Page) error) error {
	if b.long {
		return nil
	}
	if b.pageBytes < 5 {
		return ErrInvalidArgument
	}
	for b.index+4+1 > b.pageBytes {
		if err := b.sealAndRelocate(onPage); err != nil {
			return err
		}
	}
	b.long = true
	return nil
}

// sealAndRelocate seals the lines finalized so far as a page (emitted via
// onPage unless empty), then relocates any in-progress line's
// already-written bytes to the start of a fresh buffer.
func (b *PageBuilder) sealAndRelocate(onPage func(*Page) error) error {
	inProgressLen := 0
	if b.long {
		inProgressLen = 4 + b.meta.Len
	}

	if b.lines > 0 {
		page := &Page{
			Offset: Offsets{Bytes: b.offBytes, Chars: b.offChars, Lines: b.offLines},
			End:    b.index,
			Len:    b.bodyLen,
			Chars:  b.bodyChars,
			Lines:  b.lines,
			Bytes:  append([]byte(nil), b.buf[:b.index]...),
		}
		b.offBytes += int64(b.bodyLen)
		b.offChars += int64(b.bodyChars)
		b.offLines += int64(b.lines)
		b.lines, b.bodyLen, b.bodyChars = 0, 0, 0

		newBuf := make([]byte, b.pageBytes)
		copy(newBuf, b.buf[b.index:b.index+inProgressLen])
		b.buf = newBuf
		b.index = 0

		if onPage != nil {
			return onPage(page)
		}
		return nil
	}

	// Nothing finalized yet in this buffer (the whole capacity was eaten
	// by one in-progress line that still doesn't fit, or the buffer is
	// pathologically small): just relocate in place without emitting an
	// empty page, which would violate the "every sealed page has len > 0"
	// invariant.
	newBuf := make([]byte, b.pageBytes)
	copy(newBuf, b.buf[b.index:b.index+inProgressLen])
	b.buf = newBuf
	b.index = 0
	return nil
}

func (b *PageBuilder) flushFinal(onPage func(*Page) error) error {
	page := &Page{
		Offset: Offsets{Bytes: b.offBytes, Chars: b.offChars, Lines: b.offLines},
		End:    b.index,
		Len:    b.bodyLen,
		Chars:  b.bodyChars,
		Lines:  b.lines,
		Bytes:  append([]byte(nil), b.buf[:b.index]...),
	}
	b.offBytes += int64(b.bodyLen)
	b.offChars += int64(b.bodyChars)
	b.offLines += int64(b.lines)
	b.lines, b.bodyLen, b.bodyChars = 0, 0, 0
	b.index = 0
	if onPage != nil {
		return onPage(page)
	}
	return nil
}

func isUTF8Continuation(c byte) bool {
	return c&0xC0 == 0x80
}
