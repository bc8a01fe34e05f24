// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grappe

// LineKind discriminates the three LineSplit event variants.
type LineKind uint8

const (
	LineSpaces LineKind = iota
	LineBytes
	LineEol
)

// LineSplit is one event emitted by LineSplitter: a leading-space count, a
// body byte span, or a line terminator.
type LineSplit struct {
	Kind LineKind
	N    int
	B    []byte
	E    Eol
}

// LineSplitter wraps EolSplitter with an outer state machine that further
// separates each line's leading ASCII spaces from its body, using a
// LeadingCounter to apply the space/non-ASCII-successor decrement rule
// across chunk boundaries.
//
// LineSplitter is not safe for concurrent use.
type LineSplitter struct {
	eol      *EolSplitter
	counter  *LeadingCounter
	inSpaces bool // true while still accumulating the current line's leading spaces
}

// NewLineSplitter returns a LineSplitter whose leading-space count is
// capped at maxSpaces.
func NewLineSplitter(maxSpaces int) *LineSplitter {
	return &LineSplitter{
		eol:      NewEolSplitter(),
		counter:  NewLeadingCounter(' ', maxSpaces),
		inSpaces: true,
	}
}

// Feed scans chunk and invokes emit for each LineSplit event in order.
func (l *LineSplitter) Feed(chunk []byte, emit func(LineSplit) error) error {
	return l.eol.Feed(chunk, func(s Split) error { return l.handle(s, emit) })
}

// Done flushes any trailing pending recognition in the underlying
// EolSplitter and, per spec, emits a final Spaces(n) if the line ended
// mid-leading-run with n > 0.
func (l *LineSplitter) Done(emit func(LineSplit) error) error {
	if err := l.eol.Done(func(s Split) error { return l.handle(s, emit) }); err != nil {
		return err
	}
	return l.flushSpaces(emit)
}

// Reset discards all carried state, so the LineSplitter's storage may be
// reused after a fatal error upstream.
func (l *LineSplitter) Reset() {
	l.eol.Reset()
	l.counter.Reset()
	l.inSpaces = true
}

func (l *LineSplitter) handle(s Split, emit func(LineSplit) error) error {
	switch s.Kind {
	case SplitEol:
		if err := l.flushSpaces(emit); err != nil {
			return err
		}
		if err := emit(LineSplit{Kind: LineEol, E: s.E}); err != nil {
			return err
		}
		l.startLine()
		return nil
	default: // SplitBytes
		return l.handleBytes(s.B, emit)
	}
}

func (l *LineSplitter) handleBytes(b []byte, emit func(LineSplit) error) error {
	if !l.inSpaces {
		if len(b) == 0 {
			return nil
		}
		return emit(LineSplit{Kind: LineBytes, B: b})
	}
	spaces, rest, done := l.counter.Feed(b)
	if !done {
		return nil
	}
	l.inSpaces = false
	if spaces > 0 {
		if err := emit(LineSplit{Kind: LineSpaces, N: spaces}); err != nil {
			return err
		}
	}
	if len(rest) > 0 {
		return emit(LineSplit{Kind: LineBytes, B: rest})
	}
	return nil
}

func (l *LineSplitter) flushSpaces(emit func(LineSplit) error) error {
	if !l.inSpaces {
		return nil
	}
	n := l.counter.Finish()
	if n > 0 {
		return emit(LineSplit{Kind: LineSpaces, N: n})
	}
	return nil
}

func (l *LineSplitter) startLine() {
	l.counter.Reset()
	l.inSpaces = true
}
