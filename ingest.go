// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grappe

import "io"

// Ingester drives the validator -> space/body splitter -> page builder
// chain, accumulating sealed pages into a Text document.
//
// Semantics:
//   - Feed processes one chunk to completion; it has no internal
//     suspension points, per the package's concurrency model.
//   - FeedFrom repeatedly pulls chunks from a Reader and feeds them,
//     returning the finished Text on a clean end of stream. On
//     ErrWouldBlock or ErrMore from the Reader, FeedFrom returns that
//     error immediately with nil Text; the caller must call FeedFrom again
//     on the same Ingester to resume — all carry-over state (the
//     validator's joint, the splitters' pending recognition, the
//     in-progress page) lives inside the Ingester and survives the gap.
//   - Any error from Feed or FeedFrom (other than the control-flow
//     signals above) is fatal: ErrUTF8, ErrLineTooLong, or an I/O error
//     propagated unchanged from the Reader's source.
type Ingester struct {
	val   *Validator
	lines *LineSplitter
	pages *PageBuilder
	doc   *Text
}

// NewIngester returns an Ingester configured per opts, with a fresh empty
// Text document.
func NewIngester(opts ...Option) *Ingester {
	o := resolveOptions(opts...)
	return &Ingester{
		val:   NewValidator(),
		lines: NewLineSplitter(o.MaxSpaces),
		pages: NewPageBuilder(o),
		doc:   NewText(),
	}
}

// Feed validates, splits, and pages one chunk. See Ingester's docs for
// error semantics.
func (ig *Ingester) Feed(chunk []byte) error {
	carry, valid, err := ig.val.Validate(chunk)
	if err != nil {
		return err
	}
	if carry != "" {
		if err := ig.feedValidated(carry); err != nil {
			return err
		}
	}
	if valid != "" {
		if err := ig.feedValidated(valid); err != nil {
			return err
		}
	}
	return nil
}

// FeedFrom pumps chunks from r until r reports a clean io.EOF, at which
// point it finalizes the pipeline and returns the completed Text.
func (ig *Ingester) FeedFrom(r *Reader) (*Text, error) {
	for {
		chunk, err := r.Fill()
		if len(chunk) > 0 {
			if ferr := ig.Feed(chunk); ferr != nil {
				return nil, ferr
			}
			r.Consume(len(chunk))
		}
		if err != nil {
			if err == io.EOF {
				return ig.Done()
			}
			return nil, err
		}
	}
}

// Done finalizes the validator, splitters, and page builder (flushing any
// trailing partial page) and returns the completed Text.
func (ig *Ingester) Done() (*Text, error) {
	if err := ig.val.Done(); err != nil {
		return nil, err
	}
	if err := ig.lines.Done(ig.pushEvent); err != nil {
		return nil, err
	}
	if err := ig.pages.Done(ig.appendPage); err != nil {
		return nil, err
	}
	return ig.doc, nil
}

// Reset discards all state, including the accumulated Text document, so
// the Ingester may be reused for a fresh ingestion after a fatal error.
func (ig *Ingester) Reset() {
	ig.val.Reset()
	ig.lines.Reset()
	ig.pages.Reset()
	ig.pages.offBytes, ig.pages.offChars, ig.pages.offLines = 0, 0, 0
	ig.doc = NewText()
}

func (ig *Ingester) feedValidated(s string) error {
	return ig.lines.Feed([]byte(s), ig.pushEvent)
}

func (ig *Ingester) pushEvent(ev LineSplit) error {
	return ig.pages.Push(ev, ig.appendPage)
}

func (ig *Ingester) appendPage(p *Page) error {
	ig.doc.AppendPage(p)
	return nil
}
