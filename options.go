// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grappe

import "time"

// Compile-time-configurable limits (spec §6). Production code should treat
// these as constants; Options lets tests shrink PageBytes to stress the
// page-boundary relocation logic without recompiling.
const (
	// PageBytes is the default page capacity in bytes (~1 KiB).
	PageBytes = 1024

	// ReadCapacity is the default number of bytes the Reader hands out per
	// fill call.
	ReadCapacity = 8 * 1024

	// MaxSpaces is the ceiling on a LineMeta's leading-space count.
	MaxSpaces = 127

	// MaxLineLen is the ceiling on a LineMeta's body byte count.
	MaxLineLen = 1023

	// MaxLineChars is the ceiling on a LineMeta's body codepoint count.
	MaxLineChars = 1023
)

// LineMaxLen returns the largest body length (in bytes) that can still fit
// in a page of the given capacity alongside its 4-byte extended LineMeta
// header and a trailing reserved byte: pageBytes - 5.
func LineMaxLen(pageBytes int) int {
	return pageBytes - 5
}

// Options configures an Ingester (its line splitter and PageBuilder) and a
// Reader. NewIngester ignores ReadCapacity and RetryDelay; NewReader uses
// only those two.
type Options struct {
	// PageBytes is the per-page capacity in bytes. Production builds
	// should use the PageBytes constant; tests may shrink it to exercise
	// page-boundary relocation with small inputs.
	PageBytes int

	// ReadCapacity bounds how many bytes the Reader requests per fill call.
	ReadCapacity int

	// MaxLineLen overrides the line-length ceiling derived from PageBytes.
	// Zero means "derive from PageBytes via LineMaxLen".
	MaxLineLen int

	// MaxSpaces bounds a line's leading-space count before it rolls into
	// the body. Zero means "use the MaxSpaces constant".
	MaxSpaces int

	// RetryDelay controls how Reader/Ingester handle ErrWouldBlock from a
	// non-blocking source:
	//   - negative: nonblock, return ErrWouldBlock immediately
	//   - zero: yield (runtime.Gosched) and retry
	//   - positive: sleep for the duration and retry
	RetryDelay time.Duration
}

var defaultOptions = Options{
	PageBytes:    PageBytes,
	ReadCapacity: ReadCapacity,
	MaxLineLen:   0,
	MaxSpaces:    0,
	RetryDelay:   -1, // default: nonblock
}

// Option configures Options. See NewIngester and NewReader.
type Option func(*Options)

// WithPageBytes overrides the per-page capacity.
func WithPageBytes(n int) Option {
	return func(o *Options) { o.PageBytes = n }
}

// WithReadCapacity overrides how many bytes the Reader requests per fill.
func WithReadCapacity(n int) Option {
	return func(o *Options) { o.ReadCapacity = n }
}

// WithMaxLineLen overrides the line-length ceiling.
func WithMaxLineLen(n int) Option {
	return func(o *Options) { o.MaxLineLen = n }
}

// WithMaxSpaces overrides the leading-space ceiling.
func WithMaxSpaces(n int) Option {
	return func(o *Options) { o.MaxSpaces = n }
}

// WithRetryDelay sets the retry/wait policy used when the source returns
// ErrWouldBlock.
func WithRetryDelay(d time.Duration) Option {
	return func(o *Options) { o.RetryDelay = d }
}

// WithBlock enables cooperative blocking (yield-and-retry) on ErrWouldBlock.
func WithBlock() Option {
	return func(o *Options) { o.RetryDelay = 0 }
}

// WithNonblock forces non-blocking behavior (return ErrWouldBlock
// immediately). This is the default.
func WithNonblock() Option {
	return func(o *Options) { o.RetryDelay = -1 }
}

func resolveOptions(opts ...Option) Options {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	if o.MaxLineLen == 0 {
		o.MaxLineLen = LineMaxLen(o.PageBytes)
	}
	if o.MaxLineLen > MaxLineLen {
		o.MaxLineLen = MaxLineLen
	}
	if o.MaxSpaces == 0 {
		o.MaxSpaces = MaxSpaces
	}
	return o
}
