// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grappe

import (
	"errors"

	"code.hybscloud.com/iox"
)

var (
	// ErrInvalidArgument reports an invalid configuration, such as a page
	// capacity too small to hold one line record.
	ErrInvalidArgument = errors.New("grappe: invalid argument")

	// ErrUTF8 is raised by the validator when a byte cannot belong to any
	// valid UTF-8 codepoint, or when the stream ends with an incomplete
	// codepoint still buffered in the joint. Fatal: ingestion aborts and no
	// partial document is returned.
	ErrUTF8 = errors.New("grappe: invalid utf-8")

	// ErrLineTooLong is raised by the page builder when a single line's
	// body would exceed MaxLineLen bytes without an intervening terminator.
	// Fatal: ingestion aborts.
	ErrLineTooLong = errors.New("grappe: line too long")

	// ErrTooManySpaces names a leading-space run beyond MaxSpaces. The
	// pipeline does not return it: spaces past the ceiling roll into the
	// line body instead.
	ErrTooManySpaces = errors.New("grappe: too many leading spaces")
)

// ErrWouldBlock and ErrMore are the non-blocking control-flow signals used
// by Reader and Ingester when pulling from a non-blocking source. They are
// never returned by the synchronous core transducers (Validator, the EOL
// and space/body splitters, PageBuilder): per the concurrency model, those
// have no internal suspension points.
var (
	// ErrWouldBlock means "no further progress without waiting". An
	// expected, non-failure control-flow signal; any returned byte count
	// still represents real progress. Caller action: stop the current
	// attempt and retry later, or configure a RetryDelay to emulate
	// cooperative blocking on top of a non-blocking source.
	ErrWouldBlock = iox.ErrWouldBlock

	// ErrMore means "this completion is usable and more completions will
	// follow". Not io.EOF and not "try later" — the read remains active.
	// Caller action: process the returned bytes, then call again.
	ErrMore = iox.ErrMore
)
