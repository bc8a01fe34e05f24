// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grappe

import (
	"io"
	"runtime"
	"time"
)

// Reader adapts an io.Reader to the pull-based fill/consume interface:
// Fill returns a borrowed slice of available data (at most ReadCapacity
// bytes), and Consume signals how many leading bytes of it were processed.
// Any source mappable onto io.Reader — files, pipes, in-memory buffers,
// non-blocking sockets — is admissible.
//
// Reader is not safe for concurrent use.
type Reader struct {
	src io.Reader
	buf []byte

	start, end int

	retryDelay time.Duration
}

// NewReader returns a Reader pulling from src.
func NewReader(src io.Reader, opts ...Option) *Reader {
	o := resolveOptions(opts...)
	return &Reader{
		src:        src,
		buf:        make([]byte, o.ReadCapacity),
		retryDelay: o.RetryDelay,
	}
}

// Fill returns the currently available unconsumed bytes, reading more from
// the source if none remain. The returned slice aliases Reader's internal
// buffer and is valid only until the next Fill or Consume call.
//
// On ErrWouldBlock, Fill either retries (per the configured RetryDelay) or
// returns immediately with a nil slice and ErrWouldBlock, mirroring the
// same control-flow contract code.hybscloud.com/iox establishes for
// non-blocking transports.
func (r *Reader) Fill() ([]byte, error) {
	if r.start < r.end {
		return r.buf[r.start:r.end], nil
	}
	r.start, r.end = 0, 0
	for {
		n, err := r.src.Read(r.buf)
		if len(r.buf) != 0 && n == 0 && err == nil {
			return nil, io.ErrNoProgress
		}
		if n > 0 {
			r.end = n
			return r.buf[:n], err
		}
		if err != ErrWouldBlock {
			return nil, err
		}
		if !r.waitOnce() {
			return nil, err
		}
	}
}

// Consume marks the first n bytes of the slice last returned by Fill as
// processed.
func (r *Reader) Consume(n int) {
	r.start += n
	if r.start > r.end {
		r.start = r.end
	}
	if r.start == r.end {
		r.start, r.end = 0, 0
	}
}

func (r *Reader) waitOnce() bool {
	if r.retryDelay < 0 {
		return false
	}
	if r.retryDelay == 0 {
		runtime.Gosched()
		return true
	}
	time.Sleep(r.retryDelay)
	return true
}
