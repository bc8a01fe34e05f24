// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grappe

import "time"

// Ingestion source presets and mapping.
//
// Single source of truth — source kind → (ReadCapacity, RetryDelay):
//   - File     → large capacity, blocking reads are cheap so cooperative
//     block-and-retry is appropriate.
//   - Socket   → default capacity, nonblocking by default since sockets are
//     the canonical case for ErrWouldBlock-driven event loops.
//   - Pipe     → small capacity, blocking: pipes are usually fed by another
//     local process at modest rates.
//   - Memory   → large capacity, blocking: an in-memory buffer never blocks,
//     so retry policy is moot, but a generous capacity avoids needless
//     re-fills.

type sourceKind uint8

const (
	sourceFile sourceKind = iota
	sourceSocket
	sourcePipe
	sourceMemory
)

func defaultsForSource(kind sourceKind) (capacity int, retry time.Duration) {
	switch kind {
	case sourceFile:
		return 64 * 1024, 0
	case sourceSocket:
		return ReadCapacity, -1
	case sourcePipe:
		return 4 * 1024, 0
	case sourceMemory:
		return 256 * 1024, 0
	default:
		return ReadCapacity, -1
	}
}

// WithFileSource configures ReadCapacity and retry policy for an open file:
// large reads, cooperative blocking.
func WithFileSource() Option {
	return func(o *Options) {
		cap, retry := defaultsForSource(sourceFile)
		o.ReadCapacity = cap
		o.RetryDelay = retry
	}
}

// WithSocketSource configures ReadCapacity and retry policy for a network
// socket: default-sized reads, nonblocking by default.
func WithSocketSource() Option {
	return func(o *Options) {
		cap, retry := defaultsForSource(sourceSocket)
		o.ReadCapacity = cap
		o.RetryDelay = retry
	}
}

// WithPipeSource configures ReadCapacity and retry policy for an os.Pipe or
// similar local IPC channel: small reads, cooperative blocking.
func WithPipeSource() Option {
	return func(o *Options) {
		cap, retry := defaultsForSource(sourcePipe)
		o.ReadCapacity = cap
		o.RetryDelay = retry
	}
}

// WithMemorySource configures ReadCapacity for an in-memory buffer (e.g.
// bytes.Reader): large reads since the source never blocks.
func WithMemorySource() Option {
	return func(o *Options) {
		cap, retry := defaultsForSource(sourceMemory)
		o.ReadCapacity = cap
		o.RetryDelay = retry
	}
}
