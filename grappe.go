// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package grappe is a streaming text ingestion engine: it turns an arbitrary
// byte stream into a compact, page-based representation of a text document
// suitable for editor-like workloads — random access by line, stable
// per-line metadata, and efficient reconstruction of the original bytes.
//
// Data flows through four incremental stages, each consuming a chunk and
// carrying only a small amount of state across calls:
//
//   - Reader exposes any io.Reader as a fill/consume source of byte chunks
//     (see reader.go).
//   - Validator validates UTF-8 incrementally, tolerating codepoints that
//     straddle chunk boundaries (see validator.go).
//   - the EOL splitter recognizes all eight Unicode line terminators,
//     including multi-byte ones straddling chunk boundaries (see
//     eolsplit.go), and the space/body splitter further separates each
//     line's leading ASCII spaces from its body (see linesplit.go).
//   - the page builder folds split events into fixed-capacity, self
//     describing pages (see page.go, pagebuilder.go).
//
// A parallel surface, the cluster locator (cluster.go), operates on
// already-validated text to locate grapheme clusters and report display
// width.
//
// Page binary format (normative): within a page's byte region, a sequence
// of line records, each either:
//
//   - a 1-byte header, top bit = 1: [1][eol:4][000] — an empty line (no
//     spaces, no body) terminated by the encoded eol.
//   - a 4-byte header, top bit = 0, big-endian: eol:4 | len:10 | chars:10 |
//     spaces:7, followed by len body bytes.
//
// The pipeline itself is strictly single-threaded and cooperative: every
// call to Feed runs to completion with no internal suspension point. Sealed
// pages are immutable and freely shareable once handed out; construction of
// a new page is single-writer only.
package grappe
