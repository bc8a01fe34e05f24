// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grappe

// SplitKind discriminates the two Split event variants.
type SplitKind uint8

const (
	SplitBytes SplitKind = iota
	SplitEol
)

// Split is one event emitted by EolSplitter. For SplitBytes, B holds a
// slice guaranteed to contain no terminator byte sequence; for SplitEol, E
// holds the recognized terminator.
//
// B aliases the chunk passed to Feed: it is only valid until the next Feed
// call (or Done), per the package's borrowed-chunk ownership model. Callers
// that need it to outlive the call must copy it.
type Split struct {
	Kind SplitKind
	B    []byte
	E    Eol
}

func splitBytes(b []byte) Split { return Split{Kind: SplitBytes, B: b} }
func splitEol(e Eol) Split      { return Split{Kind: SplitEol, E: e} }

type eolPending uint8

const (
	eolPendingNone eolPending = iota
	eolPendingCR              // saw 0x0D; awaiting possible 0x0A
	eolPendingNEL0            // saw 0xC2; awaiting 0x85
	eolPendingS0              // saw 0xE2; awaiting 0x80
	eolPendingS1              // saw 0xE2 0x80; awaiting 0xA8/0xA9
)

// EolSplitter recognizes the eight Unicode line terminators in a byte
// stream, correctly handling multi-byte terminators (and the CR+LF digraph)
// straddling chunk boundaries. It operates on raw bytes: UTF-8 validity is
// not required at this layer, since terminator byte sequences never alias
// non-terminator codepoints.
//
// EolSplitter is not safe for concurrent use.
type EolSplitter struct {
	pending eolPending
}

// NewEolSplitter returns an EolSplitter with no carried state.
func NewEolSplitter() *EolSplitter { return &EolSplitter{} }

// Feed scans chunk and invokes emit for each Split event in order. emit's
// error, if any, aborts the scan and is returned unchanged. Feed never
// returns Bytes events containing a terminator byte sequence, and never
// splits a multi-byte terminator across two events.
func (s *EolSplitter) Feed(chunk []byte, emit func(Split) error) error {
	i := 0

	// Resolve any pending recognition against the start of this chunk.
	// CR and NEL0/S0 resolve in a single step; S0 may transition to S1 and
	// then resolve in the same call if bytes remain.
	for s.pending != eolPendingNone && i < len(chunk) {
		b := chunk[i]
		switch s.pending {
		case eolPendingCR:
			if b == byteLF {
				if err := emit(splitEol(EolCRLF)); err != nil {
					return err
				}
				i++
			} else if err := emit(splitEol(EolCR)); err != nil {
				return err
			}
			s.pending = eolPendingNone
		case eolPendingNEL0:
			if b == byteNEL1 {
				if err := emit(splitEol(EolNEL)); err != nil {
					return err
				}
				i++
			} else if err := emit(splitBytes([]byte{byteNEL0})); err != nil {
				return err
			}
			s.pending = eolPendingNone
		case eolPendingS0:
			if b == byteS1 {
				s.pending = eolPendingS1
				i++
				continue
			}
			if err := emit(splitBytes([]byte{byteS0})); err != nil {
				return err
			}
			s.pending = eolPendingNone
		case eolPendingS1:
			switch b {
			case byteLS2:
				if err := emit(splitEol(EolLS)); err != nil {
					return err
				}
				i++
			case bytePS2:
				if err := emit(splitEol(EolPS)); err != nil {
					return err
				}
				i++
			default:
				if err := emit(splitBytes([]byte{byteS0, byteS1})); err != nil {
					return err
				}
			}
			s.pending = eolPendingNone
		}
	}
	if s.pending != eolPendingNone {
		// Ran out of chunk bytes while still resolving a pending state
		// (the chunk was empty, or it only advanced S0 to S1); nothing
		// more to do.
		return nil
	}

	spanStart := i
	flush := func(end int) error {
		if spanStart < end {
			if err := emit(splitBytes(chunk[spanStart:end])); err != nil {
				return err
			}
		}
		return nil
	}

	for i < len(chunk) {
		b := chunk[i]
		switch b {
		case byteLF:
			if err := flush(i); err != nil {
				return err
			}
			if err := emit(splitEol(EolLF)); err != nil {
				return err
			}
			i++
			spanStart = i
		case byteVT:
			if err := flush(i); err != nil {
				return err
			}
			if err := emit(splitEol(EolVT)); err != nil {
				return err
			}
			i++
			spanStart = i
		case byteFF:
			if err := flush(i); err != nil {
				return err
			}
			if err := emit(splitEol(EolFF)); err != nil {
				return err
			}
			i++
			spanStart = i
		case byteCR:
			if i+1 < len(chunk) {
				if err := flush(i); err != nil {
					return err
				}
				if chunk[i+1] == byteLF {
					if err := emit(splitEol(EolCRLF)); err != nil {
						return err
					}
					i += 2
				} else {
					if err := emit(splitEol(EolCR)); err != nil {
						return err
					}
					i++
				}
				spanStart = i
			} else {
				if err := flush(i); err != nil {
					return err
				}
				s.pending = eolPendingCR
				return nil
			}
		case byteNEL0:
			if i+1 < len(chunk) {
				if chunk[i+1] == byteNEL1 {
					if err := flush(i); err != nil {
						return err
					}
					if err := emit(splitEol(EolNEL)); err != nil {
						return err
					}
					i += 2
					spanStart = i
				} else {
					// Literal 0xC2 not followed by 0x85: not a terminator,
					// stays part of the current Bytes span.
					i++
				}
			} else {
				if err := flush(i); err != nil {
					return err
				}
				s.pending = eolPendingNEL0
				return nil
			}
		case byteS0:
			if i+1 < len(chunk) {
				if chunk[i+1] == byteS1 {
					if i+2 < len(chunk) {
						switch chunk[i+2] {
						case byteLS2:
							if err := flush(i); err != nil {
								return err
							}
							if err := emit(splitEol(EolLS)); err != nil {
								return err
							}
							i += 3
							spanStart = i
						case bytePS2:
							if err := flush(i); err != nil {
								return err
							}
							if err := emit(splitEol(EolPS)); err != nil {
								return err
							}
							i += 3
							spanStart = i
						default:
							// Literal 0xE2 0x80, not a terminator.
							i += 2
						}
					} else {
						if err := flush(i); err != nil {
							return err
						}
						s.pending = eolPendingS1
						return nil
					}
				} else {
					// Literal 0xE2 only.
					i++
				}
			} else {
				if err := flush(i); err != nil {
					return err
				}
				s.pending = eolPendingS0
				return nil
			}
		default:
			i++
		}
	}
	return flush(i)
}

// Done reports at most one final event for any recognition still pending
// at end of stream: a deferred CR terminator, or a deferred partial
// multi-byte tail re-emitted as literal bytes.
func (s *EolSplitter) Done(emit func(Split) error) error {
	var err error
	switch s.pending {
	case eolPendingCR:
		err = emit(splitEol(EolCR))
	case eolPendingNEL0:
		err = emit(splitBytes([]byte{byteNEL0}))
	case eolPendingS0:
		err = emit(splitBytes([]byte{byteS0}))
	case eolPendingS1:
		err = emit(splitBytes([]byte{byteS0, byteS1}))
	}
	s.pending = eolPendingNone
	return err
}

// Reset discards any pending recognition, so the EolSplitter's storage may
// be reused after a fatal error upstream.
func (s *EolSplitter) Reset() {
	s.pending = eolPendingNone
}
