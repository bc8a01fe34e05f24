// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grappe

// Eol identifies one of the eight Unicode line-terminator variants. The
// variant set and byte encodings are normative: any conforming
// implementation produces and consumes exactly these, and prefers CRLF over
// a bare CR+LF pair whenever both recognitions are possible.
type Eol uint8

const (
	// EolNone means "no terminator" (used internally; never serialized on
	// its own — a finalized LineMeta either has a real Eol or none at all).
	EolNone Eol = 0
	EolLF   Eol = 1
	EolVT   Eol = 2
	EolFF   Eol = 3
	EolCR   Eol = 4
	EolNEL  Eol = 5
	EolLS   Eol = 6
	EolPS   Eol = 7
	EolCRLF Eol = 8
)

// Leading bytes of the multi-byte terminators. NEL is two bytes, LS and PS
// share their first two bytes and differ only in the last.
const (
	byteLF   = 0x0A
	byteVT   = 0x0B
	byteFF   = 0x0C
	byteCR   = 0x0D
	byteNEL0 = 0xC2
	byteNEL1 = 0x85
	byteS0   = 0xE2
	byteS1   = 0x80
	byteLS2  = 0xA8
	bytePS2  = 0xA9
)

// Bytes returns the wire byte sequence for e, or nil for EolNone.
func (e Eol) Bytes() []byte {
	switch e {
	case EolLF:
		return []byte{byteLF}
	case EolVT:
		return []byte{byteVT}
	case EolFF:
		return []byte{byteFF}
	case EolCR:
		return []byte{byteCR}
	case EolNEL:
		return []byte{byteNEL0, byteNEL1}
	case EolLS:
		return []byte{byteS0, byteS1, byteLS2}
	case EolPS:
		return []byte{byteS0, byteS1, bytePS2}
	case EolCRLF:
		return []byte{byteCR, byteLF}
	default:
		return nil
	}
}

// String returns a short human-readable name, for logging and test output.
func (e Eol) String() string {
	switch e {
	case EolNone:
		return "None"
	case EolLF:
		return "LF"
	case EolVT:
		return "VT"
	case EolFF:
		return "FF"
	case EolCR:
		return "CR"
	case EolNEL:
		return "NEL"
	case EolLS:
		return "LS"
	case EolPS:
		return "PS"
	case EolCRLF:
		return "CRLF"
	default:
		return "Eol(?)"
	}
}

// valid reports whether e is one of the nine defined discriminants
// (EolNone plus the eight terminators). Values 9-15 are reserved by the wire
// format and never produced.
func (e Eol) valid() bool {
	return e <= EolCRLF
}
