// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grappe

import "encoding/binary"

// LineMeta is the per-line record: a leading ASCII space count, a body
// byte/codepoint count, and an optional terminator.
//
// Invariants: Chars == 0 iff Len == 0; if Len == 0 and Spaces == 0 then Eol
// must be set (a line contributes at least one byte or one terminator).
type LineMeta struct {
	Len    int // body byte count, 0..=MaxLineLen
	Chars  int // body codepoint count, 0..=MaxLineChars
	Spaces int // leading ASCII space count, 0..=MaxSpaces
	Eol    Eol // EolNone if the line has no terminator (only at end of stream)
}

// isShortForm reports whether m serializes to the 1-byte form: both Spaces
// and Len are zero and a terminator is present. Per the normative decision
// recorded in DESIGN.md, Spaces > 0 with Len == 0 still takes the 4-byte
// form — only "nothing at all but a terminator" gets the 1-byte encoding.
func (m LineMeta) isShortForm() bool {
	return m.Len == 0 && m.Spaces == 0 && m.Eol != EolNone
}

// sizeBytes returns the serialized size of m: 1 or 4.
func (m LineMeta) sizeBytes() int {
	if m.isShortForm() {
		return 1
	}
	return 4
}

// serializeLineMeta appends the packed encoding of m to dst and returns the
// result.
func serializeLineMeta(dst []byte, m LineMeta) []byte {
	if m.isShortForm() {
		return append(dst, 0x80|byte(m.Eol)<<3)
	}
	var buf [4]byte
	v := uint32(m.Eol)<<27 | uint32(m.Len)<<17 | uint32(m.Chars)<<7 | uint32(m.Spaces)
	binary.BigEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}

// writeLineMetaAt writes the packed encoding of m into buf at offset at,
// in place, and returns the number of bytes written (1 or 4). buf must
// have at least 4 bytes available from at onward.
func writeLineMetaAt(buf []byte, at int, m LineMeta) int {
	if m.isShortForm() {
		buf[at] = 0x80 | byte(m.Eol)<<3
		return 1
	}
	v := uint32(m.Eol)<<27 | uint32(m.Len)<<17 | uint32(m.Chars)<<7 | uint32(m.Spaces)
	binary.BigEndian.PutUint32(buf[at:at+4], v)
	return 4
}

// deserializeLineMeta reads one packed LineMeta from the front of b,
// returning the record and the number of bytes consumed (1 or 4). It
// inspects only the first byte's high bit to choose the form; b must have
// at least 4 bytes available unless the high bit is set.
func deserializeLineMeta(b []byte) (LineMeta, int) {
	if b[0]&0x80 != 0 {
		e := Eol((b[0] >> 3) & 0x0F)
		return LineMeta{Eol: e}, 1
	}
	v := binary.BigEndian.Uint32(b[:4])
	return LineMeta{
		Eol:    Eol((v >> 27) & 0x0F),
		Len:    int((v >> 17) & 0x3FF),
		Chars:  int((v >> 7) & 0x3FF),
		Spaces: int(v & 0x7F),
	}, 4
}
