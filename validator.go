// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grappe

import "unicode/utf8"

// Validator incrementally validates UTF-8 across chunk boundaries. It
// maintains a joint: a small buffer holding bytes carried over from the
// previous chunk's trailing incomplete codepoint.
//
// Validator is not safe for concurrent use; it belongs to exactly one
// ingestion pipeline at a time, per the package's single-writer model.
type Validator struct {
	joint    [4]byte
	jointLen int
}

// NewValidator returns a Validator with an empty joint.
func NewValidator() *Validator { return &Validator{} }

// Validate consumes chunk and returns (carry, valid, err).
//
// carry is non-empty iff the previous call buffered a partial codepoint
// that has now completed with bytes from chunk; it is always exactly one
// rune, encoded as UTF-8.
//
// valid is the longest validated prefix of the remainder of chunk (after
// any carry resolution); it never contains a partial trailing codepoint —
// any such tail is buffered in the joint for the next call.
//
// err is ErrUTF8 if any byte cannot belong to a valid UTF-8 codepoint. On
// error the joint is cleared so the Validator may be reused.
func (v *Validator) Validate(chunk []byte) (carry, valid string, err error) {
	pos := 0

	if v.jointLen > 0 {
		for pos < len(chunk) {
			v.joint[v.jointLen] = chunk[pos]
			v.jointLen++
			pos++
			if utf8.FullRune(v.joint[:v.jointLen]) {
				r, size := utf8.DecodeRune(v.joint[:v.jointLen])
				if r == utf8.RuneError && size <= 1 {
					v.jointLen = 0
					return "", "", ErrUTF8
				}
				carry = string(r)
				v.jointLen = 0
				break
			}
			if v.jointLen == len(v.joint) {
				v.jointLen = 0
				return "", "", ErrUTF8
			}
		}
		if v.jointLen > 0 {
			// Ran out of chunk bytes before the joint resolved; nothing
			// more to scan this call.
			return "", "", nil
		}
	}

	start := pos
	i := pos
	for i < len(chunk) {
		r, size := utf8.DecodeRune(chunk[i:])
		if r == utf8.RuneError && size <= 1 {
			if utf8.FullRune(chunk[i:]) {
				return "", "", ErrUTF8
			}
			// Incomplete trailing sequence: stash it for the next call.
			v.jointLen = copy(v.joint[:], chunk[i:])
			valid = string(chunk[start:i])
			return carry, valid, nil
		}
		i += size
	}
	valid = string(chunk[start:i])
	return carry, valid, nil
}

// Done reports whether a partial codepoint remains buffered at end of
// stream, which is fatal per the validator's error semantics.
func (v *Validator) Done() error {
	if v.jointLen > 0 {
		v.jointLen = 0
		return ErrUTF8
	}
	return nil
}

// Reset clears the joint, discarding any buffered partial codepoint. Used
// after a fatal error so the Validator's storage can be reused.
func (v *Validator) Reset() {
	v.jointLen = 0
}
