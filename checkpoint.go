// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grappe

import (
	"errors"

	"code.hybscloud.com/grappe/internal/bo"
)

// checkpointMagic tags an encoded Checkpoint so DecodeCheckpoint can reject
// bytes from an unrelated source before trusting their layout.
const checkpointMagic = 0x67726370 // "grcp"

const checkpointVersion = 1

// ErrInvalidCheckpoint is returned by DecodeCheckpoint when the input is too
// short, carries the wrong magic, or names an unsupported version.
var ErrInvalidCheckpoint = errors.New("grappe: invalid checkpoint")

// Checkpoint is a snapshot of everything an Ingester needs to resume
// ingestion of a single logical byte stream across a process restart: the
// validator's pending UTF-8 joint bytes, the line splitters' pending
// recognition state, and the document's cumulative offsets.
//
// A Checkpoint does NOT capture the in-progress page buffer; resuming from
// one always starts a fresh page, so the resumed stream's first page may
// end up smaller than PageBytes would otherwise allow. This is a deliberate
// trade: the alternative (snapshotting PageBuilder's raw buffer) ties the
// token's layout to PageBytes at capture time, which would make a token
// captured under one configuration unusable under another.
//
// Checkpoint is encoded with the machine's native byte order, via
// internal/bo, since a token is only ever produced and consumed on the same
// host — unlike the page binary format, it never crosses a wire.
type Checkpoint struct {
	Offsets Offsets

	JointLen int
	Joint    [4]byte

	EolPending   uint8
	InSpaces     bool
	CounterByte  byte
	CounterMax   int
	CounterCount int
	CounterAtCap bool
}

// Checkpoint captures the Ingester's current resumable state. It does not
// observe or alter the in-progress page.
func (ig *Ingester) Checkpoint() Checkpoint {
	c := Checkpoint{
		Offsets:    Offsets{Bytes: ig.pages.offBytes, Chars: ig.pages.offChars, Lines: ig.pages.offLines},
		JointLen:   ig.val.jointLen,
		Joint:      ig.val.joint,
		EolPending: uint8(ig.lines.eol.pending),
		InSpaces:   ig.lines.inSpaces,
	}
	if ctr := ig.lines.counter; ctr != nil {
		c.CounterByte = ctr.b
		c.CounterMax = ctr.max
		c.CounterCount = ctr.count
		c.CounterAtCap = ctr.atCap
	}
	return c
}

// Restore resets ig to a fresh pipeline and re-applies a previously
// captured Checkpoint's pending state. The caller must feed the same
// unconsumed tail of bytes that followed the chunk boundary at which the
// checkpoint was taken; Restore only rehydrates carry-over state, it does
// not replay consumed input.
func (ig *Ingester) Restore(c Checkpoint) {
	ig.Reset()
	ig.pages.offBytes = c.Offsets.Bytes
	ig.pages.offChars = c.Offsets.Chars
	ig.pages.offLines = c.Offsets.Lines
	ig.val.joint = c.Joint
	ig.val.jointLen = c.JointLen
	ig.lines.eol.pending = eolPending(c.EolPending)
	ig.lines.inSpaces = c.InSpaces
	ig.lines.counter.b = c.CounterByte
	ig.lines.counter.max = c.CounterMax
	ig.lines.counter.count = c.CounterCount
	ig.lines.counter.atCap = c.CounterAtCap
}

// EncodeCheckpoint serializes c using the machine's native byte order.
func EncodeCheckpoint(c Checkpoint) []byte {
	order := bo.Native()
	buf := make([]byte, 4+4+8*3+4+4+1+1+1+4+4+1)
	i := 0
	order.PutUint32(buf[i:], checkpointMagic)
	i += 4
	order.PutUint32(buf[i:], checkpointVersion)
	i += 4
	order.PutUint64(buf[i:], uint64(c.Offsets.Bytes))
	i += 8
	order.PutUint64(buf[i:], uint64(c.Offsets.Chars))
	i += 8
	order.PutUint64(buf[i:], uint64(c.Offsets.Lines))
	i += 8
	order.PutUint32(buf[i:], uint32(c.JointLen))
	i += 4
	copy(buf[i:i+4], c.Joint[:])
	i += 4
	buf[i] = c.EolPending
	i++
	buf[i] = boolToByte(c.InSpaces)
	i++
	buf[i] = c.CounterByte
	i++
	order.PutUint32(buf[i:], uint32(c.CounterMax))
	i += 4
	order.PutUint32(buf[i:], uint32(c.CounterCount))
	i += 4
	buf[i] = boolToByte(c.CounterAtCap)
	i++
	return buf[:i]
}

// DecodeCheckpoint is the inverse of EncodeCheckpoint.
func DecodeCheckpoint(b []byte) (Checkpoint, error) {
	order := bo.Native()
	const minLen = 4 + 4 + 8*3 + 4 + 4 + 1 + 1 + 1 + 4 + 4 + 1
	if len(b) < minLen {
		return Checkpoint{}, ErrInvalidCheckpoint
	}
	i := 0
	if order.Uint32(b[i:]) != checkpointMagic {
		return Checkpoint{}, ErrInvalidCheckpoint
	}
	i += 4
	if order.Uint32(b[i:]) != checkpointVersion {
		return Checkpoint{}, ErrInvalidCheckpoint
	}
	i += 4
	var c Checkpoint
	c.Offsets.Bytes = int64(order.Uint64(b[i:]))
	i += 8
	c.Offsets.Chars = int64(order.Uint64(b[i:]))
	i += 8
	c.Offsets.Lines = int64(order.Uint64(b[i:]))
	i += 8
	c.JointLen = int(order.Uint32(b[i:]))
	i += 4
	copy(c.Joint[:], b[i:i+4])
	i += 4
	c.EolPending = b[i]
	i++
	c.InSpaces = b[i] != 0
	i++
	c.CounterByte = b[i]
	i++
	c.CounterMax = int(order.Uint32(b[i:]))
	i += 4
	c.CounterCount = int(order.Uint32(b[i:]))
	i += 4
	c.CounterAtCap = b[i] != 0
	return c, nil
}

func boolToByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
