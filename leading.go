// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grappe

// LeadingCounter counts stream-wise leading occurrences of a chosen byte
// (the space/body splitter uses 0x20), bounded by a configured max, across
// chunk boundaries.
//
// Subtle rule: if the first non-matching byte is non-ASCII, the count is
// reduced by one — that byte likely belongs to a multi-byte codepoint whose
// first byte should be treated as the start of the body rather than a
// boundary that happens to follow a run of matches. When a run reaches
// exactly max at a chunk boundary, resolution is deferred to the next
// chunk's first byte: if that byte turns out to be non-ASCII, a synthetic
// carry byte (the matching byte) is reinjected at the front of the
// returned remainder so the consumer still sees it as part of the body.
type LeadingCounter struct {
	b        byte
	max      int
	count    int
	atCap    bool
	finished bool
}

// NewLeadingCounter returns a counter for byte b capped at max occurrences.
func NewLeadingCounter(b byte, max int) *LeadingCounter {
	return &LeadingCounter{b: b, max: max}
}

// Feed consumes chunk. When done is false, the entire chunk was matching
// bytes and the count so far is not yet final — call Feed again with the
// next chunk (or Finish at end of stream). When done is true, spaces holds
// the final leading count for this line and rest holds the unconsumed
// remainder of chunk (which may itself start with a synthetic carry byte).
func (c *LeadingCounter) Feed(chunk []byte) (spaces int, rest []byte, done bool) {
	if c.finished {
		return c.count, chunk, true
	}

	if c.atCap {
		if len(chunk) == 0 {
			return 0, nil, false
		}
		c.atCap = false
		c.finished = true
		if chunk[0] >= 0x80 {
			c.count--
			rest = make([]byte, 0, len(chunk)+1)
			rest = append(rest, c.b)
			rest = append(rest, chunk...)
			return c.count, rest, true
		}
		return c.count, chunk, true
	}

	i := 0
	for i < len(chunk) && chunk[i] == c.b && c.count < c.max {
		c.count++
		i++
	}
	if i == len(chunk) {
		if c.count == c.max {
			c.atCap = true
		}
		return c.count, nil, false
	}

	c.finished = true
	if c.count == c.max && chunk[i] == c.b {
		// Cap reached with further matches remaining in the same chunk:
		// those matches are unconditionally body.
		return c.count, chunk[i:], true
	}
	if chunk[i] >= 0x80 && c.count > 0 {
		c.count--
		rest = make([]byte, 0, len(chunk)-i+1)
		rest = append(rest, c.b)
		rest = append(rest, chunk[i:]...)
		return c.count, rest, true
	}
	return c.count, chunk[i:], true
}

// Finish finalizes the count at end of stream (or at a line terminator),
// with no further bytes to apply the decrement rule against.
func (c *LeadingCounter) Finish() int {
	c.atCap = false
	c.finished = true
	return c.count
}

// Reset prepares the counter to count a new line's leading run.
func (c *LeadingCounter) Reset() {
	c.count = 0
	c.atCap = false
	c.finished = false
}
