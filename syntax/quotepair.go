package syntax

import "bytes"

// Pair is an owned pair of byte strings: a delimiter's left and right
// halves (a quote pair or a comment pair). This module's garbage
// collector and the original C's explicit free() amount to the same
// contract from a caller's point of view — Left/Right are only valid
// until the next mutating call on the owning Table.
type Pair struct {
	Left  []byte
	Right []byte
}

func (p Pair) equal(left, right []byte) bool {
	return bytes.Equal(p.Left, left) && bytes.Equal(p.Right, right)
}
