// Package scratch implements a small reusable byte arena, the
// concrete stand-in for the obstack-style scratch allocator
// syntax.Table.QuoteCache expects. Output-buffer allocation is left to
// an external collaborator; this package is that collaborator.
//
// Unlike original_source/m4/syntax.c's single append-only obstack,
// QuoteCache needs to copy two independent byte strings per call and
// hand back stable pointers to both, so Arena hands out individually
// addressable copies from a pooled backing buffer instead of one
// monotonic stream.
package scratch

import "sync"

// Arena is a reusable byte buffer. Copy appends b's bytes and returns
// a slice aliasing the arena's storage; that slice is valid until the
// next Reset.
type Arena struct {
	buf []byte
}

var pool = sync.Pool{New: func() any { return new(Arena) }}

// Get returns an Arena from the shared pool. Callers should Put it
// back via Release when done.
func Get() *Arena {
	return pool.Get().(*Arena)
}

func (a *Arena) Release() {
	a.buf = a.buf[:0]
	pool.Put(a)
}

// Copy appends a copy of b onto the arena and returns the appended
// slice. The slice is only valid until the next Reset.
func (a *Arena) Copy(b []byte) []byte {
	start := len(a.buf)
	a.buf = append(a.buf, b...)
	return a.buf[start:len(a.buf):len(a.buf)]
}

func (a *Arena) Reset() {
	a.buf = a.buf[:0]
}
