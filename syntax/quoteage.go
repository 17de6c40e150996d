package syntax

// quoteCache backs QuoteCache's two modes (orig §4.6): a pair of
// one-byte backing slots reconstructed from a non-zero age, and a
// memoized scratch-allocated copy for the zero-age path.
type quoteCache struct {
	simpleLeft, simpleRight [1]byte
	simple                  Pair

	memoized *Pair
}

// Scratch is the arena a zero-age QuoteCache call copies the current
// quote pair onto. orig §4.6 calls this "a scratch allocator handle"
// and explicitly leaves obstack-style output buffers to an external
// collaborator (orig §1); internal/scratch.Arena is this module's
// concrete stand-in.
type Scratch interface {
	// Copy returns a slice holding a copy of b. The returned slice
	// remains valid until the allocator is reset.
	Copy(b []byte) []byte
}

func (t *Table) QuoteAge() uint32 {
	return t.quoteAge
}

// setQuoteAge recomputes quoteAge. reset forces the syntax-age
// counter to zero (a full reinit); change means an arbitrary
// changesyntax mutation happened, so the counter advances (saturating
// at 0xFFFF); otherwise (a quote/comment installer ran) the counter is
// left untouched (orig §4.6).
func (t *Table) setQuoteAge(reset, change bool) {
	var localAge uint16
	switch {
	case reset:
		localAge = 0
	case change && t.syntaxAge < 0xFFFF:
		t.syntaxAge++
		localAge = t.syntaxAge
	default:
		localAge = t.syntaxAge
	}
	t.syntaxAge = localAge

	if t.quoteAgeSafe(localAge) {
		t.quoteAge = uint32(localAge)<<16 | uint32(t.quote.Left[0])<<8 | uint32(t.quote.Right[0])
	} else {
		t.quoteAge = 0
	}
}

// quoteAgeSafe implements the six safety predicates of orig §4.6.
func (t *Table) quoteAgeSafe(localAge uint16) bool {
	if localAge >= 0xFFFF || !t.singleQuotes {
		return false
	}

	lq, rq := t.quote.Left[0], t.quote.Right[0]

	if hasAnyBasis(t.current[lq], quoteAgeBlockers...) ||
		hasAnyBasis(t.current[rq], quoteAgeBlockers...) {
		return false
	}
	if lq == rq {
		return false
	}
	if len(t.comment.Left) != 0 {
		bc := t.comment.Left[0]
		if bc == rq || hasAnyBasis(t.current[bc], OPEN, COMMA, CLOSE) {
			return false
		}
	}
	return t.HasCategory(',', COMMA)
}

// InvalidateQuoteCache discards the memoized zero-age copy.
func (t *Table) InvalidateQuoteCache() {
	t.cache.memoized = nil
}

// QuoteCache implements the two modes of orig §4.6's quote-cache
// interface:
//
//   - age != 0: reconstruct a one-byte/one-byte view from age's lower
//     16 bits into the table's own backing bytes. The result is valid
//     until the next QuoteCache call on t.
//   - age == 0: copy quotes onto scratch once and memoize the
//     pointer; subsequent zero-age calls with the same quotes return
//     the memoized copy without copying again, until InvalidateQuoteCache
//     runs.
//
// Returns nil if quotes is nil.
func (t *Table) QuoteCache(scratch Scratch, age uint32, quotes *Pair) *Pair {
	if quotes == nil {
		return nil
	}
	if age != 0 {
		t.cache.simpleLeft[0] = byte(age >> 8)
		t.cache.simpleRight[0] = byte(age)
		t.cache.simple = Pair{
			Left:  t.cache.simpleLeft[:],
			Right: t.cache.simpleRight[:],
		}
		return &t.cache.simple
	}
	if scratch == nil {
		return quotes
	}
	if t.cache.memoized == nil {
		t.cache.memoized = &Pair{
			Left:  scratch.Copy(quotes.Left),
			Right: scratch.Copy(quotes.Right),
		}
	}
	return t.cache.memoized
}
