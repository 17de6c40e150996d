package main

import (
	"github.com/k0kubun/pp/v3"

	"github.com/k0kubun/m4syntax/internal/scratch"
	"github.com/k0kubun/m4syntax/syntax"
)

// debugState is a plain snapshot of a syntax.Table's externally
// visible state, since pp prints exported struct fields and
// syntax.Table keeps all of its fields private by design (orig §5:
// callers consume classification queries, not the table's internals).
type debugState struct {
	Quote          syntax.Pair
	Comment        syntax.Pair
	SingleQuotes   bool
	SingleComments bool
	MacroEscaped   bool
	QuoteAge       uint32
	CachedQuote    syntax.Pair
}

// debugDump pretty-prints t's externally visible state with pp, the
// same debug-printer reached for elsewhere in this ecosystem to
// inspect a parsed tree during development. CachedQuote exercises
// QuoteCache end-to-end against a pooled scratch.Arena, the same call
// a macro processor's own tokenizer would make once per quoted region.
func debugDump(t *syntax.Table) {
	quotes := t.GetQuotes()
	arena := scratch.Get()
	defer arena.Release()
	cached := t.QuoteCache(arena, t.QuoteAge(), &quotes)

	state := debugState{
		Quote:          quotes,
		Comment:        t.GetComments(),
		SingleQuotes:   t.IsSingleQuotes(),
		SingleComments: t.IsSingleComments(),
		MacroEscaped:   t.IsMacroEscaped(),
		QuoteAge:       t.QuoteAge(),
		CachedQuote:    *cached,
	}
	pp.Println(state)
}
