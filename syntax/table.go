package syntax

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/k0kubun/m4syntax/util"
)

// Default delimiter bytes, per original_source/m4/syntax.c's
// DEF_LQUOTE/DEF_RQUOTE/DEF_BCOMM/DEF_ECOMM.
const (
	defaultLQuote = '`'
	defaultRQuote = '\''
	defaultBComm  = '#'
	defaultEComm  = '\n'
)

// Table is the syntax table: a long-lived, single-owner value that
// classifies every byte of macro-processor input and tracks the
// current quote/comment delimiters. It is not safe for concurrent
// mutation (orig §5) — callers must not mutate a Table via one handle
// while iterating classification via another.
type Table struct {
	id uuid.UUID

	// defaultTable is computed once at creation and never mutated
	// again (invariant I5).
	defaultTable [256]Category
	// current is mutated in place by changesyntax, set_quotes, and
	// set_comment.
	current [256]Category

	quote   Pair
	comment Pair

	singleQuotes   bool
	singleComments bool
	macroEscaped   bool

	syntaxAge uint16 // saturating counter of arbitrary-syntax mutations
	quoteAge  uint32 // packed safety token, see quoteage.go

	cache quoteCache

	log *slog.Logger
}

// New creates a syntax table with default categories and default
// quote/comment delimiters installed (orig §4.1, §6 "Defaults on a
// fresh table").
func New() *Table {
	t := &Table{id: uuid.New()}
	t.log = util.TableLogger(t.id.String())

	for b := 0; b < 256; b++ {
		t.defaultTable[b] = defaultBasisFor(byte(b))
	}
	t.current = t.defaultTable

	// Force the default delimiters into place via the reset path,
	// exactly as m4_syntax_create calls m4_set_syntax(syntax, 0, 0, nil).
	t.reinit()

	return t
}

func defaultBasisFor(b byte) Category {
	switch b {
	case '(':
		return OPEN
	case ')':
		return CLOSE
	case ',':
		return COMMA
	case '$':
		return DOLLAR
	case '{':
		return LBRACE
	case '}':
		return RBRACE
	case '`':
		return LQUOTE
	case '#':
		return BCOMM
	}
	switch {
	case isASCIISpace(b):
		return SPACE
	case isASCIILetter(b) || b == '_':
		return ALPHA
	case isASCIIDigit(b):
		return NUM
	default:
		return OTHER
	}
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	}
	return false
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Close releases the table's delimiter buffers and cached quote copy.
// A Table is ordinary Go memory and does not strictly need this to
// avoid a leak, but it gives callers a single place to invalidate a
// table they are done with.
func (t *Table) Close() {
	t.quote = Pair{}
	t.comment = Pair{}
	t.cache = quoteCache{}
}

func (t *Table) Classify(b byte) Category {
	return t.current[b]
}

// HasCategory reports whether b's current entry intersects code. For
// a mask code this is a bit-test; for a basis code it is equality
// against the stored basis, since precisely one basis is ever set
// per byte. This is the hot path the tokenizer calls once per input
// byte (orig §9): a table load and a comparison.
func (t *Table) HasCategory(b byte, code Category) bool {
	entry := t.current[b]
	if code&Masks != 0 {
		return entry.HasMask(code)
	}
	return entry.basis() == code
}

// GetQuotes returns the owned quote pair. The returned Pair's slices
// are only valid until the next mutating call on t.
func (t *Table) GetQuotes() Pair {
	return t.quote
}

func (t *Table) GetComments() Pair {
	return t.comment
}

func (t *Table) IsSingleQuotes() bool { return t.singleQuotes }

func (t *Table) IsSingleComments() bool { return t.singleComments }

func (t *Table) IsMacroEscaped() bool { return t.macroEscaped }

// reinit restores current to defaultTable and reinstalls the default
// quote/comment delimiters and derived booleans. This is both the
// construction-time setup and the changesyntax(key='\0') reset path
// (orig §4.3's "Reset" description of the null-key case).
func (t *Table) reinit() {
	t.current = t.defaultTable

	t.quote = Pair{Left: []byte{defaultLQuote}, Right: []byte{defaultRQuote}}
	t.comment = Pair{Left: []byte{defaultBComm}, Right: []byte{defaultEComm}}

	t.addAttribute(defaultRQuote, RQUOTE)
	t.addAttribute(defaultEComm, ECOMM)

	t.singleQuotes = true
	t.singleComments = true
	t.macroEscaped = false

	t.setQuoteAge(true, false)
}
