// Package syntax implements the per-byte classification table that
// drives an m4-style macro processor's tokenizer: it decides which
// lexical role each byte of input plays, and coordinates the
// changesyntax, changequote, and changecom directives that let a user
// reassign those roles at runtime.
package syntax

// Category is the classification assigned to a single byte. The low
// byte carries one of the basis constants below; RQUOTE and ECOMM are
// mask bits that may be ORed onto any basis.
type Category uint16

// Basis categories. Mutually exclusive: a byte carries exactly one of
// these at a time, in the low byte of its table entry.
const (
	IGNORE Category = iota // inert: never set by the defaults or an installer, only by changesyntax with key I
	OTHER
	SPACE
	OPEN
	CLOSE
	COMMA
	DOLLAR
	LBRACE
	RBRACE
	ACTIVE // accepted by CodeForKey and changesyntax, never installed
	ESCAPE
	ALPHA
	NUM
	LQUOTE
	BCOMM
)

// Mask categories. Bit flags ORed onto a basis; a byte can carry a
// mask alongside any basis it happens to have, e.g. '\n' is SPACE|ECOMM
// by default.
const (
	RQUOTE Category = 1 << 8
	ECOMM  Category = 1 << 9
)

// Masks is the OR of every mask category. (code & Masks) != 0 tells
// add/remove/set/reset whether code names a mask or a basis.
const Masks = RQUOTE | ECOMM

// basisBits masks off everything but the basis portion of an entry.
const basisBits Category = 0xFF

var categoryNames = map[Category]string{
	IGNORE: "IGNORE",
	OTHER:  "OTHER",
	SPACE:  "SPACE",
	OPEN:   "OPEN",
	CLOSE:  "CLOSE",
	COMMA:  "COMMA",
	DOLLAR: "DOLLAR",
	LBRACE: "LBRACE",
	RBRACE: "RBRACE",
	ACTIVE: "ACTIVE",
	ESCAPE: "ESCAPE",
	ALPHA:  "ALPHA",
	NUM:    "NUM",
	LQUOTE: "LQUOTE",
	BCOMM:  "BCOMM",
	RQUOTE: "RQUOTE",
	ECOMM:  "ECOMM",
}

// String renders the basis name plus any mask suffixes, e.g. "SPACE+ECOMM".
func (c Category) String() string {
	name, ok := categoryNames[c&basisBits]
	if !ok {
		name = "OTHER"
	}
	if c&RQUOTE != 0 {
		name += "+RQUOTE"
	}
	if c&ECOMM != 0 {
		name += "+ECOMM"
	}
	return name
}

// HasMask reports whether c carries the given mask bit(s).
func (c Category) HasMask(mask Category) bool {
	return c&mask != 0
}

func (c Category) basis() Category {
	return c & basisBits
}

// Basis is basis exported for callers outside the package.
func (c Category) Basis() Category {
	return c.basis()
}

func hasAnyBasis(entry Category, set ...Category) bool {
	b := entry.basis()
	for _, s := range set {
		if b == s {
			return true
		}
	}
	return false
}

// quoteSafetyBlockers is the set of basis categories whose presence on
// a quote byte defeats installing LQUOTE/RQUOTE there effectively,
// because they take precedence over LQUOTE in the tokenizer (orig §4.4).
var quoteSafetyBlockers = []Category{IGNORE, ESCAPE, ALPHA, NUM}

// commentSafetyBlockers adds LQUOTE to quoteSafetyBlockers, since
// LQUOTE outranks BCOMM in the tokenizer's precedence order (orig §4.4).
var commentSafetyBlockers = []Category{IGNORE, ESCAPE, ALPHA, NUM, LQUOTE}

// quoteAgeBlockers is the set of basis categories that make a
// single-character quote delimiter unsafe for the quote-age fast path
// (orig §4.6).
var quoteAgeBlockers = []Category{ALPHA, NUM, OPEN, COMMA, CLOSE, SPACE}
