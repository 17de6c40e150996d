package syntax

// SetQuotes installs a new quote delimiter pair (the changequote
// builtin), per orig §4.4:
//
//   - lq == nil: restore the defaults "`"/"'".
//   - lq non-nil but rq == nil, or lq non-empty but rq empty: rq
//     becomes "'".
//   - lq empty: quoting is disabled (both strings end up empty).
//
// A no-op if the resulting pair equals the current one byte-for-byte.
func (t *Table) SetQuotes(lq, rq []byte) {
	if lq == nil {
		lq = []byte{defaultLQuote}
		rq = []byte{defaultRQuote}
	} else if rq == nil || (len(lq) > 0 && len(rq) == 0) {
		rq = []byte{defaultRQuote}
	}

	if t.quote.equal(lq, rq) {
		return
	}

	t.quote = Pair{Left: cloneBytes(lq), Right: cloneBytes(rq)}

	t.singleQuotes = len(t.quote.Left) == 1 && len(t.quote.Right) == 1 &&
		!hasAnyBasis(t.current[t.quote.Left[0]], quoteSafetyBlockers...)

	for b := 0; b < 256; b++ {
		byt := byte(b)
		if t.HasCategory(byt, LQUOTE) {
			if t.defaultTable[byt].basis() == LQUOTE {
				t.addAttribute(byt, OTHER)
			} else {
				t.addAttribute(byt, t.defaultTable[byt])
			}
		}
		t.removeAttribute(byt, RQUOTE)
	}

	if t.singleQuotes {
		t.addAttribute(t.quote.Left[0], LQUOTE)
		t.addAttribute(t.quote.Right[0], RQUOTE)
	}

	if t.macroEscaped {
		t.checkIsMacroEscaped()
	}

	t.setQuoteAge(false, false)
}

// SetComment installs a new comment delimiter pair (the changecom
// builtin), symmetric to SetQuotes per orig §4.4:
//
//   - bc == nil: disable comments (both strings end up empty).
//   - bc non-nil but ec == nil, or bc non-empty but ec empty: ec
//     becomes "\n".
//
// is_single_comments additionally treats LQUOTE as a precedence
// blocker, since LQUOTE outranks BCOMM in the tokenizer.
func (t *Table) SetComment(bc, ec []byte) {
	if bc == nil {
		bc = []byte{}
		ec = []byte{}
	} else if ec == nil || (len(bc) > 0 && len(ec) == 0) {
		ec = []byte{defaultEComm}
	}

	if t.comment.equal(bc, ec) {
		return
	}

	t.comment = Pair{Left: cloneBytes(bc), Right: cloneBytes(ec)}

	t.singleComments = len(t.comment.Left) == 1 && len(t.comment.Right) == 1 &&
		!hasAnyBasis(t.current[t.comment.Left[0]], commentSafetyBlockers...)

	for b := 0; b < 256; b++ {
		byt := byte(b)
		if t.HasCategory(byt, BCOMM) {
			if t.defaultTable[byt].basis() == BCOMM {
				t.addAttribute(byt, OTHER)
			} else {
				t.addAttribute(byt, t.defaultTable[byt])
			}
		}
		t.removeAttribute(byt, ECOMM)
	}

	if t.singleComments {
		t.addAttribute(t.comment.Left[0], BCOMM)
		t.addAttribute(t.comment.Right[0], ECOMM)
	}

	if t.macroEscaped {
		t.checkIsMacroEscaped()
	}

	t.setQuoteAge(false, false)
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return []byte{}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
