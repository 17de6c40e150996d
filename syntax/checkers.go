package syntax

// checkIsSingleQuotes re-validates the single-quotes flag after a
// mutation that might have invalidated it (orig §4.5). It only runs
// when the flag is currently true; once false, only an installer or
// full reset can set it true again.
func (t *Table) checkIsSingleQuotes() bool {
	if !t.singleQuotes {
		return false
	}

	if len(t.quote.Left) == 1 && len(t.quote.Right) == 1 &&
		t.HasCategory(t.quote.Left[0], LQUOTE) &&
		t.HasCategory(t.quote.Right[0], RQUOTE) {
		return true
	}

	lquote, rquote := -1, -1
	for b := 0; b < 256; b++ {
		byt := byte(b)
		if t.HasCategory(byt, LQUOTE) {
			if lquote == -1 {
				lquote = b
			} else {
				t.singleQuotes = false
				break
			}
		}
		if t.HasCategory(byt, RQUOTE) {
			if rquote == -1 {
				rquote = b
			} else {
				t.singleQuotes = false
				break
			}
		}
	}

	if lquote == -1 || rquote == -1 {
		t.singleQuotes = false
	} else if t.singleQuotes {
		t.quote.Left = []byte{byte(lquote)}
		t.quote.Right = []byte{byte(rquote)}
	}

	return t.singleQuotes
}

// checkIsSingleComments is checkIsSingleQuotes's analogue for
// BCOMM/ECOMM and the comment delimiter strings (orig §4.5).
func (t *Table) checkIsSingleComments() bool {
	if !t.singleComments {
		return false
	}

	if len(t.comment.Left) == 1 && len(t.comment.Right) == 1 &&
		t.HasCategory(t.comment.Left[0], BCOMM) &&
		t.HasCategory(t.comment.Right[0], ECOMM) {
		return true
	}

	bcomm, ecomm := -1, -1
	for b := 0; b < 256; b++ {
		byt := byte(b)
		if t.HasCategory(byt, BCOMM) {
			if bcomm == -1 {
				bcomm = b
			} else {
				t.singleComments = false
				break
			}
		}
		if t.HasCategory(byt, ECOMM) {
			if ecomm == -1 {
				ecomm = b
			} else {
				t.singleComments = false
				break
			}
		}
	}

	if bcomm == -1 || ecomm == -1 {
		t.singleComments = false
	} else if t.singleComments {
		t.comment.Left = []byte{byte(bcomm)}
		t.comment.Right = []byte{byte(ecomm)}
	}

	return t.singleComments
}

// checkIsMacroEscaped scans for any byte carrying the ESCAPE basis
// and sets the flag unconditionally, unlike the other two checkers —
// there is no cheap "still valid" shortcut for a plain basis scan
// (orig §4.5).
func (t *Table) checkIsMacroEscaped() bool {
	t.macroEscaped = false
	for b := 0; b < 256; b++ {
		if t.HasCategory(byte(b), ESCAPE) {
			t.macroEscaped = true
			break
		}
	}
	return t.macroEscaped
}
