package syntax

import (
	"errors"
	"fmt"
)

// ErrUnknownKey is returned by CodeForKey and ChangeSyntax when key
// does not name a known category (orig §7, "Unknown category key").
// No state is changed when this is returned.
var ErrUnknownKey = errors.New("syntax: unknown category key")

// assertValidAction panics if action is not one of the four verbs.
// An invalid action byte is a programmer error, not user input, and
// is therefore a contract violation rather than a returned error
// (orig §7, "Contract violation").
func assertValidAction(action Action) {
	switch action {
	case ActionAdd, ActionSubtract, ActionSet, ActionReset:
		return
	default:
		panic(fmt.Sprintf("syntax: invalid changesyntax action %q", byte(action)))
	}
}

// assertNotNil panics if chars is nil for a verb that requires it. A
// full reinit (key == 0) and a per-category Reset (action == 0) both
// legitimately omit chars — resetting a single category takes no
// delimiter string — so only Add/Subtract/Set require a non-nil chars
// argument.
func assertNotNil(chars []byte, key byte, action Action) {
	if chars == nil && key != 0 && action != ActionReset {
		panic("syntax: changesyntax called with nil byte string and non-zero key")
	}
}
