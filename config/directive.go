package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/k0kubun/m4syntax/syntax"
)

// Directive is one parsed line of a profile or an --exec script:
// either a changesyntax call or a changequote/changecom installer
// call.
type Directive struct {
	verb   string // "changesyntax", "changequote", "changecom"
	key    byte
	action syntax.Action
	chars  []byte
	left   []byte
	right  []byte
	noArgs bool
}

// ParseDirective parses one directive line. Grammar:
//
//	changesyntax <key> <action> [chars]   action ∈ {+, -, =, reset}
//	changequote [left [right]]
//	changecom [begin [end]]
//
// An omitted changesyntax chars argument is the empty string.
// Tokens may use the escapes \n \t \\ \s (space) and \xHH to name
// bytes that would otherwise be awkward to type in a config file.
func ParseDirective(line string) (Directive, error) {
	return ParseDirectiveFields(strings.Fields(line))
}

// ParseDirectiveFields is ParseDirective for callers that already
// have the directive split into fields, such as a shell-quoted --exec
// script split with github.com/kballard/go-shellquote.
func ParseDirectiveFields(fields []string) (Directive, error) {
	if len(fields) == 0 {
		return Directive{}, fmt.Errorf("empty directive")
	}

	switch fields[0] {
	case "changesyntax":
		return parseChangeSyntax(fields[1:])
	case "changequote":
		return parseDelimiterDirective("changequote", fields[1:])
	case "changecom":
		return parseDelimiterDirective("changecom", fields[1:])
	default:
		return Directive{}, fmt.Errorf("unknown directive %q", fields[0])
	}
}

func parseChangeSyntax(args []string) (Directive, error) {
	if len(args) < 2 {
		return Directive{}, fmt.Errorf("changesyntax needs a key and an action")
	}
	if len(args[0]) != 1 {
		return Directive{}, fmt.Errorf("changesyntax key must be one byte, got %q", args[0])
	}
	key := args[0][0]

	var action syntax.Action
	switch args[1] {
	case "+":
		action = syntax.ActionAdd
	case "-":
		action = syntax.ActionSubtract
	case "=":
		action = syntax.ActionSet
	case "reset":
		action = syntax.ActionReset
	default:
		return Directive{}, fmt.Errorf("unknown changesyntax action %q", args[1])
	}

	chars := []byte{}
	if len(args) >= 3 {
		decoded, err := unescape(args[2])
		if err != nil {
			return Directive{}, err
		}
		chars = decoded
	}

	return Directive{verb: "changesyntax", key: key, action: action, chars: chars}, nil
}

func parseDelimiterDirective(verb string, args []string) (Directive, error) {
	d := Directive{verb: verb}
	if len(args) == 0 {
		d.noArgs = true
		return d, nil
	}
	left, err := unescape(args[0])
	if err != nil {
		return Directive{}, err
	}
	d.left = left
	if len(args) >= 2 {
		right, err := unescape(args[1])
		if err != nil {
			return Directive{}, err
		}
		d.right = right
	}
	return d, nil
}

// Apply runs the parsed directive against t.
func (d Directive) Apply(t *syntax.Table) error {
	switch d.verb {
	case "changesyntax":
		_, err := t.ChangeSyntax(d.key, d.action, d.chars)
		return err
	case "changequote":
		if d.noArgs {
			t.SetQuotes(nil, nil)
		} else {
			t.SetQuotes(d.left, d.right)
		}
		return nil
	case "changecom":
		if d.noArgs {
			t.SetComment(nil, nil)
		} else {
			t.SetComment(d.left, d.right)
		}
		return nil
	default:
		return fmt.Errorf("unknown directive verb %q", d.verb)
	}
}

// unescape expands \n \t \\ \s and \xHH escapes in a directive token.
func unescape(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			out = append(out, c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case 's':
			out = append(out, ' ')
		case '\\':
			out = append(out, '\\')
		case 'x':
			if i+2 >= len(s) {
				return nil, fmt.Errorf("truncated \\x escape in %q", s)
			}
			v, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid \\x escape in %q: %w", s, err)
			}
			out = append(out, byte(v))
			i += 2
		default:
			return nil, fmt.Errorf("unknown escape \\%c in %q", s[i], s)
		}
	}
	return out, nil
}
