package main

import (
	"fmt"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/k0kubun/m4syntax/config"
	"github.com/k0kubun/m4syntax/syntax"
)

// applyExecScript splits script on ';' into directive lines, splits
// each line into fields the way a shell would split one command-line
// string into argv, then applies each directive in turn. One --exec
// string can therefore carry several directives, none of which may
// contain a ';', e.g. --exec 'changesyntax @ + "\\" ; changequote [ ]'.
func applyExecScript(t *syntax.Table, script string) error {
	for _, line := range splitStatements(script) {
		fields, err := shellquote.Split(line)
		if err != nil {
			return fmt.Errorf("exec: splitting %q: %w", line, err)
		}
		if len(fields) == 0 {
			continue
		}
		d, err := config.ParseDirectiveFields(fields)
		if err != nil {
			return fmt.Errorf("exec: %q: %w", line, err)
		}
		if err := d.Apply(t); err != nil {
			return fmt.Errorf("exec: %q: %w", line, err)
		}
	}
	return nil
}

// splitStatements breaks a script into ';'-separated directive lines.
func splitStatements(script string) []string {
	var out []string
	start := 0
	for i := 0; i < len(script); i++ {
		if script[i] == ';' {
			out = append(out, script[start:i])
			start = i + 1
		}
	}
	out = append(out, script[start:])
	return out
}
