package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/k0kubun/m4syntax/config"
	"github.com/k0kubun/m4syntax/syntax"
)

// runREPL reads one directive per line from in and applies it to t,
// printing the resulting quote age (or the error) after each. It uses
// golang.org/x/term to detect a real terminal, so a piped script
// doesn't get an interactive prompt written into its output.
func runREPL(t *syntax.Table, in *os.File, out io.Writer) error {
	interactive := term.IsTerminal(int(in.Fd()))

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, "m4syntax> ")
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		d, err := config.ParseDirective(line)
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}
		if err := d.Apply(t); err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}
		fmt.Fprintf(out, "ok, quote age %#08x\n", t.QuoteAge())
	}
	return scanner.Err()
}
