package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/k0kubun/m4syntax/syntax"
)

// categoryColor maps a basis category to an ANSI color code, loosely
// following the tokenizer's precedence grouping (quotes, comments,
// escapes, then everything else).
var categoryColor = map[syntax.Category]string{
	syntax.LQUOTE: "35", // magenta
	syntax.BCOMM:  "36", // cyan
	syntax.ESCAPE: "31", // red
	syntax.ALPHA:  "32", // green
	syntax.NUM:    "33", // yellow
	syntax.SPACE:  "90", // bright black
	syntax.OPEN:   "34", // blue
	syntax.CLOSE:  "34",
	syntax.COMMA:  "34",
}

// dumpTable writes the category of every byte 0..255 (non-printable
// bytes labelled in hex), colorized when w
// is a real terminal (the same isatty-gated branching a CLI reaches
// for before deciding whether to prompt interactively).
func dumpTable(w io.Writer, t *syntax.Table) {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	if color {
		w = colorable.NewColorable(w.(*os.File))
	}

	for b := 0; b < 256; b++ {
		entry := t.Classify(byte(b))
		label := printableByte(byte(b))
		if color {
			code, ok := categoryColor[entry.Basis()]
			if !ok {
				code = "0"
			}
			fmt.Fprintf(w, "\x1b[%sm%-4s %s\x1b[0m\n", code, label, entry)
			continue
		}
		fmt.Fprintf(w, "%-4s %s\n", label, entry)
	}
}

func printableByte(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return fmt.Sprintf("%q", string(rune(b)))
	}
	return fmt.Sprintf("0x%02x", b)
}
