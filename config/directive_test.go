package config

import (
	"testing"

	"github.com/k0kubun/m4syntax/syntax"
)

func TestParseDirectiveChangeSyntax(t *testing.T) {
	tests := []struct {
		line       string
		wantKey    byte
		wantAction syntax.Action
		wantChars  string
	}{
		{"changesyntax @ + \\\\", '@', syntax.ActionAdd, "\\"},
		{"changesyntax L = [", 'L', syntax.ActionSet, "["},
		{"changesyntax B reset", 'B', syntax.ActionReset, ""},
	}

	for _, tt := range tests {
		d, err := ParseDirective(tt.line)
		if err != nil {
			t.Fatalf("ParseDirective(%q): %v", tt.line, err)
		}
		if d.verb != "changesyntax" {
			t.Errorf("%q: verb = %q, want changesyntax", tt.line, d.verb)
		}
		if d.key != tt.wantKey {
			t.Errorf("%q: key = %q, want %q", tt.line, d.key, tt.wantKey)
		}
		if d.action != tt.wantAction {
			t.Errorf("%q: action = %v, want %v", tt.line, d.action, tt.wantAction)
		}
		if string(d.chars) != tt.wantChars {
			t.Errorf("%q: chars = %q, want %q", tt.line, d.chars, tt.wantChars)
		}
	}
}

func TestParseDirectiveDelimiters(t *testing.T) {
	d, err := ParseDirective("changequote [ ]")
	if err != nil {
		t.Fatal(err)
	}
	if string(d.left) != "[" || string(d.right) != "]" {
		t.Errorf("left/right = %q/%q, want [/]", d.left, d.right)
	}

	d, err = ParseDirective("changequote")
	if err != nil {
		t.Fatal(err)
	}
	if !d.noArgs {
		t.Error("bare changequote should set noArgs")
	}

	d, err = ParseDirective("changecom ;")
	if err != nil {
		t.Fatal(err)
	}
	if string(d.left) != ";" || d.right != nil {
		t.Errorf("changecom single-arg left/right = %q/%v, want ;/nil", d.left, d.right)
	}
}

func TestParseDirectiveEscapes(t *testing.T) {
	d, err := ParseDirective(`changesyntax S + \s\t\n`)
	if err != nil {
		t.Fatal(err)
	}
	if string(d.chars) != " \t\n" {
		t.Errorf("chars = %q, want space/tab/newline", d.chars)
	}

	d, err = ParseDirective(`changesyntax O + \x41`)
	if err != nil {
		t.Fatal(err)
	}
	if string(d.chars) != "A" {
		t.Errorf("chars = %q, want A from \\x41", d.chars)
	}
}

func TestParseDirectiveErrors(t *testing.T) {
	cases := []string{
		"",
		"frobnicate",
		"changesyntax",
		"changesyntax @@",
		"changesyntax @ ~",
		`changesyntax O + \q`,
		`changesyntax O + \x4`,
	}
	for _, line := range cases {
		if _, err := ParseDirective(line); err == nil {
			t.Errorf("ParseDirective(%q) should have failed", line)
		}
	}
}

func TestDirectiveApplyChangeSyntax(t *testing.T) {
	tab := syntax.New()
	d, err := ParseDirective(`changesyntax @ + \\`)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Apply(tab); err != nil {
		t.Fatal(err)
	}
	if tab.Classify('\\').Basis() != syntax.ESCAPE {
		t.Error("applying the directive should install ESCAPE on backslash")
	}
}

func TestDirectiveApplyDelimiters(t *testing.T) {
	tab := syntax.New()

	d, err := ParseDirective("changequote [ ]")
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Apply(tab); err != nil {
		t.Fatal(err)
	}
	if string(tab.GetQuotes().Left) != "[" || string(tab.GetQuotes().Right) != "]" {
		t.Errorf("quotes = %q/%q, want [/]", tab.GetQuotes().Left, tab.GetQuotes().Right)
	}

	d, err = ParseDirective("changequote")
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Apply(tab); err != nil {
		t.Fatal(err)
	}
	if string(tab.GetQuotes().Left) != "`" || string(tab.GetQuotes().Right) != "'" {
		t.Error("bare changequote should restore default quotes")
	}
}
