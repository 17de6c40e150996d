package config

import (
	"strings"
	"testing"

	"github.com/k0kubun/m4syntax/syntax"
)

const sampleProfiles = `
shouty:
  directives:
    - "changesyntax W + 0123456789"
    - "changequote << >>"

disable_comments:
  directives:
    - "changecom"
`

func TestLoadProfiles(t *testing.T) {
	profiles, err := LoadProfiles(strings.NewReader(sampleProfiles))
	if err != nil {
		t.Fatal(err)
	}
	if len(profiles) != 2 {
		t.Fatalf("got %d profiles, want 2", len(profiles))
	}

	shouty, ok := profiles["shouty"]
	if !ok {
		t.Fatal(`missing "shouty" profile`)
	}
	if shouty.Name != "shouty" {
		t.Errorf("Name = %q, want shouty", shouty.Name)
	}
	if len(shouty.Directives) != 2 {
		t.Fatalf("got %d directives, want 2", len(shouty.Directives))
	}
}

func TestProfileApply(t *testing.T) {
	profiles, err := LoadProfiles(strings.NewReader(sampleProfiles))
	if err != nil {
		t.Fatal(err)
	}

	tab := syntax.New()
	if err := profiles["shouty"].Apply(tab); err != nil {
		t.Fatal(err)
	}
	if tab.Classify('5').Basis() != syntax.ALPHA {
		t.Error("shouty profile should have added digits to ALPHA")
	}
	if string(tab.GetQuotes().Left) != "<<" || string(tab.GetQuotes().Right) != ">>" {
		t.Errorf("quotes = %q/%q, want <</>> ", tab.GetQuotes().Left, tab.GetQuotes().Right)
	}
}

func TestProfileApplyStopsAtFirstError(t *testing.T) {
	profiles, err := LoadProfiles(strings.NewReader(`
broken:
  directives:
    - "changesyntax @ + \\"
    - "nonsense directive"
    - "changesyntax @ - \\"
`))
	if err != nil {
		t.Fatal(err)
	}

	tab := syntax.New()
	err = profiles["broken"].Apply(tab)
	if err == nil {
		t.Fatal("expected an error from the unknown directive")
	}
	if !tab.IsMacroEscaped() {
		t.Error("the first directive should have applied before the failure")
	}
}
