// Package config loads named syntax profiles — reusable sequences of
// changesyntax/changequote/changecom directives — from YAML. GNU m4
// itself builds up such sequences from command-line scripts and frozen
// state files; this package gives that workflow a reusable, named form.
package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/k0kubun/m4syntax/syntax"
)

// Profile is a named, ordered list of directive strings, each parsed
// and applied by Directive.Apply.
type Profile struct {
	Name       string   `yaml:"-"`
	Directives []string `yaml:"directives"`
}

// document is the on-disk shape: a map of profile name to directive list.
type document map[string]struct {
	Directives []string `yaml:"directives"`
}

// LoadProfiles parses a YAML document of named profiles.
func LoadProfiles(r io.Reader) (map[string]Profile, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("config: decoding profiles: %w", err)
	}

	profiles := make(map[string]Profile, len(doc))
	for name, entry := range doc {
		profiles[name] = Profile{Name: name, Directives: entry.Directives}
	}
	return profiles, nil
}

// Apply replays every directive in p against t, in order, stopping at
// the first error.
func (p Profile) Apply(t *syntax.Table) error {
	for i, line := range p.Directives {
		d, err := ParseDirective(line)
		if err != nil {
			return fmt.Errorf("config: profile %q directive %d (%q): %w", p.Name, i, line, err)
		}
		if err := d.Apply(t); err != nil {
			return fmt.Errorf("config: profile %q directive %d (%q): %w", p.Name, i, line, err)
		}
	}
	return nil
}
