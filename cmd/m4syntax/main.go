// Command m4syntax drives a syntax.Table from the command line: load
// a named profile or an inline directive script, apply it, and report
// the resulting classification table, quote age, and derived
// booleans. It stands in for the enclosing macro processor that a
// syntax table is normally embedded in, which this module deliberately
// does not implement.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/k0kubun/m4syntax/config"
	"github.com/k0kubun/m4syntax/syntax"
	"github.com/k0kubun/m4syntax/util"
)

type options struct {
	Config      string `long:"config" description:"YAML file of named syntax profiles" value-name:"file"`
	Profile     string `long:"profile" description:"Profile name to apply from --config" value-name:"name"`
	Exec        string `long:"exec" description:"Inline, shell-quoted sequence of directives to apply" value-name:"script"`
	Dump        bool   `long:"dump" description:"Print the full 256-entry classification table"`
	DebugDump   bool   `long:"debug-dump" description:"Pretty-print the internal table state"`
	Interactive bool   `long:"interactive" description:"Read directives one per line from stdin"`
}

func main() {
	util.InitSlog()

	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[options]"
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	t := syntax.New()

	if opts.Config != "" {
		if opts.Profile == "" {
			log.Fatal("--config requires --profile")
		}
		f, err := os.Open(opts.Config)
		if err != nil {
			log.Fatalf("opening %s: %s", opts.Config, err)
		}
		defer f.Close()

		profiles, err := config.LoadProfiles(f)
		if err != nil {
			log.Fatal(err)
		}
		profile, ok := profiles[opts.Profile]
		if !ok {
			log.Fatalf("no such profile %q in %s", opts.Profile, opts.Config)
		}
		if err := profile.Apply(t); err != nil {
			log.Fatal(err)
		}
	}

	if opts.Exec != "" {
		if err := applyExecScript(t, opts.Exec); err != nil {
			log.Fatal(err)
		}
	}

	if opts.Interactive {
		if err := runREPL(t, os.Stdin, os.Stdout); err != nil {
			log.Fatal(err)
		}
	}

	if opts.DebugDump {
		debugDump(t)
	}

	if opts.Dump || (!opts.Interactive && !opts.DebugDump) {
		dumpTable(os.Stdout, t)
	}

	fmt.Fprintf(os.Stderr, "quote age: %#08x\n", t.QuoteAge())
}
