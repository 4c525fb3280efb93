// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"strings"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("seqlens")
	return ParseArgs(fs, argv)
}

func TestParseDefaultsToStats(t *testing.T) {
	opt, err := parse(t, "--seq", "ATGC")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if !opt.Stats {
		t.Errorf("Stats = false, want default true when nothing selected")
	}
	if opt.Output != "text" || !opt.Header {
		t.Errorf("opt = %+v", opt)
	}
}

func TestParseAllSelectsLocalAnalyses(t *testing.T) {
	opt, err := parse(t, "--all", "--seq", "ATGC")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if !(opt.Stats && opt.RevComp && opt.Translate && opt.Hydropathy && opt.Guides) {
		t.Errorf("opt = %+v, want all local analyses on", opt)
	}
	if opt.Identify {
		t.Errorf("Identify = true; --all must not imply network calls")
	}
}

func TestParsePositionalInput(t *testing.T) {
	opt, err := parse(t, "--stats", "seq.fa")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if opt.Input != "seq.fa" {
		t.Errorf("Input = %q, want seq.fa", opt.Input)
	}
}

func TestParseEmptyMotifFlagCounts(t *testing.T) {
	opt, err := parse(t, "--motif", "", "--seq", "ATGC")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if !opt.MotifSet {
		t.Errorf("MotifSet = false; an explicitly passed empty motif must reach validation")
	}
	if opt.Stats {
		t.Errorf("Stats defaulted on despite a selected analysis")
	}
}

func TestParseRepeatableDBAndRelay(t *testing.T) {
	opt, err := parse(t, "--identify", "--db", "nt", "--db", "refseq_genomes",
		"--relay", "direct", "--relay", "proxy=https://r.test/?url=", "--seq", "ATGC")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if len(opt.Databases) != 2 || opt.Databases[1] != "refseq_genomes" {
		t.Errorf("Databases = %v", opt.Databases)
	}
	if len(opt.Relays) != 2 {
		t.Errorf("Relays = %v", opt.Relays)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		argv []string
		want string
	}{
		{"no input", []string{"--stats"}, "provide --input"},
		{"both inputs", []string{"--input", "a.fa", "--seq", "ATGC"}, "conflicts"},
		{"positional and flag", []string{"--input", "a.fa", "b.fa"}, "conflicts"},
		{"extra positionals", []string{"a.fa", "b.fa"}, "unexpected arguments"},
		{"bad output", []string{"--seq", "A", "--output", "xml"}, "invalid --output"},
		{"negative min", []string{"--seq", "A", "--min-length", "-1"}, "--min-length"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := parse(t, c.argv...)
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Errorf("err = %v, want containing %q", err, c.want)
			}
		})
	}
}

func TestParseHelp(t *testing.T) {
	_, err := parse(t, "-h")
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("err = %v, want flag.ErrHelp", err)
	}
}
