// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"seqlens/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Input     string // file path or "-" for stdin
	Seq       string // inline sequence
	MinLength int

	// Analyses
	Stats      bool
	RevComp    bool
	Translate  bool
	Hydropathy bool
	Guides     bool
	Identify   bool
	All        bool
	Motif      string
	MotifSet   bool

	// Identification
	Databases     []string
	Relays        []string
	MaxHits       int
	Images        bool
	BlastURL      string
	ImageURL      string
	ConfigPath    string
	SubmitTimeout time.Duration
	PollInterval  time.Duration
	PollBudget    time.Duration

	// Output
	Output  string
	Header  bool // true unless --no-header
	Quiet   bool
	NoColor bool

	Version bool
}

// Usage prints the top-level help text.
func Usage(fs *flag.FlagSet, name string) {
	fmt.Fprintf(fs.Output(),
		`%s: DNA sequence analysis

Reads one nucleotide sequence (plain or FASTA) and runs the requested
analyses; --identify submits it to a remote alignment service.

Version: %s

Usage of %s:
`, name, version.Version, name)
	fs.PrintDefaults()
}

// ParseArgs registers and parses all flags, returns an Options struct.
// One positional argument is accepted as the input file.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noHeader bool

	// Input
	fs.StringVar(&opt.Input, "input", "", "sequence file ('-' for stdin, .gz ok) [*]")
	fs.StringVar(&opt.Seq, "seq", "", "inline sequence [*]")
	fs.IntVar(&opt.MinLength, "min-length", 0, "reject sequences shorter than N bases [0]")

	// Analyses
	fs.BoolVar(&opt.Stats, "stats", false, "base composition and GC content [default when nothing else is selected]")
	fs.BoolVar(&opt.RevComp, "revcomp", false, "reverse complement [false]")
	fs.BoolVar(&opt.Translate, "translate", false, "translate the first open reading frame [false]")
	fs.BoolVar(&opt.Hydropathy, "hydropathy", false, "Kyte-Doolittle sliding-window plot of the translated protein [false]")
	fs.StringVar(&opt.Motif, "motif", "", "find all (overlapping) occurrences of an exact motif")
	fs.BoolVar(&opt.Guides, "guides", false, "scan for SpCas9 NGG guide-RNA sites (forward strand) [false]")
	fs.BoolVar(&opt.Identify, "identify", false, "identify the source organism via remote alignment search [false]")
	fs.BoolVar(&opt.All, "all", false, "run every local analysis (everything except --identify) [false]")

	// Identification
	var dbs, relays stringSlice
	fs.Var(&dbs, "db", "target database, ordered by preference (repeatable) [nt]")
	fs.Var(&relays, "relay", "transport as name=prefix, 'direct' for none (repeatable) [direct]")
	fs.IntVar(&opt.MaxHits, "max-hits", 0, "deduplicated hit cap (0 = default 3) [0]")
	fs.BoolVar(&opt.Images, "images", false, "enrich hits with encyclopedia thumbnails [false]")
	fs.StringVar(&opt.BlastURL, "blast-url", "", "alignment service endpoint (default NCBI)")
	fs.StringVar(&opt.ImageURL, "image-url", "", "image lookup endpoint (default Wikipedia)")
	fs.StringVar(&opt.ConfigPath, "config", "", "YAML config preloading identification settings")
	fs.DurationVar(&opt.SubmitTimeout, "submit-timeout", 0, "per-submission connection deadline (0 = 10s) [0]")
	fs.DurationVar(&opt.PollInterval, "poll-interval", 0, "status poll interval (0 = 5s) [0]")
	fs.DurationVar(&opt.PollBudget, "poll-budget", 0, "per-attempt polling budget (0 = 45s) [0]")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	fs.BoolVar(&noHeader, "no-header", false, "suppress the sequence summary line [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings and progress [false]")
	fs.BoolVar(&opt.NoColor, "no-color", false, "disable colored output [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Databases = dbs
	opt.Relays = relays
	opt.Header = !noHeader

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "motif" {
			opt.MotifSet = true
		}
	})

	// One positional input file is accepted in place of --input.
	switch args := fs.Args(); {
	case len(args) > 1:
		return opt, fmt.Errorf("unexpected arguments: %s", strings.Join(args[1:], " "))
	case len(args) == 1:
		if opt.Input != "" {
			return opt, errors.New("positional input conflicts with --input")
		}
		opt.Input = args[0]
	}

	// Validation
	switch {
	case opt.Input != "" && opt.Seq != "":
		return opt, errors.New("--input conflicts with --seq")
	case opt.Input == "" && opt.Seq == "":
		return opt, errors.New("provide --input, --seq, or an input file")
	}
	if opt.MinLength < 0 {
		return opt, errors.New("--min-length must be ≥ 0")
	}
	if opt.MaxHits < 0 {
		return opt, errors.New("--max-hits must be ≥ 0")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}

	if opt.All {
		opt.Stats = true
		opt.RevComp = true
		opt.Translate = true
		opt.Hydropathy = true
		opt.Guides = true
	}
	if !opt.Stats && !opt.RevComp && !opt.Translate && !opt.Hydropathy &&
		!opt.Guides && !opt.MotifSet && !opt.Identify {
		opt.Stats = true
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
