// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"seqlens/internal/blast"
	"seqlens/internal/cli"
	"seqlens/internal/cmdutil"
	"seqlens/internal/config"
	"seqlens/internal/input"
	"seqlens/internal/output"
	"seqlens/internal/report"
	"seqlens/internal/version"
	"seqlens/pkg/api"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("seqlens")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		_, _ = cli.ParseArgs(fs, nil)
		cli.Usage(fs, "seqlens")
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			cli.Usage(fs, "seqlens")
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		cli.Usage(fs, "seqlens")
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "seqlens version %s\n", version.Version)
		return 0
	}

	if opts.NoColor {
		color.NoColor = true
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	applyConfig(&opts, cfg)

	raw := opts.Seq
	if opts.Input != "" {
		raw, err = input.ReadAll(opts.Input, os.Stdin)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	rep, err := report.Build(report.Request{
		Raw:        raw,
		MinLength:  opts.MinLength,
		Stats:      opts.Stats,
		RevComp:    opts.RevComp,
		Translate:  opts.Translate,
		Hydropathy: opts.Hydropathy,
		Guides:     opts.Guides,
		Motif:      opts.Motif,
		MotifSet:   opts.MotifSet,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if rep.Sequence.InvalidResidues != "" {
		cmdutil.Warnf(stderr, opts.Quiet, "non-ATGC residues in input: %s", rep.Sequence.InvalidResidues)
	}

	code := 0
	if opts.Identify {
		rep.Identification, err = identify(parent, opts, report.Cleaned(raw), stderr)
		if errors.Is(err, context.Canceled) {
			return 130
		}
		if err != nil {
			code = 3
		}
	}

	switch opts.Output {
	case "json":
		err = output.WriteJSON(outw, rep)
	default:
		err = output.WriteText(outw, rep, opts.Header)
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if e := outw.Flush(); e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}

// identify runs the remote orchestration and folds its outcome into a
// report section. Only total exhaustion surfaces, as a generic
// unavailable message plus a non-zero exit.
func identify(ctx context.Context, opts cli.Options, cleaned string, stderr io.Writer) (*api.IdentificationV1, error) {
	printer := &output.StatusPrinter{W: stderr, Quiet: opts.Quiet}
	o := blast.New(blast.NewClient(opts.BlastURL), blast.Options{
		Databases:     opts.Databases,
		Transports:    blast.ParseTransports(opts.Relays),
		MaxHits:       opts.MaxHits,
		SubmitTimeout: opts.SubmitTimeout,
		PollInterval:  opts.PollInterval,
		PollBudget:    opts.PollBudget,
		Status:        printer.Print,
		Images:        imageClient(opts),
	})

	hits, err := o.Identify(ctx, cleaned)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return &api.IdentificationV1{Note: "identification service unavailable"}, err
	}

	sec := &api.IdentificationV1{}
	for _, h := range hits {
		sec.Hits = append(sec.Hits, api.HitV1{
			Accession:   h.Accession,
			Name:        h.Name,
			Description: h.Description,
			ImageURL:    h.ImageURL,
		})
	}
	if len(sec.Hits) == 0 {
		sec.Note = "no matches found"
	}
	return sec, nil
}

func imageClient(opts cli.Options) *blast.ImageClient {
	if !opts.Images {
		return nil
	}
	return blast.NewImageClient(opts.ImageURL)
}

// applyConfig fills options the command line left unset.
func applyConfig(opts *cli.Options, cfg config.File) {
	if opts.BlastURL == "" {
		opts.BlastURL = cfg.BlastURL
	}
	if opts.ImageURL == "" {
		opts.ImageURL = cfg.ImageURL
	}
	if len(opts.Databases) == 0 {
		opts.Databases = cfg.Databases
	}
	if len(opts.Relays) == 0 {
		opts.Relays = cfg.Relays
	}
	if opts.MaxHits == 0 {
		opts.MaxHits = cfg.MaxHits
	}
	if opts.MinLength == 0 {
		opts.MinLength = cfg.MinLength
	}
	if opts.SubmitTimeout == 0 {
		opts.SubmitTimeout = time.Duration(cfg.SubmitTimeout)
	}
	if opts.PollInterval == 0 {
		opts.PollInterval = time.Duration(cfg.PollInterval)
	}
	if opts.PollBudget == 0 {
		opts.PollBudget = time.Duration(cfg.PollBudget)
	}
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
