// internal/blast/orchestrate.go
package blast

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// ErrAllAttemptsFailed is the orchestrator's only fatal outcome: every
// database/transport pair was exhausted without one fully successful
// submit/poll/fetch pipeline.
var ErrAllAttemptsFailed = errors.New("identification failed: all database/transport attempts exhausted")

// errAttempt marks a recoverable per-attempt failure; the orchestrator
// advances to the next pair instead of surfacing it.
var errAttempt = errors.New("attempt failed")

// Defaults for the attempt pipeline.
const (
	DefaultSubmitTimeout = 10 * time.Second
	DefaultPollInterval  = 5 * time.Second
	DefaultPollBudget    = 45 * time.Second
	DefaultMaxHits       = 3
)

// Options configures an Orchestrator.
type Options struct {
	Databases  []string    // ordered, most comprehensive first
	Transports []Transport // ordered, tried within each database
	MaxHits    int         // dedupe cap; 0 means DefaultMaxHits

	SubmitTimeout time.Duration
	PollInterval  time.Duration
	PollBudget    time.Duration

	Status StatusFunc   // optional progress observer
	Images *ImageClient // nil disables enrichment
}

// Orchestrator identifies the likely source organism of a sequence by
// walking the (database, transport) cartesian product strictly
// sequentially (outer loop databases, inner loop transports) and
// short-circuiting on the first pipeline that submits, polls to readiness,
// and parses. Per-attempt failures (submit error, missing RID, poll budget
// exceeded) advance to the next pair; only total exhaustion is an error.
type Orchestrator struct {
	client     *Client
	opts       Options
	invocation atomic.Uint64
}

// New builds an Orchestrator around client, filling zero options with
// defaults.
func New(client *Client, opts Options) *Orchestrator {
	if len(opts.Databases) == 0 {
		opts.Databases = []string{"nt"}
	}
	if len(opts.Transports) == 0 {
		opts.Transports = []Transport{Direct}
	}
	if opts.MaxHits == 0 {
		opts.MaxHits = DefaultMaxHits
	}
	if opts.SubmitTimeout == 0 {
		opts.SubmitTimeout = DefaultSubmitTimeout
	}
	if opts.PollInterval == 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.PollBudget == 0 {
		opts.PollBudget = DefaultPollBudget
	}
	return &Orchestrator{client: client, opts: opts}
}

// Identify runs the attempt sequence for one sequence and returns the
// deduplicated, capped, optionally image-enriched hits of the first
// successful pipeline. A successful pipeline with zero hits returns an
// empty slice and nil error; the caller decides how to present that.
func (o *Orchestrator) Identify(ctx context.Context, sequence string) ([]Hit, error) {
	inv := o.invocation.Add(1)

	for _, db := range o.opts.Databases {
		for _, tr := range o.opts.Transports {
			hits, err := o.attempt(ctx, inv, db, tr, sequence)
			if err == nil {
				hits = Dedupe(hits, o.opts.MaxHits)
				o.enrich(ctx, hits)
				o.status(inv, StageReady, db, tr, fmt.Sprintf("%d match(es)", len(hits)))
				return hits, nil
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// recoverable: advance to the next pair
		}
	}

	o.status(inv, StageFailed, "", Transport{}, "all attempts exhausted")
	return nil, ErrAllAttemptsFailed
}

// attempt runs one submit/poll/fetch pipeline against a single
// (database, transport) pair, failing fast at any stage.
func (o *Orchestrator) attempt(ctx context.Context, inv uint64, db string, tr Transport, sequence string) ([]Hit, error) {
	o.status(inv, StageSubmitting, db, tr, "")

	sctx, cancel := context.WithTimeout(ctx, o.opts.SubmitTimeout)
	rid, rtoe, err := o.client.Submit(sctx, tr, db, sequence)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("%w: submit: %v", errAttempt, err)
	}

	if err := o.poll(ctx, inv, db, tr, rid, rtoe); err != nil {
		return nil, err
	}

	fctx, cancel := context.WithTimeout(ctx, o.opts.SubmitTimeout)
	report, err := o.client.Report(fctx, tr, rid)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("%w: fetch: %v", errAttempt, err)
	}
	return ParseReport(report), nil
}

// poll queries job status at a fixed interval until READY or until the
// wall-clock budget (measured from poll start) runs out. Transient fetch
// failures are swallowed; budget exhaustion fails the attempt and is never
// retried on the same pair.
func (o *Orchestrator) poll(ctx context.Context, inv uint64, db string, tr Transport, rid string, rtoe time.Duration) error {
	o.status(inv, StageWaiting, db, tr, "RID "+rid)

	deadline := time.Now().Add(o.opts.PollBudget)
	_ = rtoe // suggested initial wait; the fixed interval already paces us

	for {
		pctx, cancel := context.WithTimeout(ctx, o.opts.PollInterval)
		ready, err := o.client.Ready(pctx, tr, rid)
		cancel()
		if err == nil && ready {
			return nil
		}
		// err != nil is transient here: keep polling until the budget runs out.

		if time.Now().After(deadline) {
			o.status(inv, StageTimedOut, db, tr, "RID "+rid)
			return fmt.Errorf("%w: poll budget exceeded", errAttempt)
		}
		select {
		case <-time.After(o.opts.PollInterval):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (o *Orchestrator) status(inv uint64, stage Stage, db string, tr Transport, msg string) {
	if o.opts.Status == nil {
		return
	}
	o.opts.Status(Status{
		Invocation: inv,
		Stage:      stage,
		Database:   db,
		Transport:  tr.Name,
		Message:    msg,
	})
}
