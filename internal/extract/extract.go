// Package extract runs the help-text pipeline over a tool's commands:
// capture, reconstruction, regeneration and verification, with artifacts recorded in command order.
package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/mozilla-ai/helpspec/internal/capture"
	helpspecerrors "github.com/mozilla-ai/helpspec/internal/errors"
	"github.com/mozilla-ai/helpspec/internal/helptext"
	"github.com/mozilla-ai/helpspec/internal/spec"
)

// Status describes what happened to a command.
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusAdhoc   Status = "adhoc"
	StatusFailed  Status = "failed"
)

// Result is the outcome for one command.
type Result struct {
	Command string
	Status  Status

	// Capture is empty when capturing failed or the command was skipped.
	Capture capture.Capture

	// Extraction and Rendered are only set once the help was parsed.
	Extraction *helptext.Extraction
	Rendered   helptext.Rendered

	Err error
}

// Spec returns the command spec, or nil when there is none.
func (r *Result) Spec() *spec.CommandSpec {
	if r.Extraction == nil {
		return nil
	}

	return r.Extraction.Spec
}

// Report holds the results of a run in command order.
type Report struct {
	Results []*Result
}

// Specs returns the specs of commands that passed verification, in command order.
func (r *Report) Specs() []*spec.CommandSpec {
	var specs []*spec.CommandSpec
	for _, res := range r.Results {
		if res != nil && res.Status == StatusOK {
			specs = append(specs, res.Spec())
		}
	}

	return specs
}

// Count returns the number of results with the given status.
func (r *Report) Count(status Status) int {
	n := 0
	for _, res := range r.Results {
		if res != nil && res.Status == status {
			n++
		}
	}

	return n
}

// Extractor runs the pipeline for commands of one tool.
type Extractor struct {
	source  capture.Source
	options Options
	logger  hclog.Logger
}

// NewExtractor returns an extractor reading help from source.
func NewExtractor(source capture.Source, opts ...Option) (*Extractor, error) {
	if source == nil {
		return nil, fmt.Errorf("capture source cannot be nil")
	}

	o, err := NewOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &Extractor{
		source:  source,
		options: o,
		logger:  o.logger.Named("extract"),
	}, nil
}

// Extract runs the pipeline for a single command. The returned result is never nil;
// when the command fails its error is also returned.
func (e *Extractor) Extract(ctx context.Context, command string) (*Result, error) {
	res := &Result{Command: command}

	if _, ok := e.options.skip[command]; ok {
		res.Status = StatusSkipped
		return res, nil
	}

	c, err := e.source.Capture(ctx, command)
	if err != nil {
		return res.fail(fmt.Errorf("command '%s': %w", command, err))
	}
	res.Capture = c

	if _, ok := e.options.adhoc[command]; ok {
		e.logger.Debug("Captured help without parsing", "command", command)
		res.Status = StatusAdhoc
		return res, nil
	}

	var complete []string
	if c.HasComplete {
		complete = c.Complete
	}

	ex, err := helptext.Extract(command, c.Visible, complete)
	if err != nil {
		return res.fail(err)
	}
	res.Extraction = ex

	if ex.Alignment.Ambiguous() {
		if e.options.strictAlignment {
			return res.fail(fmt.Errorf(
				"%w: command '%s': %d visible lines not found",
				helpspecerrors.ErrAmbiguousAlignment,
				command,
				ex.Alignment.Unmatched,
			))
		}
		e.logger.Warn(
			"Visible help is not a subsequence of complete help",
			"command", command,
			"unmatched", ex.Alignment.Unmatched,
		)
	}

	res.Rendered = helptext.Render(ex.Spec)
	if err := helptext.Verify(command, res.Rendered, c.Visible, complete); err != nil {
		return res.fail(err)
	}

	res.Status = StatusOK
	e.logger.Info(
		"Extracted command",
		"command", command,
		"options", len(ex.Spec.Options()),
		"hidden", ex.Spec.HiddenCount(),
	)

	return res, nil
}

func (r *Result) fail(err error) (*Result, error) {
	r.Status = StatusFailed
	r.Err = err

	return r, err
}

// Run extracts commands, at most the configured number at a time, and records artifacts in command order.
// Unless keep-going is set, the first failure stops the run and no spec file is written.
// With keep-going, every failure is returned together and specs of the passing commands are written.
func (e *Extractor) Run(ctx context.Context, commands []string) (*Report, error) {
	report := &Report{Results: make([]*Result, len(commands))}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.options.parallel)

	for i, command := range commands {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := e.Extract(gctx, command)
			report.Results[i] = res
			if e.options.keepGoing {
				return nil
			}

			return err
		})
	}
	groupErr := g.Wait()

	if e.options.writer != nil {
		if err := e.options.writer.Reset(); err != nil {
			return report, err
		}
	}

	var errs *multierror.Error
	for _, res := range report.Results {
		// Commands cut short by another command's failure have nothing worth recording.
		if res == nil || errors.Is(res.Err, context.Canceled) {
			continue
		}
		if err := e.record(res); err != nil {
			return report, err
		}
		if res.Err != nil {
			errs = multierror.Append(errs, res.Err)
		}
	}

	if !e.options.keepGoing && groupErr != nil {
		return report, groupErr
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	if w := e.options.writer; w != nil {
		specs := report.Specs()
		for _, write := range []func(...*spec.CommandSpec) error{w.WriteSpecs, w.WriteMarkdown, w.WriteHTML} {
			if err := write(specs...); err != nil {
				return report, err
			}
		}
	}

	return report, errs.ErrorOrNil()
}

// record writes the artifacts available for a result.
func (e *Extractor) record(res *Result) error {
	w := e.options.writer
	if w == nil || res.Status == StatusSkipped {
		return nil
	}
	if res.Capture.Visible == nil && res.Err != nil {
		return nil
	}

	if err := w.WriteRaw(res.Command, res.Capture); err != nil {
		return err
	}
	if res.Extraction == nil {
		return nil
	}

	if err := w.WriteUsageNotes(res.Command, res.Extraction); err != nil {
		return err
	}
	if err := w.WriteParse(res.Command, res.Extraction); err != nil {
		return err
	}

	var verifyErr error
	var mismatch *helptext.MismatchError
	if errors.As(res.Err, &mismatch) {
		verifyErr = res.Err
	}
	if res.Rendered.Visible == nil && verifyErr == nil {
		return nil
	}

	return w.WriteTest(res.Command, res.Capture, res.Rendered, verifyErr)
}
