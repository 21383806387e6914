// Package printer provides text printers for helpspec command output.
package printer

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mozilla-ai/helpspec/internal/cmd/output"
	"github.com/mozilla-ai/helpspec/internal/extract"
)

var _ output.Printer[extract.Summary] = (*SummaryPrinter)(nil)

// SummaryPrinter prints one line per extracted command.
type SummaryPrinter struct {
	headerFunc output.WriteFunc[extract.Summary]
	footerFunc output.WriteFunc[extract.Summary]

	ok   func(a ...any) string
	warn func(a ...any) string
	fail func(a ...any) string
	dim  func(a ...any) string
}

// NewSummaryPrinter returns a printer with the default header and footer.
// When colored is false no escape sequences are written.
func NewSummaryPrinter(colored bool) *SummaryPrinter {
	newColor := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if !colored {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
		return c.SprintFunc()
	}

	return &SummaryPrinter{
		headerFunc: DefaultSummaryHeader,
		footerFunc: DefaultSummaryFooter,
		ok:         newColor(color.FgGreen),
		warn:       newColor(color.FgYellow),
		fail:       newColor(color.FgRed, color.Bold),
		dim:        newColor(color.Faint),
	}
}

func DefaultSummaryHeader(w io.Writer, count int) {
	_, _ = fmt.Fprintf(w, "Commands: %d\n\n", count)
}

func DefaultSummaryFooter(w io.Writer, count int) {
	_, _ = fmt.Fprintln(w)
}

func (p *SummaryPrinter) Header(w io.Writer, count int) {
	if p.headerFunc != nil {
		p.headerFunc(w, count)
	}
}

func (p *SummaryPrinter) SetHeader(fn output.WriteFunc[extract.Summary]) {
	p.headerFunc = fn
}

func (p *SummaryPrinter) Item(w io.Writer, elem extract.Summary) error {
	switch elem.Status {
	case extract.StatusOK:
		_, _ = fmt.Fprintf(
			w,
			"%s %s (%s): %d options, %d hidden\n",
			p.ok("✓"),
			elem.Command,
			elem.ID,
			elem.Options,
			elem.Hidden,
		)
	case extract.StatusSkipped:
		_, _ = fmt.Fprintf(w, "%s %s %s\n", p.dim("-"), elem.Command, p.dim("(skipped)"))
	case extract.StatusAdhoc:
		_, _ = fmt.Fprintf(w, "%s %s %s\n", p.warn("~"), elem.Command, p.warn("(captured only)"))
	case extract.StatusFailed:
		_, _ = fmt.Fprintf(w, "%s %s\n  %s\n", p.fail("✗"), elem.Command, elem.Error)
	default:
		return fmt.Errorf("unknown status '%s' for command '%s'", elem.Status, elem.Command)
	}

	return nil
}

func (p *SummaryPrinter) Footer(w io.Writer, count int) {
	if p.footerFunc != nil {
		p.footerFunc(w, count)
	}
}

func (p *SummaryPrinter) SetFooter(fn output.WriteFunc[extract.Summary]) {
	p.footerFunc = fn
}
