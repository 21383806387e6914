package printer

import (
	"io"

	"github.com/mozilla-ai/helpspec/internal/cmd/output"
	"github.com/mozilla-ai/helpspec/internal/spec"
)

var _ output.Printer[*spec.CommandSpec] = (*SpecPrinter)(nil)

// SpecPrinter writes command specs in the canonical spec file format.
type SpecPrinter struct {
	headerFunc output.WriteFunc[*spec.CommandSpec]
	footerFunc output.WriteFunc[*spec.CommandSpec]
}

func (p *SpecPrinter) Header(w io.Writer, count int) {
	if p.headerFunc != nil {
		p.headerFunc(w, count)
	}
}

func (p *SpecPrinter) SetHeader(fn output.WriteFunc[*spec.CommandSpec]) {
	p.headerFunc = fn
}

func (p *SpecPrinter) Item(w io.Writer, elem *spec.CommandSpec) error {
	return spec.Encode(w, elem)
}

func (p *SpecPrinter) Footer(w io.Writer, count int) {
	if p.footerFunc != nil {
		p.footerFunc(w, count)
	}
}

func (p *SpecPrinter) SetFooter(fn output.WriteFunc[*spec.CommandSpec]) {
	p.footerFunc = fn
}
