package artifacts

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mozilla-ai/helpspec/internal/spec"
)

const (
	MarkdownFile = "command-specs.md"
	HTMLFile     = "command-specs.html"
)

const (
	mdTab   = "&#160;&#160;&#160;&#160;"
	htmlTab = `<span class="tabstop">`
)

const htmlHeader = `
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" lang="" xml:lang="">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0, user-scalable=yes" />
  <title>Command specs</title>
  <style type="text/css">
      code{white-space: pre-wrap;}
      span.tabstop{margin: 0 0 0 1.5em;}
  </style>
</head>
<body>
<h1 id="command-spec">Command spec</h1>
<p>pretty form</p>
`

const htmlFooter = `
</body>
</html>
`

var (
	markdownEscaper = strings.NewReplacer(`<`, `\<`, `[`, `\[`)
	htmlEscaper     = strings.NewReplacer(`&`, `&amp;`, `<`, `&lt;`)
)

// WriteMarkdown appends a readable rendition of specs to MarkdownFile.
// Group and text lines are left out.
func (w *Writer) WriteMarkdown(specs ...*spec.CommandSpec) error {
	if !w.toggles.Markdown || len(specs) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for _, s := range specs {
		fmt.Fprintf(&buf, "_command_ **%s** `\"%s\"` {\\\n", s.ID, s.DisplayName)

		usage := spec.TrimTrailingBlank(s.Usage)
		buf.WriteString(mdTab + "_usage_ { ")
		if len(usage) == 1 {
			fmt.Fprintf(&buf, "\"%s\" }\\\n", markdownEscaper.Replace(usage[0]))
		} else {
			buf.WriteString("\\\n")
			for _, l := range usage {
				fmt.Fprintf(&buf, "%s%s\"%s\",\\\n", mdTab, mdTab, markdownEscaper.Replace(l))
			}
			buf.WriteString(mdTab + "}\\\n")
		}

		for _, o := range s.Options() {
			fmt.Fprintf(&buf, "%s_option_ **%s** _%s_ { \"%s\"", mdTab, o.Name, o.Type, namePattern(o))
			if o.Hidden {
				buf.WriteString(", _hidden_")
			}
			if o.Argument != "" {
				fmt.Fprintf(&buf, ", _arg_=\"%s\"", markdownEscaper.Replace(o.Argument))
			}
			if o.Optional {
				buf.WriteString(", _optional_")
			}
			if o.Help != "" {
				fmt.Fprintf(&buf, ", _help_=\"%s\"", o.Help)
			}
			buf.WriteString(" }\\\n")
		}

		buf.WriteString("}\n\n")
	}

	return w.append(MarkdownFile, buf.Bytes())
}

// WriteHTML appends a standalone HTML page rendering specs to HTMLFile.
func (w *Writer) WriteHTML(specs ...*spec.CommandSpec) error {
	if !w.toggles.HTML || len(specs) == 0 {
		return nil
	}

	var buf bytes.Buffer
	buf.WriteString(htmlHeader)
	for _, s := range specs {
		fmt.Fprintf(&buf, "<p><em>command</em> <strong>%s</strong> <code>\"%s\"</code> {<br>\n", s.ID, s.DisplayName)

		usage := spec.TrimTrailingBlank(s.Usage)
		buf.WriteString(htmlTab + "<em>usage</em> { ")
		if len(usage) == 1 {
			fmt.Fprintf(&buf, "<code>\"%s\"</code> }<br>\n", htmlEscaper.Replace(usage[0]))
		} else {
			buf.WriteString("<br>\n")
			for _, l := range usage {
				fmt.Fprintf(&buf, "%s%s<code>\"%s\"</code>, <br>\n", htmlTab, htmlTab, htmlEscaper.Replace(l))
			}
			buf.WriteString(htmlTab + "}<br>\n")
		}

		for _, e := range s.Entries {
			switch e.Kind {
			case spec.KindGroupLine:
				buf.WriteString(htmlTab + "<em>groupline</em><br>\n")
			case spec.KindTextLine:
				fmt.Fprintf(&buf, "%s<em>textline</em> { \"%s\" }<br>\n", htmlTab, htmlEscaper.Replace(e.Text))
			case spec.KindOption:
				if e.Option != nil {
					writeHTMLOption(&buf, e.Option)
				}
			}
		}

		buf.WriteString("}<p>\n")
	}
	buf.WriteString(htmlFooter)

	return w.append(HTMLFile, buf.Bytes())
}

func writeHTMLOption(buf *bytes.Buffer, o *spec.Option) {
	fmt.Fprintf(buf, "%s<em>option</em> <strong>%s</strong> <em>%s</em> {  <code>\"%s\"</code>", htmlTab, o.Name, o.Type, namePattern(o))
	if o.Hidden {
		buf.WriteString(", <em>hidden</em>")
	}
	if o.Argument != "" {
		fmt.Fprintf(buf, ", <em>arg</em>=\"%s\"", htmlEscaper.Replace(o.Argument))
	}
	if o.Optional {
		buf.WriteString(", <em>optional</em>")
	}
	if o.Help != "" {
		fmt.Fprintf(buf, ", <em>help</em>=\"%s\"", htmlEscaper.Replace(o.Help))
	}
	buf.WriteString(" }<br>\n")
}

// namePattern joins an option's names as 'long|short'.
func namePattern(o *spec.Option) string {
	short := o.ShortName
	if short == "" && o.Numeric {
		short = "NUM"
	}

	switch {
	case short != "" && o.LongName != "":
		return o.LongName + "|" + short
	case short == "":
		return o.LongName
	default:
		return short
	}
}
