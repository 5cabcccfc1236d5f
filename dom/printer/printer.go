// Package printer renders a structural outline of a dom.Tree for
// debugging and test output. It shows node kinds, names and attributes,
// not markup text; serializing a tree back to markup is a concern of
// the surrounding parser front-end.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/domkit/dom"
	"github.com/joshuapare/domkit/dom/walker"
)

// Format selects the output format.
type Format int

const (
	// FormatText emits an indented, line-per-node outline.
	FormatText Format = iota

	// FormatJSON emits one nested JSON object.
	FormatJSON
)

// Options configures a Printer.
type Options struct {
	// Format selects text or JSON output.
	Format Format

	// ShowText includes text and comment contents in the output.
	ShowText bool

	// MaxTextLen truncates displayed text contents. 0 means no limit.
	MaxTextLen int

	// ShowTemplateContents descends into the isolated template-contents
	// subtree of template elements.
	ShowTemplateContents bool
}

// DefaultOptions returns the default printer configuration: text
// format, contents shown, truncated at 40 characters.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		ShowText:   true,
		MaxTextLen: 40,
	}
}

// Printer renders trees to a writer.
type Printer struct {
	tree *dom.Tree
	w    io.Writer
	opts Options
}

// New creates a printer for t writing to w.
func New(t *dom.Tree, w io.Writer, opts Options) *Printer {
	return &Printer{tree: t, w: w, opts: opts}
}

// Print renders the whole tree starting at the document root.
func (p *Printer) Print() error {
	return p.PrintSubtree(p.tree.Document())
}

// PrintSubtree renders the subtree rooted at root.
func (p *Printer) PrintSubtree(root dom.Handle) error {
	if p.opts.Format == FormatJSON {
		return p.printJSON(root)
	}
	return p.printText(root, 0)
}

func (p *Printer) printText(root dom.Handle, baseIndent int) error {
	var templates []struct {
		contents dom.Handle
		depth    int
	}

	err := walker.Walk(p.tree, root, func(h dom.Handle, data dom.NodeData, depth int) error {
		indent := strings.Repeat("  ", baseIndent+depth)
		if _, err := fmt.Fprintf(p.w, "%s%s\n", indent, p.describe(data)); err != nil {
			return err
		}
		if el, ok := data.(*dom.Element); ok && p.opts.ShowTemplateContents && !el.TemplateContents.IsNil() {
			templates = append(templates, struct {
				contents dom.Handle
				depth    int
			}{el.TemplateContents, baseIndent + depth})
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Template subtrees are isolated from the main tree; render each one
	// under its owning element, after the main walk.
	for _, tc := range templates {
		indent := strings.Repeat("  ", tc.depth+1)
		if _, err := fmt.Fprintf(p.w, "%s#template-contents\n", indent); err != nil {
			return err
		}
		if err := p.printText(tc.contents, tc.depth+2); err != nil {
			return err
		}
	}
	return nil
}

// describe formats one node as a single line.
func (p *Printer) describe(data dom.NodeData) string {
	switch d := data.(type) {
	case *dom.Document:
		return "#document"
	case *dom.Doctype:
		return fmt.Sprintf("#doctype %s", d.Name)
	case *dom.Text:
		if !p.opts.ShowText {
			return "#text"
		}
		return fmt.Sprintf("#text %q", p.clip(string(d.Contents)))
	case *dom.Comment:
		if !p.opts.ShowText {
			return "#comment"
		}
		return fmt.Sprintf("#comment %q", p.clip(d.Contents))
	case *dom.Element:
		var b strings.Builder
		b.WriteByte('<')
		b.WriteString(qualName(d.Name))
		for _, a := range d.Attrs {
			fmt.Fprintf(&b, " %s=%q", qualName(a.Name), a.Value)
		}
		b.WriteByte('>')
		return b.String()
	case *dom.ProcessingInstruction:
		return fmt.Sprintf("#pi %s", d.Target)
	default:
		return fmt.Sprintf("#unknown(%T)", data)
	}
}

func (p *Printer) clip(s string) string {
	if p.opts.MaxTextLen > 0 && len(s) > p.opts.MaxTextLen {
		return s[:p.opts.MaxTextLen] + "..."
	}
	return s
}

func qualName(n dom.QualName) string {
	if n.Namespace == "" {
		return n.Local
	}
	return n.Namespace + ":" + n.Local
}
