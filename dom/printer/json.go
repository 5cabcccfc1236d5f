package printer

import (
	"encoding/json"
	"fmt"

	"github.com/joshuapare/domkit/dom"
)

// jsonNode is one tree node in JSON form. Fields irrelevant to a node
// kind are omitted.
type jsonNode struct {
	Kind             string     `json:"kind"`
	Name             string     `json:"name,omitempty"`
	PublicID         string     `json:"public_id,omitempty"`
	SystemID         string     `json:"system_id,omitempty"`
	Text             string     `json:"text,omitempty"`
	Target           string     `json:"target,omitempty"`
	Attrs            []jsonAttr `json:"attrs,omitempty"`
	Children         []jsonNode `json:"children,omitempty"`
	TemplateContents *jsonNode  `json:"template_contents,omitempty"`
}

type jsonAttr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// printJSON renders the subtree rooted at root as one indented JSON
// object.
func (p *Printer) printJSON(root dom.Handle) error {
	node, err := p.buildJSON(root)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.w, "%s\n", out)
	return err
}

func (p *Printer) buildJSON(h dom.Handle) (jsonNode, error) {
	data, err := p.tree.Node(h)
	if err != nil {
		return jsonNode{}, err
	}

	var node jsonNode
	switch d := data.(type) {
	case *dom.Document:
		node.Kind = "document"
	case *dom.Doctype:
		node.Kind = "doctype"
		node.Name = d.Name
		node.PublicID = d.PublicID
		node.SystemID = d.SystemID
	case *dom.Text:
		node.Kind = "text"
		if p.opts.ShowText {
			node.Text = p.clip(string(d.Contents))
		}
	case *dom.Comment:
		node.Kind = "comment"
		if p.opts.ShowText {
			node.Text = p.clip(d.Contents)
		}
	case *dom.Element:
		node.Kind = "element"
		node.Name = qualName(d.Name)
		for _, a := range d.Attrs {
			node.Attrs = append(node.Attrs, jsonAttr{Name: qualName(a.Name), Value: a.Value})
		}
		if p.opts.ShowTemplateContents && !d.TemplateContents.IsNil() {
			tc, err := p.buildJSON(d.TemplateContents)
			if err != nil {
				return jsonNode{}, err
			}
			node.TemplateContents = &tc
		}
	case *dom.ProcessingInstruction:
		node.Kind = "pi"
		node.Target = d.Target
		if p.opts.ShowText {
			node.Text = p.clip(d.Contents)
		}
	}

	child, err := p.tree.FirstChild(h)
	if err != nil {
		return jsonNode{}, err
	}
	for !child.IsNil() {
		cn, err := p.buildJSON(child)
		if err != nil {
			return jsonNode{}, err
		}
		node.Children = append(node.Children, cn)
		child, err = p.tree.NextSibling(child)
		if err != nil {
			return jsonNode{}, err
		}
	}
	return node, nil
}
