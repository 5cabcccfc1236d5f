package dom

import (
	"fmt"
	"slices"

	"github.com/joshuapare/domkit/dom/arena"
)

// Sink is the mutation contract a tree-construction algorithm drives.
// *Tree is the implementation; the interface exists so drivers can be
// written and tested against the contract alone.
//
// Callers must only pass handles previously returned by the same sink
// (or its Document handle). Operations that can be misused return an
// error wrapping one of the package sentinels and leave the tree
// unmodified; they never panic and never corrupt links.
type Sink interface {
	// Document returns the root document handle.
	Document() Handle

	// CreateElement allocates an unattached element. If flags.Template
	// is set, an isolated Document node is allocated and recorded as the
	// element's template contents.
	CreateElement(name QualName, attrs []Attribute, flags ElementFlags) Handle

	// CreateComment allocates an unattached comment node.
	CreateComment(text string) Handle

	// CreatePI allocates an unattached processing instruction node.
	CreatePI(target, data string) Handle

	// Append appends child under parent. Text is coalesced into
	// parent's last child when that child is a Text node.
	Append(parent Handle, child NodeOrText) error

	// AppendBeforeSibling inserts child immediately before sibling.
	// Text is coalesced into the node immediately preceding the
	// insertion point when that node is a Text node.
	AppendBeforeSibling(sibling Handle, child NodeOrText) error

	// AppendBasedOnParentNode inserts before element when element has a
	// parent, and appends under prevElement otherwise.
	AppendBasedOnParentNode(element, prevElement Handle, child NodeOrText) error

	// AppendDoctypeToDocument appends a doctype node as the last child
	// of the root document.
	AppendDoctypeToDocument(name, publicID, systemID string) error

	// TemplateContents returns the isolated contents handle of a
	// template element.
	TemplateContents(target Handle) (Handle, error)

	// AddAttrsIfMissing appends each attribute whose name the element
	// does not already carry. Existing values are never changed.
	AddAttrsIfMissing(target Handle, attrs []Attribute) error

	// RemoveFromParent detaches target from its parent, leaving its
	// subtree intact.
	RemoveFromParent(target Handle) error

	// ReparentChildren moves every child of node under newParent,
	// preserving order.
	ReparentChildren(node, newParent Handle) error

	// SameNode reports whether two handles identify the same node.
	SameNode(x, y Handle) bool

	// ElemName returns the qualified name of an element.
	ElemName(target Handle) (QualName, error)

	// IsMathMLAnnotationXMLIntegrationPoint reads the creation-time
	// integration-point flag of an element.
	IsMathMLAnnotationXMLIntegrationPoint(target Handle) (bool, error)

	// SetQuirksMode overwrites the document's quirks mode.
	SetQuirksMode(mode QuirksMode)

	// ParseError records a diagnostic. It never fails and never aborts
	// construction.
	ParseError(msg string)

	// Finish returns the completed tree. By convention no further
	// mutation happens afterwards; this is not enforced structurally.
	Finish() *Tree
}

var _ Sink = (*Tree)(nil)

// NodeOrText is the child argument of the append operations: either an
// existing node handle or literal text.
type NodeOrText struct {
	node   Handle
	text   string
	isText bool
}

// AppendNode wraps an existing node handle for appending.
func AppendNode(h Handle) NodeOrText { return NodeOrText{node: h} }

// AppendText wraps literal text for appending.
func AppendText(s string) NodeOrText { return NodeOrText{text: s, isText: true} }

// CreateElement allocates an unattached element node. A template
// element additionally gets an isolated Document node recorded as its
// template contents; that node is never linked into the main tree.
func (t *Tree) CreateElement(name QualName, attrs []Attribute, flags ElementFlags) Handle {
	var contents Handle
	if flags.Template {
		contents = t.arena.NewNode(&Document{})
	}
	return t.arena.NewNode(&Element{
		Name:                                name,
		Attrs:                               slices.Clone(attrs),
		TemplateContents:                    contents,
		MathMLAnnotationXMLIntegrationPoint: flags.MathMLAnnotationXMLIntegrationPoint,
	})
}

// CreateComment allocates an unattached comment node.
func (t *Tree) CreateComment(text string) Handle {
	return t.arena.NewNode(&Comment{Contents: text})
}

// CreatePI allocates an unattached processing instruction node.
func (t *Tree) CreatePI(target, data string) Handle {
	return t.arena.NewNode(&ProcessingInstruction{Target: target, Contents: data})
}

// Append appends child as the new last child of parent. When child is
// text and parent's last child is a Text node, the text is folded into
// that node's buffer and no node is created.
func (t *Tree) Append(parent Handle, child NodeOrText) error {
	if child.isText {
		last, err := t.arena.LastChild(parent)
		if err != nil {
			return fmt.Errorf("append: %w", err)
		}
		if !last.IsNil() {
			merged, err := t.appendToExistingText(last, child.text)
			if err != nil {
				return fmt.Errorf("append: %w", err)
			}
			if merged {
				return nil
			}
		}
	}
	return t.arena.AppendChild(parent, t.materialize(child))
}

// AppendBeforeSibling inserts child immediately before sibling. When
// child is text and the node immediately preceding the insertion point
// is a Text node, the text is folded into that node's buffer. The tree
// builder guarantees the node after the insertion point is never a Text
// node, so only the preceding side is checked.
func (t *Tree) AppendBeforeSibling(sibling Handle, child NodeOrText) error {
	parent, err := t.arena.Parent(sibling)
	if err != nil {
		return fmt.Errorf("append before sibling: %w", err)
	}
	if parent.IsNil() {
		return fmt.Errorf("append before sibling %s: %w", sibling, arena.ErrNoParent)
	}
	if child.isText {
		prev, err := t.arena.PrevSibling(sibling)
		if err != nil {
			return fmt.Errorf("append before sibling: %w", err)
		}
		if !prev.IsNil() {
			merged, err := t.appendToExistingText(prev, child.text)
			if err != nil {
				return fmt.Errorf("append before sibling: %w", err)
			}
			if merged {
				return nil
			}
		}
	}
	return t.arena.InsertBefore(sibling, t.materialize(child))
}

// AppendBasedOnParentNode appends child relative to element when
// element is attached, and under prevElement otherwise. The branch
// condition is exactly "does element currently have a parent"; the
// tree-construction algorithm relies on this foster-parenting rule.
func (t *Tree) AppendBasedOnParentNode(element, prevElement Handle, child NodeOrText) error {
	parent, err := t.arena.Parent(element)
	if err != nil {
		return fmt.Errorf("append based on parent node: %w", err)
	}
	if !parent.IsNil() {
		return t.AppendBeforeSibling(element, child)
	}
	return t.Append(prevElement, child)
}

// AppendDoctypeToDocument appends a doctype node as the last child of
// the root document, regardless of any other tree state.
func (t *Tree) AppendDoctypeToDocument(name, publicID, systemID string) error {
	h := t.arena.NewNode(&Doctype{Name: name, PublicID: publicID, SystemID: systemID})
	if err := t.arena.AppendChild(t.document, h); err != nil {
		return fmt.Errorf("append doctype: %w", err)
	}
	return nil
}

// TemplateContents returns the isolated contents handle recorded on a
// template element. Fails with ErrNotATemplate when target is not an
// element or carries no template contents.
func (t *Tree) TemplateContents(target Handle) (Handle, error) {
	data, err := t.arena.Get(target)
	if err != nil {
		return Handle{}, fmt.Errorf("template contents: %w", err)
	}
	el, ok := data.(*Element)
	if !ok || el.TemplateContents.IsNil() {
		return Handle{}, fmt.Errorf("template contents of %s: %w", target, ErrNotATemplate)
	}
	return el.TemplateContents, nil
}

// AddAttrsIfMissing appends each incoming attribute whose qualified
// name is not already present on the element. Existing attribute values
// are never modified and relative order of both lists is preserved.
func (t *Tree) AddAttrsIfMissing(target Handle, attrs []Attribute) error {
	el, err := t.element(target)
	if err != nil {
		return fmt.Errorf("add attrs: %w", err)
	}
	existing := make(map[QualName]struct{}, len(el.Attrs))
	for _, a := range el.Attrs {
		existing[a.Name] = struct{}{}
	}
	for _, a := range attrs {
		if _, dup := existing[a.Name]; dup {
			continue
		}
		el.Attrs = append(el.Attrs, a)
		existing[a.Name] = struct{}{}
	}
	return nil
}

// RemoveFromParent detaches target from its parent. The subtree below
// target stays allocated and traversable from target.
func (t *Tree) RemoveFromParent(target Handle) error {
	if err := t.arena.Detach(target); err != nil {
		return fmt.Errorf("remove from parent: %w", err)
	}
	return nil
}

// ReparentChildren moves all children of node to the end of newParent's
// child list, preserving their order. node ends up childless.
func (t *Tree) ReparentChildren(node, newParent Handle) error {
	if err := t.arena.TransferChildren(node, newParent); err != nil {
		return fmt.Errorf("reparent children: %w", err)
	}
	return nil
}

// SameNode reports whether x and y identify the same node. This is
// identity, not payload equality.
func (t *Tree) SameNode(x, y Handle) bool { return x == y }

// ElemName returns the qualified name of an element.
func (t *Tree) ElemName(target Handle) (QualName, error) {
	el, err := t.element(target)
	if err != nil {
		return QualName{}, fmt.Errorf("elem name: %w", err)
	}
	return el.Name, nil
}

// IsMathMLAnnotationXMLIntegrationPoint reads the integration-point
// flag fixed at element creation.
func (t *Tree) IsMathMLAnnotationXMLIntegrationPoint(target Handle) (bool, error) {
	el, err := t.element(target)
	if err != nil {
		return false, fmt.Errorf("integration point: %w", err)
	}
	return el.MathMLAnnotationXMLIntegrationPoint, nil
}

// SetQuirksMode overwrites the quirks mode. The last write before
// Finish wins.
func (t *Tree) SetQuirksMode(mode QuirksMode) { t.quirks = mode }

// ParseError appends a diagnostic to the error log. Diagnostics never
// interrupt construction; they surface through Errors after Finish.
func (t *Tree) ParseError(msg string) { t.errors = append(t.errors, msg) }

// Finish returns the completed tree.
func (t *Tree) Finish() *Tree { return t }

// element resolves target to an *Element or fails with ErrNotAnElement.
func (t *Tree) element(target Handle) (*Element, error) {
	data, err := t.arena.Get(target)
	if err != nil {
		return nil, err
	}
	el, ok := data.(*Element)
	if !ok {
		return nil, fmt.Errorf("%s: %w", target, ErrNotAnElement)
	}
	return el, nil
}

// materialize turns a NodeOrText into a handle, allocating a fresh Text
// node for text that could not be coalesced.
func (t *Tree) materialize(child NodeOrText) Handle {
	if child.isText {
		return t.arena.NewNode(&Text{Contents: []byte(child.text)})
	}
	return child.node
}

// appendToExistingText folds text into h's buffer when h is a Text
// node. Reports whether the merge happened.
func (t *Tree) appendToExistingText(h Handle, text string) (bool, error) {
	data, err := t.arena.Get(h)
	if err != nil {
		return false, err
	}
	tn, ok := data.(*Text)
	if !ok {
		return false, nil
	}
	tn.Contents = append(tn.Contents, text...)
	return true, nil
}
