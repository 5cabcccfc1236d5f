package dom

import (
	"github.com/joshuapare/domkit/dom/arena"
)

// Handle identifies a node in a Tree. It is the arena handle verbatim:
// a copyable value compared with ==, stable across structural mutation.
type Handle = arena.Handle

// QualName is a qualified name: a namespace URI plus a local name.
// Elements and attributes are identified by QualName equality.
type QualName struct {
	Namespace string
	Local     string
}

// Attribute is one (name, value) pair on an element. Attribute order is
// preserved; names are unique within one element's list.
type Attribute struct {
	Name  QualName
	Value string
}

// ElementFlags carries the creation-time properties of an element that
// are fixed for its lifetime.
type ElementFlags struct {
	// Template requests an isolated template-contents subtree for the
	// element.
	Template bool

	// MathMLAnnotationXMLIntegrationPoint marks the element as a MathML
	// annotation-xml integration point.
	MathMLAnnotationXMLIntegrationPoint bool
}

// NodeData is the payload of one tree node. Exactly six kinds exist:
// Document, Doctype, Text, Comment, Element and ProcessingInstruction.
// Code reading a tree switches on the concrete type; payloads are held
// by pointer so that Text buffers and Element attribute lists can be
// mutated in place through a handle.
type NodeData interface {
	isNodeData()
}

// Document is the payload of a tree root: either the main document root
// or the isolated root of a template's contents.
type Document struct{}

// Doctype is a document type declaration. Only ever a child of the main
// document root.
type Doctype struct {
	Name     string
	PublicID string
	SystemID string
}

// Text is a mutable text buffer. The tree maintains the coalescing
// invariant: no two adjacent siblings are both Text nodes.
type Text struct {
	Contents []byte
}

// Comment is an immutable comment payload.
type Comment struct {
	Contents string
}

// Element is an element node.
type Element struct {
	Name  QualName
	Attrs []Attribute

	// TemplateContents refers to the isolated Document node holding the
	// element's template contents. Null unless the element was created
	// with ElementFlags.Template. The contents node has no parent; it is
	// reachable only through this field.
	TemplateContents Handle

	// MathMLAnnotationXMLIntegrationPoint is fixed at creation time.
	MathMLAnnotationXMLIntegrationPoint bool
}

// ProcessingInstruction is an immutable processing instruction payload.
type ProcessingInstruction struct {
	Target   string
	Contents string
}

func (*Document) isNodeData()              {}
func (*Doctype) isNodeData()               {}
func (*Text) isNodeData()                  {}
func (*Comment) isNodeData()               {}
func (*Element) isNodeData()               {}
func (*ProcessingInstruction) isNodeData() {}
