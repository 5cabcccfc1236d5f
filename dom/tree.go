package dom

import (
	"github.com/joshuapare/domkit/dom/arena"
)

// Tree is a document tree under construction, and the final artifact
// once construction finishes: the arena holding every node, the root
// document handle, the ordered parse-error log, and the quirks mode.
//
// A Tree is not safe for concurrent use. Parallel parses must each own
// their own Tree.
type Tree struct {
	arena    *arena.Arena[NodeData]
	document Handle
	errors   []string
	quirks   QuirksMode
}

// New creates a tree holding a single root Document node.
func New() *Tree {
	a := arena.New[NodeData]()
	return &Tree{
		arena:    a,
		document: a.NewNode(&Document{}),
	}
}

// Document returns the root document handle. The root is created with
// the tree and never destroyed or detached.
func (t *Tree) Document() Handle { return t.document }

// Node returns the payload of h. Fails with arena.ErrInvalidHandle if h
// is stale or null, which indicates a caller bug: no operation in this
// package invalidates a handle it has returned.
func (t *Tree) Node(h Handle) (NodeData, error) {
	return t.arena.Get(h)
}

// Parent returns the parent of h, or the null handle if h is detached
// or a root.
func (t *Tree) Parent(h Handle) (Handle, error) { return t.arena.Parent(h) }

// FirstChild returns the first child of h, or the null handle.
func (t *Tree) FirstChild(h Handle) (Handle, error) { return t.arena.FirstChild(h) }

// LastChild returns the last child of h, or the null handle.
func (t *Tree) LastChild(h Handle) (Handle, error) { return t.arena.LastChild(h) }

// PrevSibling returns the sibling before h, or the null handle.
func (t *Tree) PrevSibling(h Handle) (Handle, error) { return t.arena.PrevSibling(h) }

// NextSibling returns the sibling after h, or the null handle.
func (t *Tree) NextSibling(h Handle) (Handle, error) { return t.arena.NextSibling(h) }

// Len returns the number of live nodes in the tree's arena, including
// detached nodes and template contents.
func (t *Tree) Len() int { return t.arena.Len() }

// Errors returns the parse-error log in the order the errors were
// reported.
func (t *Tree) Errors() []string { return t.errors }

// QuirksMode returns the current quirks mode.
func (t *Tree) QuirksMode() QuirksMode { return t.quirks }
